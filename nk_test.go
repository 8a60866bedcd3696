package nk_test

import (
	"testing"

	"github.com/go-theft-auto/nk"
)

func demoFrame(ctx *nk.Context, label string) {
	ctx.InputBegin()
	ctx.InputEnd()
	if ctx.Begin("demo", nk.Rect{X: 10, Y: 10, W: 240, H: 300}, nk.WindowBorder|nk.WindowNoScrollbar) {
		ctx.LayoutRowDynamic(24, 2)
		ctx.Label(label, nk.TextLeft)
		ctx.Button("apply")

		enabled := true
		ctx.LayoutRowDynamic(24, 1)
		ctx.Checkbox("enabled", &enabled)
		value := float32(0.5)
		ctx.SliderFloat(0, &value, 1, 0.1)

		if ctx.TreePush(nk.TreeTab, "details", nk.Maximized, 0) {
			ctx.LayoutRowDynamic(20, 1)
			ctx.Label("nested", nk.TextLeft)
			ctx.TreePop()
		}
	}
	ctx.End()
}

func TestBasicUsage(t *testing.T) {
	ctx := nk.New()
	defer ctx.Free()

	demoFrame(ctx, "hello")
	n := 0
	for range ctx.Commands() {
		n++
	}
	if n == 0 {
		t.Fatal("Expected draw commands for the frame")
	}
	ctx.Clear()
}

func TestCommandsHashDetectsChanges(t *testing.T) {
	ctx := nk.New(nk.WithFont(nk.MonoFont{CellWidth: 7, LineHeight: 13}))
	defer ctx.Free()

	hashOf := func(label string) uint64 {
		demoFrame(ctx, label)
		h := ctx.CommandsHash()
		ctx.Clear()
		return h
	}
	hashOf("hello")
	a, b := hashOf("hello"), hashOf("hello")
	if a != b {
		t.Errorf("Expected identical frames to hash alike, got %x and %x", a, b)
	}
	if c := hashOf("world"); c == a {
		t.Errorf("Expected a changed label to change the hash")
	}
}

func TestFixedMemoryDropsCommands(t *testing.T) {
	mem := make([]byte, 512)
	ctx := nk.New(nk.WithFixedMemory(mem), nk.WithFont(nk.MonoFont{CellWidth: 7, LineHeight: 13}))
	defer ctx.Free()

	for range 3 {
		demoFrame(ctx, "a label that does not fit in a tiny arena")
		info := ctx.Memory().Info()
		if info.Allocated > len(mem) {
			t.Fatalf("Expected the arena to stay within %d bytes, got %d", len(mem), info.Allocated)
		}
		ctx.Clear()
	}
}

func TestHiddenWindowDrawsNothing(t *testing.T) {
	ctx := nk.New()
	defer ctx.Free()

	ctx.InputBegin()
	ctx.InputEnd()
	ctx.Begin("gone", nk.Rect{W: 100, H: 100}, 0)
	ctx.End()
	ctx.WindowShow("gone", nk.Hidden)
	for cmd := range ctx.Commands() {
		if cmd.Type != nk.CommandScissor {
			t.Errorf("Expected only the overlay scissor, got %v", cmd.Type)
		}
	}
	ctx.Clear()
}
