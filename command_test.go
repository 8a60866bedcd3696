package nk

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func collect(cb *CommandBuffer) []Command {
	return slices.Collect(cb.Commands())
}

func TestCommandBufferRoundTrip(t *testing.T) {
	cb := NewCommandBuffer(false)
	red := RGB(255, 0, 0)
	cb.PushScissor(Rect{X: 0, Y: 0, W: 100, H: 50})
	cb.StrokeLine(1, 2, 3, 4, 1.5, red)
	cb.FillRect(Rect{X: 5, Y: 6, W: 7, H: 8}, 2, red)
	cb.FillRectMultiColor(Rect{W: 10, H: 10}, ColorWhite, ColorBlack, ColorRed, ColorBlue)
	cb.FillPolygon([]Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}, red)
	cb.StrokeArc(10, 10, 5, 0, 3, 1, red)
	cb.DrawText(Rect{X: 1, Y: 1, W: 100, H: 13}, "héllo", testFont, ColorBlack, ColorWhite)
	cb.DrawImage(Rect{W: 4, H: 4}, Image{Handle: 1<<40 | 7, W: 64, H: 32, Region: [4]uint16{1, 2, 3, 4}}, ColorWhite)

	want := []Command{
		{Type: CommandScissor, Rect: Rect{W: 100, H: 50}},
		{Type: CommandLine, LineThickness: 1.5, Points: []Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}, Color: red},
		{Type: CommandRectFilled, Rounding: 2, Rect: Rect{X: 5, Y: 6, W: 7, H: 8}, Color: red},
		{Type: CommandRectMultiColor, Rect: Rect{W: 10, H: 10}, Colors: [4]Color{ColorWhite, ColorBlack, ColorBlue, ColorRed}},
		{Type: CommandPolygonFilled, Color: red, Points: []Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}},
		{Type: CommandArc, LineThickness: 1, Points: []Vec2{{X: 10, Y: 10}}, Radius: 5, Angles: [2]float32{0, 3}, Color: red},
		{Type: CommandText, Background: ColorBlack, Color: ColorWhite, Rect: Rect{X: 1, Y: 1, W: 100, H: 13}, Height: 13, Font: testFont, Text: "héllo"},
		{Type: CommandImage, Rect: Rect{W: 4, H: 4}, Image: Image{Handle: 1<<40 | 7, W: 64, H: 32, Region: [4]uint16{1, 2, 3, 4}}, Color: ColorWhite},
	}
	if diff := cmp.Diff(want, collect(cb), cmpopts.IgnoreFields(Command{}, "Callback")); diff != "" {
		t.Errorf("decoded commands mismatch (-want +got):\n%s", diff)
	}
}

func TestCommandBufferFastReject(t *testing.T) {
	cb := NewCommandBuffer(true)
	cb.PushScissor(Rect{W: 10, H: 10})
	cb.FillRect(Rect{X: 20, Y: 20, W: 5, H: 5}, 0, ColorRed)
	cb.FillRect(Rect{X: 5, Y: 5, W: 20, H: 20}, 0, ColorRed)
	cb.FillTriangle(30, 30, 40, 30, 35, 40, ColorRed)
	cb.FillRect(Rect{X: 1, Y: 1, W: 2, H: 2}, 0, ColorTransparent)

	if cb.Len() != 2 {
		t.Errorf("Expected scissor plus one visible rect, got %d records", cb.Len())
	}
}

func TestCommandBufferTextIsClamped(t *testing.T) {
	cb := NewCommandBuffer(false)
	cb.DrawText(Rect{W: 20, H: 13}, "hello", testFont, 0, ColorWhite)
	cmds := collect(cb)
	if len(cmds) != 1 || cmds[0].Text != "he" {
		t.Errorf("Expected the text to be cut to %q, got %+v", "he", cmds)
	}
}

func TestCommandBufferSurvivesGrowth(t *testing.T) {
	cb := &CommandBuffer{}
	cb.init(NewBuffer(nil, 32), &refTable{}, false)
	for i := range 50 {
		cb.DrawText(Rect{W: 1000, H: 13}, fmt.Sprintf("label-%d", i), testFont, 0, ColorWhite)
		cb.FillRect(Rect{X: float32(i), W: 1, H: 1}, 0, ColorRed)
	}

	i := 0
	for cmd := range cb.Commands() {
		if cmd.Type != CommandText {
			continue
		}
		if want := fmt.Sprintf("label-%d", i); cmd.Text != want {
			t.Fatalf("Expected %q after relocation, got %q", want, cmd.Text)
		}
		i++
	}
	if i != 50 {
		t.Errorf("Expected 50 text commands, got %d", i)
	}
}

func TestCommandBuffersInterleave(t *testing.T) {
	arena := NewBuffer(nil, 64)
	refs := &refTable{}
	var a, b CommandBuffer
	a.init(arena, refs, false)
	b.init(arena, refs, false)

	for i := range 5 {
		a.FillRect(Rect{X: float32(i), W: 1, H: 1}, 0, ColorRed)
		b.FillRect(Rect{X: float32(i), W: 1, H: 1}, 0, ColorBlue)
	}
	for cmd := range a.Commands() {
		if cmd.Color != ColorRed {
			t.Fatalf("buffer a yielded a foreign record: %+v", cmd)
		}
	}
	if n := len(collect(&b)); n != 5 {
		t.Errorf("Expected 5 records in buffer b, got %d", n)
	}
}

func TestCommandBufferHash(t *testing.T) {
	build := func(pad int, label string) uint64 {
		arena := NewBuffer(nil, 64)
		var other, cb CommandBuffer
		other.init(arena, &refTable{}, false)
		cb.init(arena, &refTable{}, false)
		for range pad {
			other.FillRect(Rect{W: 3, H: 3}, 0, ColorGreen)
		}
		cb.FillRect(Rect{W: 10, H: 10}, 1, ColorRed)
		cb.DrawText(Rect{W: 100, H: 13}, label, testFont, 0, ColorWhite)
		d := xxhash.New()
		cb.hash(d)
		return d.Sum64()
	}

	if build(0, "ok") != build(3, "ok") {
		t.Error("hash must not depend on where records sit in the arena")
	}
	if build(0, "ok") == build(0, "no") {
		t.Error("hash must change with the text content")
	}
}

func TestCommandBufferUnknownType(t *testing.T) {
	cb := NewCommandBuffer(false)
	cb.FillRect(Rect{W: 1, H: 1}, 0, ColorRed)
	cb.base.Memory()[cb.begin] = 0xEE

	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("Expected ErrUnknownCommand panic, got %v", err)
		}
	}()
	collect(cb)
}
