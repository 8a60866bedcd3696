package nk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// widgetFrame declares a single-row window around body. The row holds one
// widget at {4, 4, 300, 30}.
func widgetFrame(ctx *Context, input func(*Context), body func()) {
	frame(ctx, input, func() {
		if ctx.Begin("widgets", Rect{W: 308, H: 200}, WindowNoScrollbar) {
			ctx.LayoutRowDynamic(30, 1)
			body()
		}
		ctx.End()
	})
}

func TestButtonReportsPressOnce(t *testing.T) {
	ctx := newTestContext(t)
	var got []bool
	button := func() { got = append(got, ctx.Button("ok")) }

	widgetFrame(ctx, hover(50, 15), button)
	widgetFrame(ctx, press(50, 15), button)
	widgetFrame(ctx, hover(50, 15), button)
	widgetFrame(ctx, release(50, 15), button)

	if diff := cmp.Diff([]bool{false, true, false, false}, got); diff != "" {
		t.Errorf("Button results mismatch (-want +got):\n%s", diff)
	}
}

func TestButtonRepeaterWhileHeld(t *testing.T) {
	ctx := newTestContext(t)
	ctx.PushButtonBehavior(ButtonRepeater)
	var got []bool
	button := func() { got = append(got, ctx.Button("more")) }

	widgetFrame(ctx, press(50, 15), button)
	widgetFrame(ctx, hover(50, 15), button)
	widgetFrame(ctx, release(50, 15), button)

	if diff := cmp.Diff([]bool{true, true, false}, got); diff != "" {
		t.Errorf("Repeater results mismatch (-want +got):\n%s", diff)
	}
}

func TestButtonIgnoresPressOutside(t *testing.T) {
	ctx := newTestContext(t)
	var pressed bool
	widgetFrame(ctx, press(50, 150), func() { pressed = ctx.Button("ok") })
	if pressed {
		t.Errorf("Expected a press below the button to be ignored")
	}
}

func TestButtonInInactiveWindow(t *testing.T) {
	ctx := newTestContext(t)
	var pressed bool
	declare := func() {
		ctx.Begin("back", Rect{W: 308, H: 200}, WindowNoScrollbar)
		ctx.LayoutRowDynamic(30, 1)
		pressed = ctx.Button("ok")
		ctx.End()
		ctx.Begin("front", Rect{X: 400, W: 100, H: 100}, 0)
		ctx.End()
	}
	frame(ctx, nil, declare)
	ctx.WindowSetFocus("front")
	frame(ctx, hover(50, 15), declare)
	if pressed {
		t.Fatalf("Expected no press without a click")
	}
	// the press activates the back window in the same frame
	frame(ctx, press(50, 15), declare)
	if !pressed {
		t.Errorf("Expected a click to focus the window and press the button")
	}
}

func TestCheckboxToggles(t *testing.T) {
	ctx := newTestContext(t)
	active := false
	var changed bool
	checkbox := func() { changed = ctx.Checkbox("enabled", &active) }

	widgetFrame(ctx, press(10, 15), checkbox)
	if !changed || !active {
		t.Fatalf("Expected the checkbox to turn on, changed=%v active=%v", changed, active)
	}
	widgetFrame(ctx, release(10, 15), checkbox)
	if changed || !active {
		t.Errorf("Expected release to keep the value, changed=%v active=%v", changed, active)
	}
	widgetFrame(ctx, press(10, 15), checkbox)
	if !changed || active {
		t.Errorf("Expected the second press to turn it off, changed=%v active=%v", changed, active)
	}
}

func TestSelectableToggles(t *testing.T) {
	ctx := newTestContext(t)
	selected := false
	widgetFrame(ctx, press(100, 15), func() { ctx.Selectable("item", TextLeft, &selected) })
	if !selected {
		t.Errorf("Expected a press to select the item")
	}
}

func TestSliderFollowsPointer(t *testing.T) {
	ctx := newTestContext(t)
	value := float32(50)
	slider := func() { ctx.SliderFloat(0, &value, 100, 1) }

	// the cursor of the centered value sits in the middle of the row
	widgetFrame(ctx, press(154, 19), slider)
	if value != 50 {
		t.Fatalf("Expected grabbing the cursor to keep 50, got %v", value)
	}
	widgetFrame(ctx, hover(300, 19), slider)
	if value != 100 {
		t.Errorf("Expected dragging past the right edge to select the maximum, got %v", value)
	}
	widgetFrame(ctx, hover(4, 19), slider)
	if value != 0 {
		t.Errorf("Expected dragging past the left edge to select the minimum, got %v", value)
	}
	widgetFrame(ctx, release(4, 19), slider)
	widgetFrame(ctx, hover(300, 19), slider)
	if value != 0 {
		t.Errorf("Expected hovering without a press to keep the value, got %v", value)
	}
}

func TestTreeNodeKeepsStateAcrossFrames(t *testing.T) {
	ctx := newTestContext(t)
	var got []bool
	tree := func() {
		open := ctx.TreePush(TreeNode, "node", Minimized, 0)
		got = append(got, open)
		if open {
			ctx.LayoutRowDynamic(20, 1)
			ctx.Label("child", TextLeft)
			ctx.TreePop()
		}
	}

	widgetFrame(ctx, nil, tree)
	widgetFrame(ctx, press(50, 45), tree)
	widgetFrame(ctx, release(50, 45), tree)
	widgetFrame(ctx, press(50, 45), tree)
	widgetFrame(ctx, release(50, 45), tree)

	if diff := cmp.Diff([]bool{false, true, true, false, false}, got); diff != "" {
		t.Errorf("Tree results mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeIndentsContent(t *testing.T) {
	ctx := newTestContext(t)
	state := Maximized
	var child Rect
	widgetFrame(ctx, nil, func() {
		if ctx.TreeStatePush(TreeTab, "tab", &state) {
			ctx.LayoutRowDynamic(20, 1)
			child, _ = ctx.Widget()
			ctx.TreePop()
		}
	})
	want := float32(4) + ctx.Style().Tab.Indent
	if child.X != want {
		t.Errorf("Expected tree content at x=%v, got %v", want, child.X)
	}
}

func TestTreeViolations(t *testing.T) {
	ctx := newTestContext(t)
	ctx.InputBegin()
	ctx.InputEnd()
	ctx.Begin("w", Rect{W: 308, H: 200}, 0)
	expectViolation(t, ErrTreeUnderflow, func() { ctx.TreePop() })

	state := Maximized
	ctx.TreeStatePush(TreeNode, "open", &state)
	expectViolation(t, ErrTreeNotPopped, func() { ctx.End() })
}

func TestWidgetStatePersistenceReapsUnusedPages(t *testing.T) {
	ctx := newTestContext(t)
	declare := func(n int) func() {
		return func() {
			for i := range n {
				if ctx.TreePush(TreeNode, "node", Minimized, i) {
					ctx.TreePop()
				}
			}
		}
	}
	widgetFrame(ctx, nil, declare(TableCapacity+1))
	win := ctx.WindowFind("widgets")
	if win.tableCount != 2 {
		t.Fatalf("Expected 2 table pages, got %d", win.tableCount)
	}

	widgetFrame(ctx, nil, declare(1))
	if win.tableCount != 1 {
		t.Errorf("Expected the untouched page to be reaped, got %d pages", win.tableCount)
	}
	if got := ctx.tablePool.inUse(); got != 1 {
		t.Errorf("Expected 1 table page in use, got %d", got)
	}
}

func TestWidgetStateTables(t *testing.T) {
	ctx := newTestContext(t)
	win := &Window{seq: 1}

	if v := ctx.findValue(win, 42); v != nil {
		t.Fatalf("Expected no value before adding one")
	}
	p := ctx.addValue(win, 42, 7)
	*p = 9
	if v := ctx.findValue(win, 42); v == nil || *v != 9 {
		t.Fatalf("Expected the stored value 9, got %v", v)
	}
	if v := ctx.value(win, 43, 5); *v != 5 {
		t.Errorf("Expected value to create 43 with 5, got %d", *v)
	}

	win.seq = 2
	ctx.findValue(win, 42)
	ctx.reapTables(win, 2)
	if v := ctx.findValue(win, 42); v == nil || *v != 9 {
		t.Errorf("Expected a page touched this frame to survive")
	}
	ctx.reapTables(win, 3)
	if v := ctx.findValue(win, 42); v != nil {
		t.Errorf("Expected an untouched page to be reaped")
	}
	ctx.freeTables(win)
	if got := ctx.tablePool.inUse(); got != 0 {
		t.Errorf("Expected every page back in the pool, got %d in use", got)
	}
}
