package nk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func texts(ctx *Context) []string {
	var out []string
	for cmd := range ctx.Commands() {
		if cmd.Type == CommandText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

func TestPopupDrawsAfterItsWindow(t *testing.T) {
	ctx := newTestContext(t)
	ctx.InputBegin()
	ctx.InputEnd()
	ctx.Begin("w", Rect{W: 308, H: 200}, WindowNoScrollbar)
	ctx.LayoutRowDynamic(20, 1)
	ctx.Label("before", TextLeft)
	if !ctx.PopupBegin(PopupStatic, "popup", 0, Rect{X: 10, Y: 40, W: 100, H: 60}) {
		t.Fatalf("Expected the popup to open")
	}
	ctx.LayoutRowDynamic(20, 1)
	ctx.Label("inside", TextLeft)
	ctx.PopupEnd()
	ctx.Label("after", TextLeft)
	ctx.End()

	if diff := cmp.Diff([]string{"before", "after", "inside"}, texts(ctx)); diff != "" {
		t.Errorf("Text order mismatch (-want +got):\n%s", diff)
	}
	ctx.Clear()
}

func TestPopupLocksParentInput(t *testing.T) {
	ctx := newTestContext(t)
	var pressed bool
	declare := func() {
		ctx.Begin("w", Rect{W: 308, H: 200}, WindowNoScrollbar)
		if ctx.PopupBegin(PopupStatic, "popup", 0, Rect{X: 150, Y: 100, W: 100, H: 60}) {
			ctx.PopupEnd()
		}
		ctx.LayoutRowDynamic(30, 1)
		pressed = ctx.Button("under")
		ctx.End()
	}
	frame(ctx, nil, declare)
	frame(ctx, press(50, 15), declare)
	if pressed {
		t.Errorf("Expected a button below an open popup to ignore input")
	}
}

func TestPopupCloseButtonRollsBack(t *testing.T) {
	ctx := newTestContext(t)
	ctx.InputBegin()
	press(99, 25)(ctx)
	ctx.InputEnd()

	ctx.Begin("w", Rect{W: 308, H: 200}, WindowNoScrollbar)
	before := ctx.Memory().Info().Allocated
	refs := len(ctx.refs.items)
	// the close button of a popup at (14, 10) sits at {88, 14, 22, 22}
	open := ctx.PopupBegin(PopupStatic, "closable", WindowTitle|WindowClosable, Rect{X: 10, Y: 10, W: 100, H: 80})
	if open {
		ctx.PopupEnd()
		t.Fatalf("Expected the close button to close the popup")
	}
	if got := ctx.Memory().Info().Allocated; got != before {
		t.Errorf("Expected the arena rolled back to %d bytes, got %d", before, got)
	}
	if got := len(ctx.refs.items); got != refs {
		t.Errorf("Expected %d refs after rollback, got %d", refs, got)
	}
	win := ctx.current
	if win.popup.active {
		t.Errorf("Expected the popup to be inactive")
	}
	ctx.End()
	for _, s := range texts(ctx) {
		if s == "closable" {
			t.Errorf("Expected no trace of the closed popup title")
		}
	}
	ctx.Clear()
}

func TestPopupViolations(t *testing.T) {
	ctx := newTestContext(t)
	ctx.InputBegin()
	ctx.InputEnd()
	ctx.Begin("w", Rect{W: 308, H: 200}, 0)
	expectViolation(t, ErrNotInPopup, func() { ctx.PopupEnd() })

	if !ctx.PopupBegin(PopupStatic, "outer", 0, Rect{W: 100, H: 100}) {
		t.Fatalf("Expected the popup to open")
	}
	expectViolation(t, ErrPopupInPopup, func() {
		ctx.PopupBegin(PopupStatic, "inner", 0, Rect{W: 50, H: 50})
	})
	expectViolation(t, ErrPanelNotEnded, func() { ctx.End() })
}

func TestComboSelectsItem(t *testing.T) {
	ctx := newTestContext(t)
	items := []string{"sedan", "truck", "bike"}
	selected := 0
	combo := func() { selected = ctx.Combo(items, selected, 22, Vec2{X: 200, Y: 200}) }
	isOpen := func() bool { return ctx.WindowFind("widgets").popup.win != nil }

	widgetFrame(ctx, press(50, 15), combo)
	if !isOpen() {
		t.Fatalf("Expected a click on the header to open the dropdown")
	}
	widgetFrame(ctx, release(50, 15), combo)
	if !isOpen() {
		t.Fatalf("Expected the dropdown to stay open")
	}

	// items start at y=38 and are 22 high with 4 spacing
	widgetFrame(ctx, press(50, 100), combo)
	if selected != 2 {
		t.Errorf("Expected the third item to be selected, got %d", selected)
	}
	if isOpen() {
		t.Errorf("Expected choosing an item to close the dropdown")
	}
	widgetFrame(ctx, release(50, 100), combo)
	if isOpen() || selected != 2 {
		t.Errorf("Expected the combo to stay closed on %d, open=%v selected=%d", 2, isOpen(), selected)
	}
}

func TestComboPressOutsideCloses(t *testing.T) {
	ctx := newTestContext(t)
	combo := func() { ctx.Combo([]string{"a", "b"}, 0, 22, Vec2{X: 100, Y: 100}) }
	widgetFrame(ctx, press(50, 15), combo)
	widgetFrame(ctx, release(50, 15), combo)
	widgetFrame(ctx, press(250, 180), combo)
	if ctx.WindowFind("widgets").popup.win != nil {
		t.Errorf("Expected a press outside the dropdown to close it")
	}
}

func TestMenuItemClosesMenu(t *testing.T) {
	ctx := newTestContext(t)
	var chosen []string
	menu := func() {
		ctx.Begin("menus", Rect{W: 308, H: 200}, WindowNoScrollbar)
		ctx.MenubarBegin()
		ctx.LayoutRowStatic(20, 60, 1)
		if ctx.MenuBeginLabel("File", TextLeft, Vec2{X: 120, Y: 100}) {
			ctx.LayoutRowDynamic(22, 1)
			for _, item := range []string{"Open", "Quit"} {
				if ctx.MenuItemLabel(item, TextLeft) {
					chosen = append(chosen, item)
				}
			}
			ctx.MenuEnd()
		}
		ctx.MenubarEnd()
		ctx.End()
	}
	isOpen := func() bool { return ctx.WindowFind("menus").popup.win != nil }

	frame(ctx, press(20, 10), menu)
	frame(ctx, release(20, 10), menu)
	if !isOpen() {
		t.Fatalf("Expected the menu to open")
	}
	// the second item covers y 55..77
	frame(ctx, press(40, 60), menu)
	if diff := cmp.Diff([]string{"Quit"}, chosen); diff != "" {
		t.Errorf("Chosen items mismatch (-want +got):\n%s", diff)
	}
	if isOpen() {
		t.Errorf("Expected choosing an item to close the menu")
	}
}

func TestContextualOpensOnRightClick(t *testing.T) {
	ctx := newTestContext(t)
	var open []bool
	declare := func() {
		ctx.Begin("w", Rect{W: 308, H: 200}, WindowNoScrollbar)
		ok := ctx.ContextualBegin(0, Vec2{X: 120, Y: 80}, ctx.WindowGetBounds())
		open = append(open, ok)
		if ok {
			ctx.LayoutRowDynamic(22, 1)
			ctx.ContextualItemLabel("copy", TextLeft)
			ctx.ContextualEnd()
		}
		ctx.End()
	}
	rightClick := func(ctx *Context) {
		ctx.InputMotion(100, 100)
		ctx.InputButton(ButtonRight, 100, 100, true)
		ctx.InputButton(ButtonRight, 100, 100, false)
	}

	frame(ctx, nil, declare)
	frame(ctx, rightClick, declare)
	frame(ctx, hover(100, 100), declare)
	frame(ctx, press(10, 10), declare)
	frame(ctx, release(10, 10), declare)

	if diff := cmp.Diff([]bool{false, true, true, false, false}, open); diff != "" {
		t.Errorf("Contextual results mismatch (-want +got):\n%s", diff)
	}
}

func TestTooltipLastsOneFrame(t *testing.T) {
	ctx := newTestContext(t)
	ctx.InputBegin()
	hover(50, 50)(ctx)
	ctx.InputEnd()
	ctx.Begin("w", Rect{W: 308, H: 200}, WindowNoScrollbar)
	ctx.Tooltip("hint")
	ctx.End()

	found := false
	for _, s := range texts(ctx) {
		found = found || s == "hint"
	}
	if !found {
		t.Errorf("Expected the tooltip text in the frame")
	}
	ctx.Clear()
	if ctx.WindowFind("w").popup.win != nil {
		t.Errorf("Expected the tooltip popup to be freed at Clear")
	}
}
