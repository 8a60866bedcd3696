package nk

import "testing"

func TestScrollbarClampsOffset(t *testing.T) {
	ctx := newTestContext(t)
	cb := NewCommandBuffer(false)
	style := &ctx.Style().ScrollV
	bar := Rect{X: 0, Y: 0, W: 10, H: 100}

	tests := []struct {
		name           string
		offset, target float32
		want           float32
	}{
		{name: "content fits", offset: 50, target: 80, want: 0},
		{name: "inside range", offset: 40, target: 200, want: 40},
		{name: "past the end", offset: 500, target: 200, want: 100},
		{name: "negative", offset: -5, target: 200, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ws WidgetState
			got := ctx.doScrollbar(&ws, cb, bar, true, tt.offset, tt.target, 10, style, nil, true)
			if got != tt.want {
				t.Errorf("Expected offset %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWindowWheelScroll(t *testing.T) {
	ctx := newTestContext(t)
	declare := func() {
		ctx.Begin("w", Rect{W: 208, H: 100}, 0)
		ctx.LayoutRowDynamic(30, 1)
		for range 10 {
			ctx.Label("row", TextLeft)
		}
		ctx.End()
	}
	wheel := func(dy float32) func(*Context) {
		return func(ctx *Context) {
			ctx.InputMotion(50, 50)
			ctx.InputScroll(Vec2{Y: dy})
		}
	}

	frame(ctx, nil, declare)
	frame(ctx, wheel(-1), declare)
	// the body is 90px high, so one notch moves 9px
	if got := ctx.WindowFind("w").scrollbar.Y; got != 9 {
		t.Errorf("Expected the wheel to scroll by 9, got %d", got)
	}
	frame(ctx, wheel(5), declare)
	if got := ctx.WindowFind("w").scrollbar.Y; got != 0 {
		t.Errorf("Expected scrolling up to stop at 0, got %d", got)
	}
}
