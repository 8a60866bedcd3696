package nk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// layoutWindow runs one frame with a 300px wide content area starting at
// (4, 4) and 2px spacing between widgets.
func layoutWindow(t *testing.T, height float32, body func(ctx *Context)) {
	t.Helper()
	ctx := newTestContext(t)
	ctx.Style().Window.Spacing = Vec2{X: 2, Y: 2}
	frame(ctx, nil, func() {
		if ctx.Begin("layout", Rect{W: 308, H: height}, WindowNoScrollbar) {
			body(ctx)
		}
		ctx.End()
	})
}

func widgets(ctx *Context, n int) []Rect {
	var out []Rect
	for range n {
		r, _ := ctx.Widget()
		out = append(out, r)
	}
	return out
}

func TestLayoutTemplateRow(t *testing.T) {
	tests := []struct {
		name  string
		width float32
		want  []Rect
	}{
		{
			name:  "variable grows with free space",
			width: 308,
			want: []Rect{
				{X: 4, Y: 4, W: 108, H: 30},
				{X: 114, Y: 4, W: 108, H: 30},
				{X: 224, Y: 4, W: 80, H: 30},
			},
		},
		{
			name:  "variable keeps its minimum",
			width: 158,
			want: []Rect{
				{X: 4, Y: 4, W: 0, H: 30},
				{X: 6, Y: 4, W: 80, H: 30},
				{X: 88, Y: 4, W: 80, H: 30},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			ctx.Style().Window.Spacing = Vec2{X: 2, Y: 2}
			var got []Rect
			frame(ctx, nil, func() {
				ctx.Begin("layout", Rect{W: tt.width, H: 200}, WindowNoScrollbar)
				ctx.LayoutRowTemplateBegin(30)
				ctx.LayoutRowTemplatePushDynamic()
				ctx.LayoutRowTemplatePushVariable(80)
				ctx.LayoutRowTemplatePushStatic(80)
				ctx.LayoutRowTemplateEnd()
				got = widgets(ctx, 3)
				ctx.End()
			})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Template bounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayoutTemplateWidthsFillRow(t *testing.T) {
	layoutWindow(t, 200, func(ctx *Context) {
		ctx.LayoutRowTemplateBegin(30)
		ctx.LayoutRowTemplatePushDynamic()
		ctx.LayoutRowTemplatePushVariable(80)
		ctx.LayoutRowTemplatePushStatic(80)
		ctx.LayoutRowTemplateEnd()
		var sum float32
		for _, r := range widgets(ctx, 3) {
			sum += r.W
		}
		if sum != 300-2*2 {
			t.Errorf("Expected columns to sum to %v, got %v", 300-2*2, sum)
		}
	})
}

func TestLayoutRows(t *testing.T) {
	tests := []struct {
		name string
		row  func(ctx *Context) []Rect
		want []Rect
	}{
		{
			name: "dynamic columns wrap into new rows",
			row: func(ctx *Context) []Rect {
				ctx.LayoutRowDynamic(20, 2)
				return widgets(ctx, 3)
			},
			want: []Rect{
				{X: 4, Y: 4, W: 149, H: 20},
				{X: 155, Y: 4, W: 149, H: 20},
				{X: 4, Y: 26, W: 149, H: 20},
			},
		},
		{
			name: "static columns",
			row: func(ctx *Context) []Rect {
				ctx.LayoutRowStatic(20, 50, 3)
				return widgets(ctx, 3)
			},
			want: []Rect{
				{X: 4, Y: 4, W: 50, H: 20},
				{X: 56, Y: 4, W: 50, H: 20},
				{X: 108, Y: 4, W: 50, H: 20},
			},
		},
		{
			name: "ratios with a shared remainder",
			row: func(ctx *Context) []Rect {
				ctx.LayoutRow(Dynamic, 20, 0.25, -1, 0.25)
				return widgets(ctx, 3)
			},
			want: []Rect{
				{X: 4, Y: 4, W: 74, H: 20},
				{X: 80, Y: 4, W: 148, H: 20},
				{X: 230, Y: 4, W: 74, H: 20},
			},
		},
		{
			name: "pixel widths",
			row: func(ctx *Context) []Rect {
				ctx.LayoutRow(Static, 20, 30, 70)
				return widgets(ctx, 2)
			},
			want: []Rect{
				{X: 4, Y: 4, W: 30, H: 20},
				{X: 36, Y: 4, W: 70, H: 20},
			},
		},
		{
			name: "pushed static widths",
			row: func(ctx *Context) []Rect {
				ctx.LayoutRowBegin(Static, 20, 2)
				ctx.LayoutRowPush(40)
				a, _ := ctx.Widget()
				ctx.LayoutRowPush(60)
				b, _ := ctx.Widget()
				ctx.LayoutRowEnd()
				return []Rect{a, b}
			},
			want: []Rect{
				{X: 4, Y: 4, W: 40, H: 20},
				{X: 46, Y: 4, W: 60, H: 20},
			},
		},
		{
			name: "free placement in a static space",
			row: func(ctx *Context) []Rect {
				ctx.LayoutSpaceBegin(Static, 100, 1)
				ctx.LayoutSpacePush(Rect{X: 10, Y: 20, W: 30, H: 40})
				r, _ := ctx.Widget()
				ctx.LayoutSpaceEnd()
				return []Rect{r}
			},
			want: []Rect{{X: 14, Y: 24, W: 30, H: 40}},
		},
		{
			name: "zero height uses the minimum row height",
			row: func(ctx *Context) []Rect {
				ctx.LayoutRowDynamic(0, 1)
				return widgets(ctx, 1)
			},
			want: []Rect{{X: 4, Y: 4, W: 300, H: 13 + 2*8}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Rect
			layoutWindow(t, 200, func(ctx *Context) { got = tt.row(ctx) })
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Bounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayoutWidgetVisibility(t *testing.T) {
	var states []WidgetLayoutState
	ctx := newTestContext(t)
	ctx.Style().Window.Spacing = Vec2{X: 2, Y: 2}
	frame(ctx, hover(10, 10), func() {
		ctx.Begin("clip", Rect{W: 308, H: 60}, WindowNoScrollbar)
		ctx.LayoutRowDynamic(20, 1)
		for range 4 {
			_, s := ctx.Widget()
			states = append(states, s)
		}
		ctx.End()
	})
	want := []WidgetLayoutState{WidgetValid, WidgetROM, WidgetROM, WidgetInvalid}
	if diff := cmp.Diff(want, states); diff != "" {
		t.Errorf("Widget states mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutWidgetBoundsDoesNotAllocate(t *testing.T) {
	layoutWindow(t, 200, func(ctx *Context) {
		ctx.LayoutRowDynamic(20, 2)
		peek := ctx.LayoutWidgetBounds()
		got, _ := ctx.Widget()
		if diff := cmp.Diff(peek, got); diff != "" {
			t.Errorf("Peeked bounds differ from allocated (-peek +got):\n%s", diff)
		}
	})
}

func TestLayoutSpacingSkipsSlots(t *testing.T) {
	layoutWindow(t, 200, func(ctx *Context) {
		ctx.LayoutRowStatic(20, 50, 3)
		ctx.Spacing(2)
		r, _ := ctx.Widget()
		if want := (Rect{X: 108, Y: 4, W: 50, H: 20}); r != want {
			t.Errorf("Expected %v after two skipped slots, got %v", want, r)
		}
	})
}

func TestLayoutSpaceConversions(t *testing.T) {
	layoutWindow(t, 200, func(ctx *Context) {
		ctx.LayoutSpaceBegin(Static, 100, 1)
		p := Vec2{X: 5, Y: 6}
		screen := ctx.LayoutSpaceToScreen(p)
		if want := (Vec2{X: 9, Y: 10}); screen != want {
			t.Errorf("Expected screen point %v, got %v", want, screen)
		}
		if back := ctx.LayoutSpaceToLocal(screen); back != p {
			t.Errorf("Expected round trip to %v, got %v", p, back)
		}
		ctx.LayoutSpaceEnd()
	})
}

func TestLayoutRatioFromPixel(t *testing.T) {
	layoutWindow(t, 200, func(ctx *Context) {
		if got := ctx.LayoutRatioFromPixel(154); got != 0.5 {
			t.Errorf("Expected ratio 0.5, got %v", got)
		}
		if got := ctx.LayoutRatioFromPixel(1000); got != 1 {
			t.Errorf("Expected ratio clamped to 1, got %v", got)
		}
	})
}

func TestLayoutViolations(t *testing.T) {
	layoutWindow(t, 200, func(ctx *Context) {
		expectViolation(t, ErrLayoutRatios, func() { ctx.LayoutRow(Dynamic, 20) })

		ctx.LayoutRowTemplateBegin(20)
		for range MaxTemplateColumns {
			ctx.LayoutRowTemplatePushStatic(10)
		}
		expectViolation(t, ErrTemplateColumns, func() { ctx.LayoutRowTemplatePushStatic(10) })
	})
}
