package nk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func commandsOf(ctx *Context, typ CommandType) []Command {
	var out []Command
	for cmd := range ctx.Commands() {
		if cmd.Type == typ {
			out = append(out, cmd)
		}
	}
	return out
}

func TestChartColumns(t *testing.T) {
	ctx := newTestContext(t)
	var events []ChartEvent
	widgetFrame(ctx, press(50, 20), func() {
		if ctx.ChartBegin(ChartColumn, 2, 0, 10) {
			ctx.ChartEnd()
		}
	})
	// a click completes on release
	ctx.InputBegin()
	release(50, 20)(ctx)
	ctx.InputEnd()

	ctx.Begin("widgets", Rect{W: 308, H: 200}, WindowNoScrollbar)
	ctx.LayoutRowDynamic(30, 1)
	if !ctx.ChartBeginColored(ChartColumn, ColorBlue, ColorRed, 2, 0, 10) {
		t.Fatalf("Expected a visible chart")
	}
	for _, v := range []float32{10, 5, 7} {
		events = append(events, ctx.ChartPush(v))
	}
	ctx.ChartEnd()
	ctx.End()

	want := []ChartEvent{ChartHovering | ChartClicked, 0, 0}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("Chart events mismatch (-want +got):\n%s", diff)
	}

	var columns []Rect
	for _, cmd := range commandsOf(ctx, CommandRectFilled) {
		if cmd.Color == ColorBlue || cmd.Color == ColorRed {
			columns = append(columns, cmd.Rect)
		}
	}
	// the chart area is {8, 8, 292, 22} and columns are 1px apart
	wantCols := []Rect{
		{X: 8, Y: 8, W: 145.5, H: 22},
		{X: 154.5, Y: 19, W: 145.5, H: 11},
	}
	if diff := cmp.Diff(wantCols, columns); diff != "" {
		t.Errorf("Column bounds mismatch (-want +got):\n%s", diff)
	}
	ctx.Clear()
}

func TestChartLinesIgnoreExtraValues(t *testing.T) {
	ctx := newTestContext(t)
	var events []ChartEvent
	widgetFrame(ctx, hover(8, 30), func() {
		if ctx.ChartBegin(ChartLines, 3, 0, 10) {
			for _, v := range []float32{0, 10, 5, 5} {
				events = append(events, ctx.ChartPush(v))
			}
			if got := len(commandsOf(ctx, CommandLine)); got != 2 {
				t.Errorf("Expected 2 line segments, got %d", got)
			}
			ctx.ChartEnd()
		}
	})
	want := []ChartEvent{ChartHovering, 0, 0, 0}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("Chart events mismatch (-want +got):\n%s", diff)
	}
}

func TestChartSlots(t *testing.T) {
	ctx := newTestContext(t)
	widgetFrame(ctx, nil, func() {
		if !ctx.ChartBegin(ChartLines, 2, 0, 1) {
			t.Fatalf("Expected a visible chart")
		}
		ctx.ChartAddSlot(ChartColumn, 2, -1, 1)
		if ctx.current.layout.chart.slot != 2 {
			t.Errorf("Expected 2 chart slots")
		}
		if ev := ctx.ChartPushSlot(0.5, 3); ev != 0 {
			t.Errorf("Expected a push to a missing slot to be ignored")
		}
		ctx.ChartEnd()
	})
}
