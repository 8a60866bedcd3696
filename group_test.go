package nk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// groupFrame declares a window whose first row holds a 300x100 group slot
// at (4, 4).
func groupFrame(ctx *Context, input func(*Context), body func()) {
	frame(ctx, input, func() {
		ctx.Begin("w", Rect{W: 308, H: 200}, WindowNoScrollbar)
		ctx.LayoutRowDynamic(100, 1)
		body()
		ctx.End()
	})
}

func TestGroupContentFollowsScroll(t *testing.T) {
	ctx := newTestContext(t)
	var got []Rect
	body := func() {
		if ctx.GroupBegin("g", WindowNoScrollbar) {
			ctx.LayoutRowDynamic(20, 1)
			r, _ := ctx.Widget()
			got = append(got, r)
			ctx.GroupEnd()
		}
	}
	groupFrame(ctx, nil, body)
	groupFrame(ctx, nil, func() {
		ctx.GroupSetScroll("g", 0, 10)
		body()
	})

	want := []Rect{
		{X: 8, Y: 8, W: 292, H: 20},
		{X: 8, Y: -2, W: 292, H: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Group widget bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupScrollPersists(t *testing.T) {
	ctx := newTestContext(t)
	groupFrame(ctx, nil, func() { ctx.GroupSetScroll("g", 3, 7) })

	var x, y uint32
	groupFrame(ctx, nil, func() { x, y = ctx.GroupGetScroll("g") })
	if x != 3 || y != 7 {
		t.Errorf("Expected offsets (3, 7), got (%d, %d)", x, y)
	}
}

func TestGroupRestoresParentLayout(t *testing.T) {
	ctx := newTestContext(t)
	var after Rect
	groupFrame(ctx, nil, func() {
		if ctx.GroupBegin("g", WindowNoScrollbar) {
			ctx.LayoutRowDynamic(20, 3)
			widgets(ctx, 5)
			ctx.GroupEnd()
		}
		after, _ = ctx.Widget()
	})
	// the parent row continues below the 100px group slot
	if want := (Rect{X: 4, Y: 108, W: 300, H: 100}); after != want {
		t.Errorf("Expected the parent slot %v after the group, got %v", want, after)
	}
}

func TestGroupEndOutsideGroup(t *testing.T) {
	ctx := newTestContext(t)
	groupFrame(ctx, nil, func() {
		expectViolation(t, ErrNotInGroup, func() { ctx.GroupEnd() })
	})
}

func TestVisibleRows(t *testing.T) {
	tests := []struct {
		name               string
		rows               int
		height, scroll     float32
		wantBegin, wantCnt int
	}{
		{name: "top", rows: 100, height: 100, scroll: 0, wantBegin: 0, wantCnt: 5},
		{name: "partial row", rows: 100, height: 100, scroll: 45, wantBegin: 2, wantCnt: 5},
		{name: "short list", rows: 3, height: 100, scroll: 0, wantBegin: 0, wantCnt: 3},
		{name: "scrolled past the end", rows: 3, height: 100, scroll: 500, wantBegin: 3, wantCnt: 0},
		{name: "empty", rows: 0, height: 100, scroll: 0, wantBegin: 0, wantCnt: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			begin, count := visibleRows(tt.rows, 20, tt.height, tt.scroll)
			if begin != tt.wantBegin || count != tt.wantCnt {
				t.Errorf("Expected (%d, %d), got (%d, %d)", tt.wantBegin, tt.wantCnt, begin, count)
			}
		})
	}
}

func TestListViewDeclaresVisibleRows(t *testing.T) {
	ctx := newTestContext(t)
	var view ListView
	var labels int
	groupFrame(ctx, nil, func() {
		ctx.GroupSetScroll("list", 0, 45)
		if ctx.ListViewBegin(&view, "list", WindowNoScrollbar, 20, 100) {
			ctx.LayoutRowDynamic(20, 1)
			for i := view.Begin; i < view.End; i++ {
				ctx.Label("row", TextLeft)
				labels++
			}
			view.Finish()
		}
		if _, y := ctx.GroupGetScroll("list"); y != 45 {
			t.Errorf("Expected Finish to restore the scroll offset 45, got %d", y)
		}
	})
	if view.Begin != 2 || view.End != 7 || labels != 5 {
		t.Errorf("Expected rows 2..7, got %d..%d with %d labels", view.Begin, view.End, labels)
	}
}

func TestListViewScrollToRow(t *testing.T) {
	view := ListView{rowHeight: 20, rows: 100}
	tests := []struct {
		idx           int
		current, want float32
	}{
		{idx: 10, current: 0, want: 120},
		{idx: 1, current: 45, want: 20},
		{idx: 3, current: 45, want: 45},
		{idx: 100, current: 45, want: 45},
	}
	for _, tt := range tests {
		if got := view.ScrollToRow(tt.idx, tt.current, 100); got != tt.want {
			t.Errorf("ScrollToRow(%d, %v) = %v, want %v", tt.idx, tt.current, got, tt.want)
		}
	}
	if got := view.ContentHeight(); got != 2000 {
		t.Errorf("Expected content height 2000, got %v", got)
	}
}
