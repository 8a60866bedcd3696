package nk

// ListView is a group that only lays out the rows currently scrolled into
// view. Rows Begin through End-1 are declared between ListViewBegin and
// End, each rowHeight tall:
//
//	var view nk.ListView
//	if ctx.ListViewBegin(&view, "log", nk.WindowBorder, 20, len(lines)) {
//		ctx.LayoutRowDynamic(20, 1)
//		for i := view.Begin; i < view.End; i++ {
//			ctx.Label(lines[i], nk.TextLeft)
//		}
//		view.Finish()
//	}
type ListView struct {
	Begin, End int // Visible row range, End exclusive
	Count      int // Number of visible rows

	rowHeight     float32
	rows          int
	scrollValue   uint32
	scrollPointer *uint32
	ctx           *Context
}

// visibleRows returns the rows of height rowHeight that a viewport of the
// given height shows at scroll offset scrollY.
func visibleRows(rows int, rowHeight, height, scrollY float32) (begin, count int) {
	if rows <= 0 || rowHeight <= 0 {
		return 0, 0
	}
	begin = max(int(scrollY/rowHeight), 0)
	begin = min(begin, rows)
	count = max(int(ceilf(height/rowHeight)), 0)
	return begin, min(count, rows-begin)
}

// ListViewBegin starts a list view over rows rows. It returns false when
// the group is not visible; Finish is then not needed.
func (ctx *Context) ListViewBegin(view *ListView, title string, flags WindowFlags, rowHeight float32, rows int) bool {
	if !ctx.requireWindow("ListViewBegin") {
		return false
	}
	x, y := ctx.groupOffsets(ctx.current, title, true)
	if x == nil {
		return false
	}
	*view = ListView{
		rowHeight:     rowHeight,
		rows:          rows,
		scrollValue:   *y,
		scrollPointer: y,
		ctx:           ctx,
	}
	// The group is laid out unscrolled; only visible rows are declared.
	*y = 0
	if !ctx.GroupScrolledOffsetBegin(x, y, title, flags) {
		*y = view.scrollValue
		return false
	}
	clip := ctx.current.layout.clip
	view.Begin, view.Count = visibleRows(rows, rowHeight, clip.H, float32(view.scrollValue))
	view.End = view.Begin + view.Count
	return true
}

// ContentHeight returns the height of all rows.
func (v *ListView) ContentHeight() float32 {
	return v.rowHeight * float32(max(v.rows, 1))
}

// ScrollToRow returns the scroll offset that brings row idx into a viewport
// of the given height, or current when it is already visible.
func (v *ListView) ScrollToRow(idx int, current, height float32) float32 {
	if idx < 0 || idx >= v.rows {
		return current
	}
	top := float32(idx) * v.rowHeight
	bottom := top + v.rowHeight
	switch {
	case top < current:
		return top
	case bottom > current+height:
		return bottom - height
	}
	return current
}

// Finish ends the list view started by ListViewBegin.
func (v *ListView) Finish() {
	ctx := v.ctx
	if ctx == nil || !ctx.requireWindow("ListView.Finish") {
		return
	}
	layout := ctx.current.layout
	layout.atY = layout.bounds.Y + v.ContentHeight()
	*v.scrollPointer += v.scrollValue
	ctx.GroupEnd()
}
