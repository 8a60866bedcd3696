package nk

// LayoutFormat selects whether row widths are ratios of the panel width
// or pixels.
type LayoutFormat uint8

const (
	Dynamic LayoutFormat = iota // Widths are ratios of the usable width
	Static                      // Widths are pixels
)

// RowLayoutType is the strategy dividing a row among its columns.
type RowLayoutType uint8

const (
	LayoutDynamicFixed RowLayoutType = iota // Equal columns sharing the width
	LayoutDynamicRow                        // One ratio pushed per widget
	LayoutDynamicFree                       // Widgets placed by ratio rects
	LayoutDynamic                           // Array of ratios
	LayoutStaticFixed                       // Equal columns of a fixed width
	LayoutStaticRow                         // One pixel width pushed per widget
	LayoutStaticFree                        // Widgets placed by pixel rects
	LayoutStatic                            // Array of pixel widths
	LayoutTemplate                          // Static, variable and dynamic columns
)

// MaxTemplateColumns is the column limit of a template row.
const MaxTemplateColumns = 16

type rowLayout struct {
	typ        RowLayoutType
	index      int
	height     float32
	minHeight  float32
	columns    int
	ratio      []float32
	itemWidth  float32
	itemHeight float32
	itemOffset float32
	filled     float32
	item       Rect
	treeDepth  int
	templates  [MaxTemplateColumns]float32
}

func (ctx *Context) resetMinRowHeight(layout *Panel) {
	layout.row.minHeight = ctx.style.Font.Height() +
		2*ctx.style.Text.Padding.Y +
		2*ctx.style.Window.MinRowHeightPadding
}

// LayoutSetMinRowHeight sets the height used by rows declared with height 0.
func (ctx *Context) LayoutSetMinRowHeight(height float32) {
	if !ctx.requireWindow("LayoutSetMinRowHeight") {
		return
	}
	ctx.current.layout.row.minHeight = height
}

// LayoutResetMinRowHeight derives the minimum row height from the font.
func (ctx *Context) LayoutResetMinRowHeight() {
	if !ctx.requireWindow("LayoutResetMinRowHeight") {
		return
	}
	ctx.resetMinRowHeight(ctx.current.layout)
}

// usableSpace is the row width left after the spacing between columns.
func (ctx *Context) usableSpace(total float32, columns int) float32 {
	return total - float32(max(columns-1, 0))*ctx.style.Window.Spacing.X
}

// panelLayout starts a new row below the current one.
func (ctx *Context) panelLayout(win *Window, height float32, cols int) {
	layout := win.layout
	spacing := ctx.style.Window.Spacing

	layout.row.index = 0
	layout.atY += layout.row.height
	layout.row.columns = cols
	if height == 0 {
		layout.row.height = maxf(height, layout.row.minHeight) + spacing.Y
	} else {
		layout.row.height = height + spacing.Y
	}
	layout.row.itemOffset = 0
	if layout.flags&windowDynamic != 0 {
		bg := Rect{
			X: win.bounds.X,
			W: win.bounds.W,
			Y: layout.atY - 1,
			H: layout.row.height + 1,
		}
		win.buffer.FillRect(bg, 0, ctx.style.Window.Background)
	}
}

func (ctx *Context) panelAllocRow(win *Window) {
	layout := win.layout
	ctx.panelLayout(win, layout.row.height-ctx.style.Window.Spacing.Y, layout.row.columns)
}

func (ctx *Context) rowLayout(format LayoutFormat, height float32, cols int, width float32) {
	win := ctx.current
	ctx.panelLayout(win, height, cols)
	row := &win.layout.row
	if format == Dynamic {
		row.typ = LayoutDynamicFixed
	} else {
		row.typ = LayoutStaticFixed
	}
	row.ratio = nil
	row.filled = 0
	row.itemOffset = 0
	row.itemWidth = width
}

// LayoutRowDynamic starts a row of cols equal columns filling the width.
// A height of 0 uses the minimum row height.
func (ctx *Context) LayoutRowDynamic(height float32, cols int) {
	if !ctx.requireWindow("LayoutRowDynamic") {
		return
	}
	ctx.rowLayout(Dynamic, height, cols, 0)
}

// LayoutRowStatic starts a row of cols columns itemWidth pixels wide.
func (ctx *Context) LayoutRowStatic(height, itemWidth float32, cols int) {
	if !ctx.requireWindow("LayoutRowStatic") {
		return
	}
	ctx.rowLayout(Static, height, cols, itemWidth)
}

// LayoutRowBegin starts a row whose column widths are pushed one at a
// time with LayoutRowPush.
func (ctx *Context) LayoutRowBegin(format LayoutFormat, height float32, cols int) {
	if !ctx.requireWindow("LayoutRowBegin") {
		return
	}
	win := ctx.current
	ctx.panelLayout(win, height, cols)
	row := &win.layout.row
	if format == Dynamic {
		row.typ = LayoutDynamicRow
	} else {
		row.typ = LayoutStaticRow
	}
	row.ratio = nil
	row.filled = 0
	row.itemWidth = 0
	row.itemOffset = 0
	row.columns = cols
}

// LayoutRowPush sets the width of the next widget: a ratio for dynamic
// rows, pixels for static ones. A dynamic ratio of 0 takes what is left.
func (ctx *Context) LayoutRowPush(ratioOrWidth float32) {
	if !ctx.requireWindow("LayoutRowPush") {
		return
	}
	row := &ctx.current.layout.row
	switch row.typ {
	case LayoutDynamicRow:
		if ratioOrWidth+row.filled > 1 {
			return
		}
		if ratioOrWidth > 0 {
			row.itemWidth = saturate(ratioOrWidth)
		} else {
			row.itemWidth = 1 - row.filled
		}
	case LayoutStaticRow:
		row.itemWidth = ratioOrWidth
	}
}

// LayoutRowEnd finishes a row started by LayoutRowBegin.
func (ctx *Context) LayoutRowEnd() {
	if !ctx.requireWindow("LayoutRowEnd") {
		return
	}
	row := &ctx.current.layout.row
	if row.typ != LayoutDynamicRow && row.typ != LayoutStaticRow {
		return
	}
	row.itemWidth = 0
	row.itemOffset = 0
}

// LayoutRow starts a row with one ratio or pixel width per column. For
// dynamic rows, negative ratios share whatever the others leave free.
func (ctx *Context) LayoutRow(format LayoutFormat, height float32, widths ...float32) {
	if !ctx.requireWindow("LayoutRow") {
		return
	}
	if len(widths) == 0 {
		ctx.violation(ErrLayoutRatios, "row needs at least one column")
		return
	}
	win := ctx.current
	ctx.panelLayout(win, height, len(widths))
	row := &win.layout.row
	row.ratio = append(row.ratio[:0], widths...)
	if format == Dynamic {
		var r float32
		undef := 0
		for _, w := range widths {
			if w < 0 {
				undef++
			} else {
				r += w
			}
		}
		r = saturate(1 - r)
		row.typ = LayoutDynamic
		row.itemWidth = 0
		if r > 0 && undef > 0 {
			row.itemWidth = r / float32(undef)
		}
	} else {
		row.typ = LayoutStatic
		row.itemWidth = 0
	}
	row.itemOffset = 0
	row.filled = 0
}

// LayoutRowTemplateBegin starts a template row. Columns are declared with
// the LayoutRowTemplatePush functions and resolved by LayoutRowTemplateEnd.
func (ctx *Context) LayoutRowTemplateBegin(height float32) {
	if !ctx.requireWindow("LayoutRowTemplateBegin") {
		return
	}
	win := ctx.current
	ctx.panelLayout(win, height, 1)
	row := &win.layout.row
	row.typ = LayoutTemplate
	row.columns = 0
	row.ratio = nil
	row.itemWidth = 0
	row.itemHeight = 0
	row.itemOffset = 0
	row.filled = 0
	row.item = Rect{}
}

func (ctx *Context) pushTemplate(op string, v float32) {
	if !ctx.requireWindow(op) {
		return
	}
	row := &ctx.current.layout.row
	if row.typ != LayoutTemplate {
		return
	}
	if row.columns >= MaxTemplateColumns {
		ctx.violation(ErrTemplateColumns, "template rows hold %d columns", MaxTemplateColumns)
		return
	}
	row.templates[row.columns] = v
	row.columns++
}

// LayoutRowTemplatePushDynamic adds a column that takes a share of the
// free space and may shrink to nothing.
func (ctx *Context) LayoutRowTemplatePushDynamic() {
	ctx.pushTemplate("LayoutRowTemplatePushDynamic", -1)
}

// LayoutRowTemplatePushVariable adds a column at least minWidth wide that
// grows with the free space.
func (ctx *Context) LayoutRowTemplatePushVariable(minWidth float32) {
	ctx.pushTemplate("LayoutRowTemplatePushVariable", -minWidth)
}

// LayoutRowTemplatePushStatic adds a column of a fixed width.
func (ctx *Context) LayoutRowTemplatePushStatic(width float32) {
	ctx.pushTemplate("LayoutRowTemplatePushStatic", width)
}

// LayoutRowTemplateEnd resolves the template column widths.
func (ctx *Context) LayoutRowTemplateEnd() {
	if !ctx.requireWindow("LayoutRowTemplateEnd") {
		return
	}
	layout := ctx.current.layout
	row := &layout.row
	if row.typ != LayoutTemplate {
		return
	}

	var minFixed, totalFixed, maxVariable float32
	variableCount, minVariableCount := 0, 0
	for _, w := range row.templates[:row.columns] {
		switch {
		case w >= 0:
			totalFixed += w
			minFixed += w
		case w < -1:
			totalFixed += -w
			maxVariable = maxf(maxVariable, -w)
			variableCount++
		default:
			minVariableCount++
			variableCount++
		}
	}
	if variableCount == 0 {
		return
	}

	space := ctx.usableSpace(layout.bounds.W, row.columns)
	varWidth := maxf(space-minFixed, 0) / float32(variableCount)
	enough := varWidth >= maxVariable
	if !enough {
		varWidth = 0
		if minVariableCount > 0 {
			varWidth = maxf(space-totalFixed, 0) / float32(minVariableCount)
		}
	}
	for i := range row.templates[:row.columns] {
		w := &row.templates[i]
		switch {
		case *w >= 0:
		case *w < -1 && !enough:
			*w = -*w
		default:
			*w = varWidth
		}
	}
}

// LayoutSpaceBegin starts a row of height in which widgets are placed
// freely with LayoutSpacePush.
func (ctx *Context) LayoutSpaceBegin(format LayoutFormat, height float32, widgetCount int) {
	if !ctx.requireWindow("LayoutSpaceBegin") {
		return
	}
	win := ctx.current
	ctx.panelLayout(win, height, widgetCount)
	row := &win.layout.row
	if format == Static {
		row.typ = LayoutStaticFree
	} else {
		row.typ = LayoutDynamicFree
	}
	row.ratio = nil
	row.filled = 0
	row.itemWidth = 0
	row.itemOffset = 0
}

// LayoutSpacePush places the next widget. Dynamic spaces take ratios of
// the row, static spaces pixels relative to the row origin.
func (ctx *Context) LayoutSpacePush(r Rect) {
	if !ctx.requireWindow("LayoutSpacePush") {
		return
	}
	row := &ctx.current.layout.row
	if row.typ != LayoutStaticFree && row.typ != LayoutDynamicFree {
		return
	}
	row.item = r
}

// LayoutSpaceEnd finishes a free layout row.
func (ctx *Context) LayoutSpaceEnd() {
	if !ctx.requireWindow("LayoutSpaceEnd") {
		return
	}
	row := &ctx.current.layout.row
	row.itemWidth = 0
	row.itemHeight = 0
	row.itemOffset = 0
	row.item = Rect{}
}

// LayoutSpaceBounds returns the screen area of the current free row.
func (ctx *Context) LayoutSpaceBounds() Rect {
	if !ctx.requireWindow("LayoutSpaceBounds") {
		return Rect{}
	}
	layout := ctx.current.layout
	return Rect{X: layout.clip.X, Y: layout.clip.Y, W: layout.clip.W, H: layout.row.height}
}

func (l *Panel) origin() Vec2 {
	return Vec2{X: l.atX - float32(*l.offsetX), Y: l.atY - float32(*l.offsetY)}
}

// LayoutSpaceToScreen converts a point in row space to screen space.
func (ctx *Context) LayoutSpaceToScreen(v Vec2) Vec2 {
	if !ctx.requireWindow("LayoutSpaceToScreen") {
		return v
	}
	return v.Add(ctx.current.layout.origin())
}

// LayoutSpaceToLocal converts a screen point to row space.
func (ctx *Context) LayoutSpaceToLocal(v Vec2) Vec2 {
	if !ctx.requireWindow("LayoutSpaceToLocal") {
		return v
	}
	return v.Sub(ctx.current.layout.origin())
}

// LayoutSpaceRectToScreen moves r from row space to screen space.
func (ctx *Context) LayoutSpaceRectToScreen(r Rect) Rect {
	p := ctx.LayoutSpaceToScreen(r.Pos())
	r.X, r.Y = p.X, p.Y
	return r
}

// LayoutSpaceRectToLocal moves r from screen space to row space.
func (ctx *Context) LayoutSpaceRectToLocal(r Rect) Rect {
	p := ctx.LayoutSpaceToLocal(r.Pos())
	r.X, r.Y = p.X, p.Y
	return r
}

// LayoutRatioFromPixel converts a pixel width to a ratio of the current
// window width, clamped to [0, 1].
func (ctx *Context) LayoutRatioFromPixel(width float32) float32 {
	if !ctx.requireWindow("LayoutRatioFromPixel") {
		return 0
	}
	w := ctx.current.bounds.W
	if w <= 0 {
		return 0
	}
	return clampf(width/w, 0, 1)
}

// widgetSpace computes the bounds of the next widget in the current row.
// With modify set the row cursor advances past it.
func (ctx *Context) widgetSpace(win *Window, modify bool) Rect {
	layout := win.layout
	row := &layout.row
	spacing := ctx.style.Window.Spacing
	panelSpace := ctx.usableSpace(layout.bounds.W, row.columns)
	offX, offY := float32(*layout.offsetX), float32(*layout.offsetY)

	var itemOffset, itemWidth, itemSpacing float32
	var b Rect
	switch row.typ {
	case LayoutDynamicFixed:
		w := maxf(1, panelSpace) / float32(row.columns)
		itemOffset = float32(row.index) * w
		itemWidth = w + frac(itemOffset)
		itemSpacing = float32(row.index) * spacing.X
	case LayoutDynamicRow:
		w := row.itemWidth * panelSpace
		itemOffset = row.itemOffset
		itemWidth = w + frac(itemOffset)
		if modify {
			row.itemOffset += w + spacing.X
			row.filled += row.itemWidth
			row.index = 0
		}
	case LayoutDynamicFree:
		b.X = layout.atX + layout.bounds.W*row.item.X - offX
		b.Y = layout.atY + row.height*row.item.Y - offY
		b.W = layout.bounds.W*row.item.W + frac(b.X)
		b.H = row.height*row.item.H + frac(b.Y)
		return b
	case LayoutDynamic:
		ratio := row.itemWidth
		if row.index < len(row.ratio) && row.ratio[row.index] >= 0 {
			ratio = row.ratio[row.index]
		}
		w := ratio * panelSpace
		itemSpacing = float32(row.index) * spacing.X
		itemOffset = row.itemOffset
		itemWidth = w + frac(itemOffset)
		if modify {
			row.itemOffset += w
			row.filled += ratio
		}
	case LayoutStaticFixed:
		itemWidth = row.itemWidth
		itemOffset = float32(row.index) * itemWidth
		itemSpacing = float32(row.index) * spacing.X
	case LayoutStaticRow:
		itemWidth = row.itemWidth
		itemOffset = row.itemOffset
		if modify {
			row.itemOffset += itemWidth + spacing.X
			row.index = 0
		}
	case LayoutStaticFree:
		b.X = layout.atX + row.item.X
		b.W = row.item.W
		if b.X+b.W > layout.maxX && modify {
			layout.maxX = b.X + b.W
		}
		b.X -= offX
		b.Y = layout.atY + row.item.Y - offY
		b.H = row.item.H
		return b
	case LayoutStatic:
		itemSpacing = float32(row.index) * spacing.X
		if row.index < len(row.ratio) {
			itemWidth = row.ratio[row.index]
		}
		itemOffset = row.itemOffset
		if modify {
			row.itemOffset += itemWidth
		}
	case LayoutTemplate:
		var w float32
		if row.index < row.columns {
			w = row.templates[row.index]
		}
		itemOffset = row.itemOffset
		itemWidth = w + frac(itemOffset)
		itemSpacing = float32(row.index) * spacing.X
		if modify {
			row.itemOffset += w
		}
	}

	b.W = itemWidth
	b.H = row.height - spacing.Y
	b.Y = layout.atY - offY
	b.X = layout.atX + itemOffset + itemSpacing
	if b.X+b.W > layout.maxX && modify {
		layout.maxX = b.X + b.W
	}
	b.X -= offX
	return b
}

func (t RowLayoutType) autoAdvances() bool {
	switch t {
	case LayoutDynamicRow, LayoutStaticRow, LayoutDynamicFree, LayoutStaticFree:
		return false
	}
	return true
}

// panelAllocSpace hands out the next widget rectangle, starting a new row
// with the same strategy once the current one is full.
func (ctx *Context) panelAllocSpace() Rect {
	win := ctx.current
	layout := win.layout
	if layout.row.index >= layout.row.columns && layout.row.typ.autoAdvances() {
		ctx.panelAllocRow(win)
	}
	b := ctx.widgetSpace(win, true)
	layout.row.index++
	return b
}

// LayoutWidgetBounds returns the bounds the next widget would get without
// allocating it.
func (ctx *Context) LayoutWidgetBounds() Rect {
	if !ctx.requireWindow("LayoutWidgetBounds") {
		return Rect{}
	}
	win := ctx.current
	layout := win.layout
	y, index, off := layout.atY, layout.row.index, layout.row.itemOffset
	if layout.row.index >= layout.row.columns && layout.row.typ.autoAdvances() {
		layout.atY += layout.row.height
		layout.row.index = 0
		layout.row.itemOffset = 0
	}
	b := ctx.widgetSpace(win, false)
	layout.atY, layout.row.index, layout.row.itemOffset = y, index, off
	return b
}

// Spacing skips cols widget slots, wrapping into new rows as needed.
func (ctx *Context) Spacing(cols int) {
	if !ctx.requireWindow("Spacing") {
		return
	}
	win := ctx.current
	layout := win.layout
	if layout.row.columns <= 0 {
		return
	}
	index := (layout.row.index + cols) % layout.row.columns
	rows := (layout.row.index + cols) / layout.row.columns
	if rows > 0 {
		for range rows {
			ctx.panelAllocRow(win)
		}
		cols = index
	}
	if layout.row.typ != LayoutDynamicFixed && layout.row.typ != LayoutStaticFixed {
		for range cols {
			ctx.panelAllocSpace()
		}
	}
	layout.row.index = index
}

// Widget allocates space for a custom widget and reports whether it is
// visible and whether the pointer is over it.
func (ctx *Context) Widget() (Rect, WidgetLayoutState) {
	if !ctx.requireWindow("Widget") {
		return Rect{}, WidgetInvalid
	}
	bounds := ctx.panelAllocSpace().truncate()
	layout := ctx.current.layout
	if layout.flags&(WindowMinimized|WindowHidden|WindowClosed) != 0 {
		return bounds, WidgetInvalid
	}
	c := layout.clip.truncate()
	v := c.unify(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	if !intersects(c, bounds) {
		return bounds, WidgetInvalid
	}
	if !v.Contains(ctx.input.Mouse.Pos) {
		return bounds, WidgetROM
	}
	return bounds, WidgetValid
}

// WidgetFitting is Widget with the bounds grown by itemPadding, and by the
// panel padding at the row edges.
func (ctx *Context) WidgetFitting(itemPadding Vec2) (Rect, WidgetLayoutState) {
	bounds, state := ctx.Widget()
	if ctx.current == nil || ctx.current.layout == nil {
		return bounds, state
	}
	layout := ctx.current.layout
	panelPadding := ctx.panelPadding(layout.typ)
	if layout.row.index == 1 {
		bounds.W += panelPadding.X
		bounds.X -= panelPadding.X
	} else {
		bounds.X -= itemPadding.X
	}
	if layout.row.index == layout.row.columns {
		bounds.W += panelPadding.X
	} else {
		bounds.W += itemPadding.X
	}
	return bounds, state
}
