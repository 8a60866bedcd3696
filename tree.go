package nk

// TreeType selects how a tree header is drawn.
type TreeType uint8

const (
	TreeNode TreeType = iota // A plain row with a toggle symbol
	TreeTab                  // A filled tab header
)

// TreePush draws a collapsible tree header. Its collapse state is kept by
// the context under title and id; id separates headers sharing a title.
// Content and a matching TreePop follow only when it returns true.
func (ctx *Context) TreePush(kind TreeType, title string, initial CollapseState, id int) bool {
	if !ctx.requireWindow("TreePush") {
		return false
	}
	win := ctx.current
	v := ctx.value(win, HashString(title, uint32(id)), uint32(initial))
	if v == nil {
		return false
	}
	state := CollapseState(*v)
	open := ctx.treeBase(kind, title, &state)
	*v = uint32(state)
	return open
}

// TreeStatePush is TreePush with a caller-owned collapse state.
func (ctx *Context) TreeStatePush(kind TreeType, title string, state *CollapseState) bool {
	if !ctx.requireWindow("TreeStatePush") {
		return false
	}
	return ctx.treeBase(kind, title, state)
}

func (ctx *Context) treeBase(kind TreeType, title string, state *CollapseState) bool {
	win := ctx.current
	layout := win.layout
	out := &win.buffer
	style := &ctx.style
	font := style.Font
	spacing := style.Window.Spacing

	rowHeight := font.Height() + 2*style.Tab.Padding.Y
	ctx.LayoutSetMinRowHeight(rowHeight)
	ctx.LayoutRowDynamic(rowHeight, 1)
	ctx.LayoutResetMinRowHeight()

	header, ws := ctx.Widget()
	t := textStyle{text: style.Tab.Text, background: style.Window.Background}
	if kind == TreeTab {
		bg := style.Tab.Background
		if bg.Type == StyleItemImageType {
			out.DrawImage(header, bg.Image, ColorWhite)
			t.background = ColorTransparent
		} else {
			out.FillRect(header, 0, style.Tab.BorderColor)
			out.FillRect(header.Shrink(style.Tab.Border), style.Tab.Rounding, bg.Color)
			t.background = bg.Color
		}
	}

	var in *Input
	if layout.flags&WindowROM == 0 && ws == WidgetValid {
		in = &ctx.input
	}
	var st WidgetState
	if buttonBehavior(&st, header, in, ButtonDefault) {
		if *state == Maximized {
			*state = Minimized
		} else {
			*state = Maximized
		}
	}

	sym, button := style.Tab.SymMinimize, &style.Tab.NodeMinimizeButton
	switch {
	case *state == Maximized && kind == TreeTab:
		sym, button = style.Tab.SymMaximize, &style.Tab.TabMaximizeButton
	case *state == Maximized:
		sym, button = style.Tab.SymMaximize, &style.Tab.NodeMaximizeButton
	case kind == TreeTab:
		button = &style.Tab.TabMinimizeButton
	}

	toggle := Rect{
		X: header.X + style.Tab.Padding.X,
		Y: header.Y + style.Tab.Padding.Y,
		W: font.Height(),
		H: font.Height(),
	}
	ctx.doButtonSymbol(&st, out, toggle, sym, ButtonDefault, button, nil)

	header.W = maxf(header.W, toggle.W+spacing.X)
	label := Rect{
		X: toggle.X + toggle.W + spacing.X,
		Y: toggle.Y,
		W: header.W - (toggle.W + spacing.Y + style.Tab.Indent),
		H: font.Height(),
	}
	widgetText(out, label, title, &t, TextLeft, font)

	if *state != Maximized {
		return false
	}
	layout.atX = header.X + float32(*layout.offsetX) + style.Tab.Indent
	layout.bounds.W = maxf(layout.bounds.W, style.Tab.Indent)
	layout.bounds.W -= style.Tab.Indent + style.Window.Padding.X
	layout.row.treeDepth++
	return true
}

// TreePop closes the innermost open tree node.
func (ctx *Context) TreePop() {
	if !ctx.requireWindow("TreePop") {
		return
	}
	layout := ctx.current.layout
	if layout.row.treeDepth == 0 {
		ctx.violation(ErrTreeUnderflow, "in %q", ctx.current.nameString)
		return
	}
	layout.atX -= ctx.style.Tab.Indent + float32(*layout.offsetX)
	layout.bounds.W += ctx.style.Tab.Indent + ctx.style.Window.Padding.X
	layout.row.treeDepth--
}
