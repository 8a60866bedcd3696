package nk

// GroupScrolledOffsetBegin starts a scrollable sub-panel in the next widget
// slot. The scroll offsets live in x and y. It returns false, with the
// group already ended, when the group is not visible, closed or minimized.
func (ctx *Context) GroupScrolledOffsetBegin(x, y *uint32, title string, flags WindowFlags) bool {
	if !ctx.requireWindow("GroupBegin") {
		return false
	}
	win := ctx.current
	bounds := ctx.panelAllocSpace()
	if !intersects(win.layout.clip, bounds) && flags&WindowMovable == 0 {
		return false
	}
	if win.flags&WindowROM != 0 {
		flags |= WindowROM
	}

	pan := &Window{
		bounds:     bounds,
		flags:      flags,
		scrollbar:  ScrollOffset{X: *x, Y: *y},
		buffer:     win.buffer,
		nameString: title,
		parent:     win,
	}
	pan.layout = ctx.panelPool.alloc()
	if pan.layout == nil {
		ctx.log.Debug("panel pool exhausted", "group", title)
		return false
	}
	ctx.current = pan
	if flags&WindowTitle == 0 {
		title = ""
	}
	ctx.panelBegin(title, panelGroup)

	win.buffer = pan.buffer
	win.buffer.clip = pan.layout.clip
	pan.layout.offsetX = x
	pan.layout.offsetY = y
	pan.layout.parent = win.layout
	win.layout = pan.layout
	ctx.current = win
	if pan.layout.flags&(WindowClosed|WindowMinimized) != 0 {
		ctx.GroupEnd()
		return false
	}
	return true
}

// GroupScrolledBegin is GroupScrolledOffsetBegin with the offsets held in
// one value.
func (ctx *Context) GroupScrolledBegin(off *ScrollOffset, title string, flags WindowFlags) bool {
	return ctx.GroupScrolledOffsetBegin(&off.X, &off.Y, title, flags)
}

// GroupEnd finishes the innermost group.
func (ctx *Context) GroupEnd() {
	if !ctx.requireWindow("GroupEnd") {
		return
	}
	win := ctx.current
	g := win.layout
	if g.typ != panelGroup || g.parent == nil {
		ctx.violation(ErrNotInGroup, "in %q", win.nameString)
		return
	}
	parent := g.parent
	style := &ctx.style
	padding := ctx.panelPadding(panelGroup)

	bounds := Rect{
		X: g.bounds.X - padding.X,
		Y: g.bounds.Y - (g.headerHeight + g.menu.h),
		W: g.bounds.W + 2*padding.X,
		H: g.bounds.H + g.headerHeight + g.menu.h,
	}
	if g.flags&WindowBorder != 0 {
		bounds.X -= g.border
		bounds.Y -= g.border
		bounds.W += 2 * g.border
		bounds.H += 2 * g.border
	}
	if g.flags&WindowNoScrollbar == 0 {
		bounds.W += style.Window.ScrollbarSize.X
		bounds.H += style.Window.ScrollbarSize.Y
	}

	pan := &Window{
		bounds:     bounds,
		scrollbar:  ScrollOffset{X: *g.offsetX, Y: *g.offsetY},
		flags:      g.flags,
		buffer:     win.buffer,
		layout:     g,
		parent:     win,
		nameString: win.nameString,
	}
	ctx.current = pan
	clip := parent.clip.unify(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H+padding.X)
	pan.buffer.PushScissor(clip)
	ctx.finishPanel()

	win.buffer = pan.buffer
	win.buffer.PushScissor(parent.clip)
	ctx.current = win
	win.layout = parent
}

// groupOffsets returns the stored scroll offsets of the group id, creating
// them when create is set.
func (ctx *Context) groupOffsets(win *Window, id string, create bool) (x, y *uint32) {
	hash := HashString(id, seedGroup)
	x = ctx.findValue(win, hash+1)
	if x != nil {
		return x, ctx.findValue(win, hash)
	}
	if !create {
		return nil, nil
	}
	x = ctx.addValue(win, hash+1, 0)
	y = ctx.addValue(win, hash, 0)
	if x == nil || y == nil {
		return nil, nil
	}
	return x, y
}

// GroupBegin starts a group whose scroll offsets the context keeps under
// title.
func (ctx *Context) GroupBegin(title string, flags WindowFlags) bool {
	return ctx.GroupBeginTitled(title, title, flags)
}

// GroupBeginTitled starts a group identified by id showing title.
func (ctx *Context) GroupBeginTitled(id, title string, flags WindowFlags) bool {
	if !ctx.requireWindow("GroupBegin") {
		return false
	}
	x, y := ctx.groupOffsets(ctx.current, id, true)
	if x == nil {
		return false
	}
	return ctx.GroupScrolledOffsetBegin(x, y, title, flags)
}

// GroupGetScroll returns the scroll offsets of the group id in the current
// window.
func (ctx *Context) GroupGetScroll(id string) (x, y uint32) {
	if !ctx.requireWindow("GroupGetScroll") {
		return 0, 0
	}
	px, py := ctx.groupOffsets(ctx.current, id, true)
	if px == nil {
		return 0, 0
	}
	return *px, *py
}

// GroupSetScroll sets the scroll offsets of the group id in the current
// window.
func (ctx *Context) GroupSetScroll(id string, x, y uint32) {
	if !ctx.requireWindow("GroupSetScroll") {
		return
	}
	px, py := ctx.groupOffsets(ctx.current, id, true)
	if px == nil {
		return
	}
	*px, *py = x, y
}
