package nk

// CollapseState is the state of a collapsible window or tree node.
type CollapseState uint8

const (
	Minimized CollapseState = iota
	Maximized
)

// ShowState is the visibility of a window.
type ShowState uint8

const (
	Hidden ShowState = iota
	Shown
)

// editState is the saved cursor of the edit field last active in a window.
// Fields are identified by their declaration order within the window.
type editState struct {
	name       Hash
	seq, old   uint32
	active     bool
	prev       bool
	cursor     int
	selStart   int
	selEnd     int
	scrollbar  ScrollOffset
	mode       TextEditMode
	singleLine bool
}

// popupState tracks the one popup a window can have open.
type popupState struct {
	win        *Window
	typ        panelType
	name       Hash
	active     bool
	comboCount uint32
	conCount   uint32
	conOld     uint32
	activeCon  uint32
	header     Rect

	// rollback point taken while the popup panel begins
	refs int
}

// Window is a named, persistent container. It survives across frames as
// long as Begin is called for it every frame.
type Window struct {
	seq        uint
	name       Hash
	nameString string
	flags      WindowFlags

	bounds    Rect
	scrollbar ScrollOffset
	buffer    CommandBuffer
	layout    *Panel

	scrollbarHidingTimer float32
	scrolled             bool

	popup popupState
	edit  editState

	// persistent widget state
	tables     *table
	tableCount int
	index      map[Hash]tableSlot

	// z-order list
	next, prev *Window
	parent     *Window

	// frame whose commands this window's buffer holds, for popups
	drawn uint
}

// Name returns the name the window was created with.
func (w *Window) Name() string { return w.nameString }

// Bounds returns the window rectangle.
func (w *Window) Bounds() Rect { return w.bounds }

// Flags returns the window flags.
func (w *Window) Flags() WindowFlags { return w.flags }

// findWindow looks a window up by hash and, on a hash hit, by name.
func (ctx *Context) findWindow(hash Hash, name string) *Window {
	for it := ctx.begin; it != nil; it = it.next {
		if it.name == hash && it.nameString == name {
			return it
		}
	}
	return nil
}

// insertWindow links win at the front (drawn first) or back (drawn last)
// of the z-order list.
func (ctx *Context) insertWindow(win *Window, front bool) {
	for it := ctx.begin; it != nil; it = it.next {
		if it == win {
			return
		}
	}
	switch {
	case ctx.end == nil:
		win.next, win.prev = nil, nil
		ctx.begin, ctx.end = win, win
	case front:
		win.prev = nil
		win.next = ctx.begin
		ctx.begin.prev = win
		ctx.begin = win
	default:
		win.next = nil
		win.prev = ctx.end
		ctx.end.next = win
		ctx.end = win
	}
	ctx.count++
}

func (ctx *Context) removeWindow(win *Window) {
	if win == ctx.begin || win == ctx.end {
		if win == ctx.begin {
			ctx.begin = win.next
			if win.next != nil {
				win.next.prev = nil
			}
		}
		if win == ctx.end {
			ctx.end = win.prev
			if win.prev != nil {
				win.prev.next = nil
			}
		}
	} else {
		if win.next != nil {
			win.next.prev = win.prev
		}
		if win.prev != nil {
			win.prev.next = win.next
		}
	}
	win.next, win.prev = nil, nil
	ctx.count--
}

// freeWindow returns win, its popup and its tables to the pools.
func (ctx *Context) freeWindow(win *Window) {
	ctx.freeTables(win)
	if win.popup.win != nil {
		ctx.freeWindow(win.popup.win)
		win.popup.win = nil
	}
	if win.layout != nil {
		ctx.panelPool.release(win.layout)
	}
	if ctx.editWin == win {
		ctx.editWin = nil
	}
	ctx.log.Debug("window reaped", "name", win.nameString)
	ctx.windowPool.release(win)
}

// focusBounds is the area of win that takes focus on a click: the title
// bar alone when the window is minimized.
func (ctx *Context) focusBounds(win *Window) Rect {
	b := win.bounds
	if win.flags&WindowMinimized != 0 {
		b.H = ctx.headerHeight()
	}
	return b
}

// windowAbove returns the first visible window or open popup stacked above
// win that covers p.
func (ctx *Context) windowAbove(win *Window, p Vec2) *Window {
	for it := win.next; it != nil; it = it.next {
		if it.flags&WindowHidden != 0 {
			continue
		}
		if ctx.focusBounds(it).Contains(p) {
			return it
		}
		if it.popup.win != nil && it.popup.active && it.popup.win.bounds.Contains(p) {
			return it
		}
	}
	return nil
}

// resolveFocus activates win when a click lands on a part of it no other
// window covers, and marks it read-only when it is not active.
func (ctx *Context) resolveFocus(win *Window) {
	if win.flags&(WindowHidden|WindowNoInput) != 0 {
		return
	}
	left := &ctx.input.Mouse.Buttons[ButtonLeft]
	if left.Down && left.Clicked > 0 && ctx.focusBounds(win).Contains(left.ClickedPos) {
		blocker := ctx.windowAbove(win, left.ClickedPos)
		switch {
		case blocker == nil:
			if win.flags&WindowBackground == 0 && ctx.end != win {
				ctx.removeWindow(win)
				ctx.insertWindow(win, false)
			}
			win.flags &^= WindowROM
			ctx.active = win
		case win.flags&WindowBackground != 0 || ctx.active == win:
			win.flags |= WindowROM
			blocker.flags &^= WindowROM
			ctx.active = blocker
			if blocker.flags&WindowBackground == 0 && ctx.end != blocker {
				ctx.removeWindow(blocker)
				ctx.insertWindow(blocker, false)
			}
		}
	}
	if ctx.active != win && win.flags&WindowBackground == 0 {
		win.flags |= WindowROM
	}
}

// finishPanel ends the panel of the current window and releases it.
func (ctx *Context) finishPanel() {
	win := ctx.current
	ctx.panelEnd()
	ctx.panelPool.release(win.layout)
	win.layout = nil
}

// Begin starts a window whose title is its name. See BeginTitled.
func (ctx *Context) Begin(name string, bounds Rect, flags WindowFlags) bool {
	return ctx.BeginTitled(name, name, bounds, flags)
}

// BeginTitled starts the window identified by name, creating it on first
// use. Bounds only apply on creation for movable or scalable windows. It
// reports whether the window content is visible; End must be called in
// either case.
func (ctx *Context) BeginTitled(name, title string, bounds Rect, flags WindowFlags) bool {
	if ctx.current != nil {
		ctx.violation(ErrNestedBegin, "window %q begun inside %q", name, ctx.current.nameString)
		return false
	}
	ctx.frameStarted = true
	flags &^= windowDynamic | windowRemoveROM

	hash := HashString(name, seedWindow)
	win := ctx.findWindow(hash, name)
	if win == nil {
		win = ctx.windowPool.alloc()
		if win == nil {
			ctx.log.Debug("window pool exhausted", "name", name)
			return false
		}
		win.seq = ctx.seq
		win.buffer.init(ctx.memory, &ctx.refs, true)
		ctx.insertWindow(win, flags&WindowBackground != 0)
		win.flags = flags
		win.bounds = bounds
		win.name = hash
		win.nameString = name
		if ctx.active == nil {
			ctx.active = win
		}
		ctx.log.Debug("window created", "name", name, "bounds", bounds)
	} else {
		if win.seq == ctx.seq {
			ctx.violation(ErrWindowNotEnded, "window %q", name)
			return false
		}
		win.flags &^= windowPrivate - 1
		win.flags |= flags
		if win.flags&(WindowMovable|WindowScalable) == 0 {
			win.bounds = bounds
		}
		win.seq = ctx.seq
		if ctx.active == nil && win.flags&WindowHidden == 0 {
			ctx.active = win
		}
	}

	if win.flags&WindowHidden != 0 {
		ctx.current = win
		win.layout = nil
		return false
	}
	win.buffer.reset()
	ctx.resolveFocus(win)

	win.layout = ctx.panelPool.alloc()
	ctx.current = win
	if win.layout == nil {
		ctx.log.Debug("panel pool exhausted", "name", name)
		return false
	}
	ret := ctx.panelBegin(title, panelWindow)
	win.layout.offsetX = &win.scrollbar.X
	win.layout.offsetY = &win.scrollbar.Y
	return ret
}

// End finishes the window started by the last Begin.
func (ctx *Context) End() {
	win := ctx.current
	if win == nil {
		ctx.violation(ErrNoActiveWindow, "End without Begin")
		return
	}
	if win.layout == nil || (win.layout.typ == panelWindow && win.flags&WindowHidden != 0) {
		ctx.current = nil
		return
	}
	if win.layout.typ != panelWindow {
		ctx.violation(ErrPanelNotEnded, "window %q", win.nameString)
		return
	}
	ctx.finishPanel()
	ctx.current = nil
}

// WindowFind returns the window called name, or nil.
func (ctx *Context) WindowFind(name string) *Window {
	return ctx.findWindow(HashString(name, seedWindow), name)
}

// WindowGetBounds returns the bounds of the current window.
func (ctx *Context) WindowGetBounds() Rect {
	if !ctx.requireWindow("WindowGetBounds") {
		return Rect{}
	}
	return ctx.current.bounds
}

// WindowGetPosition returns the top-left corner of the current window.
func (ctx *Context) WindowGetPosition() Vec2 { return ctx.WindowGetBounds().Pos() }

// WindowGetSize returns the size of the current window.
func (ctx *Context) WindowGetSize() Vec2 { return ctx.WindowGetBounds().Size() }

// WindowGetWidth returns the width of the current window.
func (ctx *Context) WindowGetWidth() float32 { return ctx.WindowGetBounds().W }

// WindowGetHeight returns the height of the current window.
func (ctx *Context) WindowGetHeight() float32 { return ctx.WindowGetBounds().H }

// WindowGetPanel returns the layout state of the current window.
func (ctx *Context) WindowGetPanel() *Panel {
	if !ctx.requireWindow("WindowGetPanel") {
		return nil
	}
	return ctx.current.layout
}

// WindowGetContentRegion returns the visible content area of the current window.
func (ctx *Context) WindowGetContentRegion() Rect {
	if !ctx.requireWindow("WindowGetContentRegion") {
		return Rect{}
	}
	return ctx.current.layout.clip
}

// WindowGetContentRegionMin returns the top-left corner of the content area.
func (ctx *Context) WindowGetContentRegionMin() Vec2 {
	return ctx.WindowGetContentRegion().Pos()
}

// WindowGetContentRegionMax returns the bottom-right corner of the content area.
func (ctx *Context) WindowGetContentRegionMax() Vec2 {
	r := ctx.WindowGetContentRegion()
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// WindowGetContentRegionSize returns the size of the content area.
func (ctx *Context) WindowGetContentRegionSize() Vec2 {
	return ctx.WindowGetContentRegion().Size()
}

// WindowGetCanvas returns the command buffer of the current window for
// custom drawing.
func (ctx *Context) WindowGetCanvas() *CommandBuffer {
	if !ctx.requireWindow("WindowGetCanvas") {
		return nil
	}
	return &ctx.current.buffer
}

// WindowGetScroll returns the scroll offsets of the current window.
func (ctx *Context) WindowGetScroll() (x, y uint32) {
	if !ctx.requireWindow("WindowGetScroll") {
		return 0, 0
	}
	return ctx.current.scrollbar.X, ctx.current.scrollbar.Y
}

// WindowSetScroll sets the scroll offsets of the current window.
func (ctx *Context) WindowSetScroll(x, y uint32) {
	if !ctx.requireWindow("WindowSetScroll") {
		return
	}
	ctx.current.scrollbar = ScrollOffset{X: x, Y: y}
}

// WindowHasFocus reports whether the current window is the active one.
func (ctx *Context) WindowHasFocus() bool {
	if !ctx.requireWindow("WindowHasFocus") {
		return false
	}
	return ctx.current == ctx.active
}

// WindowIsHovered reports whether the pointer is over the current window.
func (ctx *Context) WindowIsHovered() bool {
	if !ctx.requireWindow("WindowIsHovered") {
		return false
	}
	win := ctx.current
	if win.flags&WindowHidden != 0 {
		return false
	}
	b := win.bounds
	if win.flags&WindowMinimized != 0 {
		b.H = win.layout.headerHeight
	}
	return ctx.input.IsMouseHoveringRect(b)
}

// WindowIsAnyHovered reports whether the pointer is over any visible
// window or open popup.
func (ctx *Context) WindowIsAnyHovered() bool {
	for it := ctx.begin; it != nil; it = it.next {
		if it.flags&WindowHidden != 0 {
			continue
		}
		if it.popup.active && it.popup.win != nil && ctx.input.IsMouseHoveringRect(it.popup.win.bounds) {
			return true
		}
		if ctx.input.IsMouseHoveringRect(ctx.focusBounds(it)) {
			return true
		}
	}
	return false
}

// ItemIsAnyActive reports whether the pointer is over the GUI or a widget
// is being interacted with. Embedders use it to decide whether input
// belongs to the GUI.
func (ctx *Context) ItemIsAnyActive() bool {
	return ctx.WindowIsAnyHovered() || ctx.lastWidgetState&WidgetStateModified != 0
}

// WindowIsCollapsed reports whether the named window is minimized.
func (ctx *Context) WindowIsCollapsed(name string) bool {
	win := ctx.WindowFind(name)
	return win != nil && win.flags&WindowMinimized != 0
}

// WindowIsClosed reports whether the named window is closed or unknown.
func (ctx *Context) WindowIsClosed(name string) bool {
	win := ctx.WindowFind(name)
	return win == nil || win.flags&WindowClosed != 0
}

// WindowIsHidden reports whether the named window is hidden or unknown.
func (ctx *Context) WindowIsHidden(name string) bool {
	win := ctx.WindowFind(name)
	return win == nil || win.flags&WindowHidden != 0
}

// WindowIsActive reports whether the named window has focus.
func (ctx *Context) WindowIsActive(name string) bool {
	win := ctx.WindowFind(name)
	return win != nil && win == ctx.active
}

// WindowSetBounds moves and resizes the named window.
func (ctx *Context) WindowSetBounds(name string, r Rect) {
	if win := ctx.WindowFind(name); win != nil {
		win.bounds = r
	}
}

// WindowSetPosition moves the named window.
func (ctx *Context) WindowSetPosition(name string, pos Vec2) {
	if win := ctx.WindowFind(name); win != nil {
		win.bounds.X, win.bounds.Y = pos.X, pos.Y
	}
}

// WindowSetSize resizes the named window.
func (ctx *Context) WindowSetSize(name string, size Vec2) {
	if win := ctx.WindowFind(name); win != nil {
		win.bounds.W, win.bounds.H = size.X, size.Y
	}
}

// WindowSetFocus raises the named window to the top and activates it.
func (ctx *Context) WindowSetFocus(name string) {
	win := ctx.WindowFind(name)
	if win == nil {
		return
	}
	if ctx.end != win {
		ctx.removeWindow(win)
		ctx.insertWindow(win, false)
	}
	win.flags &^= WindowROM
	ctx.active = win
}

// WindowClose hides the named window and frees it at the next Clear. The
// current window cannot close itself this way.
func (ctx *Context) WindowClose(name string) {
	win := ctx.WindowFind(name)
	if win == nil || ctx.current == win {
		return
	}
	win.flags |= WindowHidden | WindowClosed
}

// WindowCollapse minimizes or restores the named window.
func (ctx *Context) WindowCollapse(name string, state CollapseState) {
	win := ctx.WindowFind(name)
	if win == nil {
		return
	}
	if state == Minimized {
		win.flags |= WindowMinimized
	} else {
		win.flags &^= WindowMinimized
	}
}

// WindowCollapseIf applies WindowCollapse when cond holds.
func (ctx *Context) WindowCollapseIf(name string, state CollapseState, cond bool) {
	if cond {
		ctx.WindowCollapse(name, state)
	}
}

// WindowShow hides or shows the named window.
func (ctx *Context) WindowShow(name string, state ShowState) {
	win := ctx.WindowFind(name)
	if win == nil {
		return
	}
	if state == Hidden {
		win.flags |= WindowHidden
	} else {
		win.flags &^= WindowHidden
	}
}

// WindowShowIf applies WindowShow when cond holds.
func (ctx *Context) WindowShowIf(name string, state ShowState, cond bool) {
	if cond {
		ctx.WindowShow(name, state)
	}
}
