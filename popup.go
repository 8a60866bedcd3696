package nk

// PopupType selects whether a popup keeps its size or shrinks to its content.
type PopupType uint8

const (
	PopupStatic  PopupType = iota // Fixed bounds
	PopupDynamic                  // Height follows the content
)

const tooltipName = "__##Tooltip##__"

// lockParents makes the panels below a running popup read-only.
func lockParents(win *Window) {
	for p := win.layout; p != nil; p = p.parent {
		p.flags |= WindowROM
		p.flags &^= windowRemoveROM
	}
}

// unlockParents lifts the read-only state at the end of the panels below a
// closed popup.
func unlockParents(win *Window) {
	for p := win.layout; p != nil; p = p.parent {
		p.flags |= windowRemoveROM
	}
}

// popupParent returns the current window if it may open a popup.
func (ctx *Context) popupParent(op string) *Window {
	if !ctx.requireWindow(op) {
		return nil
	}
	win := ctx.current
	if win.layout.typ&panelSetPopup != 0 {
		ctx.violation(ErrPopupInPopup, "%s inside a popup of %q", op, win.nameString)
		return nil
	}
	return win
}

// newPopup creates the popup window of win.
func (ctx *Context) newPopup(win *Window, typ panelType) *Window {
	popup := ctx.windowPool.alloc()
	if popup == nil {
		ctx.log.Debug("window pool exhausted", "popup of", win.nameString)
		return nil
	}
	popup.parent = win
	popup.buffer.init(ctx.memory, &ctx.refs, true)
	win.popup.win = popup
	win.popup.active = false
	win.popup.typ = typ
	return popup
}

// markPopup records the arena state before a popup panel begins so a
// popup that turns out closed leaves no trace in the frame.
func (ctx *Context) markPopup(win *Window) {
	ctx.memory.Mark(BufferFront)
	ctx.memory.Mark(BufferBack)
	win.popup.refs = len(ctx.refs.items)
}

func (ctx *Context) commitPopup(win *Window) {
	ctx.memory.Unmark(BufferFront)
	ctx.memory.Unmark(BufferBack)
	win.popup.win.drawn = ctx.seq
}

func (ctx *Context) rollbackPopup(win *Window) {
	ctx.memory.Reset(BufferFront)
	ctx.memory.Reset(BufferBack)
	clear(ctx.refs.items[win.popup.refs:])
	ctx.refs.items = ctx.refs.items[:win.popup.refs]
	win.popup.win.buffer.reset()
	ctx.log.Debug("popup rolled back", "window", win.nameString)
}

// PopupBegin opens a blocking popup inside the current window. Its bounds
// are relative to the window content. It reports whether the popup is
// open; PopupEnd must only be called when it is.
func (ctx *Context) PopupBegin(typ PopupType, title string, flags WindowFlags, bounds Rect) bool {
	win := ctx.popupParent("PopupBegin")
	if win == nil {
		return false
	}
	hash := HashString(title, seedPopup)

	popup := win.popup.win
	if popup == nil {
		if popup = ctx.newPopup(win, panelPopup); popup == nil {
			return false
		}
	}
	if win.popup.name != hash {
		if win.popup.active {
			return false
		}
		ctx.freeTables(popup)
		*popup = Window{}
		popup.buffer.init(ctx.memory, &ctx.refs, true)
		win.popup.name = hash
		win.popup.active = true
		win.popup.typ = panelPopup
	}

	bounds.X += win.layout.clip.X
	bounds.Y += win.layout.clip.Y
	popup.parent = win
	popup.bounds = bounds
	popup.seq = ctx.seq
	popup.nameString = title
	popup.flags = flags | WindowBorder
	if typ == PopupDynamic {
		popup.flags |= windowDynamic
	}
	popup.layout = ctx.panelPool.alloc()
	if popup.layout == nil {
		return false
	}

	ctx.current = popup
	ctx.markPopup(win)
	popup.buffer.reset()
	popup.buffer.PushScissor(nullRect)
	if ctx.panelBegin(title, panelPopup) {
		lockParents(win)
		ctx.commitPopup(win)
		popup.layout.offsetX = &popup.scrollbar.X
		popup.layout.offsetY = &popup.scrollbar.Y
		popup.layout.parent = win.layout
		return true
	}

	unlockParents(win)
	ctx.rollbackPopup(win)
	win.popup.active = false
	ctx.current = win
	ctx.panelPool.release(popup.layout)
	popup.layout = nil
	return false
}

// nonblockBegin opens a popup that closes when the user presses outside of
// body or inside header.
func (ctx *Context) nonblockBegin(flags WindowFlags, body, header Rect, typ panelType) bool {
	win := ctx.popupParent("nonblock popup")
	if win == nil {
		return false
	}
	isActive := true
	popup := win.popup.win
	if popup == nil {
		if popup = ctx.newPopup(win, typ); popup == nil {
			return false
		}
	} else {
		in := &ctx.input
		pressed := in.IsMousePressed(ButtonLeft)
		if pressed && (!in.IsMouseHoveringRect(body) || in.IsMouseHoveringRect(header)) {
			isActive = false
		}
	}
	win.popup.header = header
	if !isActive {
		unlockParents(win)
		return false
	}

	layout := ctx.panelPool.alloc()
	if layout == nil {
		return false
	}
	popup.bounds = body
	popup.parent = win
	popup.layout = layout
	popup.flags = flags | WindowBorder | windowDynamic
	popup.seq = ctx.seq
	win.popup.active = true

	ctx.current = popup
	popup.buffer.reset()
	popup.buffer.PushScissor(nullRect)
	ctx.panelBegin("", typ)
	popup.drawn = ctx.seq
	popup.layout.parent = win.layout
	popup.layout.offsetX = &popup.scrollbar.X
	popup.layout.offsetY = &popup.scrollbar.Y
	lockParents(win)
	return true
}

// currentPopup returns the current window if it is a popup.
func (ctx *Context) currentPopup(op string) *Window {
	if !ctx.requireWindow(op) {
		return nil
	}
	popup := ctx.current
	if popup.parent == nil || popup.layout.typ&panelSetPopup == 0 {
		ctx.violation(ErrNotInPopup, "%s", op)
		return nil
	}
	return popup
}

// PopupClose closes the current popup at PopupEnd.
func (ctx *Context) PopupClose() {
	if popup := ctx.currentPopup("PopupClose"); popup != nil {
		popup.flags |= WindowHidden
	}
}

// PopupEnd finishes the current popup and returns to its window.
func (ctx *Context) PopupEnd() {
	popup := ctx.currentPopup("PopupEnd")
	if popup == nil {
		return
	}
	win := popup.parent
	if popup.flags&WindowHidden != 0 {
		unlockParents(win)
		win.popup.active = false
	}
	popup.buffer.PushScissor(nullRect)
	ctx.finishPanel()
	ctx.current = win
	win.buffer.PushScissor(win.layout.clip)
}

// PopupGetScroll returns the scroll offsets of the current popup.
func (ctx *Context) PopupGetScroll() (x, y uint32) {
	popup := ctx.currentPopup("PopupGetScroll")
	if popup == nil {
		return 0, 0
	}
	return popup.scrollbar.X, popup.scrollbar.Y
}

// PopupSetScroll sets the scroll offsets of the current popup.
func (ctx *Context) PopupSetScroll(x, y uint32) {
	if popup := ctx.currentPopup("PopupSetScroll"); popup != nil {
		popup.scrollbar = ScrollOffset{X: x, Y: y}
	}
}

// ContextualBegin opens a context menu of the given size when trigger is
// right-clicked. Context menus only open in the active window.
func (ctx *Context) ContextualBegin(flags WindowFlags, size Vec2, trigger Rect) bool {
	if !ctx.requireWindow("ContextualBegin") {
		return false
	}
	win := ctx.current
	win.popup.conCount++
	if ctx.current != ctx.active || win.flags&WindowNoInput != 0 {
		return false
	}

	popup := win.popup.win
	isOpen := popup != nil && win.popup.typ == panelContextual
	in := &ctx.input
	isClicked := in.MouseClicked(ButtonRight, trigger)
	if win.popup.activeCon != 0 && win.popup.conCount != win.popup.activeCon {
		return false
	}
	if !isOpen && win.popup.activeCon != 0 {
		win.popup.activeCon = 0
	}
	if !isOpen && !isClicked {
		return false
	}

	win.popup.activeCon = win.popup.conCount
	body := Rect{W: size.X, H: size.Y}
	if isClicked {
		body.X, body.Y = in.Mouse.Pos.X, in.Mouse.Pos.Y
	} else {
		body.X, body.Y = popup.bounds.X, popup.bounds.Y
	}

	header := Rect{X: -1, Y: -1}
	if ctx.nonblockBegin(flags|WindowNoScrollbar, body, header, panelContextual) {
		win.popup.typ = panelContextual
		return true
	}
	win.popup.activeCon = 0
	win.popup.typ = panelNone
	if win.popup.win != nil {
		win.popup.win.flags = 0
	}
	return false
}

// nonblockItem draws a full-width button in a contextual, combo or menu
// panel. A click closes the panel.
func (ctx *Context) nonblockItem(op, label string, sym SymbolType, align TextAlign) bool {
	popup := ctx.currentPopup(op)
	if popup == nil {
		return false
	}
	style := &ctx.style.ContextualButton
	bounds, state := ctx.WidgetFitting(style.Padding)
	if state == WidgetInvalid {
		return false
	}
	in := ctx.widgetInput(state)
	var clicked bool
	if sym == SymbolNone {
		clicked = ctx.doButtonText(&ctx.lastWidgetState, &popup.buffer, bounds, label, align,
			ButtonDefault, style, in)
	} else {
		clicked = ctx.doButtonTextSymbol(&ctx.lastWidgetState, &popup.buffer, bounds, sym, label, align,
			ButtonDefault, style, in)
	}
	if clicked {
		popup.flags |= WindowHidden
	}
	return clicked
}

// ContextualItemLabel draws an entry of the open context menu and reports
// whether it was chosen. Choosing an entry closes the menu.
func (ctx *Context) ContextualItemLabel(label string, align TextAlign) bool {
	return ctx.nonblockItem("ContextualItemLabel", label, SymbolNone, align)
}

// ContextualItemSymbolLabel is ContextualItemLabel with a leading symbol.
func (ctx *Context) ContextualItemSymbolLabel(sym SymbolType, label string, align TextAlign) bool {
	return ctx.nonblockItem("ContextualItemSymbolLabel", label, sym, align)
}

// ContextualClose closes the open context menu.
func (ctx *Context) ContextualClose() { ctx.PopupClose() }

// ContextualEnd finishes the open context menu. A press below the content
// of a menu that shrank to fit closes it.
func (ctx *Context) ContextualEnd() {
	popup := ctx.currentPopup("ContextualEnd")
	if popup == nil {
		return
	}
	panel := popup.layout
	if panel.flags&windowDynamic != 0 {
		var body Rect
		if panel.atY < panel.bounds.Y+panel.bounds.H {
			padding := ctx.panelPadding(panel.typ)
			body = panel.bounds
			body.Y = panel.atY + panel.footerHeight + panel.border + padding.Y + panel.row.height
			body.H = panel.bounds.Y + panel.bounds.H - body.Y
		}
		if ctx.input.IsMousePressed(ButtonLeft) && ctx.input.IsMouseHoveringRect(body) {
			popup.flags |= WindowHidden
		}
	}
	if popup.flags&WindowHidden != 0 {
		popup.seq = 0
	}
	ctx.PopupEnd()
}

// TooltipBegin opens a tooltip of the given width at the pointer. It
// returns false while a combo, menu or context menu is open.
func (ctx *Context) TooltipBegin(width float32) bool {
	if !ctx.requireWindow("TooltipBegin") {
		return false
	}
	win := ctx.current
	if win.popup.win != nil && win.popup.typ.isNonblock() {
		return false
	}
	in := &ctx.input
	bounds := Rect{
		X: float32(int(in.Mouse.Pos.X+1)) - float32(int(win.layout.clip.X)),
		Y: float32(int(in.Mouse.Pos.Y+1)) - float32(int(win.layout.clip.Y)),
		W: ceilf(width),
		H: ceilf(nullRect.H),
	}
	if !ctx.PopupBegin(PopupDynamic, tooltipName, WindowNoScrollbar|WindowBorder, bounds) {
		return false
	}
	win.layout.flags &^= WindowROM
	win.popup.typ = panelTooltip
	ctx.current.layout.typ = panelTooltip
	return true
}

// TooltipEnd finishes a tooltip. Tooltips last one frame.
func (ctx *Context) TooltipEnd() {
	popup := ctx.currentPopup("TooltipEnd")
	if popup == nil {
		return
	}
	popup.seq--
	ctx.PopupClose()
	ctx.PopupEnd()
}

// Tooltip shows text in a tooltip at the pointer.
func (ctx *Context) Tooltip(text string) {
	if !ctx.requireWindow("Tooltip") {
		return
	}
	padding := ctx.style.Window.Padding
	font := ctx.style.Font
	w := font.Width(text) + 4*padding.X
	h := font.Height() + 2*padding.Y
	if ctx.TooltipBegin(w) {
		ctx.LayoutRowDynamic(h, 1)
		ctx.Text(text, TextLeft)
		ctx.TooltipEnd()
	}
}
