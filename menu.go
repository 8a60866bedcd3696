package nk

// MenubarBegin starts a menu bar at the top of the current window. Rows
// declared until MenubarEnd do not scroll with the content.
func (ctx *Context) MenubarBegin() {
	if !ctx.requireWindow("MenubarBegin") {
		return
	}
	layout := ctx.current.layout
	if layout.flags&(WindowHidden|WindowMinimized) != 0 {
		return
	}
	layout.menu.x = layout.atX
	layout.menu.y = layout.atY + layout.row.height
	layout.menu.w = layout.bounds.W
	layout.menu.offset = ScrollOffset{X: *layout.offsetX, Y: *layout.offsetY}
	*layout.offsetY = 0
}

// MenubarEnd finishes the menu bar and moves the content area below it.
func (ctx *Context) MenubarEnd() {
	if !ctx.requireWindow("MenubarEnd") {
		return
	}
	win := ctx.current
	layout := win.layout
	if layout.flags&(WindowHidden|WindowMinimized) != 0 {
		return
	}
	layout.menu.h = layout.atY - layout.menu.y
	layout.menu.h += layout.row.height + ctx.style.Window.Spacing.Y
	layout.bounds.Y += layout.menu.h
	layout.bounds.H -= layout.menu.h
	*layout.offsetX = layout.menu.offset.X
	*layout.offsetY = layout.menu.offset.Y
	layout.atY = layout.bounds.Y - layout.row.height
	layout.clip.Y = layout.bounds.Y
	layout.clip.H = layout.bounds.H
	win.buffer.PushScissor(layout.clip)
}

// dropdownVisible decides whether the dropdown named hash may run this
// frame. Another open popup keeps it closed.
func dropdownVisible(win *Window, hash Hash, typ panelType, clicked bool) bool {
	isOpen := win.popup.win != nil
	isActive := isOpen && win.popup.name == hash && win.popup.typ == typ
	switch {
	case clicked && isOpen && !isActive:
		return false
	case isOpen && !isActive:
		return false
	case !isOpen && !isActive && !clicked:
		return false
	}
	return true
}

func (ctx *Context) menuBegin(win *Window, hash Hash, clicked bool, header Rect, size Vec2) bool {
	body := Rect{X: header.X, Y: header.Y + header.H, W: size.X, H: size.Y}
	if !dropdownVisible(win, hash, panelMenu, clicked) {
		return false
	}
	if !ctx.nonblockBegin(WindowNoScrollbar, body, header, panelMenu) {
		return false
	}
	win.popup.typ = panelMenu
	win.popup.name = hash
	return true
}

// MenuBeginLabel draws a menu header button and opens the menu of the
// given size below it when clicked. MenuEnd must only be called when it
// returns true.
func (ctx *Context) MenuBeginLabel(label string, align TextAlign, size Vec2) bool {
	return ctx.menuBeginButton(label, SymbolNone, align, size)
}

// MenuBeginSymbol is MenuBeginLabel with a symbol header.
func (ctx *Context) MenuBeginSymbol(id string, sym SymbolType, size Vec2) bool {
	return ctx.menuBeginButton(id, sym, 0, size)
}

func (ctx *Context) menuBeginButton(label string, sym SymbolType, align TextAlign, size Vec2) bool {
	if !ctx.requireWindow("MenuBegin") {
		return false
	}
	win := ctx.current
	header, state := ctx.Widget()
	if state == WidgetInvalid {
		return false
	}
	in := ctx.widgetInput(state)
	style := &ctx.style.MenuButton
	var clicked bool
	if sym == SymbolNone {
		clicked = ctx.doButtonText(&ctx.lastWidgetState, &win.buffer, header, label, align,
			ButtonDefault, style, in)
	} else {
		clicked = ctx.doButtonSymbol(&ctx.lastWidgetState, &win.buffer, header, sym,
			ButtonDefault, style, in)
	}
	return ctx.menuBegin(win, HashString(label, seedMenu), clicked, header, size)
}

// MenuItemLabel draws a menu entry and reports whether it was chosen.
// Choosing an entry closes the menu.
func (ctx *Context) MenuItemLabel(label string, align TextAlign) bool {
	return ctx.nonblockItem("MenuItemLabel", label, SymbolNone, align)
}

// MenuItemSymbolLabel is MenuItemLabel with a leading symbol.
func (ctx *Context) MenuItemSymbolLabel(sym SymbolType, label string, align TextAlign) bool {
	return ctx.nonblockItem("MenuItemSymbolLabel", label, sym, align)
}

// MenuClose closes the open menu.
func (ctx *Context) MenuClose() { ctx.ContextualClose() }

// MenuEnd finishes the open menu.
func (ctx *Context) MenuEnd() { ctx.ContextualEnd() }

func (ctx *Context) comboBegin(win *Window, clicked bool, header Rect, size Vec2) bool {
	hash := Hash(win.popup.comboCount)
	win.popup.comboCount++
	body := Rect{
		X: header.X,
		Y: header.Y + header.H - ctx.style.Window.ComboBorder,
		W: size.X,
		H: size.Y,
	}
	isOpen := win.popup.win != nil
	if !dropdownVisible(win, hash, panelCombo, clicked) {
		return false
	}
	closeArea := header
	if clicked && isOpen {
		closeArea = Rect{}
	}
	if !ctx.nonblockBegin(0, body, closeArea, panelCombo) {
		return false
	}
	win.popup.typ = panelCombo
	win.popup.name = hash
	return true
}

// ComboBeginLabel draws a combo box header showing selected and opens the
// dropdown of the given size below it when clicked. ComboEnd must only be
// called when it returns true.
func (ctx *Context) ComboBeginLabel(selected string, size Vec2) bool {
	if !ctx.requireWindow("ComboBeginLabel") {
		return false
	}
	win := ctx.current
	header, state := ctx.Widget()
	if state == WidgetInvalid {
		return false
	}
	in := ctx.widgetInput(state)
	style := &ctx.style.Combo
	font := ctx.style.Font
	out := &win.buffer
	clicked := buttonBehavior(&ctx.lastWidgetState, header, in, ButtonDefault)
	st := ctx.lastWidgetState

	background, label := style.Normal, style.LabelNormal
	switch {
	case st&WidgetStateActived != 0:
		background, label = style.Active, style.LabelActive
	case st&WidgetStateHover != 0:
		background, label = style.Hover, style.LabelHover
	}
	t := textStyle{text: label}
	if background.Type == StyleItemImageType {
		t.background = ColorTransparent
		out.DrawImage(header, background.Image, ColorWhite)
	} else {
		t.background = background.Color
		out.FillRect(header, style.Rounding, background.Color)
		out.StrokeRect(header, style.Rounding, style.Border, style.BorderColor)
	}

	sym := style.SymNormal
	switch {
	case st&WidgetStateHover != 0:
		sym = style.SymHover
	case clicked:
		sym = style.SymActive
	}

	button := Rect{Y: header.Y + style.ButtonPadding.Y}
	button.W = header.H - 2*style.ButtonPadding.Y
	button.H = button.W
	button.X = header.X + header.W - header.H - style.ButtonPadding.X
	content := Rect{
		X: button.X + style.Button.Padding.X,
		Y: button.Y + style.Button.Padding.Y,
		W: button.W - 2*style.Button.Padding.X,
		H: button.H - 2*style.Button.Padding.Y,
	}

	text := Rect{
		X: header.X + style.ContentPadding.X,
		Y: header.Y + style.ContentPadding.Y,
		H: header.H - 2*style.ContentPadding.Y,
	}
	text.W = button.X - (style.ContentPadding.X + style.Spacing.X) - text.X
	widgetText(out, text, selected, &t, TextLeft, font)

	bg := drawButton(out, button, ctx.lastWidgetState, &style.Button)
	symBg, symFg := buttonLabelColors(ctx.lastWidgetState, bg, &style.Button)
	drawSymbol(out, sym, content, symBg, symFg, 1, font)

	return ctx.comboBegin(win, clicked, header, size)
}

// ComboItemLabel draws an entry of the open combo box and reports whether
// it was chosen. Choosing an entry closes the combo box.
func (ctx *Context) ComboItemLabel(label string, align TextAlign) bool {
	return ctx.nonblockItem("ComboItemLabel", label, SymbolNone, align)
}

// ComboItemSymbolLabel is ComboItemLabel with a leading symbol.
func (ctx *Context) ComboItemSymbolLabel(sym SymbolType, label string, align TextAlign) bool {
	return ctx.nonblockItem("ComboItemSymbolLabel", label, sym, align)
}

// ComboClose closes the open combo box.
func (ctx *Context) ComboClose() { ctx.ContextualClose() }

// ComboEnd finishes the open combo box.
func (ctx *Context) ComboEnd() { ctx.ContextualEnd() }

// Combo draws a combo box over items and returns the new selection. The
// dropdown is no taller than its items need.
func (ctx *Context) Combo(items []string, selected int, itemHeight float32, size Vec2) int {
	if len(items) == 0 || !ctx.requireWindow("Combo") {
		return selected
	}
	selected = min(max(selected, 0), len(items)-1)
	spacing := ctx.style.Window.Spacing
	padding := ctx.panelPadding(ctx.current.layout.typ)
	n := float32(len(items))
	maxHeight := n*itemHeight + n*spacing.Y + 2*spacing.Y + 2*padding.Y
	size.Y = minf(size.Y, maxHeight)
	if ctx.ComboBeginLabel(items[selected], size) {
		ctx.LayoutRowDynamic(itemHeight, 1)
		for i, item := range items {
			if ctx.ComboItemLabel(item, TextLeft) {
				selected = i
			}
		}
		ctx.ComboEnd()
	}
	return selected
}
