package nk

// WindowFlags configure a window and record its runtime state.
type WindowFlags uint32

const (
	WindowBorder         WindowFlags = 1 << iota // Draw a border around the window
	WindowMovable                                // The header can be dragged to move the window
	WindowScalable                               // A scaler in the bottom corner resizes the window
	WindowClosable                               // The header shows a close button
	WindowMinimizable                            // The header shows a minimize button
	WindowNoScrollbar                            // Never show scrollbars
	WindowTitle                                  // Show the title in the header
	WindowScrollAutoHide                         // Hide scrollbars after a period without input
	WindowBackground                             // Keep the window behind all others
	WindowScaleLeft                              // Put the scaler in the bottom left corner
	WindowNoInput                                // Ignore all input
	windowPrivate
	WindowROM       // Read only: widgets ignore input
	WindowHidden    // Not drawn and not interactive
	WindowClosed    // Reaped at the next Clear
	WindowMinimized // Collapsed to its header
	windowRemoveROM

	windowDynamic = windowPrivate // Height follows the content (popups)

	WindowNotInteractive = WindowROM | WindowNoInput
)

type panelType uint8

const (
	panelNone       panelType = 0
	panelWindow     panelType = 1 << 0
	panelGroup      panelType = 1 << 1
	panelPopup      panelType = 1 << 2
	panelContextual panelType = 1 << 4
	panelCombo      panelType = 1 << 5
	panelMenu       panelType = 1 << 6
	panelTooltip    panelType = 1 << 7

	panelSetNonblock = panelContextual | panelCombo | panelMenu | panelTooltip
	panelSetPopup    = panelSetNonblock | panelPopup
	panelSetSub      = panelSetPopup | panelGroup
)

func (t panelType) isSub() bool      { return t&panelSetSub != 0 }
func (t panelType) isNonblock() bool { return t&panelSetNonblock != 0 }

// ScrollbarHidingTimeout is the idle time in seconds after which the
// scrollbars of a WindowScrollAutoHide window disappear.
const ScrollbarHidingTimeout = 4.0

// ScrollOffset holds the scroll position of a window, popup or group.
type ScrollOffset struct {
	X, Y uint32
}

type menuState struct {
	x, y, w, h float32
	offset     ScrollOffset
}

// Panel is the per-frame layout state of a window, group or popup. It
// tracks the cursor, the current row and the clip rectangle. A panel is
// only valid between the Begin and End calls that created it.
type Panel struct {
	typ          panelType
	flags        WindowFlags
	bounds       Rect
	offsetX      *uint32
	offsetY      *uint32
	atX, atY     float32
	maxX         float32
	footerHeight float32
	headerHeight float32
	border       float32
	hasScrolling bool
	clip         Rect
	menu         menuState
	row          rowLayout
	chart        chart
	parent       *Panel
}

// Bounds returns the content area of the panel.
func (p *Panel) Bounds() Rect { return p.bounds }

// Clip returns the clip rectangle of the panel content.
func (p *Panel) Clip() Rect { return p.clip }

// Flags returns the panel flags.
func (p *Panel) Flags() WindowFlags { return p.flags }

// Cursor returns the position where the next row starts.
func (p *Panel) Cursor() Vec2 { return Vec2{X: p.atX, Y: p.atY} }

// HeaderHeight returns the height of the title bar, or 0.
func (p *Panel) HeaderHeight() float32 { return p.headerHeight }

func (ctx *Context) panelPadding(t panelType) Vec2 {
	w := &ctx.style.Window
	switch t {
	case panelGroup:
		return w.GroupPadding
	case panelPopup:
		return w.PopupPadding
	case panelContextual:
		return w.ContextualPadding
	case panelCombo:
		return w.ComboPadding
	case panelMenu:
		return w.MenuPadding
	case panelTooltip:
		return w.TooltipPadding
	}
	return w.Padding
}

func (ctx *Context) panelBorder(flags WindowFlags, t panelType) float32 {
	if flags&WindowBorder == 0 {
		return 0
	}
	w := &ctx.style.Window
	switch t {
	case panelGroup:
		return w.GroupBorder
	case panelPopup:
		return w.PopupBorder
	case panelContextual:
		return w.ContextualBorder
	case panelCombo:
		return w.ComboBorder
	case panelMenu:
		return w.MenuBorder
	case panelTooltip:
		return w.TooltipBorder
	}
	return w.Border
}

func (ctx *Context) panelBorderColor(t panelType) Color {
	w := &ctx.style.Window
	switch t {
	case panelGroup:
		return w.GroupBorderColor
	case panelPopup:
		return w.PopupBorderColor
	case panelContextual:
		return w.ContextualBorderColor
	case panelCombo:
		return w.ComboBorderColor
	case panelMenu:
		return w.MenuBorderColor
	case panelTooltip:
		return w.TooltipBorderColor
	}
	return w.BorderColor
}

func hasHeader(flags WindowFlags, title string) bool {
	active := flags&(WindowClosable|WindowMinimizable|WindowTitle) != 0
	return active && flags&WindowHidden == 0 && title != ""
}

// headerHeight is the height of a window title bar for the current font.
func (ctx *Context) headerHeight() float32 {
	h := &ctx.style.Window.Header
	return ctx.style.Font.Height() + 2*h.Padding.Y + 2*h.LabelPadding.Y
}

// panelBegin sets up the layout of the current window's panel, draws its
// header and background and handles moving. It reports whether the panel
// content is visible.
func (ctx *Context) panelBegin(title string, typ panelType) bool {
	win := ctx.current
	layout := win.layout
	*layout = Panel{typ: typ}
	if win.flags&(WindowHidden|WindowClosed) != 0 {
		return false
	}

	style := &ctx.style
	out := &win.buffer
	var in *Input
	if win.flags&WindowNoInput == 0 {
		in = &ctx.input
	}
	scrollbarSize := style.Window.ScrollbarSize
	padding := ctx.panelPadding(typ)

	// window movement by dragging the header
	if win.flags&WindowMovable != 0 && win.flags&WindowROM == 0 && in != nil {
		header := Rect{X: win.bounds.X, Y: win.bounds.Y, W: win.bounds.W, H: padding.Y}
		if hasHeader(win.flags, title) {
			header.H = ctx.headerHeight()
		}
		left := &in.Mouse.Buttons[ButtonLeft]
		if left.Down && in.HasMouseClickDownInRect(ButtonLeft, header, true) && left.Clicked == 0 {
			win.bounds.X += in.Mouse.Delta.X
			win.bounds.Y += in.Mouse.Delta.Y
			left.ClickedPos = left.ClickedPos.Add(in.Mouse.Delta)
		}
	}

	layout.flags = win.flags
	layout.bounds = win.bounds
	layout.bounds.X += padding.X
	layout.bounds.W -= 2 * padding.X
	if win.flags&WindowBorder != 0 {
		layout.border = ctx.panelBorder(win.flags, typ)
		layout.bounds = layout.bounds.Shrink(layout.border)
	}
	layout.atY = layout.bounds.Y
	layout.atX = layout.bounds.X
	ctx.resetMinRowHeight(layout)
	layout.row.height = padding.Y
	layout.hasScrolling = true
	if win.flags&WindowNoScrollbar == 0 {
		layout.bounds.W -= scrollbarSize.X
	}
	if !typ.isNonblock() {
		if win.flags&WindowNoScrollbar == 0 || win.flags&WindowScalable != 0 {
			layout.footerHeight = scrollbarSize.Y
		}
		layout.bounds.H -= layout.footerHeight
	}

	if hasHeader(win.flags, title) {
		ctx.panelHeader(win, layout, title, in)
	}

	if layout.flags&(WindowMinimized|windowDynamic) == 0 {
		body := Rect{
			X: win.bounds.X,
			W: win.bounds.W,
			Y: win.bounds.Y + layout.headerHeight,
			H: win.bounds.H - layout.headerHeight,
		}
		drawStyleItem(out, body, style.Window.FixedBackground, style.Window.Rounding)
	}

	clip := out.Clip().unify(layout.bounds.X, layout.bounds.Y,
		layout.bounds.X+layout.bounds.W, layout.bounds.Y+layout.bounds.H)
	out.PushScissor(clip)
	layout.clip = clip
	return layout.flags&(WindowHidden|WindowMinimized) == 0
}

func (ctx *Context) panelHeader(win *Window, layout *Panel, title string, in *Input) {
	style := &ctx.style
	hs := &style.Window.Header
	out := &win.buffer

	header := Rect{X: win.bounds.X, Y: win.bounds.Y, W: win.bounds.W, H: ctx.headerHeight()}
	layout.headerHeight = header.H
	layout.bounds.Y += header.H
	layout.bounds.H -= header.H
	layout.atY += header.H

	var background StyleItem
	var text textStyle
	switch {
	case ctx.active == win:
		background, text.text = hs.Active, hs.LabelActive
	case ctx.input.IsMouseHoveringRect(header):
		background, text.text = hs.Hover, hs.LabelHover
	default:
		background, text.text = hs.Normal, hs.LabelNormal
	}

	header.H += 1
	if background.Type == StyleItemColorType {
		text.background = background.Color
	}
	drawStyleItem(out, header, background, 0)

	button := Rect{Y: header.Y + hs.Padding.Y, H: header.H - 2*hs.Padding.Y}
	button.W = button.H
	if win.flags&WindowClosable != 0 {
		if hs.Align == HeaderRight {
			button.X = header.W + header.X - (button.W + hs.Padding.X)
			header.W -= button.W + hs.Spacing.X + hs.Padding.X
		} else {
			button.X = header.X + hs.Padding.X
			header.X += button.W + hs.Spacing.X + hs.Padding.X
		}
		var ws WidgetState
		if ctx.doButtonSymbol(&ws, out, button, hs.CloseSymbol, ButtonDefault, &hs.CloseButton, in) &&
			win.flags&WindowROM == 0 {
			layout.flags |= WindowHidden
			layout.flags &^= WindowMinimized
		}
	}
	if win.flags&WindowMinimizable != 0 {
		if hs.Align == HeaderRight {
			button.X = header.W + header.X - button.W
			if win.flags&WindowClosable == 0 {
				button.X -= hs.Padding.X
				header.W -= hs.Padding.X
			}
			header.W -= button.W + hs.Spacing.X
		} else {
			button.X = header.X
			header.X += button.W + hs.Spacing.X + hs.Padding.X
		}
		sym := hs.MinimizeSymbol
		if layout.flags&WindowMinimized != 0 {
			sym = hs.MaximizeSymbol
		}
		var ws WidgetState
		if ctx.doButtonSymbol(&ws, out, button, sym, ButtonDefault, &hs.MinimizeButton, in) &&
			win.flags&WindowROM == 0 {
			layout.flags ^= WindowMinimized
		}
	}

	font := style.Font
	label := Rect{
		X: header.X + hs.Padding.X + hs.LabelPadding.X,
		Y: header.Y + hs.LabelPadding.Y,
		H: font.Height() + 2*hs.LabelPadding.Y,
		W: font.Width(title) + 2*hs.Spacing.X,
	}
	label.W = clampf(label.W, 0, header.X+header.W-label.X)
	widgetText(out, label, title, &text, TextLeft, font)
}

// panelEnd finishes the panel of the current window: scrollbars, border,
// scaler and the per-window garbage collection of edit and contextual state.
func (ctx *Context) panelEnd() {
	window := ctx.current
	layout := window.layout
	style := &ctx.style
	out := &window.buffer
	var in *Input
	if layout.flags&(WindowROM|WindowNoInput) == 0 {
		in = &ctx.input
	}
	if !layout.typ.isSub() {
		out.PushScissor(nullRect)
	}

	scrollbarSize := style.Window.ScrollbarSize
	padding := ctx.panelPadding(layout.typ)

	layout.atY += layout.row.height

	if layout.flags&windowDynamic != 0 && layout.flags&WindowMinimized == 0 {
		if layout.atY < layout.bounds.Y+layout.bounds.H {
			layout.bounds.H = layout.atY - layout.bounds.Y
		}
		bg := style.Window.Background
		out.FillRect(Rect{X: window.bounds.X, Y: layout.bounds.Y, W: window.bounds.W, H: padding.Y}, 0, bg)
		out.FillRect(Rect{X: window.bounds.X, Y: layout.bounds.Y, W: padding.X + layout.border, H: layout.bounds.H}, 0, bg)
		right := Rect{
			X: layout.bounds.X + layout.bounds.W,
			Y: layout.bounds.Y,
			W: padding.X + layout.border,
			H: layout.bounds.H,
		}
		if *layout.offsetY == 0 && layout.flags&WindowNoScrollbar == 0 {
			right.W += scrollbarSize.X
		}
		out.FillRect(right, 0, bg)
		if layout.footerHeight > 0 {
			out.FillRect(Rect{
				X: window.bounds.X,
				Y: layout.bounds.Y + layout.bounds.H,
				W: window.bounds.W,
				H: layout.footerHeight,
			}, 0, bg)
		}
	}

	if layout.flags&(WindowNoScrollbar|WindowMinimized) == 0 &&
		window.scrollbarHidingTimer < ScrollbarHidingTimeout {
		ctx.panelScrollbars(window, layout, in, padding)
	}

	if window.flags&WindowScrollAutoHide != 0 {
		m := &ctx.input.Mouse
		hasInput := m.Delta.X != 0 || m.Delta.Y != 0 || m.ScrollDelta.Y != 0
		hovered := ctx.WindowIsHovered()
		anyActive := ctx.lastWidgetState&WidgetStateModified != 0
		if (!hasInput && hovered) || (!hovered && !anyActive) {
			window.scrollbarHidingTimer += ctx.delta
		} else {
			window.scrollbarHidingTimer = 0
		}
	} else {
		window.scrollbarHidingTimer = 0
	}

	if layout.flags&WindowBorder != 0 {
		var bottom float32
		switch {
		case layout.flags&WindowMinimized != 0:
			bottom = style.Window.Border + window.bounds.Y + layout.headerHeight
		case layout.flags&windowDynamic != 0:
			bottom = layout.bounds.Y + layout.bounds.H + layout.footerHeight
		default:
			bottom = window.bounds.Y + window.bounds.H
		}
		b := window.bounds
		b.H = bottom - window.bounds.Y
		out.StrokeRect(b, style.Window.Rounding, layout.border, ctx.panelBorderColor(layout.typ))
	}

	if layout.flags&WindowScalable != 0 && in != nil && layout.flags&WindowMinimized == 0 {
		ctx.panelScaler(window, layout, in, padding)
	}

	if !layout.typ.isSub() {
		if layout.flags&WindowHidden != 0 {
			window.buffer.reset()
		}
	}

	if layout.flags&windowRemoveROM != 0 {
		layout.flags &^= WindowROM | windowRemoveROM
	}
	window.flags = layout.flags

	// edit state of a field that was active but not declared this frame
	e := &window.edit
	if e.active && e.old != e.seq && e.active == e.prev {
		*e = editState{}
	} else {
		e.old = e.seq
		e.prev = e.active
		e.seq = 0
	}

	p := &window.popup
	if p.activeCon != 0 && p.conOld != p.conCount {
		p.conCount = 0
		p.conOld = 0
		p.activeCon = 0
	} else {
		p.conOld = p.conCount
		p.conCount = 0
	}
	p.comboCount = 0

	if layout.row.treeDepth != 0 {
		depth := layout.row.treeDepth
		layout.row.treeDepth = 0
		ctx.violation(ErrTreeNotPopped, "%d tree nodes still pushed in %q", depth, window.nameString)
	}
}

func (ctx *Context) panelScrollbars(window *Window, layout *Panel, in *Input, padding Vec2) {
	style := &ctx.style
	out := &window.buffer
	scrollbarSize := style.Window.ScrollbarSize

	var hasScrolling bool
	if layout.typ.isSub() {
		rootWindow := window
		for rootWindow.parent != nil {
			rootWindow = rootWindow.parent
		}
		rootPanel := layout
		for rootPanel.parent != nil {
			rootPanel = rootPanel.parent
		}
		// only the innermost hovered panel of the active window scrolls
		if rootWindow == ctx.active && layout.hasScrolling && in != nil &&
			in.IsMouseHoveringRect(layout.bounds) && intersects(layout.bounds, rootPanel.clip) {
			for p := layout; p != nil; p = p.parent {
				p.hasScrolling = false
			}
			hasScrolling = true
		}
	} else {
		hasScrolling = window == ctx.active && layout.hasScrolling
		window.scrolled = in != nil && (in.Mouse.ScrollDelta.Y > 0 || in.Mouse.ScrollDelta.X > 0) && hasScrolling
	}

	var state WidgetState
	scroll := Rect{
		X: layout.bounds.X + layout.bounds.W + padding.X,
		Y: layout.bounds.Y,
		W: scrollbarSize.X,
		H: layout.bounds.H,
	}
	offset := float32(*layout.offsetY)
	target := float32(int(layout.atY - scroll.Y))
	offset = ctx.doScrollbar(&state, out, scroll, hasScrolling, offset, target,
		scroll.H*0.10, &style.ScrollV, in, true)
	*layout.offsetY = uint32(offset)
	if in != nil && hasScrolling {
		in.Mouse.ScrollDelta.Y = 0
	}

	state = 0
	scroll = Rect{
		X: layout.bounds.X,
		Y: layout.bounds.Y + layout.bounds.H,
		W: layout.bounds.W,
		H: scrollbarSize.Y,
	}
	offset = float32(*layout.offsetX)
	target = float32(int(layout.maxX - scroll.X))
	offset = ctx.doScrollbar(&state, out, scroll, hasScrolling, offset, target,
		layout.maxX*0.05, &style.ScrollH, in, false)
	*layout.offsetX = uint32(offset)
}

func (ctx *Context) panelScaler(window *Window, layout *Panel, in *Input, padding Vec2) {
	style := &ctx.style
	out := &window.buffer
	scaler := Rect{
		W: style.Window.ScrollbarSize.X,
		H: style.Window.ScrollbarSize.Y,
		Y: layout.bounds.Y + layout.bounds.H,
	}
	if layout.flags&WindowScaleLeft != 0 {
		scaler.X = layout.bounds.X - padding.X*0.5
	} else {
		scaler.X = layout.bounds.X + layout.bounds.W + padding.X
	}
	if layout.flags&WindowNoScrollbar != 0 {
		scaler.X -= scaler.W
	}

	item := style.Window.Scaler
	if item.Type == StyleItemImageType {
		out.DrawImage(scaler, item.Image, ColorWhite)
	} else if layout.flags&WindowScaleLeft != 0 {
		out.FillTriangle(scaler.X, scaler.Y, scaler.X, scaler.Y+scaler.H,
			scaler.X+scaler.W, scaler.Y+scaler.H, item.Color)
	} else {
		out.FillTriangle(scaler.X+scaler.W, scaler.Y, scaler.X+scaler.W, scaler.Y+scaler.H,
			scaler.X, scaler.Y+scaler.H, item.Color)
	}

	if window.flags&WindowROM != 0 {
		return
	}
	minSize := style.Window.MinSize
	left := &in.Mouse.Buttons[ButtonLeft]
	if !left.Down || !in.HasMouseClickDownInRect(ButtonLeft, scaler, true) {
		return
	}
	dx := in.Mouse.Delta.X
	if layout.flags&WindowScaleLeft != 0 {
		dx = -dx
		window.bounds.X += in.Mouse.Delta.X
	}
	if window.bounds.W+dx >= minSize.X {
		if dx < 0 || (dx > 0 && in.Mouse.Pos.X >= scaler.X) {
			window.bounds.W += dx
			scaler.X += in.Mouse.Delta.X
		}
	}
	if layout.flags&windowDynamic == 0 {
		dy := in.Mouse.Delta.Y
		if minSize.Y < window.bounds.H+dy {
			if dy < 0 || (dy > 0 && in.Mouse.Pos.Y >= scaler.Y) {
				window.bounds.H += dy
				scaler.Y += dy
			}
		}
	}
	left.ClickedPos = Vec2{X: scaler.X + scaler.W/2, Y: scaler.Y + scaler.H/2}
}

// intersects is an overlap test that treats touching edges and empty
// rectangles as overlapping.
func intersects(a, b Rect) bool {
	return !(b.X > a.X+a.W || b.X+b.W < a.X || b.Y > a.Y+a.H || b.Y+b.H < a.Y)
}

func drawStyleItem(out *CommandBuffer, r Rect, item StyleItem, rounding float32) {
	if item.Type == StyleItemImageType {
		out.DrawImage(r, item.Image, ColorWhite)
		return
	}
	out.FillRect(r, rounding, item.Color)
}
