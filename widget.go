package nk

// WidgetLayoutState is the result of allocating widget space.
type WidgetLayoutState uint8

const (
	WidgetInvalid WidgetLayoutState = iota // Outside the clip rectangle, skip it
	WidgetValid                            // Visible and interactive
	WidgetROM                              // Visible, but the pointer is elsewhere
)

// WidgetState is the interaction state of the widget drawn last.
type WidgetState uint32

const (
	WidgetStateModified WidgetState = 1 << (iota + 1)
	WidgetStateInactive             // Not hovered or active
	WidgetStateEntered              // The pointer entered this frame
	WidgetStateHover                // The pointer is over the widget
	WidgetStateActived              // The widget is pressed
	WidgetStateLeft                 // The pointer left this frame

	WidgetStateHovered = WidgetStateHover | WidgetStateModified
	WidgetStateActive  = WidgetStateActived | WidgetStateModified
)

func (s *WidgetState) reset() {
	if *s&WidgetStateModified != 0 {
		*s = WidgetStateInactive | WidgetStateModified
	} else {
		*s = WidgetStateInactive
	}
}

// ButtonBehavior selects when a button reports a press.
type ButtonBehavior uint8

const (
	ButtonDefault  ButtonBehavior = iota // Once, on press
	ButtonRepeater                       // Every frame while held
)

type textStyle struct {
	padding    Vec2
	background Color
	text       Color
}

// LastWidgetState returns the interaction state of the widget drawn last.
func (ctx *Context) LastWidgetState() WidgetState { return ctx.lastWidgetState }

// crossing adds the entered and left transitions for r.
func crossing(state *WidgetState, r Rect, in *Input) {
	if in == nil {
		return
	}
	prev := in.IsMousePrevHoveringRect(r)
	switch {
	case *state&WidgetStateHover != 0 && !prev:
		*state |= WidgetStateEntered
	case *state&WidgetStateHover == 0 && prev:
		*state |= WidgetStateLeft
	}
}

func buttonBehavior(state *WidgetState, r Rect, in *Input, behavior ButtonBehavior) bool {
	state.reset()
	if in == nil {
		return false
	}
	var ret bool
	if in.IsMouseHoveringRect(r) {
		*state = WidgetStateHovered
		if in.IsMouseDown(ButtonLeft) {
			*state = WidgetStateActive
		}
		if in.HasMouseClickInRect(ButtonLeft, r) {
			if behavior == ButtonDefault {
				ret = in.IsMousePressed(ButtonLeft)
			} else {
				ret = in.IsMouseDown(ButtonLeft)
			}
		}
	}
	crossing(state, r, in)
	return ret
}

// widgetText draws text aligned inside b.
func widgetText(out *CommandBuffer, b Rect, text string, t *textStyle, align TextAlign, font Font) {
	b.H = maxf(b.H, 2*t.padding.Y)
	label := Rect{
		Y: b.Y + t.padding.Y,
		H: minf(font.Height(), b.H-2*t.padding.Y),
	}
	textWidth := font.Width(text) + 2*t.padding.X

	switch {
	case align&TextAlignLeft != 0:
		label.X = b.X + t.padding.X
		label.W = maxf(0, b.W-2*t.padding.X)
	case align&TextAlignCentered != 0:
		label.W = maxf(1, 2*t.padding.X+textWidth)
		label.X = b.X + t.padding.X + ((b.W-2*t.padding.X)-label.W)/2
		label.X = maxf(b.X+t.padding.X, label.X)
		label.W = minf(b.X+b.W, label.X+label.W)
		if label.W >= label.X {
			label.W -= label.X
		}
	case align&TextAlignRight != 0:
		label.X = maxf(b.X+t.padding.X, b.X+b.W-(2*t.padding.X+textWidth))
		label.W = textWidth + 2*t.padding.X
	default:
		return
	}

	switch {
	case align&TextAlignMiddle != 0:
		label.Y = b.Y + b.H/2 - font.Height()/2
		label.H = maxf(b.H/2, b.H-(b.H/2+font.Height()/2))
	case align&TextAlignBottom != 0:
		label.Y = b.Y + b.H - font.Height()
		label.H = font.Height()
	}
	out.DrawText(label, text, font, t.background, t.text)
}

// triangleFromDirection returns the corners of a triangle pointing toward
// the given symbol direction.
func triangleFromDirection(r Rect, padX, padY float32, dir SymbolType) [3]Vec2 {
	r.W = maxf(2*padX, r.W) - 2*padX
	r.H = maxf(2*padY, r.H) - 2*padY
	r.X += padX
	r.Y += padY
	w2, h2 := r.W/2, r.H/2
	switch dir {
	case SymbolTriangleUp:
		return [3]Vec2{{r.X + w2, r.Y}, {r.X + r.W, r.Y + r.H}, {r.X, r.Y + r.H}}
	case SymbolTriangleRight:
		return [3]Vec2{{r.X, r.Y}, {r.X + r.W, r.Y + h2}, {r.X, r.Y + r.H}}
	case SymbolTriangleDown:
		return [3]Vec2{{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X + w2, r.Y + r.H}}
	}
	return [3]Vec2{{r.X, r.Y + h2}, {r.X + r.W, r.Y}, {r.X + r.W, r.Y + r.H}}
}

func drawSymbol(out *CommandBuffer, sym SymbolType, content Rect, background, foreground Color, borderWidth float32, font Font) {
	switch sym {
	case SymbolX, SymbolUnderscore, SymbolPlus, SymbolMinus:
		glyph := "-"
		switch sym {
		case SymbolX:
			glyph = "x"
		case SymbolUnderscore:
			glyph = "_"
		case SymbolPlus:
			glyph = "+"
		}
		t := textStyle{background: background, text: foreground}
		widgetText(out, content, glyph, &t, TextCentered, font)
	case SymbolRectSolid, SymbolRectOutline:
		out.FillRect(content, 0, foreground)
		if sym == SymbolRectOutline {
			out.FillRect(content.Shrink(borderWidth), 0, background)
		}
	case SymbolCircleSolid, SymbolCircleOutline:
		out.FillCircle(content, foreground)
		if sym == SymbolCircleOutline {
			out.FillCircle(content.Shrink(1), background)
		}
	case SymbolTriangleUp, SymbolTriangleDown, SymbolTriangleLeft, SymbolTriangleRight:
		p := triangleFromDirection(content, 0, 0, sym)
		out.FillTriangle(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y, foreground)
	}
}

// doButton runs the button behavior over r and returns the content area.
func doButton(state *WidgetState, r Rect, style *StyleButton, in *Input, behavior ButtonBehavior) (bool, Rect) {
	content := Rect{
		X: r.X + style.Padding.X + style.Border + style.Rounding,
		Y: r.Y + style.Padding.Y + style.Border + style.Rounding,
		W: r.W - (2*style.Padding.X + style.Border + style.Rounding*2),
		H: r.H - (2*style.Padding.Y + style.Border + style.Rounding*2),
	}
	touch := Rect{
		X: r.X - style.TouchPadding.X,
		Y: r.Y - style.TouchPadding.Y,
		W: r.W + 2*style.TouchPadding.X,
		H: r.H + 2*style.TouchPadding.Y,
	}
	return buttonBehavior(state, touch, in, behavior), content
}

func drawButton(out *CommandBuffer, r Rect, state WidgetState, style *StyleButton) StyleItem {
	bg := style.Normal
	switch {
	case state&WidgetStateHover != 0:
		bg = style.Hover
	case state&WidgetStateActived != 0:
		bg = style.Active
	}
	if bg.Type == StyleItemImageType {
		out.DrawImage(r, bg.Image, ColorWhite)
	} else {
		out.FillRect(r, style.Rounding, bg.Color)
		out.StrokeRect(r, style.Rounding, style.Border, style.BorderColor)
	}
	return bg
}

func buttonLabelColors(state WidgetState, bg StyleItem, style *StyleButton) (background, text Color) {
	background = style.TextBackground
	if bg.Type == StyleItemColorType {
		background = bg.Color
	}
	switch {
	case state&WidgetStateHover != 0:
		text = style.TextHover
	case state&WidgetStateActived != 0:
		text = style.TextActive
	default:
		text = style.TextNormal
	}
	return background, text
}

func (ctx *Context) doButtonText(state *WidgetState, out *CommandBuffer, r Rect, label string, align TextAlign, behavior ButtonBehavior, style *StyleButton, in *Input) bool {
	ret, content := doButton(state, r, style, in, behavior)
	bg := drawButton(out, r, *state, style)
	var t textStyle
	t.background, t.text = buttonLabelColors(*state, bg, style)
	widgetText(out, content, label, &t, align, ctx.style.Font)
	return ret
}

func (ctx *Context) doButtonSymbol(state *WidgetState, out *CommandBuffer, r Rect, sym SymbolType, behavior ButtonBehavior, style *StyleButton, in *Input) bool {
	ret, content := doButton(state, r, style, in, behavior)
	bg := drawButton(out, r, *state, style)
	background, fg := buttonLabelColors(*state, bg, style)
	drawSymbol(out, sym, content, background, fg, 1, ctx.style.Font)
	return ret
}

// doButtonTextSymbol draws a button with a label and a symbol on the side
// opposite to the text alignment.
func (ctx *Context) doButtonTextSymbol(state *WidgetState, out *CommandBuffer, r Rect, sym SymbolType, label string, align TextAlign, behavior ButtonBehavior, style *StyleButton, in *Input) bool {
	font := ctx.style.Font
	ret, content := doButton(state, r, style, in, behavior)
	icon := Rect{Y: r.Y + r.H/2 - font.Height()/2, W: font.Height(), H: font.Height()}
	if align&TextAlignLeft != 0 {
		icon.X = maxf(r.X+r.W-(2*style.Padding.X+icon.W), 0)
	} else {
		icon.X = r.X + 2*style.Padding.X
	}
	bg := drawButton(out, r, *state, style)
	var t textStyle
	t.background, t.text = buttonLabelColors(*state, bg, style)
	drawSymbol(out, sym, icon, t.background, t.text, 1, font)
	widgetText(out, content, label, &t, align, font)
	return ret
}

// widgetInput returns the input a widget may react to, or nil.
func (ctx *Context) widgetInput(state WidgetLayoutState) *Input {
	if state == WidgetROM || ctx.current.layout.flags&WindowROM != 0 {
		return nil
	}
	return &ctx.input
}

// Text draws text in the next widget slot.
func (ctx *Context) Text(text string, align TextAlign) {
	ctx.TextColored(text, align, ctx.style.Text.Color)
}

// TextColored draws text in the given color.
func (ctx *Context) TextColored(text string, align TextAlign, c Color) {
	if !ctx.requireWindow("Text") {
		return
	}
	win := ctx.current
	bounds := ctx.panelAllocSpace()
	t := textStyle{
		padding:    ctx.style.Text.Padding,
		background: ctx.style.Window.Background,
		text:       c,
	}
	widgetText(&win.buffer, bounds, text, &t, align, ctx.style.Font)
}

// Label draws a string label.
func (ctx *Context) Label(text string, align TextAlign) { ctx.Text(text, align) }

// LabelColored draws a string label in the given color.
func (ctx *Context) LabelColored(text string, align TextAlign, c Color) {
	ctx.TextColored(text, align, c)
}

// Spacer consumes one widget slot without drawing.
func (ctx *Context) Spacer() {
	if !ctx.requireWindow("Spacer") {
		return
	}
	ctx.panelAllocSpace()
}

// Button draws a push button and reports whether it was pressed.
func (ctx *Context) Button(label string) bool {
	return ctx.ButtonStyled(&ctx.style.Button, label)
}

// ButtonStyled draws a push button with an explicit style.
func (ctx *Context) ButtonStyled(style *StyleButton, label string) bool {
	if !ctx.requireWindow("Button") {
		return false
	}
	bounds, state := ctx.Widget()
	if state == WidgetInvalid {
		return false
	}
	return ctx.doButtonText(&ctx.lastWidgetState, &ctx.current.buffer, bounds, label,
		style.TextAlignment, ctx.buttonBehavior, style, ctx.widgetInput(state))
}

// ButtonSymbol draws a button showing a symbol.
func (ctx *Context) ButtonSymbol(sym SymbolType) bool {
	if !ctx.requireWindow("ButtonSymbol") {
		return false
	}
	bounds, state := ctx.Widget()
	if state == WidgetInvalid {
		return false
	}
	return ctx.doButtonSymbol(&ctx.lastWidgetState, &ctx.current.buffer, bounds, sym,
		ctx.buttonBehavior, &ctx.style.Button, ctx.widgetInput(state))
}

// Checkbox draws a labeled toggle bound to active and reports a change.
func (ctx *Context) Checkbox(label string, active *bool) bool {
	if !ctx.requireWindow("Checkbox") {
		return false
	}
	bounds, state := ctx.Widget()
	if state == WidgetInvalid {
		return false
	}
	in := ctx.widgetInput(state)
	style := &ctx.style.Checkbox
	font := ctx.style.Font
	out := &ctx.current.buffer
	st := &ctx.lastWidgetState

	bounds.W = maxf(bounds.W, font.Height()+2*style.Padding.X)
	bounds.H = maxf(bounds.H, font.Height()+2*style.Padding.Y)
	touch := Rect{
		X: bounds.X - style.TouchPadding.X,
		Y: bounds.Y - style.TouchPadding.Y,
		W: bounds.W + 2*style.TouchPadding.X,
		H: bounds.H + 2*style.TouchPadding.Y,
	}
	sel := Rect{X: bounds.X, W: font.Height(), H: font.Height()}
	sel.Y = bounds.Y + bounds.H/2 - sel.H/2
	cursor := Rect{
		X: sel.X + style.Padding.X + style.Border,
		Y: sel.Y + style.Padding.Y + style.Border,
		W: sel.W - (2*style.Padding.X + 2*style.Border),
		H: sel.H - (2*style.Padding.Y + 2*style.Border),
	}
	lbl := Rect{X: sel.X + sel.W + style.Spacing, Y: sel.Y, H: sel.W}
	lbl.W = maxf(bounds.X+bounds.W, lbl.X) - lbl.X

	was := *active
	if buttonBehavior(st, touch, in, ButtonDefault) {
		*st = WidgetStateActive
		*active = !*active
	}

	background, cur := style.Normal, style.CursorNormal
	t := textStyle{background: style.TextBackground, text: style.TextNormal}
	switch {
	case *st&WidgetStateHover != 0:
		background, cur, t.text = style.Hover, style.CursorHover, style.TextHover
	case *st&WidgetStateActived != 0:
		background, cur, t.text = style.Hover, style.CursorHover, style.TextActive
	}
	if background.Type == StyleItemColorType {
		out.FillRect(sel, 0, style.BorderColor)
		out.FillRect(sel.Shrink(style.Border), 0, background.Color)
	} else {
		out.DrawImage(sel, background.Image, ColorWhite)
	}
	if *active {
		drawStyleItem(out, cursor, cur, 0)
	}
	widgetText(out, lbl, label, &t, TextLeft, font)
	return was != *active
}

// Selectable draws a label that toggles value when clicked.
func (ctx *Context) Selectable(label string, align TextAlign, value *bool) bool {
	if !ctx.requireWindow("Selectable") {
		return false
	}
	bounds, state := ctx.Widget()
	if state == WidgetInvalid {
		return false
	}
	in := ctx.widgetInput(state)
	style := &ctx.style.Selectable
	out := &ctx.current.buffer
	st := &ctx.lastWidgetState

	touch := Rect{
		X: bounds.X - style.TouchPadding.X,
		Y: bounds.Y - style.TouchPadding.Y,
		W: bounds.W + 2*style.TouchPadding.X,
		H: bounds.H + 2*style.TouchPadding.Y,
	}
	old := *value
	if buttonBehavior(st, touch, in, ButtonDefault) {
		*value = !*value
	}

	var bg StyleItem
	t := textStyle{padding: style.Padding}
	switch {
	case !*value && *st&WidgetStateActived != 0:
		bg, t.text = style.Pressed, style.TextPressed
	case !*value && *st&WidgetStateHover != 0:
		bg, t.text = style.Hover, style.TextHover
	case !*value:
		bg, t.text = style.Normal, style.TextNormal
	case *st&WidgetStateActived != 0:
		bg, t.text = style.PressedActive, style.TextPressedActive
	case *st&WidgetStateHover != 0:
		bg, t.text = style.HoverActive, style.TextHoverActive
	default:
		bg, t.text = style.NormalActive, style.TextNormalActive
	}
	if bg.Type == StyleItemImageType {
		out.DrawImage(bounds, bg.Image, ColorWhite)
	} else {
		t.background = bg.Color
		out.FillRect(bounds, style.Rounding, bg.Color)
	}
	widgetText(out, bounds, label, &t, align, ctx.style.Font)
	return old != *value
}

// SliderFloat draws a horizontal slider over [min, max] moving in step
// increments. It reports whether value changed.
func (ctx *Context) SliderFloat(min float32, value *float32, max, step float32) bool {
	if !ctx.requireWindow("SliderFloat") {
		return false
	}
	bounds, state := ctx.Widget()
	if state == WidgetInvalid {
		return false
	}
	// sliders keep tracking a drag that left their bounds
	var in *Input
	if ctx.current.layout.flags&WindowROM == 0 {
		in = &ctx.input
	}
	old := *value
	*value = doSlider(&ctx.lastWidgetState, &ctx.current.buffer, bounds, min, old, max, step, &ctx.style.Slider, in)
	return old != *value
}

func doSlider(state *WidgetState, out *CommandBuffer, bounds Rect, lo, val, hi, step float32, style *StyleSlider, in *Input) float32 {
	bounds.X += style.Padding.X
	bounds.Y += style.Padding.Y
	bounds.H = maxf(bounds.H, 2*style.Padding.Y)
	bounds.W = maxf(bounds.W, 2*style.Padding.X+style.CursorSize.X)
	bounds.W -= 2 * style.Padding.X
	bounds.H -= 2 * style.Padding.Y
	bounds.X += style.CursorSize.X * 0.5
	bounds.W -= style.CursorSize.X

	sliderMax := maxf(lo, hi)
	sliderMin := minf(lo, hi)
	value := clampf(val, sliderMin, sliderMax)
	if step <= 0 {
		step = 1
	}
	steps := (sliderMax - sliderMin) / step
	if steps <= 0 {
		steps = 1
	}
	logical := Rect{Y: bounds.Y, H: bounds.H, W: bounds.W / steps}
	logical.X = bounds.X + logical.W*(value-sliderMin)/step
	visual := Rect{W: style.CursorSize.X, H: style.CursorSize.Y}
	visual.Y = bounds.Y + bounds.H*0.5 - visual.H*0.5
	visual.X = logical.X - visual.W*0.5

	state.reset()
	if in != nil && in.IsMouseDown(ButtonLeft) && in.HasMouseClickDownInRect(ButtonLeft, visual, true) {
		*state = WidgetStateActive
		d := in.Mouse.Pos.X - (visual.X + visual.W*0.5)
		pxstep := bounds.W / steps
		if abs := max(d, -d); abs >= pxstep {
			n := float32(int(abs / pxstep))
			if d > 0 {
				value += step * n
			} else {
				value -= step * n
			}
			value = clampf(value, sliderMin, sliderMax)
			logical.X = bounds.X + logical.W*(value-sliderMin)/step
			in.Mouse.Buttons[ButtonLeft].ClickedPos.X = logical.X
		}
	}
	if in != nil && *state&WidgetStateActived == 0 && in.IsMouseHoveringRect(bounds) {
		*state = WidgetStateHovered
	}
	crossing(state, bounds, in)
	visual.X = logical.X - visual.W*0.5

	background, bar, cursor := style.Normal, style.BarNormal, style.CursorNormal
	switch {
	case *state&WidgetStateActived != 0:
		background, bar, cursor = style.Active, style.BarActive, style.CursorActive
	case *state&WidgetStateHover != 0:
		background, bar, cursor = style.Hover, style.BarHover, style.CursorHover
	}
	barRect := Rect{
		X: bounds.X,
		Y: visual.Y + visual.H/2 - bounds.H/12,
		W: bounds.W,
		H: bounds.H / 6,
	}
	fill := barRect
	fill.W = visual.X + visual.W/2 - barRect.X

	drawStyleItem(out, bounds, background, style.Rounding)
	if background.Type == StyleItemColorType {
		out.StrokeRect(bounds, style.Rounding, style.Border, style.BorderColor)
	}
	out.FillRect(barRect, style.Rounding, bar)
	out.FillRect(fill, style.Rounding, style.BarFilled)
	if cursor.Type == StyleItemImageType {
		out.DrawImage(visual, cursor.Image, ColorWhite)
	} else {
		out.FillCircle(visual, cursor.Color)
	}
	return value
}
