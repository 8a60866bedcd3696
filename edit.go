package nk

import "strings"

// EditFlags configure an edit field.
type EditFlags uint32

const (
	EditReadOnly           EditFlags = 1 << iota // Text can be selected but not changed
	EditAutoSelect                               // Select everything on activation
	EditSigEnter                                 // Enter commits instead of inserting a newline
	EditAllowTab                                 // Tab inserts spaces
	EditNoCursor                                 // Do not draw the cursor
	EditSelectable                               // Mouse selection
	EditClipboard                                // Cut, copy and paste keys use the clipboard
	EditCtrlEnterNewline                         // Shift+Enter inserts a newline, Enter commits
	EditNoHorizontalScroll                       // Never scroll sideways
	EditAlwaysInsertMode                         // No view mode
	EditMultiline                                // Several rows with a vertical scrollbar
	EditGotoEndOnActivate                        // Move the cursor to the end on activation

	EditSimple = EditAlwaysInsertMode
	EditField  = EditSimple | EditSelectable | EditClipboard
	EditBox    = EditAlwaysInsertMode | EditSelectable | EditMultiline | EditAllowTab | EditClipboard
	EditEditor = EditSelectable | EditMultiline | EditAllowTab | EditClipboard
)

// EditEvents report what happened to an edit field this frame.
type EditEvents uint8

const (
	EditActive      EditEvents = 1 << iota // The field has focus
	EditInactive                           // The field does not have focus
	EditActivated                          // The field gained focus this frame
	EditDeactivated                        // The field lost focus this frame
	EditCommitted                          // Enter was pressed in an EditSigEnter field
)

// tabSpaces is inserted for the Tab key.
const tabSpaces = "    "

// EditString edits *s in the next widget slot. A positive maxRunes limits
// the length. The active field keeps its cursor and undo history across
// frames; it is identified by its declaration order in the window.
func (ctx *Context) EditString(flags EditFlags, s *string, maxRunes int, filter Filter) EditEvents {
	if !ctx.requireWindow("EditString") {
		return 0
	}
	win := ctx.current
	te := &ctx.inactiveEdit
	if ctx.editHot(win, Hash(win.edit.seq)) {
		te = &ctx.textEdit
	}
	if te.Str.String() != *s {
		te.Str.SetString(*s)
		te.clamp()
	}

	limited := filter
	if maxRunes > 0 {
		limited = func(t *TextEdit, r rune) bool {
			if t.Str.Len() >= maxRunes && !t.HasSelection() && t.Mode != TextEditModeReplace {
				return false
			}
			return filter == nil || filter(t, r)
		}
	}

	ev := ctx.EditBuffer(flags, te, limited)
	if maxRunes > 0 && te.Str.Len() > maxRunes {
		te.Str.DeleteRunes(maxRunes, te.Str.Len()-maxRunes)
		te.clamp()
	}
	if ev&EditActivated != 0 && te == &ctx.inactiveEdit {
		ctx.textEdit, ctx.inactiveEdit = ctx.inactiveEdit, ctx.textEdit
		te = &ctx.textEdit
	}
	if text := te.Str.String(); text != *s {
		*s = text
	}
	return ev
}

// editHot reports whether the field hash of win owns the shared editor.
func (ctx *Context) editHot(win *Window, hash Hash) bool {
	return ctx.editWin == win && win.edit.active && win.edit.name == hash
}

// EditBuffer edits te in the next widget slot. The cursor, selection and
// scroll position of the focused field are restored from the window on
// every frame.
func (ctx *Context) EditBuffer(flags EditFlags, te *TextEdit, filter Filter) EditEvents {
	if !ctx.requireWindow("EditBuffer") {
		return 0
	}
	win := ctx.current
	hash := Hash(win.edit.seq)
	win.edit.seq++
	bounds, state := ctx.Widget()
	if state == WidgetInvalid {
		return EditInactive
	}
	var in *Input
	if win.layout.flags&WindowROM == 0 && flags&EditReadOnly == 0 {
		in = &ctx.input
	}

	if ctx.editHot(win, hash) {
		e := &win.edit
		te.Active = true
		te.Cursor = e.cursor
		te.SelectStart = e.selStart
		te.SelectEnd = e.selEnd
		te.Mode = e.mode
		te.Scrollbar = Vec2{X: float32(e.scrollbar.X), Y: float32(e.scrollbar.Y)}
		te.clamp()
	} else {
		te.Active = false
	}
	if flags&EditNoHorizontalScroll != 0 {
		te.Scrollbar.X = 0
	}
	if filter == nil {
		filter = FilterDefault
	}

	prev := te.Active
	ev := ctx.doEdit(&ctx.lastWidgetState, &win.buffer, bounds, flags, filter, te, &ctx.style.Edit, in)

	switch {
	case te.Active:
		if !prev {
			if ctx.editWin != nil && ctx.editWin != win {
				ctx.editWin.edit.active = false
			}
			ctx.editWin = win
			win.edit.active = true
			win.edit.name = hash
		}
		e := &win.edit
		e.cursor = te.Cursor
		e.selStart = te.SelectStart
		e.selEnd = te.SelectEnd
		e.mode = te.Mode
		e.singleLine = te.SingleLine
		e.scrollbar = ScrollOffset{X: uint32(te.Scrollbar.X), Y: uint32(te.Scrollbar.Y)}
	case prev:
		win.edit.active = false
	}
	return ev
}

type editColors struct {
	background StyleItem
	text       Color
	selText    Color
	selBg      Color
	cursor     Color
	cursorText Color
}

func editStyleColors(state WidgetState, style *StyleEdit) editColors {
	c := editColors{
		background: style.Normal,
		text:       style.TextNormal,
		selText:    style.SelectedTextNormal,
		selBg:      style.SelectedNormal,
		cursor:     style.CursorNormal,
		cursorText: style.CursorTextNormal,
	}
	switch {
	case state&WidgetStateActived != 0:
		c.background = style.Active
		c.text = style.TextActive
	case state&WidgetStateHover != 0:
		c.background = style.Hover
		c.text = style.TextHover
		c.selText = style.SelectedTextHover
		c.selBg = style.SelectedHover
		c.cursor = style.CursorHover
		c.cursorText = style.CursorTextHover
	}
	return c
}

func (ctx *Context) doEdit(state *WidgetState, out *CommandBuffer, bounds Rect, flags EditFlags, filter Filter,
	te *TextEdit, style *StyleEdit, in *Input) EditEvents {
	font := ctx.style.Font
	state.reset()

	area := Rect{
		X: bounds.X + style.Padding.X + style.Border,
		Y: bounds.Y + style.Padding.Y + style.Border,
		W: bounds.W - (2*style.Padding.X + 2*style.Border),
		H: bounds.H - (2*style.Padding.Y + 2*style.Border),
	}
	multiline := flags&EditMultiline != 0
	if multiline {
		area.W = maxf(0, area.W-style.ScrollbarSize.X)
	}
	rowHeight := area.H
	if multiline {
		rowHeight = font.Height() + style.RowPadding
	}
	oldClip := out.Clip()
	clip := oldClip.unify(area.X, area.Y, area.X+area.W, area.Y+area.H)

	prev := te.Active
	hovered := in != nil && in.IsMouseHoveringRect(bounds)
	if in != nil {
		left := &in.Mouse.Buttons[ButtonLeft]
		if left.Clicked > 0 && left.Down {
			te.Active = bounds.Contains(in.Mouse.Pos)
		}
	}

	var selectAll bool
	switch {
	case !prev && te.Active:
		scroll := te.Scrollbar
		te.ClearState(!multiline, filter)
		te.Scrollbar = scroll
		if flags&EditAutoSelect != 0 {
			selectAll = true
		}
		if flags&EditGotoEndOnActivate != 0 {
			te.Cursor = te.Str.Len()
			in = nil
		}
	case !te.Active:
		te.Mode = TextEditModeView
	}
	switch {
	case flags&EditReadOnly != 0:
		te.Mode = TextEditModeView
	case flags&EditAlwaysInsertMode != 0:
		te.Mode = TextEditModeInsert
	}

	ev := EditInactive
	if te.Active {
		ev = EditActive
	}
	if prev != te.Active {
		if te.Active {
			ev |= EditActivated
		} else {
			ev |= EditDeactivated
		}
	}

	var follow bool
	if te.Active && in != nil {
		ev |= ctx.editInput(te, flags, filter, in, area, rowHeight, selectAll, &follow)
		hovered = in.IsMouseHoveringRect(area)
	}

	if te.Active {
		*state = WidgetStateActive
	} else {
		state.reset()
	}
	if hovered {
		*state |= WidgetStateHovered
	}

	colors := editStyleColors(*state, style)
	if colors.background.Type == StyleItemImageType {
		out.DrawImage(bounds, colors.background.Image, ColorWhite)
	} else {
		out.FillRect(bounds, style.Rounding, colors.background.Color)
		out.StrokeRect(bounds, style.Rounding, style.Border, style.BorderColor)
	}
	area.W = maxf(0, area.W-style.CursorSize)

	runes := []rune(te.Str.String())
	textSize := editTextSize(runes, font, rowHeight, !multiline)
	if te.Active {
		cursor := te.findCharPos(runes, te.Cursor, font, rowHeight)
		if follow {
			if flags&EditNoHorizontalScroll == 0 {
				inc := area.W * 0.25
				if cursor.x < te.Scrollbar.X {
					te.Scrollbar.X = maxf(0, cursor.x-inc)
				}
				if cursor.x >= te.Scrollbar.X+area.W {
					te.Scrollbar.X = maxf(0, cursor.x-area.W+inc)
				}
			} else {
				te.Scrollbar.X = 0
			}
			if multiline {
				if cursor.y < te.Scrollbar.Y {
					te.Scrollbar.Y = maxf(0, cursor.y-rowHeight)
				}
				if cursor.y >= te.Scrollbar.Y+area.H {
					te.Scrollbar.Y += rowHeight
				}
			} else {
				te.Scrollbar.Y = 0
			}
		}
	}

	if multiline {
		scroll := area
		scroll.X = bounds.X + bounds.W - style.Border - style.ScrollbarSize.X
		scroll.W = style.ScrollbarSize.X
		var ws WidgetState
		var sin *Input
		if in != nil && hovered {
			sin = in
		}
		te.Scrollbar.Y = ctx.doScrollbar(&ws, out, scroll, sin != nil, te.Scrollbar.Y, textSize.Y,
			scroll.H*0.1, &style.Scrollbar, sin, true)
	}

	out.PushScissor(clip)
	editDrawText(out, runes, te, area, rowHeight, font, colors, !multiline)
	if te.Active && flags&EditNoCursor == 0 && !te.HasSelection() {
		editDrawCursor(out, runes, te, area, rowHeight, font, colors, style.CursorSize)
	}
	out.PushScissor(oldClip)
	return ev
}

// editInput applies the mouse, key and text input of a focused field.
func (ctx *Context) editInput(te *TextEdit, flags EditFlags, filter Filter, in *Input, area Rect,
	rowHeight float32, selectAll bool, follow *bool) EditEvents {
	var ev EditEvents
	font := ctx.style.Font
	shift := in.IsKeyDown(KeyShift)
	mx := in.Mouse.Pos.X - area.X + te.Scrollbar.X
	my := in.Mouse.Pos.Y - area.Y + te.Scrollbar.Y
	left := &in.Mouse.Buttons[ButtonLeft]
	right := &in.Mouse.Buttons[ButtonRight]
	hovered := in.IsMouseHoveringRect(area)

	switch {
	case selectAll:
		te.SelectAll()
	case hovered && left.Down && left.Clicked > 0:
		te.Click(mx, my, font, rowHeight)
	case hovered && left.Down && (in.Mouse.Delta.X != 0 || in.Mouse.Delta.Y != 0):
		if flags&EditSelectable != 0 {
			te.Drag(mx, my, font, rowHeight)
			*follow = true
		}
	case hovered && right.Down && right.Clicked > 0:
		te.Key(KeyTextWordLeft, false, font, rowHeight)
		te.Key(KeyTextWordRight, true, font, rowHeight)
		*follow = true
	}

	mode := te.Mode
	for k := KeyNone + 1; k < KeyCount; k++ {
		if k == KeyEnter || k == KeyTab {
			continue
		}
		if in.IsKeyPressed(k) {
			te.Key(k, shift, font, rowHeight)
			*follow = true
		}
	}
	if mode != te.Mode {
		in.Keyboard.Text = in.Keyboard.Text[:0]
	}

	te.Filter = filter
	if len(in.Keyboard.Text) > 0 {
		te.Text(string(in.Keyboard.Text))
		in.Keyboard.Text = in.Keyboard.Text[:0]
		*follow = true
	}

	if in.IsKeyPressed(KeyEnter) {
		*follow = true
		switch {
		case flags&EditCtrlEnterNewline != 0 && shift:
			te.Text("\n")
		case flags&(EditSigEnter|EditCtrlEnterNewline) != 0:
			ev |= EditCommitted
		default:
			te.Text("\n")
		}
	}

	if flags&EditClipboard != 0 {
		copyKey, cutKey := in.IsKeyPressed(KeyCopy), in.IsKeyPressed(KeyCut)
		if (copyKey || cutKey) && te.Clipboard != nil {
			if text, ok := te.Copy(); ok {
				te.Clipboard.Copy(text)
			}
		}
		if cutKey && flags&EditReadOnly == 0 {
			te.Cut()
			*follow = true
		}
		if in.IsKeyPressed(KeyPaste) && te.Clipboard != nil {
			if text, ok := te.Clipboard.Paste(); ok {
				if te.SingleLine {
					text = strings.ReplaceAll(text, "\n", " ")
				}
				te.Paste(text)
				*follow = true
			}
		}
	}

	if flags&EditAllowTab != 0 && in.IsKeyPressed(KeyTab) {
		te.Text(tabSpaces)
		*follow = true
	}
	return ev
}

// editTextSize measures the text laid out one row per line.
func editTextSize(runes []rune, font Font, rowHeight float32, singleLine bool) Vec2 {
	if singleLine {
		return Vec2{X: font.Width(string(runes)), Y: rowHeight}
	}
	var size Vec2
	start := 0
	for {
		row := layoutRow(runes, start, font)
		size.X = maxf(size.X, row.width)
		size.Y += rowHeight
		start += row.n
		if row.n == 0 || start >= len(runes) && runes[len(runes)-1] != '\n' {
			break
		}
	}
	return size
}

// editDrawText draws the rows of the text, highlighting the selection.
func editDrawText(out *CommandBuffer, runes []rune, te *TextEdit, area Rect, rowHeight float32, font Font,
	c editColors, singleLine bool) {
	selStart, selEnd := min(te.SelectStart, te.SelectEnd), max(te.SelectStart, te.SelectEnd)
	if !te.Active {
		selStart, selEnd = 0, 0
	}
	bg := ColorTransparent
	if c.background.Type == StyleItemColorType {
		bg = c.background.Color
	}

	y := area.Y - te.Scrollbar.Y
	start := 0
	for start < len(runes) {
		n := len(runes) - start
		if !singleLine {
			n = layoutRow(runes, start, font).n
		}
		end := start + n
		visible := end
		if visible > start && runes[visible-1] == '\n' {
			visible--
		}
		if y+rowHeight >= area.Y && y <= area.Y+area.H {
			x := area.X - te.Scrollbar.X
			segment := func(a, b int, selected bool) {
				if a >= b {
					return
				}
				text := string(runes[a:b])
				r := Rect{X: x, Y: y, W: font.Width(text), H: rowHeight}
				if selected {
					out.FillRect(r, 0, c.selBg)
					out.DrawText(r, text, font, c.selBg, c.selText)
				} else {
					out.DrawText(r, text, font, bg, c.text)
				}
				x += r.W
			}
			a := min(max(selStart, start), visible)
			b := min(max(selEnd, start), visible)
			segment(start, a, false)
			segment(a, b, true)
			segment(b, visible, false)
		}
		start = end
		y += rowHeight
	}
}

// editDrawCursor draws a thin cursor at the end of a row and a block
// cursor over a glyph otherwise.
func editDrawCursor(out *CommandBuffer, runes []rune, te *TextEdit, area Rect, rowHeight float32, font Font,
	c editColors, size float32) {
	pos := te.findCharPos(runes, te.Cursor, font, rowHeight)
	x := area.X + pos.x - te.Scrollbar.X
	y := area.Y + pos.y + rowHeight/2 - font.Height()/2 - te.Scrollbar.Y
	if te.Cursor >= len(runes) || runes[te.Cursor] == '\n' {
		out.FillRect(Rect{X: x, Y: y, W: size, H: font.Height()}, 0, c.cursor)
		return
	}
	glyph := string(runes[te.Cursor])
	r := Rect{X: x, Y: y, W: font.Width(glyph), H: font.Height()}
	out.FillRect(r, 0, c.cursor)
	out.DrawText(r, glyph, font, c.cursor, c.cursorText)
}
