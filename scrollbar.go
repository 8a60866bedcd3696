package nk

// doScrollbar runs and draws a scrollbar over scroll for content of size
// target and returns the new offset. Nothing happens when the content fits.
func (ctx *Context) doScrollbar(state *WidgetState, out *CommandBuffer, scroll Rect, hasScrolling bool,
	offset, target, step float32, style *StyleScrollbar, in *Input, vertical bool) float32 {
	scroll.W = maxf(scroll.W, 1)
	scroll.H = maxf(scroll.H, 0)
	length := scroll.W
	if vertical {
		length = scroll.H
	}
	if target <= length {
		return 0
	}

	step = minf(step, length)
	offset = clampf(offset, 0, target-length)
	ratio := length / target
	off := offset / target

	var cursor Rect
	if vertical {
		cursor.H = maxf(ratio*scroll.H-(2*style.Border+2*style.Padding.Y), 0)
		cursor.Y = scroll.Y + off*scroll.H + style.Border + style.Padding.Y
		cursor.W = scroll.W - (2*style.Border + 2*style.Padding.X)
		cursor.X = scroll.X + style.Border + style.Padding.X
	} else {
		cursor.W = maxf(ratio*scroll.W-(2*style.Border+2*style.Padding.X), 0)
		cursor.X = scroll.X + off*scroll.W + style.Border + style.Padding.X
		cursor.H = scroll.H - (2*style.Border + 2*style.Padding.Y)
		cursor.Y = scroll.Y + style.Border + style.Padding.Y
	}

	// empty space before and after the cursor
	before, after := scroll, scroll
	if vertical {
		before.H = maxf(cursor.Y-scroll.Y, 0)
		after.Y = cursor.Y + cursor.H
		after.H = maxf(scroll.Y+scroll.H-(cursor.Y+cursor.H), 0)
	} else {
		before.W = maxf(cursor.X-scroll.X, 0)
		after.X = cursor.X + cursor.W
		after.W = maxf(scroll.X+scroll.W-(cursor.X+cursor.W), 0)
	}

	offset = scrollbarBehavior(state, in, hasScrolling, scroll, cursor, before, after, offset, target, step, vertical)
	off = offset / target
	if vertical {
		cursor.Y = scroll.Y + off*scroll.H + style.BorderCursor + style.Padding.Y
	} else {
		cursor.X = scroll.X + off*scroll.W + style.BorderCursor + style.Padding.X
	}
	drawScrollbar(out, *state, style, scroll, cursor)
	return offset
}

func scrollbarBehavior(state *WidgetState, in *Input, hasScrolling bool, scroll, cursor, before, after Rect,
	offset, target, step float32, vertical bool) float32 {
	state.reset()
	if in == nil {
		return offset
	}
	length := scroll.W
	wheel := in.Mouse.ScrollDelta.X
	if vertical {
		length = scroll.H
		wheel = in.Mouse.ScrollDelta.Y
	}

	left := &in.Mouse.Buttons[ButtonLeft]
	if in.IsMouseHoveringRect(scroll) {
		*state = WidgetStateHovered
	}

	var ws WidgetState
	switch {
	case left.Down && in.HasMouseClickDownInRect(ButtonLeft, cursor, true) && left.Clicked == 0:
		// drag the cursor
		*state = WidgetStateActive
		if vertical {
			offset = clampf(offset+in.Mouse.Delta.Y/scroll.H*target, 0, target-scroll.H)
			left.ClickedPos.Y = scroll.Y + offset/target*scroll.H + cursor.H/2
		} else {
			offset = clampf(offset+in.Mouse.Delta.X/scroll.W*target, 0, target-scroll.W)
			left.ClickedPos.X = scroll.X + offset/target*scroll.W + cursor.W/2
		}
	case (vertical && hasScrolling && in.IsKeyPressed(KeyScrollUp)) ||
		buttonBehavior(&ws, before, in, ButtonDefault):
		offset = maxf(0, offset-length)
	case (vertical && hasScrolling && in.IsKeyPressed(KeyScrollDown)) ||
		buttonBehavior(&ws, after, in, ButtonDefault):
		offset = minf(offset+length, target-length)
	case hasScrolling:
		switch {
		case wheel != 0:
			offset = clampf(offset+step*-wheel, 0, target-length)
		case vertical && in.IsKeyPressed(KeyScrollStart):
			offset = 0
		case vertical && in.IsKeyPressed(KeyScrollEnd):
			offset = target - length
		}
	}
	crossing(state, scroll, in)
	return offset
}

func drawScrollbar(out *CommandBuffer, state WidgetState, style *StyleScrollbar, bounds, cursor Rect) {
	background, cur := style.Normal, style.CursorNormal
	switch {
	case state&WidgetStateActived != 0:
		background, cur = style.Active, style.CursorActive
	case state&WidgetStateHover != 0:
		background, cur = style.Hover, style.CursorHover
	}

	if background.Type == StyleItemImageType {
		out.DrawImage(bounds, background.Image, ColorWhite)
	} else {
		out.FillRect(bounds, style.Rounding, background.Color)
		out.StrokeRect(bounds, style.Rounding, style.Border, style.BorderColor)
	}
	if cur.Type == StyleItemImageType {
		out.DrawImage(cursor, cur.Image, ColorWhite)
	} else {
		out.FillRect(cursor, style.RoundingCursor, cur.Color)
		out.StrokeRect(cursor, style.RoundingCursor, style.BorderCursor, style.CursorBorderColor)
	}
}
