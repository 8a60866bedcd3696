package nk

// Drawing primitives. Shapes that lie completely outside the current
// scissor are dropped before they reach the arena when clipping is on;
// the renderer still performs real clipping.

// PushScissor changes the clip rectangle for all following commands.
func (cb *CommandBuffer) PushScissor(r Rect) {
	cb.clip = r
	off, ok := cb.push(CommandScissor, 16)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.rect(r)
}

func (cb *CommandBuffer) rejects(r Rect) bool {
	return cb.useClipping && !cb.clip.Intersects(r)
}

// StrokeLine draws a line segment.
func (cb *CommandBuffer) StrokeLine(x0, y0, x1, y1, thickness float32, c Color) {
	if thickness <= 0 {
		return
	}
	off, ok := cb.push(CommandLine, 24)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.f32(thickness)
	e.vec(Vec2{X: x0, Y: y0})
	e.vec(Vec2{X: x1, Y: y1})
	e.color(c)
}

// StrokeCurve draws a cubic bezier from (ax,ay) to (bx,by).
func (cb *CommandBuffer) StrokeCurve(ax, ay, ctrl0x, ctrl0y, ctrl1x, ctrl1y, bx, by, thickness float32, c Color) {
	if c>>24 == 0 || thickness <= 0 {
		return
	}
	off, ok := cb.push(CommandCurve, 40)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.f32(thickness)
	e.vec(Vec2{X: ax, Y: ay})
	e.vec(Vec2{X: ctrl0x, Y: ctrl0y})
	e.vec(Vec2{X: ctrl1x, Y: ctrl1y})
	e.vec(Vec2{X: bx, Y: by})
	e.color(c)
}

// StrokeRect draws a rectangle outline.
func (cb *CommandBuffer) StrokeRect(r Rect, rounding, thickness float32, c Color) {
	if c>>24 == 0 || r.W == 0 || r.H == 0 || thickness <= 0 || cb.rejects(r) {
		return
	}
	off, ok := cb.push(CommandRect, 28)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.f32(rounding)
	e.f32(thickness)
	e.rect(r)
	e.color(c)
}

// FillRect draws a filled rectangle.
func (cb *CommandBuffer) FillRect(r Rect, rounding float32, c Color) {
	if c>>24 == 0 || r.W == 0 || r.H == 0 || cb.rejects(r) {
		return
	}
	off, ok := cb.push(CommandRectFilled, 24)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.f32(rounding)
	e.rect(r)
	e.color(c)
}

// FillRectMultiColor draws a rectangle with a color per edge.
func (cb *CommandBuffer) FillRectMultiColor(r Rect, left, top, right, bottom Color) {
	if r.W == 0 || r.H == 0 || cb.rejects(r) {
		return
	}
	off, ok := cb.push(CommandRectMultiColor, 32)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.rect(r)
	e.color(left)
	e.color(top)
	e.color(bottom)
	e.color(right)
}

// StrokeCircle draws the outline of the ellipse inscribed in r.
func (cb *CommandBuffer) StrokeCircle(r Rect, thickness float32, c Color) {
	if r.W == 0 || r.H == 0 || thickness <= 0 || cb.rejects(r) {
		return
	}
	off, ok := cb.push(CommandCircle, 24)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.f32(thickness)
	e.rect(r)
	e.color(c)
}

// FillCircle draws the filled ellipse inscribed in r.
func (cb *CommandBuffer) FillCircle(r Rect, c Color) {
	if c>>24 == 0 || r.W == 0 || r.H == 0 || cb.rejects(r) {
		return
	}
	off, ok := cb.push(CommandCircleFilled, 20)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.rect(r)
	e.color(c)
}

// StrokeArc draws an arc around (cx,cy) from angle a0 to a1.
func (cb *CommandBuffer) StrokeArc(cx, cy, radius, a0, a1, thickness float32, c Color) {
	if c>>24 == 0 || thickness <= 0 {
		return
	}
	off, ok := cb.push(CommandArc, 28)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.f32(thickness)
	e.vec(Vec2{X: cx, Y: cy})
	e.f32(radius)
	e.f32(a0)
	e.f32(a1)
	e.color(c)
}

// FillArc draws a filled pie slice.
func (cb *CommandBuffer) FillArc(cx, cy, radius, a0, a1 float32, c Color) {
	if c>>24 == 0 {
		return
	}
	off, ok := cb.push(CommandArcFilled, 24)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.vec(Vec2{X: cx, Y: cy})
	e.f32(radius)
	e.f32(a0)
	e.f32(a1)
	e.color(c)
}

func (cb *CommandBuffer) rejectsTriangle(a, b, c Vec2) bool {
	return cb.useClipping && !cb.clip.Contains(a) && !cb.clip.Contains(b) && !cb.clip.Contains(c)
}

// StrokeTriangle draws a triangle outline.
func (cb *CommandBuffer) StrokeTriangle(x0, y0, x1, y1, x2, y2, thickness float32, c Color) {
	a, b, p := Vec2{X: x0, Y: y0}, Vec2{X: x1, Y: y1}, Vec2{X: x2, Y: y2}
	if c>>24 == 0 || thickness <= 0 || cb.rejectsTriangle(a, b, p) {
		return
	}
	off, ok := cb.push(CommandTriangle, 32)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.f32(thickness)
	e.vec(a)
	e.vec(b)
	e.vec(p)
	e.color(c)
}

// FillTriangle draws a filled triangle.
func (cb *CommandBuffer) FillTriangle(x0, y0, x1, y1, x2, y2 float32, c Color) {
	a, b, p := Vec2{X: x0, Y: y0}, Vec2{X: x1, Y: y1}, Vec2{X: x2, Y: y2}
	if c>>24 == 0 || cb.rejectsTriangle(a, b, p) {
		return
	}
	off, ok := cb.push(CommandTriangleFilled, 28)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.vec(a)
	e.vec(b)
	e.vec(p)
	e.color(c)
}

func (cb *CommandBuffer) pushPoly(t CommandType, points []Vec2, thickness float32, c Color) {
	if c>>24 == 0 || len(points) == 0 {
		return
	}
	size := 8 + 8*len(points)
	if t != CommandPolygonFilled {
		size += 4
	}
	off, ok := cb.push(t, size)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	if t != CommandPolygonFilled {
		e.f32(thickness)
	}
	e.color(c)
	e.u32(uint32(len(points)))
	for _, p := range points {
		e.vec(p)
	}
}

// StrokePolygon draws a closed polygon outline.
func (cb *CommandBuffer) StrokePolygon(points []Vec2, thickness float32, c Color) {
	if thickness > 0 {
		cb.pushPoly(CommandPolygon, points, thickness, c)
	}
}

// FillPolygon draws a filled polygon.
func (cb *CommandBuffer) FillPolygon(points []Vec2, c Color) {
	cb.pushPoly(CommandPolygonFilled, points, 0, c)
}

// StrokePolyline draws an open line strip.
func (cb *CommandBuffer) StrokePolyline(points []Vec2, thickness float32, c Color) {
	if thickness > 0 {
		cb.pushPoly(CommandPolyline, points, thickness, c)
	}
}

// DrawImage draws an image stretched over r, tinted by c.
func (cb *CommandBuffer) DrawImage(r Rect, img Image, c Color) {
	if cb.rejects(r) {
		return
	}
	off, ok := cb.push(CommandImage, 40)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.rect(r)
	e.u32(uint32(img.Handle))
	e.u32(uint32(img.Handle >> 32))
	e.u32(uint32(img.W) | uint32(img.H)<<16)
	e.u32(uint32(img.Region[0]) | uint32(img.Region[1])<<16)
	e.u32(uint32(img.Region[2]) | uint32(img.Region[3])<<16)
	e.color(c)
}

// DrawText draws a single line of text inside r. Text wider than r is cut
// at the last rune that still fits.
func (cb *CommandBuffer) DrawText(r Rect, text string, font Font, bg, fg Color) {
	if text == "" || (bg>>24 == 0 && fg>>24 == 0) || cb.rejects(r) || font == nil {
		return
	}
	if w := font.Width(text); w > r.W {
		n, _ := clampText(font, text, r.W)
		text = text[:n]
		if text == "" {
			return
		}
	}
	rel, ok := cb.pushString(text)
	if !ok {
		return
	}
	off, ok := cb.push(CommandText, 40)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.color(bg)
	e.color(fg)
	e.rect(r)
	e.f32(font.Height())
	e.u32(cb.refs.add(font))
	e.u32(rel)
	e.u32(uint32(len(text)))
}

// PushCustom records a callback the renderer invokes in place of a shape.
func (cb *CommandBuffer) PushCustom(r Rect, callback CustomCallback, userData any) {
	if callback == nil || cb.rejects(r) {
		return
	}
	off, ok := cb.push(CommandCustom, 20)
	if !ok {
		return
	}
	e := encoder{mem: cb.base.Memory(), off: off}
	e.rect(r)
	e.u32(cb.refs.add(customRef{cb: callback, data: userData}))
}
