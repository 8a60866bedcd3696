package opengl

import (
	"iter"
	"math"
	"sync"

	"github.com/go-theft-auto/nk"
)

// Vertex is a single vertex for GPU rendering.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color, red in the low byte
}

// DrawCmd is a run of indices sharing one clip rectangle and texture.
// A command with a Callback draws nothing itself; the renderer invokes the
// callback at that point of the stream.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer

	Callback nk.CustomCallback
	Bounds   nk.Rect
	UserData any
}

// Segment counts used when flattening curves.
const (
	curveSegments  = 16
	circleSegments = 22
	cornerSegments = 6
)

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList is the triangle form of one frame of draw commands.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	// Atlas supplies glyphs for text commands. Text is skipped without it.
	Atlas *Atlas

	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
	points       []nk.Vec2
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetClip replaces the clip rectangle of subsequent primitives.
func (dl *DrawList) SetClip(x1, y1, x2, y2 float32) {
	clip := [4]float32{x1, y1, x2, y2}
	if clip == dl.currentClip {
		return
	}
	dl.currentClip = clip
	dl.splitDraw()
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index relative to the
// current command. A command that would overflow 16-bit indices is split.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > math.MaxUint16 {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

func transparent(c nk.Color) bool { return c>>24 == 0 }

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color nk.Color) {
	if transparent(color) {
		return
	}
	c := uint32(color)
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: c},
		Vertex{Pos: [2]float32{x + w, y}, Color: c},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: c},
		Vertex{Pos: [2]float32{x, y + h}, Color: c},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectMultiColor draws a rectangle with one color per corner, given
// clockwise from the top left.
func (dl *DrawList) AddRectMultiColor(r nk.Rect, tl, tr, br, bl nk.Color) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: uint32(tl)},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: uint32(tr)},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: uint32(br)},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: uint32(bl)},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color nk.Color, thickness float32) {
	if transparent(color) {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a quad.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color nk.Color, thickness float32) {
	if transparent(color) {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	c := uint32(color)
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: c},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: c},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: c},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: c},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(a, b, c nk.Vec2, color nk.Color) {
	if transparent(color) {
		return
	}
	col := uint32(color)
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{a.X, a.Y}, Color: col},
		Vertex{Pos: [2]float32{b.X, b.Y}, Color: col},
		Vertex{Pos: [2]float32{c.X, c.Y}, Color: col},
	)
	dl.addIndices(idx, idx+1, idx+2)
}

// AddConvexFill fills a convex polygon as a triangle fan.
func (dl *DrawList) AddConvexFill(pts []nk.Vec2, color nk.Color) {
	if transparent(color) || len(pts) < 3 {
		return
	}
	c := uint32(color)
	verts := make([]Vertex, len(pts))
	for i, p := range pts {
		verts[i] = Vertex{Pos: [2]float32{p.X, p.Y}, Color: c}
	}
	idx := dl.addVertices(verts...)
	for i := 2; i < len(pts); i++ {
		dl.addIndices(idx, idx+uint16(i-1), idx+uint16(i))
	}
}

// AddPolyline strokes the segments between consecutive points, closing the
// loop when closed is set.
func (dl *DrawList) AddPolyline(pts []nk.Vec2, color nk.Color, thickness float32, closed bool) {
	if transparent(color) || len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		dl.AddLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, color, thickness)
	}
	if closed && len(pts) > 2 {
		last := pts[len(pts)-1]
		dl.AddLine(last.X, last.Y, pts[0].X, pts[0].Y, color, thickness)
	}
}

// GlyphQuad represents a single character's rendering quad.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// AddGlyphQuads draws a slice of glyph quads with the specified color.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color nk.Color) {
	if transparent(color) || len(quads) == 0 {
		return
	}
	c := uint32(color)
	for _, q := range quads {
		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: c},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: c},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: c},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: c},
		)
		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
	}
}

// AddCustom records a callback command at the current point of the stream.
func (dl *DrawList) AddCustom(bounds nk.Rect, cb nk.CustomCallback, userData any) {
	dl.splitDraw()
	cmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
	cmd.Callback = cb
	cmd.Bounds = bounds
	cmd.UserData = userData
	dl.splitDraw()
}

// AddCommands converts a frame of draw commands into triangles.
func (dl *DrawList) AddCommands(cmds iter.Seq[nk.Command]) {
	for cmd := range cmds {
		dl.AddCommand(cmd)
	}
}

// AddCommand converts one draw command into triangles.
func (dl *DrawList) AddCommand(cmd nk.Command) {
	if cmd.Type != nk.CommandImage && cmd.Type != nk.CommandText {
		dl.SetTexture(0)
	}
	switch cmd.Type {
	case nk.CommandScissor:
		r := cmd.Rect
		dl.SetClip(r.X, r.Y, r.X+r.W, r.Y+r.H)
	case nk.CommandLine:
		a, b := cmd.Points[0], cmd.Points[1]
		dl.AddLine(a.X, a.Y, b.X, b.Y, cmd.Color, cmd.LineThickness)
	case nk.CommandCurve:
		dl.points = bezierPoints(dl.points[:0], cmd.Points)
		dl.AddPolyline(dl.points, cmd.Color, cmd.LineThickness, false)
	case nk.CommandRect:
		r := cmd.Rect
		if cmd.Rounding <= 0 {
			dl.AddRectOutline(r.X, r.Y, r.W, r.H, cmd.Color, cmd.LineThickness)
			return
		}
		dl.points = roundedRectPoints(dl.points[:0], r, cmd.Rounding)
		dl.AddPolyline(dl.points, cmd.Color, cmd.LineThickness, true)
	case nk.CommandRectFilled:
		r := cmd.Rect
		if cmd.Rounding <= 0 {
			dl.AddRect(r.X, r.Y, r.W, r.H, cmd.Color)
			return
		}
		dl.points = roundedRectPoints(dl.points[:0], r, cmd.Rounding)
		dl.AddConvexFill(dl.points, cmd.Color)
	case nk.CommandRectMultiColor:
		left, top, bottom, right := cmd.Colors[0], cmd.Colors[1], cmd.Colors[2], cmd.Colors[3]
		dl.AddRectMultiColor(cmd.Rect, left, top, right, bottom)
	case nk.CommandCircle:
		dl.points = ellipsePoints(dl.points[:0], cmd.Rect)
		dl.AddPolyline(dl.points, cmd.Color, cmd.LineThickness, true)
	case nk.CommandCircleFilled:
		dl.points = ellipsePoints(dl.points[:0], cmd.Rect)
		dl.AddConvexFill(dl.points, cmd.Color)
	case nk.CommandArc:
		c := cmd.Points[0]
		dl.points = arcPoints(dl.points[:0], c.X, c.Y, cmd.Radius, cmd.Angles[0], cmd.Angles[1], circleSegments)
		dl.AddPolyline(dl.points, cmd.Color, cmd.LineThickness, false)
	case nk.CommandArcFilled:
		c := cmd.Points[0]
		dl.points = append(dl.points[:0], c)
		dl.points = arcPoints(dl.points, c.X, c.Y, cmd.Radius, cmd.Angles[0], cmd.Angles[1], circleSegments)
		dl.AddConvexFill(dl.points, cmd.Color)
	case nk.CommandTriangle:
		dl.AddPolyline(cmd.Points[:3], cmd.Color, cmd.LineThickness, true)
	case nk.CommandTriangleFilled:
		dl.AddTriangle(cmd.Points[0], cmd.Points[1], cmd.Points[2], cmd.Color)
	case nk.CommandPolygon:
		dl.AddPolyline(cmd.Points, cmd.Color, cmd.LineThickness, true)
	case nk.CommandPolygonFilled:
		dl.AddConvexFill(cmd.Points, cmd.Color)
	case nk.CommandPolyline:
		dl.AddPolyline(cmd.Points, cmd.Color, cmd.LineThickness, false)
	case nk.CommandText:
		dl.addText(cmd)
	case nk.CommandImage:
		dl.addImage(cmd)
	case nk.CommandCustom:
		dl.AddCustom(cmd.Rect, cmd.Callback, cmd.UserData)
	}
}

func (dl *DrawList) addText(cmd nk.Command) {
	if dl.Atlas == nil || transparent(cmd.Color) || cmd.Text == "" {
		return
	}
	dl.SetTexture(dl.Atlas.TextureID)
	scale := cmd.Height / dl.Atlas.CellH
	x, y := cmd.Rect.X, cmd.Rect.Y
	quads := make([]GlyphQuad, 0, len(cmd.Text))
	for _, r := range cmd.Text {
		adv := dl.Atlas.CellW * scale
		if cmd.Font != nil {
			adv = cmd.Font.Width(string(r))
		}
		u0, v0, u1, v1 := dl.Atlas.UV(r)
		quads = append(quads, GlyphQuad{
			X0: x, Y0: y, X1: x + dl.Atlas.CellW*scale, Y1: y + cmd.Height,
			U0: u0, V0: v0, U1: u1, V1: v1,
		})
		x += adv
	}
	dl.AddGlyphQuads(quads, cmd.Color)
}

func (dl *DrawList) addImage(cmd nk.Command) {
	img := cmd.Image
	dl.SetTexture(uint32(img.Handle))
	u0, v0, u1, v1 := float32(0), float32(0), float32(1), float32(1)
	if img.W > 0 && img.H > 0 && img.Region[2] > 0 && img.Region[3] > 0 {
		w, h := float32(img.W), float32(img.H)
		u0 = float32(img.Region[0]) / w
		v0 = float32(img.Region[1]) / h
		u1 = float32(img.Region[0]+img.Region[2]) / w
		v1 = float32(img.Region[1]+img.Region[3]) / h
	}
	r := cmd.Rect
	dl.AddGlyphQuads([]GlyphQuad{{
		X0: r.X, Y0: r.Y, X1: r.X + r.W, Y1: r.Y + r.H,
		U0: u0, V0: v0, U1: u1, V1: v1,
	}}, cmd.Color)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 || cmd.Callback != nil {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

func arcPoints(pts []nk.Vec2, cx, cy, radius, a0, a1 float32, segments int) []nk.Vec2 {
	step := (a1 - a0) / float32(segments)
	for i := 0; i <= segments; i++ {
		a := float64(a0 + step*float32(i))
		pts = append(pts, nk.Vec2{
			X: cx + float32(math.Cos(a))*radius,
			Y: cy + float32(math.Sin(a))*radius,
		})
	}
	return pts
}

func ellipsePoints(pts []nk.Vec2, r nk.Rect) []nk.Vec2 {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	for i := range circleSegments {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts = append(pts, nk.Vec2{
			X: cx + float32(math.Cos(a))*r.W/2,
			Y: cy + float32(math.Sin(a))*r.H/2,
		})
	}
	return pts
}

func roundedRectPoints(pts []nk.Vec2, r nk.Rect, rounding float32) []nk.Vec2 {
	rad := min(rounding, r.W/2, r.H/2)
	const pi = math.Pi
	pts = arcPoints(pts, r.X+rad, r.Y+rad, rad, pi, 1.5*pi, cornerSegments)
	pts = arcPoints(pts, r.X+r.W-rad, r.Y+rad, rad, 1.5*pi, 2*pi, cornerSegments)
	pts = arcPoints(pts, r.X+r.W-rad, r.Y+r.H-rad, rad, 0, 0.5*pi, cornerSegments)
	return arcPoints(pts, r.X+rad, r.Y+r.H-rad, rad, 0.5*pi, pi, cornerSegments)
}

// bezierPoints flattens a cubic curve given as begin, two controls and end.
func bezierPoints(pts []nk.Vec2, ctrl []nk.Vec2) []nk.Vec2 {
	if len(ctrl) < 4 {
		return pts
	}
	p0, p1, p2, p3 := ctrl[0], ctrl[1], ctrl[2], ctrl[3]
	for i := 0; i <= curveSegments; i++ {
		t := float32(i) / curveSegments
		u := 1 - t
		w0, w1, w2, w3 := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		pts = append(pts, nk.Vec2{
			X: w0*p0.X + w1*p1.X + w2*p2.X + w3*p3.X,
			Y: w0*p0.Y + w1*p1.Y + w2*p2.Y + w3*p3.Y,
		})
	}
	return pts
}
