package nk

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// nullRect is the "no clipping" scissor.
var nullRect = Rect{X: -8192, Y: -8192, W: 16384, H: 16384}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{X: r.W, Y: r.H} }

// Shrink returns the rectangle reduced by amount on every side.
func (r Rect) Shrink(amount float32) Rect {
	w := maxf(r.W, 2*amount)
	h := maxf(r.H, 2*amount)
	return Rect{X: r.X + amount, Y: r.Y + amount, W: w - 2*amount, H: h - 2*amount}
}

// Pad returns the rectangle reduced by pad.X horizontally and pad.Y vertically.
func (r Rect) Pad(pad Vec2) Rect {
	r.W = maxf(r.W, 2*pad.X)
	r.H = maxf(r.H, 2*pad.Y)
	return Rect{X: r.X + pad.X, Y: r.Y + pad.Y, W: r.W - 2*pad.X, H: r.H - 2*pad.Y}
}

// unify intersects r with the box spanned by (x0,y0)-(x1,y1).
// Degenerate results collapse to zero width or height.
func (r Rect) unify(x0, y0, x1, y1 float32) Rect {
	var c Rect
	c.X = maxf(r.X, x0)
	c.Y = maxf(r.Y, y0)
	c.W = maxf(0, minf(r.X+r.W, x1)-c.X)
	c.H = maxf(0, minf(r.Y+r.H, y1)-c.Y)
	return c
}

// truncate drops the fractional part of every component.
func (r Rect) truncate() Rect {
	return Rect{X: float32(int(r.X)), Y: float32(int(r.Y)), W: float32(int(r.W)), H: float32(int(r.H))}
}

// Color is a packed RGBA color (0xAABBGGRR, matching the OpenGL vertex layout).
type Color uint32

// Color constants
const (
	ColorWhite       Color = 0xFFFFFFFF
	ColorBlack       Color = 0xFF000000
	ColorRed         Color = 0xFF0000FF
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFFFF0000
	ColorYellow      Color = 0xFF00FFFF
	ColorGray        Color = 0xFF808080
	ColorTransparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGB creates an opaque packed color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) Color {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// Components extracts RGBA components from a packed color.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Image is an opaque texture handle plus the sub-region to sample.
type Image struct {
	Handle uint64
	W, H   uint16
	Region [4]uint16
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// frac removes the rounding gap left between adjacent columns.
func frac(v float32) float32 {
	return v - float32(int(roundf(v)))
}

func saturate(v float32) float32 {
	return clampf(v, 0, 1)
}

func ceilf(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
