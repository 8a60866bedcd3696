package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	atlasCols  = 16
	atlasRows  = 6
	atlasFirst = 32
	atlasLast  = atlasFirst + atlasCols*atlasRows - 1
)

// Atlas is a grid of printable ASCII glyphs rasterized from a bitmap face
// into a single-channel texture.
type Atlas struct {
	TextureID    uint32
	CellW, CellH float32
	Image        *image.Alpha
}

// NewAtlasImage rasterizes the printable ASCII range of basicfont.Face7x13
// into a 16x6 grid. It needs no GL context.
func NewAtlasImage() *Atlas {
	face := basicfont.Face7x13
	cw, ch := face.Advance, face.Height
	img := image.NewAlpha(image.Rect(0, 0, atlasCols*cw, atlasRows*ch))
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := rune(atlasFirst); r <= atlasLast; r++ {
		i := int(r - atlasFirst)
		col, row := i%atlasCols, i/atlasCols
		d.Dot = fixed.P(col*cw, row*ch+face.Ascent)
		d.DrawString(string(r))
	}
	return &Atlas{CellW: float32(cw), CellH: float32(ch), Image: img}
}

// NewAtlas rasterizes the glyph grid and uploads it as a GL texture.
func NewAtlas() *Atlas {
	a := NewAtlasImage()
	b := a.Image.Bounds()
	gl.GenTextures(1, &a.TextureID)
	gl.BindTexture(gl.TEXTURE_2D, a.TextureID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return a
}

// UV returns the texture coordinates of the cell holding r. Runes outside
// the grid fall back to an ASCII look-alike or '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	r = unicodeFallback(r)
	if r < atlasFirst || r > atlasLast {
		r = '?'
	}
	i := int(r - atlasFirst)
	col, row := float32(i%atlasCols), float32(i/atlasCols)
	return col / atlasCols, row / atlasRows, (col + 1) / atlasCols, (row + 1) / atlasRows
}

// Delete releases the texture.
func (a *Atlas) Delete() {
	if a.TextureID != 0 {
		gl.DeleteTextures(1, &a.TextureID)
		a.TextureID = 0
	}
}

// unicodeFallback maps common symbols to ASCII equivalents.
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
