package nk

import (
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/dboslee/lru"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

// Font is the text measurement capability the layout engine and the text
// editor need. Rasterization is left to the renderer.
//
// Example with a golang.org/x/image face:
//
//	ctx := nk.New(nk.WithFont(nk.NewFaceFont(basicfont.Face7x13)))
type Font interface {
	// Height returns the line height (ascent plus descent) in pixels.
	Height() float32

	// Width returns the advance width of text in pixels.
	Width(text string) float32
}

// Glyph describes a single glyph for vertex-buffer consumers.
type Glyph struct {
	Advance float32 // Horizontal advance including kerning with the next rune
	Offset  Vec2    // Offset of the glyph box from the pen position on the baseline
	W, H    float32 // Glyph box size
	UV      [2]Vec2 // Atlas coordinates, zero if the font has no atlas
}

// GlyphQuerier is implemented by fonts that can describe individual glyphs.
type GlyphQuerier interface {
	QueryGlyph(r, next rune) (Glyph, bool)
}

// MonoFont is a fixed-cell font. East Asian wide and fullwidth runes take
// two cells. It is useful for tests and for renderers with a bitmap font.
type MonoFont struct {
	CellWidth  float32
	LineHeight float32
}

// Height returns the line height.
func (f MonoFont) Height() float32 { return f.LineHeight }

// Width returns the number of cells in text times the cell width.
func (f MonoFont) Width(text string) float32 {
	cells := 0
	for _, r := range text {
		cells += runeCells(r)
	}
	return float32(cells) * f.CellWidth
}

// QueryGlyph describes r as one or two cells.
func (f MonoFont) QueryGlyph(r, _ rune) (Glyph, bool) {
	w := float32(runeCells(r)) * f.CellWidth
	return Glyph{Advance: w, W: w, H: f.LineHeight}, true
}

func runeCells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// FaceFont adapts a golang.org/x/image/font.Face.
type FaceFont struct {
	face   font.Face
	height float32
	ascent float32
}

// NewFaceFont wraps face. The face is only used for metrics.
func NewFaceFont(face font.Face) *FaceFont {
	m := face.Metrics()
	return &FaceFont{
		face:   face,
		height: float32((m.Ascent + m.Descent).Ceil()),
		ascent: fixedToFloat(m.Ascent),
	}
}

// Face returns the wrapped face.
func (f *FaceFont) Face() font.Face { return f.face }

// Height returns ascent plus descent.
func (f *FaceFont) Height() float32 { return f.height }

// Ascent returns the distance from the top of a line to the baseline.
func (f *FaceFont) Ascent() float32 { return f.ascent }

// Width measures text including kerning.
func (f *FaceFont) Width(text string) float32 {
	return fixedToFloat(font.MeasureString(f.face, text))
}

// QueryGlyph reports the bounds and advance of r.
func (f *FaceFont) QueryGlyph(r, next rune) (Glyph, bool) {
	bounds, advance, ok := f.face.GlyphBounds(r)
	if !ok {
		return Glyph{}, false
	}
	if next != 0 {
		advance += f.face.Kern(r, next)
	}
	return Glyph{
		Advance: fixedToFloat(advance),
		Offset:  Vec2{X: fixedToFloat(bounds.Min.X), Y: fixedToFloat(bounds.Min.Y)},
		W:       fixedToFloat(bounds.Max.X - bounds.Min.X),
		H:       fixedToFloat(bounds.Max.Y - bounds.Min.Y),
	}, true
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// clampText returns the byte length of the longest prefix of text that
// fits into space, and its width.
func clampText(f Font, text string, space float32) (int, float32) {
	var w float32
	for i, r := range text {
		rw := f.Width(string(r))
		if w+rw > space {
			return i, w
		}
		w += rw
	}
	return len(text), w
}

// runeWidth measures a single rune.
func runeWidth(f Font, r rune) float32 {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return f.Width(string(buf[:n]))
}

// measuredFont caches widths of a font keyed by a generation number that
// changes whenever a context switches fonts.
type measuredFont struct {
	Font
	gen uint64
}

type widthKey struct {
	gen  uint64
	text string
}

var (
	fontGeneration atomic.Uint64
	widthCacheMu   sync.Mutex
	widthCache     = lru.New[widthKey, float32]()
)

func newMeasuredFont(f Font) *measuredFont {
	if m, ok := f.(*measuredFont); ok {
		return m
	}
	return &measuredFont{Font: f, gen: fontGeneration.Add(1)}
}

// Width returns the cached width of text, measuring it on a miss.
func (m *measuredFont) Width(text string) float32 {
	key := widthKey{gen: m.gen, text: text}
	widthCacheMu.Lock()
	w, ok := widthCache.Get(key)
	widthCacheMu.Unlock()
	if ok {
		return w
	}
	w = m.Font.Width(text)
	widthCacheMu.Lock()
	widthCache.Set(key, w)
	widthCacheMu.Unlock()
	return w
}

// QueryGlyph forwards to the wrapped font when it supports glyph queries.
func (m *measuredFont) QueryGlyph(r, next rune) (Glyph, bool) {
	if q, ok := m.Font.(GlyphQuerier); ok {
		return q.QueryGlyph(r, next)
	}
	return Glyph{}, false
}
