package nk

import (
	"strings"
	"unicode"
)

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries.
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at rune boundaries (for CJK or dense text).
	WrapModeChar
	// WrapModeAuto wraps Latin runs by word and CJK runs by rune.
	WrapModeAuto
)

// WrapText breaks text into lines no wider than maxWidth. Explicit newlines
// always break. A single word wider than maxWidth gets a line of its own.
func WrapText(f Font, text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	var lines []string
	for para := range strings.SplitSeq(text, "\n") {
		var wrapped []string
		switch mode {
		case WrapModeChar:
			wrapped = wrapByChar(f, para, maxWidth)
		case WrapModeAuto:
			wrapped = wrapMixed(f, para, maxWidth)
		default:
			wrapped = wrapByWord(f, para, maxWidth)
		}
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

func wrapByWord(f Font, text string, maxWidth float32) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if f.Width(test) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func wrapByChar(f Font, text string, maxWidth float32) []string {
	var lines []string
	var current []rune
	for _, r := range text {
		test := append(current, r)
		if f.Width(string(test)) > maxWidth && len(current) > 0 {
			lines = append(lines, string(current))
			current = []rune{r}
		} else {
			current = test
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}

// wrapMixed wraps each run of uniform script with the matching mode and
// joins runs onto the same line while they fit.
func wrapMixed(f Font, text string, maxWidth float32) []string {
	var lines []string
	var current string
	for _, seg := range splitByScript(text) {
		mode := WrapModeWord
		if seg.isCJK {
			mode = WrapModeChar
		}
		var segLines []string
		if mode == WrapModeChar {
			segLines = wrapByChar(f, seg.text, maxWidth)
		} else {
			segLines = wrapByWord(f, seg.text, maxWidth)
		}
		for i, line := range segLines {
			if i == 0 && current != "" {
				if f.Width(current+line) <= maxWidth {
					current += line
					continue
				}
				lines = append(lines, current)
			} else if i > 0 && current != "" {
				lines = append(lines, current)
			}
			current = line
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

type textSegment struct {
	text  string
	isCJK bool
}

func splitByScript(text string) []textSegment {
	var segments []textSegment
	var current []rune
	var currentIsCJK bool
	for _, r := range text {
		cjk := isCJKRune(r)
		if cjk != currentIsCJK && len(current) > 0 {
			segments = append(segments, textSegment{text: string(current), isCJK: currentIsCJK})
			current = current[:0]
		}
		currentIsCJK = cjk
		current = append(current, r)
	}
	if len(current) > 0 {
		segments = append(segments, textSegment{text: string(current), isCJK: currentIsCJK})
	}
	return segments
}

func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) ||
		unicode.In(r, unicode.Bopomofo) ||
		unicode.In(r, unicode.Yi)
}

// TruncateText shortens text to fit maxWidth, ending it with suffix when
// anything was cut. It returns "" when not even the suffix fits.
func TruncateText(f Font, text string, maxWidth float32, suffix string) string {
	if f.Width(text) <= maxWidth {
		return text
	}
	target := maxWidth - f.Width(suffix)
	if target < 0 {
		return ""
	}
	runes := []rune(text)
	for len(runes) > 0 {
		if f.Width(string(runes)) <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}

// MeasureWrappedText returns the size of text wrapped to maxWidth.
func MeasureWrappedText(f Font, text string, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := WrapText(f, text, maxWidth, mode)
	var w float32
	for _, line := range lines {
		w = maxf(w, f.Width(line))
	}
	return Vec2{X: w, Y: float32(len(lines)) * f.Height()}
}

// TextWrap draws text wrapped over as many lines as fit the next widget
// slot.
func (ctx *Context) TextWrap(text string) {
	ctx.TextWrapColored(text, ctx.style.Text.Color)
}

// TextWrapColored is TextWrap in the given color.
func (ctx *Context) TextWrapColored(text string, c Color) {
	if !ctx.requireWindow("TextWrap") {
		return
	}
	win := ctx.current
	bounds := ctx.panelAllocSpace()
	font := ctx.style.Font
	t := textStyle{background: ctx.style.Window.Background, text: c}
	pad := ctx.style.Text.Padding

	line := Rect{
		X: bounds.X + pad.X,
		Y: bounds.Y + pad.Y,
		W: maxf(0, bounds.W-2*pad.X),
		H: font.Height(),
	}
	for _, s := range WrapText(font, text, line.W, WrapModeAuto) {
		if line.Y+line.H > bounds.Y+bounds.H-pad.Y {
			break
		}
		widgetText(&win.buffer, line, s, &t, TextAlignLeft|TextAlignTop, font)
		line.Y += font.Height() + pad.Y
	}
}

// LabelWrap draws a string label wrapped over several lines.
func (ctx *Context) LabelWrap(text string) { ctx.TextWrap(text) }
