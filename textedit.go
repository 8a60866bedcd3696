package nk

import (
	"unicode"
	"unicode/utf8"
)

// TextEditMode selects how typed text is applied.
type TextEditMode uint8

const (
	TextEditModeView    TextEditMode = iota // Navigation only
	TextEditModeInsert                      // Typed runes are inserted at the cursor
	TextEditModeReplace                     // Typed runes overwrite the rune at the cursor
)

// Filter decides whether r may be entered into te.
type Filter func(te *TextEdit, r rune) bool

// TextEdit is a text editing state machine over a Str: cursor and
// selection in rune indices, an edit mode and bounded undo/redo history.
//
// A TextEdit must be initialized with NewTextEdit, Init or InitFixed.
type TextEdit struct {
	Str       Str
	Filter    Filter
	Clipboard Clipboard
	Scrollbar Vec2

	Cursor      int
	SelectStart int // Selection anchor
	SelectEnd   int // Selection end, where the cursor is while selecting
	Mode        TextEditMode
	SingleLine  bool
	Active      bool

	initialized   bool
	hasPreferredX bool
	preferredX    float32
	undo          undoState
}

// NewTextEdit creates an editor over a growable string.
func NewTextEdit(capacity int) *TextEdit {
	te := &TextEdit{}
	te.Init(capacity)
	return te
}

// Init prepares te with an empty growable string.
func (te *TextEdit) Init(capacity int) {
	te.Str = Str{}
	te.Str.buf.Init(nil, capacity)
	te.ClearState(true, nil)
}

// InitFixed prepares te over memory that never grows.
func (te *TextEdit) InitFixed(mem []byte) {
	te.Str = Str{}
	te.Str.buf.InitFixed(mem)
	te.ClearState(true, nil)
}

// ClearState resets cursor, selection, mode and history while keeping the text.
func (te *TextEdit) ClearState(singleLine bool, filter Filter) {
	te.undo.reset()
	te.SelectStart, te.SelectEnd = 0, 0
	te.Cursor = 0
	te.hasPreferredX = false
	te.preferredX = 0
	te.initialized = true
	te.SingleLine = singleLine
	te.Mode = TextEditModeInsert
	te.Filter = filter
	te.Scrollbar = Vec2{}
}

// Free releases the string memory.
func (te *TextEdit) Free() {
	te.Str.Free()
}

// HasSelection reports whether a non-empty range is selected.
func (te *TextEdit) HasSelection() bool { return te.SelectStart != te.SelectEnd }

// Selection returns the selected text.
func (te *TextEdit) Selection() string {
	lo, hi := te.SelectStart, te.SelectEnd
	if hi < lo {
		lo, hi = hi, lo
	}
	return te.Str.Substring(lo, hi-lo)
}

// clamp keeps cursor and selection inside the text.
func (te *TextEdit) clamp() {
	n := te.Str.Len()
	if te.HasSelection() {
		te.SelectStart = min(te.SelectStart, n)
		te.SelectEnd = min(te.SelectEnd, n)
		if te.SelectStart == te.SelectEnd {
			te.Cursor = te.SelectStart
		}
	}
	te.Cursor = min(te.Cursor, n)
}

func (te *TextEdit) sortSelection() {
	if te.SelectEnd < te.SelectStart {
		te.SelectStart, te.SelectEnd = te.SelectEnd, te.SelectStart
	}
}

// moveToFirst collapses the selection to its start.
func (te *TextEdit) moveToFirst() {
	if te.HasSelection() {
		te.sortSelection()
		te.Cursor = te.SelectStart
		te.SelectEnd = te.SelectStart
		te.hasPreferredX = false
	}
}

// moveToLast collapses the selection to its end.
func (te *TextEdit) moveToLast() {
	if te.HasSelection() {
		te.sortSelection()
		te.clamp()
		te.Cursor = te.SelectEnd
		te.SelectStart = te.SelectEnd
		te.hasPreferredX = false
	}
}

// prepSelectionAtCursor anchors a new selection at the cursor, or moves the
// cursor to the moving end of an existing one.
func (te *TextEdit) prepSelectionAtCursor() {
	if !te.HasSelection() {
		te.SelectStart = te.Cursor
		te.SelectEnd = te.Cursor
	} else {
		te.Cursor = te.SelectEnd
	}
}

// SelectAll selects the whole text.
func (te *TextEdit) SelectAll() {
	te.SelectStart = 0
	te.SelectEnd = te.Str.Len()
	te.hasPreferredX = false
}

// Delete removes n runes at where and records the removed runes for undo.
func (te *TextEdit) Delete(where, n int) {
	te.makeUndoDelete(where, n)
	te.Str.DeleteRunes(where, n)
	te.hasPreferredX = false
}

// DeleteSelection removes the selected text and collapses the selection.
func (te *TextEdit) DeleteSelection() {
	te.clamp()
	if !te.HasSelection() {
		return
	}
	if te.SelectStart < te.SelectEnd {
		te.Delete(te.SelectStart, te.SelectEnd-te.SelectStart)
		te.SelectEnd = te.SelectStart
		te.Cursor = te.SelectStart
	} else {
		te.Delete(te.SelectEnd, te.SelectStart-te.SelectEnd)
		te.SelectStart = te.SelectEnd
		te.Cursor = te.SelectEnd
	}
	te.hasPreferredX = false
}

// Text types text at the cursor. Each accepted rune is one undo step.
// A selection is replaced by the first accepted rune.
func (te *TextEdit) Text(text string) {
	if text == "" || te.Mode == TextEditModeView {
		return
	}
	for _, r := range text {
		if r == 127 || (r == '\n' && te.SingleLine) {
			continue
		}
		if te.Filter != nil && !te.Filter(te, r) {
			continue
		}
		s := string(r)
		switch {
		case te.HasSelection():
			te.replaceSelection(s)
		case te.Mode == TextEditModeReplace && te.Cursor < te.Str.Len():
			te.makeUndoReplace(te.Cursor, 1, 1)
			te.Str.DeleteRunes(te.Cursor, 1)
			if te.Str.InsertString(te.Cursor, s) {
				te.Cursor++
				te.hasPreferredX = false
			} else {
				te.undo.amendTop(0)
			}
		default:
			te.clamp()
			if te.Str.InsertString(te.Cursor, s) {
				te.makeUndoInsert(te.Cursor, 1)
				te.Cursor++
				te.hasPreferredX = false
			}
		}
	}
}

// replaceSelection swaps the selection for s in a single undo step.
func (te *TextEdit) replaceSelection(s string) {
	te.clamp()
	te.sortSelection()
	start, n := te.SelectStart, te.SelectEnd-te.SelectStart
	te.makeUndoReplace(start, n, utf8.RuneCountInString(s))
	te.Str.DeleteRunes(start, n)
	te.Cursor = start
	te.SelectEnd = start
	if te.Str.InsertString(start, s) {
		te.Cursor += utf8.RuneCountInString(s)
	} else {
		te.undo.amendTop(0)
	}
	te.hasPreferredX = false
}

// Cut deletes the selection. The caller copies Selection to the clipboard
// first.
func (te *TextEdit) Cut() bool {
	if te.Mode == TextEditModeView || !te.HasSelection() {
		return false
	}
	te.DeleteSelection()
	te.hasPreferredX = false
	return true
}

// Copy returns the selected text.
func (te *TextEdit) Copy() (string, bool) {
	if !te.HasSelection() {
		return "", false
	}
	return te.Selection(), true
}

// Paste replaces the selection with text. When the text does not fit, the
// selection stays deleted (undo restores it) and false is returned.
func (te *TextEdit) Paste(text string) bool {
	if te.Mode == TextEditModeView {
		return false
	}
	te.clamp()
	te.DeleteSelection()
	if text == "" {
		return true
	}
	n := utf8.RuneCountInString(text)
	te.makeUndoInsert(te.Cursor, n)
	if te.Str.InsertString(te.Cursor, text) {
		te.Cursor += n
		te.hasPreferredX = false
		return true
	}
	te.undo.retractEmpty()
	return false
}

// isSeparator reports runes that end a word.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', 0x3000, ',', ';', '(', ')', '{', '}', '[', ']', '|':
		return true
	}
	return unicode.IsSpace(r)
}

// isWordBoundary reports whether a word may start at rune index idx.
// Index 0 always qualifies.
func isWordBoundary(runes []rune, idx int) bool {
	if idx <= 0 {
		return true
	}
	return isSeparator(runes[min(idx, len(runes))-1])
}

func wordPrevious(runes []rune, cursor int) int {
	c := min(cursor, len(runes))
	for c > 0 && isSeparator(runes[c-1]) {
		c--
	}
	for c > 0 && !isWordBoundary(runes, c) {
		c--
	}
	return c
}

func wordNext(runes []rune, cursor int) int {
	c := max(cursor, 0)
	for c < len(runes) && !isSeparator(runes[c]) {
		c++
	}
	for c < len(runes) && isSeparator(runes[c]) {
		c++
	}
	return c
}

// textRow is one display row: the runes up to and including a newline.
type textRow struct {
	start int
	n     int
	width float32
}

func layoutRow(runes []rune, start int, font Font) textRow {
	end := start
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	w := font.Width(string(runes[start:end]))
	if end < len(runes) {
		end++
	}
	return textRow{start: start, n: end - start, width: w}
}

func glyphWidth(font Font, r rune) float32 {
	if r == '\n' || r == '\r' {
		return 0
	}
	return runeWidth(font, r)
}

// textFind locates a rune on screen.
type textFind struct {
	x, y      float32
	height    float32
	firstChar int // First rune of the row
	length    int // Runes in the row
	prevFirst int // First rune of the previous row
}

func (te *TextEdit) findCharPos(runes []rune, n int, font Font, rowHeight float32) textFind {
	f := textFind{height: rowHeight}
	z := len(runes)
	n = min(max(n, 0), z)
	if te.SingleLine {
		f.length = z
		f.x = font.Width(string(runes[:n]))
		return f
	}
	start, prev := 0, 0
	for {
		row := layoutRow(runes, start, font)
		end := start + row.n
		atEnd := n == z && end == z && (row.n == 0 || runes[z-1] != '\n')
		if n < end || atEnd {
			f.firstChar = start
			f.length = row.n
			f.prevFirst = prev
			f.x = font.Width(string(runes[start:n]))
			return f
		}
		prev = start
		start = end
		f.y += rowHeight
	}
}

// locateCoord maps a point relative to the text origin to a rune index.
func (te *TextEdit) locateCoord(x, y float32, font Font, rowHeight float32) int {
	runes := []rune(te.Str.String())
	n := len(runes)
	var row textRow
	var baseY float32
	i := 0
	for i < n {
		if te.SingleLine {
			row = textRow{start: 0, n: n, width: font.Width(string(runes))}
		} else {
			row = layoutRow(runes, i, font)
		}
		if i == 0 && y < baseY {
			return 0
		}
		if y < baseY+rowHeight || te.SingleLine {
			break
		}
		i += row.n
		baseY += rowHeight
	}
	if i >= n {
		return n
	}
	if x < 0 {
		return i
	}
	if x < row.width {
		var prev float32
		for k := 0; k < row.n; k++ {
			w := glyphWidth(font, runes[i+k])
			if x < prev+w {
				if x < prev+w/2 {
					return i + k
				}
				return i + k + 1
			}
			prev += w
		}
	}
	if runes[i+row.n-1] == '\n' {
		return i + row.n - 1
	}
	return i + row.n
}

// Click moves the cursor to the clicked point and drops the selection.
// Coordinates are relative to the text origin.
func (te *TextEdit) Click(x, y float32, font Font, rowHeight float32) {
	te.Cursor = te.locateCoord(x, y, font, rowHeight)
	te.SelectStart = te.Cursor
	te.SelectEnd = te.Cursor
	te.hasPreferredX = false
}

// Drag extends the selection to the dragged point.
func (te *TextEdit) Drag(x, y float32, font Font, rowHeight float32) {
	p := te.locateCoord(x, y, font, rowHeight)
	if te.SelectStart == te.SelectEnd {
		te.SelectStart = te.Cursor
	}
	te.Cursor = p
	te.SelectEnd = p
}

// moveVertical moves the cursor into the row starting at start, keeping
// the preferred column.
func (te *TextEdit) moveVertical(runes []rune, start int, goal float32, shift bool, font Font) {
	te.Cursor = start
	row := layoutRow(runes, start, font)
	var x float32
	for i := 0; i < row.n && x < row.width; i++ {
		x += glyphWidth(font, runes[start+i])
		if x > goal {
			break
		}
		te.Cursor++
	}
	te.clamp()
	te.hasPreferredX = true
	te.preferredX = goal
	if shift {
		te.SelectEnd = te.Cursor
	}
}

// Key applies a navigation or editing key. Vertical motion and line
// navigation measure rows with font.
func (te *TextEdit) Key(key Key, shift bool, font Font, rowHeight float32) {
	switch key {
	case KeyTextUndo:
		te.Undo()
		te.hasPreferredX = false

	case KeyTextRedo:
		te.Redo()
		te.hasPreferredX = false

	case KeyTextSelectAll:
		te.SelectAll()

	case KeyTextInsertMode:
		if te.Mode == TextEditModeView {
			te.Mode = TextEditModeInsert
		}

	case KeyTextReplaceMode:
		if te.Mode == TextEditModeView {
			te.Mode = TextEditModeReplace
		}

	case KeyTextResetMode:
		if te.Mode == TextEditModeInsert || te.Mode == TextEditModeReplace {
			te.Mode = TextEditModeView
		}

	case KeyLeft:
		if shift {
			te.clamp()
			te.prepSelectionAtCursor()
			if te.SelectEnd > 0 {
				te.SelectEnd--
			}
			te.Cursor = te.SelectEnd
		} else if te.HasSelection() {
			te.moveToFirst()
		} else if te.Cursor > 0 {
			te.Cursor--
		}
		te.hasPreferredX = false

	case KeyRight:
		if shift {
			te.prepSelectionAtCursor()
			te.SelectEnd++
			te.clamp()
			te.Cursor = te.SelectEnd
		} else {
			if te.HasSelection() {
				te.moveToLast()
			} else {
				te.Cursor++
			}
			te.clamp()
		}
		te.hasPreferredX = false

	case KeyTextWordLeft:
		runes := []rune(te.Str.String())
		if shift {
			if !te.HasSelection() {
				te.prepSelectionAtCursor()
			}
			te.Cursor = wordPrevious(runes, te.Cursor)
			te.SelectEnd = te.Cursor
			te.clamp()
		} else if te.HasSelection() {
			te.moveToFirst()
		} else {
			te.Cursor = wordPrevious(runes, te.Cursor)
			te.clamp()
		}
		te.hasPreferredX = false

	case KeyTextWordRight:
		runes := []rune(te.Str.String())
		if shift {
			if !te.HasSelection() {
				te.prepSelectionAtCursor()
			}
			te.Cursor = wordNext(runes, te.Cursor)
			te.SelectEnd = te.Cursor
			te.clamp()
		} else if te.HasSelection() {
			te.moveToLast()
		} else {
			te.Cursor = wordNext(runes, te.Cursor)
			te.clamp()
		}
		te.hasPreferredX = false

	case KeyDown:
		if te.SingleLine {
			te.Key(KeyRight, shift, font, rowHeight)
			return
		}
		if shift {
			te.prepSelectionAtCursor()
		} else if te.HasSelection() {
			te.moveToLast()
		}
		te.clamp()
		runes := []rune(te.Str.String())
		f := te.findCharPos(runes, te.Cursor, font, rowHeight)
		next := f.firstChar + f.length
		if f.length > 0 && runes[next-1] == '\n' {
			goal := f.x
			if te.hasPreferredX {
				goal = te.preferredX
			}
			te.moveVertical(runes, next, goal, shift, font)
		}

	case KeyUp:
		if te.SingleLine {
			te.Key(KeyLeft, shift, font, rowHeight)
			return
		}
		if shift {
			te.prepSelectionAtCursor()
		} else if te.HasSelection() {
			te.moveToFirst()
		}
		te.clamp()
		runes := []rune(te.Str.String())
		f := te.findCharPos(runes, te.Cursor, font, rowHeight)
		if f.prevFirst != f.firstChar {
			goal := f.x
			if te.hasPreferredX {
				goal = te.preferredX
			}
			te.moveVertical(runes, f.prevFirst, goal, shift, font)
		}

	case KeyDel:
		if te.Mode == TextEditModeView {
			break
		}
		if te.HasSelection() {
			te.DeleteSelection()
		} else if te.Cursor < te.Str.Len() {
			te.Delete(te.Cursor, 1)
		}
		te.hasPreferredX = false

	case KeyBackspace:
		if te.Mode == TextEditModeView {
			break
		}
		if te.HasSelection() {
			te.DeleteSelection()
		} else {
			te.clamp()
			if te.Cursor > 0 {
				te.Delete(te.Cursor-1, 1)
				te.Cursor--
			}
		}
		te.hasPreferredX = false

	case KeyTextStart:
		if shift {
			te.prepSelectionAtCursor()
			te.Cursor = 0
			te.SelectEnd = 0
		} else {
			te.Cursor = 0
			te.SelectStart = 0
			te.SelectEnd = 0
		}
		te.hasPreferredX = false

	case KeyTextEnd:
		n := te.Str.Len()
		if shift {
			te.prepSelectionAtCursor()
			te.Cursor = n
			te.SelectEnd = n
		} else {
			te.Cursor = n
			te.SelectStart = n
			te.SelectEnd = n
		}
		te.hasPreferredX = false

	case KeyTextLineStart:
		te.clamp()
		if shift {
			te.prepSelectionAtCursor()
		} else {
			te.moveToFirst()
		}
		runes := []rune(te.Str.String())
		f := te.findCharPos(runes, te.Cursor, font, rowHeight)
		te.Cursor = f.firstChar
		if shift {
			te.SelectEnd = te.Cursor
		}
		te.hasPreferredX = false

	case KeyTextLineEnd:
		te.clamp()
		if shift {
			te.prepSelectionAtCursor()
		} else {
			te.moveToFirst()
		}
		runes := []rune(te.Str.String())
		f := te.findCharPos(runes, te.Cursor, font, rowHeight)
		te.Cursor = f.firstChar + f.length
		if f.length > 0 && runes[te.Cursor-1] == '\n' {
			te.Cursor--
		}
		if shift {
			te.SelectEnd = te.Cursor
		}
		te.hasPreferredX = false
	}
}
