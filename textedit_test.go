package nk

import (
	"math/rand/v2"
	"strings"
	"testing"
)

var testFont = MonoFont{CellWidth: 7, LineHeight: 13}

func newEdit(t *testing.T, text string) *TextEdit {
	t.Helper()
	te := NewTextEdit(16)
	te.SingleLine = false
	if !te.Str.AppendString(text) {
		t.Fatalf("could not seed %q", text)
	}
	te.Cursor = te.Str.Len()
	return te
}

func checkUndoInvariant(t *testing.T, te *TextEdit) {
	t.Helper()
	u := &te.undo
	if u.undoCharPoint > UndoCharCount {
		t.Fatalf("undo char point %d beyond capacity", u.undoCharPoint)
	}
	if u.ready && u.redoCharPoint < u.undoCharPoint {
		t.Fatalf("redo chars (%d) overlap undo chars (%d)", u.redoCharPoint, u.undoCharPoint)
	}
	if u.ready && u.undoPoint > u.redoPoint {
		t.Fatalf("undo records (%d) overlap redo records (%d)", u.undoPoint, u.redoPoint)
	}
}

func TestTextEditTypeThenUndo(t *testing.T) {
	te := newEdit(t, "hello")
	te.Text(" world")
	if got := te.Str.String(); got != "hello world" {
		t.Fatalf("Expected %q, got %q", "hello world", got)
	}

	for range 6 {
		te.Key(KeyTextUndo, false, testFont, testFont.Height())
	}
	if got := te.Str.String(); got != "hello" {
		t.Errorf("Expected %q after full undo, got %q", "hello", got)
	}
	if te.Cursor != 5 {
		t.Errorf("Expected cursor 5, got %d", te.Cursor)
	}

	// Extra undos have nothing left to revert.
	te.Undo()
	if got := te.Str.String(); got != "hello" {
		t.Errorf("undo past history changed text to %q", got)
	}

	for range 6 {
		te.Redo()
	}
	if got := te.Str.String(); got != "hello world" {
		t.Errorf("Expected %q after redo, got %q", "hello world", got)
	}
}

func TestTextEditDeleteUndo(t *testing.T) {
	te := newEdit(t, "añb€cdé")
	te.Delete(1, 4)
	if got := te.Str.String(); got != "adé" {
		t.Fatalf("Expected %q, got %q", "adé", got)
	}
	te.Undo()
	if got := te.Str.String(); got != "añb€cdé" {
		t.Errorf("Expected original text, got %q", got)
	}
	te.Redo()
	if got := te.Str.String(); got != "adé" {
		t.Errorf("Expected redo to delete again, got %q", got)
	}
}

func TestTextEditHistoryLimit(t *testing.T) {
	te := newEdit(t, "")
	var typed strings.Builder
	for i := range 150 {
		c := string(rune('a' + i%26))
		typed.WriteString(c)
		te.Text(c)
	}
	for range 200 {
		te.Undo()
		checkUndoInvariant(t, te)
	}
	want := typed.String()[:150-UndoStateCount]
	if got := te.Str.String(); got != want {
		t.Errorf("Expected the oldest %d runes to survive, got %q", len(want), got)
	}
}

func TestTextEditCharRingCompaction(t *testing.T) {
	te := newEdit(t, strings.Repeat("x", 600)+strings.Repeat("y", 600))
	te.Delete(0, 600)
	te.Delete(0, 500)
	checkUndoInvariant(t, te)

	// The first record had to be discarded to make room for the second.
	if te.undo.undoPoint != 1 || te.undo.records[0].charStorage != 0 {
		t.Fatalf("Expected one rebased record, got %d records, storage %d",
			te.undo.undoPoint, te.undo.records[0].charStorage)
	}
	te.Undo()
	te.Undo()
	if got := te.Str.String(); got != strings.Repeat("y", 600) {
		t.Errorf("Expected the 600 y runes back, got %d runes", te.Str.Len())
	}
}

func TestTextEditReplaceSelection(t *testing.T) {
	te := newEdit(t, "hello")
	te.Key(KeyLeft, true, testFont, 13)
	te.Key(KeyLeft, true, testFont, 13)
	if te.Selection() != "lo" {
		t.Fatalf("Expected selection %q, got %q", "lo", te.Selection())
	}
	te.Text("p")
	if got := te.Str.String(); got != "help" {
		t.Fatalf("Expected %q, got %q", "help", got)
	}
	te.Undo()
	if got := te.Str.String(); got != "hello" {
		t.Errorf("one undo should restore the selection text, got %q", got)
	}
}

func TestTextEditReplaceMode(t *testing.T) {
	te := newEdit(t, "abc")
	te.Cursor = 0
	te.Mode = TextEditModeReplace
	te.Text("xy")
	if got := te.Str.String(); got != "xyc" {
		t.Fatalf("Expected %q, got %q", "xyc", got)
	}
	te.Undo()
	te.Undo()
	if got := te.Str.String(); got != "abc" {
		t.Errorf("Expected %q, got %q", "abc", got)
	}
}

func TestTextEditViewMode(t *testing.T) {
	te := newEdit(t, "abc")
	te.Key(KeyTextResetMode, false, testFont, 13)
	te.Text("zzz")
	te.Key(KeyBackspace, false, testFont, 13)
	te.SelectAll()
	if te.Cut() {
		t.Error("cut must fail in view mode")
	}
	if got := te.Str.String(); got != "abc" {
		t.Errorf("view mode edited the text: %q", got)
	}
	te.Key(KeyTextInsertMode, false, testFont, 13)
	if te.Mode != TextEditModeInsert {
		t.Errorf("Expected insert mode, got %d", te.Mode)
	}
}

func TestTextEditPasteFailureRetractsRecord(t *testing.T) {
	te := &TextEdit{}
	te.InitFixed(make([]byte, 8))
	te.Text("abc")
	before := te.undo.undoPoint

	if te.Paste("far too long") {
		t.Fatal("paste should not fit")
	}
	if te.undo.undoPoint != before {
		t.Errorf("Expected %d undo records, got %d", before, te.undo.undoPoint)
	}
	te.Undo()
	if got := te.Str.String(); got != "ab" {
		t.Errorf("Expected undo to remove the last typed rune, got %q", got)
	}
}

func TestTextEditPreferredX(t *testing.T) {
	te := newEdit(t, "abcdef\nab\nabcdef")
	te.Cursor = 5
	steps := []struct {
		key  Key
		want int
	}{
		{KeyDown, 9},
		{KeyDown, 15},
		{KeyUp, 9},
		{KeyUp, 5},
		{KeyUp, 5},
	}
	for i, s := range steps {
		te.Key(s.key, false, testFont, 13)
		if te.Cursor != s.want {
			t.Errorf("step %d (%s): Expected cursor %d, got %d", i, s.key, s.want, te.Cursor)
		}
	}
}

func TestTextEditWordMotion(t *testing.T) {
	te := newEdit(t, "foo bar, baz")
	te.Key(KeyTextWordLeft, false, testFont, 13)
	if te.Cursor != 9 {
		t.Errorf("Expected cursor 9, got %d", te.Cursor)
	}
	te.Key(KeyTextWordLeft, false, testFont, 13)
	if te.Cursor != 4 {
		t.Errorf("Expected cursor 4, got %d", te.Cursor)
	}
	te.Cursor = 0
	te.Key(KeyTextWordRight, true, testFont, 13)
	if te.Cursor != 4 || te.Selection() != "foo " {
		t.Errorf("Expected selection %q, got %q (cursor %d)", "foo ", te.Selection(), te.Cursor)
	}
}

func TestTextEditLineNavigation(t *testing.T) {
	te := newEdit(t, "abc\ndef")
	te.Cursor = 5
	te.Key(KeyTextLineStart, false, testFont, 13)
	if te.Cursor != 4 {
		t.Errorf("Expected line start 4, got %d", te.Cursor)
	}
	te.Cursor = 1
	te.Key(KeyTextLineEnd, false, testFont, 13)
	if te.Cursor != 3 {
		t.Errorf("Expected line end 3, got %d", te.Cursor)
	}
}

func TestTextEditClick(t *testing.T) {
	te := newEdit(t, "abc\ndef")
	tests := []struct {
		x, y float32
		want int
	}{
		{10, 15, 5},
		{2, 15, 4},
		{100, 2, 3},
		{100, 100, 7},
		{3, -5, 0},
	}
	for _, tt := range tests {
		te.Click(tt.x, tt.y, testFont, 13)
		if te.Cursor != tt.want {
			t.Errorf("Click(%v, %v): Expected %d, got %d", tt.x, tt.y, tt.want, te.Cursor)
		}
	}

	te.Click(0, 2, testFont, 13)
	te.Drag(100, 15, testFont, 13)
	if got := te.Selection(); got != "abc\ndef" {
		t.Errorf("Expected drag to select everything, got %q", got)
	}
}

func TestTextEditFilter(t *testing.T) {
	te := newEdit(t, "")
	te.Filter = FilterDecimal
	te.Text("1a2-b")
	if got := te.Str.String(); got != "12-" {
		t.Errorf("Expected %q, got %q", "12-", got)
	}
}

func TestTextEditSingleLine(t *testing.T) {
	te := newEdit(t, "")
	te.SingleLine = true
	te.Text("a\nb")
	if got := te.Str.String(); got != "ab" {
		t.Errorf("Expected newline to be dropped, got %q", got)
	}
	te.Key(KeyUp, false, testFont, 13)
	if te.Cursor != 1 {
		t.Errorf("Expected up to act as left, got cursor %d", te.Cursor)
	}
}

func TestTextEditRandomHistory(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	te := newEdit(t, "")
	alphabet := []rune("abc xyzäö€日\n")

	for range 3000 {
		switch rng.IntN(6) {
		case 0, 1:
			n := rng.IntN(20) + 1
			var b strings.Builder
			for range n {
				b.WriteRune(alphabet[rng.IntN(len(alphabet))])
			}
			te.Text(b.String())
		case 2:
			if n := te.Str.Len(); n > 0 {
				pos := rng.IntN(n)
				te.Delete(pos, rng.IntN(n-pos)+1)
				te.Cursor = pos
			}
		case 3:
			te.Undo()
		case 4:
			te.Redo()
		case 5:
			te.SelectStart = rng.IntN(te.Str.Len() + 1)
			te.SelectEnd = rng.IntN(te.Str.Len() + 1)
			te.Paste("--")
		}
		checkUndoInvariant(t, te)
		if te.Str.Len() != len([]rune(te.Str.String())) {
			t.Fatalf("rune count %d out of sync with content", te.Str.Len())
		}
	}
}

func TestTextEditUndoRedoSymmetry(t *testing.T) {
	te := newEdit(t, "the quick brown fox")
	te.SelectStart, te.SelectEnd = 4, 9
	te.Paste("slow")
	after := te.Str.String()

	te.Undo()
	te.Undo()
	if got := te.Str.String(); got != "the quick brown fox" {
		t.Fatalf("Expected original text, got %q", got)
	}
	te.Redo()
	te.Redo()
	if got := te.Str.String(); got != after {
		t.Errorf("Expected %q after redo, got %q", after, got)
	}
}

func TestTextEditRedoAfterDiscard(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		want  string
	}{
		{
			name:  "oldest redo dropped",
			sizes: []int{500, 500},
			want:  strings.Repeat("a", 500),
		},
		{
			name:  "several redo records survive",
			sizes: []int{300, 300, 300, 400},
			want:  strings.Repeat("a", 300) + strings.Repeat("b", 300) + strings.Repeat("c", 300),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newEdit(t, "")
			for i, n := range tt.sizes {
				te.Paste(strings.Repeat(string(rune('a'+i)), n))
			}
			for range tt.sizes {
				te.Undo()
				checkUndoInvariant(t, te)
			}
			if got := te.Str.String(); got != "" {
				t.Fatalf("Expected an empty buffer after undoing everything, got %d runes", te.Str.Len())
			}
			for te.undo.canRedo() {
				te.Redo()
				checkUndoInvariant(t, te)
			}
			if got := te.Str.String(); got != tt.want {
				t.Errorf("Expected %d runes after redo, got %d runes starting %.10q", len(tt.want), len(got), got)
			}
		})
	}
}

// randomEdit applies one edit that creates exactly one undo record and
// reports whether it did.
func randomEdit(rng *rand.Rand, te *TextEdit, alphabet []rune) bool {
	word := func(n int) string {
		var b strings.Builder
		for range n {
			b.WriteRune(alphabet[rng.IntN(len(alphabet))])
		}
		return b.String()
	}
	n := te.Str.Len()
	te.SelectStart, te.SelectEnd = 0, 0
	switch rng.IntN(4) {
	case 0:
		te.Cursor = rng.IntN(n + 1)
		te.Text(word(1))
	case 1:
		te.Cursor = rng.IntN(n + 1)
		te.Paste(word(rng.IntN(150) + 50))
	case 2:
		if n == 0 {
			return false
		}
		pos := rng.IntN(n)
		te.Delete(pos, min(rng.IntN(6)+1, n-pos))
	case 3:
		if n == 0 {
			return false
		}
		te.SelectStart = rng.IntN(n)
		te.SelectEnd = min(te.SelectStart+rng.IntN(6)+1, n)
		te.Text(word(1))
	}
	return true
}

func TestTextEditHistoryRoundTrip(t *testing.T) {
	alphabet := []rune("abc xyzäö€日\n")
	for seed := range uint64(8) {
		rng := rand.New(rand.NewPCG(seed, 42))
		te := newEdit(t, "")
		snapshots := []string{""}
		for range 60 {
			if randomEdit(rng, te, alphabet) {
				snapshots = append(snapshots, te.Str.String())
			}
		}

		for i := len(snapshots) - 2; i >= 0; i-- {
			te.Undo()
			checkUndoInvariant(t, te)
			if got := te.Str.String(); got != snapshots[i] {
				t.Fatalf("seed %d: undo to step %d gave %q, want %q", seed, i, got, snapshots[i])
			}
		}
		if te.undo.canUndo() {
			t.Fatalf("seed %d: expected the history to be exhausted", seed)
		}

		// Redo storage may drop the newest edits, never the ones before them.
		redone := 0
		for te.undo.canRedo() {
			te.Redo()
			redone++
			checkUndoInvariant(t, te)
			if got := te.Str.String(); got != snapshots[redone] {
				t.Fatalf("seed %d: redo to step %d gave %q, want %q", seed, redone, got, snapshots[redone])
			}
		}
		if redone == 0 {
			t.Errorf("seed %d: expected at least one redo", seed)
		}
	}
}

func TestTextEditUndoKeepsInvalidBytes(t *testing.T) {
	te := newEdit(t, "a\xffb\xe6")
	te.Delete(0, 4)
	te.Undo()
	if got := te.Str.String(); got != "a\xffb\xe6" {
		t.Fatalf("Expected the raw bytes back, got %q", got)
	}
	te.Redo()
	if got := te.Str.String(); got != "" {
		t.Fatalf("Expected redo to delete again, got %q", got)
	}
	te.Undo()

	te.SelectStart, te.SelectEnd = 1, 2
	te.Text("€")
	te.Undo()
	if got := te.Str.String(); got != "a\xffb\xe6" {
		t.Errorf("Expected undoing a replace to restore the raw byte, got %q", got)
	}
	te.Redo()
	if got := te.Str.String(); got != "a€b\xe6" {
		t.Errorf("Expected redo to replace again, got %q", got)
	}
}
