package nk

import "unicode/utf8"

// Undo history capacities.
const (
	UndoStateCount = 99
	UndoCharCount  = 999
)

// undoRecord describes one reversible edit: at where, insertLength runes
// stored at charStorage must be inserted and deleteLength runes removed to
// apply the record. charStorage is -1 when the record carries no runes.
type undoRecord struct {
	where        int
	insertLength int
	deleteLength int
	charStorage  int
}

// undoState keeps undo and redo history in shared fixed arrays. Undo
// records grow from the start of records, redo records from its end;
// likewise undo runes grow from the start of chars and redo runes from
// its end. Both stacks are compacted rather than wrapped, so discarding
// the oldest entry shifts the survivors and rebases their storage offsets.
type undoState struct {
	records       [UndoStateCount]undoRecord
	chars         [UndoCharCount]rune
	undoPoint     int
	redoPoint     int
	undoCharPoint int
	redoCharPoint int
	ready         bool // redo points are valid
}

func (u *undoState) reset() {
	u.undoPoint = 0
	u.undoCharPoint = 0
	u.flushRedo()
}

// flushRedo drops all redo history.
func (u *undoState) flushRedo() {
	u.redoPoint = UndoStateCount
	u.redoCharPoint = UndoCharCount
	u.ready = true
}

// discardUndo drops the oldest undo record.
func (u *undoState) discardUndo() {
	if u.undoPoint <= 0 {
		return
	}
	if first := u.records[0]; first.charStorage >= 0 {
		n := first.insertLength
		u.undoCharPoint -= n
		copy(u.chars[:u.undoCharPoint], u.chars[n:n+u.undoCharPoint])
		for i := 0; i < u.undoPoint; i++ {
			if u.records[i].charStorage >= 0 {
				u.records[i].charStorage -= n
			}
		}
	}
	u.undoPoint--
	copy(u.records[:u.undoPoint], u.records[1:1+u.undoPoint])
}

// discardRedo drops the oldest redo record, which lives at the very end.
func (u *undoState) discardRedo() {
	k := UndoStateCount - 1
	if u.redoPoint > k {
		return
	}
	if last := u.records[k]; last.charStorage >= 0 {
		n := last.insertLength
		u.redoCharPoint += n
		copy(u.chars[u.redoCharPoint:], u.chars[u.redoCharPoint-n:UndoCharCount-n])
		for i := u.redoPoint; i < k; i++ {
			if u.records[i].charStorage >= 0 {
				u.records[i].charStorage += n
			}
		}
	}
	copy(u.records[u.redoPoint+1:], u.records[u.redoPoint:k])
	u.redoPoint++
}

// createRecord reserves a record for an edit needing numChars runes of
// storage. It returns -1 when the history had to be dropped because the
// edit can never fit.
func (u *undoState) createRecord(numChars int) int {
	u.flushRedo()
	if u.undoPoint == UndoStateCount {
		u.discardUndo()
	}
	if numChars > UndoCharCount {
		u.undoPoint = 0
		u.undoCharPoint = 0
		return -1
	}
	for u.undoCharPoint+numChars > UndoCharCount {
		u.discardUndo()
	}
	i := u.undoPoint
	u.undoPoint++
	return i
}

// create records an edit at pos that inserted deleteLen runes and removed
// insertLen runes; applying the record reverses the edit. The returned
// slice must be filled with the removed runes.
func (u *undoState) create(pos, insertLen, deleteLen int) []rune {
	i := u.createRecord(insertLen)
	if i < 0 {
		return nil
	}
	r := &u.records[i]
	r.where = pos
	r.insertLength = insertLen
	r.deleteLength = deleteLen
	if insertLen == 0 {
		r.charStorage = -1
		return nil
	}
	r.charStorage = u.undoCharPoint
	u.undoCharPoint += insertLen
	return u.chars[r.charStorage : r.charStorage+insertLen]
}

// retractEmpty removes the newest undo record if it stores no runes. It is
// used when the edit the record was created for did not happen.
func (u *undoState) retractEmpty() {
	if u.undoPoint > 0 && u.records[u.undoPoint-1].charStorage < 0 {
		u.undoPoint--
	}
}

// amendTop changes the re-delete length of the newest undo record after
// the edit it describes only partly happened.
func (u *undoState) amendTop(deleteLen int) {
	if u.undoPoint > 0 {
		u.records[u.undoPoint-1].deleteLength = deleteLen
	}
}

func (u *undoState) canUndo() bool { return u.undoPoint > 0 }
func (u *undoState) canRedo() bool { return u.ready && u.redoPoint < UndoStateCount }

// Undo reverts the most recent edit and turns it into a redo record.
func (te *TextEdit) Undo() {
	u := &te.undo
	if !u.canUndo() {
		return
	}
	rec := u.records[u.undoPoint-1]
	redo := undoRecord{
		where:        rec.where,
		insertLength: rec.deleteLength,
		deleteLength: rec.insertLength,
		charStorage:  -1,
	}

	if rec.deleteLength > 0 {
		// The runes about to be deleted are needed to redo the edit.
		if u.undoCharPoint+rec.deleteLength >= UndoCharCount {
			redo.insertLength = 0
		} else {
			for u.undoCharPoint+rec.deleteLength > u.redoCharPoint {
				if u.redoPoint == UndoStateCount {
					return
				}
				u.discardRedo()
			}
			redo.charStorage = u.redoCharPoint - rec.deleteLength
			u.redoCharPoint -= rec.deleteLength
			te.copyRunes(u.chars[redo.charStorage:redo.charStorage+rec.deleteLength], rec.where)
		}
		te.Str.DeleteRunes(rec.where, rec.deleteLength)
	}
	// Discarding shifts the redo records, so the slot is only known now.
	u.records[u.redoPoint-1] = redo
	if rec.insertLength > 0 {
		te.insertStored(rec.where, u.chars[rec.charStorage:rec.charStorage+rec.insertLength])
		u.undoCharPoint -= rec.insertLength
	}
	te.Cursor = rec.where + rec.insertLength
	u.undoPoint--
	u.redoPoint--
}

// Redo reapplies the most recently undone edit.
func (te *TextEdit) Redo() {
	u := &te.undo
	if !u.canRedo() {
		return
	}
	rec := u.records[u.redoPoint]
	r := &u.records[u.undoPoint]
	r.deleteLength = rec.insertLength
	r.insertLength = rec.deleteLength
	r.where = rec.where
	r.charStorage = -1

	if rec.deleteLength > 0 {
		if u.undoCharPoint+r.insertLength > u.redoCharPoint {
			r.insertLength = 0
			r.deleteLength = 0
		} else {
			r.charStorage = u.undoCharPoint
			u.undoCharPoint += r.insertLength
			te.copyRunes(u.chars[r.charStorage:r.charStorage+r.insertLength], r.where)
		}
		te.Str.DeleteRunes(rec.where, rec.deleteLength)
	}
	if rec.insertLength > 0 {
		te.insertStored(rec.where, u.chars[rec.charStorage:rec.charStorage+rec.insertLength])
		u.redoCharPoint += rec.insertLength
	}
	te.Cursor = rec.where + rec.insertLength
	u.undoPoint++
	u.redoPoint++
}

// Invalid bytes are kept in undo storage as the lone surrogates
// rawByte+b, which valid UTF-8 never decodes to.
const rawByte = 0xDC00

// copyRunes fills dst with the runes starting at rune index where.
func (te *TextEdit) copyRunes(dst []rune, where int) {
	s := te.Str.Substring(where, len(dst))
	for i := 0; i < len(dst) && s != ""; i++ {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			r = rawByte + rune(s[0])
		}
		dst[i] = r
		s = s[size:]
	}
}

// insertStored inserts runes taken from undo storage before rune where.
func (te *TextEdit) insertStored(where int, runes []rune) bool {
	b := make([]byte, 0, len(runes))
	for _, r := range runes {
		if r >= rawByte+0x80 && r <= rawByte+0xFF {
			b = append(b, byte(r-rawByte))
			continue
		}
		b = utf8.AppendRune(b, r)
	}
	return te.Str.InsertString(where, string(b))
}

func (te *TextEdit) makeUndoInsert(where, length int) {
	te.undo.create(where, 0, length)
}

func (te *TextEdit) makeUndoDelete(where, length int) {
	if p := te.undo.create(where, length, 0); p != nil {
		te.copyRunes(p, where)
	}
}

func (te *TextEdit) makeUndoReplace(where, oldLength, newLength int) {
	if p := te.undo.create(where, oldLength, newLength); p != nil {
		te.copyRunes(p, where)
	}
}
