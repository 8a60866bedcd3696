package nk

import "unicode/utf8"

// Str is a UTF-8 text buffer with rune-indexed editing. The rune count is
// tracked separately so Len is O(1). Positions inside the text are located
// by decoding forward from the start.
//
// Invalid byte sequences decode as utf8.RuneError with a width of one byte.
// The zero value is an empty, growable string.
type Str struct {
	buf Buffer
	len int
}

// NewStr creates a growable string with room for capacity bytes.
func NewStr(capacity int) *Str {
	s := &Str{}
	s.buf.Init(nil, capacity)
	return s
}

// NewFixedStr creates a string over mem that never grows. Edits that do not
// fit fail.
func NewFixedStr(mem []byte) *Str {
	s := &Str{}
	s.buf.InitFixed(mem)
	return s
}

// Len returns the number of runes.
func (s *Str) Len() int { return s.len }

// ByteLen returns the number of bytes.
func (s *Str) ByteLen() int { return s.buf.Len() }

// Bytes returns the UTF-8 content. The slice is invalidated by the next edit.
func (s *Str) Bytes() []byte { return s.buf.Front() }

func (s *Str) String() string { return string(s.buf.Front()) }

// Clear empties the string without releasing memory.
func (s *Str) Clear() {
	s.buf.Clear()
	s.len = 0
}

// Free releases the backing memory.
func (s *Str) Free() {
	s.buf.Free()
	s.len = 0
}

// SetString replaces the content. It reports false if text does not fit.
func (s *Str) SetString(text string) bool {
	s.Clear()
	return s.AppendString(text)
}

// runeOffset returns the byte offset of rune pos. Positions past the end map
// to the byte length.
func (s *Str) runeOffset(pos int) int {
	b := s.buf.Front()
	off := 0
	for i := 0; i < pos && off < len(b); i++ {
		_, size := utf8.DecodeRune(b[off:])
		off += size
	}
	return off
}

// RuneAt returns the rune at pos together with its byte offset and encoded
// size. An out of range position yields (0, -1, 0).
func (s *Str) RuneAt(pos int) (r rune, off, size int) {
	if pos < 0 || pos >= s.len {
		return 0, -1, 0
	}
	off = s.runeOffset(pos)
	r, size = utf8.DecodeRune(s.buf.Front()[off:])
	return r, off, size
}

// AppendBytes appends raw UTF-8 bytes.
func (s *Str) AppendBytes(b []byte) bool {
	return s.InsertBytes(s.buf.Len(), b)
}

// AppendString appends text.
func (s *Str) AppendString(text string) bool {
	return s.insertAt(s.buf.Len(), text)
}

// AppendRunes appends runes encoded as UTF-8.
func (s *Str) AppendRunes(runes []rune) bool {
	return s.insertAt(s.buf.Len(), string(runes))
}

// InsertBytes inserts b at byte offset pos. Offsets that are out of range
// or split an encoded rune are rejected.
func (s *Str) InsertBytes(pos int, b []byte) bool {
	return s.insertAt(pos, string(b))
}

// InsertString inserts text before rune pos.
func (s *Str) InsertString(pos int, text string) bool {
	if pos < 0 || pos > s.len {
		return false
	}
	return s.insertAt(s.runeOffset(pos), text)
}

// InsertRunes inserts runes before rune pos.
func (s *Str) InsertRunes(pos int, runes []rune) bool {
	return s.InsertString(pos, string(runes))
}

func (s *Str) insertAt(pos int, text string) bool {
	old := s.buf.Len()
	if pos < 0 || pos > old {
		return false
	}
	if pos < old && !utf8.RuneStart(s.buf.Front()[pos]) {
		return false
	}
	if text == "" {
		return true
	}
	if _, ok := s.buf.Alloc(BufferFront, len(text), 1); !ok {
		return false
	}
	mem := s.buf.Memory()
	copy(mem[pos+len(text):], mem[pos:old])
	copy(mem[pos:], text)
	if utf8.ValidString(text) {
		s.len += utf8.RuneCountInString(text)
	} else {
		// Broken sequences may merge with their neighbours.
		s.len = utf8.RuneCount(s.buf.Front())
	}
	return true
}

// DeleteBytes removes n bytes starting at byte offset pos. The range is
// clamped to the content and the rune count is recomputed.
func (s *Str) DeleteBytes(pos, n int) {
	size := s.buf.Len()
	if pos < 0 || n <= 0 || pos >= size {
		return
	}
	end := min(pos+n, size)
	mem := s.buf.Memory()
	copy(mem[pos:], mem[end:size])
	s.buf.truncate(size - (end - pos))
	s.len = utf8.RuneCount(s.buf.Front())
}

// DeleteRunes removes n runes starting at rune pos.
func (s *Str) DeleteRunes(pos, n int) {
	if pos < 0 || n <= 0 || pos >= s.len {
		return
	}
	begin := s.runeOffset(pos)
	end := s.runeOffset(pos + n)
	s.DeleteBytes(begin, end-begin)
}

// Substring returns the runes [pos, pos+n) as a string.
func (s *Str) Substring(pos, n int) string {
	if pos < 0 || n <= 0 || pos >= s.len {
		return ""
	}
	begin := s.runeOffset(pos)
	end := s.runeOffset(pos + n)
	return string(s.buf.Front()[begin:end])
}
