package nk

import (
	"testing"
	"unicode/utf8"
)

func TestStrInsertMultiByte(t *testing.T) {
	var s Str
	s.AppendString("héllo")
	if s.Len() != 5 || s.ByteLen() != 6 {
		t.Fatalf("Expected 5 runes in 6 bytes, got %d runes in %d bytes", s.Len(), s.ByteLen())
	}

	if !s.InsertString(2, "日本") {
		t.Fatal("insert failed")
	}
	if got := s.String(); got != "hé日本llo" {
		t.Errorf("Expected %q, got %q", "hé日本llo", got)
	}
	if s.Len() != 7 {
		t.Errorf("Expected 7 runes, got %d", s.Len())
	}

	r, off, size := s.RuneAt(3)
	if r != '本' || off != 6 || size != 3 {
		t.Errorf("RuneAt(3) = %q at %d size %d", r, off, size)
	}
}

func TestStrDeleteRunes(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		pos, n int
		want   string
	}{
		{"middle", "añb€c", 1, 3, "ac"},
		{"clamped", "añb", 1, 10, "a"},
		{"start", "€uro", 0, 1, "uro"},
		{"out of range", "abc", 3, 1, "abc"},
		{"negative", "abc", -1, 1, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStr(4)
			s.AppendString(tt.text)
			s.DeleteRunes(tt.pos, tt.n)
			if got := s.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if s.Len() != utf8.RuneCountInString(tt.want) {
				t.Errorf("rune count %d does not match content %q", s.Len(), tt.want)
			}
		})
	}
}

func TestStrInvalidBytes(t *testing.T) {
	var s Str
	s.AppendBytes([]byte{'a', 0xff, 'b'})
	if s.Len() != 3 {
		t.Fatalf("Expected 3 runes, got %d", s.Len())
	}
	r, off, size := s.RuneAt(1)
	if r != utf8.RuneError || off != 1 || size != 1 {
		t.Errorf("invalid byte decoded as %q at %d size %d", r, off, size)
	}
	if _, off, _ := s.RuneAt(3); off != -1 {
		t.Errorf("Expected -1 for out of range rune, got %d", off)
	}
}

func TestStrInsertBytesSplitRune(t *testing.T) {
	var s Str
	s.AppendString("é")
	if s.InsertBytes(1, []byte("x")) {
		t.Error("inserting inside an encoded rune should fail")
	}
	if s.String() != "é" {
		t.Errorf("content changed: %q", s.String())
	}
}

func TestStrFixedFull(t *testing.T) {
	s := NewFixedStr(make([]byte, 4))
	if !s.AppendString("ab") {
		t.Fatal("append should fit")
	}
	if s.AppendString("cde") {
		t.Error("append past capacity should fail")
	}
	if s.String() != "ab" || s.Len() != 2 {
		t.Errorf("failed append modified content: %q (%d)", s.String(), s.Len())
	}
}

func TestStrSubstring(t *testing.T) {
	var s Str
	s.AppendRunes([]rune("ÄÖÜ abc"))
	if got := s.Substring(1, 3); got != "ÖÜ " {
		t.Errorf("Expected %q, got %q", "ÖÜ ", got)
	}
}
