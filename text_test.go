package nk

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float32
		mode     TextWrapMode
		want     []string
	}{
		{
			name:     "words",
			text:     "the quick brown fox",
			maxWidth: 70,
			mode:     WrapModeWord,
			want:     []string{"the quick", "brown fox"},
		},
		{
			name:     "runes",
			text:     "abcdefghij",
			maxWidth: 28,
			mode:     WrapModeChar,
			want:     []string{"abcd", "efgh", "ij"},
		},
		{
			name:     "explicit newlines",
			text:     "a\n\nb",
			maxWidth: 70,
			mode:     WrapModeWord,
			want:     []string{"a", "", "b"},
		},
		{
			name:     "long word keeps its own line",
			text:     "a supercalifragilistic b",
			maxWidth: 35,
			mode:     WrapModeWord,
			want:     []string{"a", "supercalifragilistic", "b"},
		},
		{
			name:     "wide runes take two cells",
			text:     "go 日本語",
			maxWidth: 42,
			mode:     WrapModeAuto,
			want:     []string{"go", "日本語"},
		},
		{
			name:     "no width",
			text:     "unchanged text",
			maxWidth: 0,
			mode:     WrapModeWord,
			want:     []string{"unchanged text"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(testFont, tt.text, tt.maxWidth, tt.mode)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WrapText mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		text     string
		maxWidth float32
		want     string
	}{
		{text: "hi", maxWidth: 49, want: "hi"},
		{text: "hello world", maxWidth: 49, want: "hell..."},
		{text: "hello world", maxWidth: 14, want: ""},
	}
	for _, tt := range tests {
		if got := TruncateText(testFont, tt.text, tt.maxWidth, "..."); got != tt.want {
			t.Errorf("TruncateText(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
		}
	}
}

func TestMeasureWrappedText(t *testing.T) {
	got := MeasureWrappedText(testFont, "the quick brown fox", 70, WrapModeWord)
	if want := (Vec2{X: 63, Y: 26}); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTextWrapStopsAtSlotBottom(t *testing.T) {
	ctx := newTestContext(t)
	var lines int
	widgetFrame(ctx, nil, func() {
		ctx.TextWrap(strings.Repeat("word ", 30))
		lines = len(texts(ctx))
	})
	// a 30px slot holds two 13px lines
	if lines != 2 {
		t.Errorf("Expected 2 drawn lines, got %d", lines)
	}
}
