package nk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleTheme = `
colors:
  text: "#FF0000"
  window: "#10203040"
rounding: 3
spacing: [6, 7]
padding: [2, 2]
`

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if got := theme.Colors[ColorText]; got != RGB(255, 0, 0) {
		t.Errorf("Expected red text, got %#08x", uint32(got))
	}
	if got := theme.Colors[ColorWindow]; got != RGBA(0x10, 0x20, 0x30, 0x40) {
		t.Errorf("Expected a translucent window color, got %#08x", uint32(got))
	}
	if got, want := theme.Colors[ColorBorder], DefaultColorTable()[ColorBorder]; got != want {
		t.Errorf("Expected unnamed colors to keep their default")
	}
	if theme.ScrollbarSize != nil {
		t.Errorf("Expected no scrollbar override")
	}

	s := theme.Style()
	if s.Text.Color != RGB(255, 0, 0) {
		t.Errorf("Expected the style text color to follow the theme")
	}
	if s.Window.Spacing != (Vec2{X: 6, Y: 7}) || s.Window.GroupPadding != (Vec2{X: 2, Y: 2}) {
		t.Errorf("Expected metric overrides, got spacing %v group padding %v", s.Window.Spacing, s.Window.GroupPadding)
	}
	if s.Button.Rounding != 3 {
		t.Errorf("Expected button rounding 3, got %v", s.Button.Rounding)
	}
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown color", data: "colors:\n  sky: \"#000000\"\n"},
		{name: "malformed color", data: "colors:\n  text: \"red\"\n"},
		{name: "short vector", data: "spacing: [1]\n"},
		{name: "unknown field", data: "margins: 4\n"},
		{name: "not yaml", data: "colors: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTheme([]byte(tt.data))
			if !errors.Is(err, ErrInvalidTheme) {
				t.Errorf("Expected ErrInvalidTheme, got %v", err)
			}
		})
	}
}

func TestParseThemeEmpty(t *testing.T) {
	theme, err := ParseTheme(nil)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if theme.Colors != DefaultColorTable() {
		t.Errorf("Expected the default palette for an empty theme")
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(sampleTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}

	ctx := newTestContext(t, WithTheme(theme))
	if got := ctx.Style().Window.Spacing; got != (Vec2{X: 6, Y: 7}) {
		t.Errorf("Expected WithTheme to apply spacing, got %v", got)
	}
	if got := ctx.Style().Font.Height(); got != testFont.LineHeight {
		t.Errorf("Expected WithTheme to keep the font, got height %v", got)
	}

	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#AFAFAF", want: RGB(0xAF, 0xAF, 0xAF)},
		{in: "#01020304", want: RGBA(1, 2, 3, 4)},
		{in: "AFAFAF", wantErr: true},
		{in: "#AFA", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %#08x, want %#08x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}
