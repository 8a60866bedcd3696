package nk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is a palette plus optional metric overrides loaded from YAML:
//
//	colors:
//	  text: "#AFAFAF"
//	  window: "#2D2D2DF0"
//	rounding: 4
//	spacing: [4, 4]
//	padding: [6, 6]
//	scrollbar_size: [10, 10]
type Theme struct {
	Colors        ColorTable
	Rounding      *float32
	Spacing       *Vec2
	Padding       *Vec2
	ScrollbarSize *Vec2
}

type themeFile struct {
	Colors        map[string]string `yaml:"colors"`
	Rounding      *float32          `yaml:"rounding"`
	Spacing       []float32         `yaml:"spacing"`
	Padding       []float32         `yaml:"padding"`
	ScrollbarSize []float32         `yaml:"scrollbar_size"`
}

// ParseTheme decodes a YAML theme. Colors not named keep their default.
func ParseTheme(data []byte) (*Theme, error) {
	var f themeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}

	t := &Theme{Colors: DefaultColorTable(), Rounding: f.Rounding}
	for name, hex := range f.Colors {
		slot, ok := colorSlot(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidTheme, name)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: color %q: %w", ErrInvalidTheme, name, err)
		}
		t.Colors[slot] = c
	}

	var err error
	if t.Spacing, err = themeVec("spacing", f.Spacing); err != nil {
		return nil, err
	}
	if t.Padding, err = themeVec("padding", f.Padding); err != nil {
		return nil, err
	}
	if t.ScrollbarSize, err = themeVec("scrollbar_size", f.ScrollbarSize); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTheme reads and parses a YAML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nk: theme: %w", err)
	}
	return ParseTheme(data)
}

// Style derives a complete style from the theme.
func (t *Theme) Style() Style {
	s := StyleFromTable(t.Colors)
	if t.Rounding != nil {
		s.Window.Rounding = *t.Rounding
		s.Button.Rounding = *t.Rounding
		s.Edit.Rounding = *t.Rounding
	}
	if t.Spacing != nil {
		s.Window.Spacing = *t.Spacing
	}
	if t.Padding != nil {
		p := *t.Padding
		s.Window.Padding = p
		s.Window.GroupPadding = p
		s.Window.PopupPadding = p
		s.Window.ComboPadding = p
		s.Window.ContextualPadding = p
		s.Window.MenuPadding = p
		s.Window.TooltipPadding = p
	}
	if t.ScrollbarSize != nil {
		s.Window.ScrollbarSize = *t.ScrollbarSize
		s.Edit.ScrollbarSize = *t.ScrollbarSize
	}
	return s
}

func colorSlot(name string) (ColorName, bool) {
	for i, n := range colorNames {
		if n == name {
			return ColorName(i), true
		}
	}
	return 0, false
}

func themeVec(key string, v []float32) (*Vec2, error) {
	switch len(v) {
	case 0:
		return nil, nil
	case 2:
		return &Vec2{X: v[0], Y: v[1]}, nil
	}
	return nil, fmt.Errorf("%w: %s needs two values, got %d", ErrInvalidTheme, key, len(v))
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA.
func ParseHexColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
