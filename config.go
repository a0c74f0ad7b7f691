package microgui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownColorRole is returned when a theme names a role that does not exist.
var ErrUnknownColorRole = errors.New("unknown color role")

// Theme is the YAML form of a Style. Every field is optional; unset
// fields keep the value of the base style.
//
//	colors:
//	  window_bg: "#323232"
//	  title_text: "#ffc800ff"
//	size: {x: 80, y: 12}
//	padding: 6
//	title_height: 28
type Theme struct {
	Colors        map[string]string `yaml:"colors,omitempty"`
	Size          *themeVec2        `yaml:"size,omitempty"`
	Padding       *int              `yaml:"padding,omitempty"`
	Spacing       *int              `yaml:"spacing,omitempty"`
	Indent        *int              `yaml:"indent,omitempty"`
	TitleHeight   *int              `yaml:"title_height,omitempty"`
	ScrollbarSize *int              `yaml:"scrollbar_size,omitempty"`
	ThumbSize     *int              `yaml:"thumb_size,omitempty"`
}

type themeVec2 struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LoadStyle reads a YAML theme from r and applies it over base.
func LoadStyle(r io.Reader, base Style) (Style, error) {
	var theme Theme
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&theme); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("failed to parse theme: %w", err)
	}
	return theme.Apply(base)
}

// LoadStyleFile reads a YAML theme file and applies it over base.
// A missing file is an error.
func LoadStyleFile(path string, base Style) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("failed to read theme: %w", err)
	}
	defer f.Close()

	s, err := LoadStyle(f, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Apply returns base with the theme's overrides applied.
func (t *Theme) Apply(base Style) (Style, error) {
	s := base
	for name, value := range t.Colors {
		role, ok := ParseColorRole(name)
		if !ok {
			return base, fmt.Errorf("%w: %q", ErrUnknownColorRole, name)
		}
		c, err := ParseHexColor(value)
		if err != nil {
			return base, fmt.Errorf("color %s: %w", name, err)
		}
		s.Colors[role] = c
	}

	if t.Size != nil {
		s.Size = Vec2{X: t.Size.X, Y: t.Size.Y}
	}
	setInt(&s.Padding, t.Padding)
	setInt(&s.Spacing, t.Spacing)
	setInt(&s.Indent, t.Indent)
	setInt(&s.TitleHeight, t.TitleHeight)
	setInt(&s.ScrollbarSize, t.ScrollbarSize)
	setInt(&s.ThumbSize, t.ThumbSize)
	return s, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into a packed color.
// Alpha defaults to 255.
func ParseHexColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
