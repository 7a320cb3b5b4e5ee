package textedit

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config describes a set of editors and their theme, usually loaded from TOML.
//
//	scale = 1.0
//
//	[theme]
//	text = "#e6e6e6"
//	cursor = "#f0c040"
//
//	[[editor]]
//	name = "title"
//	width = 300
//	max_length = 64
type Config struct {
	Scale   float32        `toml:"scale"`
	Theme   ThemeConfig    `toml:"theme"`
	Editors []EditorConfig `toml:"editor"`
}

// EditorConfig describes one editor.
type EditorConfig struct {
	Name        string  `toml:"name"`
	X           float32 `toml:"x"`
	Y           float32 `toml:"y"`
	Width       float32 `toml:"width"`
	Height      float32 `toml:"height"`
	Multiline   bool    `toml:"multiline"`
	MaxLength   int     `toml:"max_length"`
	Padding     float32 `toml:"padding"`
	Placeholder string  `toml:"placeholder"`
	Text        string  `toml:"text"`
	Font        string  `toml:"font"`
	FontSize    float32 `toml:"font_size"`
}

// ThemeConfig holds hex colors ("#rrggbb"). Empty entries keep the base
// style's color, except Selection, which is derived from Cursor and
// Background when empty.
type ThemeConfig struct {
	Text             string  `toml:"text"`
	Placeholder      string  `toml:"placeholder"`
	Background       string  `toml:"background"`
	ActiveBackground string  `toml:"active_background"`
	Border           string  `toml:"border"`
	ActiveBorder     string  `toml:"active_border"`
	Cursor           string  `toml:"cursor"`
	Selection        string  `toml:"selection"`
	CursorWidth      float32 `toml:"cursor_width"`
	BorderWidth      float32 `toml:"border_width"`
}

// selectionBlend is how far the derived selection color moves from the
// background toward the cursor color.
const selectionBlend = 0.35

// DefaultConfig returns a config with one single-line and one multi-line
// editor.
func DefaultConfig() Config {
	return Config{
		Scale: 1,
		Editors: []EditorConfig{
			{Name: "title", X: 20, Y: 20, Width: 300, MaxLength: 64, Placeholder: "Title"},
			{Name: "body", X: 20, Y: 60, Width: 300, Height: 200, Multiline: true, Placeholder: "Body"},
		},
	}
}

// LoadConfig reads and validates a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a TOML document. Unknown keys are errors.
func ParseConfig(data []byte) (Config, error) {
	cfg := Config{Scale: 1}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("parse config: %w\n%s", err, strict.String())
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and colors.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %g", c.Scale)
	}
	names := make(map[string]bool, len(c.Editors))
	for i, e := range c.Editors {
		if e.Name != "" {
			if names[e.Name] {
				return fmt.Errorf("config: editor %d: duplicate name %q", i, e.Name)
			}
			names[e.Name] = true
		}
		if e.Width <= 0 {
			return fmt.Errorf("config: editor %d (%s): width must be positive", i, e.Name)
		}
		if e.Height < 0 || e.MaxLength < 0 || e.Padding < 0 || e.FontSize < 0 {
			return fmt.Errorf("config: editor %d (%s): negative size", i, e.Name)
		}
		if e.Multiline && e.Height == 0 {
			return fmt.Errorf("config: editor %d (%s): multiline editor needs a height", i, e.Name)
		}
	}
	if _, err := c.Theme.Style(DefaultStyle()); err != nil {
		return err
	}
	return nil
}

// Options converts the editor config into editor options. Options passed in
// extra are applied first, so the config wins on conflicts.
func (e EditorConfig) Options(extra ...EditorOption) []EditorOption {
	opts := append([]EditorOption(nil), extra...)
	if e.MaxLength > 0 {
		opts = append(opts, WithMaxLength(e.MaxLength))
	}
	if e.Multiline {
		opts = append(opts, WithMultiline())
	}
	if e.Padding > 0 {
		opts = append(opts, WithPadding(e.Padding))
	}
	if e.Placeholder != "" {
		opts = append(opts, WithPlaceholder(e.Placeholder))
	}
	if e.Text != "" {
		opts = append(opts, WithText(e.Text))
	}
	if e.Font != "" || e.FontSize > 0 {
		opts = append(opts, WithFont(FontDescriptor{Name: e.Font, Size: e.FontSize}))
	}
	return opts
}

// Bounds returns the editor rectangle.
func (e EditorConfig) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Style applies the theme on top of base.
func (t ThemeConfig) Style(base Style) (Style, error) {
	s := base
	set := []struct {
		key string
		hex string
		dst *uint32
	}{
		{"text", t.Text, &s.TextColor},
		{"placeholder", t.Placeholder, &s.PlaceholderColor},
		{"background", t.Background, &s.BgColor},
		{"active_background", t.ActiveBackground, &s.ActiveBgColor},
		{"border", t.Border, &s.BorderColor},
		{"active_border", t.ActiveBorder, &s.ActiveBorder},
		{"cursor", t.Cursor, &s.CursorColor},
		{"selection", t.Selection, &s.SelectionColor},
	}
	for _, c := range set {
		if c.hex == "" {
			continue
		}
		col, err := colorful.Hex(c.hex)
		if err != nil {
			return Style{}, fmt.Errorf("config: theme.%s: %w", c.key, err)
		}
		*c.dst = packColor(col)
	}

	if t.Selection == "" && (t.Cursor != "" || t.Background != "") {
		s.SelectionColor = packColor(blendPacked(s.BgColor, s.CursorColor, selectionBlend))
	}
	if t.CursorWidth > 0 {
		s.CursorWidth = t.CursorWidth
	}
	if t.BorderWidth > 0 {
		s.BorderWidth = t.BorderWidth
	}
	return s, nil
}

func packColor(c colorful.Color) uint32 {
	r, g, b := c.Clamped().RGB255()
	return RGBA(r, g, b, 255)
}

func unpackColor(c uint32) colorful.Color {
	r, g, b, _ := UnpackRGBA(c)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// blendPacked mixes two packed colors in CIE-L*a*b* space.
func blendPacked(from, to uint32, t float64) colorful.Color {
	return unpackColor(from).BlendLab(unpackColor(to), t)
}
