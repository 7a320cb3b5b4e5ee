package textedit_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/textedit"
)

const sampleConfig = `
scale = 1.5

[theme]
text = "#ff0000"
cursor_width = 3

[[editor]]
name = "title"
x = 20
y = 20
width = 300
max_length = 64
placeholder = "Title"

[[editor]]
name = "body"
y = 60
width = 300
height = 200
multiline = true
text = "hello"
font_size = 16
`

func TestParseConfig(t *testing.T) {
	cfg, err := textedit.ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	want := []textedit.EditorConfig{
		{Name: "title", X: 20, Y: 20, Width: 300, MaxLength: 64, Placeholder: "Title"},
		{Name: "body", Y: 60, Width: 300, Height: 200, Multiline: true, Text: "hello", FontSize: 16},
	}
	if diff := cmp.Diff(want, cfg.Editors); diff != "" {
		t.Errorf("Editors mismatch (-want +got):\n%s", diff)
	}
	if cfg.Scale != 1.5 {
		t.Errorf("Scale = %v, want 1.5", cfg.Scale)
	}

	style, err := cfg.Theme.Style(textedit.DefaultStyle())
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if style.TextColor != textedit.RGBA(255, 0, 0, 255) {
		t.Errorf("TextColor = %08x", style.TextColor)
	}
	if style.CursorWidth != 3 {
		t.Errorf("CursorWidth = %v, want 3", style.CursorWidth)
	}
	if style.BgColor != textedit.DefaultStyle().BgColor {
		t.Error("unset theme colors should keep the base style")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown key", "[[editor]]\nwidth = 10\ncolour = 1\n", "colour"},
		{"zero scale", "scale = 0\n", "scale"},
		{"missing width", "[[editor]]\nname = \"a\"\n", "width"},
		{"duplicate name", "[[editor]]\nname = \"a\"\nwidth = 1\n[[editor]]\nname = \"a\"\nwidth = 1\n", "duplicate"},
		{"multiline without height", "[[editor]]\nwidth = 1\nmultiline = true\n", "height"},
		{"negative size", "[[editor]]\nwidth = 1\npadding = -2\n", "negative"},
		{"bad color", "[theme]\ncursor = \"yellow\"\n", "theme.cursor"},
		{"bad toml", "scale = \n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := textedit.ParseConfig([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseConfigUnknownKeyUnwraps(t *testing.T) {
	_, err := textedit.ParseConfig([]byte("scale = 1\nzoom = 2\n"))
	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		t.Fatalf("error %v does not unwrap to *toml.StrictMissingError", err)
	}
	if !strings.Contains(err.Error(), "zoom") {
		t.Errorf("error %q does not show the offending key", err)
	}
}

func TestThemeDerivesSelection(t *testing.T) {
	base := textedit.GTAStyle()
	style, err := textedit.ThemeConfig{Cursor: "#00ff00"}.Style(base)
	if err != nil {
		t.Fatal(err)
	}
	if style.SelectionColor == base.SelectionColor {
		t.Error("selection color was not derived")
	}
	if style.SelectionColor == style.CursorColor || style.SelectionColor == style.BgColor {
		t.Error("derived selection should sit between background and cursor")
	}
	if _, _, _, a := textedit.UnpackRGBA(style.SelectionColor); a != 255 {
		t.Errorf("derived selection alpha = %d", a)
	}

	explicit, err := textedit.ThemeConfig{Cursor: "#00ff00", Selection: "#0000ff"}.Style(base)
	if err != nil {
		t.Fatal(err)
	}
	if explicit.SelectionColor != textedit.RGBA(0, 0, 255, 255) {
		t.Errorf("explicit selection = %08x", explicit.SelectionColor)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editors.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := textedit.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Editors) != 2 {
		t.Errorf("len(Editors) = %d, want 2", len(cfg.Editors))
	}

	_, err = textedit.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadConfig(missing) = %v, want fs.ErrNotExist", err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := textedit.DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestEditorConfigOptions(t *testing.T) {
	cfg, err := textedit.ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	title := cfg.Editors[0]
	e := textedit.NewEditor(title.Bounds(), title.Options(textedit.WithMaxLength(5))...)
	if e.MaxLength() != 64 {
		t.Errorf("config max_length should win: MaxLength() = %d", e.MaxLength())
	}
	if e.Mode() != textedit.ModeSingleLine {
		t.Errorf("title Mode() = %v", e.Mode())
	}

	body := cfg.Editors[1]
	e = textedit.NewEditor(body.Bounds(), body.Options()...)
	if e.Mode() != textedit.ModeMultiLine || e.Text() != "hello" {
		t.Errorf("body: Mode()=%v Text()=%q", e.Mode(), e.Text())
	}
	if b := e.Bounds(); b != (textedit.Rect{Y: 60, W: 300, H: 200}) {
		t.Errorf("body Bounds() = %+v", b)
	}
}
