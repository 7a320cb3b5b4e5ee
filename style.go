package textedit

// Style defines how editors are drawn.
// Colors are packed RGBA (see RGBA).
type Style struct {
	TextColor        uint32
	PlaceholderColor uint32

	BgColor       uint32 // Background while inactive
	ActiveBgColor uint32 // Background while focused
	BorderColor   uint32
	ActiveBorder  uint32 // Border while focused (0 = use BorderColor)

	CursorColor    uint32
	SelectionColor uint32

	CursorWidth float32
	BorderWidth float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:        ColorWhite,
		PlaceholderColor: ColorGray,

		BgColor:       RGBA(30, 30, 30, 255),
		ActiveBgColor: RGBA(40, 40, 50, 255),
		BorderColor:   RGBA(100, 100, 100, 255),

		CursorColor:    ColorWhite,
		SelectionColor: RGBA(50, 100, 150, 255),

		CursorWidth: 1,
		BorderWidth: 1,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark inputs with cyan borders and a yellow caret.
func GTAStyle() Style {
	return Style{
		TextColor:        ColorWhite,
		PlaceholderColor: RGBA(128, 128, 128, 255),

		BgColor:       RGBA(20, 20, 20, 255),
		ActiveBgColor: RGBA(30, 40, 50, 255),
		BorderColor:   RGBA(0, 100, 150, 255),
		ActiveBorder:  RGBA(0, 150, 200, 255),

		CursorColor:    RGBA(255, 200, 0, 255), // GTA yellow
		SelectionColor: RGBA(0, 120, 180, 255),

		CursorWidth: 2,
		BorderWidth: 1,
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		TextColor:        RGBA(20, 20, 20, 255),
		PlaceholderColor: RGBA(150, 150, 150, 255),

		BgColor:       ColorWhite,
		ActiveBgColor: ColorWhite,
		BorderColor:   RGBA(150, 150, 150, 255),
		ActiveBorder:  RGBA(0, 120, 215, 255),

		CursorColor:    RGBA(20, 20, 20, 255),
		SelectionColor: RGBA(160, 200, 240, 255),

		CursorWidth: 1,
		BorderWidth: 1,
	}
}

// border returns the border color for the given focus state.
func (s Style) border(active bool) uint32 {
	if active && s.ActiveBorder != 0 {
		return s.ActiveBorder
	}
	return s.BorderColor
}

// background returns the background color for the given focus state.
func (s Style) background(active bool) uint32 {
	if active {
		return s.ActiveBgColor
	}
	return s.BgColor
}
