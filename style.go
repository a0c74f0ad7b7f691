package microgui

// ColorRole indexes Style.Colors by what the color is used for.
// Control roles come in triples: role, role+1 when hovered, role+2 when
// focused.
type ColorRole int

const (
	ColorText ColorRole = iota
	ColorBorder
	ColorWindowBG
	ColorTitleBG
	ColorTitleText
	ColorPanelBG
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	ColorCount
)

var colorRoleNames = [ColorCount]string{
	ColorText:        "text",
	ColorBorder:      "border",
	ColorWindowBG:    "window_bg",
	ColorTitleBG:     "title_bg",
	ColorTitleText:   "title_text",
	ColorPanelBG:     "panel_bg",
	ColorButton:      "button",
	ColorButtonHover: "button_hover",
	ColorButtonFocus: "button_focus",
	ColorBase:        "base",
	ColorBaseHover:   "base_hover",
	ColorBaseFocus:   "base_focus",
	ColorScrollBase:  "scroll_base",
	ColorScrollThumb: "scroll_thumb",
}

// String returns the snake_case name used in theme files.
func (r ColorRole) String() string {
	if r < 0 || r >= ColorCount {
		return "unknown"
	}
	return colorRoleNames[r]
}

// ParseColorRole maps a theme file name back to its role.
func ParseColorRole(name string) (ColorRole, bool) {
	for i, n := range colorRoleNames {
		if n == name {
			return ColorRole(i), true
		}
	}
	return 0, false
}

// Style defines the visual appearance of windows and controls.
// It is read-only while a frame is in progress.
type Style struct {
	Colors [ColorCount]uint32

	// Sizing
	Size          Vec2 // Default control content size, padding excluded
	Padding       int
	Spacing       int // Gap between cells of a row and between rows
	Indent        int
	TitleHeight   int // Also the size of the close button and resize handle
	ScrollbarSize int
	ThumbSize     int // Minimum scrollbar thumb length
}

// Color returns the color for a role.
func (s Style) Color(role ColorRole) uint32 {
	return s.Colors[role]
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Colors: [ColorCount]uint32{
			ColorText:        RGBA(230, 230, 230, 255),
			ColorBorder:      RGBA(25, 25, 25, 255),
			ColorWindowBG:    RGBA(50, 50, 50, 255),
			ColorTitleBG:     RGBA(25, 25, 25, 255),
			ColorTitleText:   RGBA(240, 240, 240, 255),
			ColorPanelBG:     RGBA(0, 0, 0, 0),
			ColorButton:      RGBA(75, 75, 75, 255),
			ColorButtonHover: RGBA(95, 95, 95, 255),
			ColorButtonFocus: RGBA(115, 115, 115, 255),
			ColorBase:        RGBA(30, 30, 30, 255),
			ColorBaseHover:   RGBA(35, 35, 35, 255),
			ColorBaseFocus:   RGBA(40, 40, 40, 255),
			ColorScrollBase:  RGBA(43, 43, 43, 255),
			ColorScrollThumb: RGBA(30, 30, 30, 255),
		},

		Size:          Vec2{X: 68, Y: 10},
		Padding:       5,
		Spacing:       4,
		Indent:        24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	s := DefaultStyle()
	s.Colors[ColorText] = ColorWhite
	s.Colors[ColorBorder] = RGBA(100, 100, 100, 255)
	s.Colors[ColorWindowBG] = RGBA(0, 0, 0, 220)
	// Cyan tinted title bar with yellow text, as in the game menus.
	s.Colors[ColorTitleBG] = RGBA(0, 60, 90, 255)
	s.Colors[ColorTitleText] = RGBA(255, 200, 0, 255)
	s.Colors[ColorButton] = RGBA(40, 40, 40, 255)
	s.Colors[ColorButtonHover] = RGBA(60, 80, 100, 255)
	s.Colors[ColorButtonFocus] = RGBA(0, 150, 200, 255)
	s.Colors[ColorBase] = RGBA(20, 20, 20, 255)
	s.Colors[ColorBaseHover] = RGBA(30, 40, 50, 255)
	s.Colors[ColorBaseFocus] = RGBA(0, 80, 120, 255)
	s.Colors[ColorScrollBase] = RGBA(20, 20, 20, 255)
	s.Colors[ColorScrollThumb] = RGBA(0, 100, 150, 255)

	// Slightly larger for GTA feel
	s.Padding = 6
	s.Spacing = 6
	s.TitleHeight = 26
	s.ScrollbarSize = 14
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.Colors[ColorText] = RGBA(20, 20, 20, 255)
	s.Colors[ColorBorder] = RGBA(200, 200, 200, 255)
	s.Colors[ColorWindowBG] = RGBA(245, 245, 245, 250)
	s.Colors[ColorTitleBG] = RGBA(220, 220, 225, 255)
	s.Colors[ColorTitleText] = RGBA(40, 40, 40, 255)
	s.Colors[ColorButton] = RGBA(220, 220, 220, 255)
	s.Colors[ColorButtonHover] = RGBA(200, 200, 200, 255)
	s.Colors[ColorButtonFocus] = RGBA(180, 180, 180, 255)
	s.Colors[ColorBase] = ColorWhite
	s.Colors[ColorBaseHover] = RGBA(240, 240, 240, 255)
	s.Colors[ColorBaseFocus] = RGBA(230, 230, 235, 255)
	s.Colors[ColorScrollBase] = RGBA(240, 240, 240, 255)
	s.Colors[ColorScrollThumb] = RGBA(180, 180, 180, 255)
	return s
}
