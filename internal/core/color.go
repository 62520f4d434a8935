package core

// Color is a terminal-independent foreground color for a glyph.
// Each front end maps it onto its own styling (lipgloss or tcell).
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorGray
)

// Palette assigns colors to the glyphs a game draws.
// Glyphs without an entry use ColorDefault.
type Palette map[rune]Color

// NewPalette returns the board palette: gray walls, a green snake and red food.
func NewPalette(wall, snake, food rune) Palette {
	return Palette{
		wall:  ColorGray,
		snake: ColorGreen,
		food:  ColorRed,
	}
}

// ColorOf returns the color for glyph r.
func (p Palette) ColorOf(r rune) Color {
	if c, ok := p[r]; ok {
		return c
	}
	return ColorDefault
}
