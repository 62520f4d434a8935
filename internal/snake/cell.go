package snake

import "fmt"

// Cell is a position on the board paired with the glyph used to draw it.
// Two cells are equal when they share a position, whatever their glyphs.
type Cell struct {
	X, Y  int
	Glyph rune
}

// NewCell creates a cell at (x, y) drawn with glyph.
func NewCell(x, y int, glyph rune) Cell {
	return Cell{X: x, Y: y, Glyph: glyph}
}

// Equal reports whether c and other occupy the same position.
func (c Cell) Equal(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// Offset returns a copy of c moved by (dx, dy), keeping its glyph.
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy, Glyph: c.Glyph}
}

// Draw writes the cell's glyph to the display.
func (c Cell) Draw(d Display) {
	d.Set(c.X, c.Y, c.Glyph)
}

// Erase blanks the cell's position on the display.
func (c Cell) Erase(d Display) {
	d.Set(c.X, c.Y, ' ')
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// pos is the glyph-free key used for set lookups.
type pos struct {
	x, y int
}

func (c Cell) pos() pos {
	return pos{x: c.X, y: c.Y}
}
