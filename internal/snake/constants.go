package snake

import "time"

// Board and pacing constants. The board is sized so that a standard 80x24
// terminal fits it together with one header and one help line.
const (
	BoardWidth    = 60
	BoardHeight   = 22
	TickInterval  = 200 * time.Millisecond
	InitialLength = 3
	FoodMargin    = 2 // Food keeps at least this many cells away from the frame edge
)

// Default glyphs, used when the configuration does not override them.
const (
	DefaultWallGlyph  = '#'
	DefaultSnakeGlyph = '*'
	DefaultFoodGlyph  = '@'
)
