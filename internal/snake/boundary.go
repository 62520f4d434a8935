package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Boundary is the wall frame around the play area. It is built once and never
// changes afterwards.
type Boundary struct {
	rect  core.Rect
	cells []Cell
	set   map[pos]struct{}
}

// NewBoundary builds the perimeter of the width x height rectangle anchored at
// the origin. It panics if either dimension is smaller than 1.
func NewBoundary(width, height int, glyph rune) *Boundary {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("snake: boundary must be at least 1x1, got %dx%d", width, height))
	}

	b := &Boundary{
		rect: core.NewRect(0, 0, width, height),
		set:  make(map[pos]struct{}, 2*(width+height)),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if b.rect.OnEdge(x, y) {
				b.add(NewCell(x, y, glyph))
			}
		}
	}

	return b
}

func (b *Boundary) add(c Cell) {
	b.set[c.pos()] = struct{}{}
	b.cells = append(b.cells, c)
}

// IsHit reports whether c lies on the wall.
func (b *Boundary) IsHit(c Cell) bool {
	_, ok := b.set[c.pos()]
	return ok
}

// Draw renders every wall cell.
func (b *Boundary) Draw(d Display) {
	for _, c := range b.cells {
		c.Draw(d)
	}
}

// Rect returns the area enclosed by the boundary, walls included.
func (b *Boundary) Rect() core.Rect {
	return b.rect
}

// Len returns the number of wall cells.
func (b *Boundary) Len() int {
	return len(b.cells)
}
