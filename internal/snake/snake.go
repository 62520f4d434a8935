package snake

import (
	"fmt"
	"sync"
)

// Snake is the player's body: an ordered list of cells from tail (index 0) to
// head (last index), plus the current heading.
//
// The heading and the rotation latch can be touched by an input goroutine while
// the tick goroutine advances the body, so both live behind mu. The body itself
// is only mutated by the tick side.
type Snake struct {
	body    []Cell
	glyph   rune
	display Display

	mu      sync.Mutex
	heading Direction
	rotated bool // A heading change was accepted since the last step
}

// NewSnake creates a horizontal snake of the given length whose head sits just
// left of (x, y), heading right. Every segment is drawn immediately.
// It panics if length is not positive or display is nil.
func NewSnake(x, y, length int, glyph rune, display Display) *Snake {
	if length < 1 {
		panic(fmt.Sprintf("snake: length must be positive, got %d", length))
	}
	if display == nil {
		panic("snake: nil display")
	}

	s := &Snake{
		body:    make([]Cell, 0, length),
		glyph:   glyph,
		display: display,
		heading: DirRight,
	}
	for i := x - length; i < x; i++ {
		c := NewCell(i, y, glyph)
		s.body = append(s.body, c)
		c.Draw(display)
	}
	return s
}

// Head returns the head segment.
func (s *Snake) Head() Cell {
	if len(s.body) == 0 {
		panic("snake: head of empty snake")
	}
	return s.body[len(s.body)-1]
}

// Tail returns the oldest segment.
func (s *Snake) Tail() Cell {
	if len(s.body) == 0 {
		panic("snake: tail of empty snake")
	}
	return s.body[0]
}

// NextPoint returns where the head would be after one step along the current heading.
func (s *Snake) NextPoint() Cell {
	dx, dy := s.Heading().Delta()
	return s.Head().Offset(dx, dy)
}

// Move advances the snake one cell: the new head is appended, the tail dropped,
// and the display updated for both ends. The rotation latch is released.
func (s *Snake) Move() {
	head := s.NextPoint()
	tail := s.Tail()

	s.body = append(s.body[1:], head)

	tail.Erase(s.display)
	head.Draw(s.display)

	s.release()
}

// Eat grows the snake onto food if food is exactly where the head is about to go.
// It returns false, and changes nothing, otherwise.
func (s *Snake) Eat(food Cell) bool {
	head := s.NextPoint()
	if !head.Equal(food) {
		return false
	}

	s.body = append(s.body, head)
	head.Draw(s.display)

	s.release()
	return true
}

// Rotate turns the snake toward d. Only turns onto the other axis are accepted,
// so an exact reversal (or a repeat of the current heading) is ignored. Once a
// turn is accepted, further turns are ignored until the snake next steps.
func (s *Snake) Rotate(d Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rotated || !d.Perpendicular(s.heading) {
		return false
	}
	s.heading = d
	s.rotated = true
	return true
}

// release clears the rotation latch after a step.
func (s *Snake) release() {
	s.mu.Lock()
	s.rotated = false
	s.mu.Unlock()
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heading
}

// IsHit reports whether c collides with the body, excluding the head itself.
// The tail counts: when the check runs, the tail is still in place.
func (s *Snake) IsHit(c Cell) bool {
	for i := 0; i < len(s.body)-1; i++ {
		if s.body[i].Equal(c) {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, head included, sits on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg.Equal(c) {
			return true
		}
	}
	return false
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, tail first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Draw renders every segment.
func (s *Snake) Draw(d Display) {
	for _, c := range s.body {
		c.Draw(d)
	}
}
