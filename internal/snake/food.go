package snake

import (
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxSpawnAttempts bounds random sampling before falling back to a scan.
const maxSpawnAttempts = 64

// FoodSpawner owns the single piece of food on the board.
type FoodSpawner struct {
	area    core.Rect // Cells food may appear in
	glyph   rune
	rng     *rand.Rand
	display Display

	food    Cell
	present bool
}

// NewFoodSpawner creates a spawner for a width x height board. Food coordinates
// are drawn from [FoodMargin, dimension-FoodMargin) on each axis.
func NewFoodSpawner(width, height int, glyph rune, seed uint64, display Display) *FoodSpawner {
	if display == nil {
		panic("snake: nil display")
	}
	return &FoodSpawner{
		area:    core.NewRect(0, 0, width, height).Inset(FoodMargin),
		glyph:   glyph,
		rng:     rand.New(rand.NewSource(seed)),
		display: display,
	}
}

// CreateFood replaces the current food with a new cell and draws it.
// Cells reported by occupied are skipped, so food never lands on the snake;
// when the whole spawn area is taken the spawner is left without food.
func (f *FoodSpawner) CreateFood(occupied Occupancy) {
	f.present = false
	if f.area.Empty() {
		return
	}

	for i := 0; i < maxSpawnAttempts; i++ {
		c := NewCell(
			f.area.X+f.rng.Intn(f.area.W),
			f.area.Y+f.rng.Intn(f.area.H),
			f.glyph,
		)
		if occupied == nil || !occupied.Occupies(c) {
			f.place(c)
			return
		}
	}

	// Crowded board: take the first free cell in reading order
	for y := f.area.Y; y < f.area.Bottom(); y++ {
		for x := f.area.X; x < f.area.Right(); x++ {
			c := NewCell(x, y, f.glyph)
			if !occupied.Occupies(c) {
				f.place(c)
				return
			}
		}
	}
}

func (f *FoodSpawner) place(c Cell) {
	f.food = c
	f.present = true
	c.Draw(f.display)
}

// Food returns the active food cell. The second result is false when there is none.
func (f *FoodSpawner) Food() (Cell, bool) {
	return f.food, f.present
}

// Area returns the rectangle food is spawned in.
func (f *FoodSpawner) Area() core.Rect {
	return f.area
}
