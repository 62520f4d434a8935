// Package snake implements the rules of the game: the wall frame, the snake,
// food placement and the per-tick state machine that ties them together.
// It draws through the small Display interface and knows nothing about terminals.
package snake

import (
	"sync"
)

// Outcome describes what a single tick did.
type Outcome int

const (
	OutcomeIdle   Outcome = iota // Nothing happened: the game is halted or paused
	OutcomeMoved                 // The snake advanced one cell
	OutcomeAte                   // The snake grew onto food and new food was placed
	OutcomeHalted                // A collision was found; no further ticks will advance
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Options holds the glyphs and seed a game is built with.
type Options struct {
	WallGlyph  rune
	SnakeGlyph rune
	FoodGlyph  rune
	Seed       int64
}

// DefaultOptions returns the stock glyphs with a zero seed.
func DefaultOptions() Options {
	return Options{
		WallGlyph:  DefaultWallGlyph,
		SnakeGlyph: DefaultSnakeGlyph,
		FoodGlyph:  DefaultFoodGlyph,
	}
}

// Game is the loop controller. It holds all game objects for one board and
// advances them one tick at a time. Tick and Rotate may be called from
// different goroutines.
type Game struct {
	mu       sync.Mutex
	opts     Options
	display  Display
	boundary *Boundary
	snake    *Snake
	food     *FoodSpawner

	tick   uint64
	halted bool
	paused bool
}

// New creates a game drawing to display and lays out the first board.
func New(display Display, opts Options) *Game {
	if display == nil {
		panic("snake: nil display")
	}

	g := &Game{
		opts:     opts,
		display:  display,
		boundary: NewBoundary(BoardWidth, BoardHeight, opts.WallGlyph),
	}
	g.reset(opts.Seed)
	return g
}

// Reset clears the display and starts a fresh board seeded with seed.
// The wall frame is reused; the snake and food are rebuilt.
func (g *Game) Reset(seed int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset(seed)
}

func (g *Game) reset(seed int64) {
	g.opts.Seed = seed
	g.tick = 0
	g.halted = false
	g.paused = false

	g.display.Clear()
	g.boundary.Draw(g.display)

	cx, cy := g.boundary.Rect().Center()
	g.snake = NewSnake(cx, cy, InitialLength, g.opts.SnakeGlyph, g.display)

	g.food = NewFoodSpawner(BoardWidth, BoardHeight, g.opts.FoodGlyph, uint64(seed), g.display)
	g.food.CreateFood(g.snake)
}

// Tick runs one step of the game: check the current head for a collision,
// then either grow onto food or advance.
func (g *Game) Tick() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.halted || g.paused {
		return OutcomeIdle
	}
	g.tick++

	head := g.snake.Head()
	if g.boundary.IsHit(head) || g.snake.IsHit(head) {
		g.halted = true
		return OutcomeHalted
	}

	if food, ok := g.food.Food(); ok && g.snake.Eat(food) {
		g.food.CreateFood(g.snake)
		return OutcomeAte
	}

	g.snake.Move()
	return OutcomeMoved
}

// Rotate forwards a heading change to the snake. It reports whether the change
// was accepted. Requests after the game halted are ignored.
func (g *Game) Rotate(d Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.halted {
		return false
	}
	return g.snake.Rotate(d)
}

// TogglePause pauses or resumes ticking. It has no effect once halted.
func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.halted {
		g.paused = !g.paused
	}
	return g.paused
}

// Halted reports whether a collision has stopped the game.
func (g *Game) Halted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.halted
}

// Paused reports whether ticking is suspended by the player.
func (g *Game) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// Length returns the current snake length.
func (g *Game) Length() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snake.Len()
}

// Seed returns the seed the current board was built with.
func (g *Game) Seed() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.opts.Seed
}
