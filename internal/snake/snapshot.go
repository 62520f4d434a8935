package snake

// StateType represents the coarse game state.
type StateType string

const (
	StateRunning StateType = "running"
	StatePaused  StateType = "paused"
	StateHalted  StateType = "halted"
)

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick     uint64
	Length   int
	HeadX    int
	HeadY    int
	Heading  Direction
	FoodX    int
	FoodY    int
	HasFood  bool
	State    StateType
	Seed     int64
	Body     []Cell // Tail first
	Boundary int    // Number of wall cells
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := StateRunning
	switch {
	case g.halted:
		state = StateHalted
	case g.paused:
		state = StatePaused
	}

	head := g.snake.Head()
	food, hasFood := g.food.Food()

	return Snapshot{
		Tick:     g.tick,
		Length:   g.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Heading:  g.snake.Heading(),
		FoodX:    food.X,
		FoodY:    food.Y,
		HasFood:  hasFood,
		State:    state,
		Seed:     g.opts.Seed,
		Body:     g.snake.Body(),
		Boundary: g.boundary.Len(),
	}
}
