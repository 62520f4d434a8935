package console

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// fakeWriter records the last rune and style written to each position.
type fakeWriter struct {
	cells  map[[2]int]rune
	styles map[[2]int]tcell.Style
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{cells: map[[2]int]rune{}, styles: map[[2]int]tcell.Style{}}
}

func (f *fakeWriter) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = primary
	f.styles[[2]int{x, y}] = style
}

func TestDisplayOffsetsAndStyles(t *testing.T) {
	out := newFakeWriter()
	d := NewDisplay(out, 2, 1, 10, 5, core.NewPalette('#', '*', '@'))

	d.Set(0, 0, '#')
	d.Set(3, 2, '*')
	d.Set(4, 4, '@')

	tests := []struct {
		pos   [2]int
		glyph rune
		style tcell.Style
	}{
		{[2]int{2, 1}, '#', colorStyles[core.ColorGray]},
		{[2]int{5, 3}, '*', colorStyles[core.ColorGreen]},
		{[2]int{6, 5}, '@', colorStyles[core.ColorRed]},
	}
	for _, tc := range tests {
		if got := out.cells[tc.pos]; got != tc.glyph {
			t.Errorf("cell %v = %q, expected %q", tc.pos, got, tc.glyph)
		}
		if got := out.styles[tc.pos]; got != tc.style {
			t.Errorf("cell %v has the wrong style", tc.pos)
		}
	}
}

func TestDisplayIgnoresOffBoard(t *testing.T) {
	out := newFakeWriter()
	d := NewDisplay(out, 0, 1, 4, 3, nil)

	d.Set(-1, 0, '#')
	d.Set(4, 0, '#')
	d.Set(0, 3, '#')
	d.Set(0, -1, '#')

	if len(out.cells) != 0 {
		t.Errorf("off-board writes reached the screen: %v", out.cells)
	}
}

func TestDisplayClearBlanksBoardOnly(t *testing.T) {
	out := newFakeWriter()
	d := NewDisplay(out, 1, 1, 3, 2, nil)
	out.SetContent(0, 0, 'H', nil, tcell.StyleDefault) // Header cell outside the board

	d.Set(1, 1, '*')
	d.Clear()

	if out.cells[[2]int{0, 0}] != 'H' {
		t.Error("Clear touched a cell outside the board")
	}
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			if r := out.cells[[2]int{x, y}]; r != ' ' {
				t.Errorf("cell (%d, %d) = %q after Clear", x, y, r)
			}
		}
	}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected core.Action
	}{
		{"arrow up", tcell.KeyUp, 0, core.ActionUp},
		{"arrow down", tcell.KeyDown, 0, core.ActionDown},
		{"arrow left", tcell.KeyLeft, 0, core.ActionLeft},
		{"arrow right", tcell.KeyRight, 0, core.ActionRight},
		{"escape", tcell.KeyEscape, 0, core.ActionQuit},
		{"ctrl+c", tcell.KeyCtrlC, 0, core.ActionQuit},
		{"w", tcell.KeyRune, 'w', core.ActionUp},
		{"k", tcell.KeyRune, 'k', core.ActionUp},
		{"s", tcell.KeyRune, 's', core.ActionDown},
		{"a", tcell.KeyRune, 'a', core.ActionLeft},
		{"D", tcell.KeyRune, 'D', core.ActionRight},
		{"p", tcell.KeyRune, 'p', core.ActionPause},
		{"space", tcell.KeyRune, ' ', core.ActionPause},
		{"r", tcell.KeyRune, 'r', core.ActionRestart},
		{"q", tcell.KeyRune, 'q', core.ActionQuit},
		{"unbound rune", tcell.KeyRune, 'x', core.ActionNone},
		{"unbound key", tcell.KeyTab, 0, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ActionForKey(tc.key, tc.r); got != tc.expected {
				t.Errorf("ActionForKey(%v, %q) = %v, expected %v", tc.key, tc.r, got, tc.expected)
			}
		})
	}
}

type countingSound struct {
	crashes chan struct{}
}

func (countingSound) PlayEat() {}
func (c countingSound) PlayCrash() {
	select {
	case c.crashes <- struct{}{}:
	default:
	}
}

func newSimRunner(t *testing.T) (*Runner, tcell.SimulationScreen, countingSound) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	sim.SetSize(80, 24)

	sound := countingSound{crashes: make(chan struct{}, 1)}
	r := NewRunner(sim, Options{
		Runtime: core.RuntimeConfig{
			ScreenW:      80,
			ScreenH:      24,
			TickInterval: 2 * time.Millisecond,
			Seed:         11,
		},
		Game:  snake.DefaultOptions(),
		Sound: sound,
	})
	return r, sim, sound
}

func TestNewRunnerDrawsBoard(t *testing.T) {
	r, sim, _ := newSimRunner(t)
	defer sim.Fini()

	for x := 0; x < snake.BoardWidth; x++ {
		if got, _, _, _ := sim.GetContent(x, boardTop); got != snake.DefaultWallGlyph {
			t.Fatalf("top wall at x=%d is %q", x, got)
		}
	}

	snap := r.Game().Snapshot()
	if got, _, _, _ := sim.GetContent(snap.HeadX, boardTop+snap.HeadY); got != snake.DefaultSnakeGlyph {
		t.Errorf("head cell shows %q, expected the snake glyph", got)
	}
	if got, _, _, _ := sim.GetContent(snap.FoodX, boardTop+snap.FoodY); got != snake.DefaultFoodGlyph {
		t.Errorf("food cell shows %q, expected the food glyph", got)
	}
	if got, _, _, _ := sim.GetContent(0, 0); got != 'S' {
		t.Errorf("header starts with %q, expected 'S'", got)
	}
}

func TestRunnerTicksUntilCrashAndStopsOnCancel(t *testing.T) {
	r, _, sound := newSimRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case <-sound.crashes:
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("snake never crashed into the wall")
	}

	if !r.Game().Halted() {
		t.Error("game should be halted after the crash sound")
	}
	frozen := r.Game().Snapshot().Tick
	time.Sleep(20 * time.Millisecond)
	if got := r.Game().Snapshot().Tick; got != frozen {
		t.Errorf("ticks advanced after the crash: %d -> %d", frozen, got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, expected nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunnerHandle(t *testing.T) {
	r, sim, _ := newSimRunner(t)
	defer sim.Fini()

	if !r.handle(core.ActionQuit) {
		t.Error("quit should end the input loop")
	}

	r.handle(core.ActionPause)
	if !r.Game().Paused() {
		t.Error("pause action should pause the game")
	}
	r.handle(core.ActionPause)

	before := r.Game().Snapshot()
	r.handle(core.ActionRestart)
	if r.Game().Snapshot().Seed != before.Seed {
		t.Error("restart while running should be ignored")
	}

	r.handle(core.ActionUp)
	if h := r.Game().Snapshot().Heading; h != snake.DirUp {
		t.Errorf("Heading = %v, expected up", h)
	}

	for !r.Game().Halted() {
		r.Game().Tick()
	}
	r.handle(core.ActionRestart)
	if r.Game().Halted() {
		t.Error("restart after a crash should start a new board")
	}
	select {
	case <-r.restarted:
	default:
		t.Error("restart should signal the ticker")
	}
}
