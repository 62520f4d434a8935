package console

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Board placement on the screen: one header row above, help below.
const (
	boardTop = 1
	helpText = "arrows/wasd steer  p pause  r restart  q quit"
)

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	crashStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Sound plays the game's effects. *audio.SoundManager satisfies it.
type Sound interface {
	PlayEat()
	PlayCrash()
}

type silent struct{}

func (silent) PlayEat()   {}
func (silent) PlayCrash() {}

// Options configures a Runner.
type Options struct {
	Runtime core.RuntimeConfig
	Game    snake.Options // Glyphs; the seed comes from Runtime
	Sound   Sound         // Nil plays nothing
	Logger  *log.Logger   // Nil discards
}

// Runner plays one game on an initialized tcell screen.
type Runner struct {
	screen   tcell.Screen
	game     *snake.Game
	interval time.Duration
	sound    Sound
	logger   *log.Logger

	mu    sync.Mutex // Guards runID and the header row
	runID string

	restarted chan struct{}
}

// NewRunner lays out the first board on screen. The screen must already be
// initialized; Run finalizes it.
func NewRunner(screen tcell.Screen, opts Options) *Runner {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = snake.TickInterval
	}

	r := &Runner{
		screen:    screen,
		interval:  cfg.TickInterval,
		sound:     opts.Sound,
		logger:    opts.Logger,
		runID:     uuid.NewString(),
		restarted: make(chan struct{}, 1),
	}
	if r.sound == nil {
		r.sound = silent{}
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}

	gameOpts := opts.Game
	gameOpts.Seed = cfg.Seed
	palette := core.NewPalette(gameOpts.WallGlyph, gameOpts.SnakeGlyph, gameOpts.FoodGlyph)
	display := NewDisplay(screen, 0, boardTop, snake.BoardWidth, snake.BoardHeight, palette)

	screen.Clear()
	r.game = snake.New(display, gameOpts)
	drawText(screen, 0, boardTop+snake.BoardHeight, snake.BoardWidth, helpText, statusStyle)
	r.drawHeader()
	screen.Show()

	r.logger.Info("game started", "run", r.runID, "seed", cfg.Seed)
	return r
}

// Game returns the game being played.
func (r *Runner) Game() *snake.Game {
	return r.game
}

// Run drives the game until the player quits or ctx is cancelled.
// Input is polled on the calling goroutine; ticks run on their own.
func (r *Runner) Run(ctx context.Context) error {
	defer r.screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.tickLoop(ctx)
	}()

	// Wake PollEvent when ctx ends
	go func() {
		<-ctx.Done()
		//nolint:errcheck // The queue being full still wakes the poller
		r.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	err := r.inputLoop(ctx)
	cancel()
	wg.Wait()
	return err
}

func (r *Runner) inputLoop(ctx context.Context) error {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return nil // Screen finalized
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if r.handle(ActionForKey(ev.Key(), ev.Rune())) {
				r.mu.Lock()
				r.logger.Info("quit", "run", r.runID, "length", r.game.Length())
				r.mu.Unlock()
				return nil
			}
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventError:
			return fmt.Errorf("terminal: %w", ev)
		}
	}
}

// handle applies one action and reports whether it asks to quit.
func (r *Runner) handle(action core.Action) bool {
	switch action {
	case core.ActionQuit:
		return true

	case core.ActionPause:
		r.game.TogglePause()
		r.drawHeader()
		r.screen.Show()

	case core.ActionRestart:
		if !r.game.Halted() {
			return false
		}
		seed := time.Now().UnixNano()
		r.game.Reset(seed)

		r.mu.Lock()
		r.runID = uuid.NewString()
		r.logger.Info("game started", "run", r.runID, "seed", seed)
		r.mu.Unlock()

		select {
		case r.restarted <- struct{}{}:
		default:
		}
		r.drawHeader()
		r.screen.Show()

	default:
		if d, ok := snake.DirectionFor(action); ok {
			r.game.Rotate(d)
		}
	}
	return false
}

// tickLoop advances the game on a ticker. A crash stops the ticker until a
// restart resets it.
func (r *Runner) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-r.restarted:
			ticker.Reset(r.interval)

		case <-ticker.C:
			switch r.game.Tick() {
			case snake.OutcomeAte:
				r.sound.PlayEat()
			case snake.OutcomeHalted:
				ticker.Stop()
				r.sound.PlayCrash()
				snap := r.game.Snapshot()
				r.mu.Lock()
				r.logger.Info("game over", "run", r.runID, "length", snap.Length, "ticks", snap.Tick)
				r.mu.Unlock()
			}
			r.drawHeader()
			r.screen.Show()
		}
	}
}

func (r *Runner) drawHeader() {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.game.Snapshot()
	title := "SNAKE "
	status := fmt.Sprintf(" length %d", snap.Length)

	drawText(r.screen, 0, 0, len(title), title, titleStyle)
	switch snap.State {
	case snake.StatePaused:
		status += "  paused"
		drawText(r.screen, len(title), 0, snake.BoardWidth-len(title), status, statusStyle)
	case snake.StateHalted:
		status += "  crashed"
		drawText(r.screen, len(title), 0, snake.BoardWidth-len(title), status, crashStyle)
	default:
		drawText(r.screen, len(title), 0, snake.BoardWidth-len(title), status, statusStyle)
	}
}

// Play opens the terminal, runs one Runner on it and restores the terminal.
func Play(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}

	w, h := screen.Size()
	if w < snake.BoardWidth || h < snake.BoardHeight+2 {
		screen.Fini()
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, snake.BoardWidth, snake.BoardHeight+2)
	}

	return NewRunner(screen, opts).Run(ctx)
}
