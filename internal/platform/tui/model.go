package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// chromeRows is the number of terminal rows around the board: header and help.
const chromeRows = 2

// Sound plays the game's effects. *audio.SoundManager satisfies it.
type Sound interface {
	PlayEat()
	PlayCrash()
}

type silent struct{}

func (silent) PlayEat()   {}
func (silent) PlayCrash() {}

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Game    snake.Options // Glyphs; the seed comes from Runtime
	Sound   Sound         // Nil plays nothing
	Logger  *log.Logger   // Nil discards
}

// Model is the Bubble Tea model for one game of snake.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	palette  core.Palette
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	sound    Sound
	logger   *log.Logger
	runID    string
	ticking  bool // A TickMsg is in flight
	quitting bool
}

// NewModel creates a Bubble Tea model and lays out the first board.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = snake.TickInterval
	}

	sound := opts.Sound
	if sound == nil {
		sound = silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameOpts := opts.Game
	gameOpts.Seed = cfg.Seed

	screen := core.NewScreen(snake.BoardWidth, snake.BoardHeight)
	game := snake.New(screen, gameOpts)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:    game,
		screen:  screen,
		palette: core.NewPalette(gameOpts.WallGlyph, gameOpts.SnakeGlyph, gameOpts.FoodGlyph),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		sound:   sound,
		logger:  logger,
		runID:   uuid.NewString(),
		ticking: true, // Init arms the first tick
	}
	m.logger.Info("game started", "run", m.runID, "seed", cfg.Seed)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "run", m.runID, "length", m.game.Length())
		return m, tea.Quit

	case core.ActionPause:
		paused := m.game.TogglePause()
		m.logger.Debug("pause toggled", "run", m.runID, "paused", paused)

	case core.ActionRestart:
		return m.restart()

	default:
		if d, ok := snake.DirectionFor(action); ok {
			m.game.Rotate(d)
		}
	}

	return m, nil
}

// restart lays out a fresh board after a crash and re-arms the timer.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.game.Halted() {
		return m, nil
	}

	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config.Seed)
	m.keys.SetHalted(false)
	m.runID = uuid.NewString()
	m.logger.Info("game started", "run", m.runID, "seed", m.config.Seed)

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickInterval)
}

// handleTick runs one simulation step and decides whether to re-arm the timer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false

	// The board is frozen while it does not fit
	if m.tooSmall() {
		m.ticking = true
		return m, tickCmd(m.config.TickInterval)
	}

	switch m.game.Tick() {
	case snake.OutcomeAte:
		m.sound.PlayEat()
		m.logger.Debug("ate", "run", m.runID, "length", m.game.Length())

	case snake.OutcomeHalted:
		m.sound.PlayCrash()
		m.keys.SetHalted(true)
		snap := m.game.Snapshot()
		m.logger.Info("game over", "run", m.runID, "length", snap.Length, "ticks", snap.Tick)
		// Timer disabled; restart re-arms it
		return m, nil
	}

	m.ticking = true
	return m, tickCmd(m.config.TickInterval)
}

func (m Model) tooSmall() bool {
	return m.config.ScreenW < snake.BoardWidth || m.config.ScreenH < snake.BoardHeight+chromeRows
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		msg := fmt.Sprintf("Window too small\nneed %dx%d, have %dx%d",
			snake.BoardWidth, snake.BoardHeight+chromeRows, m.config.ScreenW, m.config.ScreenH)
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, msg)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		RenderScreen(m.screen, m.palette),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) header() string {
	snap := m.game.Snapshot()
	status := statusStyle.Render(fmt.Sprintf(" length %d", snap.Length))

	switch snap.State {
	case snake.StatePaused:
		status += statusStyle.Render("  paused")
	case snake.StateHalted:
		status += crashStyle.Render("  crashed")
	}

	return titleStyle.Render("SNAKE") + status
}

// Game returns the underlying game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
