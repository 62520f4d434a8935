package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R                - Restart (after a crash)
  Q/Esc/Ctrl+C     - Quit

Backends:
  tea    - Bubble Tea renderer (default)
  tcell  - Direct terminal drawing with a separate input loop

Examples:
  snake play
  snake play --backend tcell
  snake play --seed 7 --log-file /tmp/snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Terminal backend: tea or tcell")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagBackend != backendTea && flagBackend != backendTcell {
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTea, backendTcell)
	}

	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(cfg.Log)
	if err != nil {
		return err
	}
	//nolint:errcheck // Nothing useful to do if the log file fails to close
	defer closeLog()

	sound := audio.NewSoundManager()
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("sound disabled", "error", err)
		}
	}
	defer sound.Cleanup()

	rtCfg := core.DefaultConfig()
	rtCfg.TickInterval = snake.TickInterval
	rtCfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rtCfg.ScreenW = w
		rtCfg.ScreenH = h
	}

	logger.Debug("starting", "backend", flagBackend, "width", rtCfg.ScreenW, "height", rtCfg.ScreenH)

	switch flagBackend {
	case backendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = console.Play(ctx, console.Options{
			Runtime: rtCfg,
			Game:    gameOptions(cfg),
			Sound:   sound,
			Logger:  logger,
		})
	default:
		err = tui.Run(tui.Options{
			Runtime: rtCfg,
			Game:    gameOptions(cfg),
			Sound:   sound,
			Logger:  logger,
		})
	}

	if err != nil {
		logger.Error("game ended with error", "error", err)
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
