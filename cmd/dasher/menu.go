package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/audio"
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/platform/tui"
	"github.com/vovakirdan/dasher/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to change the difficulty
and Enter to start. After a run, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Difficulty
  Enter/Space  - Start
  Tab          - Best runs
  Q            - Quit

Examples:
  dasher menu
  dasher menu --fps 30
  dasher menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	preset := applyGameFlags()
	if preset == "" {
		preset = config.DifficultyNormal
	}
	cfg := terminalConfig()

	store := openStore(logger)
	fx := audio.NewEffects(flagMute)
	if err := fx.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size and difficulty for the next round
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if ds, ok := game.(tui.DifficultySetter); ok {
			ds.SetDifficulty(preset)
		}

		backToMenu, err := tui.Run(game, cfg, tui.Options{
			Store:   store,
			Effects: fx,
			Logger:  logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	fx.Close()
	if store != nil {
		store.Close()
	}
}
