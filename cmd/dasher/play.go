package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/audio"
	"github.com/vovakirdan/dasher/internal/platform/tui"
	"github.com/vovakirdan/dasher/internal/registry"
)

const defaultVariant = "dasher"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Run in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Space/Up/W  - Jump
  P           - Pause
  R           - Restart (after the run ends)
  Esc/B       - Back to menu (paused or after the run ends)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Obstacles at base speed and spacing
  normal - 30% of the way to the hardest field
  hard   - 70% of the way to the hardest field

Examples:
  dasher play
  dasher play dasher-classic
  dasher play --difficulty hard
  dasher play --config ./my-dasher.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultVariant
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dasher list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	applyGameFlags()
	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	fx := audio.NewEffects(flagMute)
	if err := fx.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}

	_, runErr := tui.Run(game, cfg, tui.Options{
		Store:   store,
		Effects: fx,
		Logger:  logger,
	})

	fx.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
