package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/games/dasher"
	"github.com/vovakirdan/dasher/internal/platform/window"
	"github.com/vovakirdan/dasher/internal/registry"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Run in a desktop window",
	Long: `Start a run in a desktop window with sprite graphics.

Sprite sheets are read from --assets: scarfy.png, 12_nebula_spritesheet.png,
far-buildings.png, back-buildings.png and foreground.png. Missing files are
replaced by generated textures.

Controls:
  Space/Up/W  - Jump
  P           - Pause
  R/Enter     - Restart (after the run ends)
  Q/Esc       - Quit

Examples:
  dasher window
  dasher window --assets ./resources
  dasher window dasher-classic --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with the sprite sheets")
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	applyGameFlags()
	created, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(*dasher.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q cannot run in a window\n", gameID)
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := window.Run(window.Options{
		Game:      game,
		AssetsDir: flagAssets,
		TickRate:  flagFPS,
		Store:     store,
		Logger:    logger,
		Muted:     flagMute,
	})
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("window closed with error", "error", runErr)
		os.Exit(1)
	}
}
