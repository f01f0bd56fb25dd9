package main

import (
	"github.com/spf13/cobra"

	"github.com/newmanne/jezzball/internal/core"
	"github.com/newmanne/jezzball/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 pixel field in a desktop window.
Controls are the same as for play.

Examples:
  jezzball window
  jezzball window --difficulty normal --fps 30`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	game := newGame()

	observer, closer := openEventLog("jezzball-window")
	defer closer.Close()

	cfg := core.RuntimeConfig{
		FieldW:   desktop.FieldWidth,
		FieldH:   desktop.FieldHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()
	runErr := desktop.Run(game, store, cfg, observer)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
