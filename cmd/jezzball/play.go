package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/newmanne/jezzball/internal/core"
	"github.com/newmanne/jezzball/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game sized to the terminal. Each character is one grid cell.

Controls:
  Mouse         - Move the cursor
  Left click    - Place a barrier pair
  Right click   - Toggle vertical/horizontal
  Arrows/WASD   - Move the cursor
  Space/Enter   - Place a barrier pair
  Tab/X         - Toggle vertical/horizontal
  P/Esc         - Pause
  R             - Restart
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Base ball speed and growth rate
  normal - 30% difficulty
  hard   - 70% difficulty
  fixed  - No scaling, config values as written

Examples:
  jezzball play
  jezzball play --difficulty hard
  jezzball play --config ./my-jezzball.yaml --log ./jezzball.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Without --difficulty, ask for one when there is a terminal to ask on.
	if flagDifficulty == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		preset, err := tui.RunDifficultySelector(width, height)
		if err != nil {
			fail("%v", err)
		}
		if preset == "" {
			return
		}
		flagDifficulty = string(preset)
	}

	game := newGame()

	observer, closer := openEventLog("jezzball")
	defer closer.Close()
	game.SetObserver(observer)

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()
	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
