// jezzball is a JezzBall clone for the terminal, a desktop window and SSH.
//
// Usage:
//
//	jezzball play            - Play in the terminal
//	jezzball window          - Play in a desktop window
//	jezzball serve           - Start SSH server for remote play
//	jezzball stats           - Show session statistics
//	jezzball list            - List registered games
//	jezzball schema          - Print the config JSON Schema
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.jezzball/stats.db)
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Append barrier events to a log file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/newmanne/jezzball/internal/config"
	"github.com/newmanne/jezzball/internal/games/jezzball"
	"github.com/newmanne/jezzball/internal/platform/eventlog"
	"github.com/newmanne/jezzball/internal/registry"
	"github.com/newmanne/jezzball/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jezzball",
	Short: "JezzBall - Wall off the bouncing ball",
	Long: `JezzBall grows barriers across a field while a ball bounces around it.
A barrier hit by the ball while it is still growing is destroyed;
a barrier that reaches the edge of the field becomes permanent.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  stats    - View session statistics
  list     - Show registered games
  schema   - Print the config JSON Schema

Examples:
  jezzball play
  jezzball play --difficulty hard
  jezzball window --config ./jezzball.toml
  jezzball serve --ssh :2222
  jezzball stats`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to stats database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Append barrier events to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(schemaCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// gameOptions checks the config and difficulty flags and returns them as
// game options. The game itself falls back to defaults on a bad config, so
// the CLI reports it here instead.
func gameOptions() (registry.Options, error) {
	if flagConfig != "" {
		if _, err := config.LoadFile(flagConfig); err != nil {
			return registry.Options{}, err
		}
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return registry.Options{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	return registry.Options{ConfigPath: flagConfig, Difficulty: flagDifficulty}, nil
}

// newGame creates a game from the global flags.
func newGame() *jezzball.Game {
	opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}
	return jezzball.NewFromOptions(opts)
}

// openStore opens the stats database. Failure is only a warning:
// the game still works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open stats database: %v\n", err)
		return nil
	}
	return store
}

// openEventLog returns an observer writing to --log, or nil when the flag
// is unset. The closer is always safe to call.
func openEventLog(prefix string) (jezzball.Observer, io.Closer) {
	if flagLog == "" {
		return nil, io.NopCloser(nil)
	}
	logger, closer, err := eventlog.OpenFile(flagLog, prefix)
	if err != nil {
		fail("%v", err)
	}
	return eventlog.New(logger), closer
}
