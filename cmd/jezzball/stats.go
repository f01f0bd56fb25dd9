package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/newmanne/jezzball/internal/games/jezzball"
	"github.com/newmanne/jezzball/internal/platform/tui"
	"github.com/newmanne/jezzball/internal/registry"
	"github.com/newmanne/jezzball/internal/storage"
)

var (
	flagStatsPlain bool
	flagStatsLimit int
	flagStatsClear bool
	flagStatsGame  string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics",
	Long: `Display recorded sessions: ticks survived, barriers completed and
barriers destroyed. Opens an interactive table when stdout is a terminal.

Examples:
  jezzball stats
  jezzball stats --plain --limit 5
  jezzball stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsPlain, "plain", false, "Print a plain listing instead of the table")
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Sessions shown in the plain listing")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete all recorded sessions")
	statsCmd.Flags().StringVar(&flagStatsGame, "game", jezzball.GameID, "Game ID whose sessions to show")
}

func runStats(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagStatsGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagStatsGame)
		fmt.Fprintln(os.Stderr, "Run 'jezzball list' to see available games.")
		os.Exit(1)
	}
	title := gameTitle(flagStatsGame)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening stats database: %v", err)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearSessions(flagStatsGame); err != nil {
			fail("clearing sessions: %v", err)
		}
		fmt.Println("Session statistics cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagStatsPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunStats(store, flagStatsGame, title, width, height); err != nil {
			fail("running stats: %v", err)
		}
		return
	}

	printStats(store, title)
}

// printStats writes a plain listing of recent sessions.
func printStats(store *storage.Store, title string) {
	sessions, err := store.RecentSessions(flagStatsGame, flagStatsLimit)
	if err != nil {
		fail("retrieving sessions: %v", err)
	}

	fmt.Printf("Session Stats - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'jezzball play' to record the first session!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-9s  %s\n", "#", "Ticks", "Completed", "Destroyed", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-9s  %s\n", "-", "-----", "---------", "---------", "----")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-8d  %-9d  %-9d  %s\n",
			i+1, s.Ticks, s.Completed, s.Destroyed, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	best, err := store.BestSession(flagStatsGame)
	switch {
	case errors.Is(err, storage.ErrNoSessions):
	case err != nil:
		fail("retrieving best session: %v", err)
	default:
		fmt.Printf("Best: %d completed in %d ticks\n", best.Completed, best.Ticks)
	}
}

// gameTitle returns the registered title of a game.
func gameTitle(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}
