package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-munchkin/internal/platform/tui"
	"github.com/vovakirdan/tui-munchkin/internal/registry"
	"github.com/vovakirdan/tui-munchkin/internal/storage"
)

var (
	flagClear  bool
	flagRecent int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show or clear high scores",
	Long: `Display the high score of every variant, or of the given one together
with its recent games.

Examples:
  munchkin scores
  munchkin scores munchkin_swarm --recent 10
  munchkin scores munchkin --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Reset the high score and history of the given variant")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent games to list for a variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'munchkin list' to see available variants.")
			os.Exit(1)
		}
	}
	if flagClear && gameID == "" {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHighScore(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing score: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("High score of %s cleared.\n", gameID)
		return
	}

	entries, err := store.AllHighScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-18s  %-10s  %s\n", "Variant", "Score", "Set")
	fmt.Printf("  %-18s  %-10s  %s\n", "-------", "-----", "---")
	for _, r := range tui.ScoreRows(registry.List(), entries) {
		if gameID != "" && r.GameID != gameID {
			continue
		}
		fmt.Printf("  %-18s  %-10d  %s\n", r.Title, r.Score, r.Updated)
	}

	if gameID != "" {
		printHistory(store, gameID, flagRecent)
	}
}

// printHistory lists the latest games of one variant with a summary line.
func printHistory(store *storage.Store, gameID string, limit int) {
	stats, err := store.Stats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	recent, err := store.RecentGames(gameID, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("Games played: %d in %d sessions  Average score: %.1f  Most mazes: %d\n",
		stats.Games, stats.Sessions, stats.Average, stats.BestMazes)
	if len(recent) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-16s  %s\n", "Score", "Mazes", "Played", "Session")
	for _, g := range recent {
		fmt.Printf("  %-10d  %-6d  %-16s  %s\n", g.Score, g.Mazes, g.PlayedAt.Format("2006-01-02 15:04"), shortSession(g.Session))
	}
}

// shortSession trims a session ID to its first block.
func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
