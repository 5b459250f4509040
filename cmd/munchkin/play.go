package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin"
	"github.com/vovakirdan/tui-munchkin/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: munchkin).

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  Esc/B        - Leave the game
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Long vulnerable windows that shorten as mazes are cleared
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty with short vulnerable windows
  fixed  - No progression, stays at the config's values

Examples:
  munchkin play
  munchkin play munchkin_swarm
  munchkin play --difficulty hard --mute
  munchkin play --config ./my-munchkin.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := munchkin.ClassicID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'munchkin list' to see available variants.")
		os.Exit(1)
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, runErr := s.play(gameID, runtimeConfig())
	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
