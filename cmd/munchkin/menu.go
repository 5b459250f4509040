package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin"
	"github.com/vovakirdan/tui-munchkin/internal/platform/tui"
	"github.com/vovakirdan/tui-munchkin/internal/registry"
)

// runMenu shows the title screen and plays the chosen variant. Without a
// --difficulty flag a preset is picked before each game. Leaving a game with
// Esc returns to the title screen.
func runMenu(_ *cobra.Command, _ []string) {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(s.store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if flagDifficulty == "" {
			choice, err := tui.RunDifficultySelector(gameTitle(menuResult.GameID), s.preset, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if choice.Quit {
				return
			}
			if choice.Back {
				continue
			}
			s.preset = choice.Preset
			munchkin.SetDifficultyPreset(choice.Preset)
		}

		backToMenu, err := s.play(menuResult.GameID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}

func gameTitle(id string) string {
	if title, ok := registry.Title(id); ok {
		return title
	}
	return id
}
