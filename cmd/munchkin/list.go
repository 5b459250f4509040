package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin"
	"github.com/vovakirdan/tui-munchkin/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered Munchkin variant with its agent counts under the current config.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Println("Available variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %8s  %7s\n", idW, "ID", titleW, "Title", "Pursuers", "Pickups")
	for _, g := range games {
		settings, err := munchkin.LoadSettings(g.ID, flagConfig, "")
		if err != nil {
			fmt.Printf("  %-*s  %-*s  config error: %v\n", idW, g.ID, titleW, g.Title, err)
			continue
		}
		fmt.Printf("  %-*s  %-*s  %8d  %7d\n", idW, g.ID, titleW, g.Title, settings.Sim.Pursuers, settings.Sim.Pickups)
	}

	fmt.Println()
	fmt.Println("Run 'munchkin play <id>' to play a variant.")
}
