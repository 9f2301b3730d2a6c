package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappybird/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available frontends",
	Long:  `Shows every frontend the game can be played with.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		maxIDLen = max(maxIDLen, len(f.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play <id>' to play.")
}
