package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geodash/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available backends",
	Long:  `Shows every backend that can drive a geodash session.`,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "ID", "Mode", "Title")
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "--", "----", "-----")

	for _, b := range backends {
		mode := "sim"
		if b.Interactive {
			mode = "play"
		}
		fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, b.ID, mode, b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'geodash play --backend <id>' to play, or 'geodash sim' for headless runs.")
}
