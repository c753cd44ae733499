package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var flightsCmd = &cobra.Command{
	Use:   "flights",
	Short: "Browse the flight log",
	Long: `Open an interactive browser over recorded flights: outcome, crash
cause or touchdown speed, damage, science and score per mission.

Examples:
  lander flights`,
	Args: cobra.NoArgs,
	Run:  runFlights,
}

func runFlights(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunFlightLog(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running flight log: %v\n", err)
		os.Exit(1)
	}
}
