// lander is a terminal lunar landing simulator.
//
// Usage:
//
//	lander play              - Fly a landing mission
//	lander serve             - Start SSH server for remote play
//	lander scores            - Show high scores
//	lander flights           - Browse the flight log
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible terrain
//	--db <path>     - Set database path (default: ~/.lander/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - Fly a landing mission in your terminal",
	Long: `Lunar Lander is a terminal flight simulator: bring a descent craft
down onto procedurally generated terrain without breaking it apart.

Available commands:
  play     - Fly a landing mission
  serve    - Start SSH server for remote play
  scores   - View high scores
  flights  - Browse the flight log

Examples:
  lander play
  lander play --difficulty hard
  lander play --seed 42
  lander serve --ssh :2222
  lander scores
  lander flights`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(flightsCmd)
}
