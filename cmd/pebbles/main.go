// pebbles is a terminal falling-block puzzle about matching colored pebbles.
//
// Usage:
//
//	pebbles play             - Play in the current terminal
//	pebbles scores           - Show high scores
//	pebbles serve            - Start SSH server for remote play
//	pebbles list             - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pebbleharmony/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/dmitriylogunov/pebbleharmony/internal/games/pebbles"
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
	Use:   "pebbles",
	Short: "Pebble Harmony - a falling-block puzzle in your terminal",
	Long: `Pebble Harmony is a terminal puzzle game. Pairs of colored pebbles
fall down a narrow board; connect four or more of one color to clear
them and set off chain reactions.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - List registered games

Examples:
  pebbles play
  pebbles play --difficulty hard
  pebbles play --seed 42
  pebbles serve --ssh :2222
  pebbles scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pebbleharmony/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}
