package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmitriylogunov/pebbleharmony/internal/core"
	"github.com/dmitriylogunov/pebbleharmony/internal/games/pebbles"
	"github.com/dmitriylogunov/pebbleharmony/internal/platform/tui"
	"github.com/dmitriylogunov/pebbleharmony/internal/registry"
	"github.com/dmitriylogunov/pebbleharmony/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the current terminal",
	Long: `Start playing. If no game is given, pebbles is played.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  X/W/Up     - Rotate clockwise
  Z          - Rotate counter-clockwise
  Space/Down - Drop
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow falls, gentle progression
  normal - Default speed, progresses with score
  hard   - Fast falls from the start
  fixed  - No progression, stays at config's initial level

Examples:
  pebbles play
  pebbles play --difficulty hard
  pebbles play --config ./my-pebbles.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "pebbles"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pebbles list' to see available games.")
		os.Exit(1)
	}

	// Terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	if gameID == "pebbles" {
		pebbles.SetConfigPath(flagConfig)
		pebbles.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
