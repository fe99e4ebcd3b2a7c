package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/undeadbits/outbreak/internal/core"
	"github.com/undeadbits/outbreak/internal/platform/tui"
	"github.com/undeadbits/outbreak/internal/registry"
	"github.com/undeadbits/outbreak/internal/storage"
	"github.com/undeadbits/outbreak/internal/survival"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a run",
	Long: `Start a run. Mode is "campaign" (default) or "endless".

Controls:
  W/A/S/D, Arrows - Move
  Space           - Fire at the nearest zombie
  E               - Interact with the highlighted pickup
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  outbreak play
  outbreak play endless
  outbreak play --difficulty hard
  outbreak play --config ./my-outbreak.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// resolveGameID maps the CLI mode argument to a registered game ID.
func resolveGameID(arg string) (string, error) {
	switch arg {
	case "", "campaign", "outbreak":
		return "outbreak", nil
	case "endless", "outbreak_endless":
		return "outbreak_endless", nil
	}
	return "", fmt.Errorf("unknown mode %q (want campaign or endless)", arg)
}

func runPlay(cmd *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveGameID(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
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

	// Set config path and difficulty before the game is created
	survival.SetConfigPath(flagConfig)
	survival.SetDifficultyPreset(flagDifficulty)

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
