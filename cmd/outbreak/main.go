// outbreak is a terminal zombie-survival game: hold out against waves,
// earn points for kills, and spend them at supply pickups.
//
// Usage:
//
//	outbreak play [mode]       - Play (campaign by default, or endless)
//	outbreak menu              - Interactive mode picker
//	outbreak serve             - Start SSH server for remote play
//	outbreak scores <mode>     - Show high scores for a mode
//	outbreak simulate          - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.outbreak/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/undeadbits/outbreak/internal/survival"
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
	Use:   "outbreak",
	Short: "Outbreak - zombie survival in your terminal",
	Long: `Outbreak is a terminal survival game. Zombies come in waves; kills
earn points; points buy ammo and medkits at pickups around the arena.

Available commands:
  play      - Play a run directly (campaign or endless)
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a headless simulation for a given seed

Examples:
  outbreak play
  outbreak play endless
  outbreak menu
  outbreak serve --ssh :2222
  outbreak scores outbreak
  outbreak simulate --ticks 5000 --seed 7`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.outbreak/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
