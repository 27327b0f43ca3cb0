// levelforge is a physics arcade platform for the terminal.
//
// Usage:
//
//	levelforge list              - List available games
//	levelforge play <game>       - Play a game
//	levelforge menu              - Start menu to pick games interactively
//	levelforge serve             - Start SSH server for remote play
//	levelforge scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.levelforge/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/ainchor-labs/LevelForge/internal/game"
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
	Use:   "levelforge",
	Short: "LevelForge - Physics arcade games in your terminal",
	Long: `LevelForge is a terminal platform for paddle-and-ball physics games.
Bounce a ball off a paddle, break tiered bricks or knock scattered
targets out of the air, and chase high scores.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  levelforge list
  levelforge play breakout
  levelforge play targets --difficulty hard
  levelforge menu
  levelforge serve --ssh :2222
  levelforge scores breakout`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.levelforge/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
