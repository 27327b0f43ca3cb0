package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ainchor-labs/LevelForge/internal/core"
	"github.com/ainchor-labs/LevelForge/internal/game"
	"github.com/ainchor-labs/LevelForge/internal/platform/tui"
	"github.com/ainchor-labs/LevelForge/internal/registry"
	"github.com/ainchor-labs/LevelForge/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D or Left/Right  - Move paddle
  W/S or Up/Down     - Move paddle (targets only)
  Space              - Launch ball
  P                  - Pause
  R                  - Restart
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Extra balls, wider paddle
  normal - The intended experience
  hard   - Fewer balls, narrow paddle, faster serves
  fixed  - No progression, stays at config's initial level

Examples:
  levelforge play breakout
  levelforge play targets --difficulty easy
  levelforge play breakout --difficulty hard
  levelforge play targets --config ./my-targets.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'levelforge list' to see available games.")
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

	// Config path and difficulty apply to the next Reset
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
