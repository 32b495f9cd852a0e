package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pinyin-match/internal/games/pinyin"
	"github.com/vovakirdan/pinyin-match/internal/platform/tui"
	"github.com/vovakirdan/pinyin-match/internal/registry"
)

var (
	flagStartLevel int
	flagEndless    bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing campaign mode, or the mode given as argument.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Select a tile, then press a direction to swap
  H            - Show a possible swap
  Esc          - Cancel selection
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More moves per level
  normal - Moves as configured
  hard   - Fewer moves per level

Examples:
  pinyin play
  pinyin play --level 3
  pinyin play --endless
  pinyin play --difficulty hard
  pinyin play --config ./my-pinyin.yaml --levels ./levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevelDir, "levels", "", "Directory of extra level YAML files")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Campaign level to start from (1-based)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the scoreboard (default: $USER)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "pinyin"
	if len(args) > 0 {
		gameID = args[0]
	}
	if flagEndless {
		gameID = "pinyin_endless"
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pinyin list' to see available modes.")
		os.Exit(1)
	}

	applyGameFlags()
	if _, err := pinyin.LoadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if flagStartLevel > 0 {
		if p, ok := game.(*pinyin.Game); ok {
			p.StartAt(flagStartLevel)
		}
	}

	store := openStore()

	runErr := tui.Run(game, store, runtimeConfig(), playerName())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
