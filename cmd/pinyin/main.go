// pinyin is a terminal match-3 game for learning Chinese pinyin. Tiles show
// a syllable either as pinyin or as a character; three or more tiles that
// sound the same clear.
//
// Usage:
//
//	pinyin list              - List available modes
//	pinyin play [mode]       - Play campaign or endless mode
//	pinyin menu              - Start menu to pick a mode interactively
//	pinyin serve             - Start SSH server for remote play
//	pinyin scores [mode]     - Show high scores and recent runs
//	pinyin levels            - Print the configured levels
//	pinyin board             - Print a generated board for a seed
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.pinyin/scores.db)
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pinyin-match/internal/games/pinyin"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pinyin",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pinyin",
	Short: "Pinyin Match - a match-3 game for learning pinyin",
	Long: `Pinyin Match is a terminal match-3 game. Each tile shows a Chinese
syllable either as pinyin (mù) or as a character (木, 目). Swap neighbouring
tiles to line up three or more that sound the same.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode and level picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  levels   - Print the configured levels
  board    - Print a generated board

Examples:
  pinyin play
  pinyin play pinyin_endless
  pinyin menu
  pinyin serve --ssh :2222
  pinyin board --level 3 --seed 42`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pinyin/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(boardCmd)
}
