package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pinyin-match/internal/config"
	"github.com/vovakirdan/pinyin-match/internal/games/pinyin"
	"github.com/vovakirdan/pinyin-match/internal/match3"
)

var (
	flagBoardLevel   int
	flagBoardEndless bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a generated board",
	Long: `Generate the starting board of a level for the given seed and print it
with the number of possible swaps and one suggested swap.

The same seed and level always produce the same board.

Examples:
  pinyin board
  pinyin board --level 4 --seed 42
  pinyin board --endless --seed 7`,
	Run: runBoard,
}

func init() {
	boardCmd.Flags().IntVar(&flagBoardLevel, "level", 1, "Campaign level (1-based)")
	boardCmd.Flags().BoolVar(&flagBoardEndless, "endless", false, "Use the endless mode alphabet")
	boardCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	boardCmd.Flags().StringVar(&flagLevelDir, "levels", "", "Directory of extra level YAML files")
}

func runBoard(_ *cobra.Command, _ []string) {
	applyGameFlags()
	cfg, err := pinyin.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var lvl config.LevelConfig
	if flagBoardEndless {
		lvl = cfg.EndlessLevel()
	} else {
		if flagBoardLevel < 1 || flagBoardLevel > len(cfg.Levels) {
			fmt.Fprintf(os.Stderr, "Error: level %d out of range (1-%d)\n", flagBoardLevel, len(cfg.Levels))
			os.Exit(1)
		}
		lvl = cfg.Levels[flagBoardLevel-1]
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bc := pinyin.BoardConfig(cfg, lvl, rand.New(rand.NewSource(seed)))
	board, err := match3.New(bc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("generated board", "level", lvl.Name, "seed", seed, "sounds", len(lvl.Sounds()))

	fmt.Printf("%s  seed %d  %dx%d\n\n", lvl.Name, seed, board.Width(), board.Height())
	fmt.Println(board.String())
	fmt.Println()

	fmt.Printf("Possible swaps: %d\n", board.PossibleMoves())
	if m, ok := board.FindPossibleMove(); ok {
		fmt.Printf("Hint: swap %s with %s\n", m.From, m.To)
	}
}
