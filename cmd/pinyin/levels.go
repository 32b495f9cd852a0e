package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pinyin-match/internal/config"
	"github.com/vovakirdan/pinyin-match/internal/games/pinyin"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the configured levels",
	Long: `Load the game config (with --config, --levels and --difficulty applied),
validate it and print every campaign level with its sounds.

Examples:
  pinyin levels
  pinyin levels --difficulty hard
  pinyin levels --config ./my-pinyin.yaml`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	levelsCmd.Flags().StringVar(&flagLevelDir, "levels", "", "Directory of extra level YAML files")
}

func runLevels(_ *cobra.Command, _ []string) {
	applyGameFlags()
	cfg, err := pinyin.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, lvl := range cfg.Levels {
		w, h := lvl.Size(cfg.Board)
		fmt.Printf("%2d. %s  (%dx%d, target %d, %d moves)\n", i+1, lvl.Name, w, h, lvl.Target, lvl.Moves)
		printSounds(lvl)
	}

	endless := cfg.EndlessLevel()
	fmt.Printf("\nEndless: %d sounds, %d characters, %d moves\n",
		len(endless.Sounds()), len(endless.Characters), endless.Moves)
}

func printSounds(lvl config.LevelConfig) {
	for _, sound := range lvl.Sounds() {
		var chars []string
		for _, c := range lvl.Characters {
			if c.Pinyin != sound {
				continue
			}
			if c.Meaning != "" {
				chars = append(chars, fmt.Sprintf("%s (%s)", c.Hanzi, c.Meaning))
			} else {
				chars = append(chars, c.Hanzi)
			}
		}
		fmt.Printf("      %-6s %s\n", sound, strings.Join(chars, ", "))
	}
}
