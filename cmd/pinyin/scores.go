package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pinyin-match/internal/registry"
	"github.com/vovakirdan/pinyin-match/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores for a mode, followed by its most
recent runs and a summary of every run recorded.

Examples:
  pinyin scores
  pinyin scores pinyin_endless
  pinyin scores --runs 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "pinyin"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pinyin list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pinyin play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, player, dateStr)
	}

	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		logger.Warn("could not load runs", "game", gameID, "error", err)
		return
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent runs:")
		fmt.Printf("  %-8s  %-8s  %-5s  %-6s  %-8s  %-8s  %s\n", "Score", "Level", "Swaps", "Misses", "Time", "Seed", "Result")
		for _, r := range runs {
			fmt.Printf("  %-8d  %-8d  %-5d  %-6d  %-8s  %-8d  %s\n",
				r.Score, r.Level, r.Swaps, r.Misses,
				(time.Duration(r.Duration) * time.Second).String(), r.Seed, r.EndReason)
		}
	}

	summary, err := store.GetRunSummary(gameID)
	if err != nil {
		logger.Warn("could not load run summary", "game", gameID, "error", err)
		return
	}
	if summary.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best level: %d  Accuracy: %.0f%%  Cascades: %d\n",
			summary.Runs, summary.Wins, summary.BestLevel, summary.Accuracy()*100, summary.TotalCascades)
	}
}
