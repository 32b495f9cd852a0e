package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/pinyin-match/internal/core"
	"github.com/vovakirdan/pinyin-match/internal/games/pinyin"
	"github.com/vovakirdan/pinyin-match/internal/storage"
)

// Game config flags shared by play and menu.
var (
	flagConfig     string
	flagDifficulty string
	flagLevelDir   string
	flagPlayer     string
)

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags passes the config flags to the pinyin package before a
// game is created.
func applyGameFlags() {
	pinyin.SetConfigPath(flagConfig)
	pinyin.SetDifficultyPreset(flagDifficulty)
	pinyin.SetLevelDir(flagLevelDir)
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName returns the --player flag or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER")
}
