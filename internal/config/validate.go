package config

import (
	"fmt"
)

// Board size limits. Larger boards do not fit an 80x24 terminal.
const (
	MinBoardSize = 3
	MaxBoardSize = 9
	MinSounds    = 2
	MaxSounds    = 8
)

// ValidationError contains details about a configuration problem.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a configuration for values the game cannot play with.
func Validate(cfg PinyinConfig) error {
	if err := validateSize("board", cfg.Board.Width, cfg.Board.Height); err != nil {
		return err
	}
	if cfg.Display.HanziRatio < 0 || cfg.Display.HanziRatio > 1 {
		return ValidationError{
			Code:    "INVALID_RATIO",
			Message: fmt.Sprintf("display.hanzi_ratio %.2f is outside [0, 1]", cfg.Display.HanziRatio),
		}
	}
	if len(cfg.Levels) == 0 {
		return ValidationError{Code: "NO_LEVELS", Message: "at least one level is required"}
	}

	ids := make(map[int]bool)
	for _, l := range cfg.Levels {
		if ids[l.ID] {
			return ValidationError{
				Code:    "DUPLICATE_LEVEL",
				Message: fmt.Sprintf("level id %d is defined twice", l.ID),
			}
		}
		ids[l.ID] = true
		if err := validateLevel(cfg.Board, l); err != nil {
			return err
		}
	}

	for _, id := range cfg.Endless.Levels {
		if !ids[id] {
			return ValidationError{
				Code:    "UNKNOWN_LEVEL",
				Message: fmt.Sprintf("endless.levels references unknown level %d", id),
			}
		}
	}
	if cfg.Endless.Moves <= 0 {
		return ValidationError{Code: "INVALID_MOVES", Message: "endless.moves must be positive"}
	}
	return validateSounds("endless", cfg.EndlessLevel())
}

func validateLevel(board BoardConfig, l LevelConfig) error {
	name := fmt.Sprintf("level %d", l.ID)
	w, h := l.Size(board)
	if err := validateSize(name, w, h); err != nil {
		return err
	}
	if l.Target <= 0 {
		return ValidationError{Code: "INVALID_TARGET", Message: name + ": target must be positive"}
	}
	if l.Moves <= 0 {
		return ValidationError{Code: "INVALID_MOVES", Message: name + ": moves must be positive"}
	}
	return validateSounds(name, l)
}

func validateSounds(name string, l LevelConfig) error {
	for i, c := range l.Characters {
		if c.Pinyin == "" || c.Hanzi == "" {
			return ValidationError{
				Code:    "EMPTY_CHARACTER",
				Message: fmt.Sprintf("%s: character %d needs both pinyin and hanzi", name, i),
			}
		}
	}
	if n := len(l.Sounds()); n < MinSounds || n > MaxSounds {
		return ValidationError{
			Code:    "SOUND_COUNT",
			Message: fmt.Sprintf("%s: has %d distinct sounds, want %d..%d", name, n, MinSounds, MaxSounds),
		}
	}
	return nil
}

func validateSize(name string, w, h int) error {
	if w < MinBoardSize || w > MaxBoardSize || h < MinBoardSize || h > MaxBoardSize {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("%s: size %dx%d is outside %d..%d", name, w, h, MinBoardSize, MaxBoardSize),
		}
	}
	return nil
}
