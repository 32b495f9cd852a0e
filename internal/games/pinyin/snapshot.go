package pinyin

import "github.com/vovakirdan/pinyin-match/internal/match3"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateAnimating    GameStateType = "animating"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "endless"
	Level     int    // Current level (1-indexed)
	Target    int    // Points needed to clear the level, 0 in endless
	Score     int
	MovesLeft int
	Board     string // Board rows, see match3.Board.String
	Labels    []string
	Cursor    match3.Position
	Swaps     int
	Misses    int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	case g.layer != nil && g.layer.Busy():
		state = StateAnimating
	}

	s := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.levelIndex + 1,
		Score:     g.score,
		MovesLeft: g.movesLeft,
		Cursor:    g.cursor,
		Swaps:     g.swaps,
		Misses:    g.misses,
		State:     state,
	}
	if g.mode == ModeCampaign {
		s.Target = g.level.Target
	}
	if g.board != nil {
		s.Board = g.board.String()
	}
	if g.layer != nil {
		s.Labels = make([]string, len(g.layer.tiles))
		for i, t := range g.layer.tiles {
			if t != nil {
				s.Labels[i] = t.Label
			}
		}
	}
	return s
}
