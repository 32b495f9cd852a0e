package pinyin

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pinyin-match/internal/config"
	"github.com/vovakirdan/pinyin-match/internal/core"
	"github.com/vovakirdan/pinyin-match/internal/match3"
	"github.com/vovakirdan/pinyin-match/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// End reasons reported in RunStats.
const (
	EndWon        = "won"
	EndOutOfMoves = "out_of_moves"
	EndUnsolvable = "unsolvable"
	EndQuit       = "quit"
)

const (
	levelClearDelay = 120 // Auto-advance after 2 seconds at 60fps
	messageDuration = 90
	hintDuration    = 120
)

// Game implements the pinyin match game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	seed int64
	tick uint64

	cfg      config.PinyinConfig
	fixedCfg *config.PinyinConfig // Set by NewWithConfig, bypasses loading
	levels   []config.LevelConfig

	board  *match3.Board
	layer  *tileLayer
	level  config.LevelConfig
	cursor match3.Position

	score           int
	levelStartScore int
	movesLeft       int
	levelIndex      int
	startLevel      int // 1-based, set by StartAt; 0 uses SetStartLevel

	selected    bool
	selectedPos match3.Position
	hint        *match3.Move
	hintTicks   int
	message     string
	msgTicks    int

	swaps         int
	misses        int
	cascades      int
	regenerations int
	endReason     string

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode Mode, cfg config.PinyinConfig) *Game {
	return &Game{mode: mode, fixedCfg: &cfg}
}

// StartAt makes every Reset of this game start from the given campaign
// level (1-based).
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

func init() {
	registry.Register("pinyin", func() registry.Game {
		return New()
	})
	registry.Register("pinyin_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "pinyin_endless"
	}
	return "pinyin"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Pinyin Match (Endless)"
	}
	return "Pinyin Match"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.swaps, g.misses, g.cascades, g.regenerations = 0, 0, 0, 0
	g.endReason = ""
	g.message, g.msgTicks = "", 0

	g.cfg = g.loadConfig()
	g.levels = g.cfg.Levels

	// Apply selected start level (campaign only)
	g.levelIndex = 0
	start := g.startLevel
	if start == 0 {
		start = selectedStart
		selectedStart = 0 // Reset after use
	}
	if g.mode == ModeCampaign && start > 0 && start <= len(g.levels) {
		g.levelIndex = start - 1
	}

	g.loadLevel()
}

func (g *Game) loadConfig() config.PinyinConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := LoadConfig()
	if err != nil {
		g.flash("Config error, using defaults")
		return config.DefaultPinyinConfig()
	}
	return cfg
}

// loadLevel builds a fresh board for the current level.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.level = g.cfg.EndlessLevel()
	} else {
		g.level = g.levels[g.levelIndex]
	}

	w, h := g.level.Size(g.cfg.Board)
	// Labels get their own stream derived from the seed and level.
	labels := newLabeler(g.seed+int64(g.levelIndex)+1, g.level, g.cfg.Display)
	g.layer = newTileLayer(w, h, labels)

	bc := BoardConfig(g.cfg, g.level, g.rng)
	bc.Presenter = g.layer
	bc.Scorer = g

	g.movesLeft = g.level.Moves
	g.levelStartScore = g.score
	g.cursor = match3.Pos(h/2, w/2)
	g.selected = false
	g.hint = nil
	g.checkScreenSize(w, h)

	board, err := match3.New(bc)
	if err != nil {
		g.board = nil
		g.endGame(EndUnsolvable)
		g.flash("Could not build a playable board")
		return
	}
	g.board = board
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize(w, h int) {
	boardW, boardH := boardSize(w, h)
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+footerHeight
}

// Resize updates the layout for a new terminal size, keeping the game.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.layer != nil {
		g.checkScreenSize(g.layer.width, g.layer.height)
	}
}

// AwardScore receives points for each cleared run from the board.
func (g *Game) AwardScore(points int) {
	g.score += points
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.msgTicks > 0 {
		g.msgTicks--
	}
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}

	if g.layer != nil {
		g.layer.advance()
	}

	// Handle level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay || in.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Don't process moves if game over or won
	if g.gameOver || g.won || g.board == nil {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return core.StepResult{State: g.State()}
}

// handleInput turns cursor movement and selection into swap attempts.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		g.selected = false
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}

	dir, moved := directionOf(in)

	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		if g.selected && g.selectedPos == g.cursor {
			g.selected = false
		} else if g.selected && g.selectedPos.Adjacent(g.cursor) {
			g.trySwap(g.selectedPos, g.cursor)
			return
		} else {
			g.selected = true
			g.selectedPos = g.cursor
		}
	}

	if !moved {
		return
	}

	if g.selected {
		target := g.selectedPos.Step(dir)
		if !g.board.InBounds(target) {
			// Swiping off the board does nothing.
			return
		}
		g.cursor = target
		g.trySwap(g.selectedPos, target)
		return
	}

	next := g.cursor.Step(dir)
	next.Row = core.Clamp(next.Row, 0, g.board.Height()-1)
	next.Col = core.Clamp(next.Col, 0, g.board.Width()-1)
	g.cursor = next
}

func directionOf(in core.InputFrame) (match3.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return match3.DirUp, true
	case in.Has(core.ActionDown):
		return match3.DirDown, true
	case in.Has(core.ActionLeft):
		return match3.DirLeft, true
	case in.Has(core.ActionRight):
		return match3.DirRight, true
	}
	return match3.DirUp, false
}

// trySwap submits a swap to the board once the previous one has finished
// playing back.
func (g *Game) trySwap(a, b match3.Position) {
	if g.layer.Busy() {
		return
	}
	g.selected = false
	g.hint = nil
	g.hintTicks = 0

	res, err := g.board.TrySwap(a, b)
	unsolvable := errors.Is(err, match3.ErrUnsolvable)
	if err != nil && !unsolvable {
		g.flash("Can't swap there")
		return
	}

	if res.Outcome == match3.OutcomeNoOp {
		g.misses++
		g.flash("No match")
		return
	}

	// The swap resolved even when no playable board could follow it.
	g.swaps++
	g.cascades += res.Cascades
	g.movesLeft--
	if res.Regenerated {
		g.regenerations++
	}
	switch {
	case unsolvable:
		g.flash("No playable board left")
	case res.Regenerated:
		g.flash("No moves left - new board")
	case res.Cascades > 1:
		g.flash(fmt.Sprintf("Combo x%d! +%d", res.Cascades, res.Points))
	default:
		g.flash(fmt.Sprintf("+%d", res.Points))
	}

	if g.mode == ModeCampaign && g.LevelScore() >= g.level.Target {
		g.levelCleared = true
		g.levelClearTicks = 0
		return
	}
	switch {
	case unsolvable:
		g.endGame(EndUnsolvable)
	case g.movesLeft <= 0:
		g.endGame(EndOutOfMoves)
	}
}

func (g *Game) showHint() {
	if !g.cfg.Display.Hints || g.layer.Busy() {
		return
	}
	m, ok := g.board.FindPossibleMove()
	if !ok {
		return
	}
	g.hint = &m
	g.hintTicks = hintDuration
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.levels)-1 {
		// Completed all levels
		g.won = true
		g.endReason = EndWon
		return
	}

	g.levelIndex++
	g.loadLevel()
}

func (g *Game) endGame(reason string) {
	g.gameOver = true
	g.endReason = reason
	g.selected = false
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.msgTicks = messageDuration
}

// LevelScore returns the points earned on the current level.
func (g *Game) LevelScore() int {
	return g.score - g.levelStartScore
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
		Won:      g.won,
	}
}

// RunStats summarizes the game for the score database.
func (g *Game) RunStats() core.RunStats {
	reason := g.endReason
	if reason == "" {
		reason = EndQuit
	}
	return core.RunStats{
		Level:         g.levelIndex + 1,
		Swaps:         g.swaps,
		Misses:        g.misses,
		Cascades:      g.cascades,
		Regenerations: g.regenerations,
		Ticks:         int(g.tick),
		EndReason:     reason,
	}
}
