package pinyin

import (
	"testing"

	"github.com/vovakirdan/pinyin-match/internal/config"
	"github.com/vovakirdan/pinyin-match/internal/core"
	"github.com/vovakirdan/pinyin-match/internal/match3"
)

var testLevel = config.LevelConfig{
	ID:   1,
	Name: "Test",
	Characters: []config.CharacterConfig{
		{Pinyin: "mù", Hanzi: "木"},
		{Pinyin: "mù", Hanzi: "目"},
		{Pinyin: "shān", Hanzi: "山"},
		{Pinyin: "rén", Hanzi: "人"},
	},
}

func spawnRow(l *tileLayer, pieces ...match3.PieceID) {
	l.Present(match3.Event{Kind: match3.EventReset})
	for c, p := range pieces {
		l.Present(match3.Event{Kind: match3.EventSpawn, Pos: match3.Pos(0, c), Piece: p, OriginRow: -1})
	}
	l.Present(match3.Event{Kind: match3.EventSettled})
}

func TestLabelerRatio(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		hanzi bool
	}{
		{"always pinyin", 0, false},
		{"always hanzi", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLabeler(1, testLevel, config.DisplayConfig{HanziRatio: tt.ratio})
			for range 20 {
				tl := l.tileFor("mù")
				if tl.ShowHanzi != tt.hanzi {
					t.Fatalf("ShowHanzi = %v, expected %v", tl.ShowHanzi, tt.hanzi)
				}
				want := tl.Char.Pinyin
				if tt.hanzi {
					want = tl.Char.Hanzi
				}
				if tl.Label != want {
					t.Errorf("Label = %q, expected %q", tl.Label, want)
				}
				if tl.Char.Hanzi != "木" && tl.Char.Hanzi != "目" {
					t.Errorf("Char = %q, expected a character read mù", tl.Char.Hanzi)
				}
			}
		})
	}
}

func TestLabelerColors(t *testing.T) {
	l := newLabeler(1, testLevel, config.DisplayConfig{ColorHints: true})
	if got := l.tileFor("mù").Color; got != core.PaletteColor(0) {
		t.Errorf("mù color = %v, expected %v", got, core.PaletteColor(0))
	}
	if got := l.tileFor("rén").Color; got != core.PaletteColor(2) {
		t.Errorf("rén color = %v, expected %v", got, core.PaletteColor(2))
	}

	l = newLabeler(1, testLevel, config.DisplayConfig{})
	if got := l.tileFor("shān").Color; got != core.ColorBrightWhite {
		t.Errorf("color without hints = %v, expected %v", got, core.ColorBrightWhite)
	}
}

func TestLayerFallPhase(t *testing.T) {
	l := newTileLayer(3, 1, newLabeler(1, testLevel, config.DisplayConfig{}))
	spawnRow(l, "mù", "shān", "rén")

	if !l.Busy() {
		t.Fatal("queued events should make the layer busy")
	}
	l.advance()
	if l.phase != PhaseFall {
		t.Fatalf("phase = %v, expected fall", l.phase)
	}
	tl := l.Tile(match3.Pos(0, 1))
	if tl == nil || tl.Piece != "shān" {
		t.Fatalf("tile at (0,1) = %v, expected shān", tl)
	}
	if r, _ := l.position(match3.Pos(0, 1), tl); r != -1 {
		t.Errorf("start row = %v, expected -1", r)
	}

	for range fallAnimationDuration - 1 {
		l.advance()
	}
	if !l.Busy() {
		t.Error("fall phase ended early")
	}
	l.advance()
	if l.Busy() {
		t.Error("layer should be idle after the fall phase")
	}
	if r, c := l.position(match3.Pos(0, 1), tl); r != 0 || c != 1 {
		t.Errorf("resting position = (%v,%v), expected (0,1)", r, c)
	}
}

func TestLayerSwapAndClear(t *testing.T) {
	l := newTileLayer(3, 1, newLabeler(1, testLevel, config.DisplayConfig{}))
	spawnRow(l, "mù", "shān", "rén")
	l.flush()

	a := l.Tile(match3.Pos(0, 0))
	l.Present(match3.Event{Kind: match3.EventSwap, From: match3.Pos(0, 0), To: match3.Pos(0, 1)})
	l.advance()

	if l.phase != PhaseSwap {
		t.Fatalf("phase = %v, expected swap", l.phase)
	}
	if l.Tile(match3.Pos(0, 1)) != a {
		t.Fatal("swapped tile should occupy its new cell")
	}
	if _, c := l.position(match3.Pos(0, 1), a); c != 0 {
		t.Errorf("swap start col = %v, expected 0", c)
	}

	l.Present(match3.Event{Kind: match3.EventRemove, Pos: match3.Pos(0, 2), Size: 3})
	l.Present(match3.Event{Kind: match3.EventRemove, Pos: match3.Pos(0, 1), Size: 3})
	for range swapAnimationDuration {
		l.advance()
	}
	if l.phase != PhaseClear {
		t.Fatalf("phase = %v, expected clear", l.phase)
	}
	if len(l.ghosts) != 2 {
		t.Errorf("ghosts = %d, expected 2", len(l.ghosts))
	}
	if l.Tile(match3.Pos(0, 2)) != nil {
		t.Error("removed cell should be empty")
	}

	l.flush()
	if len(l.ghosts) != 0 {
		t.Errorf("ghosts = %d after flush, expected 0", len(l.ghosts))
	}
}

func TestLayerMove(t *testing.T) {
	l := newTileLayer(1, 3, newLabeler(1, testLevel, config.DisplayConfig{}))
	l.Present(match3.Event{Kind: match3.EventSpawn, Pos: match3.Pos(0, 0), Piece: "rén"})
	l.flush()

	tl := l.Tile(match3.Pos(0, 0))
	l.Present(match3.Event{Kind: match3.EventMove, From: match3.Pos(0, 0), To: match3.Pos(2, 0)})
	l.Present(match3.Event{Kind: match3.EventSpawn, Pos: match3.Pos(0, 0), Piece: "mù", OriginRow: -1})
	l.advance()

	if l.Tile(match3.Pos(2, 0)) != tl {
		t.Error("moved tile should land at (2,0)")
	}
	if l.Tile(match3.Pos(1, 0)) != nil {
		t.Error("(1,0) should stay empty")
	}
	if got := l.Tile(match3.Pos(0, 0)); got == nil || got.Piece != "mù" {
		t.Errorf("spawned tile = %v, expected mù", got)
	}
	if r, _ := l.position(match3.Pos(2, 0), tl); r != 0 {
		t.Errorf("fall start row = %v, expected 0", r)
	}
}
