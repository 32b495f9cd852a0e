package pinyin

import (
	"math/rand"

	"github.com/vovakirdan/pinyin-match/internal/config"
	"github.com/vovakirdan/pinyin-match/internal/core"
	"github.com/vovakirdan/pinyin-match/internal/match3"
)

// Animation constants
const (
	swapAnimationDuration  = 8  // ~133ms at 60fps
	clearAnimationDuration = 12 // ~200ms at 60fps
	fallAnimationDuration  = 10 // ~166ms at 60fps
)

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSwap
	PhaseClear
	PhaseFall
)

func (p AnimationPhase) duration() int {
	switch p {
	case PhaseSwap:
		return swapAnimationDuration
	case PhaseClear:
		return clearAnimationDuration
	case PhaseFall:
		return fallAnimationDuration
	}
	return 0
}

// tile is the visual state of one board piece.
type tile struct {
	Piece     match3.PieceID
	Char      config.CharacterConfig
	Label     string // Either Char.Pinyin or Char.Hanzi
	ShowHanzi bool
	Color     core.Color

	// Cell the tile animates from during swap and fall phases.
	FromRow float64
	FromCol float64
}

// ghost is a removed tile still shown while it pops.
type ghost struct {
	Pos  match3.Position
	Tile *tile
	Size int
}

// labeler chooses which character and which face (pinyin or hanzi) a new
// tile shows. It has its own random source so display settings never
// change the boards a seed produces.
type labeler struct {
	rng    *rand.Rand
	ratio  float64
	chars  map[match3.PieceID][]config.CharacterConfig
	colors map[match3.PieceID]core.Color
}

func newLabeler(seed int64, lvl config.LevelConfig, display config.DisplayConfig) *labeler {
	l := &labeler{
		rng:    rand.New(rand.NewSource(seed)),
		ratio:  display.HanziRatio,
		chars:  make(map[match3.PieceID][]config.CharacterConfig),
		colors: make(map[match3.PieceID]core.Color),
	}
	for _, c := range lvl.Characters {
		p := match3.PieceID(c.Pinyin)
		l.chars[p] = append(l.chars[p], c)
	}
	for i, s := range lvl.Sounds() {
		if display.ColorHints {
			l.colors[match3.PieceID(s)] = core.PaletteColor(i)
		} else {
			l.colors[match3.PieceID(s)] = core.ColorBrightWhite
		}
	}
	return l
}

func (l *labeler) tileFor(p match3.PieceID) *tile {
	ch := config.CharacterConfig{Pinyin: string(p), Hanzi: string(p)}
	if opts := l.chars[p]; len(opts) > 0 {
		ch = opts[l.rng.Intn(len(opts))]
	}
	t := &tile{Piece: p, Char: ch, Label: ch.Pinyin, Color: core.ColorBrightWhite}
	if l.rng.Float64() < l.ratio {
		t.Label = ch.Hanzi
		t.ShowHanzi = true
	}
	if c, ok := l.colors[p]; ok {
		t.Color = c
	}
	return t
}

// tileLayer is the presentation side of the board. It receives board
// events as they happen and replays them phase by phase over game ticks.
type tileLayer struct {
	width  int
	height int
	tiles  []*tile
	ghosts []ghost

	queue []match3.Event
	phase AnimationPhase
	ticks int

	labels *labeler
}

func newTileLayer(width, height int, labels *labeler) *tileLayer {
	return &tileLayer{
		width:  width,
		height: height,
		tiles:  make([]*tile, width*height),
		labels: labels,
	}
}

// Present queues a board event for playback.
func (l *tileLayer) Present(ev match3.Event) {
	l.queue = append(l.queue, ev)
}

// Busy reports whether events are still being played back.
func (l *tileLayer) Busy() bool {
	return l.phase != PhaseNone || len(l.queue) > 0
}

// Progress returns the eased progress of the current phase in [0, 1].
func (l *tileLayer) Progress() float64 {
	d := l.phase.duration()
	if d == 0 {
		return 1
	}
	return core.EaseOutQuad(float64(l.ticks) / float64(d))
}

// Tile returns the tile shown at p, or nil.
func (l *tileLayer) Tile(p match3.Position) *tile {
	if p.Row < 0 || p.Row >= l.height || p.Col < 0 || p.Col >= l.width {
		return nil
	}
	return l.tiles[p.Row*l.width+p.Col]
}

func (l *tileLayer) setTile(p match3.Position, t *tile) {
	l.tiles[p.Row*l.width+p.Col] = t
}

// advance moves playback forward by one tick.
func (l *tileLayer) advance() {
	if l.phase != PhaseNone {
		l.ticks++
		if l.ticks < l.phase.duration() {
			return
		}
		l.finishPhase()
	}
	l.startNextPhase()
}

// flush applies every queued event immediately.
func (l *tileLayer) flush() {
	for l.Busy() {
		if l.phase != PhaseNone {
			l.finishPhase()
		}
		l.startNextPhase()
	}
}

func (l *tileLayer) finishPhase() {
	l.phase = PhaseNone
	l.ticks = 0
	l.ghosts = l.ghosts[:0]
	for i, t := range l.tiles {
		if t != nil {
			t.FromRow = float64(i / l.width)
			t.FromCol = float64(i % l.width)
		}
	}
}

// startNextPhase consumes queued events up to the next phase boundary.
func (l *tileLayer) startNextPhase() {
	for len(l.queue) > 0 {
		ev := l.queue[0]
		switch ev.Kind {
		case match3.EventReset:
			l.queue = l.queue[1:]
			clear(l.tiles)
			l.ghosts = l.ghosts[:0]

		case match3.EventSettled:
			l.queue = l.queue[1:]

		case match3.EventSwap:
			l.queue = l.queue[1:]
			l.applySwap(ev.From, ev.To)
			l.begin(PhaseSwap)
			return

		case match3.EventRemove:
			for len(l.queue) > 0 && l.queue[0].Kind == match3.EventRemove {
				l.applyRemove(l.queue[0])
				l.queue = l.queue[1:]
			}
			l.begin(PhaseClear)
			return

		case match3.EventMove, match3.EventSpawn:
			for len(l.queue) > 0 && (l.queue[0].Kind == match3.EventMove || l.queue[0].Kind == match3.EventSpawn) {
				l.applyFall(l.queue[0])
				l.queue = l.queue[1:]
			}
			l.begin(PhaseFall)
			return

		default:
			l.queue = l.queue[1:]
		}
	}
}

func (l *tileLayer) begin(p AnimationPhase) {
	l.phase = p
	l.ticks = 0
}

func (l *tileLayer) applySwap(a, b match3.Position) {
	ta, tb := l.Tile(a), l.Tile(b)
	l.setTile(a, tb)
	l.setTile(b, ta)
	if ta != nil {
		ta.FromRow, ta.FromCol = float64(a.Row), float64(a.Col)
	}
	if tb != nil {
		tb.FromRow, tb.FromCol = float64(b.Row), float64(b.Col)
	}
}

func (l *tileLayer) applyRemove(ev match3.Event) {
	if t := l.Tile(ev.Pos); t != nil {
		l.ghosts = append(l.ghosts, ghost{Pos: ev.Pos, Tile: t, Size: ev.Size})
	}
	l.setTile(ev.Pos, nil)
}

func (l *tileLayer) applyFall(ev match3.Event) {
	switch ev.Kind {
	case match3.EventMove:
		t := l.Tile(ev.From)
		l.setTile(ev.From, nil)
		if t != nil {
			t.FromRow, t.FromCol = float64(ev.From.Row), float64(ev.From.Col)
		}
		l.setTile(ev.To, t)
	case match3.EventSpawn:
		t := l.labels.tileFor(ev.Piece)
		t.FromRow, t.FromCol = float64(ev.OriginRow), float64(ev.Pos.Col)
		l.setTile(ev.Pos, t)
	}
}

// position returns where the tile at cell p is drawn, in fractional cells.
func (l *tileLayer) position(p match3.Position, t *tile) (row, col float64) {
	if l.phase != PhaseSwap && l.phase != PhaseFall {
		return float64(p.Row), float64(p.Col)
	}
	k := l.Progress()
	return core.Lerp(t.FromRow, float64(p.Row), k), core.Lerp(t.FromCol, float64(p.Col), k)
}
