// Package match3 implements the tile-matching board engine: grid model,
// swap validation, run detection, cascading removal with gravity and refill,
// and the search for any remaining legal move.
//
// The package is pure: it performs no I/O and keeps no global state. All
// randomness comes from the Source passed in Config, so a seeded source
// reproduces the same boards and cascades.
package match3

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// PieceID is the matching identity of a tile. Tiles match when their ids
// are equal, regardless of how they are displayed.
type PieceID string

// NoPiece marks an empty cell.
const NoPiece PieceID = ""

// Defaults for Config fields left at zero.
const (
	DefaultMaxRegenerateAttempts = 100
	DefaultMaxCascades           = 1000
	MinRunLength                 = 3
)

// Source is the random source used for generation and refill.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Config describes a board.
type Config struct {
	Width  int
	Height int

	// Alphabet lists the pieces drawn uniformly on fill. Repeated entries
	// weight the draw.
	Alphabet []PieceID

	// Rand drives generation and refill. A time-seeded source is used
	// when nil.
	Rand Source

	// MaxRegenerateAttempts bounds Regenerate before ErrUnsolvable.
	MaxRegenerateAttempts int

	// MaxCascades bounds a single resolve pass.
	MaxCascades int

	Presenter Presenter
	Scorer    Scorer
}

// State is the swap protocol state.
type State int

const (
	StateIdle State = iota
	StateSwapping
	StateReverting
	StateResolving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSwapping:
		return "Swapping"
	case StateReverting:
		return "Reverting"
	case StateResolving:
		return "Resolving"
	default:
		return "Unknown"
	}
}

// enter switches to s until the returned func is called.
func (b *Board) enter(s State) func() {
	prev := b.state
	b.state = s
	return func() { b.state = prev }
}

// Board is a rectangular grid of pieces. It is not safe for concurrent
// use; callers serialize access.
type Board struct {
	width  int
	height int
	cells  []PieceID

	alphabet    []PieceID
	rng         Source
	maxAttempts int
	maxCascades int
	presenter   Presenter
	scorer      Scorer

	state State
}

// New builds a board, fills it and guarantees it is settled with at least
// one legal move. It returns ErrUnsolvable if no such board was found within
// MaxRegenerateAttempts.
func New(cfg Config) (*Board, error) {
	b, err := newBoard(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := b.Regenerate(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFromGrid builds a board from explicit rows without generating or
// resolving it. Width and Height are taken from the grid when zero.
func NewFromGrid(cfg Config, rows [][]PieceID) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidSize)
	}
	if cfg.Height == 0 {
		cfg.Height = len(rows)
	}
	if cfg.Width == 0 {
		cfg.Width = len(rows[0])
	}
	b, err := newBoard(cfg)
	if err != nil {
		return nil, err
	}
	if len(rows) != b.height {
		return nil, fmt.Errorf("%w: grid has %d rows, want %d", ErrInvalidSize, len(rows), b.height)
	}
	for r, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, r, len(row), b.width)
		}
		copy(b.cells[r*b.width:(r+1)*b.width], row)
	}
	return b, nil
}

func newBoard(cfg Config) (*Board, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if len(cfg.Alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	for i, p := range cfg.Alphabet {
		if p == NoPiece {
			return nil, fmt.Errorf("%w: piece %d has an empty id", ErrEmptyAlphabet, i)
		}
	}

	b := &Board{
		width:       cfg.Width,
		height:      cfg.Height,
		cells:       make([]PieceID, cfg.Width*cfg.Height),
		alphabet:    append([]PieceID(nil), cfg.Alphabet...),
		rng:         cfg.Rand,
		maxAttempts: cfg.MaxRegenerateAttempts,
		maxCascades: cfg.MaxCascades,
		presenter:   cfg.Presenter,
		scorer:      cfg.Scorer,
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.maxAttempts <= 0 {
		b.maxAttempts = DefaultMaxRegenerateAttempts
	}
	if b.maxCascades <= 0 {
		b.maxCascades = DefaultMaxCascades
	}
	if b.presenter == nil {
		b.presenter = nopPresenter{}
	}
	if b.scorer == nil {
		b.scorer = nopScorer{}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// State returns the current swap protocol state.
func (b *Board) State() State { return b.state }

// Alphabet returns a copy of the configured pieces.
func (b *Board) Alphabet() []PieceID {
	return append([]PieceID(nil), b.alphabet...)
}

// InBounds reports whether p addresses a cell of the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

func (b *Board) index(p Position) int {
	return p.Row*b.width + p.Col
}

// at reads a cell without bounds checking.
func (b *Board) at(p Position) PieceID {
	return b.cells[b.index(p)]
}

func (b *Board) put(p Position, v PieceID) {
	b.cells[b.index(p)] = v
}

// Get returns the piece at p, or NoPiece for an empty cell.
func (b *Board) Get(p Position) (PieceID, error) {
	if !b.InBounds(p) {
		return NoPiece, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return b.at(p), nil
}

// Set writes v at p unconditionally. It is meant for fixtures and tools;
// gameplay changes go through TrySwap.
func (b *Board) Set(p Position, v PieceID) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	b.put(p, v)
	return nil
}

// SwapCells exchanges the contents of a and b without adjacency or match
// checks. Both cells must be occupied.
func (b *Board) SwapCells(p, q Position) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if !b.InBounds(q) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, q)
	}
	if b.at(p) == NoPiece || b.at(q) == NoPiece {
		return fmt.Errorf("%w: empty cell in %v<->%v", ErrInvalidSwap, p, q)
	}
	b.swap(p, q)
	return nil
}

func (b *Board) swap(p, q Position) {
	i, j := b.index(p), b.index(q)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Cells returns a copy of the grid, one slice per row.
func (b *Board) Cells() [][]PieceID {
	rows := make([][]PieceID, b.height)
	for r := range rows {
		rows[r] = append([]PieceID(nil), b.cells[r*b.width:(r+1)*b.width]...)
	}
	return rows
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == NoPiece {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, "." for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.cells[r*b.width+c]
			if v == NoPiece {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(v))
		}
	}
	return sb.String()
}

func (b *Board) emit(ev Event) {
	b.presenter.Present(ev)
}

func (b *Board) randomPiece() PieceID {
	return b.alphabet[b.rng.Intn(len(b.alphabet))]
}
