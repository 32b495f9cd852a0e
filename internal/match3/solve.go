package match3

import "fmt"

// HasPossibleMove reports whether some swap of two adjacent pieces would
// create a run. The board is left exactly as it was.
func (b *Board) HasPossibleMove() bool {
	_, ok := b.FindPossibleMove()
	return ok
}

// FindPossibleMove returns the first legal swap in row-major order,
// trying the right neighbour before the one below.
func (b *Board) FindPossibleMove() (Move, bool) {
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			p := Position{Row: r, Col: c}
			for _, q := range [...]Position{{Row: r, Col: c + 1}, {Row: r + 1, Col: c}} {
				if b.trySimulated(p, q) {
					return Move{From: p, To: q}, true
				}
			}
		}
	}
	return Move{}, false
}

// PossibleMoves counts every legal swap on the board.
func (b *Board) PossibleMoves() int {
	n := 0
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			p := Position{Row: r, Col: c}
			for _, q := range [...]Position{{Row: r, Col: c + 1}, {Row: r + 1, Col: c}} {
				if b.trySimulated(p, q) {
					n++
				}
			}
		}
	}
	return n
}

func (b *Board) trySimulated(p, q Position) bool {
	if !b.InBounds(q) {
		return false
	}
	if b.at(p) == NoPiece || b.at(q) == NoPiece {
		return false
	}
	b.swap(p, q)
	ok := b.HasAnyMatch()
	b.swap(p, q)
	return ok
}

// Generate replaces the whole board with a random settled fill and
// announces it. It does not check for remaining moves; use Regenerate for
// that. It reports whether the fill settled within MaxCascades.
func (b *Board) Generate() bool {
	defer b.enter(StateResolving)()
	settled := b.generate()
	b.announce()
	return settled
}

// Regenerate generates boards until one is settled and has a legal move,
// giving up with ErrUnsolvable after MaxRegenerateAttempts. Only the final
// board is announced to the Presenter.
func (b *Board) Regenerate() (int, error) {
	defer b.enter(StateResolving)()
	for attempt := 1; attempt <= b.maxAttempts; attempt++ {
		if b.generate() && b.HasPossibleMove() {
			b.announce()
			return attempt, nil
		}
	}
	b.announce()
	return b.maxAttempts, fmt.Errorf("%w: gave up after %d attempts", ErrUnsolvable, b.maxAttempts)
}

// generate fills every cell and removes accidental runs without reporting
// events or awarding points.
func (b *Board) generate() bool {
	for i := range b.cells {
		b.cells[i] = NoPiece
	}
	b.refill(nopPresenter{}, 0)
	return b.resolve(nopPresenter{}, nopScorer{}).Settled
}

func (b *Board) announce() {
	b.emit(Event{Kind: EventReset})
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			p := Position{Row: r, Col: c}
			b.emit(Event{Kind: EventSpawn, Pos: p, Piece: b.at(p), OriginRow: r - b.height})
		}
	}
	b.emit(Event{Kind: EventSettled})
}
