package match3

import "fmt"

// Outcome describes how a swap attempt ended.
type Outcome int

const (
	// OutcomeNoOp means the swap produced no match and was reverted.
	OutcomeNoOp Outcome = iota
	// OutcomeResolved means the swap matched and the board was resolved.
	OutcomeResolved
)

func (o Outcome) String() string {
	if o == OutcomeResolved {
		return "Resolved"
	}
	return "NoOp"
}

// SwapResult reports the effect of a successful TrySwap call.
type SwapResult struct {
	Outcome  Outcome
	Cleared  int
	Points   int
	Cascades int
	Runs     []Run

	// Regenerated is set when the settled board had no legal move left and
	// was replaced.
	Regenerated bool
	Attempts    int
}

// TrySwap attempts to exchange two adjacent pieces. A swap that creates no
// run anywhere on the board is reverted and reported as OutcomeNoOp. A
// matching swap is resolved to a stable board, after which the board is
// regenerated if no legal move remains.
//
// Errors leave the board untouched.
func (b *Board) TrySwap(p, q Position) (SwapResult, error) {
	if b.state != StateIdle {
		return SwapResult{}, fmt.Errorf("%w: state %v", ErrSwapInProgress, b.state)
	}
	if !b.InBounds(p) {
		return SwapResult{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if !b.InBounds(q) {
		return SwapResult{}, fmt.Errorf("%w: %v", ErrOutOfBounds, q)
	}
	if !p.Adjacent(q) {
		return SwapResult{}, fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidSwap, p, q)
	}
	if b.at(p) == NoPiece || b.at(q) == NoPiece {
		return SwapResult{}, fmt.Errorf("%w: empty cell in %v<->%v", ErrInvalidSwap, p, q)
	}

	b.state = StateSwapping
	b.swap(p, q)
	b.emit(Event{Kind: EventSwap, From: p, To: q})

	if !b.HasAnyMatch() {
		b.state = StateReverting
		b.swap(p, q)
		b.emit(Event{Kind: EventSwap, From: q, To: p})
		b.state = StateIdle
		return SwapResult{Outcome: OutcomeNoOp}, nil
	}

	b.state = StateResolving
	rep := b.resolve(b.presenter, b.scorer)
	b.emit(Event{Kind: EventSettled})
	b.state = StateIdle

	res := SwapResult{
		Outcome:  OutcomeResolved,
		Cleared:  rep.Cleared,
		Points:   rep.Points,
		Cascades: rep.Cascades,
		Runs:     rep.Runs,
	}
	if rep.Settled && b.HasPossibleMove() {
		return res, nil
	}

	res.Regenerated = true
	attempts, err := b.Regenerate()
	res.Attempts = attempts
	return res, err
}
