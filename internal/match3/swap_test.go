package match3

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestTrySwapCheckerboardReverts(t *testing.T) {
	rec := &Recorder{}
	tally := &Tally{}
	b := mustGrid(t, Config{Alphabet: alphabet("XY"), Presenter: rec, Scorer: tally},
		"XYX",
		"YXY",
		"XYX",
	)

	res, err := b.TrySwap(Pos(0, 0), Pos(0, 1))
	if err != nil {
		t.Fatalf("TrySwap() error = %v", err)
	}
	if res.Outcome != OutcomeNoOp {
		t.Errorf("Outcome = %v, expected NoOp", res.Outcome)
	}
	assertRows(t, b, "XYX", "YXY", "XYX")

	if len(tally.Awards) != 0 {
		t.Errorf("awards = %v, expected none", tally.Awards)
	}
	swaps := rec.Kind(EventSwap)
	if len(swaps) != 2 {
		t.Fatalf("swap events = %d, expected swap and revert", len(swaps))
	}
	if swaps[1].From != Pos(0, 1) || swaps[1].To != Pos(0, 0) {
		t.Errorf("revert event = %v", swaps[1])
	}
	if len(rec.Kind(EventRemove)) != 0 || len(rec.Kind(EventSettled)) != 0 {
		t.Errorf("no-op swap emitted resolve events: %v", rec.Events)
	}
	if b.State() != StateIdle {
		t.Errorf("State() = %v, expected Idle", b.State())
	}
}

func TestTrySwapIdenticalPiecesIsNoOp(t *testing.T) {
	b := mustGrid(t, Config{Alphabet: alphabet("XY")},
		"XXY",
		"YYX",
	)
	res, err := b.TrySwap(Pos(0, 0), Pos(0, 1))
	if err != nil {
		t.Fatalf("TrySwap() error = %v", err)
	}
	if res.Outcome != OutcomeNoOp {
		t.Errorf("Outcome = %v, expected NoOp", res.Outcome)
	}
	assertRows(t, b, "XXY", "YYX")
}

func TestTrySwapRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want error
	}{
		{"not adjacent", Pos(0, 0), Pos(0, 2), ErrInvalidSwap},
		{"diagonal", Pos(0, 0), Pos(1, 1), ErrInvalidSwap},
		{"same cell", Pos(1, 1), Pos(1, 1), ErrInvalidSwap},
		{"empty cell", Pos(2, 1), Pos(2, 2), ErrInvalidSwap},
		{"out of bounds", Pos(0, 2), Pos(0, 3), ErrOutOfBounds},
		{"negative", Pos(-1, 0), Pos(0, 0), ErrOutOfBounds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &Recorder{}
			b := mustGrid(t, Config{Alphabet: alphabet("XY"), Presenter: rec},
				"XYX",
				"YXY",
				"XY.",
			)
			_, err := b.TrySwap(tc.a, tc.b)
			if !errors.Is(err, tc.want) {
				t.Errorf("TrySwap(%v, %v) error = %v, expected %v", tc.a, tc.b, err, tc.want)
			}
			assertRows(t, b, "XYX", "YXY", "XY.")
			if len(rec.Events) != 0 {
				t.Errorf("rejected swap emitted events: %v", rec.Events)
			}
		})
	}
}

func TestTrySwapRowOfFive(t *testing.T) {
	rec := &Recorder{}
	tally := &Tally{}
	// Refill C B C leaves a dead row, so the board regenerates with A A B A C.
	src := &scripted{seq: []int{2, 1, 2, 0, 0, 1, 0, 2}}
	b := mustGrid(t, Config{
		Alphabet:  alphabet("ABC"),
		Rand:      src,
		Presenter: rec,
		Scorer:    tally,
	}, "AABAA")

	res, err := b.TrySwap(Pos(0, 2), Pos(0, 3))
	if err != nil {
		t.Fatalf("TrySwap() error = %v", err)
	}
	if res.Outcome != OutcomeResolved {
		t.Fatalf("Outcome = %v, expected Resolved", res.Outcome)
	}
	if !reflect.DeepEqual(tally.Awards, []int{3}) {
		t.Errorf("awards = %v, expected [3]", tally.Awards)
	}
	if res.Cleared != 3 || res.Points != 3 || res.Cascades != 1 {
		t.Errorf("result = %+v, expected 3 cleared, 3 points, 1 cascade", res)
	}

	var removed []Position
	for _, ev := range rec.Kind(EventRemove) {
		removed = append(removed, ev.Pos)
		if ev.Size != 3 {
			t.Errorf("remove %v size = %d, expected 3", ev.Pos, ev.Size)
		}
	}
	if want := []Position{Pos(0, 0), Pos(0, 1), Pos(0, 2)}; !reflect.DeepEqual(removed, want) {
		t.Errorf("removed = %v, expected %v", removed, want)
	}

	if !res.Regenerated || res.Attempts != 1 {
		t.Errorf("Regenerated = %v, Attempts = %d, expected regeneration on first attempt", res.Regenerated, res.Attempts)
	}
	assertRows(t, b, "AABAC")
}

func TestTrySwapLShape(t *testing.T) {
	rec := &Recorder{}
	tally := &Tally{}
	b := mustGrid(t, Config{
		Alphabet:  alphabet("ABCDZ"),
		Rand:      &scripted{seq: []int{3, 0, 2, 3, 4}},
		Presenter: rec,
		Scorer:    tally,
	},
		"ABZD",
		"BAZC",
		"ZZCZ",
	)

	res, err := b.TrySwap(Pos(2, 2), Pos(2, 3))
	if err != nil {
		t.Fatalf("TrySwap() error = %v", err)
	}
	if res.Outcome != OutcomeResolved {
		t.Fatalf("Outcome = %v, expected Resolved", res.Outcome)
	}
	if len(res.Runs) != 2 {
		t.Errorf("runs = %d, expected 2", len(res.Runs))
	}
	if !reflect.DeepEqual(tally.Awards, []int{3, 3}) {
		t.Errorf("awards = %v, expected [3 3]", tally.Awards)
	}
	if res.Cleared != 5 {
		t.Errorf("Cleared = %d, expected 5", res.Cleared)
	}

	removes := rec.Kind(EventRemove)
	if len(removes) != 5 {
		t.Fatalf("remove events = %d, expected 5", len(removes))
	}
	for _, ev := range removes {
		if ev.Piece != "Z" {
			t.Errorf("removed %v = %q, expected Z", ev.Pos, ev.Piece)
		}
	}

	moves := rec.Kind(EventMove)
	wantMoves := []Move{
		{Pos(1, 0), Pos(2, 0)}, {Pos(0, 0), Pos(1, 0)},
		{Pos(1, 1), Pos(2, 1)}, {Pos(0, 1), Pos(1, 1)},
	}
	if len(moves) != len(wantMoves) {
		t.Fatalf("move events = %v, expected %v", moves, wantMoves)
	}
	for i, ev := range moves {
		if ev.From != wantMoves[i].From || ev.To != wantMoves[i].To {
			t.Errorf("move %d = %v, expected %v", i, ev, wantMoves[i])
		}
	}

	origins := map[Position]int{}
	for _, ev := range rec.Kind(EventSpawn) {
		origins[ev.Pos] = ev.OriginRow
	}
	wantOrigins := map[Position]int{
		Pos(0, 0): -1, Pos(0, 1): -1,
		Pos(0, 2): -3, Pos(1, 2): -2, Pos(2, 2): -1,
	}
	if !reflect.DeepEqual(origins, wantOrigins) {
		t.Errorf("spawn origins = %v, expected %v", origins, wantOrigins)
	}

	if res.Regenerated {
		t.Error("board should still have a move, got regeneration")
	}
	assertRows(t, b, "DACD", "ABDC", "BAZC")
	assertSettled(t, b)
	if last := rec.Events[len(rec.Events)-1]; last.Kind != EventSettled {
		t.Errorf("last event = %v, expected Settled", last)
	}
}

func TestTrySwapMatchAwayFromSwappedPair(t *testing.T) {
	tally := &Tally{}
	// An unsettled fixture: the bottom row already matches, so any legal
	// swap resolves it.
	b := mustGrid(t, Config{
		Alphabet: alphabet("ABCD"),
		Rand:     &scripted{seq: []int{2, 2, 0}},
		Scorer:   tally,
	},
		"ABC",
		"CDB",
		"DDD",
	)
	res, err := b.TrySwap(Pos(0, 0), Pos(0, 1))
	if err != nil {
		t.Fatalf("TrySwap() error = %v", err)
	}
	if res.Outcome != OutcomeResolved {
		t.Errorf("Outcome = %v, expected Resolved", res.Outcome)
	}
	if !reflect.DeepEqual(tally.Awards, []int{3}) {
		t.Errorf("awards = %v, expected [3]", tally.Awards)
	}
	if res.Regenerated {
		t.Error("unexpected regeneration")
	}
	assertRows(t, b, "CCA", "BAC", "CDB")
}

type reentrantPresenter struct {
	b   *Board
	err error
}

func (p *reentrantPresenter) Present(ev Event) {
	if ev.Kind == EventSwap && p.err == nil {
		_, p.err = p.b.TrySwap(Pos(0, 0), Pos(1, 0))
	}
}

func TestTrySwapReentrant(t *testing.T) {
	pr := &reentrantPresenter{}
	b := mustGrid(t, Config{Alphabet: alphabet("XY"), Presenter: pr},
		"XYX",
		"YXY",
		"XYX",
	)
	pr.b = b

	if _, err := b.TrySwap(Pos(0, 0), Pos(0, 1)); err != nil {
		t.Fatalf("TrySwap() error = %v", err)
	}
	if !errors.Is(pr.err, ErrSwapInProgress) {
		t.Errorf("nested TrySwap error = %v, expected ErrSwapInProgress", pr.err)
	}
	assertRows(t, b, "XYX", "YXY", "XYX")
}

// kindReentrant calls TrySwap the first time it sees an event of kind.
type kindReentrant struct {
	b     *Board
	kind  EventKind
	calls int
	err   error
}

func (p *kindReentrant) Present(ev Event) {
	if ev.Kind == p.kind && p.b != nil && p.calls == 0 {
		p.calls++
		_, p.err = p.b.TrySwap(Pos(0, 0), Pos(0, 1))
	}
}

func TestPublicPassesRejectSwap(t *testing.T) {
	tests := []struct {
		name string
		kind EventKind
		run  func(b *Board)
	}{
		{"Resolve", EventRemove, func(b *Board) { b.Resolve() }},
		{"Generate", EventReset, func(b *Board) { b.Generate() }},
		{"Regenerate", EventReset, func(b *Board) { b.Regenerate() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pr := &kindReentrant{kind: tc.kind}
			b := mustGrid(t, Config{Alphabet: alphabet("ABCD"), Presenter: pr, Rand: rand.New(rand.NewSource(3))},
				"AAAB",
				"CDBC",
				"BCDA",
			)
			pr.b = b

			tc.run(b)
			if pr.calls != 1 {
				t.Fatalf("presenter saw %d %v events, expected 1", pr.calls, tc.kind)
			}
			if !errors.Is(pr.err, ErrSwapInProgress) {
				t.Errorf("TrySwap during %s error = %v, expected ErrSwapInProgress", tc.name, pr.err)
			}
			if b.State() != StateIdle {
				t.Errorf("State() = %v after %s, expected Idle", b.State(), tc.name)
			}
		})
	}
}
