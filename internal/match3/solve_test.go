package match3

import (
	"errors"
	"math/rand"
	"testing"
)

func TestHasPossibleMove(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{"all distinct", []string{"ABC", "DEF", "GHI"}, false},
		{"checkerboard", []string{"XYX", "YXY", "XYX"}, true},
		{"horizontal slide", []string{"AABA", "CDCD"}, true},
		{"vertical slide", []string{"AB", "AC", "CA"}, true},
		{"from below", []string{"AACD", "BCAB"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustGrid(t, Config{Alphabet: alphabet("ABCDEFGHIXY")}, tc.rows...)
			if got := b.HasPossibleMove(); got != tc.want {
				t.Errorf("HasPossibleMove() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHasPossibleMoveIdempotent(t *testing.T) {
	b, err := New(Config{Width: 6, Height: 6, Alphabet: alphabet("ABCDE"), Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatal(err)
	}
	before := b.String()
	first := b.HasPossibleMove()
	for i := 0; i < 10; i++ {
		if got := b.HasPossibleMove(); got != first {
			t.Fatalf("call %d: HasPossibleMove() = %v, expected %v", i, got, first)
		}
		if b.String() != before {
			t.Fatalf("call %d: HasPossibleMove mutated the board", i)
		}
	}
	b.PossibleMoves()
	b.FindPossibleMove()
	if b.String() != before {
		t.Fatal("move search mutated the board")
	}
}

func TestFindPossibleMove(t *testing.T) {
	b := mustGrid(t, Config{Alphabet: alphabet("ABCD"), Rand: rand.New(rand.NewSource(1))},
		"AACD",
		"BCAB",
	)
	m, ok := b.FindPossibleMove()
	if !ok {
		t.Fatal("FindPossibleMove() found nothing")
	}
	if m.From != Pos(0, 2) || m.To != Pos(1, 2) {
		t.Errorf("FindPossibleMove() = %v->%v, expected (0,2)->(1,2)", m.From, m.To)
	}
	if n := b.PossibleMoves(); n != 1 {
		t.Errorf("PossibleMoves() = %d, expected 1", n)
	}

	res, err := b.TrySwap(m.From, m.To)
	if err != nil {
		t.Fatalf("TrySwap(hint) error = %v", err)
	}
	if res.Outcome != OutcomeResolved {
		t.Errorf("hinted swap Outcome = %v, expected Resolved", res.Outcome)
	}
}

func TestRegenerateUnsolvable(t *testing.T) {
	rec := &Recorder{}
	// Every attempt fills A..I in order: settled but without a move.
	b := mustGrid(t, Config{
		Alphabet:              alphabet("ABCDEFGHI"),
		Rand:                  &scripted{seq: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		MaxRegenerateAttempts: 3,
		Presenter:             rec,
	},
		"ABC",
		"DEF",
		"GHI",
	)
	if b.HasPossibleMove() {
		t.Fatal("fixture should have no move")
	}

	attempts, err := b.Regenerate()
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("Regenerate() error = %v, expected ErrUnsolvable", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, expected 3", attempts)
	}
	assertSettled(t, b)
	if resets := rec.Kind(EventReset); len(resets) != 1 {
		t.Errorf("reset events = %d, expected the final board announced once", len(resets))
	}
}

func TestNewUnsolvable(t *testing.T) {
	_, err := New(Config{
		Width:                 3,
		Height:                3,
		Alphabet:              alphabet("ABCDEFGHI"),
		Rand:                  &scripted{seq: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		MaxRegenerateAttempts: 2,
	})
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("New() error = %v, expected ErrUnsolvable", err)
	}
}

func TestSingleAlphabetIsUnsolvable(t *testing.T) {
	_, err := New(Config{
		Width:                 4,
		Height:                4,
		Alphabet:              alphabet("A"),
		MaxRegenerateAttempts: 2,
		MaxCascades:           10,
	})
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("New() error = %v, expected ErrUnsolvable", err)
	}
}

func TestRegenerateRetriesUntilSolvable(t *testing.T) {
	// First fill is A..I with no move, the second has a slide into row 0.
	seq := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 1, 2, 3, 0, 4, 5, 4}
	b := mustGrid(t, Config{
		Alphabet: alphabet("ABCDEFGHI"),
		Rand:     &scripted{seq: seq},
	},
		"...",
		"...",
		"...",
	)
	attempts, err := b.Regenerate()
	if err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, expected 2", attempts)
	}
	assertRows(t, b, "AAB", "CDA", "EFE")
	if !b.HasPossibleMove() {
		t.Error("regenerated board has no move")
	}
}

func TestPlayKeepsInvariants(t *testing.T) {
	tally := &Tally{}
	b, err := New(Config{
		Width:    7,
		Height:   7,
		Alphabet: alphabet("ABCDE"),
		Rand:     rand.New(rand.NewSource(99)),
		Scorer:   tally,
	})
	if err != nil {
		t.Fatal(err)
	}

	points := 0
	for i := 0; i < 200; i++ {
		m, ok := b.FindPossibleMove()
		if !ok {
			t.Fatalf("step %d: settled board without a move:\n%s", i, b)
		}
		res, err := b.TrySwap(m.From, m.To)
		if err != nil {
			t.Fatalf("step %d: TrySwap() error = %v", i, err)
		}
		if res.Outcome != OutcomeResolved {
			t.Fatalf("step %d: hinted swap was a no-op", i)
		}
		points += res.Points
		assertSettled(t, b)
	}
	if tally.Total() != points {
		t.Errorf("tally = %d, results sum = %d", tally.Total(), points)
	}
}
