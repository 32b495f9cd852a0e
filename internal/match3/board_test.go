package match3

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero width", Config{Width: 0, Height: 3, Alphabet: alphabet("AB")}, ErrInvalidSize},
		{"negative height", Config{Width: 3, Height: -1, Alphabet: alphabet("AB")}, ErrInvalidSize},
		{"empty alphabet", Config{Width: 3, Height: 3}, ErrEmptyAlphabet},
		{"empty piece id", Config{Width: 3, Height: 3, Alphabet: []PieceID{"A", NoPiece}}, ErrEmptyAlphabet},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			if !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestNewFromGridSizeMismatch(t *testing.T) {
	_, err := NewFromGrid(Config{Width: 4, Alphabet: alphabet("AB")}, grid("ABA", "BAB"))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewFromGrid() error = %v, expected ErrInvalidSize", err)
	}

	_, err = NewFromGrid(Config{Alphabet: alphabet("AB")}, grid("ABA", "BA"))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ragged grid error = %v, expected ErrInvalidSize", err)
	}
}

func TestGetSet(t *testing.T) {
	b := mustGrid(t, Config{Alphabet: alphabet("AB")}, "AB", "BA")

	got, err := b.Get(Pos(1, 0))
	if err != nil || got != "B" {
		t.Errorf("Get(1,0) = %q, %v, expected B", got, err)
	}

	if err := b.Set(Pos(1, 0), "A"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, _ := b.Get(Pos(1, 0)); got != "A" {
		t.Errorf("Get after Set = %q, expected A", got)
	}

	for _, p := range []Position{Pos(-1, 0), Pos(0, -1), Pos(2, 0), Pos(0, 2)} {
		if _, err := b.Get(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%v) error = %v, expected ErrOutOfBounds", p, err)
		}
		if err := b.Set(p, "A"); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%v) error = %v, expected ErrOutOfBounds", p, err)
		}
	}
}

func TestSwapCells(t *testing.T) {
	b := mustGrid(t, Config{Alphabet: alphabet("AB")}, "AB.", "BAB")

	if err := b.SwapCells(Pos(0, 0), Pos(1, 2)); err != nil {
		t.Fatalf("SwapCells() error = %v", err)
	}
	assertRows(t, b, "BB.", "BAA")

	if err := b.SwapCells(Pos(0, 1), Pos(0, 2)); !errors.Is(err, ErrInvalidSwap) {
		t.Errorf("SwapCells with empty cell error = %v, expected ErrInvalidSwap", err)
	}
	if err := b.SwapCells(Pos(0, 0), Pos(5, 5)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SwapCells out of bounds error = %v, expected ErrOutOfBounds", err)
	}
	assertRows(t, b, "BB.", "BAA")
}

func TestCellsIsCopy(t *testing.T) {
	b := mustGrid(t, Config{Alphabet: alphabet("AB")}, "AB", "BA")
	cells := b.Cells()
	cells[0][0] = "Z"
	if got, _ := b.Get(Pos(0, 0)); got != "A" {
		t.Errorf("mutating Cells() changed board: (0,0) = %q", got)
	}
}

func TestString(t *testing.T) {
	b := mustGrid(t, Config{Alphabet: alphabet("AB")}, "AB", "B.")
	if got, want := b.String(), "A B\nB ."; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestNewProducesSettledSolvableBoard(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b, err := New(Config{
			Width:    6,
			Height:   6,
			Alphabet: alphabet("ABCDEF"),
			Rand:     rand.New(rand.NewSource(seed)),
		})
		if err != nil {
			t.Fatalf("seed %d: New() error = %v", seed, err)
		}
		assertSettled(t, b)
		if !b.HasPossibleMove() {
			t.Errorf("seed %d: board has no possible move:\n%s", seed, b)
		}
		if b.State() != StateIdle {
			t.Errorf("seed %d: State() = %v, expected Idle", seed, b.State())
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	cfg := func() Config {
		return Config{Width: 6, Height: 6, Alphabet: alphabet("ABCDE"), Rand: rand.New(rand.NewSource(42))}
	}
	b1, err := New(cfg())
	if err != nil {
		t.Fatal(err)
	}
	b2, err := New(cfg())
	if err != nil {
		t.Fatal(err)
	}
	if b1.String() != b2.String() {
		t.Fatalf("same seed produced different boards:\n%s\n---\n%s", b1, b2)
	}

	// Identical swap sequences keep the boards identical.
	for i := 0; i < 30; i++ {
		m, ok := b1.FindPossibleMove()
		if !ok {
			t.Fatalf("step %d: no possible move", i)
		}
		r1, err1 := b1.TrySwap(m.From, m.To)
		r2, err2 := b2.TrySwap(m.From, m.To)
		if err1 != nil || err2 != nil {
			t.Fatalf("step %d: TrySwap errors %v, %v", i, err1, err2)
		}
		if r1.Points != r2.Points || r1.Cascades != r2.Cascades {
			t.Errorf("step %d: results differ %+v vs %+v", i, r1, r2)
		}
		if b1.String() != b2.String() {
			t.Fatalf("step %d: boards diverged", i)
		}
	}
}

func TestGenerateAnnouncesBoard(t *testing.T) {
	rec := &Recorder{}
	b, err := NewFromGrid(Config{
		Width:     3,
		Height:    2,
		Alphabet:  alphabet("AB"),
		Rand:      &scripted{seq: []int{0, 1, 0, 1, 0, 1}},
		Presenter: rec,
	}, grid("...", "..."))
	if err != nil {
		t.Fatal(err)
	}

	if !b.Generate() {
		t.Fatal("Generate() did not settle")
	}
	assertRows(t, b, "ABA", "BAB")

	if rec.Events[0].Kind != EventReset {
		t.Errorf("first event = %v, expected Reset", rec.Events[0])
	}
	if last := rec.Events[len(rec.Events)-1]; last.Kind != EventSettled {
		t.Errorf("last event = %v, expected Settled", last)
	}
	spawns := rec.Kind(EventSpawn)
	if len(spawns) != 6 {
		t.Fatalf("spawn events = %d, expected 6", len(spawns))
	}
	for _, ev := range spawns {
		if want := ev.Pos.Row - 2; ev.OriginRow != want {
			t.Errorf("spawn at %v origin = %d, expected %d", ev.Pos, ev.OriginRow, want)
		}
	}
}
