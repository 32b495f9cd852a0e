package match3

import (
	"testing"
)

// scripted is a Source returning a fixed sequence of values, cycling when
// exhausted.
type scripted struct {
	seq []int
	i   int
}

func (s *scripted) Intn(n int) int {
	v := s.seq[s.i%len(s.seq)] % n
	s.i++
	return v
}

// grid builds rows of single-letter pieces; '.' is an empty cell.
func grid(rows ...string) [][]PieceID {
	out := make([][]PieceID, len(rows))
	for r, row := range rows {
		for _, ch := range row {
			if ch == '.' {
				out[r] = append(out[r], NoPiece)
				continue
			}
			out[r] = append(out[r], PieceID(string(ch)))
		}
	}
	return out
}

func alphabet(letters string) []PieceID {
	var out []PieceID
	for _, ch := range letters {
		out = append(out, PieceID(string(ch)))
	}
	return out
}

func mustGrid(t *testing.T, cfg Config, rows ...string) *Board {
	t.Helper()
	b, err := NewFromGrid(cfg, grid(rows...))
	if err != nil {
		t.Fatalf("NewFromGrid() error = %v", err)
	}
	return b
}

func assertRows(t *testing.T, b *Board, rows ...string) {
	t.Helper()
	want := grid(rows...)
	got := b.Cells()
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Fatalf("board =\n%s\nexpected row %d = %q", b, r, rows[r])
			}
		}
	}
}

func assertSettled(t *testing.T, b *Board) {
	t.Helper()
	if !b.Full() {
		t.Fatalf("board has empty cells:\n%s", b)
	}
	if m := b.FindAllMatches(); len(m) > 0 {
		t.Fatalf("settled board still has matches %v:\n%s", m, b)
	}
}
