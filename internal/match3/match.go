package match3

import "fmt"

// Run is a maximal line of at least MinRunLength equal pieces along one
// axis. Positions are in ascending order.
type Run struct {
	Piece     PieceID
	Axis      Axis
	Positions []Position
}

// Len returns the number of positions in the run.
func (r Run) Len() int { return len(r.Positions) }

// Empty reports whether the run holds no positions.
func (r Run) Empty() bool { return len(r.Positions) == 0 }

// ScoreForRun returns the points awarded for clearing a run of n pieces.
func ScoreForRun(n int) int {
	switch {
	case n < MinRunLength:
		return 0
	case n == 3:
		return 3
	case n == 4:
		return 9
	default:
		return 27
	}
}

func axisDelta(a Axis) Position {
	if a == Vertical {
		return Position{Row: 1}
	}
	return Position{Col: 1}
}

// FindRun returns the run through p along axis, or an empty Run when the
// cell is empty or the line is shorter than MinRunLength.
func (b *Board) FindRun(p Position, axis Axis) (Run, error) {
	if !b.InBounds(p) {
		return Run{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	piece := b.at(p)
	if piece == NoPiece {
		return Run{}, nil
	}
	d := axisDelta(axis)

	start := p
	for {
		prev := Position{Row: start.Row - d.Row, Col: start.Col - d.Col}
		if !b.InBounds(prev) || b.at(prev) != piece {
			break
		}
		start = prev
	}
	return b.runFrom(start, axis), nil
}

// runFrom collects the run beginning at start, which must be the first
// cell of its line.
func (b *Board) runFrom(start Position, axis Axis) Run {
	piece := b.at(start)
	if piece == NoPiece {
		return Run{}
	}
	d := axisDelta(axis)
	n := 0
	for q := start; b.InBounds(q) && b.at(q) == piece; q = (Position{Row: q.Row + d.Row, Col: q.Col + d.Col}) {
		n++
	}
	if n < MinRunLength {
		return Run{}
	}
	run := Run{Piece: piece, Axis: axis, Positions: make([]Position, n)}
	for i := range n {
		run.Positions[i] = Position{Row: start.Row + i*d.Row, Col: start.Col + i*d.Col}
	}
	return run
}

// runStart reports whether p begins a line along axis.
func (b *Board) runStart(p Position, axis Axis) bool {
	d := axisDelta(axis)
	prev := Position{Row: p.Row - d.Row, Col: p.Col - d.Col}
	return !b.InBounds(prev) || b.at(prev) != b.at(p)
}

// FindRuns returns every run on the board exactly once: horizontal runs
// first, then vertical runs, each ordered by their first cell.
func (b *Board) FindRuns() []Run {
	var runs []Run
	for _, axis := range [...]Axis{Horizontal, Vertical} {
		for r := 0; r < b.height; r++ {
			for c := 0; c < b.width; c++ {
				p := Position{Row: r, Col: c}
				if b.at(p) == NoPiece || !b.runStart(p, axis) {
					continue
				}
				if run := b.runFrom(p, axis); !run.Empty() {
					runs = append(runs, run)
				}
			}
		}
	}
	return runs
}

// FindAllMatches returns every position belonging to a run, deduplicated,
// in row-major order.
func (b *Board) FindAllMatches() []Position {
	marked := b.markRuns(b.FindRuns())
	var out []Position
	for i, size := range marked {
		if size > 0 {
			out = append(out, Position{Row: i / b.width, Col: i % b.width})
		}
	}
	return out
}

// markRuns returns, per cell index, the length of the longest run covering
// it (0 when none).
func (b *Board) markRuns(runs []Run) []int {
	marked := make([]int, len(b.cells))
	for _, run := range runs {
		for _, p := range run.Positions {
			i := b.index(p)
			if run.Len() > marked[i] {
				marked[i] = run.Len()
			}
		}
	}
	return marked
}

// HasAnyMatch reports whether the board holds at least one run.
func (b *Board) HasAnyMatch() bool {
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			v := b.cells[r*b.width+c]
			if v == NoPiece {
				continue
			}
			if c+2 < b.width && b.cells[r*b.width+c+1] == v && b.cells[r*b.width+c+2] == v {
				return true
			}
			if r+2 < b.height && b.cells[(r+1)*b.width+c] == v && b.cells[(r+2)*b.width+c] == v {
				return true
			}
		}
	}
	return false
}
