package match3

// ResolveReport summarizes one resolve pass.
type ResolveReport struct {
	Cascades int
	Cleared  int
	Points   int
	Runs     []Run
	// Settled is false when MaxCascades was reached before the board
	// stopped changing.
	Settled bool
}

// Resolve clears runs, collapses columns and refills until the board is
// stable, reporting every change to the Presenter and every run to the
// Scorer. It ends with a Settled event.
func (b *Board) Resolve() ResolveReport {
	defer b.enter(StateResolving)()
	rep := b.resolve(b.presenter, b.scorer)
	b.emit(Event{Kind: EventSettled})
	return rep
}

func (b *Board) resolve(pr Presenter, sc Scorer) ResolveReport {
	var rep ResolveReport
	for rep.Cascades < b.maxCascades {
		runs := b.FindRuns()
		if len(runs) == 0 {
			rep.Settled = true
			return rep
		}
		rep.Cascades++
		cascade := rep.Cascades

		marked := b.markRuns(runs)
		for i, size := range marked {
			if size == 0 {
				continue
			}
			p := Position{Row: i / b.width, Col: i % b.width}
			pr.Present(Event{Kind: EventRemove, Pos: p, Piece: b.cells[i], Size: size, Cascade: cascade})
			b.cells[i] = NoPiece
			rep.Cleared++
		}
		for _, run := range runs {
			pts := ScoreForRun(run.Len())
			sc.AwardScore(pts)
			rep.Points += pts
		}
		rep.Runs = append(rep.Runs, runs...)

		moved := b.collapse(pr, cascade)
		spawned := b.refill(pr, cascade)
		if moved+spawned == 0 {
			rep.Settled = !b.HasAnyMatch()
			return rep
		}
	}
	rep.Settled = !b.HasAnyMatch()
	return rep
}

// collapse lets pieces fall to the lowest empty cell of their column,
// preserving their order. It returns the number of moved pieces.
func (b *Board) collapse(pr Presenter, cascade int) int {
	moved := 0
	for c := 0; c < b.width; c++ {
		write := b.height - 1
		for r := b.height - 1; r >= 0; r-- {
			from := Position{Row: r, Col: c}
			v := b.at(from)
			if v == NoPiece {
				continue
			}
			if r != write {
				to := Position{Row: write, Col: c}
				b.put(to, v)
				b.put(from, NoPiece)
				pr.Present(Event{Kind: EventMove, From: from, To: to, Piece: v, Cascade: cascade})
				moved++
			}
			write--
		}
	}
	return moved
}

// refill fills empty cells top to bottom. A piece landing in row r of a
// column with k empty cells starts at row r-k, above the board.
func (b *Board) refill(pr Presenter, cascade int) int {
	gaps := make([]int, b.width)
	for c := 0; c < b.width; c++ {
		for r := 0; r < b.height; r++ {
			if b.at(Position{Row: r, Col: c}) == NoPiece {
				gaps[c]++
			}
		}
	}

	spawned := 0
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			p := Position{Row: r, Col: c}
			if b.at(p) != NoPiece {
				continue
			}
			v := b.randomPiece()
			b.put(p, v)
			pr.Present(Event{Kind: EventSpawn, Pos: p, Piece: v, OriginRow: r - gaps[c], Cascade: cascade})
			spawned++
		}
	}
	return spawned
}
