package match3

import "fmt"

// EventKind identifies a board change reported to a Presenter.
type EventKind int

const (
	// EventReset announces a wholesale (re)generated board. Spawn events
	// for every cell follow.
	EventReset EventKind = iota
	// EventSwap reports two cells exchanging contents (From <-> To).
	EventSwap
	// EventRemove reports a matched piece being cleared.
	EventRemove
	// EventMove reports a piece falling From -> To during collapse.
	EventMove
	// EventSpawn reports a new piece entering at Pos from OriginRow.
	EventSpawn
	// EventSettled marks the end of a resolve or generation pass.
	EventSettled
)

func (k EventKind) String() string {
	switch k {
	case EventReset:
		return "Reset"
	case EventSwap:
		return "Swap"
	case EventRemove:
		return "Remove"
	case EventMove:
		return "Move"
	case EventSpawn:
		return "Spawn"
	case EventSettled:
		return "Settled"
	default:
		return "Unknown"
	}
}

// Event is a single presentation command emitted by the board.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Pos is the affected cell for Remove and Spawn.
	Pos Position

	// From and To are set for Swap and Move.
	From Position
	To   Position

	// Piece is the removed or spawned piece.
	Piece PieceID

	// Size is the length of the longest run the removed piece belonged to.
	Size int

	// OriginRow is the (negative) row above the board a spawned piece
	// drops from.
	OriginRow int

	// Cascade is the 1-based resolve iteration that produced the event,
	// 0 outside of a resolve pass.
	Cascade int
}

func (e Event) String() string {
	switch e.Kind {
	case EventRemove:
		return fmt.Sprintf("Remove%v size=%d", e.Pos, e.Size)
	case EventMove:
		return fmt.Sprintf("Move%v->%v", e.From, e.To)
	case EventSwap:
		return fmt.Sprintf("Swap%v<->%v", e.From, e.To)
	case EventSpawn:
		return fmt.Sprintf("Spawn%v %s from row %d", e.Pos, e.Piece, e.OriginRow)
	default:
		return e.Kind.String()
	}
}

// Presenter receives board events in the order they happen.
type Presenter interface {
	Present(ev Event)
}

// Scorer receives one award per matched run.
type Scorer interface {
	AwardScore(points int)
}

// Recorder is a Presenter that keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Present appends the event.
func (r *Recorder) Present(ev Event) {
	r.Events = append(r.Events, ev)
}

// Kind returns the recorded events of one kind.
func (r *Recorder) Kind(k EventKind) []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Tally is a Scorer that records each award.
type Tally struct {
	Awards []int
}

// AwardScore records the award.
func (t *Tally) AwardScore(points int) {
	t.Awards = append(t.Awards, points)
}

// Total returns the sum of all awards.
func (t *Tally) Total() int {
	sum := 0
	for _, p := range t.Awards {
		sum += p
	}
	return sum
}

type nopPresenter struct{}

func (nopPresenter) Present(Event) {}

type nopScorer struct{}

func (nopScorer) AwardScore(int) {}
