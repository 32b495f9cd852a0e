package match3

import "errors"

var (
	// ErrOutOfBounds is returned when a position lies outside the board.
	ErrOutOfBounds = errors.New("match3: position out of bounds")

	// ErrInvalidSwap is returned for swaps between non-adjacent cells or
	// involving an empty cell.
	ErrInvalidSwap = errors.New("match3: invalid swap")

	// ErrSwapInProgress is returned when TrySwap is re-entered from a
	// Presenter or Scorer callback.
	ErrSwapInProgress = errors.New("match3: swap already in progress")

	// ErrEmptyAlphabet is returned when a board is configured without pieces.
	ErrEmptyAlphabet = errors.New("match3: empty alphabet")

	// ErrInvalidSize is returned for non-positive dimensions or a grid that
	// does not match the configured size.
	ErrInvalidSize = errors.New("match3: invalid board size")

	// ErrUnsolvable is returned when regeneration could not produce a board
	// with at least one legal move.
	ErrUnsolvable = errors.New("match3: no solvable board")
)
