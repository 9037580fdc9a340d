// Package engine implements the minesweeper board rules: mine placement,
// first-dig relocation, hint numbers, dig/flag/chord-clear and flood fill.
//
// The engine is pure game logic. It never renders, logs or persists anything;
// collaborators observe it through Listener and may veto input with a BusyFunc.
// It is not safe for concurrent use: one Engine belongs to one game session.
package engine

// CellState is the visible state of a cell.
type CellState int

const (
	Untouched CellState = iota
	Dug
	Flagged
	Detonated
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Untouched:
		return "Untouched"
	case Dug:
		return "Dug"
	case Flagged:
		return "Flagged"
	case Detonated:
		return "Detonated"
	default:
		return "Unknown"
	}
}

// Pos is a row-major cell index: y*width + x.
type Pos int

// Cell is the state of one grid position.
type Cell struct {
	State CellState

	mine bool
	hint int // Mined neighbors, kept current on every mine change
}

// IsMine reports whether the cell holds a mine.
func (c Cell) IsMine() bool {
	return c.mine
}

// Hint returns the number of mined neighbors (0..8).
func (c Cell) Hint() int {
	return c.hint
}
