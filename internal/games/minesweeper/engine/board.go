package engine

import (
	"fmt"
	"math/rand"
)

// Board owns the grid of cells. Cells are stored in row-major order.
type Board struct {
	width    int
	height   int
	cells    []Cell
	hasBegun bool
}

// NewBoard creates a width x height board with mines placed uniformly at random.
func NewBoard(width, height, mines int, rng *rand.Rand) (*Board, error) {
	b, err := newEmptyBoard(width, height)
	if err != nil {
		return nil, err
	}
	if err := b.PlaceMines(mines, rng); err != nil {
		return nil, err
	}
	return b, nil
}

// NewBoardWithMines creates a board with mines at exactly the given positions.
func NewBoardWithMines(width, height int, mines []Pos) (*Board, error) {
	b, err := newEmptyBoard(width, height)
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !b.Contains(p) {
			return nil, fmt.Errorf("engine: mine position %d outside %dx%d board", p, width, height)
		}
		b.setMine(p, true)
	}
	return b, nil
}

func newEmptyBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("engine: invalid board size %dx%d", width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// HasBegun reports whether the first dig of the session was processed.
func (b *Board) HasBegun() bool {
	return b.hasBegun
}

// Contains reports whether p is a valid position on this board.
func (b *Board) Contains(p Pos) bool {
	return p >= 0 && int(p) < len(b.cells)
}

// PosOf converts column x and row y to a position.
func (b *Board) PosOf(x, y int) Pos {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("engine: coordinate (%d, %d) outside %dx%d board", x, y, b.width, b.height))
	}
	return Pos(y*b.width + x)
}

// XY converts a position to column and row.
func (b *Board) XY(p Pos) (x, y int) {
	b.mustContain(p)
	return int(p) % b.width, int(p) / b.width
}

// Cell returns a copy of the cell at p.
func (b *Board) Cell(p Pos) Cell {
	b.mustContain(p)
	return b.cells[p]
}

// Neighbors returns the in-bounds 8-connected neighbors of p in ascending order.
func (b *Board) Neighbors(p Pos) []Pos {
	x, y := b.XY(p)
	out := make([]Pos, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.height {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= b.width {
				continue
			}
			out = append(out, Pos(ny*b.width+nx))
		}
	}
	return out
}

// MineCount returns the number of mined cells.
func (b *Board) MineCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].mine {
			n++
		}
	}
	return n
}

// SafeCount returns the number of cells without a mine.
func (b *Board) SafeCount() int {
	return len(b.cells) - b.MineCount()
}

// CountState returns how many cells are in the given state.
func (b *Board) CountState(s CellState) int {
	n := 0
	for i := range b.cells {
		if b.cells[i].State == s {
			n++
		}
	}
	return n
}

// Mines returns the mined positions in ascending order.
func (b *Board) Mines() []Pos {
	var out []Pos
	for i := range b.cells {
		if b.cells[i].mine {
			out = append(out, Pos(i))
		}
	}
	return out
}

// PlaceMines puts n mines on distinct cells chosen uniformly at random.
// Mines already on the board are kept; n counts only the new ones.
func (b *Board) PlaceMines(n int, rng *rand.Rand) error {
	free := make([]Pos, 0, len(b.cells))
	for i := range b.cells {
		if !b.cells[i].mine {
			free = append(free, Pos(i))
		}
	}
	if n < 0 || n > len(free) {
		return fmt.Errorf("engine: cannot place %d mines on %d free cells", n, len(free))
	}
	for _, i := range rng.Perm(len(free))[:n] {
		b.setMine(free[i], true)
	}
	return nil
}

// ResetCell returns one cell to Untouched and removes its mine.
func (b *Board) ResetCell(p Pos) {
	b.mustContain(p)
	b.setMine(p, false)
	b.cells[p].State = Untouched
}

// Reset clears every cell and marks the session as not begun.
func (b *Board) Reset() {
	for i := range b.cells {
		b.ResetCell(Pos(i))
	}
	b.hasBegun = false
}

// setMine changes the mine flag of p and keeps neighbor hints in step.
func (b *Board) setMine(p Pos, mine bool) {
	if b.cells[p].mine == mine {
		return
	}
	b.cells[p].mine = mine
	delta := 1
	if !mine {
		delta = -1
	}
	for _, n := range b.Neighbors(p) {
		b.cells[n].hint += delta
	}
}

func (b *Board) mustContain(p Pos) {
	if !b.Contains(p) {
		panic(fmt.Sprintf("engine: position %d outside %dx%d board", p, b.width, b.height))
	}
}
