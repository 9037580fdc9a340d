package engine

import (
	"math/rand"
	"slices"
	"testing"
)

// checkHints fails the test if any cell's hint differs from its mined neighbor count.
func checkHints(t *testing.T, b *Board) {
	t.Helper()
	for i := range b.cells {
		want := 0
		for _, n := range b.Neighbors(Pos(i)) {
			if b.cells[n].mine {
				want++
			}
		}
		if got := b.cells[i].hint; got != want {
			t.Fatalf("cell %d hint = %d, want %d", i, got, want)
		}
	}
}

func mustBoard(t *testing.T, w, h int, mines ...Pos) *Board {
	t.Helper()
	b, err := NewBoardWithMines(w, h, mines)
	if err != nil {
		t.Fatalf("NewBoardWithMines() failed: %v", err)
	}
	return b
}

func TestNeighbors(t *testing.T) {
	b := mustBoard(t, 5, 5)

	tests := []struct {
		name string
		p    Pos
		want []Pos
	}{
		{"top-left corner", 0, []Pos{1, 5, 6}},
		{"top-right corner", 4, []Pos{3, 8, 9}},
		{"bottom-left corner", 20, []Pos{15, 16, 21}},
		{"top edge", 2, []Pos{1, 3, 6, 7, 8}},
		{"left edge", 10, []Pos{5, 6, 11, 15, 16}},
		{"center", 12, []Pos{6, 7, 8, 11, 13, 16, 17, 18}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Neighbors(tt.p)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Neighbors(%d) = %v, want %v", tt.p, got, tt.want)
			}
			if slices.Contains(got, tt.p) {
				t.Errorf("Neighbors(%d) includes the position itself", tt.p)
			}
		})
	}
}

func TestNeighborsNarrowBoards(t *testing.T) {
	strip := mustBoard(t, 5, 1)
	if got := strip.Neighbors(2); !slices.Equal(got, []Pos{1, 3}) {
		t.Errorf("1-row Neighbors(2) = %v, want [1 3]", got)
	}

	single := mustBoard(t, 1, 1)
	if got := single.Neighbors(0); len(got) != 0 {
		t.Errorf("1x1 Neighbors(0) = %v, want none", got)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	b := mustBoard(t, 3, 3)

	calls := map[string]func(){
		"Neighbors": func() { b.Neighbors(9) },
		"Cell":      func() { b.Cell(-1) },
		"PosOf":     func() { b.PosOf(3, 0) },
		"ResetCell": func() { b.ResetCell(100) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s with an out-of-range position should panic", name)
				}
			}()
			call()
		})
	}
}

func TestPosConversion(t *testing.T) {
	b := mustBoard(t, 4, 3)

	p := b.PosOf(3, 2)
	if p != 11 {
		t.Errorf("PosOf(3, 2) = %d, want 11", p)
	}
	if x, y := b.XY(p); x != 3 || y != 2 {
		t.Errorf("XY(11) = (%d, %d), want (3, 2)", x, y)
	}
}

func TestNewBoardPlacement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b, err := NewBoard(16, 16, 40, rng)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	if got := b.MineCount(); got != 40 {
		t.Errorf("MineCount() = %d, want 40", got)
	}
	if got := b.SafeCount(); got != 216 {
		t.Errorf("SafeCount() = %d, want 216", got)
	}
	if b.HasBegun() {
		t.Error("fresh board should not have begun")
	}
	if got := b.CountState(Untouched); got != b.Len() {
		t.Errorf("untouched cells = %d, want %d", got, b.Len())
	}
	checkHints(t, b)
}

func TestNewBoardDeterministic(t *testing.T) {
	b1, _ := NewBoard(9, 9, 10, rand.New(rand.NewSource(42)))
	b2, _ := NewBoard(9, 9, 10, rand.New(rand.NewSource(42)))

	if !slices.Equal(b1.Mines(), b2.Mines()) {
		t.Errorf("same seed produced different mines: %v vs %v", b1.Mines(), b2.Mines())
	}
}

func TestNewBoardInvalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name        string
		w, h, mines int
	}{
		{"zero width", 0, 5, 1},
		{"negative height", 5, -1, 1},
		{"too many mines", 3, 3, 10},
		{"negative mines", 3, 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBoard(tt.w, tt.h, tt.mines, rng); err == nil {
				t.Errorf("NewBoard(%d, %d, %d) should fail", tt.w, tt.h, tt.mines)
			}
		})
	}

	if _, err := NewBoardWithMines(3, 3, []Pos{9}); err == nil {
		t.Error("NewBoardWithMines with an out-of-range mine should fail")
	}
}

func TestFullBoardOfMines(t *testing.T) {
	b, err := NewBoard(3, 3, 9, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	if b.SafeCount() != 0 {
		t.Errorf("SafeCount() = %d, want 0", b.SafeCount())
	}
	checkHints(t, b)
}

func TestHintsFollowMineChanges(t *testing.T) {
	b := mustBoard(t, 3, 3, 0, 8)
	checkHints(t, b)

	if got := b.Cell(4).Hint(); got != 2 {
		t.Errorf("center hint = %d, want 2", got)
	}

	b.setMine(0, false)
	checkHints(t, b)
	b.setMine(2, true)
	checkHints(t, b)
	b.setMine(2, true) // No change when already mined
	checkHints(t, b)

	if got := b.Cell(4).Hint(); got != 2 {
		t.Errorf("center hint after move = %d, want 2", got)
	}
}

func TestReset(t *testing.T) {
	b := mustBoard(t, 3, 3, 0, 1)
	b.hasBegun = true
	b.cells[4].State = Dug
	b.cells[8].State = Flagged

	b.Reset()

	if b.HasBegun() {
		t.Error("Reset should clear hasBegun")
	}
	if b.MineCount() != 0 {
		t.Errorf("Reset should clear mines, got %d", b.MineCount())
	}
	if got := b.CountState(Untouched); got != 9 {
		t.Errorf("untouched after Reset = %d, want 9", got)
	}
	checkHints(t, b)

	if err := b.PlaceMines(4, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("PlaceMines() failed: %v", err)
	}
	if b.MineCount() != 4 {
		t.Errorf("MineCount() after PlaceMines = %d, want 4", b.MineCount())
	}
	checkHints(t, b)
}
