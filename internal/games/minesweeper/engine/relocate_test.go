package engine

import (
	"math/rand"
	"slices"
	"testing"
)

// assertNeighborhoodClear fails if first or any of its neighbors holds a mine.
func assertNeighborhoodClear(t *testing.T, b *Board, first Pos) {
	t.Helper()
	if b.Cell(first).IsMine() {
		t.Errorf("first position %d still holds a mine", first)
	}
	for _, n := range b.Neighbors(first) {
		if b.Cell(n).IsMine() {
			t.Errorf("neighbor %d of %d still holds a mine", n, first)
		}
	}
}

func TestRelocateDegenerateBoard(t *testing.T) {
	// 3x3, top row mined, first dig in the center: every other cell is adjacent,
	// so no replacement can be found and all three mines disappear.
	b := mustBoard(t, 3, 3, 0, 1, 2)

	reloc := EnsureSafeFirstReveal(b, 4, rand.New(rand.NewSource(1)))

	if !slices.Equal(reloc.Cleared, []Pos{0, 1, 2}) {
		t.Errorf("Cleared = %v, want [0 1 2]", reloc.Cleared)
	}
	if len(reloc.Added) != 0 {
		t.Errorf("Added = %v, want none", reloc.Added)
	}
	if reloc.Shortfall() != 3 {
		t.Errorf("Shortfall() = %d, want 3", reloc.Shortfall())
	}
	if got := b.MineCount(); got != 0 {
		t.Errorf("MineCount() = %d, want 0", got)
	}
	assertNeighborhoodClear(t, b, 4)
	checkHints(t, b)
}

func TestRelocatePreservesMineCount(t *testing.T) {
	// 5x5, mines on the row above the center.
	b := mustBoard(t, 5, 5, 6, 7, 8)
	excluded := append(b.Neighbors(12), 12)

	reloc := EnsureSafeFirstReveal(b, 12, rand.New(rand.NewSource(99)))

	if !slices.Equal(reloc.Cleared, []Pos{6, 7, 8}) {
		t.Errorf("Cleared = %v, want [6 7 8]", reloc.Cleared)
	}
	if len(reloc.Added) != 3 {
		t.Fatalf("Added = %v, want 3 positions", reloc.Added)
	}
	for _, p := range reloc.Added {
		if slices.Contains(excluded, p) {
			t.Errorf("replacement mine %d placed inside the first-dig neighborhood", p)
		}
	}
	if got := b.MineCount(); got != 3 {
		t.Errorf("MineCount() = %d, want 3", got)
	}
	assertNeighborhoodClear(t, b, 12)
	checkHints(t, b)
}

func TestRelocatePartialShortfall(t *testing.T) {
	// 4x4, first dig at (1,1). Outside its neighborhood only cell 15 is free,
	// while two adjacent mines need a new home.
	b := mustBoard(t, 4, 4, 0, 1, 3, 7, 11, 12, 13, 14)
	before := b.MineCount()

	reloc := EnsureSafeFirstReveal(b, 5, rand.New(rand.NewSource(5)))

	if !slices.Equal(reloc.Added, []Pos{15}) {
		t.Errorf("Added = %v, want [15]", reloc.Added)
	}
	if reloc.Shortfall() != 1 {
		t.Errorf("Shortfall() = %d, want 1", reloc.Shortfall())
	}
	if got := b.MineCount(); got != before-1 {
		t.Errorf("MineCount() = %d, want %d", got, before-1)
	}
	assertNeighborhoodClear(t, b, 5)
	checkHints(t, b)
}

func TestRelocateMineUnderFirstDig(t *testing.T) {
	b := mustBoard(t, 5, 5, 12)

	reloc := EnsureSafeFirstReveal(b, 12, rand.New(rand.NewSource(1)))

	if !slices.Equal(reloc.Cleared, []Pos{12}) {
		t.Errorf("Cleared = %v, want [12]", reloc.Cleared)
	}
	if len(reloc.Added) != 0 {
		t.Errorf("a mine on the first cell is not replaced, got Added = %v", reloc.Added)
	}
	if b.MineCount() != 0 {
		t.Errorf("MineCount() = %d, want 0", b.MineCount())
	}
	checkHints(t, b)
}

func TestRelocateNothingToMove(t *testing.T) {
	b := mustBoard(t, 5, 5, 0, 24)

	reloc := EnsureSafeFirstReveal(b, 12, rand.New(rand.NewSource(1)))

	if len(reloc.Cleared) != 0 || len(reloc.Added) != 0 {
		t.Errorf("expected no relocation, got %+v", reloc)
	}
	if !slices.Equal(b.Mines(), []Pos{0, 24}) {
		t.Errorf("Mines() = %v, want [0 24]", b.Mines())
	}
}

func TestRelocateDeterministic(t *testing.T) {
	run := func() []Pos {
		b := mustBoard(t, 5, 5, 6, 7, 8)
		return EnsureSafeFirstReveal(b, 12, rand.New(rand.NewSource(2024))).Added
	}

	first, second := run(), run()
	if !slices.Equal(first, second) {
		t.Errorf("same seed produced different replacements: %v vs %v", first, second)
	}
}

func TestRelocateUniform(t *testing.T) {
	// Each of the 16 candidate cells of the 5x5 scenario (25 cells less the
	// first dig and its 8 neighbors) should receive a replacement mine with
	// probability 3/16.
	const trials = 16000
	rng := rand.New(rand.NewSource(1))
	hits := make(map[Pos]int)

	for i := 0; i < trials; i++ {
		b := mustBoard(t, 5, 5, 6, 7, 8)
		for _, p := range EnsureSafeFirstReveal(b, 12, rng).Added {
			hits[p]++
		}
	}

	if len(hits) != 16 {
		t.Fatalf("replacements landed on %d distinct cells, want 16", len(hits))
	}
	want := trials * 3 / 16
	for p, n := range hits {
		if n < want*85/100 || n > want*115/100 {
			t.Errorf("cell %d chosen %d times, want about %d", p, n, want)
		}
	}
}
