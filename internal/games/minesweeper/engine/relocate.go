package engine

import "math/rand"

// Relocation reports which mines EnsureSafeFirstReveal moved.
type Relocation struct {
	Cleared []Pos // Former mines removed from the first dig and its neighbors
	Added   []Pos // Replacement mines placed elsewhere
}

// Shortfall returns how many removed mines had no replacement.
func (r Relocation) Shortfall() int {
	return len(r.Cleared) - len(r.Added)
}

// EnsureSafeFirstReveal clears first and its neighbors of mines, moving the
// neighbor mines to random cells outside that neighborhood.
//
// A mine on first itself is removed without replacement. When fewer free cells
// remain outside the neighborhood than mines to move, the board ends up with
// fewer mines.
func EnsureSafeFirstReveal(b *Board, first Pos, rng *rand.Rand) Relocation {
	b.mustContain(first)

	var reloc Relocation
	if b.cells[first].mine {
		b.setMine(first, false)
		reloc.Cleared = append(reloc.Cleared, first)
	}

	adjacent := b.Neighbors(first)
	excluded := make(map[Pos]bool, len(adjacent)+1)
	excluded[first] = true

	var toCancel []Pos
	for _, p := range adjacent {
		excluded[p] = true
		if b.cells[p].mine {
			toCancel = append(toCancel, p)
		}
	}

	candidates := make([]Pos, 0, len(b.cells))
	for i := range b.cells {
		p := Pos(i)
		if !excluded[p] && !b.cells[p].mine {
			candidates = append(candidates, p)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	toAdd := candidates[:min(len(candidates), len(toCancel))]

	for _, p := range toCancel {
		b.setMine(p, false)
	}
	for _, p := range toAdd {
		b.setMine(p, true)
	}

	reloc.Cleared = append(reloc.Cleared, toCancel...)
	reloc.Added = append(reloc.Added, toAdd...)
	return reloc
}
