package minesweeper

import (
	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

type effectKind int

const (
	effectNone effectKind = iota
	effectReveal
	effectDetonate
)

// effect is the presentation effect currently playing. The engine treats
// the game as busy, and ignores actions, until it runs out.
type effect struct {
	kind   effectKind
	ticks  int // Remaining ticks
	total  int
	origin engine.Pos // Detonated cell, for the flash
}

// startReveal plays the dig effect. It lasts longer the more cells a
// single dig uncovered, bounded by MaxTicks.
func (e *effect) startReveal(a config.AnimationConfig, cells int) {
	n := a.DigTicks + a.FloodTicksPerCell*(cells-1)
	if a.MaxTicks > 0 && n > a.MaxTicks {
		n = a.MaxTicks
	}
	e.start(effectReveal, n)
}

func (e *effect) startDetonation(a config.AnimationConfig, p engine.Pos) {
	e.start(effectDetonate, a.DetonateTicks)
	e.origin = p
}

func (e *effect) start(k effectKind, ticks int) {
	if ticks <= 0 {
		*e = effect{}
		return
	}
	*e = effect{kind: k, ticks: ticks, total: ticks}
}

func (e *effect) advance() {
	if e.ticks == 0 {
		return
	}
	e.ticks--
	if e.ticks == 0 {
		e.kind = effectNone
	}
}

func (e *effect) busy() bool {
	return e.ticks > 0
}

// flashOn alternates every four ticks while a detonation plays.
func (e *effect) flashOn() bool {
	return e.kind == effectDetonate && (e.total-e.ticks)/4%2 == 0
}
