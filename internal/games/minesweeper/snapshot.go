package minesweeper

import (
	"strings"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// SessionState is the coarse state of a session.
type SessionState string

const (
	StateReady       SessionState = "ready" // Nothing dug yet
	StatePlaying     SessionState = "playing"
	StatePaused      SessionState = "paused"
	StateWon         SessionState = "won"
	StateLost        SessionState = "lost"
	StatePausedSmall SessionState = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Preset   string
	Width    int
	Height   int
	Mines    int
	CursorX  int
	CursorY  int
	Rows     []string // One rune per cell, see snapshotRune
	CellsDug int
	Flags    int
	Elapsed  uint64
	Score    int
	Busy     bool
	State    SessionState
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	b := g.eng.Board()

	rows := make([]string, b.Height())
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		sb.Reset()
		for x := 0; x < b.Width(); x++ {
			sb.WriteRune(snapshotRune(b.Cell(b.PosOf(x, y))))
		}
		rows[y] = sb.String()
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.eng.Over() && g.eng.Won():
		state = StateWon
	case g.eng.Over():
		state = StateLost
	case g.paused:
		state = StatePaused
	case !b.HasBegun():
		state = StateReady
	}

	return Snapshot{
		Tick:     g.tick,
		Preset:   string(g.preset),
		Width:    b.Width(),
		Height:   b.Height(),
		Mines:    b.MineCount(),
		CursorX:  g.cursorX,
		CursorY:  g.cursorY,
		Rows:     rows,
		CellsDug: g.cellsDug,
		Flags:    b.CountState(engine.Flagged),
		Elapsed:  g.ElapsedTicks(),
		Score:    g.Score(),
		Busy:     g.effect.busy(),
		State:    state,
	}
}

// snapshotRune encodes a cell: '#' untouched, 'F' flagged, 'X' detonated,
// '0'-'8' dug with that hint. Mines under untouched cells stay hidden.
func snapshotRune(c engine.Cell) rune {
	switch c.State {
	case engine.Flagged:
		return 'F'
	case engine.Detonated:
		return 'X'
	case engine.Dug:
		return rune('0' + c.Hint())
	default:
		return '#'
	}
}
