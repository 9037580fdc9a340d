package engine

import (
	"fmt"
	"math/rand"
)

// Config holds the construction parameters of a game session.
type Config struct {
	Width  int
	Height int
	Mines  int
	Seed   int64
}

// Engine processes player actions against a Board.
type Engine struct {
	board     *Board
	rng       *rand.Rand
	listeners []Listener
	busy      BusyFunc
	over      bool
	won       bool
}

// New creates an engine with a freshly mined board.
func New(cfg Config) (*Engine, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	board, err := NewBoard(cfg.Width, cfg.Height, cfg.Mines, rng)
	if err != nil {
		return nil, err
	}
	return &Engine{board: board, rng: rng}, nil
}

// NewWithBoard wraps an existing board. rng drives first-dig relocation.
func NewWithBoard(board *Board, rng *rand.Rand) *Engine {
	if board == nil || rng == nil {
		panic("engine: NewWithBoard needs a board and a generator")
	}
	return &Engine{board: board, rng: rng}
}

// Board returns the board. Callers must not mutate it behind the engine.
func (e *Engine) Board() *Board {
	return e.board
}

// Subscribe registers a listener. Listeners are notified in registration order.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// SetBusyFunc installs the presentation veto. nil disables it.
func (e *Engine) SetBusyFunc(f BusyFunc) {
	e.busy = f
}

// Over reports whether the session has ended.
func (e *Engine) Over() bool {
	return e.over
}

// Won reports whether the session ended in a win.
func (e *Engine) Won() bool {
	return e.won
}

// Dig reveals the cell at p, flooding through zero-hint regions.
func (e *Engine) Dig(p Pos) {
	e.board.mustContain(p)
	if e.blocked() {
		return
	}
	e.dig(p)
}

// ToggleFlag flags an untouched cell or removes an existing flag.
// Flags are refused until the first dig.
func (e *Engine) ToggleFlag(p Pos) {
	e.board.mustContain(p)
	if e.blocked() || !e.board.hasBegun {
		return
	}

	c := &e.board.cells[p]
	switch c.State {
	case Untouched:
		c.State = Flagged
		e.emit(CellFlagged{Pos: p})
	case Flagged:
		c.State = Untouched
		e.emit(CellUnflagged{Pos: p})
	}
}

// ChordClear digs every neighbor of a dug numbered cell once at least as
// many neighbors are flagged as its hint. Flag placement is not verified.
func (e *Engine) ChordClear(p Pos) {
	e.board.mustContain(p)
	if e.blocked() {
		return
	}

	c := e.board.cells[p]
	if c.State != Dug || c.hint == 0 {
		return
	}

	adjacent := e.board.Neighbors(p)
	flagged := 0
	for _, n := range adjacent {
		if e.board.cells[n].State == Flagged {
			flagged++
		}
	}
	if flagged < c.hint {
		return
	}

	for _, n := range adjacent {
		if e.over {
			return
		}
		e.dig(n)
	}
}

// Finish ends the session with the given outcome. The win observer calls it
// once every safe cell is dug. It is a no-op when the session is already over.
func (e *Engine) Finish(won bool) {
	if e.over {
		return
	}
	e.over = true
	e.won = won
	e.emit(GameOver{Won: won})
}

// Restart clears the board and places mines afresh for a new session.
// Listeners and the busy veto stay installed.
func (e *Engine) Restart(mines int) error {
	e.board.Reset()
	e.over = false
	e.won = false
	if err := e.board.PlaceMines(mines, e.rng); err != nil {
		return fmt.Errorf("engine: restart: %w", err)
	}
	return nil
}

// Reseed replaces the generator used by Restart and first-dig relocation.
func (e *Engine) Reseed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

func (e *Engine) blocked() bool {
	return e.over || (e.busy != nil && e.busy())
}

// dig runs the reveal worklist starting at start.
func (e *Engine) dig(start Pos) {
	b := e.board
	stack := []Pos{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.cells[p].State != Untouched {
			continue
		}

		if !b.hasBegun {
			b.hasBegun = true
			reloc := EnsureSafeFirstReveal(b, p, e.rng)
			e.emit(GameStarted{Relocation: reloc})
		}

		c := &b.cells[p]
		if c.mine {
			c.State = Detonated
			e.emit(MineDetonated{Pos: p})
			e.Finish(false)
			return
		}

		c.State = Dug
		e.emit(CellDug{Pos: p, Hint: c.hint})
		if e.over {
			// A listener concluded the session (the last safe cell was dug).
			return
		}
		if c.hint == 0 {
			stack = append(stack, b.Neighbors(p)...)
		}
	}
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l.Notify(ev)
	}
}
