package engine

// Event is a notification emitted by the engine.
type Event interface {
	engineEvent()
}

// GameStarted is emitted once, when the first dig of a session is processed.
type GameStarted struct {
	Relocation Relocation
}

func (GameStarted) engineEvent() {}

// CellDug is emitted when a safe cell is revealed.
type CellDug struct {
	Pos  Pos
	Hint int
}

func (CellDug) engineEvent() {}

// CellFlagged is emitted when an untouched cell is flagged.
type CellFlagged struct {
	Pos Pos
}

func (CellFlagged) engineEvent() {}

// CellUnflagged is emitted when a flag is removed.
type CellUnflagged struct {
	Pos Pos
}

func (CellUnflagged) engineEvent() {}

// MineDetonated is emitted when a mined cell is dug.
type MineDetonated struct {
	Pos Pos
}

func (MineDetonated) engineEvent() {}

// GameOver is emitted once per session.
type GameOver struct {
	Won bool
}

func (GameOver) engineEvent() {}

// Listener receives engine notifications.
// Notify runs synchronously inside the engine call that caused the event.
type Listener interface {
	Notify(ev Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ev Event)

// Notify calls f(ev).
func (f ListenerFunc) Notify(ev Event) {
	f(ev)
}

// BusyFunc reports whether a presentation effect is in progress.
// While it returns true the engine ignores player actions.
type BusyFunc func() bool
