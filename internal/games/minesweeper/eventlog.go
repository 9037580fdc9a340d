package minesweeper

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// NewEventLogger returns a listener that logs every engine notification
// to l. Cell events go out at debug level.
func NewEventLogger(l *log.Logger) engine.Listener {
	return engine.ListenerFunc(func(ev engine.Event) {
		switch ev := ev.(type) {
		case engine.GameStarted:
			l.Debug("game started",
				"cleared", len(ev.Relocation.Cleared),
				"added", len(ev.Relocation.Added),
				"shortfall", ev.Relocation.Shortfall())
		case engine.CellDug:
			l.Debug("cell dug", "pos", int(ev.Pos), "hint", ev.Hint)
		case engine.CellFlagged:
			l.Debug("cell flagged", "pos", int(ev.Pos))
		case engine.CellUnflagged:
			l.Debug("cell unflagged", "pos", int(ev.Pos))
		case engine.MineDetonated:
			l.Warn("mine detonated", "pos", int(ev.Pos))
		case engine.GameOver:
			l.Info("game over", "won", ev.Won)
		}
	})
}
