// Package minesweeper wires the board engine into the platform: cursor
// input, the win watcher, presentation effects, timing, scoring and
// rendering.
package minesweeper

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "minesweeper"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// eventLogger receives every engine notification when set
var eventLogger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// DifficultyPreset returns the preset new sessions will use.
func DifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// SetEventLogger makes new sessions log their engine events to l.
// nil turns event logging off.
func SetEventLogger(l *log.Logger) {
	eventLogger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game is one minesweeper session on top of engine.Engine.
type Game struct {
	// Per-instance overrides of the package settings, kept across Reset.
	requested config.DifficultyPreset
	logger    *log.Logger
	eventLog  *log.Logger // Logger subscribed to eng

	runtime core.RuntimeConfig
	cfg     config.MinesweeperConfig
	preset  config.DifficultyPreset
	eng     *engine.Engine

	tick    uint64
	elapsed uint64 // Unpaused ticks since the first dig
	started bool

	cursorX, cursorY int
	cellsDug         int
	effect           effect

	paused   bool
	tooSmall bool
}

// New creates a minesweeper game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// NewWithPreset creates a game that always uses preset, regardless of
// SetDifficultyPreset. Concurrent SSH sessions each pick their own.
func NewWithPreset(preset config.DifficultyPreset) *Game {
	return &Game{requested: preset}
}

// SetLogger sets an event logger for this instance only, overriding
// SetEventLogger. It takes effect on the next Reset.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Clear the field without digging up a mine"
}

// Reset starts a new session from the loaded config and the current preset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
	}
	preset := g.requested
	if preset == "" {
		preset = difficultyPreset
	}
	if err := config.ApplyMinesweeperPreset(&cfg, preset); err != nil {
		preset = config.DifficultyNormal
		config.ApplyMinesweeperPreset(&cfg, preset) //nolint:errcheck // built-in preset
	}

	l := g.logger
	if l == nil {
		l = eventLogger
	}

	// Same geometry and logger: restart the existing engine so its
	// listeners and veto carry over.
	var eng *engine.Engine
	if g.eng != nil && g.cfg.Board == cfg.Board && g.eventLog == l {
		g.eng.Reseed(runtime.Seed)
		if err := g.eng.Restart(cfg.Board.Mines); err == nil {
			eng = g.eng
		}
	}
	restarted := eng != nil
	if !restarted {
		cfg.Board, eng = newEngine(cfg.Board, runtime.Seed)
	}

	*g = Game{
		requested: g.requested,
		logger:    g.logger,
		runtime:   runtime,
		cfg:       cfg,
		preset:    preset,
		cursorX:   cfg.Board.Width / 2,
		cursorY:   cfg.Board.Height / 2,
	}

	if restarted {
		g.eng = eng
		g.eventLog = l
	} else {
		g.attach(eng, l)
	}
	g.checkScreenSize()
}

// newEngine builds an engine for board, falling back to the default board
// when board is rejected. It returns the board actually used.
func newEngine(board config.BoardConfig, seed int64) (config.BoardConfig, *engine.Engine) {
	eng, err := engine.New(engine.Config{
		Width:  board.Width,
		Height: board.Height,
		Mines:  board.Mines,
		Seed:   seed,
	})
	if err == nil {
		return board, eng
	}

	// Only reachable with a config that failed validation
	board = config.DefaultMinesweeperConfig().Board
	eng, err = engine.New(engine.Config{
		Width:  board.Width,
		Height: board.Height,
		Mines:  board.Mines,
		Seed:   seed,
	})
	if err != nil {
		panic(fmt.Sprintf("minesweeper: default board %dx%d/%d rejected: %v", board.Width, board.Height, board.Mines, err))
	}
	return board, eng
}

// attach makes g the driver of eng: it subscribes l, if any, and then the
// session listener, so the log reads in causal order. It also installs the
// effect veto.
func (g *Game) attach(eng *engine.Engine, l *log.Logger) {
	g.eng = eng
	g.eventLog = l
	if l != nil {
		eng.Subscribe(NewEventLogger(l))
	}
	eng.Subscribe(engine.ListenerFunc(g.onEvent))
	eng.SetBusyFunc(g.effect.busy)
}

// Resize adapts the layout to a new terminal size without losing the board.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := layoutSize(g.cfg.Board.Width, g.cfg.Board.Height)
	g.tooSmall = g.runtime.ScreenW < minW || g.runtime.ScreenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.effect.advance()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	if g.started && !g.paused && !g.eng.Over() {
		g.elapsed++
	}

	if in.Has(core.ActionPause) && !g.eng.Over() {
		g.paused = !g.paused
	}
	if g.paused || g.eng.Over() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	p := g.eng.Board().PosOf(g.cursorX, g.cursorY)
	dugBefore := g.cellsDug
	switch {
	case in.Has(core.ActionDig):
		if g.eng.Board().Cell(p).State == engine.Dug {
			g.eng.ChordClear(p)
		} else {
			g.eng.Dig(p)
		}
	case in.Has(core.ActionChord):
		g.eng.ChordClear(p)
	case in.Has(core.ActionFlag):
		g.eng.ToggleFlag(p)
	}

	if n := g.cellsDug - dugBefore; n > 0 && !g.effect.busy() {
		g.effect.startReveal(g.cfg.Animation, n)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	b := g.eng.Board()
	switch {
	case in.Has(core.ActionUp):
		g.cursorY--
	case in.Has(core.ActionDown):
		g.cursorY++
	case in.Has(core.ActionLeft):
		g.cursorX--
	case in.Has(core.ActionRight):
		g.cursorX++
	}
	g.cursorX = core.Wrap(g.cursorX, b.Width())
	g.cursorY = core.Wrap(g.cursorY, b.Height())
}

// onEvent is the session's own engine listener. It keeps the timer, the
// dug count and the detonation effect, and ends the session as won once
// the last safe cell is dug.
func (g *Game) onEvent(ev engine.Event) {
	switch ev := ev.(type) {
	case engine.GameStarted:
		g.started = true
	case engine.CellDug:
		g.cellsDug++
		// SafeCount is read now: relocation may have removed mines.
		if g.cellsDug >= g.eng.Board().SafeCount() {
			g.eng.Finish(true)
		}
	case engine.MineDetonated:
		g.effect.startDetonation(g.cfg.Animation, ev.Pos)
	case engine.GameOver:
		g.paused = false
	}
}

// ElapsedTicks returns the ticks played since the first dig. The count
// stops while paused and at game over.
func (g *Game) ElapsedTicks() uint64 {
	return g.elapsed
}

// MinesLeft returns the mine count minus placed flags. It can go negative.
func (g *Game) MinesLeft() int {
	b := g.eng.Board()
	return b.MineCount() - b.CountState(engine.Flagged)
}

// Score returns the current score.
func (g *Game) Score() int {
	return computeScore(g.cfg.Scoring, scoreInput{
		cellsDug: g.cellsDug,
		mines:    g.eng.Board().MineCount(),
		seconds:  g.runtime.TicksToSeconds(g.ElapsedTicks()),
		won:      g.eng.Won(),
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.eng.Over(),
		Won:      g.eng.Won(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Result summarizes the session for the result history.
func (g *Game) Result() core.GameResult {
	b := g.eng.Board()
	var d time.Duration
	if g.runtime.TickRate > 0 {
		d = time.Duration(g.ElapsedTicks()) * time.Second / time.Duration(g.runtime.TickRate)
	}
	return core.GameResult{
		Preset:   string(g.preset),
		Width:    b.Width(),
		Height:   b.Height(),
		Mines:    b.MineCount(),
		Won:      g.eng.Won(),
		Duration: d,
		CellsDug: g.cellsDug,
	}
}
