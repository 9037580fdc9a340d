package minesweeper

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

const testConfigYAML = `
board:
  width: 8
  height: 8
  mines: 10
animation:
  dig_ticks: 3
  flood_ticks_per_cell: 1
  detonate_ticks: 8
  max_ticks: 6
scoring:
  points_per_cell: 10
  win_bonus: 50
  time_penalty: 1
`

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// newGame returns a reset game reading a fixed config file.
func newGame(t *testing.T, preset config.DifficultyPreset, seed int64) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minesweeper.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := NewWithPreset(preset)
	g.Reset(testRuntime(seed))
	return g
}

// withBoard swaps in a hand-built board so scenarios are exact.
func withBoard(t *testing.T, g *Game, w, h int, mines ...int) {
	t.Helper()
	pos := make([]engine.Pos, len(mines))
	for i, m := range mines {
		pos[i] = engine.Pos(m)
	}
	b, err := engine.NewBoardWithMines(w, h, pos)
	if err != nil {
		t.Fatalf("NewBoardWithMines: %v", err)
	}
	g.cfg.Board = config.BoardConfig{Width: w, Height: h, Mines: len(mines)}
	g.attach(engine.NewWithBoard(b, rand.New(rand.NewSource(1))), g.eventLog)
	g.cursorX, g.cursorY = 0, 0
	g.checkScreenSize()
}

func step(g *Game, actions ...core.Action) core.StepResult {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return g.Step(f)
}

// settle steps until no effect is playing.
func settle(g *Game) {
	for i := 0; g.effect.busy() && i < 1000; i++ {
		step(g)
	}
}

func actAt(g *Game, x, y int, a core.Action) core.StepResult {
	settle(g)
	g.cursorX, g.cursorY = x, y
	return step(g, a)
}

// cornerBoard is a 4x4 board with mines in the left column's corners.
// Digging (3,0) opens everything except cells 4 and 8 and the mines.
func cornerBoard(t *testing.T) *Game {
	t.Helper()
	g := newGame(t, config.DifficultyEasy, 1)
	withBoard(t, g, 4, 4, 0, 12)
	actAt(g, 3, 0, core.ActionDig)
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("minesweeper should register itself")
	}
	info, ok := registry.Info(GameID)
	if !ok || info.Title != "Minesweeper" || info.Description == "" {
		t.Errorf("registry info = %+v", info)
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { SetDifficultyPreset("normal") })

	SetDifficultyPreset("hard")
	if DifficultyPreset() != config.DifficultyHard {
		t.Errorf("preset = %q, expected hard", DifficultyPreset())
	}
	SetDifficultyPreset("bogus")
	if DifficultyPreset() != config.DifficultyNormal {
		t.Errorf("unknown preset should fall back to normal, got %q", DifficultyPreset())
	}
}

func TestResetUsesPreset(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		w, h   int
		mines  int
	}{
		{config.DifficultyEasy, 9, 9, 10},
		{config.DifficultyNormal, 16, 16, 40},
		{config.DifficultyHard, 30, 16, 99},
		{config.DifficultyCustom, 8, 8, 10},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			g := newGame(t, tc.preset, 3)
			snap := g.Snapshot()
			if snap.Width != tc.w || snap.Height != tc.h || snap.Mines != tc.mines {
				t.Errorf("board = %dx%d/%d, expected %dx%d/%d", snap.Width, snap.Height, snap.Mines, tc.w, tc.h, tc.mines)
			}
			if snap.State != StateReady {
				t.Errorf("State = %q, expected ready", snap.State)
			}
			if snap.CursorX != tc.w/2 || snap.CursorY != tc.h/2 {
				t.Errorf("cursor = (%d, %d), expected board center", snap.CursorX, snap.CursorY)
			}
		})
	}
}

func TestFirstDigNeverLoses(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := newGame(t, config.DifficultyHard, seed)
		step(g, core.ActionDig)

		if snap := g.Snapshot(); snap.State == StateLost {
			t.Fatalf("seed %d: first dig detonated a mine", seed)
		}
		if g.cellsDug == 0 {
			t.Fatalf("seed %d: first dig uncovered nothing", seed)
		}
	}
}

func TestFloodFillThroughGame(t *testing.T) {
	g := cornerBoard(t)

	want := []string{"#100", "#100", "#100", "#100"}
	snap := g.Snapshot()
	if !reflect.DeepEqual(snap.Rows, want) {
		t.Errorf("Rows = %q, expected %q", snap.Rows, want)
	}
	if snap.CellsDug != 12 {
		t.Errorf("CellsDug = %d, expected 12", snap.CellsDug)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q, expected playing", snap.State)
	}
}

func TestDigOnDugCellChordsToWin(t *testing.T) {
	g := cornerBoard(t)

	actAt(g, 0, 0, core.ActionFlag)
	res := actAt(g, 1, 1, core.ActionDig)

	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("State = %+v, expected a win", res.State)
	}
	snap := g.Snapshot()
	if snap.State != StateWon {
		t.Errorf("Snapshot state = %q, expected won", snap.State)
	}
	if snap.CellsDug != 14 {
		t.Errorf("CellsDug = %d, expected 14", snap.CellsDug)
	}
	// 14 cells at 10 points plus 50 per mine, under a second elapsed
	if res.State.Score != 240 {
		t.Errorf("Score = %d, expected 240", res.State.Score)
	}
}

func TestChordWithMisplacedFlagLoses(t *testing.T) {
	g := cornerBoard(t)

	actAt(g, 0, 1, core.ActionFlag) // Cell 4 holds no mine
	res := actAt(g, 1, 1, core.ActionChord)

	if !res.State.GameOver || res.State.Won {
		t.Fatalf("State = %+v, expected a loss", res.State)
	}
	snap := g.Snapshot()
	if snap.Rows[0] != "X100" {
		t.Errorf("row 0 = %q, expected the detonated corner", snap.Rows[0])
	}
	if !snap.Busy {
		t.Error("detonation should start an effect")
	}
	// Loss keeps the per-cell points and nothing else
	if res.State.Score != 120 {
		t.Errorf("Score = %d, expected 120", res.State.Score)
	}
}

func TestDetonationEffectRunsOut(t *testing.T) {
	g := cornerBoard(t)
	actAt(g, 0, 1, core.ActionDig) // Safe, hint 1
	actAt(g, 0, 0, core.ActionDig)

	if !g.eng.Over() {
		t.Fatal("digging a mine should end the game")
	}
	ticks := 0
	for g.effect.busy() {
		step(g)
		ticks++
	}
	if ticks != 8 {
		t.Errorf("detonation lasted %d ticks, expected 8", ticks)
	}
}

func TestEffectVetoesInput(t *testing.T) {
	g := cornerBoard(t)
	if !g.effect.busy() {
		t.Fatal("a dig should start the reveal effect")
	}

	g.cursorX, g.cursorY = 0, 0
	step(g, core.ActionFlag)
	if got := g.Snapshot().Rows[0][0]; got != '#' {
		t.Errorf("flag during effect should be ignored, cell = %q", got)
	}

	actAt(g, 0, 0, core.ActionFlag)
	if got := g.Snapshot().Rows[0][0]; got != 'F' {
		t.Errorf("flag after effect should land, cell = %q", got)
	}
}

func TestRevealEffectLength(t *testing.T) {
	a := config.AnimationConfig{DigTicks: 3, FloodTicksPerCell: 1, MaxTicks: 6}

	tests := []struct {
		cells int
		want  int
	}{
		{1, 3},
		{2, 4},
		{4, 6},
		{40, 6},
	}
	for _, tc := range tests {
		var e effect
		e.startReveal(a, tc.cells)
		if e.ticks != tc.want {
			t.Errorf("startReveal(%d cells) = %d ticks, expected %d", tc.cells, e.ticks, tc.want)
		}
	}

	var e effect
	e.startReveal(config.AnimationConfig{}, 5)
	if e.busy() {
		t.Error("zero-length effects should not block input")
	}
}

func TestFlagsAndMinesLeft(t *testing.T) {
	g := cornerBoard(t)

	if g.MinesLeft() != 2 {
		t.Fatalf("MinesLeft = %d, expected 2", g.MinesLeft())
	}
	actAt(g, 0, 0, core.ActionFlag)
	actAt(g, 0, 1, core.ActionFlag)
	actAt(g, 0, 2, core.ActionFlag)
	if g.MinesLeft() != -1 {
		t.Errorf("MinesLeft = %d, expected -1 with three flags", g.MinesLeft())
	}
	actAt(g, 0, 1, core.ActionFlag)
	if g.MinesLeft() != 0 {
		t.Errorf("MinesLeft = %d, expected 0 after unflagging", g.MinesLeft())
	}
}

func TestWinWatcherUsesLiveSafeCount(t *testing.T) {
	g := newGame(t, config.DifficultyEasy, 1)
	withBoard(t, g, 3, 3, 0, 1, 2)

	// Relocation has nowhere to put the mines, so the board ends up empty
	res := actAt(g, 1, 1, core.ActionDig)

	if !res.State.Won {
		t.Fatalf("State = %+v, expected an immediate win", res.State)
	}
	snap := g.Snapshot()
	if snap.Mines != 0 || snap.CellsDug != 9 {
		t.Errorf("mines/dug = %d/%d, expected 0/9", snap.Mines, snap.CellsDug)
	}
}

func TestCursorWraps(t *testing.T) {
	g := newGame(t, config.DifficultyEasy, 1)
	g.cursorX, g.cursorY = 0, 0

	step(g, core.ActionLeft)
	step(g, core.ActionUp)
	if g.cursorX != 8 || g.cursorY != 8 {
		t.Errorf("cursor = (%d, %d), expected (8, 8)", g.cursorX, g.cursorY)
	}
	step(g, core.ActionRight)
	if g.cursorX != 0 {
		t.Errorf("cursorX = %d, expected wrap to 0", g.cursorX)
	}
}

func TestTimerAndPause(t *testing.T) {
	g := newGame(t, config.DifficultyEasy, 5)
	if g.ElapsedTicks() != 0 {
		t.Fatal("timer should not run before the first dig")
	}

	step(g, core.ActionDig)
	if g.eng.Over() {
		t.Skip("seed opened the whole board")
	}
	for i := 0; i < 120; i++ {
		step(g)
	}
	if got := g.runtime.TicksToSeconds(g.ElapsedTicks()); got != 2 {
		t.Errorf("elapsed = %ds, expected 2", got)
	}

	step(g, core.ActionPause)
	frozen := g.ElapsedTicks()
	for i := 0; i < 30; i++ {
		step(g, core.ActionDig)
	}
	if g.ElapsedTicks() != frozen {
		t.Errorf("timer moved while paused: %d -> %d", frozen, g.ElapsedTicks())
	}
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Error("game should report paused")
	}

	step(g, core.ActionPause)
	step(g)
	if g.ElapsedTicks() != frozen+1 {
		t.Errorf("timer should resume, got %d after %d", g.ElapsedTicks(), frozen)
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newGame(t, config.DifficultyEasy, 9)
	step(g, core.ActionDig)
	before := g.Snapshot().Rows

	g.Resize(20, 10)
	if !g.State().Paused || g.Snapshot().State != StatePausedSmall {
		t.Error("tiny window should pause the game")
	}
	settle(g)
	step(g, core.ActionFlag)

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("game should resume once the window fits")
	}
	if after := g.Snapshot().Rows; !reflect.DeepEqual(before, after) {
		t.Errorf("board changed across resize:\n%q\n%q", before, after)
	}
}

func TestResultAfterWin(t *testing.T) {
	g := cornerBoard(t)
	actAt(g, 0, 0, core.ActionFlag)
	actAt(g, 1, 1, core.ActionDig)

	r := g.Result()
	if !r.Won || r.CellsDug != 14 || r.Mines != 2 {
		t.Errorf("Result = %+v", r)
	}
	if r.Width != 4 || r.Height != 4 || r.Preset != "easy" {
		t.Errorf("Result board = %+v", r)
	}
	if r.Duration <= 0 || r.Duration >= 1e9 {
		t.Errorf("Duration = %v, expected a fraction of a second", r.Duration)
	}
}

func TestSnapshotDeterminism(t *testing.T) {
	script := [][]core.Action{
		{core.ActionDig},
		{core.ActionRight}, {core.ActionRight}, {core.ActionDown},
		{core.ActionDig},
		{core.ActionLeft}, {core.ActionFlag},
		{core.ActionUp}, {core.ActionUp}, {core.ActionDig},
	}

	play := func() Snapshot {
		g := newGame(t, config.DifficultyNormal, 1234)
		for _, actions := range script {
			step(g, actions...)
			for i := 0; i < 10; i++ {
				step(g)
			}
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", a, b)
	}
}

func TestComputeScore(t *testing.T) {
	s := config.ScoringConfig{PointsPerCell: 10, WinBonus: 50, TimePenalty: 1}

	tests := []struct {
		name string
		in   scoreInput
		want int
	}{
		{"nothing dug", scoreInput{}, 0},
		{"loss", scoreInput{cellsDug: 7, mines: 10, seconds: 3}, 70},
		{"fast win", scoreInput{cellsDug: 71, mines: 10, seconds: 20, won: true}, 710 + 480},
		{"slow win floors at base", scoreInput{cellsDug: 71, mines: 10, seconds: 9999, won: true}, 710},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := computeScore(s, tc.in); got != tc.want {
				t.Errorf("computeScore = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestResetRestartsSameBoard(t *testing.T) {
	g := newGame(t, config.DifficultyEasy, 7)
	eng := g.eng
	step(g, core.ActionDig)
	settle(g)

	g.Reset(testRuntime(7))
	if g.eng != eng {
		t.Fatal("Reset with an unchanged board should restart the existing engine")
	}
	if snap := g.Snapshot(); snap.State != StateReady || snap.CellsDug != 0 || snap.Mines != 10 {
		t.Errorf("after restart: state %q, dug %d, mines %d", snap.State, snap.CellsDug, snap.Mines)
	}

	// The restarted board matches a fresh game with the same seed.
	fresh := newGame(t, config.DifficultyEasy, 7)
	if !reflect.DeepEqual(g.eng.Board().Mines(), fresh.eng.Board().Mines()) {
		t.Error("restart and a fresh game with the same seed should lay the same mines")
	}

	// Listeners survive the restart exactly once.
	step(g, core.ActionDig)
	if g.cellsDug == 0 || g.cellsDug != g.eng.Board().CountState(engine.Dug) {
		t.Errorf("cellsDug = %d, board has %d dug cells", g.cellsDug, g.eng.Board().CountState(engine.Dug))
	}
	var untouched engine.Pos = -1
	for p := engine.Pos(0); p < engine.Pos(g.eng.Board().Len()); p++ {
		if g.eng.Board().Cell(p).State == engine.Untouched {
			untouched = p
			break
		}
	}
	if untouched < 0 {
		t.Fatal("no untouched cell left")
	}
	g.eng.ToggleFlag(untouched)
	if g.eng.Board().Cell(untouched).State != engine.Untouched {
		t.Error("the effect veto should still be installed after restart")
	}
}

func TestResetNewBoardBuildsEngine(t *testing.T) {
	g := newGame(t, config.DifficultyEasy, 7)
	eng := g.eng

	g.requested = config.DifficultyHard
	g.Reset(testRuntime(7))
	if g.eng == eng {
		t.Error("a different board size needs a new engine")
	}
	if snap := g.Snapshot(); snap.Width != 30 || snap.Height != 16 {
		t.Errorf("board = %dx%d, expected 30x16", snap.Width, snap.Height)
	}
}

func TestNewEngineFallsBackToDefaultBoard(t *testing.T) {
	board, eng := newEngine(config.BoardConfig{Width: 2, Height: 2, Mines: 9}, 1)
	if board != config.DefaultMinesweeperConfig().Board {
		t.Errorf("board = %+v, expected the default board", board)
	}
	b := eng.Board()
	if b.Width() != board.Width || b.Height() != board.Height || b.MineCount() != board.Mines {
		t.Errorf("engine board = %dx%d/%d, expected %+v", b.Width(), b.Height(), b.MineCount(), board)
	}
}
