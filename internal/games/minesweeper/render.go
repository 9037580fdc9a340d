package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

const (
	cellWidth = 2 // Glyph plus a spacer column
	hudHeight = 2 // Title and status lines
	helpLine  = "arrows move  space dig  f flag  c chord  p pause  q quit"
)

// hintColors is the classic number palette, indexed by hint.
var hintColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// layoutSize returns the smallest screen that fits a w x h board.
func layoutSize(w, h int) (minW, minH int) {
	boxW := w*cellWidth + 3
	minW = max(boxW, len(helpLine))
	minH = hudHeight + h + 2 + 1
	return minW, minH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	b := g.eng.Board()
	_, minH := layoutSize(b.Width(), b.Height())
	box := core.NewRect(0, 0, b.Width()*cellWidth+3, b.Height()+2)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height()-minH)/2 + hudHeight

	g.renderHUD(dst, box)
	g.renderBoard(dst, box)
	dst.DrawTextCentered(box.Bottom(), helpLine)
	g.renderOverlay(dst, box)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")

	minW, minH := layoutSize(g.cfg.Board.Width, g.cfg.Board.Height)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, please resize terminal", minW, minH))
}

func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	dst.DrawTextCentered(box.Y-2, "MINESWEEPER")

	left := fmt.Sprintf("Mines: %d", g.MinesLeft())
	right := fmt.Sprintf("Time: %03d", g.runtime.TicksToSeconds(g.ElapsedTicks()))
	mid := string(g.preset)

	// Small boards are narrower than the status line, so widen it around
	// the board's center instead of letting the fields overlap.
	w := max(box.W, len(left)+len(mid)+len(right)+2)
	x := box.X + (box.W-w)/2
	y := box.Y - 1

	dst.DrawColoredText(x, y, left, core.ColorBrightRed)
	dst.DrawText(x+(w-len(mid))/2, y, mid)
	dst.DrawColoredText(x+w-len(right), y, right, core.ColorBrightYellow)
}

func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	dst.DrawBox(box)
	if g.effect.flashOn() {
		g.paintBorder(dst, box, core.ColorBrightRed)
	}

	b := g.eng.Board()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p := b.PosOf(x, y)
			r, c := g.glyph(p)
			if x == g.cursorX && y == g.cursorY && !g.eng.Over() {
				c = core.ColorInverse
			}
			dst.SetColored(box.X+2+x*cellWidth, box.Y+1+y, r, c)
		}
	}
}

// glyph returns how a cell is drawn right now.
func (g *Game) glyph(p engine.Pos) (rune, core.Color) {
	cell := g.eng.Board().Cell(p)
	over := g.eng.Over()

	switch cell.State {
	case engine.Detonated:
		if g.effect.kind == effectDetonate && !g.effect.flashOn() {
			return '*', core.ColorYellow
		}
		return '*', core.ColorBrightRed
	case engine.Flagged:
		if over && !cell.IsMine() {
			return 'x', core.ColorYellow // Misplaced flag
		}
		return 'F', core.ColorBrightRed
	case engine.Dug:
		r := ' '
		if cell.Hint() > 0 {
			r = rune('0' + cell.Hint())
		}
		if g.effect.kind == effectReveal {
			return r, core.ColorBrightWhite
		}
		return r, hintColors[cell.Hint()]
	default:
		if over && cell.IsMine() && !g.eng.Won() {
			return '*', core.ColorGray
		}
		return '·', core.ColorGray
	}
}

func (g *Game) paintBorder(dst *core.Screen, box core.Rect, c core.Color) {
	for x := box.X; x < box.Right(); x++ {
		dst.SetColored(x, box.Y, dst.Get(x, box.Y), c)
		dst.SetColored(x, box.Bottom()-1, dst.Get(x, box.Bottom()-1), c)
	}
	for y := box.Y; y < box.Bottom(); y++ {
		dst.SetColored(box.X, y, dst.Get(box.X, y), c)
		dst.SetColored(box.Right()-1, y, dst.Get(box.Right()-1, y), c)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, box core.Rect) {
	var lines []string
	var color core.Color

	switch {
	case g.paused:
		lines = []string{"PAUSED", "p to resume"}
		color = core.ColorBrightCyan
	case g.eng.Over() && g.eng.Won():
		lines = []string{"YOU WIN!", fmt.Sprintf("Score: %d", g.Score()), "r restart  q quit"}
		color = core.ColorBrightGreen
	case g.eng.Over() && !g.effect.busy():
		lines = []string{"BOOM!", fmt.Sprintf("Score: %d", g.Score()), "r restart  q quit"}
		color = core.ColorBrightRed
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	panel := box.Centered(w+4, len(lines)+2)
	dst.DrawRect(panel, ' ')
	dst.DrawBox(panel)
	for i, l := range lines {
		dst.DrawColoredText(panel.X+(panel.W-len(l))/2, panel.Y+1+i, l, color)
	}
}
