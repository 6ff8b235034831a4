package whack

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-whack/internal/board"
	"github.com/vovakirdan/tui-whack/internal/core"
)

// glyph is how an occupant is drawn inside its cell.
type glyph struct {
	text  string
	color core.Color
}

// A decoy mole is drawn exactly like the hazard.
var (
	glyphHole    = glyph{"___", core.ColorGray}
	glyphMole    = glyph{"(o.o)", core.ColorBrown}
	glyphZombie  = glyph{"(x_x)", core.ColorBrightGreen}
	glyphPlant   = glyph{"}@{", core.ColorRed}
	glyphSpecial = glyph{"<$$>", core.ColorBrightYellow}
)

func glyphFor(c board.Cell) glyph {
	switch c.Occupant {
	case board.Mole:
		switch c.Variant {
		case board.HighValue:
			return glyphZombie
		case board.Decoy:
			return glyphPlant
		}
		return glyphMole
	case board.Plant:
		return glyphPlant
	case board.Special:
		return glyphSpecial
	default:
		return glyphHole
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}
	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	if g.display.over {
		g.renderGameOver(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the title, score, high score, countdown and difficulty.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.session.Snapshot()

	dst.DrawTextCentered(0, Title, core.ColorBrightYellow)

	timeColor := core.ColorDefault
	if g.display.countdown <= 10 {
		timeColor = core.ColorBrightRed
	}

	x := 1
	x = drawField(dst, x, 1, "Score ", strconv.Itoa(g.display.score), core.ColorBrightWhite)
	x = drawField(dst, x, 1, "High ", strconv.Itoa(snap.HighScore), core.ColorBrightCyan)
	x = drawField(dst, x, 1, "Time ", fmt.Sprintf("%02d", g.display.countdown), timeColor)
	drawField(dst, x, 1, "Difficulty ", g.difficulty.Title(), core.ColorBrightMagenta)

	if snap.ConsecutiveHits > 1 {
		streak := fmt.Sprintf("Streak x%d", snap.ConsecutiveHits)
		dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(streak)-1, 1, streak, core.ColorOrange)
	}

	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorGray)
}

// drawField draws "label value" and returns the x after it plus a gap.
func drawField(dst *core.Screen, x, y int, label, value string, c core.Color) int {
	dst.DrawTextColor(x, y, label, core.ColorGray)
	x += utf8.RuneCountInString(label)
	dst.DrawTextColor(x, y, value, c)
	return x + utf8.RuneCountInString(value) + 3
}

// renderBoard draws every cell with its number, the cursor and the occupant.
func (g *Game) renderBoard(dst *core.Screen) {
	for _, c := range g.display.cells {
		r := g.layout.cellRect(c.ID)

		border := core.ColorGray
		if c.ID == g.cursor {
			border = core.ColorBrightCyan
		}
		dst.DrawBox(r, border)

		if c.ID < 9 {
			dst.SetColor(r.X+1, r.Y, rune('1'+c.ID), border)
		}

		gl := glyphFor(c)
		cx, cy := r.Center()
		dst.DrawTextColor(cx-utf8.RuneCountInString(gl.text)/2, cy, gl.text, gl.color)
	}
}

// renderFooter draws the latest announcement and the control hints.
func (g *Game) renderFooter(dst *core.Screen) {
	h := dst.Height()
	if toasts := g.display.activeToasts(); len(toasts) > 0 {
		dst.DrawTextCentered(h-2, toasts[len(toasts)-1].text, core.ColorBrightMagenta)
	}
	dst.DrawTextCentered(h-1, g.Controls(), core.ColorGray)
}

// renderGameOver draws the final score box over the board.
func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		fmt.Sprintf("GAME OVER: %d", g.display.final),
		fmt.Sprintf("High score: %d", g.display.high),
	}
	if g.display.final > 0 && g.display.final >= g.display.high {
		lines = append(lines, "New high score!")
	}
	for _, a := range g.session.Unlocked() {
		lines = append(lines, "* "+string(a))
	}
	lines = append(lines, "", "R: play again  B: menu  Q: quit")

	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	cx, cy := g.layout.gridRect().Center()
	box := core.NewRect(cx-(width+4)/2, cy-(len(lines)+2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightRed)

	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		x := cx - utf8.RuneCountInString(l)/2
		dst.DrawTextColor(x, box.Y+1+i, l, c)
	}
}
