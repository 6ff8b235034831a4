package whack

import "github.com/vovakirdan/tui-whack/internal/core"

const (
	hudRows    = 3 // Title line, status line, separator
	footerRows = 2 // Announcement line, controls line

	minCellW = 7 // Border plus the widest glyph
	minCellH = 3
	maxCellW = 13
	maxCellH = 5
)

// layout places the grid of cells on the screen.
type layout struct {
	rows, cols   int
	cellW, cellH int
	origin       core.Point
	tooSmall     bool
}

func newLayout(rows, cols, screenW, screenH int) layout {
	rows, cols = max(rows, 1), max(cols, 1)
	availW := screenW - 2
	availH := screenH - hudRows - footerRows

	l := layout{
		rows:  rows,
		cols:  cols,
		cellW: min(availW/cols, maxCellW),
		cellH: min(availH/rows, maxCellH),
	}
	if l.cellW < minCellW || l.cellH < minCellH {
		l.tooSmall = true
		return l
	}

	gridW, gridH := l.cellW*cols, l.cellH*rows
	l.origin = core.Point{
		X: (screenW - gridW) / 2,
		Y: hudRows + (availH-gridH)/2,
	}
	return l
}

// gridRect returns the area covered by the whole grid.
func (l layout) gridRect() core.Rect {
	return core.NewRect(l.origin.X, l.origin.Y, l.cellW*l.cols, l.cellH*l.rows)
}

// cellRect returns the screen area of cell id, border included.
func (l layout) cellRect(id int) core.Rect {
	row, col := id/l.cols, id%l.cols
	return core.NewRect(l.origin.X+col*l.cellW, l.origin.Y+row*l.cellH, l.cellW, l.cellH)
}

// cellAt returns the cell under p, or -1.
func (l layout) cellAt(p core.Point) int {
	if l.tooSmall || !l.gridRect().ContainsPoint(p) {
		return -1
	}
	col := (p.X - l.origin.X) / l.cellW
	row := (p.Y - l.origin.Y) / l.cellH
	return row*l.cols + col
}
