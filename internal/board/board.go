// Package board holds the Whack-a-Mole grid: a fixed set of addressable
// cells, each with at most one occupant, and the random cell picker used by
// the spawn tasks.
package board

import (
	"errors"
	"fmt"
)

// ErrOccupied is returned by Place when the cell holds another occupant.
var ErrOccupied = errors.New("board: cell occupied")

// Occupant is what currently sits in a cell.
type Occupant int

const (
	None    Occupant = iota
	Mole             // Regular target
	Plant            // Hazard: selecting it ends the game
	Special          // Bonus target with its own expiry
)

// String returns a human-readable name for the occupant.
func (o Occupant) String() string {
	switch o {
	case None:
		return "None"
	case Mole:
		return "Mole"
	case Plant:
		return "Plant"
	case Special:
		return "Special"
	default:
		return "Unknown"
	}
}

// Variant qualifies a Mole. It is decided by the spawn roll and only affects
// how the mole looks; scoring is decided by the selection rules.
type Variant int

const (
	Plain     Variant = iota
	HighValue         // Rendered as a zombie mole
	Decoy             // Rendered as a piranha plant
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case Plain:
		return "Plain"
	case HighValue:
		return "HighValue"
	case Decoy:
		return "Decoy"
	default:
		return "Unknown"
	}
}

// Cell is a copy of one board cell.
type Cell struct {
	ID       int
	Occupant Occupant
	Variant  Variant
}

// Empty reports whether nothing occupies the cell.
func (c Cell) Empty() bool {
	return c.Occupant == None
}

// Board is a rows x cols grid of cells addressed by index in [0, rows*cols).
// Cell state is owned by the board; accessors return copies.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// New creates an empty board. Non-positive dimensions are treated as 1.
func New(rows, cols int) *Board {
	rows = max(rows, 1)
	cols = max(cols, 1)

	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for i := range b.cells {
		b.cells[i].ID = i
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// Valid reports whether id addresses a cell on this board.
func (b *Board) Valid(id int) bool {
	return id >= 0 && id < len(b.cells)
}

// Cell returns a copy of the cell at id. Out-of-range ids return an empty
// cell carrying the requested id.
func (b *Board) Cell(id int) Cell {
	if !b.Valid(id) {
		return Cell{ID: id}
	}
	return b.cells[id]
}

// Cells returns a copy of every cell in index order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Position returns the row and column of id.
func (b *Board) Position(id int) (row, col int) {
	return id / b.cols, id % b.cols
}

// Index returns the cell id at row, col, or -1 when outside the grid.
func (b *Board) Index(row, col int) int {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return -1
	}
	return row*b.cols + col
}

// CanPlace reports whether occ may be spawned at id: the cell must be empty
// or already hold the same kind of occupant.
func (b *Board) CanPlace(id int, occ Occupant) bool {
	if !b.Valid(id) {
		return false
	}
	cur := b.cells[id].Occupant
	return cur == None || cur == occ
}

// Place sets the occupant of id. It fails with ErrOccupied when the cell
// holds a different kind of occupant, leaving the cell unchanged.
func (b *Board) Place(id int, occ Occupant, v Variant) error {
	if !b.Valid(id) {
		return fmt.Errorf("board: cell %d out of range [0, %d)", id, len(b.cells))
	}
	if cur := b.cells[id].Occupant; cur != None && cur != occ {
		return fmt.Errorf("%w: cell %d holds %v", ErrOccupied, id, cur)
	}
	b.cells[id].Occupant = occ
	b.cells[id].Variant = v
	return nil
}

// Clear empties id. Out-of-range ids are ignored.
func (b *Board) Clear(id int) {
	if !b.Valid(id) {
		return
	}
	b.cells[id].Occupant = None
	b.cells[id].Variant = Plain
}

// Count returns how many cells hold occ.
func (b *Board) Count(occ Occupant) int {
	n := 0
	for _, c := range b.cells {
		if c.Occupant == occ {
			n++
		}
	}
	return n
}
