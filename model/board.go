package model

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/rules"
)

const (
	glyphAlive = "x"
	glyphDead  = " "

	rowSeparator  = "- "
	cellSeparator = "|"
)

// ErrInvalidArgument is returned when a board is built from bad dimensions or seed percentage
var ErrInvalidArgument = errors.New("invalid argument")

// Cell is a single board position
type Cell struct {
	Alive bool
}

// Source draws uniformly distributed integers in [0, n)
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Board is a fixed-size Game of Life grid with clipped (non-wrapping) edges
type Board struct {
	rows       int
	columns    int
	cells      [][]Cell
	next       [][]Cell // back buffer swapped in by NextGeneration
	generation int
}

// NewEmptyBoard creates an all-dead board at generation 1
func NewEmptyBoard(rows, columns int) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"[NewEmptyBoard] dimensions must be positive, got %dx%d", rows, columns)
	}
	return &Board{
		rows:       rows,
		columns:    columns,
		cells:      newCells(rows, columns),
		next:       newCells(rows, columns),
		generation: 1,
	}, nil
}

// NewBoard creates a board and marks floor(rows*columns*livePercent/100) randomly
// drawn positions alive. Draws are made with replacement, so the realized population
// can fall short of the target. A nil src uses the global generator.
func NewBoard(rows, columns, livePercent int, src Source) (*Board, error) {
	if livePercent < 0 || livePercent > 100 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"[NewBoard] live percent must be within [0,100], got %d", livePercent)
	}
	b, err := NewEmptyBoard(rows, columns)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = globalSource{}
	}
	b.randomize(livePercent, src)
	return b, nil
}

func newCells(rows, columns int) [][]Cell {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, columns)
	}
	return cells
}

func (b *Board) randomize(livePercent int, src Source) {
	target := b.rows * b.columns * livePercent / 100
	for range target {
		b.cells[src.IntN(b.rows)][src.IntN(b.columns)].Alive = true
	}
}

// Rows returns the row count
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the column count
func (b *Board) Columns() int {
	return b.columns
}

// Generation returns the current generation, starting at 1
func (b *Board) Generation() int {
	return b.generation
}

// Set sets a cell to alive (true) or dead (false); out-of-range positions are ignored
func (b *Board) Set(row, col int, alive bool) {
	if b.contains(row, col) {
		b.cells[row][col].Alive = alive
	}
}

// Get returns the state of a cell; out-of-range positions read as dead
func (b *Board) Get(row, col int) bool {
	if !b.contains(row, col) {
		return false
	}
	return b.cells[row][col].Alive
}

func (b *Board) contains(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

// CountAliveNeighbours counts living cells in the 3x3 neighborhood of (row, col),
// excluding the cell itself. Positions past the edges do not exist.
func (b *Board) CountAliveNeighbours(row, col int) int {
	var (
		count  = 0
		minRow = max(0, row-1)
		maxRow = min(b.rows-1, row+1)
		minCol = max(0, col-1)
		maxCol = min(b.columns-1, col+1)
	)
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if b.cells[r][c].Alive {
				count++
			}
		}
	}
	return count
}

// NextGeneration advances every cell at once from the current state, then swaps buffers
func (b *Board) NextGeneration() {
	for r := range b.rows {
		for c := range b.columns {
			b.next[r][c].Alive = rules.ApplyConwayRules(b.CountAliveNeighbours(r, c), b.cells[r][c].Alive)
		}
	}
	b.cells, b.next = b.next, b.cells
	b.generation++
}

// CountAliveCells returns the total number of living cells
func (b *Board) CountAliveCells() (count int) {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.Alive {
				count++
			}
		}
	}
	return
}

// Render formats the board as pipe-delimited rows between dashed separator lines
func (b *Board) Render() string {
	var (
		sb        strings.Builder
		separator = strings.Repeat(rowSeparator, b.columns+1)
	)
	sb.WriteString(separator)
	sb.WriteString("\n")
	for _, row := range b.cells {
		sb.WriteString(cellSeparator)
		for _, cell := range row {
			if cell.Alive {
				sb.WriteString(glyphAlive)
			} else {
				sb.WriteString(glyphDead)
			}
			sb.WriteString(cellSeparator)
		}
		sb.WriteString("\n")
		sb.WriteString(separator)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render()
}
