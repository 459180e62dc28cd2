package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Board holds a square grid of cells. Row 0 is the top row, column 0 the left-most column.
// MaxDimension is the largest board NewBoard will allocate.
const MaxDimension = 64

type Board struct {
	dimension int
	cells     [][]Cell
}

func NewBoard(dimension int) (*Board, error) {
	if dimension < 1 || dimension > MaxDimension {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", apperror.ErrInvalidDimension, dimension, MaxDimension)
	}

	cells := make([][]Cell, dimension)
	for row := range cells {
		cells[row] = make([]Cell, dimension)
	}

	return &Board{
		dimension: dimension,
		cells:     cells,
	}, nil
}

func (that *Board) Dimension() int {
	return that.dimension
}

// Place - puts the token at (row, column) if the cell is empty.
func (that *Board) Place(row, column int, token Token) error {
	if !that.inBounds(row, column) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfBounds, row, column)
	}

	cell := &that.cells[row][column]
	if cell.Value() != TokenEmpty {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row, column)
	}

	cell.Occupy(token)

	return nil
}

// Cell - returns the value of a single cell.
func (that *Board) Cell(row, column int) (Token, error) {
	if !that.inBounds(row, column) {
		return TokenEmpty, fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfBounds, row, column)
	}

	return that.cells[row][column].Value(), nil
}

// Snapshot - returns a row-major copy of every cell value.
func (that *Board) Snapshot() [][]Token {
	snapshot := make([][]Token, that.dimension)
	for row := range that.cells {
		snapshot[row] = make([]Token, that.dimension)
		for column := range that.cells[row] {
			snapshot[row][column] = that.cells[row][column].Value()
		}
	}

	return snapshot
}

func (that *Board) IsFull() bool {
	for row := range that.cells {
		for column := range that.cells[row] {
			if that.cells[row][column].Value() == TokenEmpty {
				return false
			}
		}
	}

	return true
}

func (that *Board) inBounds(row, column int) bool {
	return row >= 0 && row < that.dimension && column >= 0 && column < that.dimension
}
