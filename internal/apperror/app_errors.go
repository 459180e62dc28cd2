package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfBounds      = errors.New("position is out of bounds")
	ErrInvalidDimension = errors.New("board dimension is out of range")
	ErrNoActiveGame     = errors.New("no active game")
)
