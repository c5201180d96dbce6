package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrCellOutOfRange = fmt.Errorf("%w: cell is out of range", ErrInvalidMove)
	ErrCellOccupied   = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)

	ErrGameFinished   = errors.New("game is already finished")
	ErrInvalidSize    = errors.New("board size must be positive")
	ErrInvalidPlayer  = errors.New("unknown player")
	ErrSearchTooLarge = errors.New("position is too large for exhaustive search")
)
