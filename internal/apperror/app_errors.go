package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidBoardSize = errors.New("board size must be between 3 and 5")
	ErrNotANumber       = errors.New("not a number")
	ErrInputClosed      = errors.New("input closed")
)
