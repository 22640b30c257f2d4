package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrGameInProgress     = errors.New("game is in progress")
	ErrBoardLocked        = errors.New("board is locked, computer is thinking")
	ErrCellOccupied       = errors.New("cell is already occupied")
)
