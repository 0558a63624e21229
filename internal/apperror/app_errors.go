package apperror

import "errors"

var (
	ErrGameOver       = errors.New("game is already over")
	ErrRoundNotOver   = errors.New("round is not over yet")
	ErrRoundOver      = errors.New("round is already over")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInputClosed    = errors.New("input stream closed")
	ErrPlayerNotFound = errors.New("player not found")
)
