package apperror

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidBestOf = errors.New("best-of must be a positive odd number")
	ErrMatchFinished = errors.New("match is already finished")
	ErrNoActiveMatch = errors.New("no active match")
)
