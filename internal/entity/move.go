package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
)

// Move is one of the three hand shapes. The zero value is Rock.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves lists every valid move in index order.
var Moves = [3]Move{Rock, Paper, Scissors}

var moveNames = [3]string{"rock", "paper", "scissors"}

func (that Move) Valid() bool {
	return that >= Rock && that <= Scissors
}

func (that Move) String() string {
	if !that.Valid() {
		return fmt.Sprintf("Move(%d)", int(that))
	}
	return moveNames[that]
}

// ParseMove - parses a move name, case-insensitive.
func ParseMove(name string) (Move, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, moveName := range moveNames {
		if moveName == name {
			return Move(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, name)
}

func (that Move) MarshalText() ([]byte, error) {
	if !that.Valid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMove, int(that))
	}
	return []byte(moveNames[that]), nil
}

func (that *Move) UnmarshalText(text []byte) error {
	move, err := ParseMove(string(text))
	if err != nil {
		return err
	}

	*that = move

	return nil
}
