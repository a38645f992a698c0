// Package rps resolves a rock-paper-scissors round with a constant payoff
// matrix instead of branching on every pairing.
package rps

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

var ErrCorruptPayoff = errors.New("payoff table holds a value outside {-1, 0, 1}")

// payoff[i][j] is the result for a player choosing i against a player choosing j.
// Skew-symmetric with a zero diagonal; never written after init.
var payoff = [3][3]int{
	{0, -1, 1}, // rock vs rock, paper, scissors
	{1, 0, -1}, // paper
	{-1, 1, 0}, // scissors
}

// Resolve - returns the outcome of move1 against move2 for the player who chose move1.
func Resolve(move1, move2 entity.Move) (entity.Outcome, error) {
	if !move1.Valid() {
		return entity.Draw, fmt.Errorf("%w: first move %d", apperror.ErrInvalidMove, int(move1))
	}

	if !move2.Valid() {
		return entity.Draw, fmt.Errorf("%w: second move %d", apperror.ErrInvalidMove, int(move2))
	}

	return toOutcome(payoff[move1][move2])
}

func toOutcome(value int) (entity.Outcome, error) {
	switch value {
	case -1:
		return entity.Lose, nil
	case 0:
		return entity.Draw, nil
	case 1:
		return entity.Win, nil
	default:
		return entity.Draw, fmt.Errorf("%w: %d", ErrCorruptPayoff, value)
	}
}
