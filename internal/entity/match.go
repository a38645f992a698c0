package entity

import (
	"fmt"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	WinnerPlayer = "player"
	WinnerBot    = "bot"
)

type Round struct {
	Number     int     `json:"number"`
	PlayerMove Move    `json:"player_move"`
	BotMove    Move    `json:"bot_move"`
	Outcome    Outcome `json:"outcome"`
}

// Score is counted from the player's side.
type Score struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Match is a best-of-N series between a player and the bot.
type Match struct {
	ID       string  `json:"id"`
	PlayerID string  `json:"player_id"`
	BestOf   int     `json:"best_of"`
	Rounds   []Round `json:"rounds"`
	Score    Score   `json:"score"`
	Status   string  `json:"status"`
	Winner   string  `json:"winner,omitempty"`
}

// ValidateBestOf - checks that a series length can produce a winner.
func ValidateBestOf(bestOf int) error {
	if bestOf <= 0 || bestOf%2 == 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBestOf, bestOf)
	}
	return nil
}

func NewMatch(id, playerID string, bestOf int) (*Match, error) {
	if err := ValidateBestOf(bestOf); err != nil {
		return nil, err
	}

	return &Match{
		ID:       id,
		PlayerID: playerID,
		BestOf:   bestOf,
		Rounds:   []Round{},
		Status:   StatusOngoing,
	}, nil
}

func (that *Match) RoundsToWin() int {
	return that.BestOf/2 + 1
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// LastRound - returns the most recent round, or nil before the first one.
func (that *Match) LastRound() *Round {
	if len(that.Rounds) == 0 {
		return nil
	}
	return &that.Rounds[len(that.Rounds)-1]
}

// AddRound records a resolved round and finishes the match once either side
// reaches RoundsToWin. Draws never finish a match.
func (that *Match) AddRound(playerMove, botMove Move, outcome Outcome) (*Round, error) {
	if that.IsFinished() {
		return nil, apperror.ErrMatchFinished
	}

	if !playerMove.Valid() || !botMove.Valid() {
		return nil, fmt.Errorf("%w: %d vs %d", apperror.ErrInvalidMove, int(playerMove), int(botMove))
	}

	switch outcome {
	case Win:
		that.Score.Wins++
	case Lose:
		that.Score.Losses++
	case Draw:
		that.Score.Draws++
	default:
		return nil, fmt.Errorf("unknown outcome %d", int(outcome))
	}

	that.Rounds = append(that.Rounds, Round{
		Number:     len(that.Rounds) + 1,
		PlayerMove: playerMove,
		BotMove:    botMove,
		Outcome:    outcome,
	})

	switch toWin := that.RoundsToWin(); {
	case that.Score.Wins >= toWin:
		that.Status = StatusFinished
		that.Winner = WinnerPlayer
	case that.Score.Losses >= toWin:
		that.Status = StatusFinished
		that.Winner = WinnerBot
	}

	return that.LastRound(), nil
}
