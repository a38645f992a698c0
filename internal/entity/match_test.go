package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
)

func TestNewMatch(t *testing.T) {
	t.Run("Best of three", func(t *testing.T) {
		// When: a new match is created
		match, err := NewMatch("m1", "p1", 3)
		require.NoError(t, err)

		// Then: the match should be ongoing with an empty history
		expected := &Match{
			ID:       "m1",
			PlayerID: "p1",
			BestOf:   3,
			Rounds:   []Round{},
			Status:   StatusOngoing,
		}
		require.Equal(t, expected, match)
		assert.Equal(t, 2, match.RoundsToWin())
		assert.Nil(t, match.LastRound())
	})

	t.Run("Even best-of is rejected", func(t *testing.T) {
		_, err := NewMatch("m1", "p1", 4)

		require.ErrorIs(t, err, apperror.ErrInvalidBestOf)
	})

	t.Run("Zero best-of is rejected", func(t *testing.T) {
		_, err := NewMatch("m1", "p1", 0)

		require.ErrorIs(t, err, apperror.ErrInvalidBestOf)
	})
}

func TestMatch_AddRound(t *testing.T) {
	t.Run("Player wins the series", func(t *testing.T) {
		// Given: a best-of-three match
		match, err := NewMatch("m1", "p1", 3)
		require.NoError(t, err)

		// When: the player wins, draws, then wins again
		_, err = match.AddRound(Rock, Scissors, Win)
		require.NoError(t, err)
		_, err = match.AddRound(Paper, Paper, Draw)
		require.NoError(t, err)
		require.True(t, match.IsOngoing())

		round, err := match.AddRound(Scissors, Paper, Win)
		require.NoError(t, err)

		// Then: the match is finished in the player's favour
		assert.Equal(t, 3, round.Number)
		assert.Equal(t, Score{Wins: 2, Losses: 0, Draws: 1}, match.Score)
		assert.True(t, match.IsFinished())
		assert.Equal(t, WinnerPlayer, match.Winner)
		assert.Len(t, match.Rounds, 3)
	})

	t.Run("Bot wins the series", func(t *testing.T) {
		// Given: a single-round match
		match, err := NewMatch("m1", "p1", 1)
		require.NoError(t, err)

		// When: the player loses the only decisive round
		_, err = match.AddRound(Scissors, Rock, Lose)
		require.NoError(t, err)

		// Then: the bot wins
		assert.True(t, match.IsFinished())
		assert.Equal(t, WinnerBot, match.Winner)
	})

	t.Run("Draws never finish a match", func(t *testing.T) {
		match, err := NewMatch("m1", "p1", 1)
		require.NoError(t, err)

		for range 5 {
			_, err = match.AddRound(Rock, Rock, Draw)
			require.NoError(t, err)
		}

		assert.True(t, match.IsOngoing())
		assert.Equal(t, 5, match.Score.Draws)
		assert.Empty(t, match.Winner)
	})

	t.Run("Round after finish", func(t *testing.T) {
		// Given: a finished match
		match, err := NewMatch("m1", "p1", 1)
		require.NoError(t, err)
		_, err = match.AddRound(Paper, Rock, Win)
		require.NoError(t, err)

		// When: another round is recorded
		_, err = match.AddRound(Paper, Rock, Win)

		// Then: ErrMatchFinished is returned and the history is unchanged
		require.ErrorIs(t, err, apperror.ErrMatchFinished)
		assert.Len(t, match.Rounds, 1)
	})

	t.Run("Invalid move", func(t *testing.T) {
		match, err := NewMatch("m1", "p1", 3)
		require.NoError(t, err)

		_, err = match.AddRound(Move(9), Rock, Win)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Empty(t, match.Rounds)
		assert.Equal(t, Score{}, match.Score)
	})
}
