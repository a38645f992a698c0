package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

type mockPlayerService struct {
	mock.Mock
}

func (that *mockPlayerService) CreatePlayer(ctx context.Context) (*entity.Player, error) {
	args := that.Called(ctx)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (that *mockPlayerService) GetPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	args := that.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (that *mockPlayerService) UpdatePlayer(ctx context.Context, player *entity.Player) error {
	return that.Called(ctx, player).Error(0)
}

type mockMatchService struct {
	mock.Mock
}

func (that *mockMatchService) CreateMatch(ctx context.Context, player *entity.Player, bestOf int) (*entity.Match, error) {
	args := that.Called(ctx, player, bestOf)
	match, _ := args.Get(0).(*entity.Match)
	if match != nil {
		player.MatchID = match.ID
	}
	return match, args.Error(1)
}

func (that *mockMatchService) GetMatchByID(ctx context.Context, id string) (*entity.Match, error) {
	args := that.Called(ctx, id)
	match, _ := args.Get(0).(*entity.Match)
	return match, args.Error(1)
}

func (that *mockMatchService) UpdateMatch(ctx context.Context, match *entity.Match) error {
	return that.Called(ctx, match).Error(0)
}

func (that *mockMatchService) DeleteMatch(ctx context.Context, matchID string) error {
	return that.Called(ctx, matchID).Error(0)
}

// fixedBot replays a scripted sequence of moves.
type fixedBot struct {
	moves []entity.Move
	calls int
}

func (that *fixedBot) ChooseMove() entity.Move {
	move := that.moves[that.calls%len(that.moves)]
	that.calls++
	return move
}
