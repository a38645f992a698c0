package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/pkg"
)

type MatchService interface {
	CreateMatch(ctx context.Context, player *entity.Player, bestOf int) (*entity.Match, error)
	GetMatchByID(ctx context.Context, id string) (*entity.Match, error)
	UpdateMatch(ctx context.Context, match *entity.Match) error
	DeleteMatch(ctx context.Context, matchID string) error
}

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type matchService struct {
	matchRepo matchRepo
}

func NewMatchService(matchRepo matchRepo) MatchService {
	return &matchService{
		matchRepo: matchRepo,
	}
}

// CreateMatch - stores a new match and points the player at it. The player is not saved here.
func (that *matchService) CreateMatch(ctx context.Context, player *entity.Player, bestOf int) (*entity.Match, error) {
	match, err := entity.NewMatch(pkg.GenerateMatchID(), player.ID, bestOf)
	if err != nil {
		return nil, fmt.Errorf("failed to build match: %w", err)
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match in storage: %w", err)
	}

	player.MatchID = match.ID

	return match, nil
}

func (that *matchService) GetMatchByID(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve match from storage: %w", err)
	}

	return match, nil
}

func (that *matchService) UpdateMatch(ctx context.Context, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	return nil
}

func (that *matchService) DeleteMatch(ctx context.Context, matchID string) error {
	if err := that.matchRepo.DeleteByID(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}
