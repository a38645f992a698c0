package service

import (
	"math/rand"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

// BotService is the computer opponent. Moves are drawn uniformly and never
// depend on earlier rounds, so there is no pattern to exploit.
type BotService interface {
	ChooseMove() entity.Move
}

type botService struct {
	intn func(n int) int
}

func NewBotService() BotService {
	return &botService{intn: rand.Intn} //nolint: gosec // it's ok
}

// NewBotServiceWithRand - bot backed by the given generator; rnd must not be shared across goroutines.
func NewBotServiceWithRand(rnd *rand.Rand) BotService {
	return &botService{intn: rnd.Intn}
}

func (that *botService) ChooseMove() entity.Move {
	return entity.Moves[that.intn(len(entity.Moves))]
}
