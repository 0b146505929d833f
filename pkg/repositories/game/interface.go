package game

import (
	"context"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

var ErrNilResult = types.NewGameError(types.ErrInvalidArgument, "round result is required")

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_game

// Repository defines storage operations for settled rounds and the running
// per-player statistics derived from them
type Repository interface {
	// Round results
	SaveRoundResult(ctx context.Context, result *entities.RoundResult) error
	GetPlayerResults(ctx context.Context, name string) ([]*entities.RoundResult, error)

	// Statistics
	GetPlayerStatistics(ctx context.Context, name string) (*entities.PlayerStatistics, error)
	GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
