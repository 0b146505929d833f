package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/game"
)

// Service records settled rounds and ranks the players at the table
type Service struct {
	repository game.Repository
	logger     *logging.Logger
}

// NewService creates a new statistics service
func NewService(repository game.Repository, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default
	}
	return &Service{
		repository: repository,
		logger:     logger.WithPrefix("statistics"),
	}
}

// PlayerRank represents a player's statistics with ranking information
type PlayerRank struct {
	*entities.PlayerStatistics
	Rank        int
	WinRate     float64
	ProfitRate  float64
	IsTopWinner bool
}

// Leaderboard represents a paginated ranking of the players by net winnings
type Leaderboard struct {
	Players        []*PlayerRank
	TotalPlayers   int
	CurrentPage    int
	TotalPages     int
	PlayersPerPage int
	LastUpdated    time.Time
}

// RecordRound stores a settled round; the repository folds it into each player's totals
func (s *Service) RecordRound(ctx context.Context, result *entities.RoundResult) error {
	if err := s.repository.SaveRoundResult(ctx, result); err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to record round", err)
	}
	s.logger.Debug("Recorded round %s with %d players", result.RoundID, len(result.PlayerResults))
	return nil
}

// GetStandings ranks every player who has played at least one round
func (s *Service) GetStandings(ctx context.Context) ([]*PlayerRank, error) {
	allStats, err := s.repository.GetAllPlayerStatistics(ctx)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to load statistics", err)
	}

	playerRanks := make([]*PlayerRank, 0, len(allStats))
	for _, stats := range allStats {
		// Skip players with no rounds
		if stats.RoundsPlayed == 0 {
			continue
		}

		var profitRate float64
		if stats.TotalBet > 0 {
			profitRate = float64(stats.NetProfit()) / float64(stats.TotalBet)
		}

		playerRanks = append(playerRanks, &PlayerRank{
			PlayerStatistics: stats,
			WinRate:          stats.WinRate(),
			ProfitRate:       profitRate,
		})
	}

	// Sort by net winnings, then name for a stable order
	sort.Slice(playerRanks, func(i, j int) bool {
		if playerRanks[i].NetProfit() != playerRanks[j].NetProfit() {
			return playerRanks[i].NetProfit() > playerRanks[j].NetProfit()
		}
		return playerRanks[i].Name < playerRanks[j].Name
	})

	if len(playerRanks) > 0 && playerRanks[0].NetProfit() > 0 {
		playerRanks[0].IsTopWinner = true
	}

	for i := range playerRanks {
		playerRanks[i].Rank = i + 1
	}

	return playerRanks, nil
}

// GetLeaderboard returns one page of the standings
func (s *Service) GetLeaderboard(ctx context.Context, page, playersPerPage int) (*Leaderboard, error) {
	// Default values
	if page < 1 {
		page = 1
	}
	if playersPerPage < 1 {
		playersPerPage = 10
	}

	playerRanks, err := s.GetStandings(ctx)
	if err != nil {
		return nil, err
	}

	// Calculate pagination
	totalPlayers := len(playerRanks)
	totalPages := (totalPlayers + playersPerPage - 1) / playersPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * playersPerPage
	end := start + playersPerPage
	if end > totalPlayers {
		end = totalPlayers
	}

	currentPagePlayers := []*PlayerRank{}
	if start < totalPlayers {
		currentPagePlayers = playerRanks[start:end]
	}

	return &Leaderboard{
		Players:        currentPagePlayers,
		TotalPlayers:   totalPlayers,
		CurrentPage:    page,
		TotalPages:     totalPages,
		PlayersPerPage: playersPerPage,
		LastUpdated:    time.Now(),
	}, nil
}

// GetPlayerStatistics returns one player's running totals, empty if they
// have not finished a round
func (s *Service) GetPlayerStatistics(ctx context.Context, name string) (*entities.PlayerStatistics, error) {
	stats, err := s.repository.GetPlayerStatistics(ctx, name)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to load player statistics", err)
	}
	return stats, nil
}

// GetHistory returns a player's most recent rounds, newest first
func (s *Service) GetHistory(ctx context.Context, name string, limit int) ([]*entities.RoundResult, error) {
	results, err := s.repository.GetPlayerResults(ctx, name)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to load history", err)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
