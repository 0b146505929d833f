package game

import (
	"context"
	"sort"
	"sync"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of player name to that player's rounds
	playerResults map[string][]*entities.RoundResult
	// Map of player name to running statistics
	statistics map[string]*entities.PlayerStatistics
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		playerResults: make(map[string][]*entities.RoundResult),
		statistics:    make(map[string]*entities.PlayerStatistics),
	}
}

// SaveRoundResult stores a round and folds each player's line into their statistics
func (r *MemoryRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return ErrNilResult
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pr := range result.PlayerResults {
		r.playerResults[pr.Name] = append(r.playerResults[pr.Name], playerRound(result, pr))

		stats, ok := r.statistics[pr.Name]
		if !ok {
			stats = &entities.PlayerStatistics{Name: pr.Name}
			r.statistics[pr.Name] = stats
		}
		stats.Apply(pr, result.CompletedAt)
	}

	return nil
}

// GetPlayerResults retrieves a player's rounds, newest first
func (r *MemoryRepository) GetPlayerResults(ctx context.Context, name string) ([]*entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.playerResults[name]
	out := make([]*entities.RoundResult, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		out = append(out, results[i])
	}
	return out, nil
}

// GetPlayerStatistics returns a copy of a player's statistics, empty if they never played
func (r *MemoryRepository) GetPlayerStatistics(ctx context.Context, name string) (*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats, ok := r.statistics[name]
	if !ok {
		return &entities.PlayerStatistics{Name: name}, nil
	}
	copied := *stats
	return &copied, nil
}

// GetAllPlayerStatistics returns a copy of every player's statistics ordered by name
func (r *MemoryRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entities.PlayerStatistics, 0, len(r.statistics))
	for _, stats := range r.statistics {
		copied := *stats
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}

// playerRound is a copy of result holding only pr's line
func playerRound(result *entities.RoundResult, pr *entities.PlayerResult) *entities.RoundResult {
	return &entities.RoundResult{
		RoundID:       result.RoundID,
		CompletedAt:   result.CompletedAt,
		NumDecks:      result.NumDecks,
		DealerCards:   result.DealerCards,
		DealerScore:   result.DealerScore,
		DealerOutcome: result.DealerOutcome,
		PlayerResults: []*entities.PlayerResult{pr},
	}
}
