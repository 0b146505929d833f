package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/db/migrations"
	"github.com/fadedpez/blackjack/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// InMemoryDSN opens a private SQLite database that lives as long as the connection
const InMemoryDSN = ":memory:"

const (
	insertRoundSQL = `
		INSERT INTO rounds (
			id, completed_at, num_decks, dealer_cards, dealer_score, dealer_outcome
		) VALUES (?, ?, ?, ?, ?, ?)`

	insertRoundPlayerSQL = `
		INSERT INTO round_players (
			round_id, seat, player_id, name, bet, result, reason, score, busted, cards, net
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectStatisticsSQL = `
		SELECT name, rounds_played, wins, losses, pushes, blackjacks, busts,
		       total_bet, total_winnings, total_losses, last_updated
		FROM player_statistics`

	upsertStatisticsSQL = `
		INSERT INTO player_statistics (
			name, rounds_played, wins, losses, pushes, blackjacks, busts,
			total_bet, total_winnings, total_losses, last_updated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			rounds_played = excluded.rounds_played,
			wins = excluded.wins,
			losses = excluded.losses,
			pushes = excluded.pushes,
			blackjacks = excluded.blackjacks,
			busts = excluded.busts,
			total_bet = excluded.total_bet,
			total_winnings = excluded.total_winnings,
			total_losses = excluded.total_losses,
			last_updated = excluded.last_updated`
)

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewSQLiteRepository opens dsn and applies the embedded migrations
func NewSQLiteRepository(ctx context.Context, dsn string, logger *logging.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = logging.Default
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error opening database", err)
	}
	// An in-memory database exists per connection, so keep exactly one
	db.SetMaxOpenConns(1)

	migrator := migrations.NewMigrator(db, migrations.Files, migrations.Dir, logger)
	applied, err := migrator.MigrateUp(ctx)
	if err != nil {
		db.Close()
		return nil, types.WrapError(types.ErrDatabaseError, "error applying migrations", err)
	}
	logger.Debug("SQLite round history ready, %d migrations applied", applied)

	return &SQLiteRepository{db: db, logger: logger}, nil
}

// SaveRoundResult stores a round and updates each player's statistics in one transaction
func (r *SQLiteRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return ErrNilResult
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	dealerCards, err := json.Marshal(result.DealerCards)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, insertRoundSQL,
		result.RoundID, result.CompletedAt, result.NumDecks, string(dealerCards),
		result.DealerScore, string(result.DealerOutcome))
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to insert round", err)
	}

	for seat, pr := range result.PlayerResults {
		cards, err := json.Marshal(pr.Cards)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, insertRoundPlayerSQL,
			result.RoundID, seat+1, pr.PlayerID, pr.Name, pr.Bet, string(pr.Result),
			pr.Reason, pr.Score, pr.Busted, string(cards), pr.Net)
		if err != nil {
			return types.WrapError(types.ErrDatabaseError, fmt.Sprintf("failed to insert result for %s", pr.Name), err)
		}

		stats, err := scanStatistics(tx.QueryRowContext(ctx, selectStatisticsSQL+` WHERE name = ?`, pr.Name))
		if err == sql.ErrNoRows {
			stats = &entities.PlayerStatistics{Name: pr.Name}
		} else if err != nil {
			return types.WrapError(types.ErrDatabaseError, "failed to read player statistics", err)
		}
		stats.Apply(pr, result.CompletedAt)

		_, err = tx.ExecContext(ctx, upsertStatisticsSQL,
			stats.Name, stats.RoundsPlayed, stats.Wins, stats.Losses, stats.Pushes,
			stats.Blackjacks, stats.Busts, stats.TotalBet, stats.TotalWinnings,
			stats.TotalLosses, stats.LastUpdated)
		if err != nil {
			return types.WrapError(types.ErrDatabaseError, "failed to update player statistics", err)
		}
	}

	return tx.Commit()
}

// GetPlayerResults retrieves a player's rounds, newest first. Each round
// carries only that player's line.
func (r *SQLiteRepository) GetPlayerResults(ctx context.Context, name string) ([]*entities.RoundResult, error) {
	query := `
		SELECT ro.id, ro.completed_at, ro.num_decks, ro.dealer_cards, ro.dealer_score, ro.dealer_outcome,
		       rp.player_id, rp.name, rp.bet, rp.result, rp.reason, rp.score, rp.busted, rp.cards, rp.net
		FROM rounds ro
		JOIN round_players rp ON ro.id = rp.round_id
		WHERE rp.name = ?
		ORDER BY ro.completed_at DESC, rp.id DESC`

	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query player results", err)
	}
	defer rows.Close()

	results := make([]*entities.RoundResult, 0)
	for rows.Next() {
		var (
			round       entities.RoundResult
			pr          entities.PlayerResult
			dealerCards string
			outcome     string
			result      string
			cards       string
		)
		err := rows.Scan(
			&round.RoundID, &round.CompletedAt, &round.NumDecks, &dealerCards, &round.DealerScore, &outcome,
			&pr.PlayerID, &pr.Name, &pr.Bet, &result, &pr.Reason, &pr.Score, &pr.Busted, &cards, &pr.Net,
		)
		if err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to scan player result", err)
		}
		if err := json.Unmarshal([]byte(dealerCards), &round.DealerCards); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(cards), &pr.Cards); err != nil {
			return nil, err
		}
		round.DealerOutcome = entities.DealerOutcome(outcome)
		pr.Result = entities.Result(result)
		round.PlayerResults = []*entities.PlayerResult{&pr}
		results = append(results, &round)
	}

	return results, rows.Err()
}

// GetPlayerStatistics retrieves statistics for a player, empty if they never played
func (r *SQLiteRepository) GetPlayerStatistics(ctx context.Context, name string) (*entities.PlayerStatistics, error) {
	stats, err := scanStatistics(r.db.QueryRowContext(ctx, selectStatisticsSQL+` WHERE name = ?`, name))
	if err == sql.ErrNoRows {
		return &entities.PlayerStatistics{Name: name}, nil
	}
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to get player statistics", err)
	}
	return stats, nil
}

// GetAllPlayerStatistics retrieves statistics for every player ordered by name
func (r *SQLiteRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	rows, err := r.db.QueryContext(ctx, selectStatisticsSQL+` ORDER BY name`)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query player statistics", err)
	}
	defer rows.Close()

	all := make([]*entities.PlayerStatistics, 0)
	for rows.Next() {
		stats, err := scanStatistics(rows)
		if err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to scan player statistics", err)
		}
		all = append(all, stats)
	}

	return all, rows.Err()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStatistics(row scanner) (*entities.PlayerStatistics, error) {
	var stats entities.PlayerStatistics
	err := row.Scan(
		&stats.Name, &stats.RoundsPlayed, &stats.Wins, &stats.Losses, &stats.Pushes,
		&stats.Blackjacks, &stats.Busts, &stats.TotalBet, &stats.TotalWinnings,
		&stats.TotalLosses, &stats.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
