package table

import (
	"context"
	"errors"
	"math/rand"

	"github.com/fadedpez/blackjack/internal/console"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
)

// ShoeFactory builds the shoe for one round
type ShoeFactory func(numDecks int) (*entities.Shoe, error)

// Config holds what a session knows before anyone sits down
type Config struct {
	// Decks and Players are asked at the table when zero
	Decks   int
	Players int

	DealerStandsOn int
	Rand           *rand.Rand

	// History is how many of each player's rounds are listed after the standings
	History int

	// NewShoe replaces the shuffled shoe, mainly for stacked tests
	NewShoe ShoeFactory
}

// Session plays rounds with a fixed roster until the players stop
type Session struct {
	console *console.Console
	stats   *statistics.Service
	config  Config
	logger  *logging.Logger

	names  []string
	rounds int
}

// NewSession creates a session
func NewSession(c *console.Console, stats *statistics.Service, config Config, logger *logging.Logger) *Session {
	if config.DealerStandsOn <= 0 {
		config.DealerStandsOn = blackjack.DealerStandsOn
	}
	if logger == nil {
		logger = logging.Default
	}
	return &Session{
		console: c,
		stats:   stats,
		config:  config,
		logger:  logger.WithPrefix("table"),
	}
}

// Names returns the seated players in seat order
func (s *Session) Names() []string {
	return s.names
}

// Rounds returns how many rounds were settled
func (s *Session) Rounds() int {
	return s.rounds
}

// Run seats the table, plays rounds until the players stop and prints the
// standings. Closing the input ends the session early; the standings are
// still printed.
func (s *Session) Run(ctx context.Context) error {
	s.console.Intro(s.config.DealerStandsOn)

	err := s.play(ctx)
	if err != nil && !errors.Is(err, console.ErrInputClosed) {
		return err
	}

	if serr := s.summarize(ctx); serr != nil {
		return serr
	}
	return err
}

// summarize prints the standings, then each player's recent rounds
func (s *Session) summarize(ctx context.Context) error {
	board, err := s.stats.GetLeaderboard(ctx, 1, blackjack.MaxPlayers)
	if err != nil {
		return err
	}
	s.console.ShowStandings(board.Players)

	if s.config.History <= 0 || s.rounds == 0 {
		return nil
	}
	for _, name := range s.names {
		rounds, err := s.stats.GetHistory(ctx, name, s.config.History)
		if err != nil {
			return err
		}
		s.console.ShowHistory(name, rounds)
	}
	s.console.Blank()
	return nil
}

func (s *Session) play(ctx context.Context) error {
	if err := s.setup(ctx); err != nil {
		return err
	}

	for {
		if err := s.playRound(ctx); err != nil {
			return err
		}

		again, err := s.console.AskYesNo(ctx, "Play another round?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		s.console.Clear()
	}
}

// setup fills in the deck count and the roster
func (s *Session) setup(ctx context.Context) error {
	var err error
	if s.config.Decks == 0 {
		if s.config.Decks, err = s.console.AskDecks(ctx, entities.MinDecks, entities.MaxDecks); err != nil {
			return err
		}
	}
	if s.config.Players == 0 {
		if s.config.Players, err = s.console.AskPlayers(ctx, blackjack.MinPlayers, blackjack.MaxPlayers); err != nil {
			return err
		}
	}
	s.console.Blank()

	s.names = make([]string, 0, s.config.Players)
	for seat := 1; seat <= s.config.Players; seat++ {
		name, err := s.console.AskName(ctx, seat, s.names)
		if err != nil {
			return err
		}
		s.names = append(s.names, name)
	}

	s.logger.Info("Seated %d players at a %d deck table", len(s.names), s.config.Decks)
	return nil
}

// playRound takes bets, deals, plays and settles one round. A round that
// runs out of cards is void: no settlement and nothing recorded.
func (s *Session) playRound(ctx context.Context) error {
	engine := blackjack.NewEngine(blackjack.Config{
		DealerStandsOn: s.config.DealerStandsOn,
		Rand:           s.config.Rand,
	}, s.logger)

	for _, name := range s.names {
		stats, err := s.stats.GetPlayerStatistics(ctx, name)
		if err != nil {
			return err
		}
		s.console.ShowBalance(stats)

		bet, err := s.console.AskBet(ctx, name)
		if err != nil {
			return err
		}
		if _, err := engine.AddPlayer(name, bet); err != nil {
			return err
		}
	}

	if err := s.console.Pause(ctx, "Start Game?", 0); err != nil {
		return err
	}

	dealt, err := s.deal(engine)
	if errors.Is(err, entities.ErrShoeExhausted) {
		s.voidRound()
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.console.ShowDeal(ctx, engine.Players(), dealt); err != nil {
		return err
	}

	ports := blackjack.Ports{Prompter: s.console, Observer: s.console}
	err = engine.PlayRound(ctx, ports)
	if errors.Is(err, entities.ErrShoeExhausted) {
		s.voidRound()
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.console.Err(); err != nil {
		return err
	}

	outcomes, err := engine.Settle()
	if err != nil {
		return err
	}
	s.console.ShowSettlement(engine.Dealer(), outcomes)

	if err := s.stats.RecordRound(ctx, engine.RoundResult(outcomes)); err != nil {
		return err
	}
	s.rounds++
	return nil
}

func (s *Session) deal(engine *blackjack.Engine) ([][]*entities.Card, error) {
	if s.config.NewShoe == nil {
		return engine.InitializeGame(s.config.Decks)
	}

	shoe, err := s.config.NewShoe(s.config.Decks)
	if err != nil {
		return nil, err
	}
	return engine.Deal(shoe)
}

func (s *Session) voidRound() {
	s.logger.Warn("Shoe exhausted, round voided")
	s.console.Error("The shoe ran out of cards. This round is void and every bet is returned.")
	s.console.Blank()
}
