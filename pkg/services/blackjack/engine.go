package blackjack

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/google/uuid"
)

var (
	ErrRoundNotDealt    = types.NewGameError(types.ErrInvalidState, "round has not been dealt")
	ErrRoundDealt       = types.NewGameError(types.ErrInvalidState, "round has already been dealt")
	ErrRoundInProgress  = types.NewGameError(types.ErrInvalidState, "players are still acting")
	ErrNotEnoughPlayers = types.NewGameError(types.ErrNotEnoughPlayers, "at least one player is required")
	ErrTooManyPlayers   = types.NewGameError(types.ErrTooManyPlayers, "the table is full")
	ErrInvalidBet       = types.NewGameError(types.ErrInvalidArgument, "bet must be a positive whole number")
	ErrBetOverLimit     = types.NewGameError(types.ErrInvalidArgument, "bet is over the table limit")
	ErrInvalidName      = types.NewGameError(types.ErrInvalidArgument, "player name is required")
	ErrNameTaken        = types.NewGameError(types.ErrAlreadyJoined, "player name is already taken")
	ErrPlayerNotFound   = types.NewGameError(types.ErrPlayerNotFound, "no player in that seat")
	ErrDealerSeat       = types.NewGameError(types.ErrInvalidAction, "the dealer does not take prompted turns")
	ErrInvalidAction    = types.NewGameError(types.ErrInvalidAction, "action must be hit or stand")
)

// Config holds the house rules an engine plays by
type Config struct {
	// DealerStandsOn is the best total at which the dealer stops drawing
	DealerStandsOn int
	// Rand shuffles the shoe; nil means a time-seeded source
	Rand *rand.Rand
}

// DefaultConfig returns the standard house rules
func DefaultConfig() Config {
	return Config{DealerStandsOn: DealerStandsOn}
}

// Engine runs one round of blackjack: the shoe, the roster with the dealer
// in seat 0, dealing, turns and settlement.
type Engine struct {
	ID      string
	players []*Player
	shoe    *entities.Shoe
	config  Config
	logger  *logging.Logger
}

// NewEngine creates an engine with the dealer already seated
func NewEngine(config Config, logger *logging.Logger) *Engine {
	if config.DealerStandsOn <= 0 {
		config.DealerStandsOn = DealerStandsOn
	}
	if logger == nil {
		logger = logging.Default
	}

	id := uuid.New().String()
	return &Engine{
		ID:      id,
		players: []*Player{NewDealer()},
		config:  config,
		logger:  logger.With("round", id[:8]),
	}
}

// AddPlayer seats a new player with their bet
func (e *Engine) AddPlayer(name string, bet int64) (*Player, error) {
	if e.shoe != nil {
		return nil, ErrRoundDealt
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if bet <= 0 {
		return nil, ErrInvalidBet
	}
	if bet > MaxBet {
		return nil, ErrBetOverLimit
	}
	if len(e.players)-1 >= MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	for _, p := range e.players {
		if p.Name == name {
			return nil, types.WrapError(types.ErrAlreadyJoined, fmt.Sprintf("%s is already seated", name), ErrNameTaken)
		}
	}

	player := NewPlayer(name, bet)
	e.players = append(e.players, player)
	e.logger.Debug("Seated %s in seat %d with a $%d bet", name, len(e.players)-1, bet)
	return player, nil
}

// Players returns the roster, dealer first
func (e *Engine) Players() []*Player {
	return e.players
}

// Dealer returns the house seat
func (e *Engine) Dealer() *Player {
	return e.players[DealerSeat]
}

// Player returns the player in a seat
func (e *Engine) Player(seat int) (*Player, error) {
	if seat < 0 || seat >= len(e.players) {
		return nil, ErrPlayerNotFound
	}
	return e.players[seat], nil
}

// Shoe returns the round's shoe, nil before the deal
func (e *Engine) Shoe() *entities.Shoe {
	return e.shoe
}

// InitializeGame builds a shoe of numDecks packs and deals the opening
// hands. See Deal.
func (e *Engine) InitializeGame(numDecks int) ([][]*entities.Card, error) {
	if e.shoe != nil {
		return nil, ErrRoundDealt
	}
	shoe, err := entities.NewShoe(numDecks, e.config.Rand)
	if err != nil {
		return nil, err
	}
	return e.Deal(shoe)
}

// Deal gives every seat two cards from shoe, one per pass, dealer first in
// each pass. The result is indexed [pass][seat]; the dealer's second card
// is the hole card. Anyone dealt a blackjack stands straight away.
func (e *Engine) Deal(shoe *entities.Shoe) ([][]*entities.Card, error) {
	if e.shoe != nil {
		return nil, ErrRoundDealt
	}
	if len(e.players)-1 < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}
	e.shoe = shoe

	dealt := make([][]*entities.Card, InitialHandSize)
	for pass := 0; pass < InitialHandSize; pass++ {
		dealt[pass] = make([]*entities.Card, len(e.players))
		for seat, player := range e.players {
			card, err := e.DealCard()
			if err != nil {
				return nil, err
			}
			if err := player.Hit(card); err != nil {
				return nil, types.WrapError(types.ErrInternalError, fmt.Sprintf("dealing to %s", player.Name), err)
			}
			dealt[pass][seat] = card
		}
	}

	for _, player := range e.players {
		if player.IsBlackJack() {
			if err := player.Stand(); err != nil {
				return nil, err
			}
			e.logger.Info("%s was dealt a blackjack", player.Name)
		}
	}

	e.logger.Debug("Dealt %d seats, %d cards left in the shoe", len(e.players), shoe.Remaining())
	return dealt, nil
}

// DealCard draws the next card from the shoe
func (e *Engine) DealCard() (*entities.Card, error) {
	if e.shoe == nil {
		return nil, ErrRoundNotDealt
	}
	card, err := e.shoe.Draw()
	if err != nil {
		e.logger.LogError(err)
		return nil, err
	}
	return card, nil
}

// KeepPlaying reports whether anyone at the table can still act
func (e *Engine) KeepPlaying() bool {
	for _, player := range e.players {
		if player.KeepPlaying() {
			return true
		}
	}
	return false
}

// DealerTurn plays the house hand: draw while the best total is under the
// stand threshold, then stand and count Aces low only where needed to stay
// at or under 21.
func (e *Engine) DealerTurn() error {
	return e.dealerTurn(noopObserver{})
}

func (e *Engine) dealerTurn(observer Observer) error {
	dealer := e.Dealer()
	if err := dealer.checkActive(); err != nil {
		return err
	}

	for BestTotal(dealer.Hand) < e.config.DealerStandsOn {
		card, err := e.DealCard()
		if err != nil {
			return err
		}
		if err := dealer.Hit(card); err != nil {
			return err
		}
		observer.CardDrawn(dealer, card)
		if !dealer.KeepPlaying() {
			e.logger.Info("Dealer busted with %d", HardTotal(dealer.Hand))
			return nil
		}
	}

	if err := dealer.Stand(); err != nil {
		return err
	}
	for _, ace := range dealer.FindAces() {
		if dealer.Score() <= BlackjackScore {
			break
		}
		if err := dealer.ResolveAce(ace, 1); err != nil {
			return err
		}
	}

	e.logger.Info("Dealer stood on %d", dealer.Score())
	return nil
}

// PlayerTurn offers hit or stand to the player in seat until they stand or
// bust, then asks for the final value of each Ace if they stood holding any.
func (e *Engine) PlayerTurn(ctx context.Context, seat int, ports Ports) error {
	if seat == DealerSeat {
		return ErrDealerSeat
	}
	player, err := e.Player(seat)
	if err != nil {
		return err
	}
	if err := player.checkActive(); err != nil {
		return err
	}
	if ports.Prompter == nil {
		return types.NewGameError(types.ErrInternalError, "no prompter for player turn")
	}
	observer := ports.observer()

	for player.KeepPlaying() {
		action, err := ports.Prompter.ChooseAction(ctx, player)
		if err != nil {
			return err
		}

		switch action {
		case ActionHit:
			card, err := e.DealCard()
			if err != nil {
				return err
			}
			if err := player.Hit(card); err != nil {
				return err
			}
			e.logger.Debug("%s hit and drew the %s", player.Name, card.Name())
			observer.CardDrawn(player, card)
		case ActionStand:
			if err := player.Stand(); err != nil {
				return err
			}
			e.logger.Debug("%s stood", player.Name)
		default:
			return types.WrapError(types.ErrInvalidAction, fmt.Sprintf("unknown action %d", action), ErrInvalidAction)
		}
	}

	if player.Status != StatusStood {
		e.logger.Info("%s busted", player.Name)
		return nil
	}

	for _, ace := range player.FindAces() {
		value, err := ports.Prompter.ChooseAceValue(ctx, player, ace)
		if err != nil {
			return err
		}
		if err := player.ResolveAce(ace, value); err != nil {
			return err
		}
	}

	e.logger.Info("%s stood on %d", player.Name, player.Score())
	return nil
}

// PlayRound gives every seat that can still act its turn, last seat first
// and the dealer last, until nobody can act.
func (e *Engine) PlayRound(ctx context.Context, ports Ports) error {
	if e.shoe == nil {
		return ErrRoundNotDealt
	}
	observer := ports.observer()

	for e.KeepPlaying() {
		for seat := len(e.players) - 1; seat >= 0; seat-- {
			player := e.players[seat]
			if !player.KeepPlaying() {
				continue
			}

			var err error
			if seat == DealerSeat {
				err = e.dealerTurn(observer)
			} else {
				err = e.PlayerTurn(ctx, seat, ports)
			}
			if err != nil {
				return err
			}
			observer.TurnEnded(player)
		}
	}

	e.logger.Dump("Round finished", e.states())
	return nil
}

// Settle compares every player with the dealer. Everyone must be finished.
func (e *Engine) Settle() ([]Outcome, error) {
	if e.shoe == nil {
		return nil, ErrRoundNotDealt
	}
	if e.KeepPlaying() {
		return nil, ErrRoundInProgress
	}

	states := e.states()
	return Settle(states[DealerSeat], states[DealerSeat+1:]), nil
}

func (e *Engine) states() []HandState {
	states := make([]HandState, 0, len(e.players))
	for _, player := range e.players {
		states = append(states, player.State())
	}
	return states
}

// RoundResult builds the record of a settled round
func (e *Engine) RoundResult(outcomes []Outcome) *entities.RoundResult {
	dealer := e.Dealer()
	result := &entities.RoundResult{
		RoundID:       e.ID,
		CompletedAt:   time.Now(),
		DealerCards:   dealer.CardNames(),
		DealerScore:   dealer.Score(),
		DealerOutcome: DealerOutcomeOf(dealer.State()),
		PlayerResults: make([]*entities.PlayerResult, 0, len(outcomes)),
	}
	if e.shoe != nil {
		result.NumDecks = e.shoe.NumDecks()
	}

	byName := make(map[string]*Player, len(e.players))
	for _, p := range e.players[DealerSeat+1:] {
		byName[p.Name] = p
	}

	for _, outcome := range outcomes {
		pr := &entities.PlayerResult{
			Name:   outcome.Player.Name,
			Bet:    outcome.Player.Bet,
			Result: outcome.Result,
			Reason: string(outcome.Reason),
			Score:  outcome.Player.Score,
			Busted: outcome.Player.Busted,
			Net:    outcome.Net(),
		}
		if p, ok := byName[outcome.Player.Name]; ok {
			pr.PlayerID = p.ID
			pr.Cards = p.CardNames()
		}
		result.PlayerResults = append(result.PlayerResults, pr)
	}

	return result
}
