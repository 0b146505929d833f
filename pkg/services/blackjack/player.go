package blackjack

import (
	"fmt"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/google/uuid"
)

var (
	ErrPlayerBusted      = types.NewGameError(types.ErrPlayerBusted, "player has busted")
	ErrPlayerStanding    = types.NewGameError(types.ErrPlayerStanding, "player is standing")
	ErrInvalidCard       = types.NewGameError(types.ErrInvalidArgument, "invalid card")
	ErrInvalidAceValue   = types.NewGameError(types.ErrInvalidArgument, "ace value must be 1 or 11")
	ErrAceNotInHand      = types.NewGameError(types.ErrAceResolution, "ace is not held by this player")
	ErrHandNotFinished   = types.NewGameError(types.ErrAceResolution, "aces are resolved only after standing")
	ErrInvalidTransition = types.NewGameError(types.ErrInvalidState, "illegal status transition")
)

// Status represents where a player is in the round
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusStood  Status = "STOOD"
	StatusBust   Status = "BUST"
)

// Player is a seat at the table: the dealer or a betting player.

type Player struct {
	ID       string
	Name     string
	Bet      int64
	IsDealer bool
	Hand     []*entities.Card
	Status   Status
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string, bet int64) *Player {
	return &Player{
		ID:     uuid.New().String(),
		Name:   name,
		Bet:    bet,
		Hand:   make([]*entities.Card, 0),
		Status: StatusActive,
	}
}

// NewDealer creates the house seat
func NewDealer() *Player {
	dealer := NewPlayer(DealerName, 0)
	dealer.IsDealer = true
	return dealer
}

// transition moves the player to status to. ACTIVE is the only state that
// can be left.
func (p *Player) transition(to Status) error {
	switch p.Status {
	case StatusBust:
		return ErrPlayerBusted
	case StatusStood:
		return ErrPlayerStanding
	}

	if to != StatusStood && to != StatusBust {
		return types.WrapError(types.ErrInvalidState,
			fmt.Sprintf("cannot move %s from %s to %s", p.Name, p.Status, to), ErrInvalidTransition)
	}

	p.Status = to
	return nil
}

// Hit adds a card to the hand. The player busts once the hand is over 21
// even with every Ace counted as 1.
func (p *Player) Hit(card *entities.Card) error {
	if err := p.checkActive(); err != nil {
		return err
	}

	if card == nil {
		return ErrInvalidCard
	}

	p.Hand = append(p.Hand, card)

	// Auto-bust if score exceeds 21
	if HardTotal(p.Hand) > BlackjackScore {
		return p.transition(StatusBust)
	}

	return nil
}

// Stand ends the player's turn
func (p *Player) Stand() error {
	return p.transition(StatusStood)
}

func (p *Player) checkActive() error {
	switch p.Status {
	case StatusBust:
		return ErrPlayerBusted
	case StatusStood:
		return ErrPlayerStanding
	}
	return nil
}

// Score is the plain sum of the cards' current values; Aces count 11 until
// declared low.
func (p *Player) Score() int {
	return SumValues(p.Hand)
}

// IsBlackJack reports a two-card 21
func (p *Player) IsBlackJack() bool {
	return len(p.Hand) == InitialHandSize && p.Score() == BlackjackScore
}

// IsBusted reports whether the hand lost by going over 21, either while
// drawing or by a final Ace declaration that left it above 21.
func (p *Player) IsBusted() bool {
	return p.Status == StatusBust || p.Score() > BlackjackScore
}

// FindAces returns the Aces in hand order
func (p *Player) FindAces() []*entities.Card {
	aces := make([]*entities.Card, 0)
	for _, card := range p.Hand {
		if card.IsAce() {
			aces = append(aces, card)
		}
	}
	return aces
}

// KeepPlaying reports whether the player may still act this round
func (p *Player) KeepPlaying() bool {
	return p.Status == StatusActive
}

// ResolveAce declares the final value of one of the player's Aces. 11 keeps
// the default; 1 flips the Ace low. Only allowed once the player stood.
func (p *Player) ResolveAce(ace *entities.Card, value int) error {
	if !ValidAceValue(value) {
		return ErrInvalidAceValue
	}
	if p.Status != StatusStood {
		return ErrHandNotFinished
	}
	if !p.holds(ace) {
		return ErrAceNotInHand
	}

	if value == 11 {
		return nil
	}
	return ace.ResolveLow()
}

func (p *Player) holds(card *entities.Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// CardNames returns the display names of the hand in deal order
func (p *Player) CardNames() []string {
	names := make([]string, 0, len(p.Hand))
	for _, card := range p.Hand {
		names = append(names, card.Name())
	}
	return names
}

// State captures the settlement inputs for this player
func (p *Player) State() HandState {
	return HandState{
		Name:      p.Name,
		Bet:       p.Bet,
		Status:    p.Status,
		Score:     p.Score(),
		BlackJack: p.IsBlackJack(),
		Busted:    p.IsBusted(),
	}
}
