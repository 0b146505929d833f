package entities

import (
	"fmt"
	"math/rand"

	"github.com/fadedpez/blackjack/internal/types"
)

const (
	MinDecks = 1
	MaxDecks = 8
)

var ErrShoeExhausted = types.NewGameError(types.ErrShoeExhausted, "no cards left in the shoe")

// Shoe is the pool of cards a round is dealt from. Cards leave the shoe
// from the front and are never put back; there is no reshuffle.
type Shoe struct {
	deck     *Deck
	numDecks int
}

// NewShoe concatenates numDecks standard packs and shuffles them together.
func NewShoe(numDecks int, rng *rand.Rand) (*Shoe, error) {
	if numDecks < MinDecks || numDecks > MaxDecks {
		return nil, types.NewGameError(types.ErrInvalidArgument,
			fmt.Sprintf("number of decks must be between %d and %d, got %d", MinDecks, MaxDecks, numDecks))
	}

	deck := &Deck{Cards: make([]*Card, 0, PackSize*numDecks)}
	for i := 0; i < numDecks; i++ {
		deck.Cards = append(deck.Cards, NewDeck().Cards...)
	}
	deck.Shuffle(rng)

	return &Shoe{deck: deck, numDecks: numDecks}, nil
}

// Draw removes and returns the front card of the shoe
func (s *Shoe) Draw() (*Card, error) {
	card := s.deck.Draw()
	if card == nil {
		return nil, ErrShoeExhausted
	}
	return card, nil
}

// Remaining returns the number of undrawn cards
func (s *Shoe) Remaining() int {
	return len(s.deck.Cards)
}

// NumDecks returns how many packs the shoe was built from
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// NewShoeFromCards builds a shoe that deals cards in the given order
func NewShoeFromCards(cards []*Card) *Shoe {
	stacked := make([]*Card, len(cards))
	copy(stacked, cards)
	return &Shoe{deck: &Deck{Cards: stacked}, numDecks: (len(cards) + PackSize - 1) / PackSize}
}
