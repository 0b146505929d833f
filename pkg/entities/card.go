package entities

import (
	"fmt"
	"strconv"

	"github.com/fadedpez/blackjack/internal/types"
)

// Suit represents a card suit

type Suit string

const (
	Hearts   Suit = "HEARTS"
	Diamonds Suit = "DIAMONDS"
	Clubs    Suit = "CLUBS"
	Spades   Suit = "SPADES"
)

// Rank represents a card rank

type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Suits and Ranks list every suit and rank in pack order.
var (
	Suits = []Suit{Hearts, Diamonds, Clubs, Spades}
	Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
)

var (
	ErrNotAnAce           = types.NewGameError(types.ErrAceResolution, "card is not an ace")
	ErrAceAlreadyResolved = types.NewGameError(types.ErrAceResolution, "ace value already resolved")
)

var rankNames = map[Rank]string{
	Ace:   "Ace",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
	Spades:   "Spades",
}

// Card represents a playing card. Suit and Rank never change once the card
// is created; the only mutable part is the low flag of an Ace, which is set
// at most once when its owner declares the Ace to count as 1.

type Card struct {
	Suit Suit
	Rank Rank

	low bool
}

// NewCard creates a new card

func NewCard(suit Suit, rank Rank) *Card {
	return &Card{
		Suit: suit,
		Rank: rank,
	}
}

// IsAce reports whether the card is an Ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

// BaseValue is the default point value: 11 for an Ace, 10 for a face card,
// the pip count otherwise.
func (c *Card) BaseValue() int {
	switch c.Rank {
	case Ace:
		return 11
	case Jack, Queen, King:
		return 10
	default:
		val, _ := strconv.Atoi(string(c.Rank))
		return val
	}
}

// Value returns the card's current point value
func (c *Card) Value() int {
	if c.low {
		return 1
	}
	return c.BaseValue()
}

// IsResolvedLow reports whether an Ace has been declared as 1
func (c *Card) IsResolvedLow() bool {
	return c.low
}

// ResolveLow makes an Ace count as 1 for the rest of the hand.
func (c *Card) ResolveLow() error {
	if !c.IsAce() {
		return ErrNotAnAce
	}
	if c.low {
		return ErrAceAlreadyResolved
	}
	c.low = true
	return nil
}

// Name returns the display name of the card, e.g. "Queen of Hearts"
func (c *Card) Name() string {
	return fmt.Sprintf("%s of %s", rankNames[c.Rank], suitNames[c.Suit])
}

// String makes %v print the display name
func (c *Card) String() string {
	return c.Name()
}
