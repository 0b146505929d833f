package blackjack

import (
	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	BlackjackScore  = 21 // Best possible total, and a natural on the first two cards
	DealerStandsOn  = 17 // Dealer stands once the best total reaches this
	MinPlayers      = 1  // Non-dealer seats required to deal
	MaxPlayers      = 8  // Max number of non-dealer seats
	DealerSeat      = 0  // Roster index reserved for the dealer
	DealerName      = "Dealer"
	InitialHandSize = 2

	// MaxBet is the table limit in whole dollars
	MaxBet int64 = 1_000_000_000
)

// Action is a choice offered to a player on their turn
type Action int

const (
	ActionHit   Action = 1
	ActionStand Action = 2
)

// String returns the menu label of the action
func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the menu actions
func (a Action) Valid() bool {
	return a == ActionHit || a == ActionStand
}

// ValidAceValue reports whether v may be declared for an Ace
func ValidAceValue(v int) bool {
	return v == 1 || v == 11
}

// SumValues adds up the current value of every card
func SumValues(cards []*entities.Card) int {
	score := 0
	for _, card := range cards {
		score += card.Value()
	}
	return score
}

// HardTotal counts every Ace as 1
func HardTotal(cards []*entities.Card) int {
	score := 0
	for _, card := range cards {
		if card.IsAce() {
			score++
			continue
		}
		score += card.Value()
	}
	return score
}

// BestTotal is the highest total not above 21 that the cards can make, or
// the hard total when every reading busts. Aces already declared low stay
// low.
func BestTotal(cards []*entities.Card) int {
	score := 0
	flexible := 0

	// First count everything that cannot change
	for _, card := range cards {
		if card.IsAce() && !card.IsResolvedLow() {
			flexible++
			score++
			continue
		}
		score += card.Value()
	}

	// At most one Ace can usefully count as 11
	if flexible > 0 && score+10 <= BlackjackScore {
		score += 10
	}

	return score
}
