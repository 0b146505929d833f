package blackjack

import (
	"github.com/fadedpez/blackjack/pkg/entities"
)

// HandState is everything settlement needs to know about a finished hand
type HandState struct {
	Name      string
	Bet       int64
	Status    Status
	Score     int
	BlackJack bool
	Busted    bool
}

// Reason says which settlement rule decided an outcome
type Reason string

const (
	ReasonBothBlackjack Reason = "BOTH_BLACKJACK" // dealer and player both have blackjack
	ReasonNoBlackjack   Reason = "NO_BLACKJACK"   // dealer blackjack, player stood without one
	ReasonBusted        Reason = "BUSTED"         // player went over 21
	ReasonBlackjack     Reason = "BLACKJACK"      // player blackjack against a dealer without one
	ReasonHigherScore   Reason = "HIGHER_SCORE"
	ReasonSameScore     Reason = "SAME_SCORE"
	ReasonLowerScore    Reason = "LOWER_SCORE"
	ReasonDealerBusted  Reason = "DEALER_BUSTED" // player stood and the dealer busted
)

// Outcome is the settlement of one player's hand
type Outcome struct {
	Player HandState
	Result entities.Result
	Reason Reason
	// Amount is the dollars won or lost, always non-negative
	Amount int64
}

// Net returns the signed change to the player's money
func (o Outcome) Net() int64 {
	switch o.Result {
	case entities.ResultWin, entities.ResultBlackjack:
		return o.Amount
	case entities.ResultLose:
		return -o.Amount
	default:
		return 0
	}
}

// BlackjackPayout returns 1.5x bet rounded half up to whole dollars. Bets
// are capped at MaxBet, well inside int64 range.
func BlackjackPayout(bet int64) int64 {
	return bet + bet/2 + bet%2
}

// DealerOutcomeOf classifies how the dealer finished
func DealerOutcomeOf(dealer HandState) entities.DealerOutcome {
	switch {
	case dealer.BlackJack:
		return entities.DealerBlackjack
	case dealer.Busted:
		return entities.DealerBusted
	default:
		return entities.DealerStood
	}
}

// Settle resolves every player against the dealer. It has no side effects;
// the same inputs always give the same outcomes.
func Settle(dealer HandState, players []HandState) []Outcome {
	outcomes := make([]Outcome, 0, len(players))

	for _, player := range players {
		var outcome Outcome
		switch DealerOutcomeOf(dealer) {
		case entities.DealerBlackjack:
			outcome = settleAgainstBlackjack(player)
		case entities.DealerBusted:
			outcome = settleAgainstBust(player)
		default:
			outcome = settleAgainstScore(player, dealer.Score)
		}
		outcome.Player = player
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

func settleAgainstBlackjack(player HandState) Outcome {
	switch {
	case player.BlackJack:
		return Outcome{Result: entities.ResultPush, Reason: ReasonBothBlackjack, Amount: player.Bet}
	case player.Busted:
		return Outcome{Result: entities.ResultLose, Reason: ReasonBusted, Amount: player.Bet}
	default:
		return Outcome{Result: entities.ResultLose, Reason: ReasonNoBlackjack, Amount: player.Bet}
	}
}

func settleAgainstScore(player HandState, dealerScore int) Outcome {
	switch {
	case player.BlackJack:
		return Outcome{Result: entities.ResultBlackjack, Reason: ReasonBlackjack, Amount: BlackjackPayout(player.Bet)}
	case player.Busted:
		return Outcome{Result: entities.ResultLose, Reason: ReasonBusted, Amount: player.Bet}
	case player.Score > dealerScore:
		return Outcome{Result: entities.ResultWin, Reason: ReasonHigherScore, Amount: player.Bet}
	case player.Score == dealerScore:
		return Outcome{Result: entities.ResultPush, Reason: ReasonSameScore, Amount: player.Bet}
	default:
		return Outcome{Result: entities.ResultLose, Reason: ReasonLowerScore, Amount: player.Bet}
	}
}

// settleAgainstBust pays every hand that did not bust. A stood hand left
// over 21 by keeping an Ace at 11 counts as busted and still loses.
func settleAgainstBust(player HandState) Outcome {
	switch {
	case player.BlackJack:
		return Outcome{Result: entities.ResultBlackjack, Reason: ReasonBlackjack, Amount: BlackjackPayout(player.Bet)}
	case player.Busted:
		return Outcome{Result: entities.ResultLose, Reason: ReasonBusted, Amount: player.Bet}
	default:
		return Outcome{Result: entities.ResultWin, Reason: ReasonDealerBusted, Amount: player.Bet}
	}
}
