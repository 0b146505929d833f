package entities

import "time"

// Result represents the outcome of a player's hand at settlement
type Result string

const (
	ResultWin       Result = "WIN"
	ResultLose      Result = "LOSE"
	ResultPush      Result = "PUSH"
	ResultBlackjack Result = "BLACKJACK"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r Result) IsWin() bool {
	return r == ResultWin || r == ResultBlackjack
}

// DealerOutcome is how the dealer's hand finished
type DealerOutcome string

const (
	DealerBlackjack DealerOutcome = "BLACKJACK"
	DealerStood     DealerOutcome = "STOOD"
	DealerBusted    DealerOutcome = "BUST"
)

// RoundResult is the record of one settled round
type RoundResult struct {
	RoundID       string
	CompletedAt   time.Time
	NumDecks      int
	DealerCards   []string
	DealerScore   int
	DealerOutcome DealerOutcome
	PlayerResults []*PlayerResult
}

// PlayerResult is one seat's line in a RoundResult
type PlayerResult struct {
	PlayerID string
	Name     string
	Bet      int64
	Result   Result
	Reason   string
	Score    int
	Busted   bool
	Cards    []string
	// Net is the signed dollar change: positive for a win, negative for a loss, zero for a push
	Net int64
}
