package entities

import "time"

// PlayerStatistics represents aggregated results for a player over a session
type PlayerStatistics struct {
	Name          string
	RoundsPlayed  int
	Wins          int
	Losses        int
	Pushes        int
	Blackjacks    int
	Busts         int
	TotalBet      int64
	TotalWinnings int64
	TotalLosses   int64
	LastUpdated   time.Time
}

// NetProfit calculates the player's net profit
func (s *PlayerStatistics) NetProfit() int64 {
	return s.TotalWinnings - s.TotalLosses
}

// WinRate calculates the player's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.RoundsPlayed) * 100.0
}

// Apply folds one player result into the aggregate
func (s *PlayerStatistics) Apply(pr *PlayerResult, at time.Time) {
	s.RoundsPlayed++
	s.TotalBet += pr.Bet
	switch {
	case pr.Net > 0:
		s.TotalWinnings += pr.Net
	case pr.Net < 0:
		s.TotalLosses += -pr.Net
	}

	switch pr.Result {
	case ResultWin:
		s.Wins++
	case ResultBlackjack:
		s.Wins++
		s.Blackjacks++
	case ResultPush:
		s.Pushes++
	case ResultLose:
		s.Losses++
	}
	if pr.Busted {
		s.Busts++
	}
	s.LastUpdated = at
}
