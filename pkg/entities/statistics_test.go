package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlayerStatisticsApply(t *testing.T) {
	now := time.Now()
	stats := &PlayerStatistics{Name: "ana"}

	stats.Apply(&PlayerResult{Bet: 10, Result: ResultWin, Net: 10}, now)
	stats.Apply(&PlayerResult{Bet: 5, Result: ResultBlackjack, Net: 8}, now)
	stats.Apply(&PlayerResult{Bet: 20, Result: ResultLose, Busted: true, Net: -20}, now)
	stats.Apply(&PlayerResult{Bet: 15, Result: ResultPush}, now)

	assert.Equal(t, 4, stats.RoundsPlayed)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Blackjacks)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.Pushes)
	assert.Equal(t, 1, stats.Busts)
	assert.Equal(t, int64(50), stats.TotalBet)
	assert.Equal(t, int64(18), stats.TotalWinnings)
	assert.Equal(t, int64(20), stats.TotalLosses)
	assert.Equal(t, int64(-2), stats.NetProfit())
	assert.InDelta(t, 50.0, stats.WinRate(), 0.001)
	assert.Equal(t, now, stats.LastUpdated)
}

func TestPlayerStatisticsWinRateEmpty(t *testing.T) {
	stats := &PlayerStatistics{}
	assert.Zero(t, stats.WinRate())
}
