package blackjack

import (
	"testing"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type SettlementTestSuite struct {
	suite.Suite
}

func TestSettlementSuite(t *testing.T) {
	suite.Run(t, new(SettlementTestSuite))
}

func stood(score int, bet int64) HandState {
	return HandState{Name: "p", Bet: bet, Status: StatusStood, Score: score, Busted: score > BlackjackScore}
}

func natural(bet int64) HandState {
	return HandState{Name: "p", Bet: bet, Status: StatusStood, Score: 21, BlackJack: true}
}

func bust(score int, bet int64) HandState {
	return HandState{Name: "p", Bet: bet, Status: StatusBust, Score: score, Busted: true}
}

func (s *SettlementTestSuite) TestBlackjackPayout() {
	testCases := []struct {
		bet      int64
		expected int64
	}{
		{bet: 1, expected: 2},
		{bet: 2, expected: 3},
		{bet: 5, expected: 8},
		{bet: 10, expected: 15},
		{bet: 15, expected: 23},
		{bet: 100, expected: 150},
		{bet: MaxBet, expected: 1_500_000_000},
		{bet: MaxBet - 1, expected: 1_499_999_999},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, BlackjackPayout(tc.bet), "bet $%d", tc.bet)
	}
}

func (s *SettlementTestSuite) TestBlackjackAtTableLimit() {
	dealer := stood(20, 0)
	outcomes := Settle(dealer, []HandState{natural(MaxBet)})

	s.Require().Len(outcomes, 1)
	s.Equal(entities.ResultBlackjack, outcomes[0].Result)
	s.Equal(int64(1_500_000_000), outcomes[0].Amount)
	s.Equal(int64(1_500_000_000), outcomes[0].Net())
}

func (s *SettlementTestSuite) TestRules() {
	testCases := []struct {
		name   string
		dealer HandState
		player HandState
		result entities.Result
		reason Reason
		amount int64
		net    int64
	}{
		{name: "dealer blackjack, player blackjack", dealer: natural(0), player: natural(10), result: entities.ResultPush, reason: ReasonBothBlackjack, amount: 10, net: 0},
		{name: "dealer blackjack, player stood 21", dealer: natural(0), player: stood(21, 10), result: entities.ResultLose, reason: ReasonNoBlackjack, amount: 10, net: -10},
		{name: "dealer blackjack, player bust", dealer: natural(0), player: bust(24, 10), result: entities.ResultLose, reason: ReasonBusted, amount: 10, net: -10},
		{name: "dealer stood, player blackjack", dealer: stood(20, 0), player: natural(10), result: entities.ResultBlackjack, reason: ReasonBlackjack, amount: 15, net: 15},
		{name: "dealer stood, player bust", dealer: stood(18, 0), player: bust(23, 10), result: entities.ResultLose, reason: ReasonBusted, amount: 10, net: -10},
		{name: "dealer stood, player higher", dealer: stood(18, 0), player: stood(20, 10), result: entities.ResultWin, reason: ReasonHigherScore, amount: 10, net: 10},
		{name: "dealer stood, player equal", dealer: stood(18, 0), player: stood(18, 10), result: entities.ResultPush, reason: ReasonSameScore, amount: 10, net: 0},
		{name: "dealer stood, player lower", dealer: stood(18, 0), player: stood(17, 10), result: entities.ResultLose, reason: ReasonLowerScore, amount: 10, net: -10},
		{name: "dealer stood, player left above 21", dealer: stood(18, 0), player: stood(25, 10), result: entities.ResultLose, reason: ReasonBusted, amount: 10, net: -10},
		{name: "dealer bust, player blackjack", dealer: bust(22, 0), player: natural(5), result: entities.ResultBlackjack, reason: ReasonBlackjack, amount: 8, net: 8},
		{name: "dealer bust, player stood", dealer: bust(22, 0), player: stood(12, 10), result: entities.ResultWin, reason: ReasonDealerBusted, amount: 10, net: 10},
		{name: "dealer bust, player bust", dealer: bust(26, 0), player: bust(22, 10), result: entities.ResultLose, reason: ReasonBusted, amount: 10, net: -10},
		{name: "dealer bust, player left above 21", dealer: bust(23, 0), player: stood(24, 10), result: entities.ResultLose, reason: ReasonBusted, amount: 10, net: -10},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			outcomes := Settle(tc.dealer, []HandState{tc.player})

			s.Require().Len(outcomes, 1)
			s.Equal(tc.result, outcomes[0].Result)
			s.Equal(tc.reason, outcomes[0].Reason)
			s.Equal(tc.amount, outcomes[0].Amount)
			s.Equal(tc.net, outcomes[0].Net())
			s.Equal(tc.player, outcomes[0].Player)
		})
	}
}

func (s *SettlementTestSuite) TestSettleIsPure() {
	dealer := stood(19, 0)
	players := []HandState{stood(20, 10), bust(23, 5), natural(7), stood(19, 3)}

	first := Settle(dealer, players)
	second := Settle(dealer, players)

	s.Equal(first, second)
	s.Len(first, len(players))
	s.Equal([]HandState{stood(20, 10), bust(23, 5), natural(7), stood(19, 3)}, players, "inputs are not modified")
}

func (s *SettlementTestSuite) TestDealerOutcomeOf() {
	s.Equal(entities.DealerBlackjack, DealerOutcomeOf(natural(0)))
	s.Equal(entities.DealerBusted, DealerOutcomeOf(bust(22, 0)))
	s.Equal(entities.DealerStood, DealerOutcomeOf(stood(17, 0)))
}

func (s *SettlementTestSuite) TestNoPlayers() {
	s.Empty(Settle(stood(17, 0), nil))
}
