package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
	"github.com/stretchr/testify/suite"
)

type ConsoleTestSuite struct {
	suite.Suite
	clock *quartz.Mock
	out   *bytes.Buffer
	ctx   context.Context
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

func (s *ConsoleTestSuite) SetupTest() {
	s.clock = quartz.NewMock(s.T())
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *ConsoleTestSuite) console(input string) *Console {
	return New(strings.NewReader(input), s.out, Options{
		Clock:        s.clock,
		HideHoleCard: true,
		Logger:       logging.Discard(),
	})
}

func withCards(player *blackjack.Player, cards ...*entities.Card) *blackjack.Player {
	player.Hand = append(player.Hand, cards...)
	return player
}

func (s *ConsoleTestSuite) TestIsWholeNumber() {
	testCases := []struct {
		input    string
		expected bool
	}{
		{input: "0", expected: true},
		{input: "42", expected: true},
		{input: "007", expected: true},
		{input: "", expected: false},
		{input: "-1", expected: false},
		{input: "1.5", expected: false},
		{input: " 3", expected: false},
		{input: "ten", expected: false},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, IsWholeNumber(tc.input), "input %q", tc.input)
	}
}

func (s *ConsoleTestSuite) TestReadLine() {
	c := s.console("first\r\nsecond\n")

	line, err := c.ReadLine(s.ctx)
	s.Require().NoError(err)
	s.Equal("first", line)

	line, err = c.ReadLine(s.ctx)
	s.Require().NoError(err)
	s.Equal("second", line)

	_, err = c.ReadLine(s.ctx)
	s.ErrorIs(err, ErrInputClosed)
	s.ErrorIs(c.Err(), ErrInputClosed)
}

func (s *ConsoleTestSuite) TestReadLineCancelled() {
	c := s.console("ignored\n")
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := c.ReadLine(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *ConsoleTestSuite) TestAskNumberInRange() {
	c := s.console("abc\n0\n9\n3\n")

	n, err := c.AskDecks(s.ctx, 1, 8)
	s.Require().NoError(err)
	s.Equal(3, n)

	output := s.out.String()
	s.Contains(output, "How many regular card decks would you like in the BlackJack deck? You can have between 1 and 8.")
	s.Contains(output, notWholeNumber)
	s.Equal(2, strings.Count(output, "Error, input is lower than 1 or greater than 8."))
}

func (s *ConsoleTestSuite) TestAskPlayersInputClosed() {
	c := s.console("x\n")

	_, err := c.AskPlayers(s.ctx, 1, 8)
	s.ErrorIs(err, ErrInputClosed)
}

func (s *ConsoleTestSuite) TestAskName() {
	c := s.console("\nDealer\nAlice\n Bob \n")

	name, err := c.AskName(s.ctx, 2, []string{"Alice"})
	s.Require().NoError(err)
	s.Equal("Bob", name)

	output := s.out.String()
	s.Contains(output, "Enter the name of player 2")
	s.Contains(output, nameEmpty)
	s.Equal(2, strings.Count(output, nameTaken))
}

func (s *ConsoleTestSuite) TestAskBet() {
	c := s.console("-5\n0\nlots\n1000000001\n99999999999999999999\n10\n")

	bet, err := c.AskBet(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(int64(10), bet)

	output := s.out.String()
	s.Contains(output, "Alice enter your bet for this game, in dollars:")
	s.Equal(2, strings.Count(output, notWholeNumber))
	s.Contains(output, "Error, input is lower than 1.")
	s.Equal(2, strings.Count(output, "Error, the table limit is $1000000000."))
}

func (s *ConsoleTestSuite) TestAskBetAtTableLimit() {
	c := s.console("1000000000\n")

	bet, err := c.AskBet(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(blackjack.MaxBet, bet)
	s.NotContains(s.out.String(), "table limit")
}

func (s *ConsoleTestSuite) TestAskYesNo() {
	c := s.console("maybe\nY\nno\n")

	again, err := c.AskYesNo(s.ctx, "Play another round?")
	s.Require().NoError(err)
	s.True(again)

	again, err = c.AskYesNo(s.ctx, "Play another round?")
	s.Require().NoError(err)
	s.False(again)

	s.Contains(s.out.String(), "Play another round? (y/n)")
	s.Contains(s.out.String(), invalidYesNo)
}

func (s *ConsoleTestSuite) TestChooseAction() {
	c := s.console("3\n\n1\n2\n")
	alice := withCards(blackjack.NewPlayer("Alice", 10),
		entities.NewCard(entities.Hearts, entities.Ten), entities.NewCard(entities.Clubs, entities.Five))

	action, err := c.ChooseAction(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(blackjack.ActionHit, action)

	action, err = c.ChooseAction(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(blackjack.ActionStand, action)

	output := s.out.String()
	s.Equal(1, strings.Count(output, "Alice's turn."))
	s.Contains(output, "Card 1: Ten of Hearts")
	s.Contains(output, "Card 2: Five of Clubs")
	s.Contains(output, "1) Hit")
	s.Contains(output, invalidChoice)
	s.Contains(output, "Enter any key to continue.")
}

func (s *ConsoleTestSuite) TestChooseAceValue() {
	c := s.console("x\n5\n11\n1\n")
	first := entities.NewCard(entities.Hearts, entities.Ace)
	second := entities.NewCard(entities.Spades, entities.Ace)
	alice := withCards(blackjack.NewPlayer("Alice", 10), first, second)

	value, err := c.ChooseAceValue(s.ctx, alice, first)
	s.Require().NoError(err)
	s.Equal(11, value)

	value, err = c.ChooseAceValue(s.ctx, alice, second)
	s.Require().NoError(err)
	s.Equal(1, value)

	output := s.out.String()
	s.Equal(1, strings.Count(output, "You have 2 ace(s)"))
	s.Contains(output, "What value would you like to give the Ace of Hearts")
	s.Contains(output, "What value would you like to give the Ace of Spades")
	s.Contains(output, notWholeNumber)
	s.Contains(output, invalidAce)
}

func (s *ConsoleTestSuite) TestShowDealHidesHoleCard() {
	dealer := blackjack.NewDealer()
	alice := blackjack.NewPlayer("Alice", 10)
	dealt := [][]*entities.Card{
		{entities.NewCard(entities.Hearts, entities.Ten), entities.NewCard(entities.Clubs, entities.Two)},
		{entities.NewCard(entities.Clubs, entities.Seven), entities.NewCard(entities.Spades, entities.Nine)},
	}

	c := s.console("\n")
	s.Require().NoError(c.ShowDeal(s.ctx, []*blackjack.Player{dealer, alice}, dealt))

	output := s.out.String()
	s.Contains(output, "Dealer got: Ten of Hearts")
	s.Contains(output, "Alice got: Two of Clubs")
	s.Contains(output, "Alice got: Nine of Spades")
	s.NotContains(output, "Seven of Clubs")
	s.Contains(output, "All players have received their second card. Enter any key to continue.")
}

func (s *ConsoleTestSuite) TestShowDealFaceUp() {
	dealer := blackjack.NewDealer()
	alice := blackjack.NewPlayer("Alice", 10)
	dealt := [][]*entities.Card{
		{entities.NewCard(entities.Hearts, entities.Ten), entities.NewCard(entities.Clubs, entities.Two)},
		{entities.NewCard(entities.Clubs, entities.Seven), entities.NewCard(entities.Spades, entities.Nine)},
	}

	c := New(strings.NewReader("\n"), s.out, Options{Clock: s.clock, Logger: logging.Discard()})
	s.Require().NoError(c.ShowDeal(s.ctx, []*blackjack.Player{dealer, alice}, dealt))
	s.Contains(s.out.String(), "Dealer got: Seven of Clubs")
}

func (s *ConsoleTestSuite) TestCardDrawn() {
	c := s.console("\n")
	alice := blackjack.NewPlayer("Alice", 10)

	c.CardDrawn(alice, entities.NewCard(entities.Diamonds, entities.Queen))
	s.NoError(c.Err())
	s.Contains(s.out.String(), "You got the Queen of Diamonds")

	c.CardDrawn(blackjack.NewDealer(), entities.NewCard(entities.Diamonds, entities.Four))
	s.NoError(c.Err(), "dealer cards do not wait for input")
	s.Contains(s.out.String(), "The dealer drew the Four of Diamonds")
}

func (s *ConsoleTestSuite) TestTurnEnded() {
	c := s.console("\n")
	alice := blackjack.NewPlayer("Alice", 10)
	alice.Status = blackjack.StatusBust

	c.TurnEnded(alice)
	s.NoError(c.Err())
	s.Contains(s.out.String(), "Alice busted. Enter any key to continue.")

	bob := blackjack.NewPlayer("Bob", 10)
	bob.Status = blackjack.StatusStood
	c.TurnEnded(bob)
	s.Contains(s.out.String(), "Bob stood.")
	s.ErrorIs(c.Err(), ErrInputClosed, "an observer keeps the input failure for the next prompt")

	_, err := c.ChooseAction(s.ctx, bob)
	s.ErrorIs(err, ErrInputClosed)
}

func (s *ConsoleTestSuite) TestPauseWaitsOnClock() {
	c := New(strings.NewReader("\n"), s.out, Options{Clock: s.clock, Logger: logging.Discard()})
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.Pause(ctx, "Start Game?", 2*time.Second)
	}()

	s.Eventually(func() bool {
		_, ok := s.clock.Peek()
		return ok
	}, time.Second, time.Millisecond)

	select {
	case <-done:
		s.Fail("pause returned before the clock advanced")
	default:
	}

	s.clock.Advance(2 * time.Second).MustWait(ctx)
	s.Require().NoError(<-done)
	s.Contains(s.out.String(), "Start Game? Enter any key to continue.")
}

func (s *ConsoleTestSuite) TestNarrate() {
	testCases := []struct {
		reason   blackjack.Reason
		result   entities.Result
		score    int
		amount   int64
		expected string
	}{
		{blackjack.ReasonBothBlackjack, entities.ResultPush, 21, 10, "Alice also got a black jack. They tied with the Dealer. This means they retain their $10 bet."},
		{blackjack.ReasonNoBlackjack, entities.ResultLose, 20, 10, "Alice did not get a black jack so they lost. This means they lose their $10 bet."},
		{blackjack.ReasonBusted, entities.ResultLose, 24, 10, "Alice busted so they lost. This means they lose their $10 bet."},
		{blackjack.ReasonBlackjack, entities.ResultBlackjack, 21, 8, "Alice got a black jack. Therefore they beat the dealer. This means they win 1.5 times their original bet which is $8."},
		{blackjack.ReasonHigherScore, entities.ResultWin, 20, 10, "Alice got 20 points. Therefore they beat the dealer. This means they win their $10 bet."},
		{blackjack.ReasonSameScore, entities.ResultPush, 18, 10, "Alice got the same amount of points as the dealer. They retain their $10 bet."},
		{blackjack.ReasonLowerScore, entities.ResultLose, 17, 10, "Alice got 17 points. Therefore they lost. This means they lose their $10 bet."},
		{blackjack.ReasonDealerBusted, entities.ResultWin, 19, 10, "Alice did not bust. Therefore they beat the dealer. This means they won their $10 bet."},
	}

	for _, tc := range testCases {
		outcome := blackjack.Outcome{
			Player: blackjack.HandState{Name: "Alice", Bet: 10, Score: tc.score},
			Result: tc.result,
			Reason: tc.reason,
			Amount: tc.amount,
		}
		s.Equal(tc.expected, Narrate(outcome), string(tc.reason))
	}
}

func (s *ConsoleTestSuite) TestShowSettlement() {
	c := s.console("")
	dealer := withCards(blackjack.NewDealer(),
		entities.NewCard(entities.Hearts, entities.Ten), entities.NewCard(entities.Clubs, entities.Eight))
	s.Require().NoError(dealer.Stand())

	c.ShowSettlement(dealer, []blackjack.Outcome{{
		Player: blackjack.HandState{Name: "Alice", Bet: 10, Score: 20},
		Result: entities.ResultWin,
		Reason: blackjack.ReasonHigherScore,
		Amount: 10,
	}})

	output := s.out.String()
	s.Contains(output, "Card 2: Eight of Clubs")
	s.Contains(output, "The dealer got 18 points.")
	s.Contains(output, "Alice got 20 points. Therefore they beat the dealer.")
}

func (s *ConsoleTestSuite) TestShowStandings() {
	c := s.console("")
	c.ShowStandings(nil)
	s.Contains(s.out.String(), "No rounds were completed.")

	s.out.Reset()
	c.ShowStandings([]*statistics.PlayerRank{
		{PlayerStatistics: &entities.PlayerStatistics{Name: "Alice", RoundsPlayed: 2, Wins: 2, TotalWinnings: 25}, Rank: 1, IsTopWinner: true},
		{PlayerStatistics: &entities.PlayerStatistics{Name: "Bob", RoundsPlayed: 2, Losses: 2, TotalLosses: 10}, Rank: 2},
	})

	output := s.out.String()
	s.Contains(output, "1. Alice")
	s.Contains(output, "+$25 over 2 round(s)")
	s.Contains(output, "top winner")
	s.Contains(output, "2. Bob")
	s.Contains(output, "-$10 over 2 round(s)")
}

func (s *ConsoleTestSuite) TestShowBalance() {
	c := s.console("")
	c.ShowBalance(&entities.PlayerStatistics{Name: "Alice"})
	c.ShowBalance(nil)
	s.Empty(s.out.String())

	c.ShowBalance(&entities.PlayerStatistics{Name: "Alice", RoundsPlayed: 2, TotalWinnings: 5, TotalLosses: 15})
	s.Contains(s.out.String(), "Alice is at -$10 after 2 round(s).")
}

func (s *ConsoleTestSuite) TestShowHistory() {
	c := s.console("")
	c.ShowHistory("Bob", nil)
	s.Contains(s.out.String(), "Bob's last 0 round(s):")
	s.Contains(s.out.String(), "none")

	s.out.Reset()
	c.ShowHistory("Alice", []*entities.RoundResult{
		{RoundID: "r2", DealerScore: 18, PlayerResults: []*entities.PlayerResult{
			{Name: "Alice", Bet: 10, Result: entities.ResultBlackjack, Score: 21, Net: 15},
		}},
		{RoundID: "r1", DealerScore: 20, PlayerResults: []*entities.PlayerResult{
			{Name: "Alice", Bet: 10, Result: entities.ResultLose, Score: 17, Net: -10},
		}},
	})

	output := s.out.String()
	s.Contains(output, "Alice's last 2 round(s):")
	s.Contains(output, "+$15 on a $10 bet, 21 against the dealer's 18")
	s.Contains(output, "-$10 on a $10 bet, 17 against the dealer's 20")
	s.Less(strings.Index(output, "BLACKJACK"), strings.Index(output, "LOSE"))
}

func (s *ConsoleTestSuite) TestSigned() {
	s.Equal("+$0", Signed(0))
	s.Equal("+$15", Signed(15))
	s.Equal("-$7", Signed(-7))
}
