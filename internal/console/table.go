package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
)

// Intro prints the house rules
func (c *Console) Intro(dealerStandsOn int) {
	c.Header("BlackJack")
	c.Blank()
	c.Say("Get closer to 21 than the dealer without going over.")
	c.Say("Face cards count 10. Aces count 11 until you stand, then you choose 1 or 11 for each one.")
	c.Say("The dealer draws until they reach %d or more.", dealerStandsOn)
	c.Say("A black jack pays 1.5 times your bet. A tie gives your bet back.")
	c.Blank()
}

// ShowDeal prints the opening hands pass by pass, keeping the dealer's hole
// card face down when the rules say so
func (c *Console) ShowDeal(ctx context.Context, players []*blackjack.Player, dealt [][]*entities.Card) error {
	for pass, cards := range dealt {
		for seat, card := range cards {
			if pass == 1 && seat == blackjack.DealerSeat && c.opts.HideHoleCard {
				continue
			}
			c.Say("%s got: %s", players[seat].Name, c.styles.Card.Render(card.Name()))
			c.Blank()
			if err := c.wait(ctx, c.opts.Pace); err != nil {
				return err
			}
		}
	}

	return c.Pause(ctx, "All players have received their second card.", c.opts.Pace)
}

func (c *Console) printCards(player *blackjack.Player) {
	c.Blank()
	c.Say("Your cards:")
	for i, card := range player.Hand {
		c.Say("Card %d: %s", i+1, c.styles.Card.Render(card.Name()))
	}
	c.Blank()
}

// ChooseAction shows the player's cards and asks for a move until the
// answer is 1 or 2
func (c *Console) ChooseAction(ctx context.Context, player *blackjack.Player) (blackjack.Action, error) {
	if c.turn != player {
		c.Say("%s's turn.", player.Name)
		c.Blank()
		c.turn = player
	}

	for {
		c.printCards(player)
		c.Say("Make your move\n\t1) Hit\n\t2) Stand\nEnter your choice")
		line, err := c.ReadLine(ctx)
		if err != nil {
			return 0, err
		}

		switch line {
		case "1":
			return blackjack.ActionHit, nil
		case "2":
			return blackjack.ActionStand, nil
		}

		c.Error(invalidChoice)
		if err := c.Pause(ctx, "", c.opts.Pace); err != nil {
			return 0, err
		}
	}
}

// ChooseAceValue asks for the final value of one Ace until the answer is 1 or 11
func (c *Console) ChooseAceValue(ctx context.Context, player *blackjack.Player, ace *entities.Card) (int, error) {
	aces := player.FindAces()
	if len(aces) > 0 && aces[0] == ace {
		c.Blank()
		c.Say("You have %d ace(s) what final values would you like to give each of them. 1 or 11?", len(aces))
	}

	for {
		c.Say("What value would you like to give the %s", ace.Name())
		line, err := c.ReadLine(ctx)
		if err != nil {
			return 0, err
		}

		if !IsWholeNumber(line) {
			c.Error(notWholeNumber)
			continue
		}
		value, err := strconv.Atoi(line)
		if err != nil || !blackjack.ValidAceValue(value) {
			c.Error(invalidAce)
			continue
		}
		return value, nil
	}
}

// CardDrawn announces a hit. A player's card waits for the continue prompt.
func (c *Console) CardDrawn(player *blackjack.Player, card *entities.Card) {
	ctx := context.Background()

	if player.IsDealer {
		c.Say("The dealer drew the %s", c.styles.Card.Render(card.Name()))
		c.remember(c.wait(ctx, c.opts.ShortPace))
		return
	}

	c.Blank()
	c.Say("You got the %s", c.styles.Card.Render(card.Name()))
	c.remember(c.Pause(ctx, "", c.opts.Pace))
}

// TurnEnded announces whether the player stood or busted
func (c *Console) TurnEnded(player *blackjack.Player) {
	c.turn = nil
	c.Clear()

	verb := "stood"
	if player.Status == blackjack.StatusBust {
		verb = "busted"
	}
	c.remember(c.Pause(context.Background(), fmt.Sprintf("%s %s.", player.Name, verb), c.opts.Pace))
}

// ShowSettlement reveals the dealer's hand and explains every player's outcome
func (c *Console) ShowSettlement(dealer *blackjack.Player, outcomes []blackjack.Outcome) {
	c.Header("Results")
	c.Blank()
	c.Say("The dealer's cards:")
	for i, card := range dealer.Hand {
		c.Say("Card %d: %s", i+1, c.styles.Card.Render(card.Name()))
	}
	c.Blank()

	state := dealer.State()
	switch blackjack.DealerOutcomeOf(state) {
	case entities.DealerBlackjack:
		c.Say("The dealer got a black jack.")
	case entities.DealerBusted:
		c.Say("The dealer busted.")
	default:
		c.Say("The dealer got %d points.", state.Score)
	}

	for _, outcome := range outcomes {
		c.Say("%s", c.resultStyle(outcome.Result).Render(Narrate(outcome)))
	}
	c.Blank()
}

// Narrate explains one outcome in a sentence
func Narrate(o blackjack.Outcome) string {
	name := o.Player.Name
	switch o.Reason {
	case blackjack.ReasonBothBlackjack:
		return fmt.Sprintf("%s also got a black jack. They tied with the Dealer. This means they retain their $%d bet.", name, o.Amount)
	case blackjack.ReasonNoBlackjack:
		return fmt.Sprintf("%s did not get a black jack so they lost. This means they lose their $%d bet.", name, o.Amount)
	case blackjack.ReasonBusted:
		return fmt.Sprintf("%s busted so they lost. This means they lose their $%d bet.", name, o.Amount)
	case blackjack.ReasonBlackjack:
		return fmt.Sprintf("%s got a black jack. Therefore they beat the dealer. This means they win 1.5 times their original bet which is $%d.", name, o.Amount)
	case blackjack.ReasonHigherScore:
		return fmt.Sprintf("%s got %d points. Therefore they beat the dealer. This means they win their $%d bet.", name, o.Player.Score, o.Amount)
	case blackjack.ReasonSameScore:
		return fmt.Sprintf("%s got the same amount of points as the dealer. They retain their $%d bet.", name, o.Amount)
	case blackjack.ReasonLowerScore:
		return fmt.Sprintf("%s got %d points. Therefore they lost. This means they lose their $%d bet.", name, o.Player.Score, o.Amount)
	case blackjack.ReasonDealerBusted:
		return fmt.Sprintf("%s did not bust. Therefore they beat the dealer. This means they won their $%d bet.", name, o.Amount)
	default:
		return fmt.Sprintf("%s: %s", name, o.Result)
	}
}

func (c *Console) resultStyle(result entities.Result) lipgloss.Style {
	switch result {
	case entities.ResultWin, entities.ResultBlackjack:
		return c.styles.Win
	case entities.ResultLose:
		return c.styles.Lose
	default:
		return c.styles.Push
	}
}

// ShowStandings prints the session leaderboard
func (c *Console) ShowStandings(ranks []*statistics.PlayerRank) {
	c.Header("Standings")
	c.Blank()
	if len(ranks) == 0 {
		c.Say("No rounds were completed.")
		return
	}

	for _, rank := range ranks {
		line := fmt.Sprintf("%d. %-12s %s over %d round(s)  W %d  L %d  P %d  BJ %d",
			rank.Rank, rank.Name, Signed(rank.NetProfit()), rank.RoundsPlayed,
			rank.Wins, rank.Losses, rank.Pushes, rank.Blackjacks)
		if rank.IsTopWinner {
			line += "  top winner"
		}
		c.Say("%s", line)
	}
	c.Blank()
}

// ShowBalance tells a returning player how the session is going for them
func (c *Console) ShowBalance(stats *entities.PlayerStatistics) {
	if stats == nil || stats.RoundsPlayed == 0 {
		return
	}
	c.Say("%s is at %s after %d round(s).", stats.Name, Signed(stats.NetProfit()), stats.RoundsPlayed)
}

// ShowHistory lists a player's recent rounds, newest first. Each round holds
// only that player's line.
func (c *Console) ShowHistory(name string, rounds []*entities.RoundResult) {
	c.Say("%s's last %d round(s):", name, len(rounds))
	if len(rounds) == 0 {
		c.Say("  none")
		return
	}

	for _, round := range rounds {
		for _, pr := range round.PlayerResults {
			line := fmt.Sprintf("  %-9s %6s on a $%d bet, %d against the dealer's %d",
				pr.Result, Signed(pr.Net), pr.Bet, pr.Score, round.DealerScore)
			c.Say("%s", c.resultStyle(pr.Result).Render(line))
		}
	}
}

// Signed formats a dollar change with its sign, e.g. +$10 or -$5
func Signed(amount int64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%d", -amount)
	}
	return fmt.Sprintf("+$%d", amount)
}
