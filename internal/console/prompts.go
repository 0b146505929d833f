package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

const (
	notWholeNumber = "Error, input is not a whole number. Only whole number inputs are accepted."
	nameTaken      = "Name is already taken try again."
	nameEmpty      = "Error, a name is required."
	invalidChoice  = "Error. enter a valid number."
	invalidAce     = "Error, input is not 1 or 11. Aces can only have a value of 1 or 11"
	invalidYesNo   = "Error, answer y or n."
)

// IsWholeNumber reports whether s is a non-empty run of the digits 0-9
func IsWholeNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// AskNumberInRange repeats question until the answer is a whole number in [min, max]
func (c *Console) AskNumberInRange(ctx context.Context, question string, min, max int) (int, error) {
	for {
		c.Say("%s", question)
		line, err := c.ReadLine(ctx)
		if err != nil {
			return 0, err
		}

		if !IsWholeNumber(line) {
			c.Error(notWholeNumber)
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < min || n > max {
			c.Error("Error, input is lower than %d or greater than %d. Only numbers between %d and %d are accepted.", min, max, min, max)
			continue
		}
		return n, nil
	}
}

// AskDecks asks how many packs go into the shoe
func (c *Console) AskDecks(ctx context.Context, min, max int) (int, error) {
	return c.AskNumberInRange(ctx,
		"How many regular card decks would you like in the BlackJack deck? You can have between "+
			strconv.Itoa(min)+" and "+strconv.Itoa(max)+".", min, max)
}

// AskPlayers asks how many players sit at the table
func (c *Console) AskPlayers(ctx context.Context, min, max int) (int, error) {
	return c.AskNumberInRange(ctx,
		"How many players are you playing with? You can have between "+
			strconv.Itoa(min)+" and "+strconv.Itoa(max)+".", min, max)
}

// AskName asks for the name of player seat until it is non-empty and not
// already taken. The dealer's name is always taken.
func (c *Console) AskName(ctx context.Context, seat int, taken []string) (string, error) {
	for {
		c.Say("Enter the name of player %d", seat)
		line, err := c.ReadLine(ctx)
		if err != nil {
			return "", err
		}

		name := strings.TrimSpace(line)
		switch {
		case name == "":
			c.Error(nameEmpty)
		case name == blackjack.DealerName || contains(taken, name):
			c.Blank()
			c.Error(nameTaken)
			c.Blank()
		default:
			return name, nil
		}
	}
}

// AskBet asks name for a whole-dollar bet between $1 and the table limit
func (c *Console) AskBet(ctx context.Context, name string) (int64, error) {
	for {
		c.Blank()
		c.Say("%s enter your bet for this game, in dollars:", name)
		line, err := c.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		c.Blank()

		if !IsWholeNumber(line) {
			c.Error(notWholeNumber)
			continue
		}
		bet, err := strconv.ParseInt(line, 10, 64)
		if err != nil || bet > blackjack.MaxBet {
			c.Error("Error, the table limit is $%d.", blackjack.MaxBet)
			continue
		}
		if bet < 1 {
			c.Error("Error, input is lower than 1. Only numbers greater than 0 are accepted.")
			continue
		}
		return bet, nil
	}
}

// AskYesNo repeats question until the answer starts with y or n
func (c *Console) AskYesNo(ctx context.Context, question string) (bool, error) {
	for {
		c.Say("%s (y/n)", question)
		line, err := c.ReadLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			c.Error(invalidYesNo)
		}
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
