package blackjack

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_blackjack

// Prompter asks a player for decisions. Implementations must only return
// valid choices: an Action for which Valid() is true, and 1 or 11 for an Ace.
type Prompter interface {
	// ChooseAction asks the player to hit or stand
	ChooseAction(ctx context.Context, player *Player) (Action, error)

	// ChooseAceValue asks for the final value of one Ace after the player stood
	ChooseAceValue(ctx context.Context, player *Player, ace *entities.Card) (int, error)
}

// Observer is told about engine events that a table display may show
type Observer interface {
	// CardDrawn is called after card was added to player's hand by a hit
	CardDrawn(player *Player, card *entities.Card)

	// TurnEnded is called once player can no longer act this round
	TurnEnded(player *Player)
}

// Ports bundles the collaborators a round is played through
type Ports struct {
	Prompter Prompter
	Observer Observer
}

type noopObserver struct{}

func (noopObserver) CardDrawn(*Player, *entities.Card) {}
func (noopObserver) TurnEnded(*Player)                 {}

func (p Ports) observer() Observer {
	if p.Observer == nil {
		return noopObserver{}
	}
	return p.Observer
}
