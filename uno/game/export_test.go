package game

import (
	"math/rand"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/uno/card"
	"github.com/feel-easy/uno-agent/uno/event"
)

// NewTestGame builds a game in a fully controlled state: fixed hands, match
// card and draw pile, no shuffling involved.
func NewTestGame(rng *rand.Rand, bus *event.Bus, hands [consts.NumSeats][]card.Card, matchCard card.Card, drawPile []card.Card) *Game {
	g := &Game{
		deck: &Deck{
			rng:     rng,
			cards:   drawPile,
			discard: NewPile(),
		},
		bus:       bus,
		direction: 1,
		winner:    -1,
		matchCard: matchCard,
	}
	for seat := range g.seats {
		g.seats[seat] = &seatState{
			name: consts.SeatNames[seat],
			hand: NewHand(),
		}
		g.seats[seat].hand.AddCards(hands[seat])
	}
	g.deck.Discard(matchCard)
	return g
}

// SetCurrent moves the turn to the given seat, for scenarios that start
// elsewhere than seat 0.
func (g *Game) SetCurrent(seat int) {
	g.current = seat
}
