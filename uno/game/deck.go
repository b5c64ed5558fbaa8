package game

import (
	"math/rand"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/uno/card"
)

// Deck owns both the draw pile and the discard pile. All 108 cards live in
// the deck, the discard pile or a hand; nothing is ever created or lost
// after construction.
type Deck struct {
	rng     *rand.Rand
	cards   []card.Card
	discard *Pile
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{
		rng:     rng,
		cards:   card.Catalog(),
		discard: NewPile(),
	}
	deck.shuffle(deck.cards)
	return deck
}

// Deal pops the top of the draw pile, refilling it from the buried discard
// cards first when it has run dry. ErrorsEmptyDeck means no card is
// available anywhere; callers treat it as "the turn moves on", never as
// fatal.
func (d *Deck) Deal() (card.Card, error) {
	if len(d.cards) == 0 {
		d.reshuffleFromDiscard()
	}
	if len(d.cards) == 0 {
		return nil, consts.ErrorsEmptyDeck
	}
	dealt := d.cards[0]
	d.cards = d.cards[1:]
	return dealt, nil
}

func (d *Deck) Discard(card card.Card) {
	d.discard.Add(card)
}

func (d *Deck) DiscardPile() *Pile {
	return d.discard
}

// ReturnToBottom puts a card back under the draw pile. Used when the first
// flip turns up a wildcard, which may not start the game.
func (d *Deck) ReturnToBottom(card card.Card) {
	d.cards = append(d.cards, card)
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// CardCount is the number of cards the deck still holds across both piles.
func (d *Deck) CardCount() int {
	return len(d.cards) + d.discard.Size()
}

// reshuffleFromDiscard rebuilds the draw pile from the buried discard
// cards, keeping the visible top card in place. A discard pile holding at
// most one card yields nothing.
func (d *Deck) reshuffleFromDiscard() {
	buried := d.discard.TakeAllButTop()
	if len(buried) == 0 {
		return
	}
	d.shuffle(buried)
	d.cards = append(d.cards, buried...)
}

func (d *Deck) shuffle(cards []card.Card) {
	d.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
