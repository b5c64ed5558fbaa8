package game

import (
	"github.com/feel-easy/uno-agent/uno/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCard(card card.Card) {
	h.cards = append(h.cards, card)
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// CardAt addresses a card by hand index; the boundary identifies plays by
// index rather than by value.
func (h *Hand) CardAt(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return nil, false
	}
	return h.cards[index], true
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Playable returns the indexed cards that may be played on lastPlayedCard,
// in hand order.
func (h *Hand) Playable(lastPlayedCard card.Card) []IndexedCard {
	var playableCards []IndexedCard
	for index, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			playableCards = append(playableCards, IndexedCard{Index: index, Card: candidateCard})
		}
	}
	return playableCards
}

// RemoveAt removes the card at index, preserving the order of the rest so
// that the boundary's indices stay meaningful.
func (h *Hand) RemoveAt(index int) {
	if index < 0 || index >= len(h.cards) {
		return
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
}

func (h *Hand) Size() int {
	return len(h.cards)
}
