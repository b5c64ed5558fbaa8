package game

import (
	"github.com/feel-easy/uno-agent/uno/card"
)

// Pile is the discard pile. The last card added is the visible top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// TakeAllButTop removes and returns every buried card, leaving only the top
// card behind. With one card or less the pile is left untouched.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	buried := p.cards[:len(p.cards)-1]
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return buried
}
