package card

import (
	"github.com/feel-easy/uno-agent/uno/card/color"
)

// Catalog returns the full 108-card set: per color one zero, two copies of
// each number 1-9 and two copies of each special kind, plus four copies of
// each wildcard kind.
func Catalog() []Card {
	cards := make([]Card, 0, 108)
	cards = append(cards, wildcards()...)
	for _, cardColor := range color.All() {
		cards = append(cards, coloredSet(cardColor)...)
	}
	if len(cards) != 108 {
		panic("uno card catalog must hold exactly 108 cards")
	}
	return cards
}

func coloredSet(cardColor color.Color) []Card {
	zeroCard := NewNumberCard(cardColor, 0)
	skipCard := NewSkipCard(cardColor)
	reverseCard := NewReverseCard(cardColor)
	drawTwoCard := NewDrawTwoCard(cardColor)

	cards := []Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func wildcards() []Card {
	wildCard := NewWildCard()
	wildDrawFourCard := NewWildDrawFourCard()

	return []Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
