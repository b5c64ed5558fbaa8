package game

import (
	"github.com/feel-easy/uno-agent/uno/card"
)

// Playable reports whether candidateCard may be played on lastPlayedCard:
// wildcards always, otherwise a color match or a same-kind/same-number match.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard.Color() != nil && candidateCard.Color() == lastPlayedCard.Color() {
		return true
	}

	switch candidateCard := candidateCard.(type) {
	case card.WildCard, card.WildDrawFourCard:
		return true
	case card.DrawTwoCard:
		_, isDrawTwoCard := lastPlayedCard.(card.DrawTwoCard)
		return isDrawTwoCard
	case card.ReverseCard:
		_, isReverseCard := lastPlayedCard.(card.ReverseCard)
		return isReverseCard
	case card.SkipCard:
		_, isSkipCard := lastPlayedCard.(card.SkipCard)
		return isSkipCard
	case card.NumberCard:
		lastPlayedCard, isNumberCard := lastPlayedCard.(card.NumberCard)
		return isNumberCard && lastPlayedCard.Number() == candidateCard.Number()
	default:
		return false
	}
}

// IsWildcard reports whether c is a plain wildcard or a wild draw four,
// ignoring any color overlay.
func IsWildcard(c card.Card) bool {
	if colored, ok := c.(card.ColoredCard); ok {
		c = colored.Unwrap()
	}
	switch c.(type) {
	case card.WildCard, card.WildDrawFourCard:
		return true
	default:
		return false
	}
}
