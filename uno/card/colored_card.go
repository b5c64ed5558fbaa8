package card

import (
	"github.com/feel-easy/uno-agent/uno/card/action"
	"github.com/feel-easy/uno-agent/uno/card/color"
)

// ColoredCard overlays a chosen color on a wildcard so that subsequent
// color-match checks have something to match against.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

func (c ColoredCard) Equal(other Card) bool {
	return c.card.Equal(other)
}

// Unwrap returns the wildcard underneath the color overlay.
func (c ColoredCard) Unwrap() Card {
	return c.card
}

func (c ColoredCard) String() string {
	return c.color.Paintf("%s", c.card.String())
}
