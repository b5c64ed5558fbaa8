package prob

import (
	"github.com/feel-easy/uno-agent/uno/card"
)

// Class indexes for the special and wildcard estimate tables.
const (
	SpecialSkip = iota
	SpecialReverse
	SpecialDrawTwo
	NumSpecials
)

const (
	WildStandard = iota
	WildDrawFour
	NumWilds
)

// Counters tracks how many cards of each class are still unseen. A card is
// counted once under its rank/kind class; the color counters run alongside
// so colored cards contribute to both views.
type Counters struct {
	Colors   [4]int
	Numbers  [10]int
	Specials [NumSpecials]int
	Wilds    [NumWilds]int
}

// NewCounters seeds a full 108-card pool: 25 per color, one zero and eight
// of each number 1-9 per the whole deck, eight of each special kind, four
// of each wildcard kind.
func NewCounters() Counters {
	c := Counters{}
	for i := range c.Colors {
		c.Colors[i] = 25
	}
	c.Numbers[0] = 4
	for n := 1; n <= 9; n++ {
		c.Numbers[n] = 8
	}
	for i := range c.Specials {
		c.Specials[i] = 8
	}
	for i := range c.Wilds {
		c.Wilds[i] = 4
	}
	return c
}

// Remove decrements the classes the given card belongs to, clamped at zero.
func (c *Counters) Remove(removed card.Card) {
	if colored, ok := removed.(card.ColoredCard); ok {
		removed = colored.Unwrap()
	}
	switch removed := removed.(type) {
	case card.NumberCard:
		decrement(&c.Colors[removed.Color().Index()])
		decrement(&c.Numbers[removed.Number()])
	case card.SkipCard:
		decrement(&c.Colors[removed.Color().Index()])
		decrement(&c.Specials[SpecialSkip])
	case card.ReverseCard:
		decrement(&c.Colors[removed.Color().Index()])
		decrement(&c.Specials[SpecialReverse])
	case card.DrawTwoCard:
		decrement(&c.Colors[removed.Color().Index()])
		decrement(&c.Specials[SpecialDrawTwo])
	case card.WildCard:
		decrement(&c.Wilds[WildStandard])
	case card.WildDrawFourCard:
		decrement(&c.Wilds[WildDrawFour])
	}
}

// Total is the number of unseen cards, each counted once under its
// rank/kind class.
func (c Counters) Total() int {
	total := 0
	for _, n := range c.Numbers {
		total += n
	}
	for _, n := range c.Specials {
		total += n
	}
	for _, n := range c.Wilds {
		total += n
	}
	return total
}

func decrement(counter *int) {
	if *counter > 0 {
		*counter--
	}
}
