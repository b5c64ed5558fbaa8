package prob

import (
	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/uno/card"
	"github.com/feel-easy/uno-agent/uno/card/color"
)

// Table holds one human seat's likelihood estimates per card class. Entries
// are independent heuristic likelihoods in [0,1], not a normalized joint
// distribution: zeroing one class never redistributes mass to the others.
type Table struct {
	Colors   [4]float64
	Numbers  [10]float64
	Specials [NumSpecials]float64
	Wilds    [NumWilds]float64
}

func initialTable(counters Counters) *Table {
	t := &Table{}
	for i, count := range counters.Colors {
		t.Colors[i] = float64(count) / consts.TotalCards
	}
	for i, count := range counters.Numbers {
		t.Numbers[i] = float64(count) / consts.TotalCards
	}
	for i, count := range counters.Specials {
		t.Specials[i] = float64(count) / consts.TotalCards
	}
	for i, count := range counters.Wilds {
		t.Wilds[i] = float64(count) / consts.TotalCards
	}
	return t
}

// Model estimates what the two human seats may be holding, from public
// information only. The automated seat's hand is known and excluded.
type Model struct {
	counters Counters
	tables   map[int]*Table
}

func NewModel() *Model {
	m := &Model{}
	m.Reset()
	return m
}

// Reset reseeds the counters and both seat tables for a fresh game.
func (m *Model) Reset() {
	m.counters = NewCounters()
	m.tables = map[int]*Table{}
	for seat := 0; seat < consts.NumSeats; seat++ {
		if seat == consts.MachineSeat {
			continue
		}
		m.tables[seat] = initialTable(m.counters)
	}
}

// CardLeftDeck records a card leaving the unseen pool: dealt to a hand,
// drawn, or flipped as the starting card. Counters move immediately; the
// estimate tables catch up at the next play observation.
func (m *Model) CardLeftDeck(left card.Card) {
	m.counters.Remove(left)
}

// Counters returns a copy of the remaining-class counters.
func (m *Model) Counters() Counters {
	return m.counters
}

// Table returns a copy of the given seat's estimate table. The automated
// seat has none; the zero table is returned for it.
func (m *Model) Table(seat int) Table {
	if t, ok := m.tables[seat]; ok {
		return *t
	}
	return Table{}
}

// ObservePlay applies the update rules for one resolved play: first the
// recount of the played card's classes for both human seats, then the
// revealed-absence inference against the prior top card, which only tells
// us something about the acting seat's own hand.
func (m *Model) ObservePlay(seat int, played, prior card.Card) {
	m.recount(played)

	table, human := m.tables[seat]
	if !human || prior == nil {
		return
	}

	playedColor := played.Color()
	priorColor := prior.Color()
	sameColor := playedColor != nil && priorColor != nil && playedColor == priorColor

	switch playedCard := unwrap(played).(type) {
	case card.WildCard, card.WildDrawFourCard:
		// A wildcard play suggests the seat had neither the prior color nor
		// the prior rank.
		m.zeroColor(table, priorColor)
		m.zeroRank(table, prior)
	case card.SkipCard, card.ReverseCard, card.DrawTwoCard:
		m.zeroRank(table, prior)
	case card.NumberCard:
		priorNumber, priorIsNumber := unwrap(prior).(card.NumberCard)
		sameNumber := priorIsNumber && priorNumber.Number() == playedCard.Number()
		if sameColor && !sameNumber {
			m.zeroRank(table, prior)
		} else if sameNumber && !sameColor {
			m.zeroColor(table, priorColor)
		}
	}
}

// ObserveForcedDraw applies the inference for a human seat that had to draw:
// it provably lacks the top card's color and rank, and the chance that the
// deck still hides disruptive cards shrinks by one per kind.
func (m *Model) ObserveForcedDraw(seat int, top card.Card) {
	table, human := m.tables[seat]
	if !human || top == nil {
		return
	}

	m.zeroColor(table, top.Color())
	m.zeroRank(table, top)

	for kind := range m.counters.Specials {
		decrement(&m.counters.Specials[kind])
	}
	total := m.total()
	for kind, count := range m.counters.Specials {
		table.Specials[kind] = clamp01(float64(count) / total)
	}

	if _, isWild := unwrap(top).(card.WildCard); isWild {
		m.shrinkWilds(table)
	} else if _, isWildFour := unwrap(top).(card.WildDrawFourCard); isWildFour {
		m.shrinkWilds(table)
	}
}

// ZeroTopClasses pins a seat's estimates for the given top card's color and
// rank at zero. Used after a forced draw turned into an immediate play, so
// the pre-draw evidence survives the play's own recount.
func (m *Model) ZeroTopClasses(seat int, top card.Card) {
	table, human := m.tables[seat]
	if !human || top == nil {
		return
	}
	m.zeroColor(table, top.Color())
	m.zeroRank(table, top)
}

// OpponentLikelihood scores how likely the given human seat is to hold a
// card of the same classes as c: the mean of the applicable class
// estimates. The automated seat always scores zero.
func (m *Model) OpponentLikelihood(seat int, c card.Card) float64 {
	table, human := m.tables[seat]
	if !human {
		return 0
	}
	switch scored := unwrap(c).(type) {
	case card.NumberCard:
		return (table.Colors[scored.Color().Index()] + table.Numbers[scored.Number()]) / 2
	case card.SkipCard:
		return (table.Colors[scored.Color().Index()] + table.Specials[SpecialSkip]) / 2
	case card.ReverseCard:
		return (table.Colors[scored.Color().Index()] + table.Specials[SpecialReverse]) / 2
	case card.DrawTwoCard:
		return (table.Colors[scored.Color().Index()] + table.Specials[SpecialDrawTwo]) / 2
	case card.WildCard:
		return table.Wilds[WildStandard]
	case card.WildDrawFourCard:
		return table.Wilds[WildDrawFour]
	default:
		return 0
	}
}

func (m *Model) recount(played card.Card) {
	total := m.total()
	for _, table := range m.tables {
		if c := played.Color(); c != nil {
			table.Colors[c.Index()] = clamp01(float64(m.counters.Colors[c.Index()]) / total)
		}
		switch playedCard := unwrap(played).(type) {
		case card.NumberCard:
			table.Numbers[playedCard.Number()] = clamp01(float64(m.counters.Numbers[playedCard.Number()]) / total)
		case card.SkipCard:
			table.Specials[SpecialSkip] = clamp01(float64(m.counters.Specials[SpecialSkip]) / total)
		case card.ReverseCard:
			table.Specials[SpecialReverse] = clamp01(float64(m.counters.Specials[SpecialReverse]) / total)
		case card.DrawTwoCard:
			table.Specials[SpecialDrawTwo] = clamp01(float64(m.counters.Specials[SpecialDrawTwo]) / total)
		case card.WildCard:
			table.Wilds[WildStandard] = clamp01(float64(m.counters.Wilds[WildStandard]) / total)
		case card.WildDrawFourCard:
			table.Wilds[WildDrawFour] = clamp01(float64(m.counters.Wilds[WildDrawFour]) / total)
		}
	}
}

func (m *Model) shrinkWilds(table *Table) {
	for kind := range m.counters.Wilds {
		decrement(&m.counters.Wilds[kind])
	}
	total := m.total()
	for kind, count := range m.counters.Wilds {
		table.Wilds[kind] = clamp01(float64(count) / total)
	}
}

func (m *Model) zeroColor(table *Table, c color.Color) {
	if c == nil {
		return
	}
	table.Colors[c.Index()] = 0
}

func (m *Model) zeroRank(table *Table, c card.Card) {
	switch ranked := unwrap(c).(type) {
	case card.NumberCard:
		table.Numbers[ranked.Number()] = 0
	case card.SkipCard:
		table.Specials[SpecialSkip] = 0
	case card.ReverseCard:
		table.Specials[SpecialReverse] = 0
	case card.DrawTwoCard:
		table.Specials[SpecialDrawTwo] = 0
	case card.WildCard:
		table.Wilds[WildStandard] = 0
	case card.WildDrawFourCard:
		table.Wilds[WildDrawFour] = 0
	}
}

func (m *Model) total() float64 {
	total := m.counters.Total()
	if total < 1 {
		total = 1
	}
	return float64(total)
}

func unwrap(c card.Card) card.Card {
	if colored, ok := c.(card.ColoredCard); ok {
		return colored.Unwrap()
	}
	return c
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
