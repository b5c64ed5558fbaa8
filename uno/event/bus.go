package event

// Bus groups one game's emitters so that concurrent sessions do not hear
// each other's events.
type Bus struct {
	FirstCardPlayed *FirstCardPlayedEmitter
	CardPlayed      *CardPlayedEmitter
	CardsDrawn      *CardsDrawnEmitter
	PlayerPassed    *PlayerPassedEmitter
	ColorPicked     *ColorPickedEmitter
	TurnSkipped     *TurnSkippedEmitter
	TurnReversed    *TurnReversedEmitter
	UnoCalled       *UnoCalledEmitter
	UnoMissed       *UnoMissedEmitter
	GameWon         *GameWonEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed: &FirstCardPlayedEmitter{},
		CardPlayed:      &CardPlayedEmitter{},
		CardsDrawn:      &CardsDrawnEmitter{},
		PlayerPassed:    &PlayerPassedEmitter{},
		ColorPicked:     &ColorPickedEmitter{},
		TurnSkipped:     &TurnSkippedEmitter{},
		TurnReversed:    &TurnReversedEmitter{},
		UnoCalled:       &UnoCalledEmitter{},
		UnoMissed:       &UnoMissedEmitter{},
		GameWon:         &GameWonEmitter{},
	}
}
