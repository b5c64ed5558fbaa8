package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-agent/uno/card"
	"github.com/feel-easy/uno-agent/uno/card/color"
	"github.com/feel-easy/uno-agent/uno/event"
)

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.CardPlayed.AddListener(listenerOne)
	bus.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "Someone",
			Card:       card.NewWildCard(),
		},
		{
			PlayerName: "Somebody",
			Card:       card.NewDrawTwoCard(color.Green),
		},
	}

	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestBusesAreIsolated(t *testing.T) {
	busOne := event.NewBus()
	busTwo := event.NewBus()
	listener := event.NewDummyListener()

	busOne.GameWon.AddListener(listener)
	busTwo.GameWon.Emit(event.GameWonPayload{PlayerName: "Someone"})
	require.Empty(t, listener.ReceivedPayloads())

	busOne.GameWon.Emit(event.GameWonPayload{PlayerName: "Somebody"})
	require.Len(t, listener.ReceivedPayloads(), 1)
}

func TestEveryEmitterReachesItsListeners(t *testing.T) {
	bus := event.NewBus()
	listener := event.NewDummyListener()

	bus.FirstCardPlayed.AddListener(listener)
	bus.CardsDrawn.AddListener(listener)
	bus.PlayerPassed.AddListener(listener)
	bus.ColorPicked.AddListener(listener)
	bus.TurnSkipped.AddListener(listener)
	bus.TurnReversed.AddListener(listener)
	bus.UnoCalled.AddListener(listener)
	bus.UnoMissed.AddListener(listener)

	bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: card.NewNumberCard(color.Blue, 7)})
	bus.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: "Someone", Amount: 2})
	bus.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "Someone"})
	bus.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: "Someone", Color: color.Green})
	bus.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: "Someone"})
	bus.TurnReversed.Emit(event.TurnReversedPayload{})
	bus.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: "Someone"})
	bus.UnoMissed.Emit(event.UnoMissedPayload{PlayerName: "Someone", Penalty: 2})

	require.Len(t, listener.ReceivedPayloads(), 8)
}
