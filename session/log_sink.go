package session

import (
	"fmt"
	"sync"

	"github.com/feel-easy/uno-agent/uno/event"
)

// logSink turns game events into the human-readable feed shown next to the
// table. It subscribes to every emitter on the session's bus.
type logSink struct {
	mu    sync.Mutex
	lines []string
}

func newLogSink(bus *event.Bus) *logSink {
	sink := &logSink{lines: make([]string, 0, 64)}
	bus.FirstCardPlayed.AddListener(sink)
	bus.CardPlayed.AddListener(sink)
	bus.CardsDrawn.AddListener(sink)
	bus.PlayerPassed.AddListener(sink)
	bus.ColorPicked.AddListener(sink)
	bus.TurnSkipped.AddListener(sink)
	bus.TurnReversed.AddListener(sink)
	bus.UnoCalled.AddListener(sink)
	bus.UnoMissed.AddListener(sink)
	bus.GameWon.AddListener(sink)
	return sink
}

func (l *logSink) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

func (l *logSink) appendf(format string, args ...interface{}) {
	l.append(fmt.Sprintf(format, args...))
}

func (l *logSink) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines := make([]string, len(l.lines))
	copy(lines, l.lines)
	return lines
}

func (l *logSink) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	l.appendf("First card is a %s", payload.Card)
}

func (l *logSink) OnCardPlayed(payload event.CardPlayedPayload) {
	l.appendf("%s played %s", payload.PlayerName, payload.Card)
}

func (l *logSink) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Penalty {
		l.appendf("%s drew %d card(s) as penalty", payload.PlayerName, payload.Amount)
		return
	}
	l.appendf("%s drew %d card(s)", payload.PlayerName, payload.Amount)
}

func (l *logSink) OnPlayerPassed(payload event.PlayerPassedPayload) {
	l.appendf("%s passed", payload.PlayerName)
}

func (l *logSink) OnColorPicked(payload event.ColorPickedPayload) {
	l.appendf("%s picked %s", payload.PlayerName, payload.Color.Name())
}

func (l *logSink) OnTurnSkipped(payload event.TurnSkippedPayload) {
	l.appendf("%s was skipped", payload.PlayerName)
}

func (l *logSink) OnTurnReversed(payload event.TurnReversedPayload) {
	l.append("Turn order reversed")
}

func (l *logSink) OnUnoCalled(payload event.UnoCalledPayload) {
	l.appendf("%s called UNO!", payload.PlayerName)
}

func (l *logSink) OnUnoMissed(payload event.UnoMissedPayload) {
	l.appendf("%s emptied the hand without calling UNO, %d penalty card(s)", payload.PlayerName, payload.Penalty)
}

func (l *logSink) OnGameWon(payload event.GameWonPayload) {
	l.appendf("%s won the game!", payload.PlayerName)
}
