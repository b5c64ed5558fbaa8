package event

type TurnSkippedPayload struct {
	PlayerName string
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type TurnSkippedEmitter struct {
	listeners []TurnSkippedListener
}

func (e *TurnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnSkipped(payload)
	}
}

type TurnReversedPayload struct{}

type TurnReversedListener interface {
	OnTurnReversed(TurnReversedPayload)
}

type TurnReversedEmitter struct {
	listeners []TurnReversedListener
}

func (e *TurnReversedEmitter) AddListener(listener TurnReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnReversedEmitter) Emit(payload TurnReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnReversed(payload)
	}
}
