package event

type GameWonPayload struct {
	PlayerName string
}

type GameWonListener interface {
	OnGameWon(GameWonPayload)
}

type GameWonEmitter struct {
	listeners []GameWonListener
}

func (e *GameWonEmitter) AddListener(listener GameWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *GameWonEmitter) Emit(payload GameWonPayload) {
	for _, listener := range e.listeners {
		listener.OnGameWon(payload)
	}
}
