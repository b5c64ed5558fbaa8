package event

type UnoCalledPayload struct {
	PlayerName string
}

type UnoCalledListener interface {
	OnUnoCalled(UnoCalledPayload)
}

type UnoCalledEmitter struct {
	listeners []UnoCalledListener
}

func (e *UnoCalledEmitter) AddListener(listener UnoCalledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *UnoCalledEmitter) Emit(payload UnoCalledPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoCalled(payload)
	}
}

// UnoMissed fires when a seat empties its hand without having called UNO
// and takes the penalty draw instead of winning.
type UnoMissedPayload struct {
	PlayerName string
	Penalty    int
}

type UnoMissedListener interface {
	OnUnoMissed(UnoMissedPayload)
}

type UnoMissedEmitter struct {
	listeners []UnoMissedListener
}

func (e *UnoMissedEmitter) AddListener(listener UnoMissedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *UnoMissedEmitter) Emit(payload UnoMissedPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoMissed(payload)
	}
}
