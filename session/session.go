package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/uno/ai"
	"github.com/feel-easy/uno-agent/uno/card"
	"github.com/feel-easy/uno-agent/uno/card/color"
	"github.com/feel-easy/uno-agent/uno/event"
	"github.com/feel-easy/uno-agent/uno/game"
	"github.com/feel-easy/uno-agent/uno/prob"
	"github.com/feel-easy/uno-agent/uno/record"
)

// Session owns one table: the game, the opponent model, the play recorder
// and the automated seat's strategist, all behind a single mutex. Every
// intent is applied atomically: validate, mutate, update the model, record,
// log, and finally schedule the automated seat if it is up next.
type Session struct {
	ID uuid.UUID

	mu         sync.Mutex
	rng        *rand.Rand
	delay      time.Duration
	generation uint64

	bus        *event.Bus
	sink       *logSink
	game       *game.Game
	model      *prob.Model
	recorder   *record.Recorder
	strategist *ai.Strategist
}

// New builds a session and deals its first game. The automated seat's
// deferred turn fires after delay; the rng drives the shuffle and every
// strategist coin flip.
func New(seed int64, delay time.Duration) *Session {
	rng := rand.New(rand.NewSource(seed))
	bus := event.NewBus()
	s := &Session{
		ID:         uuid.New(),
		rng:        rng,
		delay:      delay,
		bus:        bus,
		sink:       newLogSink(bus),
		model:      prob.NewModel(),
		recorder:   record.NewRecorder(),
		strategist: ai.NewStrategist(ai.NewRandomChooser(rng)),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startGameLocked()
	return s
}

// NewGame abandons the running game and deals a fresh one. The recorder is
// deliberately left alone: the play history spans games.
func (s *Session) NewGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink.append("--- new game ---")
	s.startGameLocked()
}

func (s *Session) startGameLocked() {
	// Bumping the generation first invalidates any automated turn still
	// pending from the previous game.
	s.generation++
	s.model.Reset()
	s.game = game.New(s.rng, s.bus)
	for seat := 0; seat < consts.NumSeats; seat++ {
		for _, dealt := range s.game.Hand(seat) {
			s.model.CardLeftDeck(dealt)
		}
	}
	if top := s.game.TopCard(); top != nil {
		s.model.CardLeftDeck(top)
	}
	s.scheduleMachineLocked()
}

// PlayCard applies a human seat's play. colorName replaces a wildcard's
// color when non-empty; left empty, a wildcard keeps the previous match
// card in play, exactly like a table where nobody announces a color.
func (s *Session) PlayCard(seat, index int, colorName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seat == consts.MachineSeat {
		return consts.ErrorsMachineSeat
	}
	var chosen color.Color
	if colorName != "" {
		picked, err := color.ByName(colorName)
		if err != nil {
			return consts.ErrorsColorInvalid
		}
		chosen = picked
	}

	res, err := s.game.PlayCard(seat, index, chosen)
	if err != nil {
		return err
	}
	s.settlePlayLocked(res)
	s.scheduleMachineLocked()
	return nil
}

// DrawCard serves the current human seat one card. Drawing is taken as
// evidence the seat had nothing playable; the drawn card is played on the
// spot when it fits, otherwise the turn passes.
func (s *Session) DrawCard(seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seat == consts.MachineSeat {
		return consts.ErrorsMachineSeat
	}

	priorTop := s.game.MatchCard()
	drawn, err := s.game.Draw(seat)
	if err == consts.ErrorsEmptyDeck {
		// Nothing left to draw anywhere: the turn passes without a card.
		if passErr := s.game.Pass(seat); passErr != nil {
			return passErr
		}
		s.scheduleMachineLocked()
		return nil
	}
	if err != nil {
		return err
	}

	s.model.CardLeftDeck(drawn)
	s.model.ObserveForcedDraw(seat, priorTop)

	if game.Playable(drawn, s.game.MatchCard()) {
		index := s.game.HandSize(seat) - 1
		res, playErr := s.game.PlayCard(seat, index, nil)
		if playErr != nil {
			log.Error(playErr)
			return playErr
		}
		s.settlePlayLocked(res)
		// The play's recount must not wash out what the draw just proved
		// about this hand.
		s.model.ZeroTopClasses(seat, priorTop)
	} else {
		if passErr := s.game.Pass(seat); passErr != nil {
			return passErr
		}
	}
	s.scheduleMachineLocked()
	return nil
}

// DeclareUno registers a human seat's UNO call. Invalid calls are rejected
// and logged.
func (s *Session) DeclareUno(seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seat == consts.MachineSeat {
		return consts.ErrorsMachineSeat
	}
	if err := s.game.CallUno(seat); err != nil {
		s.sink.appendf("%s called UNO invalidly", s.game.SeatName(seat))
		return err
	}
	return nil
}

// settlePlayLocked runs the bookkeeping common to every resolved play:
// counters for every card that left the draw pile, the recorder snapshot,
// and the model's play observation, in that order. The recorder must see
// the tables as they stood when the card hit the pile.
func (s *Session) settlePlayLocked(res *game.PlayResult) {
	for _, dealt := range res.PenaltyDrawn {
		s.model.CardLeftDeck(dealt)
	}
	for _, dealt := range res.VictimDrawn {
		s.model.CardLeftDeck(dealt)
	}
	s.recorder.Append(res.Seat, s.game.SeatName(res.Seat), cardLabel(res.PriorTop), cardLabel(res.Card), s.model)
	s.model.ObservePlay(res.Seat, res.Card, res.PriorTop)
}

func (s *Session) scheduleMachineLocked() {
	if s.game.Over() || s.game.Current() != consts.MachineSeat {
		return
	}
	generation := s.generation
	time.AfterFunc(s.delay, func() {
		s.machineTurn(generation)
	})
}

func (s *Session) machineTurn(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Stale timers fire after a NewGame or never should have: drop them.
	if generation != s.generation || s.game.Over() || s.game.Current() != consts.MachineSeat {
		return
	}

	plays := s.game.LegalPlays(consts.MachineSeat)
	nextSeat := s.game.NextSeat()
	decision, found := s.strategist.ChooseCard(plays, s.game.MatchCard(), nextSeat, s.game.HandSize(nextSeat), s.model)
	if found {
		s.sink.append(decision.Rationale)
		s.playMachineCardLocked(decision.Play)
		return
	}

	priorTop := s.game.MatchCard()
	drawn, err := s.game.Draw(consts.MachineSeat)
	if err == consts.ErrorsEmptyDeck {
		if passErr := s.game.Pass(consts.MachineSeat); passErr != nil {
			log.Error(passErr)
		}
		return
	}
	if err != nil {
		log.Error(err)
		return
	}
	s.model.CardLeftDeck(drawn)
	// No absence inference here: the automated seat's own hand is known,
	// the model only covers the human seats.
	if game.Playable(drawn, priorTop) {
		s.playMachineCardLocked(game.IndexedCard{Index: s.game.HandSize(consts.MachineSeat) - 1, Card: drawn})
		return
	}
	if passErr := s.game.Pass(consts.MachineSeat); passErr != nil {
		log.Error(passErr)
	}
}

func (s *Session) playMachineCardLocked(play game.IndexedCard) {
	var chosen color.Color
	if game.IsWildcard(play.Card) {
		chosen = s.strategist.ChooseColor(s.game.Hand(consts.MachineSeat))
	}
	res, err := s.game.PlayCard(consts.MachineSeat, play.Index, chosen)
	if err != nil {
		log.Error(err)
		return
	}
	s.settlePlayLocked(res)
	s.scheduleMachineLocked()
}

// LogLines returns the human-readable event feed so far.
func (s *Session) LogLines() []string {
	return s.sink.Lines()
}

// ExportHeaders returns the export column names matching ExportRows.
func (s *Session) ExportHeaders() []string {
	return record.Headers()
}

// ExportRows flattens the recorded history for the export collaborator.
func (s *Session) ExportRows() [][]string {
	return s.recorder.Rows()
}

func cardLabel(c card.Card) string {
	if c == nil {
		return ""
	}
	return c.String()
}
