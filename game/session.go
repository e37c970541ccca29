// File: game/session.go
package game

import (
	"math/rand"

	"github.com/lguibr/dxball/utils"
)

// Session is the game/menu state machine. It owns the active round and reports scores to
// the process-wide Registry. All methods run on the frontend's loop goroutine.
type Session struct {
	cfg      utils.Config
	registry *Registry
	notifier Notifier
	rng      *rand.Rand

	state      State
	selection  MenuItem
	slot       int
	nameBuffer []rune
	round      *Round

	soundEnabled bool
	exited       bool
	ticks        uint64
}

// NewSession starts in the main menu with slot 0 and a round ready to play.
// A nil notifier discards cues.
func NewSession(cfg utils.Config, registry *Registry, notifier Notifier, rng *rand.Rand) *Session {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	s := &Session{
		cfg:          cfg,
		registry:     registry,
		notifier:     notifier,
		rng:          rng,
		state:        Menu{Screen: ScreenMain},
		selection:    MenuStart,
		soundEnabled: true,
	}
	s.round = NewRound(cfg, NewPaddle(cfg), rng)
	return s
}

func (s *Session) State() State { return s.state }
func (s *Session) Round() *Round { return s.round }
func (s *Session) Slot() int { return s.slot }
func (s *Session) Selection() MenuItem { return s.selection }
func (s *Session) NameBuffer() string { return string(s.nameBuffer) }
func (s *Session) SoundEnabled() bool { return s.soundEnabled }
func (s *Session) Exited() bool { return s.exited }
func (s *Session) Registry() *Registry { return s.registry }
func (s *Session) PlayerName() string { return s.registry.Name(s.slot) }
func (s *Session) Ticks() uint64 { return s.ticks }
func (s *Session) SetSoundEnabled(b bool) { s.soundEnabled = b }

// HandleInput applies one discrete input event. Inputs that mean nothing in the current
// state are ignored.
func (s *Session) HandleInput(in Input) {
	if s.exited {
		return
	}
	switch st := s.state.(type) {
	case Menu:
		switch st.Screen {
		case ScreenMain:
			s.handleMainMenu(in)
		case ScreenPlayerName:
			s.handlePlayerName(in)
		case ScreenScoreBoard:
			s.handleScoreBoard(in)
		}
	case Playing:
		s.handlePlaying(in, st)
	case GameOver, Win:
		s.handleRoundEnd(in)
	}
}

// Tick advances the active round when playing and reacts to its events.
func (s *Session) Tick() []Event {
	s.ticks++
	playing, ok := s.state.(Playing)
	if !ok || playing.Paused {
		return nil
	}

	events := s.round.Tick()
	for _, event := range events {
		if cue, ok := event.Cue(); ok {
			s.cue(cue)
		}
		switch event {
		case EventRoundLost:
			s.finishRound()
			s.state = GameOver{}
		case EventRoundWon:
			s.finishRound()
			s.state = Win{}
		}
	}
	return events
}

// --- Menu screens ---

func (s *Session) handleMainMenu(in Input) {
	switch in.Kind {
	case InputChar:
		switch {
		case in.Char >= '1' && in.Char <= '4':
			s.selection = MenuItem(in.Char - '1')
			s.cue(CueMenuNav)
		case in.Char == 'm' || in.Char == 'M':
			s.toggleSound()
		}
	case InputKey:
		switch in.Key {
		case KeyUp:
			s.selection = (s.selection + menuItemCount - 1) % menuItemCount
			s.cue(CueMenuNav)
		case KeyDown:
			s.selection = (s.selection + 1) % menuItemCount
			s.cue(CueMenuNav)
		case KeyEnter:
			s.activate(s.selection)
		}
	}
}

func (s *Session) activate(item MenuItem) {
	switch item {
	case MenuStart:
		s.resetRound()
		s.state = Playing{}
		s.cue(CueMenuNav)
	case MenuPlayerName:
		s.nameBuffer = []rune(s.PlayerName())
		s.state = Menu{Screen: ScreenPlayerName}
		s.cue(CueMenuNav)
	case MenuScoreBoard:
		s.saveBest()
		s.state = Menu{Screen: ScreenScoreBoard}
		s.cue(CueMenuNav)
	case MenuExit:
		s.exited = true
	}
}

func (s *Session) handlePlayerName(in Input) {
	switch in.Kind {
	case InputChar:
		// Printable ASCII only, as typed into the name box
		if in.Char >= 32 && in.Char <= 126 && len(s.nameBuffer) < s.cfg.NameLimit {
			s.nameBuffer = append(s.nameBuffer, in.Char)
		}
	case InputKey:
		switch in.Key {
		case KeyBackspace:
			if len(s.nameBuffer) > 0 {
				s.nameBuffer = s.nameBuffer[:len(s.nameBuffer)-1]
			}
		case KeyEnter:
			if len(s.nameBuffer) > 0 {
				s.registry.Rename(s.slot, string(s.nameBuffer))
			}
			s.nameBuffer = nil
			s.state = Menu{Screen: ScreenMain}
			s.cue(CueMenuNav)
		case KeyEscape:
			s.nameBuffer = nil
			s.state = Menu{Screen: ScreenMain}
			s.cue(CueMenuNav)
		}
	}
}

func (s *Session) handleScoreBoard(in Input) {
	switch {
	case in.Kind == InputKey && in.Key == KeyEscape:
		s.state = Menu{Screen: ScreenMain}
		s.cue(CueMenuNav)
	case in.Kind == InputChar && (in.Char == 'm' || in.Char == 'M'):
		s.toggleSound()
	}
}

// --- Playing ---

func (s *Session) handlePlaying(in Input, st Playing) {
	switch in.Kind {
	case InputChar:
		switch in.Char {
		case ' ':
			if !st.Paused {
				s.round.Release()
			}
		case 'p', 'P':
			s.state = Playing{Paused: !st.Paused}
		case 'm', 'M':
			s.toggleSound()
		}
	case InputKey:
		switch in.Key {
		case KeyEscape:
			s.saveBest()
			s.state = Menu{Screen: ScreenMain}
			s.cue(CueMenuNav)
		case KeyLeft:
			if !st.Paused {
				s.round.MovePaddleLeft()
			}
		case KeyRight:
			if !st.Paused {
				s.round.MovePaddleRight()
			}
		}
	case InputPointerMove:
		if !st.Paused {
			s.round.MovePaddleTo(in.X)
		}
	case InputPointerPress:
		if !st.Paused {
			s.round.Release()
		}
	}
}

// --- GameOver / Win ---

func (s *Session) handleRoundEnd(in Input) {
	switch {
	case in.Kind == InputKey && in.Key == KeyEnter:
		s.finishRound()
		s.rotate()
		s.state = Playing{}
	case in.Kind == InputKey && in.Key == KeyEscape:
		s.finishRound()
		s.state = Menu{Screen: ScreenMain}
		s.cue(CueMenuNav)
	case in.Kind == InputChar && (in.Char == 'm' || in.Char == 'M'):
		s.toggleSound()
	}
}

// rotate hands the game to the next slot with a faster paddle and a fresh round.
func (s *Session) rotate() {
	s.slot = (s.slot + 1) % s.registry.Slots()
	s.round.Paddle.Speed += s.cfg.PaddleSpeedIncrement
	s.resetRound()
}

// --- Round bookkeeping ---

func (s *Session) resetRound() {
	s.round = NewRound(s.cfg, s.round.Paddle, s.rng)
}

func (s *Session) saveBest() {
	s.registry.SaveBest(s.slot, s.round.Score)
}

// finishRound saves the best score and records the round once; later calls for the same
// round only re-save the best.
func (s *Session) finishRound() {
	s.saveBest()
	name := s.PlayerName()
	if name == "" {
		return
	}
	if s.round.claimRecord() {
		s.registry.Record(name, s.round.Score)
	}
}

// --- Sound ---

func (s *Session) toggleSound() {
	s.soundEnabled = !s.soundEnabled
	s.cue(CueMenuNav)
}

func (s *Session) cue(cue Cue) {
	if !s.soundEnabled {
		return
	}
	s.notifier.Notify(cue)
}
