// File: game/game.go
package game

import (
	"log"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/lguibr/dxball/utils"
)

// Renderer consumes snapshots. It must not block the game loop.
type Renderer interface {
	Render(snapshot Snapshot)
}

// Notifier receives sound cues. Notify is fire-and-forget.
type Notifier interface {
	Notify(cue Cue)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(cue Cue)

func (f NotifierFunc) Notify(cue Cue) { f(cue) }

// NopNotifier drops every cue.
type NopNotifier struct{}

func (NopNotifier) Notify(Cue) {}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(snapshot Snapshot)

func (f RendererFunc) Render(snapshot Snapshot) { f(snapshot) }

// NewRand returns the serve randomness source; seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// StartGame builds a session from config, the standard entry point for frontends.
func StartGame(cfg utils.Config, notifier Notifier) *Session {
	registry := NewRegistry(cfg.PlayerNames, cfg.NameLimit)
	return NewSession(cfg, registry, notifier, NewRand(cfg.Seed))
}

// Loop drives a session for a frontend: inputs are applied as they arrive, then a tick
// advances the round and every renderer gets the resulting snapshot.
type Loop struct {
	Session   *Session
	Renderers []Renderer
}

func NewLoop(session *Session, renderers ...Renderer) *Loop {
	return &Loop{Session: session, Renderers: renderers}
}

// Apply handles one input. It returns false once the session has exited.
func (l *Loop) Apply(in Input) bool {
	l.Session.HandleInput(in)
	return !l.Session.Exited()
}

// Advance runs one tick and publishes the snapshot.
func (l *Loop) Advance() []Event {
	events := l.Session.Tick()
	l.publish(l.Session.Snapshot())
	return events
}

// Step applies a batch of inputs, then advances once. It stops early on exit.
func (l *Loop) Step(inputs []Input) bool {
	for _, in := range inputs {
		if !l.Apply(in) {
			return false
		}
	}
	l.Advance()
	return true
}

func (l *Loop) publish(snapshot Snapshot) {
	for _, renderer := range l.Renderers {
		l.render(renderer, snapshot)
	}
}

// render isolates a misbehaving renderer so it cannot take the loop down.
func (l *Loop) render(renderer Renderer, snapshot Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC recovered in renderer %T: %v\nStack trace:\n%s", renderer, r, string(debug.Stack()))
		}
	}()
	renderer.Render(snapshot)
}
