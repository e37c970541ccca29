// File: game/messages.go
package game

// --- Simulation Events ---

// Event is a side effect produced by one round tick, for the caller to react to.
type Event int

const (
	EventPaddleHit Event = iota
	EventBlockDestroyed
	EventLifeLost
	EventRoundLost
	EventRoundWon
)

func (e Event) String() string {
	switch e {
	case EventPaddleHit:
		return "paddle-hit"
	case EventBlockDestroyed:
		return "block-destroyed"
	case EventLifeLost:
		return "life-lost"
	case EventRoundLost:
		return "round-lost"
	case EventRoundWon:
		return "round-won"
	}
	return "unknown"
}

// Cue maps an event to its sound cue. Round-lost has none: the life-lost cue already played.
func (e Event) Cue() (Cue, bool) {
	switch e {
	case EventPaddleHit:
		return CuePaddleHit, true
	case EventBlockDestroyed:
		return CueBlockDestroyed, true
	case EventLifeLost:
		return CueLifeLost, true
	case EventRoundWon:
		return CueRoundWon, true
	}
	return "", false
}

// --- Sound Cues ---

// Cue is a symbolic sound trigger, independent of any audio backend.
type Cue string

const (
	CuePaddleHit      Cue = "paddle-hit"
	CueBlockDestroyed Cue = "block-destroyed"
	CueLifeLost       Cue = "life-lost"
	CueRoundWon       Cue = "round-won"
	CueMenuNav        Cue = "menu-nav"
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueBlockDestroyed, CuePaddleHit, CueLifeLost, CueRoundWon, CueMenuNav}

// --- Input Events ---

type InputKind int

const (
	InputChar InputKind = iota
	InputKey
	InputPointerMove
	InputPointerPress
)

// Key enumerates the non-printable keys the session reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Input is one discrete event from a frontend. X is in world units for pointer events.
type Input struct {
	Kind InputKind
	Char rune
	Key  Key
	X    float64
}

func CharInput(char rune) Input { return Input{Kind: InputChar, Char: char} }
func KeyInput(key Key) Input    { return Input{Kind: InputKey, Key: key} }

func PointerMoveInput(x float64) Input {
	return Input{Kind: InputPointerMove, X: x}
}

func PointerPressInput() Input {
	return Input{Kind: InputPointerPress}
}
