package audio

import (
	"os"
	"path/filepath"

	"github.com/lguibr/dxball/game"
)

// Sound binds a cue to its override file (without extension) and the system alias played
// when the file is missing.
type Sound struct {
	Cue   game.Cue
	File  string
	Alias string
}

var sounds = []Sound{
	{Cue: game.CueBlockDestroyed, File: "cartoon_hit", Alias: "SystemAsterisk"},
	{Cue: game.CuePaddleHit, File: "cartoon_paddle", Alias: "SystemExclamation"},
	{Cue: game.CueLifeLost, File: "cartoon_lose", Alias: "SystemHand"},
	{Cue: game.CueRoundWon, File: "cartoon_win", Alias: "SystemExit"},
	{Cue: game.CueMenuNav, File: "cartoon_menu", Alias: "SystemStart"},
}

// Alias tones, in Hz
var aliasTones = map[string]float64{
	"SystemAsterisk":    880,
	"SystemExclamation": 660,
	"SystemHand":        196,
	"SystemExit":        523.25,
	"SystemStart":       440,
}

// Sounds returns the cue table in cue order.
func Sounds() []Sound {
	out := make([]Sound, len(sounds))
	copy(out, sounds)
	return out
}

func Lookup(cue game.Cue) (Sound, bool) {
	for _, s := range sounds {
		if s.Cue == cue {
			return s, true
		}
	}
	return Sound{}, false
}

// Path is where the override file for this sound lives inside dir.
func (s Sound) Path(dir string) string {
	return filepath.Join(dir, s.File+".wav")
}

// Presence is one line of the startup sound report.
type Presence struct {
	Sound
	Path  string
	Found bool
}

// Inventory checks which override files exist in dir.
func Inventory(dir string) []Presence {
	report := make([]Presence, 0, len(sounds))
	for _, s := range sounds {
		path := s.Path(dir)
		info, err := os.Stat(path)
		report = append(report, Presence{Sound: s, Path: path, Found: err == nil && !info.IsDir()})
	}
	return report
}
