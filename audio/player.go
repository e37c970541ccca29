// File: audio/player.go
package audio

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lguibr/dxball/game"
)

const (
	sampleRate  = beep.SampleRate(44100)
	toneLength  = 120 * time.Millisecond
	queueSize   = 32
	resampleQ   = 4
	numChannels = 2
)

var bufferFormat = beep.Format{SampleRate: sampleRate, NumChannels: numChannels, Precision: 2}

// Init opens the speaker. Callers treat a failure as "no sound" and keep going.
func Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	return nil
}

// Shutdown closes the speaker opened by Init.
func Shutdown() {
	speaker.Close()
}

// Speaker is the playback sink. The default forwards to the beep speaker.
type Speaker interface {
	Play(s beep.Streamer)
}

type speakerOutput struct{}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

// Player turns cues into sounds on its own goroutine.
// Notify never blocks: when the queue is full the cue is dropped.
type Player struct {
	dir   string
	out   Speaker
	queue chan game.Cue
	done  chan struct{}

	cache map[game.Cue]*beep.Buffer // Owned by the run goroutine

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewPlayer starts a player reading override files from dir. A nil out plays through the
// beep speaker.
func NewPlayer(dir string, out Speaker) *Player {
	if out == nil {
		out = speakerOutput{}
	}
	p := &Player{
		dir:   dir,
		out:   out,
		queue: make(chan game.Cue, queueSize),
		done:  make(chan struct{}),
		cache: make(map[game.Cue]*beep.Buffer),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

func (p *Player) Notify(cue game.Cue) {
	select {
	case <-p.done:
		return
	default:
	}
	select {
	case p.queue <- cue:
	default:
	}
}

// Close stops the player and waits for the current sound to be handed off.
func (p *Player) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}

func (p *Player) run() {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC recovered in audio player: %v\nStack trace:\n%s", r, string(debug.Stack()))
		}
	}()

	for {
		select {
		case <-p.done:
			return
		case cue := <-p.queue:
			p.play(cue)
		}
	}
}

func (p *Player) play(cue game.Cue) {
	buffer, err := p.buffer(cue)
	if err != nil {
		log.Printf("Audio: cannot play %s: %v", cue, err)
		return
	}
	p.out.Play(buffer.Streamer(0, buffer.Len()))
}

// buffer returns the decoded sound for a cue, loading it on first use.
func (p *Player) buffer(cue game.Cue) (*beep.Buffer, error) {
	if buffer, ok := p.cache[cue]; ok {
		return buffer, nil
	}
	sound, ok := Lookup(cue)
	if !ok {
		return nil, fmt.Errorf("unknown cue %q", cue)
	}

	buffer, err := loadFile(sound.Path(p.dir))
	if err != nil {
		// Missing or unreadable files fall back to the alias without noise
		buffer, err = aliasTone(sound.Alias)
		if err != nil {
			return nil, err
		}
	}
	p.cache[cue] = buffer
	return buffer, nil
}

func loadFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(bufferFormat)
	buffer.Append(beep.Resample(resampleQ, format.SampleRate, sampleRate, streamer))
	return buffer, nil
}

func aliasTone(alias string) (*beep.Buffer, error) {
	freq, ok := aliasTones[alias]
	if !ok {
		return nil, fmt.Errorf("no tone for alias %q", alias)
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %s: %w", alias, err)
	}
	buffer := beep.NewBuffer(bufferFormat)
	buffer.Append(beep.Take(sampleRate.N(toneLength), sine))
	return buffer, nil
}
