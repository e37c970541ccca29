// File: terminal/terminal.go
package terminal

import (
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/dxball/game"
	"github.com/lguibr/dxball/render"
	"github.com/lguibr/dxball/utils"
)

// Rows above the board: the HUD and a separator
const boardTop = 2

// Terminal is the tcell frontend: it drives the loop from a ticker and renders each
// snapshot as text cells.
type Terminal struct {
	screen tcell.Screen
	loop   *game.Loop
	cfg    utils.Config
	frame  game.Snapshot

	mouseDown bool
}

// New opens the terminal screen. Extra renderers get the same snapshots.
func New(cfg utils.Config, session *game.Session, extra ...game.Renderer) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return NewWithScreen(cfg, screen, session, extra...), nil
}

// NewWithScreen wraps an already initialised screen.
func NewWithScreen(cfg utils.Config, screen tcell.Screen, session *game.Session, extra ...game.Renderer) *Terminal {
	t := &Terminal{screen: screen, cfg: cfg}
	t.loop = game.NewLoop(session, append([]game.Renderer{t}, extra...)...)
	t.frame = session.Snapshot()
	return t
}

func (t *Terminal) Render(snapshot game.Snapshot) {
	t.frame = snapshot
}

// Run blocks until the session exits or the user presses Ctrl+C.
func (t *Terminal) Run() error {
	ticker := time.NewTicker(t.cfg.TickPeriod)
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC recovered in terminal event reader: %v\nStack trace:\n%s", r, string(debug.Stack()))
			}
		}()
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	t.draw()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.loop.Advance()
			t.draw()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// handleEvent applies one terminal event. It returns false when the program should stop.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
		return false
	}
	if _, ok := ev.(*tcell.EventResize); ok {
		t.screen.Sync()
		return true
	}
	for _, in := range t.translate(ev) {
		if !t.loop.Apply(in) {
			return false
		}
	}
	return true
}

// translate maps a tcell event to session inputs.
func (t *Terminal) translate(ev tcell.Event) []game.Input {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return []game.Input{game.CharInput(ev.Rune())}
		}
		if key, ok := keyMap[ev.Key()]; ok {
			return []game.Input{game.KeyInput(key)}
		}
	case *tcell.EventMouse:
		var inputs []game.Input
		x, _ := ev.Position()
		inputs = append(inputs, game.PointerMoveInput(t.viewport().WorldX(float64(x)+0.5)))

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.mouseDown {
			inputs = append(inputs, game.PointerPressInput())
		}
		t.mouseDown = down
		return inputs
	}
	return nil
}

var keyMap = map[tcell.Key]game.Key{
	tcell.KeyEnter:      game.KeyEnter,
	tcell.KeyEscape:     game.KeyEscape,
	tcell.KeyBackspace:  game.KeyBackspace,
	tcell.KeyBackspace2: game.KeyBackspace,
	tcell.KeyLeft:       game.KeyLeft,
	tcell.KeyRight:      game.KeyRight,
	tcell.KeyUp:         game.KeyUp,
	tcell.KeyDown:       game.KeyDown,
}

// viewport is the board area below the HUD.
func (t *Terminal) viewport() render.Viewport {
	width, height := t.screen.Size()
	rows := height - boardTop
	if rows < 1 {
		rows = 1
	}
	return render.NewViewport(t.frame, float64(width), float64(rows))
}
