// File: window/window.go
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lguibr/dxball/game"
	"github.com/lguibr/dxball/render"
	"github.com/lguibr/dxball/utils"
)

const Title = "DX Ball"

// Key repeat for held arrows and backspace, in ticks
const (
	repeatDelay    = 15
	repeatInterval = 3
)

// Window is the ebiten frontend. It is both the loop driver (ebiten calls Update once per
// tick) and a renderer of the loop's snapshots.
type Window struct {
	loop     *game.Loop
	cfg      utils.Config
	frame    game.Snapshot
	hasFrame bool

	lastCursorX int
	chars       []rune
}

// New wires a window around a session. Extra renderers (the spectator server) get the same
// snapshots.
func New(cfg utils.Config, session *game.Session, extra ...game.Renderer) *Window {
	w := &Window{cfg: cfg, lastCursorX: -1}
	renderers := append([]game.Renderer{w}, extra...)
	w.loop = game.NewLoop(session, renderers...)
	w.frame = session.Snapshot()
	w.hasFrame = true
	return w
}

func (w *Window) Render(snapshot game.Snapshot) {
	w.frame = snapshot
	w.hasFrame = true
}

// Run opens the window and blocks until the player exits or closes it.
func (w *Window) Run() error {
	ebiten.SetWindowSize(int(w.cfg.WorldWidth), int(w.cfg.WorldHeight))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.cfg.TicksPerSecond())

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (w *Window) Update() error {
	if !w.loop.Step(w.inputs()) {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.cfg.WorldWidth), int(w.cfg.WorldHeight)
}

// inputs collects this tick's keyboard and mouse events in a stable order.
func (w *Window) inputs() []game.Input {
	var inputs []game.Input

	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, char := range w.chars {
		inputs = append(inputs, game.CharInput(char))
	}

	for _, binding := range keyBindings {
		if pressed(binding.key, binding.repeat) {
			inputs = append(inputs, game.KeyInput(binding.to))
		}
	}

	// Layout is world-sized, so cursor x is already in world units
	cursorX, _ := ebiten.CursorPosition()
	if cursorX != w.lastCursorX && w.lastCursorX >= 0 {
		inputs = append(inputs, game.PointerMoveInput(float64(cursorX)))
	}
	w.lastCursorX = cursorX

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		inputs = append(inputs, game.PointerPressInput())
	}
	return inputs
}

type keyBinding struct {
	key    ebiten.Key
	to     game.Key
	repeat bool
}

var keyBindings = []keyBinding{
	{ebiten.KeyEnter, game.KeyEnter, false},
	{ebiten.KeyNumpadEnter, game.KeyEnter, false},
	{ebiten.KeyEscape, game.KeyEscape, false},
	{ebiten.KeyBackspace, game.KeyBackspace, true},
	{ebiten.KeyArrowLeft, game.KeyLeft, true},
	{ebiten.KeyArrowRight, game.KeyRight, true},
	{ebiten.KeyArrowUp, game.KeyUp, false},
	{ebiten.KeyArrowDown, game.KeyDown, false},
}

func pressed(key ebiten.Key, repeat bool) bool {
	if inpututil.IsKeyJustPressed(key) {
		return true
	}
	if !repeat {
		return false
	}
	d := inpututil.KeyPressDuration(key)
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

var (
	colBackground = color.RGBA{0x10, 0x12, 0x1c, 0xff}
	colPaddle     = color.RGBA{0xe6, 0xe6, 0xf2, 0xff}
	colBall       = color.RGBA{0xff, 0xd8, 0x4d, 0xff}
	colText       = color.RGBA{0xe6, 0xe6, 0xf2, 0xff}
	colTitle      = color.RGBA{0x8c, 0xf2, 0xfa, 0xff}
	colSelected   = color.RGBA{0xff, 0xd8, 0x4d, 0xff}
	colHint       = color.RGBA{0xcc, 0xcc, 0xff, 0xff}
	colAlert      = color.RGBA{0xff, 0x4d, 0x4d, 0xff}
	colSuccess    = color.RGBA{0x66, 0xff, 0x99, 0xff}
	colShade      = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

func toneColor(tone render.Tone) color.Color {
	switch tone {
	case render.ToneTitle:
		return colTitle
	case render.ToneSelected:
		return colSelected
	case render.ToneHint:
		return colHint
	case render.ToneAlert:
		return colAlert
	case render.ToneSuccess:
		return colSuccess
	}
	return colText
}
