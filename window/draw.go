package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lguibr/dxball/game"
	"github.com/lguibr/dxball/render"
)

const (
	lineHeight = 20
	hudMargin  = 12
)

var face = text.NewGoXFace(basicfont.Face7x13)

// drawText places s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	if !w.hasFrame {
		return
	}
	snap := w.frame
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := render.NewViewport(snap, float64(width), float64(height))

	if snap.ShowsBoard() {
		drawBoard(screen, view, snap)
		drawHUD(screen, snap)
	}

	page := render.Page(snap)
	if len(page) == 0 {
		return
	}
	if snap.ShowsBoard() {
		vector.FillRect(screen, 0, 0, float32(width), float32(height), colShade, false)
	}
	drawPage(screen, page, width, height)
}

func drawBoard(screen *ebiten.Image, view render.Viewport, snap game.Snapshot) {
	for _, block := range snap.Blocks {
		if !block.Alive {
			continue
		}
		x, y, bw, bh := view.Rect(block.Rect)
		r, g, b := render.RGB8(block.Color)
		vector.FillRect(screen, float32(x), float32(y), float32(bw), float32(bh), color.RGBA{r, g, b, 0xff}, false)
	}

	x, y, pw, ph := view.Rect(snap.Paddle.Rect())
	vector.FillRect(screen, float32(x), float32(y), float32(pw), float32(ph), colPaddle, false)

	bx, by := view.Point(snap.Ball.X, snap.Ball.Y)
	radius := snap.Ball.Radius * view.Width / view.WorldWidth
	vector.FillCircle(screen, float32(bx), float32(by), float32(radius), colBall, true)
}

func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	gap := text.Advance("   ", face)
	x := float64(hudMargin)
	for _, item := range render.HUD(snap) {
		drawText(screen, item, x, hudMargin, colText)
		x += text.Advance(item, face) + gap
	}

	right := float64(screen.Bounds().Dx() - hudMargin)
	for i, line := range render.Controls() {
		drawText(screen, line, right-text.Advance(line, face), float64(hudMargin+(i+1)*lineHeight), colHint)
	}
}

// drawPage centers the text block on screen.
func drawPage(screen *ebiten.Image, page []render.Line, width, height int) {
	top := (height - len(page)*lineHeight) / 2
	for i, line := range page {
		if line.Text == "" {
			continue
		}
		x := (float64(width) - text.Advance(line.Text, face)) / 2
		drawText(screen, line.Text, x, float64(top+i*lineHeight), toneColor(line.Tone))
	}
}
