package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/dxball/game"
	"github.com/lguibr/dxball/render"
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleAlert    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSuccess  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	stylePaddle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBall     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func toneStyle(tone render.Tone) tcell.Style {
	switch tone {
	case render.ToneTitle:
		return styleTitle
	case render.ToneSelected:
		return styleSelected
	case render.ToneHint:
		return styleHint
	case render.ToneAlert:
		return styleAlert
	case render.ToneSuccess:
		return styleSuccess
	}
	return styleText
}

func (t *Terminal) draw() {
	t.screen.Clear()
	snap := t.frame
	width, height := t.screen.Size()

	if snap.ShowsBoard() {
		t.drawHUD(snap, width)
		t.drawBoard(snap)
	}

	page := render.Page(snap)
	top := (height - len(page)) / 2
	for i, line := range page {
		t.drawText((width-len(line.Text))/2, top+i, line.Text, toneStyle(line.Tone))
	}
	t.screen.Show()
}

func (t *Terminal) drawHUD(snap game.Snapshot, width int) {
	x := 0
	for _, item := range render.HUD(snap) {
		t.drawText(x, 0, item, styleText)
		x += len(item) + 3
	}
	for col := 0; col < width; col++ {
		t.screen.SetContent(col, boardTop-1, '─', nil, styleHint)
	}
}

func (t *Terminal) drawBoard(snap game.Snapshot) {
	view := t.viewport()

	for _, block := range snap.Blocks {
		if !block.Alive {
			continue
		}
		r, g, b := render.RGB8(block.Color)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		t.fillRect(view, block.Rect, render.Shade(block.Color), style)
	}

	t.fillRect(view, snap.Paddle.Rect(), '=', stylePaddle)

	bx, by := view.Point(snap.Ball.X, snap.Ball.Y)
	t.screen.SetContent(int(bx), boardTop+clampRow(by, view), 'O', nil, styleBall)
}

// fillRect covers the cells whose left/top edge falls inside the rectangle, at least one cell.
func (t *Terminal) fillRect(view render.Viewport, rect game.Rect, glyph rune, style tcell.Style) {
	x, y, w, h := view.Rect(rect)
	x0, y0 := int(math.Ceil(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			t.screen.SetContent(col, boardTop+row, glyph, nil, style)
		}
	}
}

// clampRow keeps the ball's row on the board even when it sits on the miss line.
func clampRow(y float64, view render.Viewport) int {
	row := int(y)
	if row >= int(view.Height) {
		row = int(view.Height) - 1
	}
	if row < 0 {
		row = 0
	}
	return row
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
