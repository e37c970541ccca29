// File: render/viewport.go
package render

import (
	"github.com/lguibr/dxball/game"
	"github.com/lguibr/dxball/utils"
)

// Viewport maps y-up world coordinates onto a y-down screen of Width x Height units
// (pixels for the window, cells for the terminal).
type Viewport struct {
	WorldWidth  float64
	WorldHeight float64
	Width       float64
	Height      float64
}

func NewViewport(snapshot game.Snapshot, width, height float64) Viewport {
	return Viewport{
		WorldWidth:  snapshot.WorldWidth,
		WorldHeight: snapshot.WorldHeight,
		Width:       width,
		Height:      height,
	}
}

// Point converts a world position to screen coordinates.
func (v Viewport) Point(x, y float64) (float64, float64) {
	sx := utils.Scale(x, v.WorldWidth, v.Width)
	sy := utils.Scale(utils.FlipY(y, v.WorldHeight), v.WorldHeight, v.Height)
	return sx, sy
}

// Rect converts a world rectangle to a screen rectangle anchored at its top-left corner.
func (v Viewport) Rect(r game.Rect) (x, y, w, h float64) {
	x, y = v.Point(r.X, r.Top())
	w = utils.Scale(r.W, v.WorldWidth, v.Width)
	h = utils.Scale(r.H, v.WorldHeight, v.Height)
	return x, y, w, h
}

// WorldX converts a screen column back to a world x, for pointer input.
func (v Viewport) WorldX(sx float64) float64 {
	return utils.Scale(sx, v.Width, v.WorldWidth)
}
