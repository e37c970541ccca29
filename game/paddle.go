// File: game/paddle.go
package game

import (
	"github.com/lguibr/dxball/utils"
)

type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
	MinX   float64 `json:"-"`
	MaxX   float64 `json:"-"`
}

// NewPaddle centres the paddle horizontally at the configured height.
func NewPaddle(cfg utils.Config) Paddle {
	return Paddle{
		X:      (cfg.WorldWidth - cfg.PaddleWidth) / 2,
		Y:      cfg.PaddleY,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Speed:  cfg.PaddleSpeed,
		MinX:   cfg.MarginLeft,
		MaxX:   cfg.WorldWidth - cfg.PaddleWidth - cfg.MarginRight,
	}
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Paddle) CenterX() float64 { return p.X + p.Width/2 }
func (p *Paddle) Top() float64     { return p.Y + p.Height }
func (p *Paddle) Right() float64   { return p.X + p.Width }

func (p *Paddle) MoveLeft() {
	p.setX(p.X - p.Speed)
}

func (p *Paddle) MoveRight() {
	p.setX(p.X + p.Speed)
}

// CenterOn places the paddle's center under a pointer x coordinate.
func (p *Paddle) CenterOn(x float64) {
	p.setX(x - p.Width/2)
}

func (p *Paddle) setX(x float64) {
	p.X = utils.Clamp(x, p.MinX, p.MaxX)
}
