// File: game/paddle_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lguibr/dxball/utils"
)

func TestNewPaddle(t *testing.T) {
	cfg := utils.DefaultConfig()
	paddle := NewPaddle(cfg)

	assert.Equal(t, 390.0, paddle.X)
	assert.Equal(t, 60.0, paddle.Y)
	assert.Equal(t, 450.0, paddle.CenterX())
	assert.Equal(t, 80.0, paddle.Top())
	assert.Equal(t, 510.0, paddle.Right())
	assert.Equal(t, cfg.PaddleSpeed, paddle.Speed)
	assert.Equal(t, Rect{X: 390, Y: 60, W: 120, H: 20}, paddle.Rect())
}

func TestPaddle_Move(t *testing.T) {
	cfg := utils.DefaultConfig() // Speed 15, X limited to [10, 770]

	testCases := []struct {
		name      string
		startX    float64
		move      func(p *Paddle)
		expectedX float64
	}{
		{"Left", 390, (*Paddle).MoveLeft, 375},
		{"Right", 390, (*Paddle).MoveRight, 405},
		{"Left Clamped", 15, (*Paddle).MoveLeft, 10},
		{"Right Clamped", 765, (*Paddle).MoveRight, 770},
		{"At Left Margin", 10, (*Paddle).MoveLeft, 10},
		{"Center On Pointer", 390, func(p *Paddle) { p.CenterOn(200) }, 140},
		{"Center On Pointer Past Left", 390, func(p *Paddle) { p.CenterOn(-50) }, 10},
		{"Center On Pointer Past Right", 390, func(p *Paddle) { p.CenterOn(1000) }, 770},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paddle := NewPaddle(cfg)
			paddle.X = tc.startX
			tc.move(&paddle)
			assert.Equal(t, tc.expectedX, paddle.X)
			assert.Equal(t, 60.0, paddle.Y, "paddle never moves vertically")
		})
	}
}
