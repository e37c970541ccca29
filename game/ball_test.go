package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lguibr/dxball/utils"
)

func TestBall_Move(t *testing.T) {
	ball := Ball{X: 100, Y: 100, Vx: 8, Vy: -10, Radius: 10, Mode: BallInFlight}
	ball.Move()
	assert.Equal(t, 108.0, ball.X)
	assert.Equal(t, 90.0, ball.Y)

	ball.Mode = BallStuck
	ball.Move()
	assert.Equal(t, 108.0, ball.X, "stuck balls do not move")
	assert.Equal(t, 90.0, ball.Y)
}

func TestBall_StickToAndRelease(t *testing.T) {
	cfg := utils.DefaultConfig()
	paddle := NewPaddle(cfg)
	ball := Ball{Radius: cfg.BallRadius, Mode: BallInFlight}

	ball.StickTo(&paddle, cfg.BallRestOffset)
	assert.Equal(t, BallStuck, ball.Mode)
	assert.Equal(t, 450.0, ball.X)
	assert.Equal(t, 98.0, ball.Y)

	ball.Release()
	assert.Equal(t, BallInFlight, ball.Mode)
}

func TestBall_Bounds(t *testing.T) {
	ball := Ball{X: 50, Y: 60, Radius: 10}
	assert.Equal(t, Rect{X: 40, Y: 50, W: 20, H: 20}, ball.Bounds())
}

func TestBallMode_String(t *testing.T) {
	assert.Equal(t, "stuck", BallStuck.String())
	assert.Equal(t, "inFlight", BallInFlight.String())
}
