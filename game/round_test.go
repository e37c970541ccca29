package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/dxball/utils"
)

func newTestRound(t *testing.T) *Round {
	t.Helper()
	cfg := utils.DefaultConfig()
	return NewRound(cfg, NewPaddle(cfg), rand.New(rand.NewSource(1)))
}

// launch puts the ball in flight at a fixed position and velocity.
func launch(r *Round, x, y, vx, vy float64) {
	r.Ball.X, r.Ball.Y = x, y
	r.Ball.Vx, r.Ball.Vy = vx, vy
	r.Ball.Mode = BallInFlight
}

// lastBlockOnMissLine leaves one alive block sitting on y=0, so a ball crossing the
// miss line also breaks it.
func lastBlockOnMissLine(r *Round) {
	for i := range r.Blocks {
		r.Blocks[i].Alive = i == 24
	}
	r.Blocks[24].Rect = Rect{X: 180, Y: 0, W: 83.75, H: 35}
}

func TestNewRound(t *testing.T) {
	round := newTestRound(t)

	assert.Equal(t, 3, round.Lives)
	assert.Equal(t, 0, round.Score)
	assert.Equal(t, RoundLive, round.Outcome)
	assert.Equal(t, Unrecorded, round.Record)
	assert.Equal(t, 32, round.BlocksAlive())

	assert.Equal(t, BallStuck, round.Ball.Mode)
	assert.Equal(t, 450.0, round.Ball.X)
	assert.Equal(t, 98.0, round.Ball.Y)
	assert.Equal(t, 8.0, math.Abs(round.Ball.Vx))
	assert.Equal(t, 10.0, round.Ball.Vy)
}

func TestRound_ServeDirectionVaries(t *testing.T) {
	cfg := utils.DefaultConfig()
	round := NewRound(cfg, NewPaddle(cfg), rand.New(rand.NewSource(7)))

	seen := map[float64]bool{}
	for i := 0; i < 64; i++ {
		round.Serve()
		seen[round.Ball.Vx] = true
	}
	assert.True(t, seen[8], "serves to the right")
	assert.True(t, seen[-8], "serves to the left")
	assert.Len(t, seen, 2)
}

func TestRound_StuckBallTracksPaddle(t *testing.T) {
	round := newTestRound(t)

	round.MovePaddleLeft()
	assert.Equal(t, 375.0, round.Paddle.X)
	assert.Equal(t, round.Paddle.CenterX(), round.Ball.X)

	round.MovePaddleTo(200)
	assert.Equal(t, 200.0, round.Ball.X)
	assert.Equal(t, 98.0, round.Ball.Y)

	assert.Empty(t, round.Tick(), "a stuck ball produces no events")
	assert.Equal(t, 200.0, round.Ball.X)
	assert.Equal(t, BallStuck, round.Ball.Mode)
}

func TestRound_FlyingBallIgnoresPaddle(t *testing.T) {
	round := newTestRound(t)
	round.Release()
	x := round.Ball.X

	round.MovePaddleRight()
	assert.Equal(t, x, round.Ball.X)
	assert.Equal(t, BallInFlight, round.Ball.Mode)
}

func TestRound_Tick(t *testing.T) {
	testCases := []struct {
		name           string
		setup          func(r *Round)
		expectedEvents []Event
		expectedScore  int
		expectedLives  int
		expectedAlive  int
		expectedResult RoundOutcome
		expectedMode   BallMode
	}{
		{
			name:           "Free Flight",
			setup:          func(r *Round) { launch(r, 200, 300, 8, 10) },
			expectedEvents: nil,
			expectedLives:  3,
			expectedAlive:  32,
			expectedResult: RoundLive,
			expectedMode:   BallInFlight,
		},
		{
			name:           "Paddle Hit",
			setup:          func(r *Round) { launch(r, 450, 92, 4, -10) },
			expectedEvents: []Event{EventPaddleHit},
			expectedLives:  3,
			expectedAlive:  32,
			expectedResult: RoundLive,
			expectedMode:   BallInFlight,
		},
		{
			name:           "Block Destroyed",
			setup:          func(r *Round) { launch(r, 120, 410, 0, 10) }, // Lowest row, first column
			expectedEvents: []Event{EventBlockDestroyed},
			expectedScore:  10,
			expectedLives:  3,
			expectedAlive:  31,
			expectedResult: RoundLive,
			expectedMode:   BallInFlight,
		},
		{
			name:           "Life Lost",
			setup:          func(r *Round) { launch(r, 200, 5, 0, -10) },
			expectedEvents: []Event{EventLifeLost},
			expectedLives:  2,
			expectedAlive:  32,
			expectedResult: RoundLive,
			expectedMode:   BallStuck,
		},
		{
			name: "Last Life Lost",
			setup: func(r *Round) {
				r.Lives = 1
				launch(r, 200, 5, 0, -10)
			},
			expectedEvents: []Event{EventLifeLost, EventRoundLost},
			expectedLives:  0,
			expectedAlive:  32,
			expectedResult: RoundLost,
			expectedMode:   BallInFlight,
		},
		{
			name: "Last Block",
			setup: func(r *Round) {
				for i := range r.Blocks {
					r.Blocks[i].Alive = i == 24
				}
				launch(r, 120, 410, 0, 10)
			},
			expectedEvents: []Event{EventBlockDestroyed, EventRoundWon},
			expectedScore:  10,
			expectedLives:  3,
			expectedAlive:  0,
			expectedResult: RoundWon,
			expectedMode:   BallInFlight,
		},
		{
			name: "Last Block And Last Life Same Tick",
			setup: func(r *Round) {
				r.Lives = 1
				lastBlockOnMissLine(r)
				launch(r, 200, 5, 0, -10)
			},
			expectedEvents: []Event{EventBlockDestroyed, EventLifeLost, EventRoundLost},
			expectedScore:  10,
			expectedLives:  0,
			expectedAlive:  0,
			expectedResult: RoundLost,
			expectedMode:   BallInFlight,
		},
		{
			name: "Last Block And Spare Life Same Tick",
			setup: func(r *Round) {
				lastBlockOnMissLine(r)
				launch(r, 200, 5, 0, -10)
			},
			expectedEvents: []Event{EventBlockDestroyed, EventLifeLost, EventRoundWon},
			expectedScore:  10,
			expectedLives:  2,
			expectedAlive:  0,
			expectedResult: RoundWon,
			expectedMode:   BallStuck,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			round := newTestRound(t)
			tc.setup(round)

			events := round.Tick()
			assert.Equal(t, tc.expectedEvents, events)
			assert.Equal(t, tc.expectedScore, round.Score, "score")
			assert.Equal(t, tc.expectedLives, round.Lives, "lives")
			assert.Equal(t, tc.expectedAlive, round.BlocksAlive(), "alive blocks")
			assert.Equal(t, tc.expectedResult, round.Outcome, "outcome")
			assert.Equal(t, tc.expectedMode, round.Ball.Mode, "ball mode")
		})
	}
}

func TestRound_PaddleHitBounce(t *testing.T) {
	round := newTestRound(t)
	launch(round, 480, 92, 0, -10)

	require.Equal(t, []Event{EventPaddleHit}, round.Tick())
	assert.InDelta(t, 6.0, round.Ball.Vx, 1e-9, "offset 30 of a 60 half-width gives half the max bounce")
	assert.Equal(t, 10.0, round.Ball.Vy)
	assert.Equal(t, 90.0, round.Ball.Y)
}

func TestRound_BlockReflectsBall(t *testing.T) {
	round := newTestRound(t)
	launch(round, 120, 410, 0, 10)

	round.Tick()
	assert.False(t, round.Blocks[24].Alive)
	assert.Equal(t, -10.0, round.Ball.Vy)
}

func TestRound_FinishedRoundIsFrozen(t *testing.T) {
	round := newTestRound(t)
	round.Lives = 1
	launch(round, 200, 5, 0, -10)
	round.Tick()
	require.Equal(t, RoundLost, round.Outcome)

	x, y := round.Ball.X, round.Ball.Y
	assert.Nil(t, round.Tick())
	round.Release()
	assert.Equal(t, x, round.Ball.X)
	assert.Equal(t, y, round.Ball.Y)
	assert.Equal(t, 0, round.Lives)
}

func TestRound_ClaimRecord(t *testing.T) {
	round := newTestRound(t)
	assert.False(t, round.claimRecord(), "a live round cannot be recorded")

	round.Outcome = RoundWon
	assert.True(t, round.claimRecord())
	assert.False(t, round.claimRecord(), "second claim is refused")
	assert.Equal(t, Recorded, round.Record)
}

func TestRoundOutcome_String(t *testing.T) {
	assert.Equal(t, "live", RoundLive.String())
	assert.Equal(t, "lost", RoundLost.String())
	assert.Equal(t, "won", RoundWon.String())
}
