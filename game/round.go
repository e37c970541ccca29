// File: game/round.go
package game

import (
	"math/rand"

	"github.com/lguibr/dxball/utils"
)

// RoundOutcome is Live until the round ends by losing every life or clearing every block.
type RoundOutcome int

const (
	RoundLive RoundOutcome = iota
	RoundLost
	RoundWon
)

func (o RoundOutcome) String() string {
	switch o {
	case RoundLost:
		return "lost"
	case RoundWon:
		return "won"
	}
	return "live"
}

// RecordState tracks whether a finished round already produced its scoreboard entry.
type RecordState int

const (
	Unrecorded RecordState = iota
	Recorded
)

// Round is one playthrough: fresh blocks, score, lives and a ball served from the paddle.
type Round struct {
	Ball    Ball
	Paddle  Paddle
	Blocks  []Block
	Score   int
	Lives   int
	Outcome RoundOutcome
	Record  RecordState

	cfg utils.Config
	rng *rand.Rand
}

// NewRound builds a round around an existing paddle so position and speed carry over.
func NewRound(cfg utils.Config, paddle Paddle, rng *rand.Rand) *Round {
	round := &Round{
		Paddle:  paddle,
		Blocks:  NewBlocks(cfg),
		Score:   0,
		Lives:   cfg.InitialLives,
		Outcome: RoundLive,
		Record:  Unrecorded,
		cfg:     cfg,
		rng:     rng,
	}
	round.Ball.Radius = cfg.BallRadius
	round.Serve()
	return round
}

// Serve re-attaches the ball to the paddle with a fresh serve velocity.
func (r *Round) Serve() {
	r.Ball.Vx = r.cfg.ServeVX * utils.Sign(r.rng.Float64()-0.5)
	r.Ball.Vy = r.cfg.ServeVY
	r.Ball.StickTo(&r.Paddle, r.cfg.BallRestOffset)
}

// Release launches a stuck ball. It has no effect once the ball is flying.
func (r *Round) Release() {
	if r.Outcome != RoundLive {
		return
	}
	r.Ball.Release()
}

func (r *Round) MovePaddleLeft() {
	r.Paddle.MoveLeft()
	r.trackPaddle()
}

func (r *Round) MovePaddleRight() {
	r.Paddle.MoveRight()
	r.trackPaddle()
}

func (r *Round) MovePaddleTo(x float64) {
	r.Paddle.CenterOn(x)
	r.trackPaddle()
}

func (r *Round) trackPaddle() {
	if r.Ball.Mode == BallStuck {
		r.Ball.StickTo(&r.Paddle, r.cfg.BallRestOffset)
	}
}

func (r *Round) BlocksAlive() int {
	return AliveCount(r.Blocks)
}

// Tick advances the round by one fixed step and returns the events it produced, in order.
// A finished round no longer changes.
func (r *Round) Tick() []Event {
	if r.Outcome != RoundLive {
		return nil
	}
	if r.Ball.Mode == BallStuck {
		r.trackPaddle()
		return nil
	}

	var events []Event

	r.Ball.Move()
	r.Ball.CollideWalls(r.cfg.WorldWidth, r.cfg.WorldHeight)

	if r.Ball.CollidePaddle(&r.Paddle, r.cfg.PaddleBounceMax) {
		events = append(events, EventPaddleHit)
	}

	if r.Ball.CollideBlocks(r.Blocks) >= 0 {
		r.Score += r.cfg.BlockPoints
		events = append(events, EventBlockDestroyed)
	}

	if r.Ball.CollidesBottom() {
		r.Lives--
		events = append(events, EventLifeLost)
		if r.Lives <= 0 {
			r.Lives = 0
			r.Outcome = RoundLost
			// Losing the last life ends the round, the win check is skipped
			return append(events, EventRoundLost)
		}
		r.Serve()
	}

	if r.BlocksAlive() == 0 {
		r.Outcome = RoundWon
		events = append(events, EventRoundWon)
	}
	return events
}

// claimRecord flips a finished round to Recorded exactly once.
func (r *Round) claimRecord() bool {
	if r.Outcome == RoundLive || r.Record == Recorded {
		return false
	}
	r.Record = Recorded
	return true
}
