package game

import (
	"math"

	"github.com/lguibr/dxball/utils"
)

func (ball *Ball) CollidesLeftWall() bool {
	return ball.X-ball.Radius < 0
}

func (ball *Ball) CollidesRightWall(width float64) bool {
	return ball.X+ball.Radius > width
}

func (ball *Ball) CollidesTopWall(height float64) bool {
	return ball.Y+ball.Radius > height
}

// CollidesBottom is the miss line, not a wall.
func (ball *Ball) CollidesBottom() bool {
	return ball.Y-ball.Radius < 0
}

// CollideWalls clamps the ball inside the left, right and top walls and reflects it.
func (ball *Ball) CollideWalls(width, height float64) {
	if ball.CollidesLeftWall() {
		ball.X = ball.Radius
		ball.ReflectVelocityX()
	}
	if ball.CollidesRightWall(width) {
		ball.X = width - ball.Radius
		ball.ReflectVelocityX()
	}
	if ball.CollidesTopWall(height) {
		ball.Y = height - ball.Radius
		ball.ReflectVelocityY()
	}
}

// InterceptsPaddle checks the ball's lower edge against the paddle's top band, with the
// horizontal extent widened by the radius on both sides.
func (ball *Ball) InterceptsPaddle(paddle *Paddle) bool {
	return ball.Y-ball.Radius < paddle.Top() &&
		ball.Y > paddle.Y &&
		ball.X > paddle.X-ball.Radius &&
		ball.X < paddle.Right()+ball.Radius
}

// CollidePaddle bounces the ball upward with a horizontal speed proportional to the
// impact offset from the paddle center; maxBounce is reached at the paddle edge and
// never exceeded.
func (ball *Ball) CollidePaddle(paddle *Paddle, maxBounce float64) bool {
	if !ball.InterceptsPaddle(paddle) {
		return false
	}
	ball.Vy = math.Abs(ball.Vy)
	// The hit band reaches a radius past each edge; those hits still count as edge hits
	hit := utils.Clamp((ball.X-paddle.CenterX())/(paddle.Width/2), -1, 1)
	ball.Vx = hit * maxBounce
	ball.Y = paddle.Top() + ball.Radius
	return true
}

// CollideBlocks destroys the first alive block overlapping the ball, in slice order, and
// reflects the ball off it. Only one block is resolved per call. Returns the block index or -1.
func (ball *Ball) CollideBlocks(blocks []Block) int {
	bounds := ball.Bounds()
	for i := range blocks {
		block := &blocks[i]
		if !block.Alive || !Overlaps(bounds, block.Rect) {
			continue
		}
		block.Alive = false
		ball.handleCollideBlock(block.Rect)
		return i
	}
	return -1
}

// handleCollideBlock reflects along the axis of least penetration.
// Order matters: left/right come first so ties reflect horizontally.
func (ball *Ball) handleCollideBlock(block Rect) {
	overlapLeft := (ball.X + ball.Radius) - block.X
	overlapRight := block.Right() - (ball.X - ball.Radius)
	overlapTop := block.Top() - (ball.Y - ball.Radius)
	overlapBottom := (ball.Y + ball.Radius) - block.Y

	switch utils.MinAbsIndex(overlapLeft, overlapRight, overlapTop, overlapBottom) {
	case 0, 1:
		ball.ReflectVelocityX()
	default:
		ball.ReflectVelocityY()
	}
}
