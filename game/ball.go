package game

// BallMode replaces a "stuck to paddle" flag: a ball is either riding the paddle or flying.
type BallMode int

const (
	BallStuck BallMode = iota
	BallInFlight
)

func (m BallMode) String() string {
	if m == BallStuck {
		return "stuck"
	}
	return "inFlight"
}

type Ball struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Vx     float64  `json:"vx"`
	Vy     float64  `json:"vy"`
	Radius float64  `json:"radius"`
	Mode   BallMode `json:"mode"`
}

// Move integrates one fixed step. Stuck balls never move on their own.
func (b *Ball) Move() {
	if b.Mode == BallStuck {
		return
	}
	b.X += b.Vx
	b.Y += b.Vy
}

// Bounds is the ball's bounding box, used against blocks.
func (b *Ball) Bounds() Rect {
	return Rect{X: b.X - b.Radius, Y: b.Y - b.Radius, W: b.Radius * 2, H: b.Radius * 2}
}

// StickTo pins the ball above the paddle's center.
func (b *Ball) StickTo(p *Paddle, restOffset float64) {
	b.X = p.CenterX()
	b.Y = p.Top() + restOffset
	b.Mode = BallStuck
}

func (b *Ball) Release() {
	b.Mode = BallInFlight
}

func (b *Ball) ReflectVelocityX() { b.Vx = -b.Vx }
func (b *Ball) ReflectVelocityY() { b.Vy = -b.Vy }
