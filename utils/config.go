// File: utils/config.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds all configurable game parameters.
// Coordinates are world units with the origin at the bottom-left corner (y grows upward).
type Config struct {
	// Timing
	TickPeriod time.Duration `json:"tickPeriod"` // Fixed simulation step, no delta-time scaling

	// World
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Paddle
	PaddleWidth          float64 `json:"paddleWidth"`
	PaddleHeight         float64 `json:"paddleHeight"`
	PaddleY              float64 `json:"paddleY"`              // Fixed bottom edge of the paddle
	PaddleSpeed          float64 `json:"paddleSpeed"`          // Units moved per arrow key press
	PaddleSpeedIncrement float64 `json:"paddleSpeedIncrement"` // Added on every player rotation
	MarginLeft           float64 `json:"marginLeft"`
	MarginRight          float64 `json:"marginRight"`

	// Ball
	BallRadius      float64 `json:"ballRadius"`
	BallRestOffset  float64 `json:"ballRestOffset"`  // Height of the stuck ball's center above the paddle top
	ServeVX         float64 `json:"serveVX"`         // Horizontal serve speed, sign picked at random
	ServeVY         float64 `json:"serveVY"`         // Vertical serve speed (upward)
	PaddleBounceMax float64 `json:"paddleBounceMax"` // |vx| after hitting the paddle's very edge

	// Blocks
	BlockRows    int     `json:"blockRows"`
	BlockCols    int     `json:"blockCols"`
	BlockMarginX float64 `json:"blockMarginX"`
	BlockMarginY float64 `json:"blockMarginY"` // Distance from the top wall to the first row
	BlockGapX    float64 `json:"blockGapX"`
	BlockGapY    float64 `json:"blockGapY"`
	BlockHeight  float64 `json:"blockHeight"`

	// Round & Players
	InitialLives   int      `json:"initialLives"`
	BlockPoints    int      `json:"blockPoints"`
	PlayerNames    []string `json:"playerNames"` // One entry per player slot
	NameLimit      int      `json:"nameLimit"`   // Max characters in a player name
	ScoreboardShow int      `json:"scoreboardShow"`

	// Seed for the serve direction. Zero means seed from the clock.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing
		TickPeriod: 16 * time.Millisecond,

		// World
		WorldWidth:  900,
		WorldHeight: 700,

		// Paddle
		PaddleWidth:          120,
		PaddleHeight:         20,
		PaddleY:              60,
		PaddleSpeed:          15,
		PaddleSpeedIncrement: 2,
		MarginLeft:           10,
		MarginRight:          10,

		// Ball
		BallRadius:      10,
		BallRestOffset:  18,
		ServeVX:         8,
		ServeVY:         10,
		PaddleBounceMax: 12,

		// Blocks
		BlockRows:    4,
		BlockCols:    8,
		BlockMarginX: 80,
		BlockMarginY: 100,
		BlockGapX:    10,
		BlockGapY:    8,
		BlockHeight:  35,

		// Round & Players
		InitialLives:   3,
		BlockPoints:    10,
		PlayerNames:    []string{"Player1", "Player2", "Player3"},
		NameLimit:      15,
		ScoreboardShow: 12,
	}
}

// LoadConfig reads a JSON file and overlays it on DefaultConfig.
// Fields missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Fixed by the game rules, not tunable
const (
	PlayerSlots   = 3
	MaxNameLength = 15
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the relationships the simulation relies on.
func (c Config) Validate() error {
	switch {
	case c.TickPeriod <= 0:
		return fmt.Errorf("%w: tickPeriod must be positive", ErrInvalidConfig)
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidConfig)
	case c.MarginLeft+c.PaddleWidth+c.MarginRight > c.WorldWidth:
		return fmt.Errorf("%w: paddle and margins wider than the world", ErrInvalidConfig)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ballRadius must be positive", ErrInvalidConfig)
	case c.BlockRows <= 0 || c.BlockCols <= 0:
		return fmt.Errorf("%w: block grid needs at least one row and column", ErrInvalidConfig)
	case c.BlockHeight <= 0:
		return fmt.Errorf("%w: blockHeight must be positive", ErrInvalidConfig)
	case c.InitialLives <= 0:
		return fmt.Errorf("%w: initialLives must be positive", ErrInvalidConfig)
	case c.BlockPoints < 0:
		return fmt.Errorf("%w: blockPoints must not be negative", ErrInvalidConfig)
	case c.PaddleSpeedIncrement <= 0:
		return fmt.Errorf("%w: paddleSpeedIncrement must be positive", ErrInvalidConfig)
	case len(c.PlayerNames) != PlayerSlots:
		return fmt.Errorf("%w: exactly %d player names are required, got %d", ErrInvalidConfig, PlayerSlots, len(c.PlayerNames))
	case c.NameLimit <= 0 || c.NameLimit > MaxNameLength:
		return fmt.Errorf("%w: nameLimit must be between 1 and %d", ErrInvalidConfig, MaxNameLength)
	}
	for i, name := range c.PlayerNames {
		if name == "" {
			return fmt.Errorf("%w: player name %d is empty", ErrInvalidConfig, i)
		}
	}
	if c.BlockWidth() <= 0 {
		return fmt.Errorf("%w: block columns do not fit between the margins", ErrInvalidConfig)
	}
	return nil
}

// BlockWidth is derived from the world width, margins, gaps and column count.
func (c Config) BlockWidth() float64 {
	cols := float64(c.BlockCols)
	return (c.WorldWidth - 2*c.BlockMarginX - (cols-1)*c.BlockGapX) / cols
}

// TicksPerSecond converts TickPeriod into a rate for frame-driven frontends.
func (c Config) TicksPerSecond() int {
	if c.TickPeriod <= 0 {
		return 60
	}
	return int(time.Second / c.TickPeriod)
}
