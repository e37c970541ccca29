package render

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/dxball/game"
	"github.com/lguibr/dxball/utils"
)

func newSession() *game.Session {
	cfg := utils.DefaultConfig()
	return game.NewSession(cfg, game.NewRegistry(cfg.PlayerNames, cfg.NameLimit), nil, rand.New(rand.NewSource(1)))
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Text
	}
	return out
}

func TestGray(t *testing.T) {
	assert.Equal(t, uint8(0), Gray(game.Color{}))
	assert.Equal(t, uint8(255), Gray(game.Color{R: 1, G: 1, B: 1}))
	assert.Equal(t, uint8(255), Gray(game.Color{R: 2, G: 2, B: 2}), "channels are clamped")
}

func TestShade(t *testing.T) {
	assert.Equal(t, '.', Shade(game.Color{}), "black stays visible")
	assert.Equal(t, '@', Shade(game.Color{R: 1, G: 1, B: 1}))

	dim := Shade(game.Color{R: 0.2, G: 0.2, B: 0.2})
	bright := Shade(game.Color{R: 0.8, G: 0.8, B: 0.8})
	assert.Less(t, indexOf(dim), indexOf(bright))
}

func indexOf(r rune) int {
	for i, c := range asciiChars {
		if c == r {
			return i
		}
	}
	return -1
}

func TestRGB8(t *testing.T) {
	r, g, b := RGB8(game.Color{R: 1, G: 0.5, B: -1})
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(128), g)
	assert.Equal(t, uint8(0), b)
}

func TestViewport(t *testing.T) {
	v := Viewport{WorldWidth: 900, WorldHeight: 700, Width: 90, Height: 35}

	x, y := v.Point(0, 0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 35.0, y, "world bottom is the screen's last row")

	x, y = v.Point(900, 700)
	assert.Equal(t, 90.0, x)
	assert.Equal(t, 0.0, y)

	rx, ry, rw, rh := v.Rect(game.Rect{X: 100, Y: 600, W: 200, H: 100})
	assert.Equal(t, 10.0, rx)
	assert.Equal(t, 0.0, ry, "top-left anchor")
	assert.Equal(t, 20.0, rw)
	assert.Equal(t, 5.0, rh)

	assert.Equal(t, 450.0, v.WorldX(45))
}

func TestPage_MainMenu(t *testing.T) {
	s := newSession()
	s.HandleInput(game.KeyInput(game.KeyDown))

	lines := Page(s.Snapshot())
	require.NotEmpty(t, lines)
	assert.Equal(t, Line{"DX BALL", ToneTitle}, lines[0])
	assert.Contains(t, lines, Line{"2. PLAYER NAME: Player1", ToneSelected})
	assert.Contains(t, lines, Line{"1. START GAME", ToneNormal})
	assert.Contains(t, texts(lines), "Sound: ON (Press M to mute)")
}

func TestPage_PlayerName(t *testing.T) {
	s := newSession()
	s.HandleInput(game.CharInput('2'))
	s.HandleInput(game.KeyInput(game.KeyEnter))
	s.HandleInput(game.CharInput('!'))

	lines := texts(Page(s.Snapshot()))
	assert.Equal(t, "CHANGE PLAYER NAME", lines[0])
	assert.Contains(t, lines, "Player 1 of 3")
	assert.Contains(t, lines, "> Player1!_")
}

func TestPage_ScoreBoard(t *testing.T) {
	s := newSession()
	s.Registry().Record("Ana", 120)
	s.Registry().Record("Bo", 340)
	s.HandleInput(game.CharInput('3'))
	s.HandleInput(game.KeyInput(game.KeyEnter))

	lines := texts(Page(s.Snapshot()))
	assert.Equal(t, "SCORE BOARD", lines[0])
	assert.Contains(t, lines, " 1. Bo                 340")
	assert.Contains(t, lines, " 2. Ana                120")
	assert.Equal(t, "Press ESC to go back", lines[len(lines)-1])

	empty := texts(Page(newSession().Snapshot()))
	assert.NotContains(t, empty, "No runs recorded yet", "main menu has no scoreboard")
}

func TestPage_Playing(t *testing.T) {
	s := newSession()
	s.HandleInput(game.KeyInput(game.KeyEnter))
	assert.Empty(t, Page(s.Snapshot()))

	s.HandleInput(game.CharInput('p'))
	assert.Equal(t, []string{"PAUSED", "Press P to resume"}, texts(Page(s.Snapshot())))
}

func TestPage_RoundEnd(t *testing.T) {
	testCases := []struct {
		state    string
		expected Line
	}{
		{"gameOver", Line{"GAME OVER", ToneAlert}},
		{"win", Line{"YOU WIN!", ToneSuccess}},
	}

	for _, tc := range testCases {
		t.Run(tc.state, func(t *testing.T) {
			lines := Page(game.Snapshot{State: tc.state, Score: 70})
			require.Len(t, lines, 4)
			assert.Equal(t, tc.expected, lines[0])
			assert.Equal(t, "Score: 70", lines[1].Text)
		})
	}
}

func TestHUD(t *testing.T) {
	s := newSession()
	s.HandleInput(game.CharInput('m'))
	snap := s.Snapshot()

	assert.Equal(t, []string{"Score: 0", "Lives: 3", "Player: Player1", "Speed: 15", "Sound: OFF"}, HUD(snap))
	assert.Len(t, Controls(), 4)
}
