// File: game/state.go
package game

import "fmt"

// State is one of Menu, Playing, GameOver or Win. Only Menu carries a sub-screen, so a
// screen can never be paired with a non-menu state.
type State interface {
	Name() string
	isState()
}

type Screen int

const (
	ScreenMain Screen = iota
	ScreenPlayerName
	ScreenScoreBoard
)

func (s Screen) String() string {
	switch s {
	case ScreenPlayerName:
		return "playerName"
	case ScreenScoreBoard:
		return "scoreBoard"
	}
	return "main"
}

type Menu struct {
	Screen Screen
}

// Playing can be paused; a paused session does not tick.
type Playing struct {
	Paused bool
}

type GameOver struct{}

type Win struct{}

func (Menu) Name() string     { return "menu" }
func (Playing) Name() string  { return "playing" }
func (GameOver) Name() string { return "gameOver" }
func (Win) Name() string      { return "win" }

func (Menu) isState()     {}
func (Playing) isState()  {}
func (GameOver) isState() {}
func (Win) isState()      {}

// --- Main menu ---

type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuPlayerName
	MenuScoreBoard
	MenuExit

	menuItemCount = 4
)

// MenuLabels renders the main menu entries, numbered by their hotkey.
func MenuLabels(playerName string) []string {
	return []string{
		"1. START GAME",
		fmt.Sprintf("2. PLAYER NAME: %s", playerName),
		"3. SCORE BOARD",
		"4. EXIT",
	}
}
