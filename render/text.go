// File: render/text.go
package render

import (
	"fmt"

	"github.com/lguibr/dxball/game"
)

// Tone tells a frontend how to style a line; each frontend picks its own colors.
type Tone int

const (
	ToneNormal Tone = iota
	ToneTitle
	ToneSelected
	ToneHint
	ToneAlert
	ToneSuccess
)

type Line struct {
	Text string
	Tone Tone
}

// Page returns the centered text block for the current frame: a full menu screen, the
// round-end banner, or the pause notice. It is empty while a round is running.
func Page(s game.Snapshot) []Line {
	switch s.State {
	case game.Menu{}.Name():
		switch s.Screen {
		case game.ScreenPlayerName.String():
			return playerNamePage(s)
		case game.ScreenScoreBoard.String():
			return scoreBoardPage(s)
		}
		return mainMenuPage(s)
	case game.GameOver{}.Name():
		return banner("GAME OVER", ToneAlert, s)
	case game.Win{}.Name():
		return banner("YOU WIN!", ToneSuccess, s)
	}
	if s.Paused {
		return []Line{{"PAUSED", ToneTitle}, {"Press P to resume", ToneHint}}
	}
	return nil
}

func mainMenuPage(s game.Snapshot) []Line {
	lines := []Line{{"DX BALL", ToneTitle}, {}}
	for i, item := range s.MenuItems {
		tone := ToneNormal
		if i == s.Selection {
			tone = ToneSelected
		}
		lines = append(lines, Line{item, tone})
	}
	return append(lines,
		Line{},
		Line{"Use NUMBER KEYS 1-4 to select menu  |  ENTER to confirm  |  ESC to go back", ToneHint},
		Line{soundStatus(s.SoundEnabled), ToneHint},
	)
}

func playerNamePage(s game.Snapshot) []Line {
	return []Line{
		{"CHANGE PLAYER NAME", ToneTitle},
		{},
		{"Current Player: " + s.Player.Name, ToneNormal},
		{fmt.Sprintf("Player %d of %d", s.Player.Slot+1, len(s.Players)), ToneNormal},
		{},
		{"Enter new name:", ToneNormal},
		{"> " + s.NameBuffer + "_", ToneSelected},
		{},
		{"Type name and press ENTER", ToneHint},
		{"ESC to cancel", ToneHint},
	}
}

func scoreBoardPage(s game.Snapshot) []Line {
	lines := []Line{
		{"SCORE BOARD", ToneTitle},
		{},
		{"Current Player: " + s.Player.Name, ToneNormal},
		{fmt.Sprintf("Current Round Score: %d", s.Score), ToneNormal},
		{fmt.Sprintf("Best Score (saved): %d", s.Player.Best), ToneNormal},
		{},
		{"All Recorded Runs (Top entries):", ToneNormal},
	}
	if len(s.Scoreboard) == 0 {
		lines = append(lines, Line{"No runs recorded yet", ToneHint})
	}
	for i, entry := range s.Scoreboard {
		lines = append(lines, Line{fmt.Sprintf("%2d. %-15s %6d", i+1, entry.Name, entry.Score), ToneNormal})
	}
	return append(lines, Line{}, Line{"Press ESC to go back", ToneHint})
}

func banner(title string, tone Tone, s game.Snapshot) []Line {
	return []Line{
		{title, tone},
		{fmt.Sprintf("Score: %d", s.Score), ToneNormal},
		{"Press ENTER for next player", ToneHint},
		{"ESC for Menu", ToneHint},
	}
}

// HUD is the status row drawn above the board.
func HUD(s game.Snapshot) []string {
	return []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Lives: %d", s.Lives),
		"Player: " + s.Player.Name,
		fmt.Sprintf("Speed: %d", int(s.Paddle.Speed)),
		onOff("Sound: ", s.SoundEnabled),
	}
}

// Controls lists the in-game key help.
func Controls() []string {
	return []string{
		"Arrow Keys/Mouse: Move",
		"SPACE: Release Ball",
		"P: Pause",
		"ESC: Menu | M: Toggle Sound",
	}
}

func soundStatus(enabled bool) string {
	if enabled {
		return "Sound: ON (Press M to mute)"
	}
	return "Sound: OFF (Press M to unmute)"
}

func onOff(prefix string, on bool) string {
	if on {
		return prefix + "ON"
	}
	return prefix + "OFF"
}
