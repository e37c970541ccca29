// File: game/snapshot.go
package game

// Snapshot is a read-only copy of everything a renderer or spectator needs for one frame.
// It shares no memory with the session.
type Snapshot struct {
	Tick         uint64   `json:"tick"`
	State        string   `json:"state"`
	Screen       string   `json:"screen,omitempty"` // Only set in the menu
	Paused       bool     `json:"paused"`
	SoundEnabled bool     `json:"soundEnabled"`
	Selection    int      `json:"selection"`
	MenuItems    []string `json:"menuItems"`
	NameBuffer   string   `json:"nameBuffer"`

	Player  Player   `json:"player"`
	Players []Player `json:"players"`

	Score       int     `json:"score"`
	Lives       int     `json:"lives"`
	Outcome     string  `json:"outcome"`
	Ball        Ball    `json:"ball"`
	Paddle      Paddle  `json:"paddle"`
	Blocks      []Block `json:"blocks"`
	BlocksAlive int     `json:"blocksAlive"`

	Scoreboard []Entry `json:"scoreboard"` // Ranked for display

	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`
}

// Snapshot copies the session's current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         s.ticks,
		State:        s.state.Name(),
		SoundEnabled: s.soundEnabled,
		Selection:    int(s.selection),
		MenuItems:    MenuLabels(s.PlayerName()),
		NameBuffer:   string(s.nameBuffer),
		Player:       s.registry.Player(s.slot),
		Players:      s.registry.Players(),
		Score:        s.round.Score,
		Lives:        s.round.Lives,
		Outcome:      s.round.Outcome.String(),
		Ball:         s.round.Ball,
		Paddle:       s.round.Paddle,
		Blocks:       make([]Block, len(s.round.Blocks)),
		BlocksAlive:  s.round.BlocksAlive(),
		Scoreboard:   s.registry.Ranked(s.cfg.ScoreboardShow),
		WorldWidth:   s.cfg.WorldWidth,
		WorldHeight:  s.cfg.WorldHeight,
	}
	copy(snap.Blocks, s.round.Blocks)

	switch st := s.state.(type) {
	case Menu:
		snap.Screen = st.Screen.String()
	case Playing:
		snap.Paused = st.Paused
	}
	return snap
}

// Overlay reports whether the round-end banner is drawn over the board.
func (snap Snapshot) Overlay() bool {
	return snap.State == GameOver{}.Name() || snap.State == Win{}.Name()
}

// ShowsBoard reports whether the playfield is visible in this frame.
func (snap Snapshot) ShowsBoard() bool {
	return snap.State == Playing{}.Name() || snap.Overlay()
}
