package game

import (
	"sort"
)

// Player is one rotation slot with its display name and best score so far.
type Player struct {
	Slot int    `json:"slot"`
	Name string `json:"name"`
	Best int    `json:"best"`
}

// Entry is one finished round on the scoreboard.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Registry keeps players and the scoreboard for the whole process lifetime.
// It never references round state; callers push scores into it.
type Registry struct {
	players   []Player
	log       []Entry
	nameLimit int
}

func NewRegistry(names []string, nameLimit int) *Registry {
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{Slot: i, Name: truncateName(name, nameLimit)}
	}
	return &Registry{players: players, nameLimit: nameLimit}
}

func (r *Registry) Slots() int { return len(r.players) }

func (r *Registry) valid(slot int) bool {
	return slot >= 0 && slot < len(r.players)
}

func (r *Registry) Name(slot int) string {
	if !r.valid(slot) {
		return ""
	}
	return r.players[slot].Name
}

// Rename sets a slot's name, truncated to the limit. Empty names are ignored.
func (r *Registry) Rename(slot int, name string) bool {
	if !r.valid(slot) || name == "" {
		return false
	}
	r.players[slot].Name = truncateName(name, r.nameLimit)
	return true
}

// SaveBest raises the slot's best score to score if it is higher, and returns the best.
func (r *Registry) SaveBest(slot, score int) int {
	if !r.valid(slot) {
		return 0
	}
	if score > r.players[slot].Best {
		r.players[slot].Best = score
	}
	return r.players[slot].Best
}

func (r *Registry) Best(slot int) int {
	if !r.valid(slot) {
		return 0
	}
	return r.players[slot].Best
}

func (r *Registry) Player(slot int) Player {
	if !r.valid(slot) {
		return Player{Slot: slot}
	}
	return r.players[slot]
}

func (r *Registry) Players() []Player {
	players := make([]Player, len(r.players))
	copy(players, r.players)
	return players
}

// Record appends a run to the log. Runs without a name are dropped.
func (r *Registry) Record(name string, score int) bool {
	if name == "" {
		return false
	}
	r.log = append(r.log, Entry{Name: name, Score: score})
	return true
}

// Entries returns the log in insertion order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, len(r.log))
	copy(entries, r.log)
	return entries
}

// Ranked sorts a copy of the log by score descending, then name ascending.
// A non-positive limit returns every entry.
func (r *Registry) Ranked(limit int) []Entry {
	ranked := r.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func truncateName(name string, limit int) string {
	runes := []rune(name)
	if limit > 0 && len(runes) > limit {
		return string(runes[:limit])
	}
	return name
}
