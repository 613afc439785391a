// Package model defines shared data structures.
package model

import "time"

// GameKey identifies one of the tracked games.
type GameKey string

// Known game keys. The totals map always carries all three, even though
// only stroop and nback have playable sessions today.
const (
	GameStroop GameKey = "stroop"
	GameNBack  GameKey = "nback"
	GameMemory GameKey = "memory"
)

// GameKeys lists the known keys in display order.
var GameKeys = []GameKey{GameStroop, GameNBack, GameMemory}

// Label returns the human-readable game name.
func (k GameKey) Label() string {
	switch k {
	case GameStroop:
		return "Stroop Focus"
	case GameNBack:
		return "1-Back Memory"
	case GameMemory:
		return "Memory"
	default:
		return string(k)
	}
}

// GameTotal aggregates all sessions of one game.
type GameTotal struct {
	Sessions int `json:"sessions"`
	Best     int `json:"best"`
	Avg      int `json:"avg"`
}

// Stats is the persisted aggregate snapshot.
type Stats struct {
	Streak     int                   `json:"streak"`
	LastPlayed *time.Time            `json:"lastPlayed"`
	Totals     map[GameKey]GameTotal `json:"totals"`
}

// NewStats returns a zeroed snapshot with all known game keys present.
func NewStats() Stats {
	totals := make(map[GameKey]GameTotal, len(GameKeys))
	for _, key := range GameKeys {
		totals[key] = GameTotal{}
	}
	return Stats{Totals: totals}
}

// Clone returns an independent copy of the snapshot.
func (s Stats) Clone() Stats {
	out := s
	out.Totals = make(map[GameKey]GameTotal, len(s.Totals))
	for key, total := range s.Totals {
		out.Totals[key] = total
	}
	if s.LastPlayed != nil {
		t := *s.LastPlayed
		out.LastPlayed = &t
	}
	return out
}

// StroopItem is a single word/ink trial. Immutable once generated.
type StroopItem struct {
	Word    string
	Ink     string
	IsMatch bool
}

// NBackItem is one element of the letter sequence.
type NBackItem struct {
	Char rune
}

// SessionRecord is one completed session in the store's log.
type SessionRecord struct {
	ID      int64
	Game    GameKey
	Score   int
	EndedAt time.Time
}

// ReportConfig defines filters and options for the plain stats report.
type ReportConfig struct {
	Game  GameKey
	Last  int
	Width int
}
