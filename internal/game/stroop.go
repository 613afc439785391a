// Package game implements the trial generators and session scoring.
package game

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/mindgym/internal/model"
)

// Color pairs a display name with its canonical hex value.
type Color struct {
	Name string
	Hex  string
}

// Palette is the four-color set Stroop trials draw from.
var Palette = []Color{
	{Name: "RED", Hex: "#ff5b5b"},
	{Name: "GREEN", Hex: "#5bff88"},
	{Name: "BLUE", Hex: "#5b8cff"},
	{Name: "YELLOW", Hex: "#ffd95b"},
}

const (
	stroopMinDifficulty = 1
	stroopMaxDifficulty = 5
	stroopEscalateEvery = 6
)

// DefaultStroopDuration is the session countdown length.
const DefaultStroopDuration = 45 * time.Second

// Stroop runs one Stroop session: it generates trials with a
// difficulty-scaled forced-match probability and accumulates the score.
type Stroop struct {
	rnd        *rand.Rand
	difficulty int
	answered   int
	score      int
	item       model.StroopItem
}

// NewStroop starts a session at the given difficulty (clamped to 1..5)
// with the first trial already generated.
func NewStroop(startDifficulty int) *Stroop {
	return newStroop(rand.New(rand.NewSource(time.Now().UnixNano())), startDifficulty)
}

func newStroop(rnd *rand.Rand, startDifficulty int) *Stroop {
	s := &Stroop{rnd: rnd, difficulty: clampInt(startDifficulty, stroopMinDifficulty, stroopMaxDifficulty)}
	s.item = s.generateItem()
	return s
}

// MatchProbability returns the forced-match probability for a difficulty.
func MatchProbability(difficulty int) float64 {
	p := 0.2 + float64(difficulty)*0.1
	if p > 0.8 {
		return 0.8
	}
	return p
}

// ScoreStroop reports whether the response matches the trial.
func ScoreStroop(item model.StroopItem, saysMatch bool) bool {
	return saysMatch == item.IsMatch
}

// Item returns the current trial.
func (s *Stroop) Item() model.StroopItem {
	return s.item
}

// Answer scores a yes/no response against the current trial, steps the
// difficulty every sixth answered round, and generates the next trial.
func (s *Stroop) Answer(saysMatch bool) bool {
	correct := ScoreStroop(s.item, saysMatch)
	if correct {
		s.score++
	}
	s.answered++
	if s.answered%stroopEscalateEvery == 0 && s.difficulty < stroopMaxDifficulty {
		s.difficulty++
	}
	s.item = s.generateItem()
	return correct
}

// Difficulty returns the current difficulty (1..5).
func (s *Stroop) Difficulty() int {
	return s.difficulty
}

// Round returns the 1-based number of the trial on display.
func (s *Stroop) Round() int {
	return s.answered + 1
}

// FinalScore returns the accumulated correct-answer count.
func (s *Stroop) FinalScore() int {
	return s.score
}

// generateItem draws word and ink independently, then forces a match
// with the difficulty-scaled probability. An unforced draw may still
// match coincidentally; isMatch is whatever the comparison yields.
func (s *Stroop) generateItem() model.StroopItem {
	word := Palette[s.rnd.Intn(len(Palette))]
	ink := Palette[s.rnd.Intn(len(Palette))].Hex
	if s.rnd.Float64() < MatchProbability(s.difficulty) {
		ink = word.Hex
	}
	return model.StroopItem{
		Word:    word.Name,
		Ink:     ink,
		IsMatch: ink == word.Hex,
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
