package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/verte-zerg/mindgym/internal/model"
)

func TestMatchProbability(t *testing.T) {
	cases := []struct {
		difficulty int
		want       float64
	}{
		{1, 0.3},
		{2, 0.4},
		{3, 0.5},
		{4, 0.6},
		{5, 0.7},
		{6, 0.8},
		{9, 0.8},
	}
	for _, tc := range cases {
		got := MatchProbability(tc.difficulty)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("difficulty %d: expected %.2f, got %.2f", tc.difficulty, tc.want, got)
		}
	}
}

func TestStroopMatchRateConverges(t *testing.T) {
	const trials = 50000
	for difficulty := 1; difficulty <= 5; difficulty++ {
		s := newStroop(rand.New(rand.NewSource(int64(difficulty))), difficulty)
		matches := 0
		for i := 0; i < trials; i++ {
			if s.generateItem().IsMatch {
				matches++
			}
		}
		// Unforced draws still match 1-in-4 by coincidence.
		forced := MatchProbability(difficulty)
		want := forced + (1-forced)*0.25
		got := float64(matches) / trials
		if math.Abs(got-want) > 0.02 {
			t.Fatalf("difficulty %d: match rate %.3f, expected %.3f within 0.02", difficulty, got, want)
		}
	}
}

func TestStroopItemConsistency(t *testing.T) {
	s := newStroop(rand.New(rand.NewSource(7)), 3)
	hexByName := map[string]string{}
	for _, c := range Palette {
		hexByName[c.Name] = c.Hex
	}
	for i := 0; i < 1000; i++ {
		item := s.generateItem()
		canonical, ok := hexByName[item.Word]
		if !ok {
			t.Fatalf("unknown word %q", item.Word)
		}
		if item.IsMatch != (item.Ink == canonical) {
			t.Fatalf("isMatch inconsistent for %+v", item)
		}
	}
}

func TestScoreStroop(t *testing.T) {
	match := model.StroopItem{Word: "RED", Ink: "#ff5b5b", IsMatch: true}
	mismatch := model.StroopItem{Word: "RED", Ink: "#5b8cff", IsMatch: false}
	if !ScoreStroop(match, true) {
		t.Fatalf("expected yes on a match to be correct")
	}
	if ScoreStroop(match, false) {
		t.Fatalf("expected no on a match to be incorrect")
	}
	if !ScoreStroop(mismatch, false) {
		t.Fatalf("expected no on a mismatch to be correct")
	}
	if ScoreStroop(mismatch, true) {
		t.Fatalf("expected yes on a mismatch to be incorrect")
	}
}

func TestStroopDifficultyEscalatesEverySixRounds(t *testing.T) {
	s := newStroop(rand.New(rand.NewSource(11)), 1)
	for round := 1; round <= 60; round++ {
		s.Answer(true)
		want := 1 + round/6
		if want > 5 {
			want = 5
		}
		if s.Difficulty() != want {
			t.Fatalf("after %d rounds: expected difficulty %d, got %d", round, want, s.Difficulty())
		}
	}
}

func TestStroopScoreCountsCorrectAnswers(t *testing.T) {
	s := newStroop(rand.New(rand.NewSource(3)), 2)
	correct := 0
	for i := 0; i < 40; i++ {
		saysMatch := i%3 == 0
		expected := ScoreStroop(s.Item(), saysMatch)
		got := s.Answer(saysMatch)
		if got != expected {
			t.Fatalf("answer %d: expected correct=%v, got %v", i, expected, got)
		}
		if got {
			correct++
		}
	}
	if s.FinalScore() != correct {
		t.Fatalf("expected final score %d, got %d", correct, s.FinalScore())
	}
}

func TestStroopStartDifficultyClamped(t *testing.T) {
	if d := NewStroop(0).Difficulty(); d != 1 {
		t.Fatalf("expected difficulty clamped to 1, got %d", d)
	}
	if d := NewStroop(9).Difficulty(); d != 5 {
		t.Fatalf("expected difficulty clamped to 5, got %d", d)
	}
}
