package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/verte-zerg/mindgym/internal/model"
)

func fixedNBack(letters string, index int) *NBack {
	n := newNBack(rand.New(rand.NewSource(1)), 1, DefaultNBackEndIndex)
	n.sequence = n.sequence[:0]
	for _, ch := range letters {
		n.sequence = append(n.sequence, model.NBackItem{Char: ch})
	}
	n.index = index
	return n
}

func TestNBackRespondOnRepeat(t *testing.T) {
	n := fixedNBack("AA", 1)
	if !n.Respond(true) {
		t.Fatalf("expected match response on [A,A] to be correct")
	}
	if n.Hits() != 1 || n.Miss() != 0 {
		t.Fatalf("expected hits=1 miss=0, got hits=%d miss=%d", n.Hits(), n.Miss())
	}

	n = fixedNBack("AA", 1)
	if n.Respond(false) {
		t.Fatalf("expected different response on [A,A] to be incorrect")
	}
	if n.Hits() != 0 || n.Miss() != 1 {
		t.Fatalf("expected hits=0 miss=1, got hits=%d miss=%d", n.Hits(), n.Miss())
	}
}

func TestNBackRespondOnChange(t *testing.T) {
	n := fixedNBack("AB", 1)
	if !n.Respond(false) {
		t.Fatalf("expected different response on [A,B] to be correct")
	}
	if n.Hits() != 1 {
		t.Fatalf("expected hit, got hits=%d miss=%d", n.Hits(), n.Miss())
	}
}

func TestNBackRespondAtStart(t *testing.T) {
	// Index 0 has no previous element; a match claim cannot be correct.
	n := fixedNBack("A", 0)
	if n.Respond(true) {
		t.Fatalf("expected match response with no previous element to be incorrect")
	}
}

func TestNBackFinalScore(t *testing.T) {
	cases := []struct {
		hits, miss, want int
	}{
		{10, 3, 17},
		{0, 0, 0},
		{1, 5, 0},
		{5, 10, 0},
	}
	for _, tc := range cases {
		n := newNBack(rand.New(rand.NewSource(1)), 1, DefaultNBackEndIndex)
		n.hits = tc.hits
		n.miss = tc.miss
		if got := n.FinalScore(); got != tc.want {
			t.Fatalf("hits=%d miss=%d: expected score %d, got %d", tc.hits, tc.miss, tc.want, got)
		}
	}
}

func TestNBackTickPeriod(t *testing.T) {
	cases := []struct {
		difficulty int
		want       time.Duration
	}{
		{1, 1250 * time.Millisecond},
		{2, 1100 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{5, 650 * time.Millisecond},
		{7, 650 * time.Millisecond},
	}
	for _, tc := range cases {
		n := newNBack(rand.New(rand.NewSource(1)), tc.difficulty, DefaultNBackEndIndex)
		if got := n.TickPeriod(); got != tc.want {
			t.Fatalf("difficulty %d: expected period %s, got %s", tc.difficulty, tc.want, got)
		}
	}
}

func TestNBackSequenceCapped(t *testing.T) {
	n := newNBack(rand.New(rand.NewSource(2)), 1, 200)
	for i := 0; i < 80; i++ {
		n.TickAdvance()
	}
	if len(n.sequence) != 50 {
		t.Fatalf("expected sequence capped at 50, got %d", len(n.sequence))
	}
	if n.Index() != 80 {
		t.Fatalf("expected index to keep advancing, got %d", n.Index())
	}
	if _, ok := n.Current(); ok {
		t.Fatalf("expected no current letter past the sequence end")
	}
}

func TestNBackDifficultyEscalatesEveryTenAdvances(t *testing.T) {
	n := newNBack(rand.New(rand.NewSource(3)), 1, 200)
	for i := 1; i <= 100; i++ {
		n.TickAdvance()
		want := 1 + i/10
		if want > 7 {
			want = 7
		}
		if n.Difficulty() != want {
			t.Fatalf("after %d advances: expected difficulty %d, got %d", i, want, n.Difficulty())
		}
	}
}

func TestNBackDoneAtEndIndex(t *testing.T) {
	n := newNBack(rand.New(rand.NewSource(4)), 1, DefaultNBackEndIndex)
	for i := 0; i < DefaultNBackEndIndex-1; i++ {
		n.TickAdvance()
		if n.Done() {
			t.Fatalf("unexpected done at index %d", n.Index())
		}
	}
	n.TickAdvance()
	if !n.Done() {
		t.Fatalf("expected done at index %d", n.Index())
	}
}

func TestNBackAlphabet(t *testing.T) {
	n := newNBack(rand.New(rand.NewSource(5)), 1, 200)
	for i := 0; i < 60; i++ {
		n.TickAdvance()
	}
	for _, item := range n.sequence {
		if item.Char < 'A' || item.Char > 'H' {
			t.Fatalf("letter %q outside alphabet", item.Char)
		}
	}
}
