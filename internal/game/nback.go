package game

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/mindgym/internal/model"
)

const (
	nbackAlphabet      = "ABCDEFGH"
	nbackMaxSequence   = 50
	nbackMinDifficulty = 1
	nbackMaxDifficulty = 7
	nbackEscalateEvery = 10
)

// DefaultNBackEndIndex is the index at which a session ends.
const DefaultNBackEndIndex = 40

// NBack runs one 1-back session over a growing letter sequence. Every
// advance, whether driven by the tick timer or a manual response, goes
// through the same internal method; the engine is the single authority
// over the index, so a response and a tick can never double-advance.
type NBack struct {
	rnd        *rand.Rand
	difficulty int
	sequence   []model.NBackItem
	index      int
	hits       int
	miss       int
	endIndex   int
}

// NewNBack starts a session at the given difficulty (clamped to 1..7)
// with a single-letter sequence.
func NewNBack(startDifficulty, endIndex int) *NBack {
	return newNBack(rand.New(rand.NewSource(time.Now().UnixNano())), startDifficulty, endIndex)
}

func newNBack(rnd *rand.Rand, startDifficulty, endIndex int) *NBack {
	if endIndex <= 0 {
		endIndex = DefaultNBackEndIndex
	}
	n := &NBack{
		rnd:        rnd,
		difficulty: clampInt(startDifficulty, nbackMinDifficulty, nbackMaxDifficulty),
		endIndex:   endIndex,
	}
	n.sequence = append(n.sequence, n.randomItem())
	return n
}

// TickPeriod returns the stimulus interval for the current difficulty.
func (n *NBack) TickPeriod() time.Duration {
	ms := 1400 - n.difficulty*150
	if ms < 650 {
		ms = 650
	}
	return time.Duration(ms) * time.Millisecond
}

// Current returns the letter at the read index, if one exists. Past the
// sequence cap the index keeps advancing beyond the last element.
func (n *NBack) Current() (rune, bool) {
	if n.index < 0 || n.index >= len(n.sequence) {
		return 0, false
	}
	return n.sequence[n.index].Char, true
}

// Previous returns the letter one step behind the read index, if any.
func (n *NBack) Previous() (rune, bool) {
	if n.index <= 0 || n.index-1 >= len(n.sequence) {
		return 0, false
	}
	return n.sequence[n.index-1].Char, true
}

// Respond scores a match/different response against the previous letter
// and then advances the sequence.
func (n *NBack) Respond(saysMatch bool) bool {
	cur, curOK := n.Current()
	prev, prevOK := n.Previous()
	isMatch := curOK && prevOK && cur == prev
	correct := saysMatch == isMatch
	if correct {
		n.hits++
	} else {
		n.miss++
	}
	n.advance()
	return correct
}

// TickAdvance advances the sequence on a timer tick without a response.
func (n *NBack) TickAdvance() {
	n.advance()
}

func (n *NBack) advance() {
	if len(n.sequence) < nbackMaxSequence {
		n.sequence = append(n.sequence, n.randomItem())
	}
	n.index++
	if n.index%nbackEscalateEvery == 0 && n.difficulty < nbackMaxDifficulty {
		n.difficulty++
	}
}

// Done reports whether the session has reached its end index.
func (n *NBack) Done() bool {
	return n.index >= n.endIndex
}

// FinalScore applies the hits/miss score formula, floored at zero.
func (n *NBack) FinalScore() int {
	score := n.hits*2 - n.miss
	if score < 0 {
		return 0
	}
	return score
}

// Difficulty returns the current difficulty (1..7).
func (n *NBack) Difficulty() int {
	return n.difficulty
}

// Hits returns the count of correct responses.
func (n *NBack) Hits() int {
	return n.hits
}

// Miss returns the count of incorrect responses.
func (n *NBack) Miss() int {
	return n.miss
}

// Index returns the current read index.
func (n *NBack) Index() int {
	return n.index
}

func (n *NBack) randomItem() model.NBackItem {
	letters := []rune(nbackAlphabet)
	return model.NBackItem{Char: letters[n.rnd.Intn(len(letters))]}
}
