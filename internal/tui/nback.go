package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/mindgym/internal/game"
	"github.com/verte-zerg/mindgym/internal/model"
)

// nbackTickMsg advances the stimulus. The generation tag ties a tick to
// the schedule that produced it: responding restarts the schedule, and
// leaving the screen abandons it, so stale ticks are dropped instead of
// double-advancing the sequence.
type nbackTickMsg struct {
	gen int
}

type nbackSession struct {
	engine   *game.NBack
	lastMark string
}

func nbackTick(period time.Duration, gen int) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg {
		return nbackTickMsg{gen: gen}
	})
}

func (m *Model) beginNBack() tea.Cmd {
	m.nback = &nbackSession{
		engine: game.NewNBack(m.cfg.NBackStartDifficulty, m.cfg.NBackEndIndex),
	}
	m.nbackGen++
	m.screen = screenNBack
	return nbackTick(m.nback.engine.TickPeriod(), m.nbackGen)
}

func (m *Model) handleNBackTick(msg nbackTickMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenNBack || m.nback == nil || msg.gen != m.nbackGen {
		return m, nil
	}
	m.nback.engine.TickAdvance()
	if m.nback.engine.Done() {
		m.finishSession(model.GameNBack, m.nback.engine.FinalScore())
		return m, nil
	}
	return m, nbackTick(m.nback.engine.TickPeriod(), m.nbackGen)
}

func (m *Model) handleNBackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "m", "left":
		return m.respondNBack(true)
	case "d", "right":
		return m.respondNBack(false)
	case "esc":
		// Abandon without recording; the pending tick dies with the
		// generation bump in goHome.
		m.goHome()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) respondNBack(saysMatch bool) (tea.Model, tea.Cmd) {
	s := m.nback
	if s.engine.Respond(saysMatch) {
		s.lastMark = accentStyle.Render("hit")
	} else {
		s.lastMark = urgentStyle.Render("miss")
	}
	if s.engine.Done() {
		m.finishSession(model.GameNBack, s.engine.FinalScore())
		return m, nil
	}
	// The response already advanced the sequence, so restart the tick
	// schedule; the old one is orphaned by the generation bump.
	m.nbackGen++
	return m, nbackTick(s.engine.TickPeriod(), m.nbackGen)
}

func (m *Model) viewNBack() string {
	s := m.nback
	if s == nil {
		return ""
	}
	current := ""
	if ch, ok := s.engine.Current(); ok {
		current = string(ch)
	}
	card := cardStyle.Render(strings.Join([]string{
		mutedStyle.Render("Current"),
		valueStyle.Render(current),
	}, "\n"))

	counts := fmt.Sprintf("hits %d · miss %d", s.engine.Hits(), s.engine.Miss())
	lines := []string{
		titleStyle.Render("1-Back Memory"),
		mutedStyle.Render(fmt.Sprintf("Difficulty %d · stimulus %d/%d", s.engine.Difficulty(), s.engine.Index(), m.cfg.NBackEndIndex)),
		card,
		valueStyle.Render(counts),
	}
	if s.lastMark != "" {
		lines = append(lines, s.lastMark)
	}
	lines = append(lines, footerStyle.Render("m/left match · d/right different · esc leave"))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
