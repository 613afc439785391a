package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/mindgym/internal/game"
	"github.com/verte-zerg/mindgym/internal/model"
)

const (
	urgentSeconds = 10
	timerInterval = time.Second
)

type stroopSession struct {
	engine   *game.Stroop
	timer    timer.Model
	lastMark string
}

func (m *Model) beginStroop() tea.Cmd {
	m.stroop = &stroopSession{
		engine: game.NewStroop(m.cfg.StroopStartDifficulty),
		timer:  timer.NewWithInterval(m.cfg.StroopDuration, timerInterval),
	}
	m.screen = screenStroop
	return m.stroop.timer.Init()
}

// updateStroop routes timer messages. A timer from an ended session keeps
// its own ID, so stale ticks cannot move the new countdown.
func (m *Model) updateStroop(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(timer.TimeoutMsg); ok {
		m.finishSession(model.GameStroop, m.stroop.engine.FinalScore())
		return m, nil
	}
	var cmd tea.Cmd
	m.stroop.timer, cmd = m.stroop.timer.Update(msg)
	return m, cmd
}

func (m *Model) handleStroopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.stroop
	switch msg.String() {
	case "y", "left":
		s.answer(true)
		return m, nil
	case "n", "right":
		s.answer(false)
		return m, nil
	case "esc":
		// End the session early; the score so far still counts.
		m.finishSession(model.GameStroop, s.engine.FinalScore())
		return m, nil
	default:
		return m, nil
	}
}

func (s *stroopSession) answer(saysMatch bool) {
	if s.engine.Answer(saysMatch) {
		s.lastMark = accentStyle.Render("correct")
	} else {
		s.lastMark = urgentStyle.Render("wrong")
	}
}

func (m *Model) viewStroop() string {
	s := m.stroop
	if s == nil {
		return ""
	}
	secs := int(s.timer.Timeout.Seconds())
	timeLine := valueStyle.Render(fmt.Sprintf("%ds", secs))
	if secs < urgentSeconds {
		timeLine = urgentStyle.Render(fmt.Sprintf("%ds", secs))
	}

	item := s.engine.Item()
	word := lipgloss.NewStyle().
		Foreground(lipgloss.Color(item.Ink)).
		Bold(true).
		Render(item.Word)

	card := cardStyle.Render(strings.Join([]string{
		mutedStyle.Render(fmt.Sprintf("Round %d · difficulty %d", s.engine.Round(), s.engine.Difficulty())),
		word,
		mutedStyle.Render("Does the ink color match the word?"),
	}, "\n"))

	lines := []string{
		titleStyle.Render("Stroop Focus"),
		mutedStyle.Render("Time left"),
		timeLine,
		card,
		mutedStyle.Render("Score"),
		valueStyle.Render(fmt.Sprintf("%d", s.engine.FinalScore())),
	}
	if s.lastMark != "" {
		lines = append(lines, s.lastMark)
	}
	lines = append(lines, footerStyle.Render("y/left yes · n/right no · esc end session"))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
