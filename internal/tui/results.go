package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/mindgym/internal/model"
)

type resultView struct {
	game  model.GameKey
	score int
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "h":
		m.goHome()
		return m, nil
	case "r":
		switch m.result.game {
		case model.GameStroop:
			return m, m.beginStroop()
		case model.GameNBack:
			return m, m.beginNBack()
		}
		return m, nil
	case "s":
		m.screen = screenStats
		return m, nil
	case "q":
		return m.quit()
	default:
		return m, nil
	}
}

func (m *Model) viewResults() string {
	card := cardStyle.Render(strings.Join([]string{
		mutedStyle.Render("Completed"),
		valueStyle.Render(m.result.game.Label()),
		mutedStyle.Render("Score"),
		valueStyle.Render(fmt.Sprintf("%d", m.result.score)),
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Great work!"),
		card,
		footerStyle.Render("enter home · r play again · s stats · q quit"),
	)
}
