package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const homeTips = "Aim for 2-3 short sessions daily. Difficulty adapts as you score higher. Take breaks - quality over grind."

var menuEntries = []string{
	"Stroop Focus Test - speed & inhibition",
	"1-Back Memory - working memory",
	"Stats & Progress",
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "up", "k":
		m.menuIndex = (m.menuIndex + len(menuEntries) - 1) % len(menuEntries)
		return m, nil
	case "down", "j":
		m.menuIndex = (m.menuIndex + 1) % len(menuEntries)
		return m, nil
	case "enter":
		switch m.menuIndex {
		case 0:
			return m, m.beginStroop()
		case 1:
			return m, m.beginNBack()
		default:
			m.screen = screenStats
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) viewHome() string {
	width := m.contentWidth()

	streak := cardStyle.Render(strings.Join([]string{
		mutedStyle.Render("Daily streak"),
		valueStyle.Render(fmt.Sprintf("%d days", m.snapshot.Streak)),
		footerStyle.Render(wrapText("Keep your streak by completing any game each day.", width-6)),
	}, "\n"))

	items := make([]string, 0, len(menuEntries))
	for i, entry := range menuEntries {
		if i == m.menuIndex {
			items = append(items, selectedItemStyle.Render(entry))
		} else {
			items = append(items, itemStyle.Render(entry))
		}
	}

	sections := []string{
		titleStyle.Render("MindGym"),
		streak,
		mutedStyle.Render("Daily Workout"),
		strings.Join(items, "\n"),
		mutedStyle.Render("Tips"),
		footerStyle.Render(wrapText(homeTips, width)),
		footerStyle.Render("up/down move · enter select · q quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
