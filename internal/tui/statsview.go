package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/mindgym/internal/model"
)

type statsView struct {
	snapshot model.Stats
	table    table.Model
	vp       viewport.Model
}

func newStatsView() statsView {
	columns := []table.Column{
		{Title: "Game", Width: 16},
		{Title: "Sessions", Width: 9},
		{Title: "Best", Width: 6},
		{Title: "Avg", Width: 6},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(len(model.GameKeys)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#8C8C8C")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	t.SetStyles(styles)

	return statsView{table: t, vp: viewport.New(0, 0)}
}

func (v *statsView) setSnapshot(snapshot model.Stats) {
	v.snapshot = snapshot
	rows := make([]table.Row, 0, len(model.GameKeys))
	for _, key := range model.GameKeys {
		total := snapshot.Totals[key]
		rows = append(rows, table.Row{
			key.Label(),
			fmt.Sprintf("%d", total.Sessions),
			fmt.Sprintf("%d", total.Best),
			fmt.Sprintf("%d", total.Avg),
		})
	}
	v.table.SetRows(rows)
	v.refreshContent()
}

func (v *statsView) setSize(width, height int) {
	v.vp.Width = width
	bodyHeight := height - 4
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	v.vp.Height = bodyHeight
	v.refreshContent()
}

func (v *statsView) refreshContent() {
	lastPlayed := "never"
	if v.snapshot.LastPlayed != nil {
		lastPlayed = v.snapshot.LastPlayed.Format(time.DateTime)
	}
	card := cardStyle.Render(strings.Join([]string{
		mutedStyle.Render("Streak"),
		valueStyle.Render(fmt.Sprintf("%d days", v.snapshot.Streak)),
		footerStyle.Render("Last played: " + lastPlayed),
	}, "\n"))
	content := lipgloss.JoinVertical(lipgloss.Left, card, "", v.table.View())
	v.vp.SetContent(content)
}

func (m *Model) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "h":
		m.goHome()
		return m, nil
	case "q":
		return m.quit()
	default:
		var tableCmd, vpCmd tea.Cmd
		m.stat.table, tableCmd = m.stat.table.Update(msg)
		m.stat.vp, vpCmd = m.stat.vp.Update(msg)
		m.stat.refreshContent()
		return m, tea.Batch(tableCmd, vpCmd)
	}
}

func (m *Model) viewStats() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Your Stats"),
		m.stat.vp.View(),
		footerStyle.Render("up/down select · esc home · q quit"),
	)
}
