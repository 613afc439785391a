package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/mindgym/internal/game"
	"github.com/verte-zerg/mindgym/internal/model"
	statsPkg "github.com/verte-zerg/mindgym/internal/stats"
)

type screen int

const (
	screenHome screen = iota
	screenStroop
	screenNBack
	screenResults
	screenStats
)

// Start selects the screen shown when the program launches.
type Start int

// Launch targets for NewModel.
const (
	StartHome Start = iota
	StartStroop
	StartNBack
	StartStats
)

// Config defines session settings for the TUI.
type Config struct {
	StroopDuration        time.Duration
	StroopStartDifficulty int
	NBackEndIndex         int
	NBackStartDifficulty  int
}

// Model implements the Bubble Tea game UI: one routed model covering the
// home menu, both games, the results screen, and the stats screen.
type Model struct {
	cfg   Config
	stats *statsPkg.Store

	snapshot model.Stats
	subID    int

	width  int
	height int

	screen    screen
	menuIndex int

	stroop   *stroopSession
	nback    *nbackSession
	nbackGen int
	result   resultView
	stat     statsView

	startCmd tea.Cmd
}

// NewModel constructs the game UI model starting at the given screen.
func NewModel(st *statsPkg.Store, cfg Config, start Start) *Model {
	if cfg.StroopDuration <= 0 {
		cfg.StroopDuration = game.DefaultStroopDuration
	}
	if cfg.StroopStartDifficulty <= 0 {
		cfg.StroopStartDifficulty = 1
	}
	if cfg.NBackEndIndex <= 0 {
		cfg.NBackEndIndex = game.DefaultNBackEndIndex
	}
	if cfg.NBackStartDifficulty <= 0 {
		cfg.NBackStartDifficulty = 1
	}
	m := &Model{
		cfg:   cfg,
		stats: st,
		stat:  newStatsView(),
	}
	m.snapshot = st.Snapshot()
	m.subID = st.Subscribe(func() {
		m.snapshot = m.stats.Snapshot()
		m.stat.setSnapshot(m.snapshot)
	})
	m.stat.setSnapshot(m.snapshot)

	switch start {
	case StartStroop:
		m.startCmd = m.beginStroop()
	case StartNBack:
		m.startCmd = m.beginNBack()
	case StartStats:
		m.screen = screenStats
	default:
		m.screen = screenHome
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.startCmd
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.stat.setSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		return m.handleKey(msg)
	case timer.TickMsg, timer.TimeoutMsg:
		if m.screen == screenStroop && m.stroop != nil {
			return m.updateStroop(msg)
		}
		return m, nil
	case nbackTickMsg:
		return m.handleNBackTick(msg)
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.screen {
	case screenHome:
		content = m.viewHome()
	case screenStroop:
		content = m.viewStroop()
	case screenNBack:
		content = m.viewNBack()
	case screenResults:
		content = m.viewResults()
	case screenStats:
		content = m.viewStats()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenHome:
		return m.handleHomeKey(msg)
	case screenStroop:
		return m.handleStroopKey(msg)
	case screenNBack:
		return m.handleNBackKey(msg)
	case screenResults:
		return m.handleResultsKey(msg)
	case screenStats:
		return m.handleStatsKey(msg)
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.stats.Unsubscribe(m.subID)
	return m, tea.Quit
}

// goHome leaves whatever screen is active. Dropping the session pointers
// and bumping the nback generation invalidates any in-flight tick.
func (m *Model) goHome() {
	m.stroop = nil
	m.nback = nil
	m.nbackGen++
	m.screen = screenHome
}

func (m *Model) finishSession(key model.GameKey, score int) {
	m.stats.UpdateGame(context.Background(), key, score)
	m.result = resultView{game: key, score: score}
	m.stroop = nil
	m.nback = nil
	m.nbackGen++
	m.screen = screenResults
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 48
	}
	w := int(float64(m.width) * 0.70)
	if w < 24 {
		w = 24
	}
	return w
}
