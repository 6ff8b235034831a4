package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/engine"
)

// Selection is the round length and difficulty chosen in the setup menu.
type Selection struct {
	Duration   int
	Difficulty config.Difficulty
}

var _ engine.Selector = Selection{}

// SelectedDuration implements engine.Selector.
func (s Selection) SelectedDuration() int { return s.Duration }

// SelectedDifficulty implements engine.Selector.
func (s Selection) SelectedDifficulty() config.Difficulty { return s.Difficulty }

// Setup menu rows.
const (
	rowStart = iota
	rowDuration
	rowDifficulty
	rowScores
	rowQuit
	rowCount
)

var menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// MenuModel is the setup screen shown before each round.
type MenuModel struct {
	cursor    int
	durations []int
	durIdx    int
	diffIdx   int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates the setup menu. durations are the offered round
// lengths; sel preselects the initial choice.
func NewMenuModel(durations []int, sel Selection, cfg core.RuntimeConfig) MenuModel {
	if len(durations) == 0 {
		durations = []int{sel.Duration}
	}
	durations = slices.Clone(durations)
	if sel.Duration > 0 && !slices.Contains(durations, sel.Duration) {
		durations = append(durations, sel.Duration)
		slices.Sort(durations)
	}

	m := MenuModel{
		durations: durations,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if i := slices.Index(durations, sel.Duration); i >= 0 {
		m.durIdx = i
	}
	if i := slices.Index(config.Difficulties(), sel.Difficulty); i >= 0 {
		m.diffIdx = i
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.change(-1)

	case MenuActionRight:
		m.change(1)

	case MenuActionSelect:
		switch m.cursor {
		case rowStart:
			m.started = true
			return m, tea.Quit
		case rowDuration, rowDifficulty:
			m.change(1)
		case rowScores:
			m.openScoreboard = true
			return m, tea.Quit
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// change steps the option under the cursor, wrapping at either end.
func (m *MenuModel) change(delta int) {
	switch m.cursor {
	case rowDuration:
		m.durIdx = wrap(m.durIdx+delta, len(m.durations))
	case rowDifficulty:
		m.diffIdx = wrap(m.diffIdx+delta, len(config.Difficulties()))
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("W H A C K - A - M O L E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Whack the moles, leave the plants alone", m.width))
	b.WriteString("\n\n")

	sel := m.Selection()
	rows := []string{
		"Start",
		fmt.Sprintf("Duration:   < %ds >", sel.Duration),
		fmt.Sprintf("Difficulty: < %s >", sel.Difficulty.Title()),
		"High Scores",
		"Quit",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selection returns the options currently chosen.
func (m MenuModel) Selection() Selection {
	return Selection{
		Duration:   m.durations[m.durIdx],
		Difficulty: config.Difficulties()[m.diffIdx],
	}
}

// Started returns true if the user chose to start a round.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the setup menu and returns the choice.
func RunMenu(durations []int, sel Selection, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(durations, sel, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Selection: sel, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Selection: sel, Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Selection: m.Selection(),
		Config:    m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), !m.Started():
		result.Quit = true
	}

	return result, nil
}
