package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/pinyin-match/internal/config"
	"github.com/vovakirdan/pinyin-match/internal/core"
	"github.com/vovakirdan/pinyin-match/internal/games/pinyin"
)

// Game IDs offered by the menu.
const (
	campaignID = "pinyin"
	endlessID  = "pinyin_endless"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// menuOption is one line of the main menu.
type menuOption int

const (
	optionCampaign menuOption = iota
	optionEndless
	optionSelectLevel
	optionScores
	optionQuit
)

var menuOptions = []string{
	"Campaign",
	"Endless Mode",
	"Select Level...",
	"High Scores",
	"Quit",
}

// MenuModel lets users choose a mode and starting level.
type MenuModel struct {
	levels        []config.LevelConfig
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper

	selected       *MenuResult
	quitting       bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		levels:    pinyin.Levels(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuOptions)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		switch menuOption(m.cursor) {
		case optionCampaign:
			m.selected = &MenuResult{GameID: campaignID}
			return m, tea.Quit
		case optionEndless:
			m.selected = &MenuResult{GameID: endlessID}
			return m, tea.Quit
		case optionSelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case optionScores:
			m.openScoreboard = true
			return m, tea.Quit
		case optionQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = &MenuResult{GameID: campaignID, Level: m.levelCursor + 1}
			return m, tea.Quit
		}
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m MenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("拼 音  P I N Y I N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Match tiles that sound the same", m.width))
	b.WriteString("\n\n")

	for i, opt := range menuOptions {
		line := "  " + opt
		if i == m.cursor {
			line = menuCurStyle.Render("> " + opt)
		}
		if menuOption(i) == optionCampaign {
			line += fmt.Sprintf(" (%d levels)", len(m.levels))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %s (Target: %d, Moves: %d)", cursor, i+1, lvl.Name, lvl.Target, lvl.Moves)
		if i == m.levelCursor {
			line = menuCurStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.levelCursor < len(m.levels) {
		b.WriteString("\n")
		b.WriteString(centerText(levelPreview(m.levels[m.levelCursor]), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// levelPreview lists the characters of a level grouped by sound.
func levelPreview(lvl config.LevelConfig) string {
	var groups []string
	for _, sound := range lvl.Sounds() {
		var chars string
		for _, c := range lvl.Characters {
			if c.Pinyin == sound {
				chars += c.Hanzi
			}
		}
		groups = append(groups, sound+" "+chars)
	}
	return strings.Join(groups, "  ")
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *MenuResult {
	return m.selected
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

// centerText centers text within given width, measuring display cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// truncate shortens text to at most width display cells.
func truncate(text string, width int) string {
	return runewidth.Truncate(text, width, ".")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           int // 0 = start from the beginning
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
		result.Level = m.Selected().Level
	default:
		result.Quit = true
	}

	return result, nil
}
