package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

type settingsRow int

const (
	rowDifficulty settingsRow = iota
	rowSound
	rowGridLines
	rowResetStats
	rowBack
	settingsRowCount
)

// SettingsModel edits the saved settings. Every change is stored at once.
type SettingsModel struct {
	session    Session
	settings   storage.Settings
	cursor     settingsRow
	confirming bool // Reset stats asked once, waiting for a second select
	status     string
	width      int
	height     int
	keyMapper  *KeyMapper
	quitting   bool
	back       bool
}

// NewSettingsModel creates the settings screen.
func NewSettingsModel(sess Session, width, height int) SettingsModel {
	return SettingsModel{
		session:   sess,
		settings:  sess.Settings(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SettingsModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	if action != MenuActionSelect {
		m.confirming = false
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < settingsRowCount-1 {
			m.cursor++
		}
	case MenuActionLeft, MenuActionRight:
		m.change(action == MenuActionLeft)
	case MenuActionSelect:
		switch m.cursor {
		case rowBack:
			m.back = true
			return m, tea.Quit
		case rowResetStats:
			m.resetStats()
		default:
			m.change(false)
		}
	}

	return m, nil
}

// change adjusts the value under the cursor and saves it.
func (m *SettingsModel) change(backwards bool) {
	switch m.cursor {
	case rowDifficulty:
		current, err := config.ParseDifficulty(m.settings.Difficulty)
		if err != nil {
			current = config.DefaultDifficulty
		}
		next := current.Next()
		if backwards {
			// Three presets: two steps forward is one step back.
			next = next.Next()
		}
		m.settings.Difficulty = string(next)
	case rowSound:
		m.settings.SoundEnabled = !m.settings.SoundEnabled
	case rowGridLines:
		m.settings.GridLinesEnabled = !m.settings.GridLinesEnabled
	default:
		return
	}

	m.session.Records(settingsOwner).SaveSettings(m.settings)
	m.status = "Saved"
}

func (m *SettingsModel) resetStats() {
	if !m.confirming {
		m.confirming = true
		m.status = "Press Enter again to erase all records"
		return
	}

	m.confirming = false
	for _, g := range registry.List() {
		m.session.Records(g.ID).ResetAllStats()
		if m.session.Store != nil {
			if err := m.session.Store.ClearScores(g.ID); err != nil {
				m.session.logger().Error("failed to clear scores", "game", g.ID, "err", err)
			}
		}
	}
	m.status = "All records erased"
}

// View renders the settings list.
func (m SettingsModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S E T T I N G S", m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Difficulty   < %s >", m.settings.Difficulty),
		fmt.Sprintf("Sound        %s", onOff(m.settings.SoundEnabled)),
		fmt.Sprintf("Grid lines   %s", onOff(m.settings.GridLinesEnabled)),
		"Reset stats",
		"Back",
	}

	for i, row := range rows {
		cursor := "  "
		if settingsRow(i) == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-22s", cursor, row), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		b.WriteString(centerText(statusStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText("Left/Right: Change  |  Enter: Toggle  |  Esc: Back", m.width))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Settings returns the edited settings.
func (m SettingsModel) Settings() storage.Settings {
	return m.settings
}

// IsQuitting returns true if user wants to quit.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// RunSettings runs the settings screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunSettings(sess Session, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewSettingsModel(sess, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(SettingsModel)
	if !ok {
		return false, nil
	}
	return !m.IsQuitting(), nil
}
