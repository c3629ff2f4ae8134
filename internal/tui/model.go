package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/breakeven/internal/editor"
	"github.com/muurk/breakeven/internal/logging"
)

// Model is the Bubble Tea model for the editor screen. All state lives in
// the Editor; the model only adds terminal size and rendering caches.
type Model struct {
	Editor *editor.Editor

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys keyMap

	chart      *chartRenderer
	savedLists []string
}

// NewModel creates the editor screen model
func NewModel(ed *editor.Editor) Model {
	width, height := GetTerminalSize()

	h := help.New()
	h.Width = width - 6 // Outer border and footer padding

	return Model{
		Editor: ed,
		Width:  width,
		Height: height,
		Help:   h,
		Keys:   newKeyMap(),
		chart:  newChartRenderer(),
	}
}

// Init loads the names of saved lists for the list-name hint
func (m Model) Init() tea.Cmd {
	return listSavesCmd(m.Editor)
}

type savedListsMsg struct {
	names []string
}

func listSavesCmd(ed *editor.Editor) tea.Cmd {
	return func() tea.Msg {
		names, err := ed.SavedLists()
		if err != nil {
			logging.Debug("Could not list saved lists", zap.Error(err))
		}
		return savedListsMsg{names: names}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width - 6
		return m, nil

	case savedListsMsg:
		m.savedLists = msg.names
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes one key press to the editor
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.Editor
	logging.LogKey(msg.String(), ed.Focused().String())

	switch {
	case key.Matches(msg, m.Keys.Quit):
		ed.Exit()
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Save):
		if _, err := ed.Save(); err == nil {
			return m, listSavesCmd(ed)
		}

	case key.Matches(msg, m.Keys.Load):
		_, _ = ed.Load()

	case key.Matches(msg, m.Keys.Next):
		ed.FocusNext()

	case key.Matches(msg, m.Keys.Prev):
		ed.FocusPrevious()

	case key.Matches(msg, m.Keys.Left):
		ed.MoveCursorLeft()

	case key.Matches(msg, m.Keys.Right):
		ed.MoveCursorRight()

	case key.Matches(msg, m.Keys.Delete):
		ed.DeleteChar()
		clearError(ed)

	case key.Matches(msg, m.Keys.Submit):
		_, _ = ed.Submit()

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		if msg.Alt {
			return m, nil
		}
		for _, r := range msg.Runes {
			ed.EnterChar(r)
		}
		clearError(ed)
	}

	if ed.Exited() {
		return m, tea.Quit
	}
	return m, nil
}

// clearError drops an error status once the user edits a field again
func clearError(ed *editor.Editor) {
	if ed.Status().Kind == editor.StatusError {
		ed.ClearStatus()
	}
}

// View renders the form and table on the left and the chart on the right
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	v := m.Editor.Snapshot()
	footer := m.Help.View(m.Keys)

	contentWidth := m.Width - 4
	contentHeight := ContentHeight(footer, m.Width, m.Height)
	if contentHeight < FieldBoxHeight {
		contentHeight = FieldBoxHeight
	}

	leftWidth := contentWidth * FormWidthPercent / 100
	rightWidth := contentWidth - leftWidth

	var left []string
	for _, f := range v.Fields {
		left = append(left, renderField(f, leftWidth))
	}
	left = append(left, m.renderStatus(v, leftWidth))

	// The table needs at least its two border rows
	if tableHeight := contentHeight - len(v.Fields)*FieldBoxHeight - 1; tableHeight >= 2 {
		left = append(left, renderTable(v.Devices, leftWidth, tableHeight))
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		m.chart.Render(v, rightWidth, contentHeight),
	)

	return RenderApplicationContainer(content, footer, m.Width, m.Height)
}

// renderField draws one input as a titled box. The focused field is red
// and shows its cursor.
func renderField(f editor.FieldView, width int) string {
	color, style := BlurColor, BlurredInputStyle
	if f.Focused {
		color, style = FocusColor, FocusedInputStyle
	}
	return RenderTitledBox(f.Title, f.Box.View(width-2, f.Focused, style), width, FieldBoxHeight, color)
}

// renderStatus shows the outcome of the last action, or the saved list
// names while the list-name field is focused.
func (m Model) renderStatus(v editor.View, width int) string {
	switch v.Status.Kind {
	case editor.StatusError:
		return StatusErrorStyle.Render(truncate("✗ "+v.Status.Text, width))
	case editor.StatusInfo:
		return StatusInfoStyle.Render(truncate("✓ "+v.Status.Text, width))
	}

	if v.Focused == editor.FieldListName && len(m.savedLists) > 0 {
		return AxisLabelStyle.Render(truncate("saved: "+strings.Join(m.savedLists, ", "), width))
	}
	return ""
}

// Run starts the full-screen editor and blocks until the user quits.
func Run(ed *editor.Editor, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(ed), opts...)
	_, err := p.Run()
	return err
}
