package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/breakeven/internal/device"
	"github.com/muurk/breakeven/internal/editor"
	"github.com/muurk/breakeven/internal/store"
	"github.com/muurk/breakeven/internal/textbox"
)

func newTestEditor(t *testing.T) *editor.Editor {
	t.Helper()
	return editor.New(editor.Options{
		Colors: device.FixedColor{},
		Store:  store.New(filepath.Join(t.TempDir(), "saves")),
	})
}

// submitDevice fills the form directly and submits it
func submitDevice(t *testing.T, ed *editor.Editor, rate, cost, watts, name string) {
	t.Helper()
	ed.SetValue(editor.FieldElectricityRate, rate)
	ed.SetValue(editor.FieldInitialCost, cost)
	ed.SetValue(editor.FieldWattage, watts)
	ed.SetValue(editor.FieldName, name)
	outcome, err := ed.Submit()
	require.NoError(t, err)
	require.Equal(t, editor.OutcomeAdded, outcome)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(newTestEditor(t))
	m.Width = 100
	m.Height = 30
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestUpdate_TypingGoesToFocusedField(t *testing.T) {
	m := newTestModel(t)

	m = typeText(t, m, "4")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "20")

	assert.Equal(t, "4", m.Editor.Value(editor.FieldElectricityRate))
	assert.Equal(t, "20", m.Editor.Value(editor.FieldInitialCost))
	assert.Equal(t, editor.FieldInitialCost, m.Editor.Focused())
}

func TestUpdate_FocusKeys(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		msg  tea.KeyMsg
		want editor.Field
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, editor.FieldInitialCost},
		{tea.KeyMsg{Type: tea.KeyTab}, editor.FieldWattage},
		{tea.KeyMsg{Type: tea.KeyUp}, editor.FieldInitialCost},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, editor.FieldElectricityRate},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, editor.FieldListName},
		{tea.KeyMsg{Type: tea.KeyTab}, editor.FieldElectricityRate},
	}

	for _, tt := range tests {
		m, _ = press(t, m, tt.msg)
		assert.Equal(t, tt.want, m.Editor.Focused(), "after %s", tt.msg)
	}
}

func TestUpdate_CursorAndDelete(t *testing.T) {
	m := newTestModel(t)

	m = typeText(t, m, "123")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "13", m.Editor.Value(editor.FieldElectricityRate))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = typeText(t, m, "4")
	assert.Equal(t, "134", m.Editor.Value(editor.FieldElectricityRate))
}

func TestUpdate_SpaceAndAlt(t *testing.T) {
	m := newTestModel(t)
	m.Editor.SetValue(editor.FieldName, "")
	for m.Editor.Focused() != editor.FieldName {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}

	m = typeText(t, m, "a")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = typeText(t, m, "b")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})

	assert.Equal(t, "a b", m.Editor.Value(editor.FieldName))
}

func TestUpdate_PasteInsertsAllRunes(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0.25"), Paste: true})

	assert.Equal(t, "0.25", m.Editor.Value(editor.FieldElectricityRate))
}

func TestUpdate_SubmitAddsDevice(t *testing.T) {
	m := newTestModel(t)

	m = typeText(t, m, "4")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "20")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "9")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	require.Equal(t, 1, m.Editor.Len())
	assert.Equal(t, 20.0, m.Editor.Devices()[0].InitialCost)
	assert.Equal(t, editor.StatusInfo, m.Editor.Status().Kind)

	// Same values again are ignored
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.Editor.Len())
}

func TestUpdate_SubmitInvalidShowsError(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, m.Editor.Len())
	assert.Equal(t, editor.StatusError, m.Editor.Status().Kind)
	assert.Contains(t, m.View(), "✗")
}

func TestUpdate_EditingClearsError(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, editor.StatusError, m.Editor.Status().Kind)

	m = typeText(t, m, "4")

	assert.Equal(t, editor.StatusNone, m.Editor.Status().Kind)
}

func TestUpdate_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(t)

			m, cmd := press(t, m, msg)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.Editor.Exited())
		})
	}
}

func TestUpdate_SaveAndLoad(t *testing.T) {
	m := newTestModel(t)
	submitDevice(t, m.Editor, "4", "20", "9", "lamp")
	m.Editor.SetValue(editor.FieldListName, "office")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	m = next.(Model)
	assert.Equal(t, []string{"office"}, m.savedLists)

	// Load replaces whatever was added since the save
	submitDevice(t, m.Editor, "4", "30", "9", "heater")
	require.Equal(t, 2, m.Editor.Len())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	require.Equal(t, 1, m.Editor.Len())
	assert.Equal(t, "lamp", m.Editor.Devices()[0].Name)
}

func TestUpdate_LoadMissingKeepsList(t *testing.T) {
	m := newTestModel(t)
	submitDevice(t, m.Editor, "4", "20", "9", "lamp")
	m.Editor.SetValue(editor.FieldListName, "nowhere")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Equal(t, 1, m.Editor.Len())
	assert.Equal(t, editor.StatusError, m.Editor.Status().Kind)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	submitDevice(t, m.Editor, "4", "20", "9", "lamp")

	out := m.View()

	assert.Contains(t, out, AppName)
	assert.Contains(t, out, "Electricity Rate")
	assert.Contains(t, out, "Chart")
	assert.Contains(t, out, "lamp")
	assert.Contains(t, out, "quit")
}

func TestView_FillsTerminalExactly(t *testing.T) {
	for _, size := range []struct{ width, height int }{
		{MinTerminalWidth, MinTerminalHeight},
		{100, 24},
		{100, 30},
		{100, 40},
		{160, 50},
	} {
		m := newTestModel(t)
		submitDevice(t, m.Editor, "4", "20", "9", "lamp")
		next, _ := m.Update(tea.WindowSizeMsg{Width: size.width, Height: size.height})
		m = next.(Model)

		out := m.View()

		lines := strings.Split(out, "\n")
		assert.Len(t, lines, size.height, "%dx%d", size.width, size.height)
		for _, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), size.width, "%dx%d", size.width, size.height)
		}
	}
}

func TestContentHeight(t *testing.T) {
	footer := "help"
	rows := ContentHeight(footer, 100, 30)
	require.Greater(t, rows, 0)

	fits := strings.TrimSuffix(strings.Repeat("x\n", rows), "\n")
	assert.Equal(t, 30, lipgloss.Height(RenderApplicationContainer(fits, footer, 100, 30)))

	// One more row pushes the frame past the terminal
	assert.Equal(t, 31, lipgloss.Height(RenderApplicationContainer(fits+"\nx", footer, 100, 30)))
}

func TestView_SavedListsHint(t *testing.T) {
	m := newTestModel(t)
	m.savedLists = []string{"home", "office"}
	for m.Editor.Focused() != editor.FieldListName {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}

	assert.Contains(t, m.View(), "saved: home, office")
}

func TestView_ZeroSize(t *testing.T) {
	m := newTestModel(t)
	m.Width = 0

	assert.Empty(t, m.View())
}

func TestRenderField_CursorStaysVisible(t *testing.T) {
	box := textbox.New()
	box.SetValue("abcdefghijklmnopqrstuvwxyz")
	f := editor.FieldView{
		Title:   "Optional Name",
		Value:   box.Value(),
		Focused: true,
		Cursor:  box.Cursor(),
		Box:     *box,
	}

	out := renderField(f, 12)

	assert.Contains(t, out, "z")
	assert.NotContains(t, out, "abc")
	assert.Equal(t, FieldBoxHeight, lipgloss.Height(out))
}

func TestRenderField_WideInputKeepsHeight(t *testing.T) {
	m := newTestModel(t)
	for m.Editor.Focused() != editor.FieldName {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m = typeText(t, m, "日本語の長いデバイス名です")

	for _, f := range m.Editor.Snapshot().Fields {
		out := renderField(f, 20)
		assert.Equal(t, FieldBoxHeight, lipgloss.Height(out), f.Title)
		assert.Equal(t, 20, lipgloss.Width(out), f.Title)
	}
}
