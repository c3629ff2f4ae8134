package textbox

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTextbox_TypeAndDelete(t *testing.T) {
	tb := New()

	tb.EnterChar('5')
	tb.EnterChar('0')
	assert.Equal(t, "50", tb.Value())
	assert.Equal(t, 2, tb.Cursor())

	tb.MoveCursorLeft()
	tb.DeleteChar()
	assert.Equal(t, "0", tb.Value())
	assert.Equal(t, 0, tb.Cursor())

	// No-op at the start of the buffer
	tb.DeleteChar()
	assert.Equal(t, "0", tb.Value())
	assert.Equal(t, 0, tb.Cursor())
}

func TestTextbox_CursorClamps(t *testing.T) {
	tb := New()
	tb.MoveCursorLeft()
	assert.Equal(t, 0, tb.Cursor())
	tb.MoveCursorRight()
	assert.Equal(t, 0, tb.Cursor())

	for _, r := range "abc" {
		tb.EnterChar(r)
	}
	tb.MoveCursorRight()
	assert.Equal(t, 3, tb.Cursor())

	for i := 0; i < 10; i++ {
		tb.MoveCursorLeft()
	}
	assert.Equal(t, 0, tb.Cursor())
}

func TestTextbox_InsertInMiddle(t *testing.T) {
	tb := New()
	for _, r := range "1000" {
		tb.EnterChar(r)
	}
	tb.MoveCursorLeft()
	tb.MoveCursorLeft()
	tb.MoveCursorLeft()
	tb.EnterChar('.')

	assert.Equal(t, "1.000", tb.Value())
	assert.Equal(t, 2, tb.Cursor())

	before, after := tb.Split()
	assert.Equal(t, "1.", before)
	assert.Equal(t, "000", after)
}

func TestTextbox_MultiByteRunes(t *testing.T) {
	tb := New()
	for _, r := range "€ü5" {
		tb.EnterChar(r)
	}
	assert.Equal(t, 3, tb.Cursor())
	assert.Equal(t, 3, tb.Len())

	tb.MoveCursorLeft()
	tb.DeleteChar()
	assert.Equal(t, "€5", tb.Value())
	assert.Equal(t, 1, tb.Cursor())

	tb.EnterChar('ß')
	assert.Equal(t, "€ß5", tb.Value())
	assert.Equal(t, 2, tb.Cursor())
}

func TestTextbox_SetValueAndReset(t *testing.T) {
	tb := New()
	tb.SetValue("héllo")
	assert.Equal(t, "héllo", tb.Value())
	assert.Equal(t, 5, tb.Cursor())

	tb.Reset()
	assert.Equal(t, "", tb.Value())
	assert.Equal(t, 0, tb.Cursor())
}

func TestTextbox_DisabledBindings(t *testing.T) {
	tb := New()
	tb.SetValue("12 34")
	tb.MoveCursorLeft()
	tb.MoveCursorLeft()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyDelete},
		{Type: tea.KeyCtrlW},
		{Type: tea.KeyCtrlK},
		{Type: tea.KeyCtrlU},
		{Type: tea.KeyHome},
		{Type: tea.KeyEnd},
		{Type: tea.KeyLeft, Alt: true},
	} {
		tb.update(msg)
		assert.Equal(t, "12 34", tb.Value(), msg.String())
		assert.Equal(t, 3, tb.Cursor(), msg.String())
	}
}

func TestTextbox_ViewKeepsCursorVisible(t *testing.T) {
	tb := New()
	tb.SetValue("abcdefghijklmnopqrstuvwxyz")

	out := tb.View(10, true, lipgloss.NewStyle())
	assert.Contains(t, out, "z")
	assert.NotContains(t, out, "abc")
	assert.LessOrEqual(t, lipgloss.Width(out), 10)

	for i := 0; i < 26; i++ {
		tb.MoveCursorLeft()
	}
	out = tb.View(10, true, lipgloss.NewStyle())
	assert.Contains(t, out, "abc")
	assert.NotContains(t, out, "z")
	assert.LessOrEqual(t, lipgloss.Width(out), 10)

	// Rendering does not move the cursor
	assert.Equal(t, 0, tb.Cursor())
}

func TestTextbox_ViewWideRunes(t *testing.T) {
	tb := New()
	tb.SetValue("日本語テキスト入力")

	out := tb.View(8, true, lipgloss.NewStyle())
	assert.LessOrEqual(t, lipgloss.Width(out), 8)
	assert.Contains(t, out, "力")
}

func TestTextbox_ViewBlurred(t *testing.T) {
	tb := New()
	tb.SetValue("lamp")

	assert.Contains(t, tb.View(20, false, lipgloss.NewStyle()), "lamp")
	assert.Empty(t, tb.View(0, false, lipgloss.NewStyle()))
}
