// Package textbox implements the single-line input fields of the editor.
//
// Each Textbox wraps a bubbles textinput.Model. Editing goes through the
// input's own Update with a reduced key map: cursor left and right,
// backspace, and typed runes. Word motion, forward delete and paste
// bindings are disabled. The cursor is a rune index, so multi-byte input
// such as "€" or "ü" is inserted and deleted as one character.
package textbox

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Textbox is an editable single-line buffer. Use New to create one.
type Textbox struct {
	input textinput.Model
}

// New returns an empty Textbox with the cursor at 0.
func New() *Textbox {
	ti := textinput.New()
	ti.Prompt = ""
	ti.KeyMap = keyMap()
	ti.Cursor.SetMode(cursor.CursorStatic)

	// The input stays focused so Update always edits; focus as shown to
	// the user is decided at render time.
	ti.Focus()

	return &Textbox{input: ti}
}

// keyMap keeps only the bindings the editor exposes.
func keyMap() textinput.KeyMap {
	off := key.NewBinding(key.WithDisabled())

	km := textinput.DefaultKeyMap
	km.CharacterForward = key.NewBinding(key.WithKeys("right"))
	km.CharacterBackward = key.NewBinding(key.WithKeys("left"))
	km.DeleteCharacterBackward = key.NewBinding(key.WithKeys("backspace"))

	km.WordForward = off
	km.WordBackward = off
	km.DeleteWordBackward = off
	km.DeleteWordForward = off
	km.DeleteAfterCursor = off
	km.DeleteBeforeCursor = off
	km.DeleteCharacterForward = off
	km.LineStart = off
	km.LineEnd = off
	km.Paste = off
	km.AcceptSuggestion = off
	km.NextSuggestion = off
	km.PrevSuggestion = off
	return km
}

func (t *Textbox) update(msg tea.KeyMsg) {
	t.input, _ = t.input.Update(msg)
}

// Value returns the current text.
func (t *Textbox) Value() string {
	return t.input.Value()
}

// Cursor returns the cursor position in runes.
func (t *Textbox) Cursor() int {
	return t.input.Position()
}

// Len returns the number of runes in the buffer.
func (t *Textbox) Len() int {
	return len([]rune(t.input.Value()))
}

// MoveCursorLeft moves the cursor one rune left, stopping at 0.
func (t *Textbox) MoveCursorLeft() {
	t.update(tea.KeyMsg{Type: tea.KeyLeft})
}

// MoveCursorRight moves the cursor one rune right, stopping at the end.
func (t *Textbox) MoveCursorRight() {
	t.update(tea.KeyMsg{Type: tea.KeyRight})
}

// EnterChar inserts r at the cursor and advances the cursor.
func (t *Textbox) EnterChar(r rune) {
	t.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// DeleteChar removes the rune before the cursor. It does nothing when the
// cursor is at 0.
func (t *Textbox) DeleteChar() {
	t.update(tea.KeyMsg{Type: tea.KeyBackspace})
}

// SetValue replaces the text and moves the cursor to the end.
func (t *Textbox) SetValue(s string) {
	t.input.SetValue(s)
	t.input.CursorEnd()
}

// Reset empties the buffer.
func (t *Textbox) Reset() {
	t.input.Reset()
}

// Split returns the text before and after the cursor.
func (t *Textbox) Split() (before, after string) {
	runes := []rune(t.input.Value())
	pos := t.input.Position()
	return string(runes[:pos]), string(runes[pos:])
}

// View renders the text in at most width terminal cells, scrolled so the
// cursor stays visible. The cursor is drawn only when focused is true.
func (t Textbox) View(width int, focused bool, style lipgloss.Style) string {
	if width < 1 {
		return ""
	}

	ti := t.input
	ti.Width = width - 1 // one cell for the cursor
	ti.TextStyle = style
	ti.Cursor.Style = style
	ti.Cursor.TextStyle = style
	if !focused {
		ti.Blur()
	}

	// Scroll from the end back to the cursor so the window is bounded
	// whichever side of the text the cursor is on.
	pos := ti.Position()
	ti.CursorEnd()
	ti.SetCursor(pos)

	return ti.View()
}
