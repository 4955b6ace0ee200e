package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/middlemath/internal/ui/theme"
)

// AnswerChars are the characters an answer can contain: digits, operators,
// fraction and ratio separators, inequality signs, and letters for text
// answers like "positive" or "2^5".
const AnswerChars = "0123456789+-*/^().,:=<>≤≥%√×÷ abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TextInput wraps bubbles/textinput with answer styling and an optional
// character filter.
type TextInput struct {
	Model   textinput.Model
	Allowed string // empty allows everything
	marked  bool
	correct bool
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder, allowed string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Allowed: allowed}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages, dropping printable keys outside Allowed.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Allowed != "" {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
			for _, r := range kmsg.Text {
				if !strings.ContainsRune(t.Allowed, r) {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a ✓ or ✗ once marked.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.marked {
		if t.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the trimmed input.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Mark records whether the submitted value was correct.
func (t *TextInput) Mark(correct bool) {
	t.marked = true
	t.correct = correct
}

// Reset clears the value and mark.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.marked = false
	t.correct = false
}
