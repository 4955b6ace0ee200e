package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/middlemath/internal/ui/layout"
)

// Screen is one page of the terminal UI. Screens are stacked by the router;
// only the top screen receives messages.
type Screen interface {
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding the header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that want custom footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a status string, such
// as a running score, on the right of the header.
type StatusProvider interface {
	Status() string
}
