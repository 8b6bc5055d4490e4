package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/todo/pkg/tasklist"
)

// Run launches the Bubble Tea UI over an initialized store and blocks until
// the user quits or ctx is cancelled.
func Run(ctx context.Context, store *tasklist.Store) error {
	p := tea.NewProgram(New(store), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
