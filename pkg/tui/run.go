package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the full screen UI and blocks until the user quits or ctx ends.
// Pending edits are saved on the way out.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if cerr := m.session.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
