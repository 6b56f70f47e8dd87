package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/notewatch/internal/components/style"
	"github.com/user/notewatch/internal/core"
	"github.com/user/notewatch/internal/notes"
	"github.com/user/notewatch/internal/ui"
)

// runBrowse starts the interactive TUI
func runBrowse(opts *rootOptions) error {
	store, err := notes.NewStore(opts.config.NotesDir, opts.logger)
	if err != nil {
		return err
	}

	styles, err := style.NewManager(opts.config.Theme)
	if err != nil {
		return fmt.Errorf("loading theme %s: %w", opts.config.Theme, err)
	}

	state := core.NewState(opts.config)
	app := ui.NewApp(store, state, styles, opts.logger)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
