package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/user/notewatch/internal/components/style"
	"github.com/user/notewatch/internal/components/toast"
	"github.com/user/notewatch/internal/components/virtuallist"
	"github.com/user/notewatch/internal/core"
	"github.com/user/notewatch/internal/notes"
	"github.com/user/notewatch/internal/ui/views"
)

// KeyMap defines the key bindings
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Enter    key.Binding
	Back     key.Binding
	Folder   key.Binding
	Recent   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first note"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last note"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "preview"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Folder: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle folder"),
		),
		Recent: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recent first"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// windowChangedMsg carries a debounced window recompute into the update loop
type windowChangedMsg virtuallist.Window

// App is the root application model. Every dependency is constructed up
// front and injected; views never reach into globals.
type App struct {
	store  *notes.Store
	state  *core.State
	config *core.Config
	styles *style.Manager
	logger zerolog.Logger
	keys   KeyMap

	listView    *views.ListView
	previewView *views.PreviewView
	helpView    *views.HelpView
	toast       *toast.Model

	width  int
	height int
	ready  bool
}

// NewApp wires the application together
func NewApp(store *notes.Store, state *core.State, styles *style.Manager, logger zerolog.Logger) *App {
	config := state.Config()
	listCfg := virtuallist.Config{
		RowHeight: config.RowHeight,
		Buffer:    config.BufferRows,
		Throttle:  time.Duration(config.ScrollThrottleMs) * time.Millisecond,
	}

	app := &App{
		store:  store,
		state:  state,
		config: config,
		styles: styles,
		logger: logger.With().Str("component", "ui").Logger(),
		keys:   DefaultKeyMap(),
		toast:  toast.New(styles),
	}
	app.listView = views.NewListView(app.visibleNotes(), styles, listCfg)
	app.previewView = views.NewPreviewView(styles)
	app.helpView = views.NewHelpView(styles)
	return app
}

// visibleNotes applies the folder filter, ordering, and display cap
func (a *App) visibleNotes() []notes.Note {
	var rows []notes.Note
	if a.state.SortedByRecent() {
		rows = a.store.Recent(a.store.Len())
	} else {
		rows = a.store.All()
	}

	folder := a.state.Folder()
	if folder != "" {
		filtered := make([]notes.Note, 0, len(rows))
		for _, n := range rows {
			if n.Folder == folder {
				filtered = append(filtered, n)
			}
		}
		rows = filtered
	}

	if len(rows) > a.config.MaxNotesShown {
		rows = rows[:a.config.MaxNotesShown]
	}
	return rows
}

// waitForWindow returns a command that delivers the next debounced window
// recompute as a message
func (a *App) waitForWindow() tea.Cmd {
	return func() tea.Msg {
		return windowChangedMsg(<-a.listView.WindowChanges())
	}
}

// Init starts the window-change listener
func (a *App) Init() tea.Cmd {
	return a.waitForWindow()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true

		contentHeight := msg.Height - 1 // status line
		a.listView.SetSize(msg.Width, contentHeight)
		a.previewView.SetSize(msg.Width, contentHeight)
		a.helpView.SetSize(msg.Width, contentHeight)
		return a, nil

	case windowChangedMsg:
		// The debounced recompute landed; repaint and re-arm the listener
		return a, a.waitForWindow()

	case tea.KeyMsg:
		return a.handleKey(msg)

	default:
		a.toast.Update(msg)
	}
	return a, nil
}

// handleKey dispatches a key press according to the current view
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		a.listView.Close()
		return a, tea.Quit
	}

	switch a.state.View() {
	case core.ViewModeHelp:
		if key.Matches(msg, a.keys.Help) || key.Matches(msg, a.keys.Back) {
			a.state.SetView(core.ViewModeList)
		}
		return a, nil

	case core.ViewModePreview:
		switch {
		case key.Matches(msg, a.keys.Back):
			a.state.SetView(core.ViewModeList)
			return a, nil
		case key.Matches(msg, a.keys.Help):
			a.state.SetView(core.ViewModeHelp)
			return a, nil
		}
		return a, a.previewView.Update(msg)

	default:
		return a.handleListKey(msg)
	}
}

// handleListKey handles keys while the note list has focus. The list position
// is mirrored into the shared state after every key so other views see where
// the list stands.
func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, a.keys.Help):
		a.state.SetView(core.ViewModeHelp)

	case key.Matches(msg, a.keys.Up):
		a.listView.MoveSelection(-1)

	case key.Matches(msg, a.keys.Down):
		a.listView.MoveSelection(1)

	case key.Matches(msg, a.keys.PageUp):
		a.listView.PageUp()

	case key.Matches(msg, a.keys.PageDown):
		a.listView.PageDown()

	case key.Matches(msg, a.keys.Home):
		a.listView.Home()

	case key.Matches(msg, a.keys.End):
		a.listView.End()

	case key.Matches(msg, a.keys.Folder):
		a.cycleFolder()

	case key.Matches(msg, a.keys.Recent):
		a.state.SetSortByRecent(!a.state.SortedByRecent())
		a.listView.SetRows(a.visibleNotes())
		a.restorePosition()
		if a.state.SortedByRecent() {
			cmd = a.toast.Show("sorted by most recent", toast.LevelInfo)
		} else {
			cmd = a.toast.Show("sorted by folder and title", toast.LevelInfo)
		}

	case key.Matches(msg, a.keys.Enter):
		cmd = a.openPreview()
	}

	a.state.SetPosition(a.listView.SelectedIndex(), a.listView.ScrollTop())
	return a, cmd
}

// restorePosition moves the list to the position stored in the shared state,
// which filter and sort changes reset to the top
func (a *App) restorePosition() {
	selected, _ := a.state.Position()
	a.listView.Select(selected)
}

// cycleFolder advances the folder filter through all folders and back to all
func (a *App) cycleFolder() {
	folders := []string{""}
	for _, f := range a.store.Folders() {
		if f != "" {
			folders = append(folders, f)
		}
	}
	current := a.state.Folder()

	next := folders[0]
	for i, f := range folders {
		if f == current {
			next = folders[(i+1)%len(folders)]
			break
		}
	}
	a.state.SetFolder(next)
	a.listView.SetRows(a.visibleNotes())
	a.restorePosition()
}

// openPreview loads the selected note into the preview pane
func (a *App) openPreview() tea.Cmd {
	note, ok := a.listView.Selected()
	if !ok {
		return nil
	}

	content, err := a.store.Read(note)
	if err != nil {
		a.logger.Error().Err(err).Str("note", note.Path).Msg("reading note")
		return a.toast.Show("could not read note", toast.LevelError)
	}
	if err := a.previewView.Show(note, content); err != nil {
		a.logger.Error().Err(err).Str("note", note.Path).Msg("rendering note")
		return a.toast.Show("could not render note", toast.LevelError)
	}

	a.state.SetView(core.ViewModePreview)
	return nil
}

// View renders the application
func (a *App) View() string {
	if !a.ready {
		return "loading..."
	}

	var content string
	switch a.state.View() {
	case core.ViewModeHelp:
		content = a.helpView.View()
	case core.ViewModePreview:
		content = a.previewView.View()
	default:
		content = a.listView.View()
	}

	status := a.statusLine()
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Height(a.height-1).Render(content),
		status,
	)
}

// statusLine renders the bottom status bar, with any active toast taking
// precedence over the ambient hints
func (a *App) statusLine() string {
	if a.toast.Visible() {
		return a.toast.View()
	}

	folder := a.state.Folder()
	if folder == "" {
		folder = "all folders"
	}
	hint := folder + "  ·  ? help  ·  q quit"
	return a.styles.StatusBar().Render(hint)
}
