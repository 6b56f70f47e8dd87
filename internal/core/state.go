package core

import "sync"

// ViewMode identifies which primary view the application is showing
type ViewMode string

const (
	ViewModeList    ViewMode = "List"
	ViewModePreview ViewMode = "Preview"
	ViewModeHelp    ViewMode = "Help"
)

// State holds the application state shared between views
type State struct {
	mu sync.RWMutex

	// Current view state
	CurrentView   ViewMode
	CurrentFolder string // "" means all folders
	SelectedIndex int
	ScrollOffset  int

	// List presentation
	SortByRecent bool

	config *Config
}

// NewState creates a new application state
func NewState(config *Config) *State {
	return &State{
		CurrentView: ViewModeList,
		config:      config,
	}
}

// Config returns the configuration the state was created with
func (s *State) Config() *Config {
	return s.config
}

// View returns the current view mode
func (s *State) View() ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.CurrentView
}

// SetView switches the current view mode
func (s *State) SetView(view ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CurrentView = view
}

// SetFolder updates the folder filter and resets list position
func (s *State) SetFolder(folder string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CurrentFolder = folder
	s.SelectedIndex = 0
	s.ScrollOffset = 0
}

// Folder returns the current folder filter
func (s *State) Folder() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.CurrentFolder
}

// SortedByRecent returns whether the list is ordered newest first
func (s *State) SortedByRecent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.SortByRecent
}

// SetSortByRecent toggles recency ordering and resets list position
func (s *State) SetSortByRecent(recent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SortByRecent = recent
	s.SelectedIndex = 0
	s.ScrollOffset = 0
}

// Position returns the selection index and scroll offset together
func (s *State) Position() (selected, scrollOffset int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.SelectedIndex, s.ScrollOffset
}

// SetPosition stores the selection index and scroll offset together
func (s *State) SetPosition(selected, scrollOffset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SelectedIndex = selected
	s.ScrollOffset = scrollOffset
}
