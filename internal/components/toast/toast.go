package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/notewatch/internal/components/style"
)

// DefaultDuration is how long a toast stays on screen
const DefaultDuration = 3 * time.Second

// Level is the severity of a toast message
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// expireMsg dismisses the toast with the matching sequence number
type expireMsg struct {
	seq int
}

// Model is a transient notification line. It is constructed once at startup
// and owned by the application root; views request notifications through it
// rather than through any shared global.
type Model struct {
	styles   *style.Manager
	message  string
	level    Level
	duration time.Duration

	// seq distinguishes the expiry of the current toast from expiries of
	// toasts it replaced
	seq     int
	visible bool
}

// New creates a toast model
func New(styles *style.Manager) *Model {
	return &Model{
		styles:   styles,
		duration: DefaultDuration,
	}
}

// SetDuration overrides how long toasts stay visible
func (m *Model) SetDuration(d time.Duration) {
	if d > 0 {
		m.duration = d
	}
}

// Show replaces the current toast and returns the command that will expire it
func (m *Model) Show(message string, level Level) tea.Cmd {
	m.message = message
	m.level = level
	m.visible = true
	m.seq++

	seq := m.seq
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return expireMsg{seq: seq}
	})
}

// Update handles toast expiry messages
func (m *Model) Update(msg tea.Msg) {
	if expire, ok := msg.(expireMsg); ok && expire.seq == m.seq {
		m.visible = false
	}
}

// Visible returns whether a toast is currently shown
func (m *Model) Visible() bool {
	return m.visible
}

// View renders the toast line, or "" when nothing is shown
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	return m.styles.Notify(string(m.level)).Render(m.message)
}
