package style

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/user/notewatch/configs/themes"
)

// Manager handles styling and theming for the application. It is constructed
// once at startup and passed to whatever owns a view; there is no ambient
// global theme.
type Manager struct {
	theme *Theme
	cache map[string]lipgloss.Style
	mu    sync.RWMutex
}

// Theme defines a color scheme loaded from a YAML theme file
type Theme struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Colors      *ColorScheme `yaml:"colors"`
}

// ColorScheme defines the color palette
type ColorScheme struct {
	Background lipgloss.Color `yaml:"background"`
	Foreground lipgloss.Color `yaml:"foreground"`

	Selection *SelectionColors `yaml:"selection"`
	UI        *UIColors        `yaml:"ui"`
}

// SelectionColors for the selected row
type SelectionColors struct {
	Background lipgloss.Color `yaml:"background"`
	Foreground lipgloss.Color `yaml:"foreground"`
}

// UIColors for interface elements
type UIColors struct {
	Border  lipgloss.Color `yaml:"border"`
	Header  lipgloss.Color `yaml:"header"`
	Accent  lipgloss.Color `yaml:"accent"`
	Muted   lipgloss.Color `yaml:"muted"`
	Info    lipgloss.Color `yaml:"info"`
	Warning lipgloss.Color `yaml:"warning"`
	Error   lipgloss.Color `yaml:"error"`
	Success lipgloss.Color `yaml:"success"`
}

// NewManager creates a style manager using the named built-in theme. An
// unknown name falls back to the default theme.
func NewManager(themeName string) (*Manager, error) {
	theme, err := LoadTheme(themeName)
	if err != nil {
		return nil, err
	}
	return &Manager{
		theme: theme,
		cache: make(map[string]lipgloss.Style),
	}, nil
}

// LoadTheme reads a built-in theme by name
func LoadTheme(name string) (*Theme, error) {
	themeFS, err := themes.GetFS()
	if err != nil {
		return nil, fmt.Errorf("opening theme resources: %w", err)
	}

	data, err := fs.ReadFile(themeFS, name+".yaml")
	if err != nil {
		// Unknown theme falls back rather than failing startup
		data, err = fs.ReadFile(themeFS, "default.yaml")
		if err != nil {
			return nil, fmt.Errorf("loading default theme: %w", err)
		}
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", name, err)
	}
	if theme.Colors == nil || theme.Colors.Selection == nil || theme.Colors.UI == nil {
		return nil, fmt.Errorf("theme %s is missing color definitions", name)
	}
	return &theme, nil
}

// AvailableThemes lists the built-in theme names
func AvailableThemes() ([]string, error) {
	themeFS, err := themes.GetFS()
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(themeFS, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// SetTheme swaps the current theme and clears the style cache
func (m *Manager) SetTheme(theme *Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = theme
	m.cache = make(map[string]lipgloss.Style)
}

// Theme returns the current theme
func (m *Manager) Theme() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// cached returns the style under key, building it on first use
func (m *Manager) cached(key string, build func() lipgloss.Style) lipgloss.Style {
	m.mu.RLock()
	if s, ok := m.cache[key]; ok {
		m.mu.RUnlock()
		return s
	}
	m.mu.RUnlock()

	s := build()

	m.mu.Lock()
	m.cache[key] = s
	m.mu.Unlock()
	return s
}

// Title returns the style for view titles
func (m *Manager) Title() lipgloss.Style {
	return m.cached("title", func() lipgloss.Style {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(m.theme.Colors.UI.Header)
	})
}

// Header returns the style for list headers
func (m *Manager) Header() lipgloss.Style {
	return m.cached("header", func() lipgloss.Style {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(m.theme.Colors.UI.Accent)
	})
}

// Row returns the style for a list row
func (m *Manager) Row(selected bool) lipgloss.Style {
	if selected {
		return m.cached("row.selected", func() lipgloss.Style {
			return lipgloss.NewStyle().
				Background(m.theme.Colors.Selection.Background).
				Foreground(m.theme.Colors.Selection.Foreground).
				Bold(true)
		})
	}
	return m.cached("row", func() lipgloss.Style {
		return lipgloss.NewStyle().Foreground(m.theme.Colors.Foreground)
	})
}

// Muted returns the style for secondary text
func (m *Manager) Muted() lipgloss.Style {
	return m.cached("muted", func() lipgloss.Style {
		return lipgloss.NewStyle().Foreground(m.theme.Colors.UI.Muted)
	})
}

// Border returns the style for pane borders
func (m *Manager) Border() lipgloss.Style {
	return m.cached("border", func() lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.Colors.UI.Border)
	})
}

// StatusBar returns the style for the bottom status line
func (m *Manager) StatusBar() lipgloss.Style {
	return m.cached("statusbar", func() lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(m.theme.Colors.UI.Muted)
	})
}

// Notify returns the toast style for a severity level
func (m *Manager) Notify(level string) lipgloss.Style {
	return m.cached("notify."+level, func() lipgloss.Style {
		color := m.theme.Colors.UI.Info
		switch level {
		case "warn":
			color = m.theme.Colors.UI.Warning
		case "error":
			color = m.theme.Colors.UI.Error
		case "success":
			color = m.theme.Colors.UI.Success
		}
		return lipgloss.NewStyle().Bold(true).Foreground(color)
	})
}

// HelpKey returns the style for key names in help text
func (m *Manager) HelpKey() lipgloss.Style {
	return m.cached("help.key", func() lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(m.theme.Colors.UI.Accent)
	})
}

// HelpDesc returns the style for key descriptions in help text
func (m *Manager) HelpDesc() lipgloss.Style {
	return m.cached("help.desc", func() lipgloss.Style {
		return lipgloss.NewStyle().Foreground(m.theme.Colors.UI.Muted)
	})
}
