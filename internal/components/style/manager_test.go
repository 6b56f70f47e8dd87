package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltInThemes(t *testing.T) {
	names, err := AvailableThemes()
	require.NoError(t, err)
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "dark")
	assert.Contains(t, names, "light")

	for _, name := range names {
		theme, err := LoadTheme(name)
		require.NoError(t, err, "theme %s", name)
		assert.Equal(t, name, theme.Name)
		require.NotNil(t, theme.Colors)
		require.NotNil(t, theme.Colors.Selection)
		require.NotNil(t, theme.Colors.UI)
	}
}

func TestLoadUnknownThemeFallsBack(t *testing.T) {
	theme, err := LoadTheme("does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, "default", theme.Name)
}

func TestManagerStyleCache(t *testing.T) {
	m, err := NewManager("default")
	require.NoError(t, err)

	first := m.Row(true)
	second := m.Row(true)
	assert.Equal(t, first, second)

	// Switching themes clears the cache and restyles
	dark, err := LoadTheme("dark")
	require.NoError(t, err)
	m.SetTheme(dark)
	assert.Equal(t, "dark", m.Theme().Name)

	styled := m.Row(true)
	assert.Equal(t, dark.Colors.Selection.Background, styled.GetBackground())
}

func TestManagerNotifyLevels(t *testing.T) {
	m, err := NewManager("default")
	require.NoError(t, err)

	levels := []string{"info", "warn", "error", "success"}
	for _, level := range levels {
		s := m.Notify(level)
		assert.True(t, s.GetBold(), "level %s", level)
	}
}
