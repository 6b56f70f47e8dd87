package views

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/notewatch/internal/components/style"
)

func TestHelpViewSections(t *testing.T) {
	styles, err := style.NewManager("default")
	require.NoError(t, err)

	out := NewHelpView(styles).View()

	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "cycle folder filter")
	assert.Contains(t, out, "q/ctrl+c")
}

func TestPadRightAlignsOnCells(t *testing.T) {
	// "↑/k" is 5 bytes but 3 cells; both labels must pad to the same column
	assert.Equal(t, 12, lipgloss.Width(padRight("abc", 12)))
	assert.Equal(t, 12, lipgloss.Width(padRight("↑/k", 12)))
	assert.Equal(t, 12, lipgloss.Width(padRight("pgup/pgdn", 12)))
}
