package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/notewatch/internal/components/style"
)

// HelpView displays key binding help
type HelpView struct {
	styles *style.Manager
	width  int
	height int
}

// NewHelpView creates a new help view
func NewHelpView(styles *style.Manager) *HelpView {
	return &HelpView{styles: styles}
}

// SetSize updates the view dimensions
func (v *HelpView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the help screen
func (v *HelpView) View() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{
			title: "Navigation",
			keys: [][2]string{
				{"↑/k", "previous note"},
				{"↓/j", "next note"},
				{"pgup/pgdn", "page up/down"},
				{"g/G", "first/last note"},
			},
		},
		{
			title: "Notes",
			keys: [][2]string{
				{"enter", "preview note"},
				{"esc", "back to list"},
				{"f", "cycle folder filter"},
				{"r", "toggle recent-first order"},
			},
		},
		{
			title: "General",
			keys: [][2]string{
				{"?", "toggle help"},
				{"q/ctrl+c", "quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(v.styles.Title().Render("notewatch - Help"))
	b.WriteString("\n\n")

	for _, section := range sections {
		b.WriteString(v.styles.Header().Render(section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			b.WriteString("  ")
			b.WriteString(v.styles.HelpKey().Render(padRight(k[0], 12)))
			b.WriteString(v.styles.HelpDesc().Render(k[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Muted().Render("press ? or esc to close"))
	return b.String()
}

// padRight pads to terminal cells, not bytes, so multibyte key labels line up
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}
