package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/user/notewatch/internal/components/style"
	"github.com/user/notewatch/internal/notes"
)

// PreviewView renders the selected note's markdown in a scrollable pane
type PreviewView struct {
	styles   *style.Manager
	viewport viewport.Model
	note     notes.Note
	loaded   bool
	width    int
	height   int
}

// NewPreviewView creates an empty preview pane
func NewPreviewView(styles *style.Manager) *PreviewView {
	return &PreviewView{
		styles:   styles,
		viewport: viewport.New(0, 0),
	}
}

// SetSize updates the pane dimensions
func (v *PreviewView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	headerLines := 2
	v.viewport.Height = max(height-headerLines, 0)
}

// Show renders the note content and resets the scroll position
func (v *PreviewView) Show(note notes.Note, content string) error {
	wrap := v.width - 2
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", note.Path, err)
	}

	v.note = note
	v.loaded = true
	v.viewport.SetContent(rendered)
	v.viewport.GotoTop()
	return nil
}

// Update forwards scroll keys to the viewport
func (v *PreviewView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the preview pane
func (v *PreviewView) View() string {
	if !v.loaded {
		return v.styles.Muted().Render("select a note to preview")
	}

	header := v.styles.Title().Render(v.note.DisplayTitle())
	info := v.styles.Muted().Render(
		fmt.Sprintf("%s  modified %s", v.note.Folder, v.note.ModTime.Format("2006-01-02 15:04")),
	)
	return header + "\n" + info + "\n" + v.viewport.View()
}
