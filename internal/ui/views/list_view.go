package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/notewatch/internal/components/style"
	"github.com/user/notewatch/internal/components/virtuallist"
	"github.com/user/notewatch/internal/notes"
)

// ListView shows the note list driven by the windowed renderer. It owns the
// scroll container; the renderer decides which rows are rendered and where
// they sit, and the view paints the rendered rows that fall on screen.
type ListView struct {
	styles *style.Manager

	rows      []notes.Note
	container *virtuallist.SliceContainer
	renderer  *virtuallist.Renderer
	rowHeight int

	selected int
	width    int
	height   int

	windowCh chan virtuallist.Window
}

// NewListView creates a list view over the given rows
func NewListView(rows []notes.Note, styles *style.Manager, cfg virtuallist.Config) *ListView {
	v := &ListView{
		styles:    styles,
		rows:      rows,
		container: virtuallist.NewSliceContainer(len(rows), 0),
		rowHeight: cfg.RowHeight,
		windowCh:  make(chan virtuallist.Window, 1),
	}
	if v.rowHeight <= 0 {
		v.rowHeight = virtuallist.DefaultRowHeight
	}

	v.renderer = virtuallist.NewRenderer(v.container, cfg)
	v.renderer.SetOnWindowChange(func(w virtuallist.Window) {
		// Non-blocking: a stale repaint notification is fine to drop
		select {
		case v.windowCh <- w:
		default:
		}
	})
	return v
}

// WindowChanges exposes debounced window updates so the application loop can
// repaint when a recompute lands.
func (v *ListView) WindowChanges() <-chan virtuallist.Window {
	return v.windowCh
}

// Close releases the renderer
func (v *ListView) Close() {
	v.renderer.Close()
}

// SetSize updates the view dimensions in terminal cells
func (v *ListView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.container.SetClientHeight(v.viewportRows() * v.rowHeight)
	v.renderer.Recompute()
}

// SetRows replaces the list contents, clamping the selection
func (v *ListView) SetRows(rows []notes.Note) {
	v.rows = rows
	v.container.SetRowCount(len(rows))
	if v.selected >= len(rows) {
		v.selected = len(rows) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
	v.scrollSelectionIntoView()
	v.renderer.Recompute()
}

// viewportRows returns how many note rows fit on screen, leaving room for
// the header line
func (v *ListView) viewportRows() int {
	rows := v.height - 1
	if rows < 0 {
		rows = 0
	}
	return rows
}

// Selected returns the selected note, if any
func (v *ListView) Selected() (notes.Note, bool) {
	if len(v.rows) == 0 {
		return notes.Note{}, false
	}
	return v.rows[v.selected], true
}

// SelectedIndex returns the selected row index
func (v *ListView) SelectedIndex() int {
	return v.selected
}

// ScrollTop returns the current scroll offset in layout units
func (v *ListView) ScrollTop() int {
	return v.container.ScrollTop()
}

// Select moves the selection to row i, clamped to the list bounds
func (v *ListView) Select(i int) {
	if len(v.rows) == 0 {
		v.selected = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(v.rows)-1 {
		i = len(v.rows) - 1
	}
	v.selected = i
	if v.scrollSelectionIntoView() {
		v.renderer.OnScroll()
	}
}

// MoveSelection moves the selection by delta rows and schedules a debounced
// window recompute for the resulting scroll
func (v *ListView) MoveSelection(delta int) {
	if len(v.rows) == 0 {
		return
	}
	v.selected += delta
	if v.selected < 0 {
		v.selected = 0
	}
	if v.selected > len(v.rows)-1 {
		v.selected = len(v.rows) - 1
	}
	if v.scrollSelectionIntoView() {
		v.renderer.OnScroll()
	}
}

// PageUp moves the selection up one viewport
func (v *ListView) PageUp() {
	v.MoveSelection(-v.viewportRows())
}

// PageDown moves the selection down one viewport
func (v *ListView) PageDown() {
	v.MoveSelection(v.viewportRows())
}

// Home selects the first row
func (v *ListView) Home() {
	v.MoveSelection(-len(v.rows))
}

// End selects the last row
func (v *ListView) End() {
	v.MoveSelection(len(v.rows))
}

// scrollSelectionIntoView adjusts scrollTop so the selection stays inside
// the viewport. Returns whether the scroll offset changed.
func (v *ListView) scrollSelectionIntoView() bool {
	viewRows := v.viewportRows()
	if viewRows <= 0 {
		return false
	}

	scrollRow := v.container.ScrollTop() / v.rowHeight
	changed := false

	if v.selected < scrollRow {
		scrollRow = v.selected
		changed = true
	} else if v.selected >= scrollRow+viewRows {
		scrollRow = v.selected - viewRows + 1
		changed = true
	}

	if changed {
		v.container.SetScrollTop(scrollRow * v.rowHeight)
	}
	return changed
}

// Flush forces any pending scroll recompute, for hosts that need the window
// current before painting
func (v *ListView) Flush() {
	v.renderer.Flush()
}

// View renders the list pane
func (v *ListView) View() string {
	var b strings.Builder

	header := fmt.Sprintf(" %d notes", len(v.rows))
	b.WriteString(v.styles.Header().Render(header))
	b.WriteString("\n")

	viewRows := v.viewportRows()
	if viewRows == 0 {
		return b.String()
	}

	if len(v.rows) == 0 {
		b.WriteString(v.styles.Muted().Render("  no notes found"))
		return b.String()
	}

	scrollTop := v.container.ScrollTop()
	lines := make([]string, viewRows)

	// Paint the rendered rows whose offset falls inside the viewport. Rows
	// the renderer kept in the buffer zone exist but sit off screen; hidden
	// rows are skipped entirely.
	for i := 0; i < v.container.RowCount(); i++ {
		row := v.container.Row(i)
		if !row.Visible {
			continue
		}
		line := (row.Offset - scrollTop) / v.rowHeight
		if line < 0 || line >= viewRows {
			continue
		}
		lines[line] = v.renderRow(i)
	}

	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRow formats a single note row
func (v *ListView) renderRow(i int) string {
	note := v.rows[i]
	selected := i == v.selected

	marker := "  "
	if selected {
		marker = "> "
	}

	title := note.DisplayTitle()
	meta := note.ModTime.Format("2006-01-02")
	if note.Folder != "" {
		meta = note.Folder + "  " + meta
	}

	width := v.width
	if width <= 0 {
		width = 80
	}
	line := marker + title
	gap := width - lipgloss.Width(line) - lipgloss.Width(meta) - 1
	if gap < 1 {
		gap = 1
	}
	line += strings.Repeat(" ", gap) + meta

	if selected {
		return v.styles.Row(true).Render(line)
	}
	return v.styles.Row(false).Render(marker+title) +
		strings.Repeat(" ", gap) + v.styles.Muted().Render(meta)
}
