package virtuallist

import "sync"

// Container is the scrollable host the renderer operates on. It owns all row
// elements for the lifetime of the list; the renderer only toggles their
// visibility and vertical offset, never creates or destroys them.
//
// Geometry is expressed in the same layout units as Config.RowHeight.
type Container interface {
	// ScrollTop returns the current scroll offset from the top of the list
	ScrollTop() int

	// ClientHeight returns the height of the visible area
	ClientHeight() int

	// RowCount returns the number of rows in the list
	RowCount() int

	// SetRowVisible shows or hides the row at index i
	SetRowVisible(i int, visible bool)

	// SetRowOffset positions the row at index i at the given vertical offset
	SetRowOffset(i, offset int)
}

// RowState is the per-row output of a recompute pass
type RowState struct {
	Visible bool
	Offset  int
}

// SliceContainer is a Container backed by a plain slice of row states. The
// TUI list view embeds one; tests use it directly. Reads and writes are
// mutex-guarded because debounced recomputes fire from a timer goroutine.
type SliceContainer struct {
	mu           sync.RWMutex
	scrollTop    int
	clientHeight int
	rows         []RowState
}

// NewSliceContainer creates a container with rowCount hidden rows
func NewSliceContainer(rowCount, clientHeight int) *SliceContainer {
	return &SliceContainer{
		clientHeight: clientHeight,
		rows:         make([]RowState, rowCount),
	}
}

// ScrollTop returns the current scroll offset
func (c *SliceContainer) ScrollTop() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scrollTop
}

// ClientHeight returns the viewport height
func (c *SliceContainer) ClientHeight() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientHeight
}

// RowCount returns the number of rows
func (c *SliceContainer) RowCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rows)
}

// SetRowVisible shows or hides a row. Writes aimed at a row a concurrent
// resize removed are dropped.
func (c *SliceContainer) SetRowVisible(i int, visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.rows) {
		return
	}
	c.rows[i].Visible = visible
}

// SetRowOffset positions a row vertically. Writes aimed at a row a concurrent
// resize removed are dropped.
func (c *SliceContainer) SetRowOffset(i, offset int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.rows) {
		return
	}
	c.rows[i].Offset = offset
}

// SetScrollTop updates the scroll offset
func (c *SliceContainer) SetScrollTop(offset int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrollTop = offset
}

// SetClientHeight updates the viewport height
func (c *SliceContainer) SetClientHeight(height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientHeight = height
}

// SetRowCount resizes the row list, preserving existing row state where
// indices overlap. New rows start hidden.
func (c *SliceContainer) SetRowCount(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if count < 0 {
		count = 0
	}
	if count <= len(c.rows) {
		c.rows = c.rows[:count]
		return
	}
	grown := make([]RowState, count)
	copy(grown, c.rows)
	c.rows = grown
}

// Row returns the state of the row at index i
func (c *SliceContainer) Row(i int) RowState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rows[i]
}

// VisibleRows returns the indices of currently visible rows in index order
func (c *SliceContainer) VisibleRows() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var visible []int
	for i := range c.rows {
		if c.rows[i].Visible {
			visible = append(visible, i)
		}
	}
	return visible
}
