package virtuallist

import "time"

// Default configuration values, matching the tuning the list view ships with.
const (
	DefaultRowHeight = 60
	DefaultBuffer    = 5
	DefaultThrottle  = 16 * time.Millisecond
)

// Config holds the renderer tuning parameters
type Config struct {
	RowHeight int           // Height of a single row in layout units
	Buffer    int           // Extra rows kept rendered on each side of the viewport
	Throttle  time.Duration // Minimum quiet period before a scroll recompute fires
}

// DefaultConfig returns the default renderer configuration
func DefaultConfig() Config {
	return Config{
		RowHeight: DefaultRowHeight,
		Buffer:    DefaultBuffer,
		Throttle:  DefaultThrottle,
	}
}

// withDefaults fills in zero or negative fields with defaults
func (c Config) withDefaults() Config {
	if c.RowHeight <= 0 {
		c.RowHeight = DefaultRowHeight
	}
	if c.Buffer <= 0 {
		c.Buffer = DefaultBuffer
	}
	if c.Throttle <= 0 {
		c.Throttle = DefaultThrottle
	}
	return c
}

// Window describes the contiguous range of rows that should be rendered for
// the current scroll position. Start and End are inclusive row indices; a
// window with End < Start renders nothing.
type Window struct {
	Start int // First rendered row, buffer included
	End   int // Last rendered row, buffer included

	// StartIndex is the first row the viewport itself covers, before the
	// buffer is applied.
	StartIndex   int
	VisibleCount int
}

// Empty returns whether the window renders no rows
func (w Window) Empty() bool {
	return w.End < w.Start
}

// Contains returns whether row index i falls inside the rendered window
func (w Window) Contains(i int) bool {
	return i >= w.Start && i <= w.End
}

// Len returns the number of rendered rows
func (w Window) Len() int {
	if w.Empty() {
		return 0
	}
	return w.End - w.Start + 1
}

// computeWindow derives the rendered window from the container geometry.
//
// visibleCount = ceil(clientHeight / rowHeight)
// startIndex   = floor(scrollTop / rowHeight)
// window       = [startIndex - buffer, startIndex + visibleCount + buffer],
// clamped to [0, rowCount-1].
//
// Negative scrollTop or clientHeight is treated as zero rather than allowed
// to produce negative indices; scrollTop past the total list height behaves
// like the bottom of the list.
func computeWindow(scrollTop, clientHeight, rowCount int, cfg Config) Window {
	if rowCount <= 0 {
		return Window{Start: 0, End: -1}
	}

	if scrollTop < 0 {
		scrollTop = 0
	}
	if clientHeight < 0 {
		clientHeight = 0
	}
	if total := rowCount * cfg.RowHeight; scrollTop > total {
		scrollTop = total
	}

	visibleCount := (clientHeight + cfg.RowHeight - 1) / cfg.RowHeight

	startIndex := scrollTop / cfg.RowHeight

	start := startIndex - cfg.Buffer
	if start < 0 {
		start = 0
	}

	end := startIndex + visibleCount + cfg.Buffer
	if end > rowCount-1 {
		end = rowCount - 1
	}

	return Window{
		Start:        start,
		End:          end,
		StartIndex:   startIndex,
		VisibleCount: visibleCount,
	}
}
