package virtuallist

import "sync"

// Renderer keeps the render cost of a long list bounded by showing only the
// rows inside the current viewport plus a small buffer. It attaches to a
// Container at construction and reacts to scroll triggers for the lifetime
// of the list.
//
// Each recompute is a full pass over every row. The pass is O(rowCount) by
// design: the window is small either way, and a full rescan keeps the state
// machine trivial compared to diffing the previous window.
type Renderer struct {
	mu        sync.Mutex
	cfg       Config
	container Container
	debouncer *Debouncer
	window    Window

	onWindowChange func(Window)
}

// NewRenderer creates a renderer attached to the given container. Zero-value
// config fields fall back to defaults. The initial window is computed
// immediately.
func NewRenderer(container Container, cfg Config) *Renderer {
	r := &Renderer{
		cfg:       cfg.withDefaults(),
		container: container,
	}
	r.debouncer = NewDebouncer(r.cfg.Throttle, func() {
		r.Recompute()
	})
	r.Recompute()
	return r
}

// Config returns the renderer configuration
func (r *Renderer) Config() Config {
	return r.cfg
}

// OnScroll is the throttled scroll trigger. Bursts of calls coalesce into a
// single trailing recompute after the throttle interval passes without a new
// trigger. Trailing-only throttling means a continuous fast scroll defers
// the recompute until the scroll quiets; callers that need the window
// up to date right now use Recompute or Flush instead.
func (r *Renderer) OnScroll() {
	r.debouncer.Trigger()
}

// Flush runs any pending scroll recompute immediately
func (r *Renderer) Flush() {
	r.debouncer.Flush()
}

// Recompute reads the container geometry and re-applies visibility and
// offsets to every row. It returns the computed window.
func (r *Renderer) Recompute() Window {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Snapshot the row count so one pass works against one list length even
	// if the container is resized mid-pass; the container drops writes to
	// rows that no longer exist.
	rowCount := r.container.RowCount()

	w := computeWindow(
		r.container.ScrollTop(),
		r.container.ClientHeight(),
		rowCount,
		r.cfg,
	)

	for i := 0; i < rowCount; i++ {
		if w.Contains(i) {
			r.container.SetRowVisible(i, true)
			r.container.SetRowOffset(i, i*r.cfg.RowHeight)
		} else {
			r.container.SetRowVisible(i, false)
		}
	}

	changed := w != r.window
	r.window = w

	if changed && r.onWindowChange != nil {
		r.onWindowChange(w)
	}
	return w
}

// Window returns the most recently computed window
func (r *Renderer) Window() Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.window
}

// SetOnWindowChange sets a callback invoked from Recompute whenever the
// computed window differs from the previous one. The callback runs with the
// renderer lock held and must not call back into the renderer.
func (r *Renderer) SetOnWindowChange(callback func(Window)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onWindowChange = callback
}

// Close cancels any pending recompute
func (r *Renderer) Close() {
	r.debouncer.Cancel()
}
