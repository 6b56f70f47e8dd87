// Package virtuallist implements windowed rendering for long fixed-height
// row lists. Given a scrollable container, only the rows inside the current
// viewport plus a small buffer are kept visible; everything else is hidden
// but never removed, so the container always owns the full row set.
//
// Scroll events are throttled through a trailing-edge debouncer: a burst of
// triggers collapses into a single recompute once the burst quiets for the
// configured interval. Hosts that need the window current right away can
// call Recompute or Flush directly.
package virtuallist
