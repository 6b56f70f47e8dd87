package virtuallist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWindowScenarios(t *testing.T) {
	cfg := Config{RowHeight: 60, Buffer: 5}

	tests := []struct {
		name         string
		scrollTop    int
		clientHeight int
		rowCount     int
		wantStart    int
		wantEnd      int
		wantIndex    int
		wantVisible  int
	}{
		{
			name:      "mid-list scroll",
			scrollTop: 600, clientHeight: 300, rowCount: 100,
			wantStart: 5, wantEnd: 20, wantIndex: 10, wantVisible: 5,
		},
		{
			name:      "top of list clamps buffer to zero",
			scrollTop: 0, clientHeight: 300, rowCount: 100,
			wantStart: 0, wantEnd: 10, wantIndex: 0, wantVisible: 5,
		},
		{
			name:      "end of list clamps window to last row",
			scrollTop: 5700, clientHeight: 300, rowCount: 100,
			wantStart: 90, wantEnd: 99, wantIndex: 95, wantVisible: 5,
		},
		{
			name:      "scrolled to the exact bottom",
			scrollTop: 6000, clientHeight: 300, rowCount: 100,
			wantStart: 95, wantEnd: 99, wantIndex: 100, wantVisible: 5,
		},
		{
			name:      "scroll beyond the list behaves like the bottom",
			scrollTop: 60000, clientHeight: 300, rowCount: 100,
			wantStart: 95, wantEnd: 99, wantIndex: 100, wantVisible: 5,
		},
		{
			name:      "fractional viewport rounds up",
			scrollTop: 0, clientHeight: 301, rowCount: 100,
			wantStart: 0, wantEnd: 11, wantIndex: 0, wantVisible: 6,
		},
		{
			name:      "viewport taller than list shows everything",
			scrollTop: 0, clientHeight: 100 * 60, rowCount: 10,
			wantStart: 0, wantEnd: 9, wantIndex: 0, wantVisible: 100,
		},
		{
			name:      "negative scroll treated as zero",
			scrollTop: -120, clientHeight: 300, rowCount: 100,
			wantStart: 0, wantEnd: 10, wantIndex: 0, wantVisible: 5,
		},
		{
			name:      "zero-height viewport is a valid degenerate state",
			scrollTop: 600, clientHeight: 0, rowCount: 100,
			wantStart: 5, wantEnd: 15, wantIndex: 10, wantVisible: 0,
		},
		{
			name:      "negative height treated as zero",
			scrollTop: 600, clientHeight: -50, rowCount: 100,
			wantStart: 5, wantEnd: 15, wantIndex: 10, wantVisible: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := computeWindow(tt.scrollTop, tt.clientHeight, tt.rowCount, cfg)

			assert.Equal(t, tt.wantStart, w.Start, "window start")
			assert.Equal(t, tt.wantEnd, w.End, "window end")
			assert.Equal(t, tt.wantIndex, w.StartIndex, "start index")
			assert.Equal(t, tt.wantVisible, w.VisibleCount, "visible count")
			assert.GreaterOrEqual(t, w.Start, 0, "no negative row index")
			assert.Less(t, w.End, tt.rowCount, "no row beyond the list")
		})
	}
}

func TestComputeWindowEmptyList(t *testing.T) {
	w := computeWindow(600, 300, 0, Config{RowHeight: 60, Buffer: 5})

	assert.True(t, w.Empty())
	assert.Equal(t, 0, w.Len())
	assert.False(t, w.Contains(0))
}

// The rendered window must always cover the viewport rows exactly, with up
// to Buffer extra rows on either side.
func TestComputeWindowCoversViewport(t *testing.T) {
	cfg := Config{RowHeight: 60, Buffer: 5}
	const rowCount = 100
	totalHeight := rowCount * cfg.RowHeight

	for scrollTop := 0; scrollTop <= totalHeight; scrollTop += 37 {
		w := computeWindow(scrollTop, 300, rowCount, cfg)

		wantIndex := scrollTop / cfg.RowHeight
		wantStart := wantIndex - cfg.Buffer
		if wantStart < 0 {
			wantStart = 0
		}
		wantEnd := wantIndex + w.VisibleCount + cfg.Buffer
		if wantEnd > rowCount-1 {
			wantEnd = rowCount - 1
		}

		assert.Equal(t, wantStart, w.Start, "scrollTop=%d", scrollTop)
		assert.Equal(t, wantEnd, w.End, "scrollTop=%d", scrollTop)
	}
}

// Increasing scrollTop never decreases the start index
func TestComputeWindowMonotonic(t *testing.T) {
	cfg := Config{RowHeight: 60, Buffer: 5}

	prev := -1
	for scrollTop := 0; scrollTop <= 6600; scrollTop += 13 {
		w := computeWindow(scrollTop, 300, 100, cfg)
		assert.GreaterOrEqual(t, w.StartIndex, prev, "scrollTop=%d", scrollTop)
		prev = w.StartIndex
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, DefaultRowHeight, cfg.RowHeight)
	assert.Equal(t, DefaultBuffer, cfg.Buffer)
	assert.Equal(t, DefaultThrottle, cfg.Throttle)

	// Explicit values survive
	custom := Config{RowHeight: 1, Buffer: 2, Throttle: DefaultThrottle}.withDefaults()
	assert.Equal(t, 1, custom.RowHeight)
	assert.Equal(t, 2, custom.Buffer)
}
