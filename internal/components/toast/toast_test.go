package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/notewatch/internal/components/style"
)

func newTestToast(t *testing.T) *Model {
	t.Helper()
	styles, err := style.NewManager("default")
	require.NoError(t, err)
	return New(styles)
}

func TestToastShowAndExpire(t *testing.T) {
	m := newTestToast(t)
	m.SetDuration(10 * time.Millisecond)

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())

	cmd := m.Show("note exported", LevelSuccess)
	require.NotNil(t, cmd)
	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "note exported")

	// The tick command yields the expiry message that dismisses the toast
	m.Update(cmd())
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestToastReplacementIgnoresStaleExpiry(t *testing.T) {
	m := newTestToast(t)
	m.SetDuration(time.Millisecond)

	first := m.Show("first", LevelInfo)
	_ = m.Show("second", LevelWarn)

	// Expiry of the replaced toast must not dismiss its successor
	m.Update(first())
	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "second")
}
