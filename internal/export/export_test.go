package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/notewatch/internal/notes"
)

func newTestExporter(t *testing.T, files map[string]string) (*Exporter, string) {
	t.Helper()
	notesDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(notesDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	store, err := notes.NewStore(notesDir, zerolog.Nop())
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "site")
	e, err := New(store, outDir, zerolog.Nop())
	require.NoError(t, err)
	return e, outDir
}

func TestExportAll(t *testing.T) {
	e, outDir := newTestExporter(t, map[string]string{
		"inbox.md":        "# Inbox\n\nhello **world**",
		"work/meeting.md": "# Meeting\n\n- agenda",
	})

	count, err := e.All()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	root, err := os.ReadFile(filepath.Join(outDir, "inbox.html"))
	require.NoError(t, err)
	assert.Contains(t, string(root), "<strong>world</strong>")
	assert.Contains(t, string(root), "<title>Inbox</title>")

	// Folder structure is mirrored
	nested, err := os.ReadFile(filepath.Join(outDir, "work", "meeting.html"))
	require.NoError(t, err)
	assert.Contains(t, string(nested), "<li>agenda</li>")
}

func TestExportHighlightsCode(t *testing.T) {
	e, outDir := newTestExporter(t, map[string]string{
		"snippet.md": "# Snippet\n\n```go\nfunc main() {}\n```\n",
	})

	_, err := e.All()
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(outDir, "snippet.html"))
	require.NoError(t, err)
	// Chroma emits inline-styled spans instead of a bare code block
	assert.Contains(t, string(out), "<span")
	assert.Contains(t, string(out), "func")
}

func TestExportEmptyStore(t *testing.T) {
	e, _ := newTestExporter(t, nil)

	count, err := e.All()
	require.NoError(t, err)
	assert.Zero(t, count)
}
