package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with the given args, returning stdout
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep the test away from any real user config
	t.Setenv("NOTEWATCH_CONFIG_DIR", t.TempDir())
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func notesFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := "# Fixture\n\n```go\npackage main\n```\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fixture.md"), []byte(content), 0o644))
	return dir
}

func TestThemesCommand(t *testing.T) {
	out, err := runCommand(t, "themes", "--notes-dir", notesFixture(t))
	require.NoError(t, err)

	assert.Contains(t, out, "default")
	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "light")
	assert.Contains(t, out, "* default", "configured theme is marked")
}

func TestExportCommand(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "site")

	out, err := runCommand(t,
		"export",
		"--notes-dir", notesFixture(t),
		"--out", outDir,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 1 notes")

	html, err := os.ReadFile(filepath.Join(outDir, "fixture.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<title>Fixture</title>")
}

func TestExportMissingNotesDir(t *testing.T) {
	_, err := runCommand(t,
		"export",
		"--notes-dir", filepath.Join(t.TempDir(), "missing"),
		"--out", t.TempDir(),
	)
	assert.Error(t, err)
}

func TestRootRejectsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notes_dir: [oops"), 0o644))

	_, err := runCommand(t, "themes", "--config", path)
	assert.Error(t, err)
}

func TestFlagOverridesConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: dark\n"), 0o644))

	out, err := runCommand(t,
		"themes",
		"--config", cfgPath,
		"--notes-dir", notesFixture(t),
		"--theme", "light",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "* light")
}

func TestVersionFlag(t *testing.T) {
	out, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
