package notes

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Note is a single markdown note discovered in the notes directory
type Note struct {
	ID      ulid.ULID
	Title   string
	Path    string // Absolute path to the markdown file
	Folder  string // Folder relative to the notes root, "" for the root itself
	ModTime time.Time
	Size    int64
}

// DisplayTitle returns the note title, falling back to the file name
func (n Note) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	base := filepath.Base(n.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
