package themes

import (
	"embed"
	"io/fs"
)

// EmbeddedFS contains the built-in theme definitions
//
//go:embed all:embedded
var EmbeddedFS embed.FS

// GetFS returns the embedded filesystem rooted at "embedded"
func GetFS() (fs.FS, error) {
	return fs.Sub(EmbeddedFS, "embedded")
}
