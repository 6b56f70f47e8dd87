package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/user/notewatch/internal/notes"
)

// pageTemplate wraps rendered note bodies in a minimal standalone page
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { max-width: 48rem; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.6; }
pre { padding: 1rem; overflow-x: auto; border-radius: 4px; }
code { font-family: monospace; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

// Exporter renders notes to standalone HTML files
type Exporter struct {
	store  *notes.Store
	outDir string
	md     goldmark.Markdown
	tmpl   *template.Template
	logger zerolog.Logger
}

// New creates an exporter writing to outDir
func New(store *notes.Store, outDir string, logger zerolog.Logger) (*Exporter, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &Exporter{
		store:  store,
		outDir: outDir,
		md:     md,
		tmpl:   tmpl,
		logger: logger.With().Str("component", "export").Logger(),
	}, nil
}

// All renders every note in the store and returns the number exported.
// Notes that fail to render are skipped, not fatal.
func (e *Exporter) All() (int, error) {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating export dir %s: %w", e.outDir, err)
	}

	exported := 0
	for _, note := range e.store.All() {
		if err := e.One(note); err != nil {
			e.logger.Warn().Err(err).Str("note", note.Path).Msg("skipping note")
			continue
		}
		exported++
	}

	e.logger.Info().Int("count", exported).Str("dir", e.outDir).Msg("export finished")
	return exported, nil
}

// One renders a single note to its HTML file
func (e *Exporter) One(note notes.Note) error {
	content, err := e.store.Read(note)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	if err := e.md.Convert([]byte(content), &body); err != nil {
		return fmt.Errorf("rendering %s: %w", note.Path, err)
	}

	outPath := e.outputPath(note)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return e.tmpl.Execute(f, struct {
		Title string
		Body  template.HTML
	}{
		Title: note.Title,
		Body:  template.HTML(body.String()),
	})
}

// outputPath mirrors the note's folder structure under the export dir
func (e *Exporter) outputPath(note notes.Note) string {
	base := strings.TrimSuffix(filepath.Base(note.Path), filepath.Ext(note.Path)) + ".html"
	if note.Folder == "" {
		return filepath.Join(e.outDir, base)
	}
	return filepath.Join(e.outDir, filepath.FromSlash(note.Folder), base)
}
