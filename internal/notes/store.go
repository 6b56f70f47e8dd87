package notes

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// markdownExtensions are the file extensions treated as notes
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
}

// Store is a read-only collection of notes loaded from a directory tree.
// Folders are subdirectories of the root; the store never mutates the tree.
type Store struct {
	root   string
	notes  []Note
	byID   map[ulid.ULID]int
	logger zerolog.Logger
}

// NewStore walks root and loads every markdown file it finds. Notes are
// ordered by folder, then title; the order is stable for the lifetime of the
// store, so a note's list index is a stable row index.
func NewStore(root string, logger zerolog.Logger) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving notes dir %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening notes dir %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("notes path %s is not a directory", abs)
	}

	s := &Store{
		root:   abs,
		byID:   make(map[ulid.ULID]int),
		logger: logger.With().Str("component", "notes").Logger(),
	}

	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.logger.Warn().Err(walkErr).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			// Hidden directories (.git, .obsidian, ...) are not note folders
			if path != abs && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !markdownExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		note, loadErr := s.loadNote(path)
		if loadErr != nil {
			s.logger.Warn().Err(loadErr).Str("path", path).Msg("skipping note")
			return nil
		}
		s.notes = append(s.notes, note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking notes dir %s: %w", abs, err)
	}

	sort.Slice(s.notes, func(i, j int) bool {
		if s.notes[i].Folder != s.notes[j].Folder {
			return s.notes[i].Folder < s.notes[j].Folder
		}
		return strings.ToLower(s.notes[i].Title) < strings.ToLower(s.notes[j].Title)
	})
	for i := range s.notes {
		s.byID[s.notes[i].ID] = i
	}

	s.logger.Info().Int("count", len(s.notes)).Str("root", abs).Msg("notes loaded")
	return s, nil
}

// loadNote builds a Note from a markdown file without reading the full body
func (s *Store) loadNote(path string) (Note, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Note{}, err
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return Note{}, err
	}
	folder := filepath.Dir(rel)
	if folder == "." {
		folder = ""
	}

	title, err := firstHeading(path)
	if err != nil {
		return Note{}, err
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	// ULIDs sort by timestamp, so IDs line up with note age
	id, err := ulid.New(ulid.Timestamp(info.ModTime()), rand.Reader)
	if err != nil {
		return Note{}, err
	}

	return Note{
		ID:      id,
		Title:   title,
		Path:    path,
		Folder:  filepath.ToSlash(folder),
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}, nil
}

// firstHeading returns the text of the first level-one heading, if any
func firstHeading(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# ")), nil
		}
		// Title must lead the file; any other content ends the search
		return "", scanner.Err()
	}
	return "", scanner.Err()
}

// Root returns the absolute notes directory
func (s *Store) Root() string {
	return s.root
}

// Len returns the number of notes
func (s *Store) Len() int {
	return len(s.notes)
}

// All returns every note in list order
func (s *Store) All() []Note {
	return s.notes
}

// Get returns the note with the given ID
func (s *Store) Get(id ulid.ULID) (Note, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Note{}, false
	}
	return s.notes[i], true
}

// At returns the note at list index i
func (s *Store) At(i int) Note {
	return s.notes[i]
}

// Folders returns the distinct folders in list order, root first
func (s *Store) Folders() []string {
	seen := make(map[string]bool)
	var folders []string
	for _, n := range s.notes {
		if !seen[n.Folder] {
			seen[n.Folder] = true
			folders = append(folders, n.Folder)
		}
	}
	return folders
}

// Recent returns up to n notes ordered by modification time, newest first
func (s *Store) Recent(n int) []Note {
	recent := append([]Note(nil), s.notes...)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].ModTime.After(recent[j].ModTime)
	})
	if n < len(recent) {
		recent = recent[:n]
	}
	return recent
}

// Read returns the full markdown content of a note
func (s *Store) Read(note Note) (string, error) {
	data, err := os.ReadFile(note.Path)
	if err != nil {
		return "", fmt.Errorf("reading note %s: %w", note.Path, err)
	}
	return string(data), nil
}
