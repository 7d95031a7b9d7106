// Package store persists named manuscript drafts on disk.
//
// Each draft is one JSON record in a diskv store. Loading always goes
// through manuscript.FromPages and manuscript.Restore, so a record edited by
// hand can never produce an out-of-range document, cursor or page.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/iw2rmb/genko/manuscript"
)

// Schema tags every record written by this package.
const Schema = "genko/v1"

const ext = ".json"

var (
	ErrNotFound    = errors.New("store: draft not found")
	ErrInvalidName = errors.New("store: invalid draft name")
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]*$`)

// ValidName reports whether name can be used as a draft name.
func ValidName(name string) bool {
	return validName.MatchString(name)
}

// Summary describes a stored draft without loading it into a State.
type Summary struct {
	Name  string
	Cols  int
	Rows  int
	Pages int
	Chars int
}

type record struct {
	Schema string       `json:"schema"`
	Cols   int          `json:"cols"`
	Rows   int          `json:"rows"`
	Pages  []pageRecord `json:"pages"`
	Cursor int          `json:"cursor"`
	Page   int          `json:"page"`
}

type pageRecord struct {
	Cells    []string `json:"cells"`
	Overflow []string `json:"overflow"`
}

type Store struct {
	d        *diskv.Diskv
	basePath string
	log      *slog.Logger
}

// New returns a Store rooted at basePath. The directory is created on the
// first write.
func New(basePath string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, ".tmp"),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      logger,
	}
}

func (s *Store) BasePath() string { return s.basePath }

// Save writes st under name, replacing any existing draft. The composition
// is not saved.
func (s *Store) Save(name string, st manuscript.State) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := json.MarshalIndent(toRecord(st), "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}
	if err := s.d.Write(name, data); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	s.log.Debug("draft saved", "name", name, "bytes", len(data), "version", st.Version())
	return nil
}

// Load reads the draft stored under name.
func (s *Store) Load(name string) (manuscript.State, error) {
	rec, err := s.read(name)
	if err != nil {
		return manuscript.State{}, err
	}
	st := fromRecord(rec)
	s.log.Debug("draft loaded", "name", name, "pages", st.Document().PageCount())
	return st, nil
}

func (s *Store) Has(name string) bool {
	return ValidName(name) && s.d.Has(name)
}

// List returns a summary of every readable draft, sorted by name.
// Unreadable records are logged and skipped.
func (s *Store) List(ctx context.Context) []Summary {
	var out []Summary
	for key := range s.d.Keys(ctx.Done()) {
		if !ValidName(key) {
			continue
		}
		rec, err := s.read(key)
		if err != nil {
			s.log.Warn("skipping unreadable draft", "name", key, "err", err)
			continue
		}
		doc := fromRecord(rec).Document()
		out = append(out, Summary{
			Name:  key,
			Cols:  doc.Cols(),
			Rows:  doc.Rows(),
			Pages: doc.PageCount(),
			Chars: doc.CharCount(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) Delete(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !s.d.Has(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := s.d.Erase(name); err != nil {
		return fmt.Errorf("store: erase %s: %w", name, err)
	}
	s.log.Debug("draft deleted", "name", name)
	return nil
}

func (s *Store) read(name string) (record, error) {
	if !ValidName(name) {
		return record{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !s.d.Has(name) {
		return record{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	val, err := s.d.Read(name)
	if err != nil {
		return record{}, fmt.Errorf("store: read %s: %w", name, err)
	}
	var rec record
	if err := json.Unmarshal(val, &rec); err != nil {
		return record{}, fmt.Errorf("store: decode %s: %w", name, err)
	}
	if rec.Schema == "" {
		rec.Schema = Schema
	}
	if rec.Schema != Schema {
		return record{}, fmt.Errorf("store: %s: unsupported schema %q", name, rec.Schema)
	}
	return rec, nil
}

func toRecord(st manuscript.State) record {
	doc := st.Document()
	rec := record{
		Schema: Schema,
		Cols:   doc.Cols(),
		Rows:   doc.Rows(),
		Cursor: st.Cursor(),
		Page:   st.PageIndex(),
	}
	for _, p := range doc.Pages() {
		rec.Pages = append(rec.Pages, pageRecord{Cells: p.Cells, Overflow: p.Overflow})
	}
	return rec
}

func fromRecord(rec record) manuscript.State {
	pages := make([]manuscript.Page, 0, len(rec.Pages))
	for _, p := range rec.Pages {
		pages = append(pages, manuscript.Page{Cells: p.Cells, Overflow: p.Overflow})
	}
	doc := manuscript.FromPages(rec.Cols, rec.Rows, pages)
	return manuscript.Restore(doc, rec.Cursor, rec.Page)
}

// keyToPathTransform stores every draft as <name>.json directly under the
// base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key + ext}
}

// pathToKeyTransform ignores nested files (the temp dir) and files that
// were not written by this package.
func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) > 0 || !strings.HasSuffix(pathKey.FileName, ext) {
		return ""
	}
	return strings.TrimSuffix(pathKey.FileName, ext)
}
