package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cleared-dev/stmt2csv/internal/extract"
	"github.com/cleared-dev/stmt2csv/internal/statement"
)

// Registry holds named statement layouts.
type Registry struct {
	layouts map[string]statement.Layout
}

// FileInfo describes a convertible file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty layout registry.
func NewRegistry() *Registry {
	return &Registry{layouts: make(map[string]statement.Layout)}
}

// Register adds a layout, filling in defaults. Names are case-insensitive.
func (r *Registry) Register(l statement.Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}
	l = l.WithDefaults()
	key := strings.ToLower(l.Name)
	if _, ok := r.layouts[key]; ok {
		return fmt.Errorf("duplicate layout: %s", key)
	}
	r.layouts[key] = l
	return nil
}

// Get returns the layout called name.
func (r *Registry) Get(name string) (statement.Layout, bool) {
	l, ok := r.layouts[strings.ToLower(name)]
	return l, ok
}

// Names returns the registered layout names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with the built-in layouts.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.Register(statement.DefaultLayout()); err != nil {
		panic(err)
	}
	return r
}

// Scan returns the files in dir that an extractor can read, by name.
// Subdirectories are not descended into.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !extract.IsSupported(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
