package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML layout.
type document struct {
	Groups map[string][]float64 `yaml:"groups"`
}

// File keeps sizes for any number of groups in a single YAML file. Every
// Save rewrites the whole file through a temporary file and a rename.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a store backed by path. The file is created on first Save.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load returns the sizes saved for id. A missing file is not an error.
func (f *File) Load(id string) ([]float64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.readLocked()
	if err != nil {
		return nil, false, err
	}
	sizes, ok := doc.Groups[id]
	return slices.Clone(sizes), ok, nil
}

// Save stores sizes for id, keeping every other group in the file.
func (f *File) Save(id string, sizes []float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.readLocked()
	if err != nil {
		return err
	}
	doc.Groups[id] = slices.Clone(sizes)
	return f.writeLocked(doc)
}

func (f *File) readLocked() (document, error) {
	doc := document{Groups: make(map[string][]float64)}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	if doc.Groups == nil {
		doc.Groups = make(map[string][]float64)
	}
	return doc, nil
}

func (f *File) writeLocked(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode sizes: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}
