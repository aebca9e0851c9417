package store

import (
	"path/filepath"
	"sort"
	"sync"

	"vertexfx/internal/domain"
)

const pathsFilename = "paths.json"

// PathFileStore persists named sampled paths to <dir>/paths.json.
type PathFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPathFileStore returns a PathFileStore rooted at dir.
func NewPathFileStore(dir string) *PathFileStore {
	return &PathFileStore{dir: dir}
}

func (s *PathFileStore) file() string { return filepath.Join(s.dir, pathsFilename) }

func (s *PathFileStore) load() (map[string]domain.Path, error) {
	m := map[string]domain.Path{}
	if err := readJSON(s.file(), &m); err != nil {
		return nil, err
	}
	return m, nil
}

// SavePath writes p, replacing any path with the same name.
func (s *PathFileStore) SavePath(p domain.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	m[p.Name] = p
	return writeJSON(s.file(), m, 0o600)
}

// LoadPath retrieves the path stored under name.
func (s *PathFileStore) LoadPath(name string) (domain.Path, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return domain.Path{}, false, err
	}
	p, ok := m[name]
	return p, ok, nil
}

// ListPaths returns every stored path sorted by name.
func (s *PathFileStore) ListPaths() ([]domain.Path, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Path, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeletePath removes name and reports whether it existed.
func (s *PathFileStore) DeletePath(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := m[name]; !ok {
		return false, nil
	}
	delete(m, name)
	return true, writeJSON(s.file(), m, 0o600)
}

// Compile-time assertion that PathFileStore implements domain.PathStore.
var _ domain.PathStore = (*PathFileStore)(nil)
