package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

const (
	// DefaultDirName is created under the user's home directory.
	DefaultDirName = ".imageshrink"
	fileName       = "config.toml"
)

// ConfigStore keeps settings in memory under dotted keys and mirrors them to
// a TOML file, one table per key prefix.
type ConfigStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// DefaultDir returns ~/.imageshrink.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: locate home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName), nil
}

// NewConfigStore opens <dir>/config.toml, creating dir when needed. An empty
// dir means DefaultDir. A missing file is an empty configuration.
func NewConfigStore(dir string) (*ConfigStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("config: create %s: %w", dir, err)
	}

	s := &ConfigStore{path: filepath.Join(dir, fileName)}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) GetString(key string) string {
	v, _ := s.Get(key)
	str, _ := v.(string)
	return str
}

// GetInt accepts the int64 produced by the TOML decoder as well as values
// set in this process.
func (s *ConfigStore) GetInt(key string) int {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

func (s *ConfigStore) GetBool(key string) bool {
	v, _ := s.Get(key)
	b, _ := v.(bool)
	return b
}

// Set updates key and rewrites the file.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.writeLocked()
}

func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked()
}

// writeLocked replaces the file through a temp file in the same directory.
func (s *ConfigStore) writeLocked() error {
	data, err := toml.Marshal(nestMap(s.values))
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+fileName+".*")
	if err != nil {
		return fmt.Errorf("config: write %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("config: write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("config: write %s: %w", s.path, err)
	}
	return nil
}

// Load discards in-memory values and rereads the file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.values = map[string]any{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", s.path, err)
	}

	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("config: parse %s: %w", s.path, err)
	}
	s.values = flattenMap(tree, "")
	return nil
}

func (s *ConfigStore) Path() string { return s.path }

// flattenMap turns {"a": {"b": 1}} into {"a.b": 1}.
func flattenMap(tree map[string]any, prefix string) map[string]any {
	out := make(map[string]any, len(tree))
	for k, v := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		sub, ok := v.(map[string]any)
		if !ok {
			out[k] = v
			continue
		}
		for sk, sv := range flattenMap(sub, k) {
			out[sk] = sv
		}
	}
	return out
}

// nestMap is the inverse of flattenMap. Keys are placed in sorted order, so a
// scalar "a" is seen before "a.b"; a key whose prefix is already a scalar
// stays flat.
func nestMap(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make(map[string]any)
	for _, k := range keys {
		if !place(out, strings.Split(k, "."), flat[k]) {
			out[k] = flat[k]
		}
	}
	return out
}

func place(node map[string]any, parts []string, value any) bool {
	for _, p := range parts[:len(parts)-1] {
		child, ok := node[p]
		if !ok {
			child = map[string]any{}
			node[p] = child
		}
		next, ok := child.(map[string]any)
		if !ok {
			return false
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
	return true
}
