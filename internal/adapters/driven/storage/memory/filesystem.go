package memory

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
)

// Ensure FileSystem implements the interface.
var _ driven.FileSystem = (*FileSystem)(nil)

// FileSystem is a map-backed driven.FileSystem. It counts every call so
// tests can assert that a code path never touched storage.
type FileSystem struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	reads  int
	writes int
	mkdirs int

	// ReadErr, MkdirErr and WriteErr are returned by the matching call
	// when set.
	ReadErr  error
	MkdirErr error
	WriteErr error
}

// NewFileSystem creates an empty filesystem containing only "/".
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"/": true},
	}
}

// AddFile seeds a file and all of its parent directories.
func (f *FileSystem) AddFile(path string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	path = filepath.Clean(path)
	f.files[path] = append([]byte(nil), data...)
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		f.dirs[dir] = true
		if dir == filepath.Dir(dir) {
			break
		}
	}
}

// AddDir seeds a directory.
func (f *FileSystem) AddDir(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[filepath.Clean(path)] = true
}

// ReadFile returns a copy of the stored bytes.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	data, ok := f.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// EnsureDir creates a single directory level.
func (f *FileSystem) EnsureDir(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mkdirs++
	if f.MkdirErr != nil {
		return f.MkdirErr
	}
	path = filepath.Clean(path)
	if f.dirs[path] {
		return nil
	}
	if !f.dirs[filepath.Dir(path)] {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrNotExist}
	}
	f.dirs[path] = true
	return nil
}

// WriteFile stores data, replacing any existing file. The parent
// directory must exist.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.WriteErr != nil {
		return f.WriteErr
	}
	path = filepath.Clean(path)
	if !f.dirs[filepath.Dir(path)] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if f.dirs[path] {
		return fmt.Errorf("write %s: is a directory", path)
	}
	f.files[path] = append([]byte(nil), data...)
	return nil
}

// File returns the stored bytes for path.
func (f *FileSystem) File(path string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[filepath.Clean(path)]
	return data, ok
}

// HasDir reports whether path is a known directory.
func (f *FileSystem) HasDir(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirs[filepath.Clean(path)]
}

// FilesIn lists the files directly inside dir, sorted.
func (f *FileSystem) FilesIn(dir string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	dir = filepath.Clean(dir)
	var out []string
	for p := range f.files {
		if filepath.Dir(p) == dir {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Reads returns the number of ReadFile calls.
func (f *FileSystem) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

// Writes returns the number of WriteFile calls.
func (f *FileSystem) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

// Mkdirs returns the number of EnsureDir calls.
func (f *FileSystem) Mkdirs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mkdirs
}

// Calls returns the total number of port calls.
func (f *FileSystem) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads + f.writes + f.mkdirs
}
