package driven

// FileSystem is the only way the coordinator touches disk.
type FileSystem interface {
	// ReadFile returns the full contents of path.
	ReadFile(path string) ([]byte, error)

	// EnsureDir creates dir if it does not exist. Only the final
	// path element is created; the parent must already exist.
	EnsureDir(dir string) error

	// WriteFile replaces path with data. The write is all-or-nothing:
	// on error no partial file is left at path.
	WriteFile(path string, data []byte) error
}
