package driven

// ConfigStore is a flat key/value view over persisted settings.
// Keys are dotted ("resize.filter"). Typed getters return the zero value
// for a missing key or a value of another type.
type ConfigStore interface {
	// Get returns the raw value and whether key is present.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool

	// Set stores value and persists it.
	Set(key string, value any) error

	// Save writes all values to storage.
	Save() error

	// Load replaces the in-memory values with those in storage.
	Load() error

	// Path identifies the backing storage, for display.
	Path() string
}
