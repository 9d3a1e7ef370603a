package driving

import "github.com/belmqadem/Image-Resizer/internal/core/domain"

// SettingsService reads and writes AppSettings through a ConfigStore.
type SettingsService interface {
	// Get fills unset keys with defaults.
	Get() (*domain.AppSettings, error)
	Save(settings *domain.AppSettings) error

	// Set parses value for key ("resize.filter", ...) and persists it.
	Set(key, value string) error
	Keys() []string

	GetDefaults() domain.AppSettings
}
