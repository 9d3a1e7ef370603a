package services

import (
	"fmt"
	"strconv"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyOutputDirName     = "output.dir_name"
	KeyOpenAfterResize   = "output.open_after_resize"
	KeyResizeFilter      = "resize.filter"
	KeyResizeJPEGQuality = "resize.jpeg_quality"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			DirName:         s.getDirName(defaults.Output.DirName),
			OpenAfterResize: s.getBool(KeyOpenAfterResize, defaults.Output.OpenAfterResize),
		},
		Resize: domain.ResizeSettings{
			Filter:      s.getFilter(defaults.Resize.Filter),
			JPEGQuality: s.getQuality(defaults.Resize.JPEGQuality),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(KeyOutputDirName, settings.Output.DirName); err != nil {
		return fmt.Errorf("save %s: %w", KeyOutputDirName, err)
	}
	if err := s.configStore.Set(KeyOpenAfterResize, settings.Output.OpenAfterResize); err != nil {
		return fmt.Errorf("save %s: %w", KeyOpenAfterResize, err)
	}
	if err := s.configStore.Set(KeyResizeFilter, settings.Resize.Filter.String()); err != nil {
		return fmt.Errorf("save %s: %w", KeyResizeFilter, err)
	}
	if err := s.configStore.Set(KeyResizeJPEGQuality, settings.Resize.JPEGQuality); err != nil {
		return fmt.Errorf("save %s: %w", KeyResizeJPEGQuality, err)
	}
	return nil
}

// Set updates a single setting from text, as typed on the command line.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyOutputDirName:
		settings.Output.DirName = value
	case KeyOpenAfterResize:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		settings.Output.OpenAfterResize = b
	case KeyResizeFilter:
		settings.Resize.Filter = domain.ResampleFilter(value)
		if !settings.Resize.Filter.IsValid() {
			return fmt.Errorf("%w: unknown filter %q", domain.ErrInvalidInput, value)
		}
	case KeyResizeJPEGQuality:
		q, err := strconv.Atoi(value)
		if err != nil || q < 1 || q > 100 {
			return fmt.Errorf("%w: %s expects a number from 1 to 100", domain.ErrInvalidInput, key)
		}
		settings.Resize.JPEGQuality = q
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrNotFound, key)
	}

	return s.Save(settings)
}

// Keys lists the settable keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyOutputDirName, KeyOpenAfterResize, KeyResizeFilter, KeyResizeJPEGQuality}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getDirName(fallback string) string {
	name := s.configStore.GetString(KeyOutputDirName)
	if name == "" || domain.ValidateDirName(name) != nil {
		return fallback
	}
	return name
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getFilter(fallback domain.ResampleFilter) domain.ResampleFilter {
	f := domain.ResampleFilter(s.configStore.GetString(KeyResizeFilter))
	if !f.IsValid() {
		return fallback
	}
	return f
}

func (s *SettingsService) getQuality(fallback int) int {
	q := s.configStore.GetInt(KeyResizeJPEGQuality)
	if q < 1 || q > 100 {
		return fallback
	}
	return q
}
