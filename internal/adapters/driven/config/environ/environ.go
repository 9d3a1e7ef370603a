// Package environ reads IMAGESHRINK_* environment variables that override
// the settings stored in the config file for one run.
package environ

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

// Overrides holds the variables that were set. Unset ones stay nil.
type Overrides struct {
	OutputDirName   *string `env:"IMAGESHRINK_OUTPUT_DIR"`
	OpenAfterResize *bool   `env:"IMAGESHRINK_OPEN_AFTER_RESIZE"`
	Filter          *string `env:"IMAGESHRINK_FILTER"`
	JPEGQuality     *int    `env:"IMAGESHRINK_JPEG_QUALITY"`
}

// Load reads overrides from the process environment.
func Load() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, fmt.Errorf("config error: %w", err)
	}
	return o, nil
}

// LoadFrom reads overrides from the given variables instead of the process
// environment.
func LoadFrom(environment map[string]string) (Overrides, error) {
	var o Overrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environment}); err != nil {
		return Overrides{}, fmt.Errorf("config error: %w", err)
	}
	return o, nil
}

// IsEmpty returns true if no override is set.
func (o Overrides) IsEmpty() bool {
	return o.OutputDirName == nil && o.OpenAfterResize == nil && o.Filter == nil && o.JPEGQuality == nil
}

// Apply returns settings with the overrides applied. The result is
// validated; settings is returned unchanged on error.
func (o Overrides) Apply(settings domain.AppSettings) (domain.AppSettings, error) {
	out := settings
	if o.OutputDirName != nil {
		out.Output.DirName = *o.OutputDirName
	}
	if o.OpenAfterResize != nil {
		out.Output.OpenAfterResize = *o.OpenAfterResize
	}
	if o.Filter != nil {
		out.Resize.Filter = domain.ResampleFilter(*o.Filter)
	}
	if o.JPEGQuality != nil {
		out.Resize.JPEGQuality = *o.JPEGQuality
	}

	if err := out.Validate(); err != nil {
		return settings, fmt.Errorf("environment overrides: %w", err)
	}
	return out, nil
}
