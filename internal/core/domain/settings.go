package domain

// ResampleFilter names the resampling kernel used when resizing.
type ResampleFilter string

// Available resample filters.
const (
	FilterLanczos    ResampleFilter = "lanczos"
	FilterCatmullRom ResampleFilter = "catmullrom"
	FilterLinear     ResampleFilter = "linear"
	FilterBox        ResampleFilter = "box"
	FilterNearest    ResampleFilter = "nearest"
)

// AllResampleFilters returns every supported filter.
func AllResampleFilters() []ResampleFilter {
	return []ResampleFilter{FilterLanczos, FilterCatmullRom, FilterLinear, FilterBox, FilterNearest}
}

// IsValid returns true if the filter is recognised.
func (f ResampleFilter) IsValid() bool {
	for _, known := range AllResampleFilters() {
		if f == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (f ResampleFilter) String() string {
	return string(f)
}

// Description returns a human-readable description of the filter.
func (f ResampleFilter) Description() string {
	switch f {
	case FilterLanczos:
		return "Lanczos (sharpest, slowest)"
	case FilterCatmullRom:
		return "Catmull-Rom (sharp cubic)"
	case FilterLinear:
		return "Linear (smooth)"
	case FilterBox:
		return "Box (fast, good for downscaling)"
	case FilterNearest:
		return "Nearest neighbour (pixel art)"
	default:
		return "Unknown"
	}
}

// OutputSettings configures where results go.
type OutputSettings struct {
	// DirName is the folder under the home directory. Must be one segment.
	DirName string

	// OpenAfterResize opens the folder in the file browser after a success.
	OpenAfterResize bool
}

// ResizeSettings configures the resize routine.
type ResizeSettings struct {
	Filter ResampleFilter

	// JPEGQuality is 1-100.
	JPEGQuality int
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Output OutputSettings
	Resize ResizeSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			DirName:         DefaultOutputDirName,
			OpenAfterResize: true,
		},
		Resize: ResizeSettings{
			Filter:      FilterLanczos,
			JPEGQuality: 95,
		},
	}
}

// Validate checks settings for consistency.
func (s AppSettings) Validate() error {
	if err := ValidateDirName(s.Output.DirName); err != nil {
		return err
	}
	if !s.Resize.Filter.IsValid() {
		return ErrInvalidInput
	}
	if s.Resize.JPEGQuality < 1 || s.Resize.JPEGQuality > 100 {
		return ErrInvalidInput
	}
	return nil
}
