package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

func TestLoadFrom_Empty(t *testing.T) {
	o, err := LoadFrom(map[string]string{})

	require.NoError(t, err)
	assert.True(t, o.IsEmpty())
}

func TestLoadFrom_AllSet(t *testing.T) {
	o, err := LoadFrom(map[string]string{
		"IMAGESHRINK_OUTPUT_DIR":        "thumbs",
		"IMAGESHRINK_OPEN_AFTER_RESIZE": "false",
		"IMAGESHRINK_FILTER":            "box",
		"IMAGESHRINK_JPEG_QUALITY":      "80",
	})
	require.NoError(t, err)
	require.False(t, o.IsEmpty())

	settings, err := o.Apply(domain.DefaultAppSettings())

	require.NoError(t, err)
	assert.Equal(t, "thumbs", settings.Output.DirName)
	assert.False(t, settings.Output.OpenAfterResize)
	assert.Equal(t, domain.FilterBox, settings.Resize.Filter)
	assert.Equal(t, 80, settings.Resize.JPEGQuality)
}

func TestLoadFrom_Malformed(t *testing.T) {
	_, err := LoadFrom(map[string]string{"IMAGESHRINK_JPEG_QUALITY": "high"})

	assert.Error(t, err)
}

func TestApply_PartialKeepsOtherValues(t *testing.T) {
	o, err := LoadFrom(map[string]string{"IMAGESHRINK_FILTER": "nearest"})
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	settings, err := o.Apply(defaults)

	require.NoError(t, err)
	assert.Equal(t, domain.FilterNearest, settings.Resize.Filter)
	assert.Equal(t, defaults.Output, settings.Output)
	assert.Equal(t, defaults.Resize.JPEGQuality, settings.Resize.JPEGQuality)
}

func TestApply_InvalidLeavesSettingsUnchanged(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "unknown filter", vars: map[string]string{"IMAGESHRINK_FILTER": "sharpest"}},
		{name: "quality out of range", vars: map[string]string{"IMAGESHRINK_JPEG_QUALITY": "0"}},
		{name: "nested output dir", vars: map[string]string{"IMAGESHRINK_OUTPUT_DIR": "a/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := LoadFrom(tt.vars)
			require.NoError(t, err)

			defaults := domain.DefaultAppSettings()
			settings, err := o.Apply(defaults)

			assert.Error(t, err)
			assert.Equal(t, defaults, settings)
		})
	}
}
