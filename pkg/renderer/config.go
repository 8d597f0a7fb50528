package renderer

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidConfig is wrapped by every RenderConfig validation failure
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains the settings for a single render
type RenderConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Primary rays per pixel (1 = pixel centre, no jitter)

	EnableShadows          bool
	EnableAmbientOcclusion bool
	AOSamples              int     // Hemisphere rays per hit
	AOMaxDistance          float64 // Occluders farther than this are ignored
	AOStrength             float64 // 0 disables darkening, 1 is full occlusion

	MaxRecursionDepth int     // Deepest reflection/refraction bounce
	Gamma             float64 // Output gamma, 1 leaves colors linear

	Seed       int64 // Base seed for jitter and occlusion sampling
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	TileSize   int   // Size of each square tile in pixels
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:                  400,
		Height:                 300,
		SamplesPerPixel:        1,
		EnableShadows:          true,
		EnableAmbientOcclusion: false,
		AOSamples:              8,
		AOMaxDistance:          2.0,
		AOStrength:             1.0,
		MaxRecursionDepth:      3,
		Gamma:                  2.2,
		Seed:                   42,
		NumWorkers:             0, // Auto-detect CPU count
		TileSize:               32,
	}
}

// Validate reports every setting that cannot be rendered
func (c RenderConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Width > 0, "width must be positive, got %d", c.Width)
	check(c.Height > 0, "height must be positive, got %d", c.Height)
	check(c.SamplesPerPixel >= 1, "samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	check(c.AOSamples >= 1, "ambient occlusion samples must be at least 1, got %d", c.AOSamples)
	check(c.AOMaxDistance > 0, "ambient occlusion distance must be positive, got %g", c.AOMaxDistance)
	check(c.AOStrength >= 0 && c.AOStrength <= 1, "ambient occlusion strength must be in [0,1], got %g", c.AOStrength)
	check(c.MaxRecursionDepth >= 0, "max recursion depth must not be negative, got %d", c.MaxRecursionDepth)
	check(c.Gamma > 0, "gamma must be positive, got %g", c.Gamma)
	check(c.NumWorkers >= 0, "worker count must not be negative, got %d", c.NumWorkers)
	check(c.TileSize > 0, "tile size must be positive, got %d", c.TileSize)

	return errors.Join(errs...)
}

func (c RenderConfig) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}
