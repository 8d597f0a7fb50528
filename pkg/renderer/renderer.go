package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer renders a scene into a framebuffer using a pool of tile workers
type Renderer struct {
	scene  core.Scene
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRenderer validates config and builds the camera for the image size
func NewRenderer(scene core.Scene, cameraConfig CameraConfig, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	camera, err := NewCamera(cameraConfig, config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{
		scene:  scene,
		camera: camera,
		config: config,
		logger: logger,
	}, nil
}

// Config returns the render configuration
func (r *Renderer) Config() RenderConfig {
	return r.config
}

// InspectPixel returns the nearest surface seen through the centre of pixel
// (x, y), with its normal normalized as Trace would shade it
func (r *Renderer) InspectPixel(x, y int) (*core.Intercept, bool) {
	if x < 0 || y < 0 || x >= r.config.Width || y >= r.config.Height {
		return nil, false
	}
	ray := r.camera.GetRay(x, y, 0, 0)
	hit, ok := NewEngine(r.scene, r.config, nil).nearestHit(ray, core.Epsilon, math.Inf(1))
	if !ok {
		return nil, false
	}
	hit.Normal = core.SafeNormalize(hit.Normal, ray.Direction.Negate())
	return hit, true
}

// Render traces the whole image. Every framebuffer cell is written exactly
// once. If ctx is cancelled the render stops and ctx.Err() is returned.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	startTime := time.Now()

	fb := NewFramebuffer(r.config.Width, r.config.Height)
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize, r.config.Seed)

	pool := NewWorkerPool(r.config.workers(), len(tiles), func() *TileRenderer {
		return NewTileRenderer(r.scene, r.camera, r.config, fb)
	})

	r.logger.Printf("Rendering %dx%d with %d samples per pixel (%d tiles, %d workers)...\n",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error
	lastReported := 0

	for completed := 0; completed < len(tiles); completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)

		if percent := 100 * (completed + 1) / len(tiles); percent/10 > lastReported/10 {
			r.logger.Printf("%d%% ...\n", percent)
			lastReported = percent
		}
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)

	if renderErr != nil {
		r.logger.Printf("Rendering cancelled after %v: %v\n", stats.Duration, renderErr)
		return nil, stats, renderErr
	}

	r.logger.Printf("Render completed in %v (%d rays)\n", stats.Duration, stats.TotalSamples)
	return fb, stats, nil
}
