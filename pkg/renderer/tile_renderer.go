package renderer

import (
	"context"
	"image"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a tile whose random source is seeded from seed and its ID
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders tiles into a shared framebuffer
type TileRenderer struct {
	engine *Engine
	camera *Camera
	config RenderConfig
	fb     *Framebuffer
}

// NewTileRenderer creates a tile renderer around its own engine
func NewTileRenderer(scene core.Scene, camera *Camera, config RenderConfig, fb *Framebuffer) *TileRenderer {
	return &TileRenderer{
		engine: NewEngine(scene, config, nil),
		camera: camera,
		config: config,
		fb:     fb,
	}
}

// RenderTile writes every pixel of tile exactly once. Tiles never overlap,
// so concurrent calls on distinct tiles do not contend.
func (tr *TileRenderer) RenderTile(ctx context.Context, tile *Tile) (RenderStats, error) {
	sampler := core.NewRandomSampler(tile.Random)
	tr.engine.SetSampler(sampler)

	stats := RenderStats{TilesRendered: 1}
	bounds := tile.Bounds

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if err := ctx.Err(); err != nil {
				return stats, err
			}

			var ps PixelStats
			tr.samplePixel(x, y, sampler, &ps)

			color := ps.GetColor().Clamp01().GammaCorrect(tr.config.Gamma)
			tr.fb.Set(x, y, color.Clamp01())

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats, nil
}

// samplePixel traces SamplesPerPixel primary rays through pixel (x, y).
// A single sample goes through the pixel centre.
func (tr *TileRenderer) samplePixel(x, y int, sampler core.Sampler, ps *PixelStats) {
	spp := max(1, tr.config.SamplesPerPixel)
	for s := 0; s < spp; s++ {
		var jx, jy float64
		if spp > 1 {
			jx = sampler.Get1D() - 0.5
			jy = sampler.Get1D() - 0.5
		}
		ray := tr.camera.GetRay(x, y, jx, jy)
		ps.AddSample(tr.engine.Trace(ray, 0))
	}
}
