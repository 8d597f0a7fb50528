package loaders

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/environment"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrEmptyImage is returned for images without pixels
var ErrEmptyImage = errors.New("image has no pixels")

// LoadTexture loads a PNG, JPEG, BMP, GIF or TIFF image as a texture.
// Images larger than maxSize on either side are downscaled to fit,
// preserving aspect ratio; maxSize 0 keeps the original size.
func LoadTexture(filename string, maxSize int) (*material.ImageTexture, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", filename, err)
	}
	tex, err := toTexture(img, maxSize)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", filename, err)
	}
	return tex, nil
}

// DecodeTexture reads an encoded image from r. See LoadTexture for maxSize.
func DecodeTexture(r io.Reader, maxSize int) (*material.ImageTexture, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture: %w", err)
	}
	return toTexture(img, maxSize)
}

// LoadEnvironment loads an equirectangular panorama as an environment map
func LoadEnvironment(filename string, maxSize int, intensity float64) (*environment.Equirect, error) {
	tex, err := LoadTexture(filename, maxSize)
	if err != nil {
		return nil, err
	}
	env := environment.NewEquirect(tex)
	env.Intensity = intensity
	return env, nil
}

func toTexture(img image.Image, maxSize int) (*material.ImageTexture, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	if maxSize > 0 && (bounds.Dx() > maxSize || bounds.Dy() > maxSize) {
		img = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
	}
	return material.NewImageTextureFromImage(img), nil
}
