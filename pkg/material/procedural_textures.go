package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewCheckerboardTexture bakes a checkerboard into an image texture,
// useful where a shape's UVs should drive the pattern.
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	if checkSize <= 0 {
		checkSize = 1
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := color1
			if (x/checkSize+y/checkSize)%2 != 0 {
				color = color2
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewUVDebugTexture shows texture coordinates as colors:
// U in the red channel, V in the green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		// Row 0 is the top of the image, i.e. v = 1
		v := 1.0 - float64(y)/float64(max(height-1, 1))
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(width-1, 1))
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
