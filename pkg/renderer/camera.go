package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidCamera is wrapped by every camera construction failure
var ErrInvalidCamera = errors.New("invalid camera")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Eye    core.Vec3 // Camera position
	Target core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction (usually (0,1,0))
	FOV    float64   // Vertical field of view in degrees
}

// DefaultCameraConfig looks down -Z from five units away
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:    core.NewVec3(0, 0, 5),
		Target: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		FOV:    60,
	}
}

// Camera is a pinhole camera generating primary rays for a width×height image
type Camera struct {
	eye     core.Vec3
	forward core.Vec3
	right   core.Vec3
	trueUp  core.Vec3
	halfW   float64
	halfH   float64
	width   int
	height  int
}

// NewCamera derives the camera basis and projection extents
func NewCamera(config CameraConfig, width, height int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidCamera, width, height)
	}
	if !(config.FOV > 0 && config.FOV < 180) {
		return nil, fmt.Errorf("%w: field of view %g must be in (0, 180)", ErrInvalidCamera, config.FOV)
	}

	forward := config.Target.Subtract(config.Eye).Normalize()
	if forward.IsZero() {
		return nil, fmt.Errorf("%w: eye and target coincide at %v", ErrInvalidCamera, config.Eye)
	}
	side := forward.Cross(config.Up)
	if side.Length() < 1e-9 {
		return nil, fmt.Errorf("%w: up %v is parallel to the view direction", ErrInvalidCamera, config.Up)
	}
	right := side.Normalize()
	trueUp := right.Cross(forward).Normalize()

	halfH := math.Tan(config.FOV * math.Pi / 180 / 2)
	aspect := float64(width) / float64(height)

	return &Camera{
		eye:     config.Eye,
		forward: forward,
		right:   right,
		trueUp:  trueUp,
		halfW:   aspect * halfH,
		halfH:   halfH,
		width:   width,
		height:  height,
	}, nil
}

// GetRay returns the primary ray through pixel (x, y) offset by a jitter in
// [-0.5, 0.5). Row 0 is the top of the image.
func (c *Camera) GetRay(x, y int, jx, jy float64) core.Ray {
	ndcX := 2*(float64(x)+0.5+jx)/float64(c.width) - 1
	ndcY := 1 - 2*(float64(y)+0.5+jy)/float64(c.height)

	direction := c.forward.
		Add(c.right.Multiply(ndcX * c.halfW)).
		Add(c.trueUp.Multiply(ndcY * c.halfH)).
		Normalize()

	return core.NewRay(c.eye, direction)
}
