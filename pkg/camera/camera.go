// Package camera implements the thin-lens camera model: primary rays are
// generated from a normalized image coordinate, with optional depth-of-field
// blur and motion-blur time sampling.
package camera

import (
	"math"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// Config describes a camera in scene-authoring terms. NewCamera derives the
// basis vectors and viewport extents from these values once, at construction.
type Config struct {
	Center        core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	VFov          float64 // vertical field of view, in degrees
	AspectRatio   float64
	Aperture      float64 // lens diameter; 0 disables depth-of-field blur
	FocusDistance float64
	TimeStart     float64
	TimeEnd       float64
}

// Camera generates primary rays for normalized image coordinates.
type Camera struct {
	origin      core.Vec3
	lowerLeft   core.Vec3
	horizontal  core.Vec3
	vertical    core.Vec3
	right       core.Vec3
	up          core.Vec3
	lensRadius  float64
	timeStart   float64
	timeEnd     float64
}

// NewCamera builds a thin-lens camera from a Config.
func NewCamera(cfg Config) *Camera {
	theta := cfg.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta/2.0) * cfg.FocusDistance
	halfWidth := cfg.AspectRatio * halfHeight

	forward := cfg.LookAt.Subtract(cfg.Center).Normalize()
	right := cfg.Up.Cross(forward).Normalize()
	up := forward.Cross(right).Normalize()

	lowerLeft := cfg.Center.
		Subtract(right.Multiply(halfWidth)).
		Subtract(up.Multiply(halfHeight)).
		Add(forward.Multiply(cfg.FocusDistance))
	horizontal := right.Multiply(2.0 * halfWidth)
	vertical := up.Multiply(2.0 * halfHeight)

	return &Camera{
		origin:     cfg.Center,
		lowerLeft:  lowerLeft,
		horizontal: horizontal,
		vertical:   vertical,
		right:      right,
		up:         up,
		lensRadius: cfg.Aperture / 2.0,
		timeStart:  cfg.TimeStart,
		timeEnd:    cfg.TimeEnd,
	}
}

// GetRay generates a primary ray for normalized image coordinate (u, v),
// each expected in [0, 1]. When the camera has a nonzero aperture, the ray
// origin is jittered within the lens disk to produce depth-of-field blur;
// the ray's Time is drawn uniformly from [TimeStart, TimeEnd] for motion blur.
func (c *Camera) GetRay(u, v float64, sampler core.Sampler) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rp := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.right.Multiply(rp.X).Add(c.up.Multiply(rp.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeft.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(origin)

	time := c.timeStart
	if c.timeEnd > c.timeStart {
		time = c.timeStart + sampler.Get1D()*(c.timeEnd-c.timeStart)
	}

	return core.NewRay(origin, direction, time)
}
