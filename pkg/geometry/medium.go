package geometry

import (
	"math"
	"math/rand"
	"sync"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// ConstantMedium wraps a closed boundary shape with a homogeneous
// participating medium: rays that enter the boundary have a probability of
// scattering at a random depth proportional to density, producing a hazy
// volume without full nested-dielectric volumetric transport. Density
// satisfies core.Medium so the same value can be attached to a ray's
// MediumInterface if a future integrator wants to query it directly.
//
// Hit is reached concurrently by every render worker that walks the BVH leaf
// holding this medium, and core.Shape.Hit takes no Sampler, so the scattering
// depth draw uses a private generator guarded by a mutex rather than the
// shared global math/rand source or a thread-local core.Sampler.
type ConstantMedium struct {
	Boundary       core.Shape
	density        float64
	MaterialIndex  int // must refer to an Isotropic material
	PrimitiveIndex int
	mu             sync.Mutex
	rng            *rand.Rand
}

func NewConstantMedium(boundary core.Shape, density float64, materialIndex int) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		density:       density,
		MaterialIndex: materialIndex,
		rng:           rand.New(rand.NewSource(1)),
	}
}

func (m *ConstantMedium) Density() float64 {
	return m.density
}

// Hit finds where the ray enters and exits the boundary, then stochastically
// picks a scattering depth inside that interval based on density; if the
// sampled depth falls beyond the exit point, the ray passes through
// untouched and Hit reports a miss.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	enter, hitEnter := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !hitEnter {
		return core.Interaction{}, false
	}

	exit, hitExit := m.Boundary.Hit(ray, enter.T+1e-4, math.Inf(1))
	if !hitExit {
		return core.Interaction{}, false
	}

	if enter.T < tMin {
		enter.T = tMin
	}
	if exit.T > tMax {
		exit.T = tMax
	}
	if enter.T >= exit.T {
		return core.Interaction{}, false
	}
	if enter.T < 0 {
		enter.T = 0
	}

	distanceInsideBoundary := (exit.T - enter.T) * ray.Direction.Length()
	m.mu.Lock()
	draw := m.rng.Float64()
	m.mu.Unlock()
	hitDistance := -(1.0 / m.density) * math.Log(draw)
	if hitDistance > distanceInsideBoundary {
		return core.Interaction{}, false
	}

	t := enter.T + hitDistance/ray.Direction.Length()
	hit := core.Interaction{
		T:              t,
		P:              ray.At(t),
		Normal:         core.NewVec3(1, 0, 0), // arbitrary: isotropic scattering ignores the normal
		FrontFace:      true,
		Time:           ray.Time,
		PrimitiveIndex: m.PrimitiveIndex,
		MaterialIndex:  m.MaterialIndex,
	}
	return hit, true
}

func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
