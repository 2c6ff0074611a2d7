package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns one radiance sample along ray. lights may be nil.
	RayColor(ray core.Ray, world geometry.Hittable, lights pdf.Target, sampler core.Sampler) core.Vec3
}
