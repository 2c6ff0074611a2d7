package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter proposes an outgoing ray for rayIn arriving at hit.
	// lights may be nil; when present, diffuse materials use it for direct light sampling.
	// Returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, lights pdf.Target, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered core.Ray // The scattered ray
	// Attenuation is the Monte Carlo weight of the scattered ray: the scattering
	// density times albedo, already divided by the density the direction was drawn with
	Attenuation core.Vec3
	PDF         float64 // Density the direction was drawn with (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object, owned by the scene
	UV        core.Vec2 // Surface coordinates in [0,1]²
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
