package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Metal is a mirror-like reflector. Fuzzness in [0, 1] blurs the reflection.
type Metal struct {
	Albedo   core.Vec3
	Fuzzness float64
}

// NewMetal creates a metal, clamping fuzzness into [0, 1]
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: min(max(fuzzness, 0), 1)}
}

// Scatter reflects about the normal and jitters the result by a random point in a
// sphere of radius Fuzzness. Jittered rays that end up below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, lights pdf.Target, sampler core.Sampler) (ScatterResult, bool) {
	direction := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzzness > 0 {
		direction = direction.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness))
	}
	if direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}, true
}

// reflect mirrors v about the unit normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
