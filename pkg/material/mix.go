package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Mix represents a material that probabilistically chooses between two materials
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64 // 0.0 = all material1, 1.0 = all material2
}

// NewMix creates a new mix material
func NewMix(material1, material2 Material, ratio float64) *Mix {
	// Clamp ratio to valid range
	ratio = math.Max(0.0, math.Min(ratio, 1.0))

	return &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     ratio,
	}
}

// Scatter delegates to one of the two materials chosen by Ratio.
// Selecting with the mixing probability keeps the estimator unbiased without reweighting.
func (m *Mix) Scatter(rayIn core.Ray, hit HitRecord, lights pdf.Target, sampler core.Sampler) (ScatterResult, bool) {
	if sampler.Get1D() < m.Ratio {
		return m.Material2.Scatter(rayIn, hit, lights, sampler)
	}
	return m.Material1.Scatter(rayIn, hit, lights, sampler)
}

// Emitted blends the emission of whichever components emit
func (m *Mix) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	var result core.Vec3
	if e, ok := m.Material1.(Emitter); ok {
		result = result.Add(e.Emitted(uv, point).Multiply(1 - m.Ratio))
	}
	if e, ok := m.Material2.(Emitter); ok {
		result = result.Add(e.Emitted(uv, point).Multiply(m.Ratio))
	}
	return result
}
