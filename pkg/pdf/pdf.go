// Package pdf provides direction sampling strategies that both draw random
// scatter directions and report the solid-angle density of any direction.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a direction sampling strategy
type PDF interface {
	// Value returns the solid-angle density of direction
	Value(direction core.Vec3) float64
	// Generate draws a random direction distributed according to Value
	Generate(sampler core.Sampler) core.Vec3
}

// Target is implemented by shapes that can be importance sampled as lights
type Target interface {
	// PDFValue returns the solid-angle density, seen from origin, of hitting
	// the shape along direction when points are chosen uniformly on its surface
	PDFValue(origin, direction core.Vec3) float64
	// RandomPoint returns a point chosen uniformly on the shape's surface
	RandomPoint(sampler core.Sampler) core.Vec3
}

// Aggregate is a Target built from other targets, possibly none
type Aggregate interface {
	Target
	TargetCount() int
}

// Sampleable reports whether t is non-nil and, for aggregates, has any member
// to sample. An empty aggregate cannot honor the density it reports.
func Sampleable(t Target) bool {
	if t == nil {
		return false
	}
	if aggregate, ok := t.(Aggregate); ok {
		return aggregate.TargetCount() > 0
	}
	return true
}

// CosinePDF samples directions with density cos θ / π about a normal
type CosinePDF struct {
	Normal core.Vec3
}

// NewCosinePDF creates a cosine-weighted hemisphere PDF around a unit normal
func NewCosinePDF(normal core.Vec3) CosinePDF {
	return CosinePDF{Normal: normal}
}

// Value returns cos θ / π for directions above the surface and 0 otherwise
func (c CosinePDF) Value(direction core.Vec3) float64 {
	cosTheta := direction.Normalize().Dot(c.Normal)
	if cosTheta > 0 {
		return cosTheta / math.Pi
	}
	return 0
}

// Generate draws a cosine-weighted direction in the hemisphere of the normal
func (c CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleCosineHemisphere(c.Normal, sampler.Get2D())
}

// HittablePDF samples directions from a shading point toward a light shape
type HittablePDF struct {
	Target Target
	Origin core.Vec3
}

// NewHittablePDF creates a PDF that aims at target from origin
func NewHittablePDF(target Target, origin core.Vec3) HittablePDF {
	return HittablePDF{Target: target, Origin: origin}
}

// Value delegates to the target's solid-angle density
func (h HittablePDF) Value(direction core.Vec3) float64 {
	return h.Target.PDFValue(h.Origin, direction)
}

// Generate returns the unit direction from the origin to a random point on the target
func (h HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return h.Target.RandomPoint(sampler).Subtract(h.Origin).Normalize()
}

// MixturePDF chooses between two strategies with a fixed probability
type MixturePDF struct {
	First  PDF
	Second PDF
	Weight float64 // probability of drawing from First
}

// NewMixturePDF creates an even 50/50 mixture of two strategies
func NewMixturePDF(first, second PDF) MixturePDF {
	return MixturePDF{First: first, Second: second, Weight: 0.5}
}

// Value is the weighted sum of both densities, whichever strategy generated direction
func (m MixturePDF) Value(direction core.Vec3) float64 {
	return m.Weight*m.First.Value(direction) + (1-m.Weight)*m.Second.Value(direction)
}

// Generate flips a coin to pick the strategy that supplies the sample
func (m MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < m.Weight {
		return m.First.Generate(sampler)
	}
	return m.Second.Generate(sampler)
}
