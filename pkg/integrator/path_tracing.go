package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// ShadowAcneEpsilon is the minimum ray parameter accepted for a hit, so a
// scattered ray does not re-hit the surface it starts on
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce limit
type PathTracingIntegrator struct {
	MaxDepth   int
	Background core.Vec3
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, lights pdf.Target, sampler core.Sampler) core.Vec3 {
	return RayColor(ray, pt.Background, world, lights, pt.MaxDepth, sampler)
}

// RayColor returns a radiance sample for ray: emission at the first hit plus the
// scattering weight times the radiance arriving along the scattered ray.
// Misses return background; depth <= 0 returns black.
func RayColor(ray core.Ray, background core.Vec3, world geometry.Hittable, lights pdf.Target, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return background
	}

	colorEmitted := getEmittedLight(hit)

	if hit.Material == nil {
		return colorEmitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, lights, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	// The weight already carries BRDF · cos / pdf for diffuse materials
	// and the plain albedo for specular ones
	incoming := RayColor(scatter.Scattered, background, world, lights, depth-1, sampler)
	return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// getEmittedLight returns the emitted light from a material if it's emissive
func getEmittedLight(hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emitted(hit.UV, hit.Point)
	}
	return core.Vec3{}
}
