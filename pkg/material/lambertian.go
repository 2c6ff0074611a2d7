package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture Texture) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter draws a direction from an even mixture of cosine-weighted hemisphere
// sampling and light sampling (cosine only when nothing in lights can be sampled), and weights it by
// albedo * (cos θ / π) / mixture density.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, lights pdf.Target, sampler core.Sampler) (ScatterResult, bool) {
	cosine := pdf.NewCosinePDF(hit.Normal)

	var sampling pdf.PDF = cosine
	if pdf.Sampleable(lights) {
		sampling = pdf.NewMixturePDF(cosine, pdf.NewHittablePDF(lights, hit.Point))
	}

	direction := sampling.Generate(sampler)
	samplingDensity := sampling.Value(direction)
	scatteringDensity := cosine.Value(direction)

	// Directions below the surface carry no energy
	if scatteringDensity <= 0 || samplingDensity <= 0 {
		return ScatterResult{}, false
	}

	albedo := l.Albedo.Evaluate(hit.UV, hit.Point)

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: albedo.Multiply(scatteringDensity / samplingDensity),
		PDF:         samplingDensity,
	}, true
}
