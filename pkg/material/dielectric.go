package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Dielectric is a clear refractive material such as glass or water
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric with the given index of refraction
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter either reflects or refracts, choosing reflection with the Schlick
// probability or whenever Snell's law has no solution. Glass absorbs nothing.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, lights pdf.Target, sampler core.Sampler) (ScatterResult, bool) {
	eta := d.RefractiveIndex
	if hit.FrontFace {
		eta = 1 / d.RefractiveIndex
	}

	in := rayIn.Direction.Normalize()
	cosTheta := math.Min(in.Negate().Dot(hit.Normal), 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	direction := refract(in, hit.Normal, eta)
	if eta*sinTheta > 1 || sampler.Get1D() < Reflectance(cosTheta, eta) {
		direction = reflect(in, hit.Normal)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// refract bends the unit vector uv through a surface with normal n, where eta
// is the ratio of the incident index to the transmitted index
func refract(uv, n core.Vec3, eta float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1)
	perpendicular := uv.Add(n.Multiply(cosTheta)).Multiply(eta)
	parallel := n.Multiply(-math.Sqrt(math.Abs(1 - perpendicular.LengthSquared())))
	return perpendicular.Add(parallel)
}

// Reflectance is Schlick's approximation of the Fresnel reflection coefficient
func Reflectance(cosine, eta float64) float64 {
	r0 := math.Pow((1-eta)/(1+eta), 2)
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
