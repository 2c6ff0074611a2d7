package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// pointLight is a minimal light target that always samples the same point
type pointLight struct {
	point   core.Vec3
	density float64
}

func (p pointLight) PDFValue(origin, direction core.Vec3) float64 {
	return p.density
}

func (p pointLight) RandomPoint(sampler core.Sampler) core.Vec3 {
	return p.point
}

func TestLambertian_CosineOnlyWeight(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// Without lights the sampling density equals the scattering density,
	// so the weight is exactly the albedo
	tolerance := 1e-10
	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, nil, sampler)
		if !didScatter {
			t.Fatal("Lambertian should scatter into the upper hemisphere")
		}

		cosTheta := scatter.Scattered.Direction.Normalize().Dot(normal)
		expectedPDF := cosTheta / math.Pi
		if math.Abs(scatter.PDF-expectedPDF) > tolerance {
			t.Errorf("PDF mismatch: got %f, expected %f", scatter.PDF, expectedPDF)
		}
		if scatter.Attenuation.Subtract(albedo).Length() > tolerance {
			t.Errorf("Weight should equal albedo, got %v", scatter.Attenuation)
		}
		if scatter.IsSpecular() {
			t.Error("Lambertian scattering should not be specular")
		}
	}
}

// emptyLights is an aggregate light target with no members
type emptyLights struct{}

func (emptyLights) PDFValue(origin, direction core.Vec3) float64 { return 0 }
func (emptyLights) RandomPoint(sampler core.Sampler) core.Vec3 { return core.Vec3{} }
func (emptyLights) TargetCount() int { return 0 }

func TestLambertian_EmptyLightsFallBackToCosine(t *testing.T) {
	albedo := core.NewVec3(0.6, 0.6, 0.6)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(9)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(3, 0, 3), Normal: normal}
	ray := core.NewRay(core.NewVec3(3, 1, 3), core.NewVec3(0, -1, 0))

	// Mixing in an empty light list would aim half the rays at the origin
	for i := 0; i < 200; i++ {
		scatter, ok := lambertian.Scatter(ray, hit, emptyLights{}, sampler)
		if !ok {
			t.Fatal("Lambertian should scatter into the upper hemisphere")
		}
		if scatter.Attenuation.Subtract(albedo).Length() > 1e-10 {
			t.Fatalf("Expected cosine-only weight equal to albedo, got %v", scatter.Attenuation)
		}
	}
}

func TestLambertian_MixtureWeight(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	light := pointLight{point: core.NewVec3(1, 1, 0), density: 2.0}

	lightSamples := 0
	for i := 0; i < 500; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, light, sampler)
		if !didScatter {
			continue
		}

		direction := scatter.Scattered.Direction.Normalize()
		cosine := math.Max(0, direction.Dot(normal)) / math.Pi
		expectedPDF := 0.5*cosine + 0.5*light.density
		if math.Abs(scatter.PDF-expectedPDF) > 1e-9 {
			t.Fatalf("Mixture density mismatch: got %f, expected %f", scatter.PDF, expectedPDF)
		}

		expectedWeight := albedo.Multiply(cosine / expectedPDF)
		if scatter.Attenuation.Subtract(expectedWeight).Length() > 1e-9 {
			t.Fatalf("Weight mismatch: got %v, expected %v", scatter.Attenuation, expectedWeight)
		}

		if direction.Subtract(core.NewVec3(1, 1, 0).Normalize()).Length() < 1e-12 {
			lightSamples++
		}
	}

	// Roughly half the directions come from the light strategy
	if lightSamples < 200 || lightSamples > 300 {
		t.Errorf("Expected about 250 light-sampled directions, got %d", lightSamples)
	}
}

func TestLambertian_BelowSurfaceAbsorbed(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	// A light below the surface can never contribute
	light := pointLight{point: core.NewVec3(0, -1, 0), density: 1.0}

	for i := 0; i < 200; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, light, sampler)
		if didScatter && scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered below the surface: %v", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewChecker(core.NewVec3(1, 1, 1), core.NewVec3(0.1, 0.2, 0.3))
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(11)))

	point := core.NewVec3(0.1, 0.1, 0.1)
	hit := HitRecord{Point: point, Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, didScatter := lambertian.Scatter(ray, hit, nil, sampler)
	if !didScatter {
		t.Fatal("Lambertian should scatter")
	}

	expected := checker.Evaluate(hit.UV, point)
	if scatter.Attenuation.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Expected textured albedo %v, got %v", expected, scatter.Attenuation)
	}
}
