package core

import (
	"math"
	"math/rand"
)

// Sampler is the source of uniform random numbers in [0, 1) for all stochastic
// decisions. It is not safe for concurrent use; each render worker owns one.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a new generator with the given seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// ONB is an orthonormal basis whose W axis is a given direction
type ONB struct {
	U, V, W Vec3
}

// NewONB builds a basis around the unit vector w
func NewONB(w Vec3) ONB {
	// Any helper axis not nearly parallel to w works
	helper := Vec3{X: 1}
	if math.Abs(w.X) > 0.9 {
		helper = Vec3{Y: 1}
	}
	v := w.Cross(helper).Normalize()
	return ONB{U: w.Cross(v), V: v, W: w}
}

// Local maps coordinates in the basis to world space
func (b ONB) Local(a Vec3) Vec3 {
	return b.U.Multiply(a.X).Add(b.V.Multiply(a.Y)).Add(b.W.Multiply(a.Z))
}

// RandomCosineDirection returns a direction about +Z with density cos(θ)/π
func RandomCosineDirection(sample Vec2) Vec3 {
	phi := 2 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), math.Sqrt(1-sample.Y))
}

// SampleCosineHemisphere returns a cosine-weighted direction about normal.
// The result has unit length when normal does.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	return NewONB(normal).Local(RandomCosineDirection(sample))
}

// SamplePointInUnitDisk maps a unit square sample onto the unit disk in the XY plane
// with Shirley's concentric mapping, which keeps strata intact
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	a, b := 2*sample.X-1, 2*sample.Y-1
	if a == 0 && b == 0 {
		return Vec3{}
	}

	r, theta := b, math.Pi/2-math.Pi/4*(a/b)
	if math.Abs(a) > math.Abs(b) {
		r, theta = a, math.Pi/4*(b/a)
	}
	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// SamplePointInUnitSphere maps a unit cube sample to a uniform point inside the unit sphere.
// The cube root of the radius sample accounts for volume growing with r³.
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	r := math.Cbrt(sample.X)
	phi := 2 * math.Pi * sample.Y
	cosTheta := 2*sample.Z - 1
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	return NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta).Multiply(r)
}
