package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	perlinPointCount = 256
	turbulenceDepth  = 7
)

// Perlin generates smooth gradient noise over 3D space
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds noise tables from the given sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = sampler.Get3D().Multiply(2).Subtract(core.NewVec3(1, 1, 1)).Normalize()
	}
	p.permX = perlinPermutation(sampler)
	p.permY = perlinPermutation(sampler)
	p.permZ = perlinPermutation(sampler)
	return p
}

// perlinPermutation returns a Fisher-Yates shuffle of 0..255
func perlinPermutation(sampler core.Sampler) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := int(sampler.Get1D() * float64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Noise returns the gradient noise value at p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterpolate(c, u, v, w)
}

// trilinearInterpolate blends corner gradients with Hermite smoothing
func trilinearInterpolate(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums octaves of noise with halving weight and doubling frequency
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// NoiseTexture is a marble-like grey pattern driven by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture with the given frequency
func NewNoiseTexture(sampler core.Sampler, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(sampler), Scale: scale}
}

// Evaluate returns 0.5·(1 + sin(scale·z + 10·turb(scale·p))) as a grey level
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.Noise.Turbulence(point.Multiply(n.Scale), turbulenceDepth)
	grey := 0.5 * (1 + math.Sin(phase))
	return core.NewVec3(grey, grey, grey)
}
