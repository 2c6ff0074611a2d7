package renderer

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// DefaultWorkerCount returns the number of physical CPU cores, falling back
// to the logical count when it cannot be determined
func DefaultWorkerCount() int {
	if cores, err := cpu.Counts(false); err == nil && cores > 0 {
		return cores
	}
	return runtime.NumCPU()
}

// renderJob holds the read-only state shared by all workers of one render
type renderJob struct {
	width, height int
	samples       int
	numWorkers    int
	seed          int64
	camera        *Camera
	integrator    integrator.Integrator
	world         geometry.Hittable
	lights        pdf.Target
}

// renderWorker accumulates sample passes workerID, workerID+numWorkers, ...
// into a private full-frame buffer using its own sampler
func (job *renderJob) renderWorker(ctx context.Context, workerID int) ([]core.Vec3, error) {
	sampler := core.NewSeededSampler(job.seed + int64(workerID))
	buffer := make([]core.Vec3, job.width*job.height)

	// Avoid dividing by zero for single-pixel dimensions
	du := float64(max(job.width-1, 1))
	dv := float64(max(job.height-1, 1))

	for pass := workerID; pass < job.samples; pass += job.numWorkers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for j := 0; j < job.height; j++ {
			for i := 0; i < job.width; i++ {
				jitter := sampler.Get2D()
				s := (float64(i) + jitter.X) / du
				t := (float64(j) + jitter.Y) / dv

				ray := job.camera.GetRay(s, t, sampler)
				color := job.integrator.RayColor(ray, job.world, job.lights, sampler)
				buffer[j*job.width+i] = buffer[j*job.width+i].Add(color)
			}
		}
	}

	return buffer, nil
}

// mergeBuffers sums per-worker buffers and scales the result
func mergeBuffers(buffers [][]core.Vec3, scale float64) []core.Vec3 {
	if len(buffers) == 0 {
		return nil
	}

	result := make([]core.Vec3, len(buffers[0]))
	for _, buffer := range buffers {
		for i, color := range buffer {
			result[i] = result[i].Add(color)
		}
	}
	for i := range result {
		result[i] = result[i].Multiply(scale)
	}
	return result
}
