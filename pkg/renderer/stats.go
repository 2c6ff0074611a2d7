package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Workers         int
	TotalSamples    int           // Paths traced over the whole image
	Duration        time.Duration // Wall-clock render time
	MeanLuminance   float64       // Mean linear luminance over all pixels
	LuminanceStdDev float64       // Spread of pixel luminance
}

// newRenderStats summarizes a finished render from its averaged linear pixels
func newRenderStats(width, height, samples, workers int, duration time.Duration, pixels []core.Vec3) RenderStats {
	mean, stdDev := luminanceStats(pixels)
	return RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		Workers:         workers,
		TotalSamples:    width * height * samples,
		Duration:        duration,
		MeanLuminance:   mean,
		LuminanceStdDev: stdDev,
	}
}

// luminanceStats returns the mean and standard deviation of pixel luminance
func luminanceStats(pixels []core.Vec3) (float64, float64) {
	if len(pixels) == 0 {
		return 0, 0
	}

	luminance := make([]float64, len(pixels))
	for i, p := range pixels {
		luminance[i] = p.Luminance()
	}
	if len(luminance) == 1 {
		return luminance[0], 0
	}
	return stat.MeanStdDev(luminance, nil)
}

// SamplesPerSecond returns the tracing throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
