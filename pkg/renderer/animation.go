package renderer

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraPath yields a camera for normalized animation time t in [0, 1)
type CameraPath interface {
	CameraAt(t float64) CameraConfig
}

// Sweep moves the eye linearly from From to To
type Sweep struct {
	Base     CameraConfig
	From, To core.Vec3
}

// CameraAt implements CameraPath
func (s Sweep) CameraAt(t float64) CameraConfig {
	config := s.Base
	config.LookFrom = lerp(s.From, s.To, t)
	return config
}

// SpringSweep moves the eye between the same endpoints as Sweep, eased by a
// critically damped spring stepped once per frame
type SpringSweep struct {
	Base     CameraConfig
	From, To core.Vec3
	progress []float64
}

// NewSpringSweep precomputes the spring's progress for each frame
func NewSpringSweep(base CameraConfig, from, to core.Vec3, frames int) *SpringSweep {
	frames = max(frames, 1)
	spring := harmonica.NewSpring(harmonica.FPS(frames), 6.0, 1.0)

	progress := make([]float64, frames)
	position, velocity := 0.0, 0.0
	for i := range progress {
		progress[i] = position
		position, velocity = spring.Update(position, velocity, 1.0)
	}

	return &SpringSweep{Base: base, From: from, To: to, progress: progress}
}

// CameraAt implements CameraPath
func (s *SpringSweep) CameraAt(t float64) CameraConfig {
	index := max(0, min(int(t*float64(len(s.progress))), len(s.progress)-1))
	config := s.Base
	config.LookFrom = lerp(s.From, s.To, s.progress[index])
	return config
}

// Orbit rotates the eye about the vertical axis through LookAt
type Orbit struct {
	Base  CameraConfig
	Angle float64 // Total rotation in radians over the animation
}

// CameraAt implements CameraPath
func (o Orbit) CameraAt(t float64) CameraConfig {
	offset := o.Base.LookFrom.Subtract(o.Base.LookAt)
	rotated := mgl64.Rotate3DY(o.Angle * t).Mul3x1(mgl64.Vec3{offset.X, offset.Y, offset.Z})

	config := o.Base
	config.LookFrom = o.Base.LookAt.Add(core.NewVec3(rotated.X(), rotated.Y(), rotated.Z()))
	return config
}

// NewCameraPath builds a named path around a base camera. Sweeps move the
// eye sideways by 0.35 of its distance to the target in each direction.
func NewCameraPath(name string, base CameraConfig, frames int) (CameraPath, error) {
	forward := base.LookAt.Subtract(base.LookFrom)
	right := forward.Cross(base.Up).Normalize()
	offset := right.Multiply(0.35 * forward.Length())
	from, to := base.LookFrom.Subtract(offset), base.LookFrom.Add(offset)

	switch name {
	case "sweep":
		return Sweep{Base: base, From: from, To: to}, nil
	case "spring":
		return NewSpringSweep(base, from, to, frames), nil
	case "orbit":
		return Orbit{Base: base, Angle: 2 * math.Pi}, nil
	default:
		return nil, fmt.Errorf("unknown camera path %q", name)
	}
}

// cameraOverride replaces a scene's camera for one frame
type cameraOverride struct {
	Scene
	camera CameraConfig
}

func (c cameraOverride) GetCameraConfig() CameraConfig {
	return c.camera
}

// RenderAnimation renders frames in order along path
func RenderAnimation(ctx context.Context, scene Scene, path CameraPath, frames int, config RenderConfig, logger core.Logger) ([]*image.RGBA, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("frame count must be positive, got %d", frames)
	}
	if logger == nil {
		logger = NopLogger{}
	}

	images := make([]*image.RGBA, 0, frames)
	for frame := 0; frame < frames; frame++ {
		t := float64(frame) / float64(frames)
		logger.Printf("Frame %d/%d\n", frame+1, frames)

		frameScene := cameraOverride{Scene: scene, camera: path.CameraAt(t)}
		img, _, err := NewRaytracer(frameScene, config, logger).Render(ctx)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", frame, err)
		}
		images = append(images, img)
	}
	return images, nil
}

func lerp(a, b core.Vec3, t float64) core.Vec3 {
	return a.Multiply(1 - t).Add(b.Multiply(t))
}
