package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red channel, V maps to green channel.
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		// Image rows run top to bottom while V runs bottom to top
		v := 1 - float64(y)/float64(height-1)
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
