package output

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WriteGIF encodes frames as a looping animation that plays forward and then
// backward. delay is in 100ths of a second per frame.
func WriteGIF(w io.Writer, frames []*image.RGBA, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}

	paletted := make([]*image.Paletted, len(frames))
	for i, frame := range frames {
		paletted[i] = toPaletted(frame)
	}

	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range paletted {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	for i := len(paletted) - 1; i >= 0; i-- {
		anim.Image = append(anim.Image, paletted[i])
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode GIF: %w", err)
	}
	return nil
}

// toPaletted quantizes a frame to the Plan9 palette with dithering
func toPaletted(img image.Image) *image.Paletted {
	paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), img, img.Bounds().Min)
	return paletted
}

// Thumbnail scales img so its longer side is maxSize pixels, keeping the aspect
// ratio. Images already within maxSize are returned unchanged.
func Thumbnail(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	if maxSize <= 0 || (bounds.Dx() <= maxSize && bounds.Dy() <= maxSize) {
		return img
	}

	// A zero dimension tells resize to preserve the aspect ratio
	if bounds.Dx() >= bounds.Dy() {
		return resize.Resize(uint(maxSize), 0, img, resize.Lanczos3)
	}
	return resize.Resize(0, uint(maxSize), img, resize.Lanczos3)
}

// SaveFile creates path and its parent directories and fills it using encode
func SaveFile(path string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
