package renderer

import (
	"image"
	"image/color"
	"sync"

	"github.com/MarkZuber/rustray/pkg/core"
)

// PixelBuffer is the frame's output grid. It is the only mutable state
// shared between render workers, so every write goes through its
// mutex; a whole row can be written under a single lock acquisition.
type PixelBuffer struct {
	width  int
	height int

	mu     sync.Mutex
	pixels []core.Color
}

// NewPixelBuffer creates a width x height buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the buffer width in pixels
func (pb *PixelBuffer) Width() int { return pb.width }

// Height returns the buffer height in pixels
func (pb *PixelBuffer) Height() int { return pb.height }

// SetPixelColor stores the color for pixel (x, y)
func (pb *PixelBuffer) SetPixelColor(x, y int, c core.Color) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.pixels[y*pb.width+x] = c
}

// SetRow stores a full row of already-computed colors in one critical
// section, amortizing the lock over the row.
func (pb *PixelBuffer) SetRow(y int, row []core.Color) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	copy(pb.pixels[y*pb.width:y*pb.width+pb.width], row)
}

// PixelColor returns the stored color for pixel (x, y)
func (pb *PixelBuffer) PixelColor(x, y int) core.Color {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	return pb.pixels[y*pb.width+x]
}

// ToImage clamps every pixel to [0,1], quantizes to 8 bits per channel
// and returns the frame as an image for encoding.
func (pb *PixelBuffer) ToImage() *image.RGBA {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, pb.width, pb.height))
	for y := 0; y < pb.height; y++ {
		for x := 0; x < pb.width; x++ {
			c := pb.pixels[y*pb.width+x].Clamp()
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.R * 255.0),
				G: uint8(c.G * 255.0),
				B: uint8(c.B * 255.0),
				A: 255,
			})
		}
	}
	return img
}
