package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// DefaultSize is the square edge, in pixels, the generator consumes.
const DefaultSize = 128

// Tensor is a CHW float32 image with values in [-1, 1].
type Tensor struct {
	Shape [3]int    `msgpack:"shape" json:"shape"`
	Data  []float32 `msgpack:"data" json:"data"`
}

func (t Tensor) Channels() int { return t.Shape[0] }
func (t Tensor) Height() int   { return t.Shape[1] }
func (t Tensor) Width() int    { return t.Shape[2] }

// Valid reports whether Data holds exactly C*H*W values.
func (t Tensor) Valid() bool {
	n := t.Shape[0] * t.Shape[1] * t.Shape[2]
	return n > 0 && len(t.Data) == n
}

// Transform resizes img to size×size RGB with bilinear filtering and maps
// each 8-bit channel value v to v/255*2-1. Output is deterministic for a
// given image.
func Transform(img image.Image, size int) Tensor {
	if size <= 0 {
		size = DefaultSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	plane := size * size
	data := make([]float32, 3*plane)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			o := dst.PixOffset(x, y)
			i := y*size + x
			data[i] = norm(dst.Pix[o])
			data[plane+i] = norm(dst.Pix[o+1])
			data[2*plane+i] = norm(dst.Pix[o+2])
		}
	}
	return Tensor{Shape: [3]int{3, size, size}, Data: data}
}

func norm(v uint8) float32 { return float32(v)/255*2 - 1 }
