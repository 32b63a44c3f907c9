package pathkit

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Surface is a rectangular pixel buffer that rendering backends draw
// onto. It wraps a standard *image.RGBA so drawing code can interoperate
// with the image and golang.org/x/image packages directly.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates a new surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Image returns the backing image. Mutating it mutates the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates
// are ignored.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}
	s.img.Set(x, y, c.Color())
}

// GetPixel returns the color of a single pixel, or Transparent for
// out-of-range coordinates.
func (s *Surface) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return Transparent
	}
	return FromColor(s.img.At(x, y))
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c RGBA) {
	pm := c.Premultiply()
	r := uint8(clamp255(pm.R * 255))
	g := uint8(clamp255(pm.G * 255))
	b := uint8(clamp255(pm.B * 255))
	a := uint8(clamp255(pm.A * 255))
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
}

// EncodePNG writes the surface to w in PNG format.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.EncodePNG(f)
}
