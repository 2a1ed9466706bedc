package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// ErrInvalidSize is returned when a surface of the requested size cannot exist.
var ErrInvalidSize = errors.New("invalid icon size")

// Accent is the fill color of the bolt.
var Accent = color.RGBA{R: 102, G: 126, B: 234, A: 255}

// minHalfWidth keeps the bolt visible at tiny sizes.
const minHalfWidth = 2

// Vertices returns the five corners of the bolt for a size x size canvas, in drawing order.
// All arithmetic is integer division.
func Vertices(size int) []image.Point {
	c := size / 2
	w := max(minHalfWidth, size/6)

	return []image.Point{
		{X: c - w, Y: size / 4},
		{X: c + w, Y: size / 4},
		{X: c, Y: size / 2},
		{X: c - w/2, Y: size * 3 / 4},
		{X: c + w, Y: size * 3 / 4},
	}
}

// Render draws the bolt on a transparent size x size canvas.
func Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))

	pts := Vertices(size)
	r := vector.NewRasterizer(size, size)
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(Accent), image.Point{})

	return img, nil
}
