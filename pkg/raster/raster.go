// Package raster renders staged trees into images for debugging and golden
// inspection. It draws rectangles only; it is not a rendering backend.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/go-plume/plume/pkg/geometry"
	"github.com/go-plume/plume/pkg/layout"
)

// palette colors staged nodes by depth so nesting stays readable.
var palette = []color.NRGBA{
	{R: 0x42, G: 0x85, B: 0xf4, A: 0x30},
	{R: 0xea, G: 0x43, B: 0x35, A: 0x30},
	{R: 0xfb, G: 0xbc, B: 0x05, A: 0x30},
	{R: 0x34, G: 0xa8, B: 0x53, A: 0x30},
}

// Options configures rendering.
type Options struct {
	// Scale is the number of pixels per surface unit. Zero means 1.
	Scale float64
	// Background fills the image before drawing. Nil means white.
	Background color.Color
}

// Render draws a staged tree into an image covering the given surface area.
// Children draw over parents, matching their position in the tree.
func Render(staged layout.Staged, surface geometry.Rect, opts Options) *image.RGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	w := int(math.Ceil(surface.Width() * scale))
	h := int(math.Ceil(surface.Height() * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	drawNode(img, staged, surface, scale, 0)
	return img
}

// drawNode fills and outlines one node, then recurses into its children.
func drawNode(img *image.RGBA, s layout.Staged, surface geometry.Rect, scale float64, depth int) {
	if s == nil {
		return
	}
	r := s.Bounds().Translate(-surface.Left, -surface.Top)
	r = geometry.Rect{
		Left:   r.Left * scale,
		Top:    r.Top * scale,
		Right:  r.Right * scale,
		Bottom: r.Bottom * scale,
	}
	if !r.IsEmpty() {
		fill := palette[depth%len(palette)]
		fillRect(img, r, fill)

		outline := fill
		outline.A = 0xc0
		fillRect(img, geometry.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Top + 1}, outline)
		fillRect(img, geometry.Rect{Left: r.Left, Top: r.Bottom - 1, Right: r.Right, Bottom: r.Bottom}, outline)
		fillRect(img, geometry.Rect{Left: r.Left, Top: r.Top, Right: r.Left + 1, Bottom: r.Bottom}, outline)
		fillRect(img, geometry.Rect{Left: r.Right - 1, Top: r.Top, Right: r.Right, Bottom: r.Bottom}, outline)
	}
	for _, child := range s.Children() {
		drawNode(img, child, surface, scale, depth+1)
	}
}

// fillRect rasterizes one axis-aligned rectangle over the image.
func fillRect(img *image.RGBA, r geometry.Rect, c color.Color) {
	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	z.MoveTo(float32(r.Left), float32(r.Top))
	z.LineTo(float32(r.Right), float32(r.Top))
	z.LineTo(float32(r.Right), float32(r.Bottom))
	z.LineTo(float32(r.Left), float32(r.Bottom))
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// WritePNG encodes an image to disk.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
