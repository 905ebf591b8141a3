// Package plot renders a CIE 1931 chromaticity diagram of the primaries'
// gamut triangle and a target color's chromaticity point.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/microaeris/ledmix/internal/colorspace"
	"github.com/microaeris/ledmix/internal/mixing"
)

// Plotted chromaticity window. The CIE 1931 locus fits inside
// x in [0, 0.8] and y in [0, 0.9].
const (
	chromaMaxX = 0.8
	chromaMaxY = 0.9
)

var (
	background   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	triangleFill = color.NRGBA{R: 225, G: 225, B: 225, A: 255}
	edgeColor    = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	redMark      = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
	greenMark    = color.NRGBA{R: 40, G: 170, B: 60, A: 255}
	blueMark     = color.NRGBA{R: 50, G: 70, B: 220, A: 255}
	targetMark   = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
)

// diagram maps chromaticity coordinates onto a square pixel canvas with a
// fixed margin. The y-axis is flipped so chromaticity y grows upward.
type diagram struct {
	size   int
	margin float64
}

// Render draws the gamut triangle of the given primaries and marks the
// target chromaticity with a cross-hair. Out-of-gamut targets plot outside
// the triangle; that is the point of the diagram.
func Render(p mixing.Primaries, target colorspace.XYY, size int) (*image.NRGBA, error) {
	if size < 64 {
		return nil, fmt.Errorf("diagram size %d too small: need at least 64 pixels", size)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid primaries: %w", err)
	}

	d := diagram{size: size, margin: float64(size) * 0.05}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	rx, ry := d.toPixel(p.Red.X, p.Red.Y)
	gx, gy := d.toPixel(p.Green.X, p.Green.Y)
	bx, by := d.toPixel(p.Blue.X, p.Blue.Y)

	// Gamut triangle, filled then outlined.
	d.fillPolygon(img, triangleFill, [][2]float32{{rx, ry}, {gx, gy}, {bx, by}})
	d.strokeSegment(img, edgeColor, rx, ry, gx, gy, 1.5)
	d.strokeSegment(img, edgeColor, gx, gy, bx, by, 1.5)
	d.strokeSegment(img, edgeColor, bx, by, rx, ry, 1.5)

	// Primary vertices.
	d.fillCircle(img, redMark, rx, ry, float32(size)/64)
	d.fillCircle(img, greenMark, gx, gy, float32(size)/64)
	d.fillCircle(img, blueMark, bx, by, float32(size)/64)

	// Target cross-hair.
	tx, ty := d.toPixel(target.X, target.Y)
	arm := float32(size) / 40
	d.strokeSegment(img, targetMark, tx-arm, ty, tx+arm, ty, 2)
	d.strokeSegment(img, targetMark, tx, ty-arm, tx, ty+arm, 2)

	return img, nil
}

// toPixel maps a chromaticity coordinate onto the canvas.
func (d diagram) toPixel(x, y float64) (float32, float32) {
	w := float64(d.size) - 2*d.margin
	px := d.margin + x/chromaMaxX*w
	py := float64(d.size) - d.margin - y/chromaMaxY*w
	return float32(px), float32(py)
}

func (d diagram) fillPolygon(dst *image.NRGBA, c color.NRGBA, pts [][2]float32) {
	if len(pts) < 3 {
		return
	}

	ras := vector.NewRasterizer(d.size, d.size)
	ras.MoveTo(pts[0][0], pts[0][1])
	for _, pt := range pts[1:] {
		ras.LineTo(pt[0], pt[1])
	}
	ras.ClosePath()

	src := image.NewUniform(c)
	ras.Draw(dst, dst.Bounds(), src, image.Point{})
}

// strokeSegment draws a line segment as a filled quad of the given width.
func (d diagram) strokeSegment(dst *image.NRGBA, c color.NRGBA, x0, y0, x1, y1, width float32) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Unit normal scaled to half the stroke width.
	nx := float32(-dy / length * float64(width) / 2)
	ny := float32(dx / length * float64(width) / 2)

	d.fillPolygon(dst, c, [][2]float32{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	})
}

func (d diagram) fillCircle(dst *image.NRGBA, c color.NRGBA, cx, cy, radius float32) {
	const segments = 24

	pts := make([][2]float32, 0, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		pts = append(pts, [2]float32{
			cx + radius*float32(math.Cos(a)),
			cy + radius*float32(math.Sin(a)),
		})
	}
	d.fillPolygon(dst, c, pts)
}
