package plot

import (
	"image/color"
	"testing"

	"github.com/microaeris/ledmix/internal/colorspace"
	"github.com/microaeris/ledmix/internal/mixing"
)

func TestRender(t *testing.T) {
	target := colorspace.XYY{X: 0.3128, Y: 0.3292, Lum: 100}

	img, err := Render(mixing.DefaultPrimaries(), target, 256)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 256 {
		t.Fatalf("diagram bounds = %v, want 256x256", bounds)
	}

	// Corners lie outside every plotted shape and stay background white.
	corner := img.NRGBAAt(1, 1)
	if corner != background {
		t.Errorf("corner pixel = %v, want background %v", corner, background)
	}

	// The triangle's interior (around the white point, well inside the
	// gamut) must not be background.
	d := diagram{size: 256, margin: 256 * 0.05}
	cx, cy := d.toPixel(target.X, target.Y)
	if sampleAround(img, int(cx), int(cy), 8) == 0 {
		t.Error("expected non-background pixels around the target marker")
	}
}

func TestRenderMarksPrimaries(t *testing.T) {
	p := mixing.DefaultPrimaries()
	img, err := Render(p, colorspace.XYY{X: 0.3, Y: 0.3}, 256)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	d := diagram{size: 256, margin: 256 * 0.05}
	for _, v := range []mixing.Primary{p.Red, p.Green, p.Blue} {
		px, py := d.toPixel(v.X, v.Y)
		if sampleAround(img, int(px), int(py), 2) == 0 {
			t.Errorf("expected a vertex marker near pixel (%.0f, %.0f)", px, py)
		}
	}
}

func TestRenderRejectsTinySize(t *testing.T) {
	_, err := Render(mixing.DefaultPrimaries(), colorspace.XYY{X: 0.3, Y: 0.3}, 16)
	if err == nil {
		t.Error("expected error for a 16 pixel diagram")
	}
}

func TestRenderRejectsInvalidPrimaries(t *testing.T) {
	collinear := mixing.Primaries{
		Red:   mixing.Primary{X: 0.1, Y: 0.1, Intensity: 1},
		Green: mixing.Primary{X: 0.2, Y: 0.2, Intensity: 1},
		Blue:  mixing.Primary{X: 0.3, Y: 0.3, Intensity: 1},
	}

	_, err := Render(collinear, colorspace.XYY{X: 0.3, Y: 0.3}, 256)
	if err == nil {
		t.Error("expected error for collinear primaries")
	}
}

// sampleAround counts non-background pixels in a square window.
func sampleAround(img interface {
	NRGBAAt(x, y int) color.NRGBA
}, cx, cy, radius int) int {
	count := 0
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if img.NRGBAAt(x, y) != background {
				count++
			}
		}
	}
	return count
}
