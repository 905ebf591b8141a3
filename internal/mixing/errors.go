package mixing

import "fmt"

// DegenerateGeometryError reports that a line required by the solver has an
// undefined slope or that two required lines never intersect, so the
// center-of-gravity construction cannot proceed.
type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return "degenerate mixing geometry: " + e.Reason
}

// GamutError reports that the target chromaticity lies outside the triangle
// spanned by the three primaries: the solved ratio has at least one negative
// component, so the color cannot be produced by non-negative additive
// mixing. The offending ratio is attached for diagnostics.
type GamutError struct {
	Ratio Ratio
}

func (e *GamutError) Error() string {
	return fmt.Sprintf("target color is outside the primaries' gamut (ratio %.4f:%.4f:%.4f)",
		e.Ratio.Red, e.Ratio.Green, e.Ratio.Blue)
}
