package cmd

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// parseColor parses an 8-bit-per-channel hex color spec ("RRGGBB" or
// "#RRGGBB") into its channel triple.
func parseColor(spec string) (r, g, b uint8, err error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return 0, 0, 0, fmt.Errorf("empty color spec")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	// colorful.Hex scans the leading digits only, so the length has to be
	// checked here or trailing characters would be dropped.
	if len(s) != 7 {
		return 0, 0, 0, fmt.Errorf("invalid color spec %q: want 6 hex digits", spec)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color spec %q: %w", spec, err)
	}

	// colorful stores channels as v/255, so this round-trips exactly.
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5), nil
}
