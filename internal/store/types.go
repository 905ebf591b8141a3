// Package store persists batch conversion results to a SQLite database.
package store

import (
	"fmt"
	"strconv"

	"github.com/microaeris/ledmix/internal/mixing"
)

// Metadata describes a batch run: where the colors came from and which
// primary configuration the results were solved against.
type Metadata struct {
	Source    string // input file the color specs were read from
	Primaries mixing.Primaries
	Workers   int
}

// ToMap converts Metadata to a map for database insertion.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)

	if m.Source != "" {
		result["source"] = m.Source
	}
	if m.Workers > 0 {
		result["workers"] = strconv.Itoa(m.Workers)
	}

	result["primaries.red"] = formatPrimary(m.Primaries.Red)
	result["primaries.green"] = formatPrimary(m.Primaries.Green)
	result["primaries.blue"] = formatPrimary(m.Primaries.Blue)

	return result
}

func formatPrimary(p mixing.Primary) string {
	return fmt.Sprintf("%.9f,%.9f,%.3f", p.X, p.Y, p.Intensity)
}

// Entry is one persisted conversion result. For out-of-gamut or otherwise
// failed colors InGamut is false and Error holds the failure message; the
// numeric columns are zero.
type Entry struct {
	Spec      string
	InGamut   bool
	Error     string
	Ratio     mixing.Channels
	Percent   mixing.Channels
	Intensity mixing.Channels
	Relative  mixing.Channels
}
