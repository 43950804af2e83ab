package locality

import (
	"slices"
	"strings"
)

// Residual decides whether a CSV row is a summary or catch-all row rather
// than a single village.
type Residual struct {
	// DistrictSuffixes mark a residual row when the city + district ends with one.
	DistrictSuffixes []string
	// Villages mark a residual row when the village equals one.
	Villages []string
}

// DefaultResidual skips "其他" districts and "其他"/"合計" villages.
func DefaultResidual() Residual {
	return Residual{
		DistrictSuffixes: []string{"其他"},
		Villages:         slices.Clone(ResidualMarkers),
	}
}

// Match reports whether the row is residual.
func (r Residual) Match(cityDistrict, village string) bool {
	for _, suffix := range r.DistrictSuffixes {
		if suffix != "" && strings.HasSuffix(cityDistrict, suffix) {
			return true
		}
	}

	return slices.Contains(r.Villages, village)
}
