package conduit

import "github.com/ChicagoDave/tradecalc/pkg/nec"

// Assessment is the outcome of a fill check.
type Assessment struct {
	Ratio      float64 `json:"ratio"`
	Percent    float64 `json:"percent"`
	MaxAllowed float64 `json:"max_allowed"`
	Within     bool    `json:"within"`
}

// FillRatio is conductor area over conduit area. A zero conduit area gives
// +Inf (or NaN when both are zero).
func FillRatio(conduitArea, conductorArea float64) float64 {
	return conductorArea / conduitArea
}

// CheckFill reports whether the conductors fit under the max fill for count.
// Counts other than 1 and 2 use the 40% rule.
func CheckFill(conduitArea, conductorArea float64, count int) bool {
	return FillRatio(conduitArea, conductorArea) <= nec.FillFactor(count)
}

// Fill is CheckFill with the intermediate values kept.
func Fill(conduitArea, conductorArea float64, count int) Assessment {
	ratio := FillRatio(conduitArea, conductorArea)
	limit := nec.FillFactor(count)
	return Assessment{
		Ratio:      ratio,
		Percent:    ratio * 100,
		MaxAllowed: limit,
		Within:     ratio <= limit,
	}
}

// MaxFillFactor returns the allowed fill ratio for count conductors, or 0
// when count is below 1. wireType (THHN, XHHW, ...) is accepted for callers
// that carry it but does not change the result.
func MaxFillFactor(wireType string, count int) float64 {
	if count < 1 {
		return 0.0
	}
	return nec.FillFactor(count)
}
