package nec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRating is returned for a non-positive overcurrent device rating.
	ErrInvalidRating = errors.New("nec: overcurrent rating must be greater than 0")
	// ErrRatingTooLarge is returned when a rating exceeds the largest table row.
	ErrRatingTooLarge = errors.New("nec: overcurrent rating exceeds grounding conductor table")
)

// GaugeArea maps an AWG size to its circular-mil area.
type GaugeArea struct {
	Gauge        int     `json:"gauge" yaml:"gauge"`
	CircularMils float64 `json:"circular_mils" yaml:"circular_mils"`
}

// AngleFactor maps a bend angle in degrees to a per-inch factor.
type AngleFactor struct {
	Angle  float64 `json:"angle" yaml:"angle"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// GroundConductor maps an overcurrent device rating to the minimum copper
// equipment grounding conductor.
type GroundConductor struct {
	RatingAmps int `json:"rating_amps" yaml:"rating_amps"`
	Gauge      int `json:"gauge" yaml:"gauge"`
}

// FillBucket is the max fill ratio for a conductor count bucket.
// MaxCount of 0 means unbounded.
type FillBucket struct {
	MinCount int     `json:"min_count" yaml:"min_count"`
	MaxCount int     `json:"max_count,omitempty" yaml:"max_count,omitempty"`
	MaxFill  float64 `json:"max_fill" yaml:"max_fill"`
}

// Chapter 9, Table 8 (uncoated solid/stranded), rounded.
var gaugeAreas = []GaugeArea{
	{14, 4110},
	{12, 6530},
	{10, 10380},
	{8, 16510},
	{6, 26240},
	{4, 41740},
	{3, 52620},
	{2, 66360},
	{1, 83690},
}

var fillBuckets = []FillBucket{
	{MinCount: 1, MaxCount: 1, MaxFill: FillOneConductor},
	{MinCount: 2, MaxCount: 2, MaxFill: FillTwoConductors},
	{MinCount: 3, MaxFill: FillOverTwo},
}

// Shrink per inch of rise used by the offset calculator.
var shrinkPerInch = []AngleFactor{
	{10, 0.09},
	{22.5, 0.19},
	{30, 0.25},
	{45, 0.38},
	{60, 0.58},
}

// Exact fractional shrink values from the flashcards.
var referenceShrinkPerInch = []AngleFactor{
	{22.5, 0.1875},
	{30, 0.25},
	{45, 0.375},
}

// Cosecant of the bend angle, rounded the way benders mark them.
var bendingMultipliers = []AngleFactor{
	{10, 6.0},
	{22.5, 2.6},
	{30, 2.0},
	{45, 1.4},
	{60, 1.2},
}

// Table 250.122, copper column, residential rows.
var groundConductors = []GroundConductor{
	{15, 14},
	{20, 12},
	{60, 10},
	{100, 8},
	{200, 6},
}

// CircularMils returns the area of the given AWG size. The second result is
// false for gauges outside the table.
func CircularMils(gauge int) (float64, bool) {
	for _, g := range gaugeAreas {
		if g.Gauge == gauge {
			return g.CircularMils, true
		}
	}
	return 0, false
}

// Gauges returns the supported AWG sizes from smallest conductor to largest.
func Gauges() []int {
	out := make([]int, len(gaugeAreas))
	for i, g := range gaugeAreas {
		out[i] = g.Gauge
	}
	return out
}

// FillFactor returns the max fill ratio for count conductors.
// Counts below 1 fall through to the 3+ bucket.
func FillFactor(count int) float64 {
	for _, b := range fillBuckets {
		if count >= b.MinCount && (b.MaxCount == 0 || count <= b.MaxCount) {
			return b.MaxFill
		}
	}
	return FillOverTwo
}

// ShrinkPerInch returns the shrink constant for a bend angle.
func ShrinkPerInch(angle float64) (float64, bool) {
	return lookupAngle(shrinkPerInch, angle)
}

// BendingMultiplier returns the offset multiplier for a bend angle.
func BendingMultiplier(angle float64) (float64, bool) {
	return lookupAngle(bendingMultipliers, angle)
}

// Angles returns the bend angles the calculator recognizes.
func Angles() []float64 {
	out := make([]float64, len(shrinkPerInch))
	for i, a := range shrinkPerInch {
		out[i] = a.Angle
	}
	return out
}

// GroundConductorGauge returns the table row for an exact rating.
func GroundConductorGauge(ratingAmps int) (int, bool) {
	for _, g := range groundConductors {
		if g.RatingAmps == ratingAmps {
			return g.Gauge, true
		}
	}
	return 0, false
}

// SizeGroundConductor reads the grounding table the way it is used in the
// field: the first row whose rating is not exceeded by the device.
func SizeGroundConductor(ratingAmps int) (int, error) {
	if ratingAmps <= 0 {
		return 0, ErrInvalidRating
	}
	for _, g := range groundConductors {
		if ratingAmps <= g.RatingAmps {
			return g.Gauge, nil
		}
	}
	last := groundConductors[len(groundConductors)-1]
	return 0, fmt.Errorf("%w: %d A > %d A", ErrRatingTooLarge, ratingAmps, last.RatingAmps)
}

func lookupAngle(table []AngleFactor, angle float64) (float64, bool) {
	for _, a := range table {
		if a.Angle == angle {
			return a.Factor, true
		}
	}
	return 0, false
}
