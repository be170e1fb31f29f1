package bending

import (
	"fmt"

	"github.com/ChicagoDave/tradecalc/pkg/nec"
	"github.com/ChicagoDave/tradecalc/pkg/validation"
)

// OffsetLayout is what a bender marks for a two-bend offset.
type OffsetLayout struct {
	Angle                float64 `json:"angle"`
	Height               float64 `json:"height"`
	Multiplier           float64 `json:"multiplier"`
	DistanceBetweenBends float64 `json:"distance_between_bends"`
	Shrink               float64 `json:"shrink"`
	Defaulted            bool    `json:"defaulted"`
}

// OffsetShrink returns the conduit shrink for an offset clearing height
// inches at the given angle. An angle outside the table is replaced by the
// default 30° and recorded as a warning in the returned report.
func OffsetShrink(height, angle float64) (float64, *validation.Report) {
	report := validation.NewReport()
	angle = resolveAngle(angle, report)
	perInch, _ := nec.ShrinkPerInch(angle)
	return height * perInch, report
}

// Offset computes the full offset layout: mark spacing from the bending
// multiplier plus the shrink.
func Offset(height, angle float64) (OffsetLayout, *validation.Report) {
	report := validation.NewReport()
	used := resolveAngle(angle, report)
	perInch, _ := nec.ShrinkPerInch(used)
	mult, _ := nec.BendingMultiplier(used)

	return OffsetLayout{
		Angle:                used,
		Height:               height,
		Multiplier:           mult,
		DistanceBetweenBends: height * mult,
		Shrink:               height * perInch,
		Defaulted:            used != angle,
	}, report
}

func resolveAngle(angle float64, report *validation.Report) float64 {
	if _, ok := nec.ShrinkPerInch(angle); ok {
		return angle
	}
	report.AddWarning(validation.Result{
		Level:       validation.LevelFallback,
		Message:     fmt.Sprintf("unrecognized bend angle %g°, using %g°", angle, nec.DefaultBendAngle),
		Field:       "angle",
		ActualValue: angle,
		Expected:    fmt.Sprintf("one of %v", nec.Angles()),
	})
	return nec.DefaultBendAngle
}
