package evaluate

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ChicagoDave/tradecalc/pkg/bending"
	"github.com/ChicagoDave/tradecalc/pkg/circuit"
	"github.com/ChicagoDave/tradecalc/pkg/conduit"
	"github.com/ChicagoDave/tradecalc/pkg/job"
	"github.com/ChicagoDave/tradecalc/pkg/nec"
	"github.com/ChicagoDave/tradecalc/pkg/validation"
	"github.com/ChicagoDave/tradecalc/pkg/wiring"
)

// Run validates a job, runs every calculation in it and collects the
// findings. Entries that fail are kept in the results with an Error and
// reported as validation errors; the rest of the job still runs.
func Run(j *job.Job) (*Results, *validation.Report) {
	report := validation.ValidateJob(j)

	res := &Results{
		RunID:        uuid.NewString(),
		Job:          j.Name,
		VoltageDrop:  []VoltageDropResult{},
		ConduitFill:  []ConduitFillResult{},
		Offsets:      []OffsetResult{},
		ThreeWay:     []ThreeWayResult{},
		Troubleshoot: []TroubleshootResult{},
		Grounding:    []GroundingResult{},
	}

	for i, vd := range j.VoltageDrop {
		res.VoltageDrop = append(res.VoltageDrop, runVoltageDrop(i, vd, report))
	}
	for i, cf := range j.ConduitFill {
		res.ConduitFill = append(res.ConduitFill, runConduitFill(i, cf, report))
	}
	for i, o := range j.Offsets {
		res.Offsets = append(res.Offsets, runOffset(i, o, report))
	}
	for _, tw := range j.ThreeWay {
		res.ThreeWay = append(res.ThreeWay, ThreeWayResult{
			Name:       tw.Name,
			DoorSwitch: tw.DoorSwitch,
			BedSwitch:  tw.BedSwitch,
			State:      circuit.SolveThreeWay(tw.DoorSwitch, tw.BedSwitch),
		})
	}
	for i, ts := range j.Troubleshoot {
		d := circuit.TroubleshootNoPower(ts.VoltageAtPanel, ts.BreakerTripped, ts.ContinuityOhms)
		res.Troubleshoot = append(res.Troubleshoot, TroubleshootResult{Name: ts.Name, Diagnosis: d})
		report.AddInfo(validation.Result{
			Level:   validation.LevelCode,
			Message: fmt.Sprintf("%s: %s", ts.Name, d.Message),
			Field:   fmt.Sprintf("troubleshoot[%d]", i),
		})
	}
	for i, g := range j.Grounding {
		res.Grounding = append(res.Grounding, runGrounding(i, g, report))
	}

	return res, report
}

func runVoltageDrop(i int, vd job.VoltageDrop, report *validation.Report) VoltageDropResult {
	run := wiring.Run{
		Voltage:  vd.Voltage,
		Current:  vd.Current,
		Length:   vd.Length,
		Gauge:    vd.Gauge,
		Material: wiring.ParseMaterial(vd.Material),
	}
	if !finite(vd.Voltage, vd.Current, vd.Length) {
		// Already reported by ValidateJob.
		return VoltageDropResult{Name: vd.Name, Gauge: vd.Gauge, Material: run.Material, Error: errNonFiniteInput}
	}
	out := VoltageDropResult{
		Name:     vd.Name,
		Voltage:  vd.Voltage,
		Current:  vd.Current,
		Length:   vd.Length,
		Gauge:    vd.Gauge,
		Material: run.Material,
	}

	d, err := wiring.VoltageDrop(run)
	if err != nil {
		out.Error = err.Error()
		field := fmt.Sprintf("voltage_drop[%d].voltage", i)
		expected := "> 0"
		var actual any = vd.Voltage
		if errors.Is(err, wiring.ErrUnknownGauge) {
			field = fmt.Sprintf("voltage_drop[%d].gauge", i)
			expected = fmt.Sprintf("one of %v", nec.Gauges())
			actual = vd.Gauge
		}
		report.AddError(validation.Result{
			Level:       validation.LevelInput,
			Message:     fmt.Sprintf("voltage_drop[%d] (%s): %v", i, vd.Name, err),
			Field:       field,
			ActualValue: actual,
			Expected:    expected,
		})
		return out
	}
	if !finite(d.Volts, d.Percent) {
		out.Error = errNonFiniteResult
		reportNonFinite(report, fmt.Sprintf("voltage_drop[%d]", i), vd.Name)
		return out
	}

	out.Volts = round(d.Volts, 3)
	out.Percent = round(d.Percent, 2)
	out.ExceedsRecommended = d.ExceedsRecommended()
	if !out.ExceedsRecommended {
		return out
	}

	warning := validation.Result{
		Level:       validation.LevelCode,
		Message:     fmt.Sprintf("voltage_drop[%d] (%s): %.2f%% drop exceeds the recommended %.0f%%", i, vd.Name, d.Percent, nec.RecommendedMaxDropPercent),
		Field:       fmt.Sprintf("voltage_drop[%d]", i),
		ActualValue: out.Percent,
		Expected:    fmt.Sprintf("<= %.0f%%", nec.RecommendedMaxDropPercent),
	}
	if g, err := wiring.MinimumGauge(run, nec.RecommendedMaxDropPercent); err == nil {
		out.SuggestedGauge = g
		warning.Suggestions = []string{fmt.Sprintf("Use %d AWG %s or larger", g, run.Material)}
	} else {
		warning.Suggestions = []string{"Shorten the run, raise the voltage, or use conductors larger than 1 AWG"}
	}
	report.AddWarning(warning)
	return out
}

func runConduitFill(i int, cf job.ConduitFill, report *validation.Report) ConduitFillResult {
	out := ConduitFillResult{
		Name:       cf.Name,
		WireType:   cf.WireType,
		Conductors: cf.Conductors,
		MaxAllowed: nec.FillFactor(cf.Conductors),
	}
	if !finite(cf.ConduitArea, cf.ConductorArea) {
		// Already reported by ValidateJob.
		out.Error = errNonFiniteInput
		return out
	}
	if cf.ConduitArea <= 0 {
		// Already reported by ValidateJob.
		out.Error = "conduit_area must be > 0"
		return out
	}

	a := conduit.Fill(cf.ConduitArea, cf.ConductorArea, cf.Conductors)
	if !finite(a.Ratio, a.Percent) {
		out.Error = errNonFiniteResult
		reportNonFinite(report, fmt.Sprintf("conduit_fill[%d]", i), cf.Name)
		return out
	}
	out.Ratio = round(a.Ratio, 3)
	out.Percent = round(a.Percent, 2)
	out.Within = a.Within
	if !a.Within {
		report.AddError(validation.Result{
			Level:       validation.LevelCode,
			Message:     fmt.Sprintf("conduit_fill[%d] (%s): %.1f%% fill exceeds %.0f%% for %d conductors", i, cf.Name, a.Percent, a.MaxAllowed*100, cf.Conductors),
			Field:       fmt.Sprintf("conduit_fill[%d]", i),
			ActualValue: out.Ratio,
			Expected:    fmt.Sprintf("<= %.2f", a.MaxAllowed),
			Suggestions: []string{"Use the next trade size of conduit", "Split the circuits across two raceways"},
		})
	}
	return out
}

func runOffset(i int, o job.Offset, report *validation.Report) OffsetResult {
	if !finite(o.Height, o.Angle) {
		// Already reported by ValidateJob.
		return OffsetResult{Name: o.Name, Error: errNonFiniteInput}
	}
	layout, r := bending.Offset(o.Height, o.Angle)
	report.Merge(r.Prefix(fmt.Sprintf("offsets[%d]", i)))
	if !finite(layout.DistanceBetweenBends, layout.Shrink) {
		reportNonFinite(report, fmt.Sprintf("offsets[%d]", i), o.Name)
		return OffsetResult{
			Name:           o.Name,
			RequestedAngle: o.Angle,
			Angle:          layout.Angle,
			Height:         o.Height,
			Multiplier:     layout.Multiplier,
			Defaulted:      layout.Defaulted,
			Error:          errNonFiniteResult,
		}
	}
	return OffsetResult{
		Name:                 o.Name,
		RequestedAngle:       o.Angle,
		Angle:                layout.Angle,
		Height:               o.Height,
		Multiplier:           layout.Multiplier,
		DistanceBetweenBends: round(layout.DistanceBetweenBends, 2),
		Shrink:               round(layout.Shrink, 2),
		Defaulted:            layout.Defaulted,
	}
}

func runGrounding(i int, g job.Grounding, report *validation.Report) GroundingResult {
	out := GroundingResult{Name: g.Name, RatingAmps: g.RatingAmps}
	gauge, err := nec.SizeGroundConductor(g.RatingAmps)
	if err != nil {
		out.Error = err.Error()
		report.AddError(validation.Result{
			Level:       validation.LevelInput,
			Message:     fmt.Sprintf("grounding[%d] (%s): %v", i, g.Name, err),
			Field:       fmt.Sprintf("grounding[%d].rating_amps", i),
			ActualValue: g.RatingAmps,
			Expected:    "1-200 A",
		})
		return out
	}
	out.Gauge = gauge
	return out
}

const (
	errNonFiniteInput  = "input is not a finite number"
	errNonFiniteResult = "result is not a finite number"
)

// reportNonFinite records a calculation whose inputs were accepted but whose
// result overflowed or divided by a vanishing value.
func reportNonFinite(report *validation.Report, field, name string) {
	report.AddError(validation.Result{
		Level:       validation.LevelInput,
		Message:     fmt.Sprintf("%s (%s): %s", field, name, errNonFiniteResult),
		Field:       field,
		Expected:    "inputs that give a finite result",
		Suggestions: []string{"Check the entry for a mistyped exponent or unit"},
	})
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// round rounds half away from zero at the given decimal places.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
