package validation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/tradecalc/pkg/job"
)

// ValidateJob checks the structure of a parsed job before any calculation.
// Values the calculators leave unspecified (negative lengths, conductor
// counts below one) are reported as warnings; they are never rewritten.
func ValidateJob(j *job.Job) *Report {
	r := NewReport()

	if j.Empty() {
		r.AddError(Result{
			Level:    LevelInput,
			Message:  "job contains no calculations",
			Expected: "at least one entry in voltage_drop, conduit_fill, offsets, three_way, troubleshoot or grounding",
		})
		return r
	}

	validateVoltageDrop(j, r)
	validateConduitFill(j, r)
	validateOffsets(j, r)
	validateTroubleshoot(j, r)
	validateNames(j, r)

	return r
}

func validateVoltageDrop(j *job.Job, r *Report) {
	for i, vd := range j.VoltageDrop {
		path := fmt.Sprintf("voltage_drop[%d]", i)
		if !finite(r, path, vd.Name, number{"voltage", vd.Voltage}, number{"current", vd.Current}, number{"length", vd.Length}) {
			continue
		}
		if vd.Length < 0 {
			r.AddWarning(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("voltage_drop[%d] (%s): negative length gives a negative drop", i, vd.Name),
				Field:       fmt.Sprintf("voltage_drop[%d].length", i),
				ActualValue: vd.Length,
				Expected:    ">= 0",
			})
		}
		if vd.Current < 0 {
			r.AddWarning(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("voltage_drop[%d] (%s): negative current gives a negative drop", i, vd.Name),
				Field:       fmt.Sprintf("voltage_drop[%d].current", i),
				ActualValue: vd.Current,
				Expected:    ">= 0",
			})
		}
	}
}

func validateConduitFill(j *job.Job, r *Report) {
	for i, cf := range j.ConduitFill {
		path := fmt.Sprintf("conduit_fill[%d]", i)
		if !finite(r, path, cf.Name, number{"conduit_area", cf.ConduitArea}, number{"conductor_area", cf.ConductorArea}) {
			continue
		}
		if cf.ConduitArea <= 0 {
			r.AddError(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("conduit_fill[%d] (%s): conduit_area must be > 0", i, cf.Name),
				Field:       fmt.Sprintf("conduit_fill[%d].conduit_area", i),
				ActualValue: cf.ConduitArea,
				Expected:    "> 0",
			})
		}
		if cf.ConductorArea < 0 {
			r.AddError(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("conduit_fill[%d] (%s): conductor_area must be >= 0", i, cf.Name),
				Field:       fmt.Sprintf("conduit_fill[%d].conductor_area", i),
				ActualValue: cf.ConductorArea,
				Expected:    ">= 0",
			})
		}
		if cf.Conductors < 1 {
			r.AddWarning(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("conduit_fill[%d] (%s): conductor count %d is below 1; the 40%% rule is applied", i, cf.Name, cf.Conductors),
				Field:       fmt.Sprintf("conduit_fill[%d].conductors", i),
				ActualValue: cf.Conductors,
				Expected:    ">= 1",
			})
		}
	}
}

func validateOffsets(j *job.Job, r *Report) {
	for i, o := range j.Offsets {
		path := fmt.Sprintf("offsets[%d]", i)
		if !finite(r, path, o.Name, number{"height", o.Height}, number{"angle", o.Angle}) {
			continue
		}
		if o.Height < 0 {
			r.AddWarning(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("offsets[%d] (%s): negative obstruction height", i, o.Name),
				Field:       fmt.Sprintf("offsets[%d].height", i),
				ActualValue: o.Height,
				Expected:    ">= 0",
			})
		}
	}
}

func validateTroubleshoot(j *job.Job, r *Report) {
	for i, ts := range j.Troubleshoot {
		path := fmt.Sprintf("troubleshoot[%d]", i)
		finite(r, path, ts.Name, number{"voltage_at_panel", ts.VoltageAtPanel}, number{"continuity_ohms", ts.ContinuityOhms})
	}
}

type number struct {
	field string
	value float64
}

// finite reports every NaN or infinite field of one entry as an error.
// ActualValue carries the text form since JSON cannot encode these values.
func finite(r *Report, path, name string, nums ...number) bool {
	ok := true
	for _, n := range nums {
		if !math.IsNaN(n.value) && !math.IsInf(n.value, 0) {
			continue
		}
		ok = false
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("%s (%s): %s is not a finite number", path, name, n.field),
			Field:       path + "." + n.field,
			ActualValue: fmt.Sprint(n.value),
			Expected:    "a finite number",
		})
	}
	return ok
}

func validateNames(j *job.Job, r *Report) {
	sections := map[string][]string{
		"voltage_drop": {},
		"conduit_fill": {},
		"offsets":      {},
		"three_way":    {},
		"troubleshoot": {},
		"grounding":    {},
	}
	for _, e := range j.VoltageDrop {
		sections["voltage_drop"] = append(sections["voltage_drop"], e.Name)
	}
	for _, e := range j.ConduitFill {
		sections["conduit_fill"] = append(sections["conduit_fill"], e.Name)
	}
	for _, e := range j.Offsets {
		sections["offsets"] = append(sections["offsets"], e.Name)
	}
	for _, e := range j.ThreeWay {
		sections["three_way"] = append(sections["three_way"], e.Name)
	}
	for _, e := range j.Troubleshoot {
		sections["troubleshoot"] = append(sections["troubleshoot"], e.Name)
	}
	for _, e := range j.Grounding {
		sections["grounding"] = append(sections["grounding"], e.Name)
	}

	for _, section := range []string{"voltage_drop", "conduit_fill", "offsets", "three_way", "troubleshoot", "grounding"} {
		seen := map[string]int{}
		for i, name := range sections[section] {
			if name == "" {
				r.AddInfo(Result{
					Level:   LevelInput,
					Message: fmt.Sprintf("%s[%d] has no name", section, i),
					Field:   fmt.Sprintf("%s[%d].name", section, i),
				})
				continue
			}
			if first, dup := seen[name]; dup {
				r.AddWarning(Result{
					Level:       LevelInput,
					Message:     fmt.Sprintf("%s[%d] repeats the name %q", section, i, name),
					Field:       fmt.Sprintf("%s[%d].name", section, i),
					ActualValue: name,
					Expected:    fmt.Sprintf("unique (first used at %s[%d])", section, first),
				})
				continue
			}
			seen[name] = i
		}
	}
}
