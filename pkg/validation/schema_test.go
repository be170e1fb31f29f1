package validation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/ChicagoDave/tradecalc/pkg/job"
)

func validJob() *job.Job {
	return &job.Job{
		Name: "service call",
		VoltageDrop: []job.VoltageDrop{
			{Name: "kitchen", Voltage: 120, Current: 10, Length: 50, Gauge: 12},
		},
		ConduitFill: []job.ConduitFill{
			{Name: "basement", ConduitArea: 0.304, ConductorArea: 0.1, Conductors: 3, WireType: "THHN"},
		},
		Offsets: []job.Offset{
			{Name: "beam", Height: 6, Angle: 30},
		},
		ThreeWay: []job.ThreeWay{
			{Name: "hall", DoorSwitch: true},
		},
		Troubleshoot: []job.Troubleshoot{
			{Name: "bedroom", VoltageAtPanel: 120, ContinuityOhms: 0.4},
		},
		Grounding: []job.Grounding{
			{Name: "dryer", RatingAmps: 30},
		},
	}
}

func TestValidateJobValid(t *testing.T) {
	r := ValidateJob(validJob())
	if !r.Valid {
		t.Errorf("expected valid report, got %d errors: %v", len(r.Errors), r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
}

func TestValidateJobEmpty(t *testing.T) {
	r := ValidateJob(&job.Job{Name: "nothing"})
	if r.Valid {
		t.Error("empty job should be invalid")
	}
	if len(r.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(r.Errors))
	}
}

func TestValidateJobConduitArea(t *testing.T) {
	j := validJob()
	j.ConduitFill[0].ConduitArea = 0
	r := ValidateJob(j)
	if r.Valid {
		t.Error("zero conduit area should be an error")
	}
	if r.Errors[0].Field != "conduit_fill[0].conduit_area" {
		t.Errorf("field = %q", r.Errors[0].Field)
	}
}

func TestValidateJobNegativeInputsWarn(t *testing.T) {
	j := validJob()
	j.VoltageDrop[0].Length = -10
	j.VoltageDrop[0].Current = -1
	j.Offsets[0].Height = -2
	j.ConduitFill[0].Conductors = 0

	r := ValidateJob(j)
	if !r.Valid {
		t.Errorf("unspecified inputs should only warn, got errors: %v", r.Errors)
	}
	if len(r.Warnings) != 4 {
		t.Errorf("expected 4 warnings, got %d: %v", len(r.Warnings), r.Warnings)
	}
}

func TestValidateJobNames(t *testing.T) {
	j := validJob()
	j.Offsets = append(j.Offsets, job.Offset{Name: "beam", Height: 3, Angle: 45})
	j.ThreeWay = append(j.ThreeWay, job.ThreeWay{})

	r := ValidateJob(j)
	if !r.Valid {
		t.Error("naming problems should not invalidate the job")
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected 1 duplicate-name warning, got %d", len(r.Warnings))
	}
	if r.Warnings[0].Field != "offsets[1].name" {
		t.Errorf("warning field = %q", r.Warnings[0].Field)
	}
	if len(r.Info) != 1 || r.Info[0].Field != "three_way[1].name" {
		t.Errorf("expected one missing-name info on three_way[1], got %v", r.Info)
	}
}

func TestValidateJobNonFiniteInputs(t *testing.T) {
	j := validJob()
	j.VoltageDrop[0].Length = math.Inf(-1)
	j.ConduitFill[0].ConduitArea = math.NaN()
	j.Offsets[0].Height = math.Inf(1)
	j.Troubleshoot[0].ContinuityOhms = math.Inf(1)

	r := ValidateJob(j)
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	if len(r.Errors) != 4 {
		t.Fatalf("errors = %d, want 4: %v", len(r.Errors), r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("negative-infinite length should not also warn, got %v", r.Warnings)
	}
	want := []string{
		"voltage_drop[0].length",
		"conduit_fill[0].conduit_area",
		"offsets[0].height",
		"troubleshoot[0].continuity_ohms",
	}
	for i, f := range want {
		if r.Errors[i].Field != f {
			t.Errorf("errors[%d].Field = %q, want %q", i, r.Errors[i].Field, f)
		}
	}
	if r.Errors[0].ActualValue != "-Inf" {
		t.Errorf("ActualValue = %v, want -Inf", r.Errors[0].ActualValue)
	}
	if _, err := json.Marshal(r); err != nil {
		t.Errorf("report must encode as JSON: %v", err)
	}
}
