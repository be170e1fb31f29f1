package circuit

import "strings"

// Fixed thresholds for the no-power tree, against a 120 V nominal system.
const (
	PanelVoltageThreshold = 100.0  // volts
	OpenCircuitOhms       = 1000.0 // ohms; a meter showing OL reads above this
)

// DiagnosisCode identifies a branch of the no-power tree.
type DiagnosisCode string

const (
	BreakerTripped  DiagnosisCode = "breaker_tripped"
	NoPanelVoltage  DiagnosisCode = "no_panel_voltage"
	OpenCircuit     DiagnosisCode = "open_circuit"
	CheckGFCIOrBulb DiagnosisCode = "check_gfci_or_bulb"
)

// Diagnosis is the outcome of TroubleshootNoPower.
type Diagnosis struct {
	Code    DiagnosisCode `json:"code" yaml:"code"`
	Message string        `json:"message" yaml:"message"`
}

func (d Diagnosis) String() string {
	return d.Message
}

var diagnoses = map[DiagnosisCode]string{
	BreakerTripped:  "DIAGNOSIS: Breaker tripped. Reset it. If it trips again, look for a short.",
	NoPanelVoltage:  "DIAGNOSIS: No voltage at panel. Call the utility or check the main lugs.",
	OpenCircuit:     "DIAGNOSIS: Open circuit. Look for a cut wire or a loose wire nut.",
	CheckGFCIOrBulb: "DIAGNOSIS: Readings look normal. Check the GFCI or the bulb itself.",
}

func diagnosis(code DiagnosisCode) Diagnosis {
	return Diagnosis{Code: code, Message: diagnoses[code]}
}

// TroubleshootNoPower walks the "no power to circuit" tree. The first check
// that fires wins: tripped breaker, then panel voltage, then continuity.
func TroubleshootNoPower(voltageAtPanel float64, breakerTripped bool, continuityOhms float64) Diagnosis {
	if breakerTripped {
		return diagnosis(BreakerTripped)
	}
	if voltageAtPanel < PanelVoltageThreshold {
		return diagnosis(NoPanelVoltage)
	}
	if continuityOhms > OpenCircuitOhms {
		return diagnosis(OpenCircuit)
	}
	return diagnosis(CheckGFCIOrBulb)
}

var checklist = [...]string{
	"1. Problem Definition (assess, don't guess)",
	"2. Safety Prep (lockout/tagout before touching anything)",
	"3. Visual Inspection (look with your eyes, not your hands)",
	"4. Diagnostic Testing (multimeter readings)",
	"5. Isolation (divide and conquer)",
	"6. Solution (repair, then verify)",
}

var lotoSteps = [...]string{
	"1. Identify all energy sources.",
	"2. Notify affected personnel.",
	"3. Shut the equipment down.",
	"4. Isolate the energy sources.",
	"5. Apply locks and tags.",
	"6. Verify isolation (test before touch).",
}

// TroubleshootingChecklist returns the systematic troubleshooting steps.
func TroubleshootingChecklist() []string {
	return append([]string(nil), checklist[:]...)
}

// LOTOSteps returns the lockout/tagout steps in order.
func LOTOSteps() []string {
	return append([]string(nil), lotoSteps[:]...)
}

// LOTOProcedure returns the lockout/tagout steps one per line.
func LOTOProcedure() string {
	return strings.Join(lotoSteps[:], "\n")
}
