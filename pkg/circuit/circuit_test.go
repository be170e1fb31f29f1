package circuit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveThreeWay(t *testing.T) {
	tests := []struct {
		door, bed bool
		want      LightState
	}{
		{false, false, Dark},
		{true, false, Lit},
		{false, true, Lit},
		{true, true, Dark},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SolveThreeWay(tt.door, tt.bed), "door=%v bed=%v", tt.door, tt.bed)
	}
	assert.Equal(t, "LIT", string(Lit))
	assert.Equal(t, "DARK", string(Dark))
}

func TestTroubleshootBreakerTrippedWins(t *testing.T) {
	readings := []struct{ volts, ohms float64 }{
		{0, 0},
		{120, 0},
		{120, 999999},
		{50, 5000},
		{-10, -1},
	}
	for _, r := range readings {
		d := TroubleshootNoPower(r.volts, true, r.ohms)
		assert.Equal(t, BreakerTripped, d.Code, "volts=%v ohms=%v", r.volts, r.ohms)
	}
}

func TestTroubleshootOrder(t *testing.T) {
	assert.Equal(t, NoPanelVoltage, TroubleshootNoPower(0, false, 999999).Code)
	assert.Equal(t, NoPanelVoltage, TroubleshootNoPower(99.9, false, 0).Code)
	assert.Equal(t, OpenCircuit, TroubleshootNoPower(120, false, 999999).Code)
	assert.Equal(t, OpenCircuit, TroubleshootNoPower(100, false, 1000.1).Code)
	assert.Equal(t, CheckGFCIOrBulb, TroubleshootNoPower(100, false, 1000).Code)
	assert.Equal(t, CheckGFCIOrBulb, TroubleshootNoPower(120, false, 0.5).Code)
}

func TestDiagnosisMessagesDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, code := range []DiagnosisCode{BreakerTripped, NoPanelVoltage, OpenCircuit, CheckGFCIOrBulb} {
		d := diagnosis(code)
		require.NotEmpty(t, d.Message)
		assert.False(t, seen[d.Message], "duplicate message for %s", code)
		seen[d.Message] = true
		assert.Equal(t, d.Message, d.String())
	}
}

func TestTroubleshootingChecklist(t *testing.T) {
	got := TroubleshootingChecklist()
	require.Len(t, got, 6)
	for i, step := range got {
		assert.True(t, strings.HasPrefix(step, string(rune('1'+i))+". "), "step %d = %q", i, step)
	}

	got[0] = "mutated"
	if diff := cmp.Diff(checklist[:], TroubleshootingChecklist()); diff != "" {
		t.Errorf("checklist changed after caller mutation (-want +got):\n%s", diff)
	}
}

func TestLOTOProcedure(t *testing.T) {
	steps := LOTOSteps()
	require.Len(t, steps, 6)

	proc := LOTOProcedure()
	lines := strings.Split(proc, "\n")
	if diff := cmp.Diff(steps, lines); diff != "" {
		t.Errorf("LOTOProcedure lines mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, strings.HasSuffix(proc, "\n"))
}
