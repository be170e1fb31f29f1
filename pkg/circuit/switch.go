package circuit

// LightState is the lamp on a switched circuit.
type LightState string

const (
	Lit  LightState = "LIT"
	Dark LightState = "DARK"
)

// SolveThreeWay returns the lamp state for a pair of 3-way switches joined by
// travelers. The lamp is lit when the switches disagree.
func SolveThreeWay(doorSwitch, bedSwitch bool) LightState {
	if doorSwitch != bedSwitch {
		return Lit
	}
	return Dark
}
