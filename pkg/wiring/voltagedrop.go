package wiring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChicagoDave/tradecalc/pkg/nec"
)

// Sentinel is returned by VoltageDropPercent for rejected inputs.
const Sentinel = -1.0

var (
	// ErrInvalidInput is wrapped by every rejection from VoltageDrop.
	ErrInvalidInput = errors.New("wiring: invalid input")
	// ErrUnknownGauge is returned for a gauge outside the circular-mil table.
	ErrUnknownGauge = fmt.Errorf("%w: unknown wire gauge", ErrInvalidInput)
	// ErrNonPositiveVoltage is returned for a system voltage of zero or less.
	ErrNonPositiveVoltage = fmt.Errorf("%w: voltage must be greater than 0", ErrInvalidInput)
	// ErrNoGaugeFits is returned by MinimumGauge when even the largest
	// conductor in the table exceeds the limit.
	ErrNoGaugeFits = errors.New("wiring: no gauge in table keeps drop within limit")
)

// Material is the conductor metal.
type Material string

const (
	Copper   Material = "copper"
	Aluminum Material = "aluminum"
)

// ParseMaterial matches case-insensitively after trimming surrounding
// whitespace, so " Copper " is copper. Empty means copper; any other name
// is treated as aluminum.
func ParseMaterial(s string) Material {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Copper):
		return Copper
	default:
		return Aluminum
	}
}

// K returns the resistivity constant used in the drop formula.
func (m Material) K() float64 {
	if m == Copper {
		return nec.CopperK
	}
	return nec.AluminumK
}

// Run describes one branch circuit.
type Run struct {
	Voltage  float64  `json:"voltage" yaml:"voltage"`   // volts
	Current  float64  `json:"current" yaml:"current"`   // amps
	Length   float64  `json:"length" yaml:"length"`     // feet, one way
	Gauge    int      `json:"gauge" yaml:"gauge"`       // AWG
	Material Material `json:"material" yaml:"material"` // copper when empty
}

// Drop is a computed voltage drop.
type Drop struct {
	Volts        float64 `json:"volts"`
	Percent      float64 `json:"percent"`
	K            float64 `json:"k"`
	CircularMils float64 `json:"circular_mils"`
}

// ExceedsRecommended reports whether the drop is above the 3% guidance.
// VoltageDrop itself never enforces it.
func (d Drop) ExceedsRecommended() bool {
	return d.Percent > nec.RecommendedMaxDropPercent
}

// VoltageDrop computes VD = 2·K·L·I / CM and its share of the system voltage.
// The gauge is checked before the voltage.
func VoltageDrop(r Run) (Drop, error) {
	cm, ok := nec.CircularMils(r.Gauge)
	if !ok {
		return Drop{}, fmt.Errorf("%w: %d AWG", ErrUnknownGauge, r.Gauge)
	}
	if r.Voltage <= 0 {
		return Drop{}, fmt.Errorf("%w: got %g", ErrNonPositiveVoltage, r.Voltage)
	}

	k := ParseMaterial(string(r.Material)).K()
	volts := 2 * k * r.Length * r.Current / cm
	return Drop{
		Volts:        volts,
		Percent:      volts / r.Voltage * 100,
		K:            k,
		CircularMils: cm,
	}, nil
}

// VoltageDropPercent returns the percent drop, or Sentinel when the gauge is
// unknown or the voltage is not positive.
func VoltageDropPercent(voltage, current, length float64, gauge int, material string) float64 {
	d, err := VoltageDrop(Run{
		Voltage:  voltage,
		Current:  current,
		Length:   length,
		Gauge:    gauge,
		Material: Material(material),
	})
	if err != nil {
		return Sentinel
	}
	return d.Percent
}

// MinimumGauge returns the smallest conductor in the table whose drop for r
// stays at or below maxPercent. r.Gauge is ignored.
func MinimumGauge(r Run, maxPercent float64) (int, error) {
	for _, g := range nec.Gauges() {
		r.Gauge = g
		d, err := VoltageDrop(r)
		if err != nil {
			return 0, err
		}
		if d.Percent <= maxPercent {
			return g, nil
		}
	}
	return 0, ErrNoGaugeFits
}
