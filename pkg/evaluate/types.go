package evaluate

import (
	"github.com/ChicagoDave/tradecalc/pkg/circuit"
	"github.com/ChicagoDave/tradecalc/pkg/wiring"
)

// Results holds every computed value for one job run. Numbers are rounded
// for presentation.
type Results struct {
	RunID string `json:"run_id"`
	Job   string `json:"job"`

	VoltageDrop  []VoltageDropResult  `json:"voltage_drop"`
	ConduitFill  []ConduitFillResult  `json:"conduit_fill"`
	Offsets      []OffsetResult       `json:"offsets"`
	ThreeWay     []ThreeWayResult     `json:"three_way"`
	Troubleshoot []TroubleshootResult `json:"troubleshoot"`
	Grounding    []GroundingResult    `json:"grounding"`
}

type VoltageDropResult struct {
	Name               string          `json:"name"`
	Voltage            float64         `json:"voltage"`
	Current            float64         `json:"current"`
	Length             float64         `json:"length"`
	Gauge              int             `json:"gauge"`
	Material           wiring.Material `json:"material"`
	Volts              float64         `json:"volts"`
	Percent            float64         `json:"percent"`
	ExceedsRecommended bool            `json:"exceeds_recommended"`
	SuggestedGauge     int             `json:"suggested_gauge,omitempty"`
	Error              string          `json:"error,omitempty"`
}

type ConduitFillResult struct {
	Name       string  `json:"name"`
	WireType   string  `json:"wire_type,omitempty"`
	Conductors int     `json:"conductors"`
	Ratio      float64 `json:"ratio"`
	Percent    float64 `json:"percent"`
	MaxAllowed float64 `json:"max_allowed"`
	Within     bool    `json:"within"`
	Error      string  `json:"error,omitempty"`
}

type OffsetResult struct {
	Name                 string  `json:"name"`
	RequestedAngle       float64 `json:"requested_angle"`
	Angle                float64 `json:"angle"`
	Height               float64 `json:"height"`
	Multiplier           float64 `json:"multiplier"`
	DistanceBetweenBends float64 `json:"distance_between_bends"`
	Shrink               float64 `json:"shrink"`
	Defaulted            bool    `json:"defaulted"`
	Error                string  `json:"error,omitempty"`
}

type ThreeWayResult struct {
	Name       string             `json:"name"`
	DoorSwitch bool               `json:"door_switch"`
	BedSwitch  bool               `json:"bed_switch"`
	State      circuit.LightState `json:"state"`
}

type TroubleshootResult struct {
	Name      string            `json:"name"`
	Diagnosis circuit.Diagnosis `json:"diagnosis"`
}

type GroundingResult struct {
	Name       string `json:"name"`
	RatingAmps int    `json:"rating_amps"`
	Gauge      int    `json:"gauge,omitempty"`
	Error      string `json:"error,omitempty"`
}
