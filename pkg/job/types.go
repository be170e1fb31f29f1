package job

// Job is a batch of calculations for one house or service call.
type Job struct {
	Name         string         `yaml:"name" json:"name"`
	VoltageDrop  []VoltageDrop  `yaml:"voltage_drop" json:"voltage_drop"`
	ConduitFill  []ConduitFill  `yaml:"conduit_fill" json:"conduit_fill"`
	Offsets      []Offset       `yaml:"offsets" json:"offsets"`
	ThreeWay     []ThreeWay     `yaml:"three_way" json:"three_way"`
	Troubleshoot []Troubleshoot `yaml:"troubleshoot" json:"troubleshoot"`
	Grounding    []Grounding    `yaml:"grounding" json:"grounding"`
}

// Empty reports whether the job has nothing to calculate.
func (j *Job) Empty() bool {
	return len(j.VoltageDrop) == 0 && len(j.ConduitFill) == 0 && len(j.Offsets) == 0 &&
		len(j.ThreeWay) == 0 && len(j.Troubleshoot) == 0 && len(j.Grounding) == 0
}

type VoltageDrop struct {
	Name     string  `yaml:"name" json:"name"`
	Voltage  float64 `yaml:"voltage" json:"voltage"`
	Current  float64 `yaml:"current" json:"current"`
	Length   float64 `yaml:"length" json:"length"`
	Gauge    int     `yaml:"gauge" json:"gauge"`
	Material string  `yaml:"material" json:"material"`
}

type ConduitFill struct {
	Name          string  `yaml:"name" json:"name"`
	ConduitArea   float64 `yaml:"conduit_area" json:"conduit_area"`
	ConductorArea float64 `yaml:"conductor_area" json:"conductor_area"`
	Conductors    int     `yaml:"conductors" json:"conductors"`
	WireType      string  `yaml:"wire_type" json:"wire_type"`
}

type Offset struct {
	Name   string  `yaml:"name" json:"name"`
	Height float64 `yaml:"height" json:"height"`
	Angle  float64 `yaml:"angle" json:"angle"`
}

type ThreeWay struct {
	Name       string `yaml:"name" json:"name"`
	DoorSwitch bool   `yaml:"door_switch" json:"door_switch"`
	BedSwitch  bool   `yaml:"bed_switch" json:"bed_switch"`
}

type Troubleshoot struct {
	Name           string  `yaml:"name" json:"name"`
	VoltageAtPanel float64 `yaml:"voltage_at_panel" json:"voltage_at_panel"`
	BreakerTripped bool    `yaml:"breaker_tripped" json:"breaker_tripped"`
	ContinuityOhms float64 `yaml:"continuity_ohms" json:"continuity_ohms"`
}

type Grounding struct {
	Name       string `yaml:"name" json:"name"`
	RatingAmps int    `yaml:"rating_amps" json:"rating_amps"`
}
