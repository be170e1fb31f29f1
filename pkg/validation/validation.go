package validation

import "fmt"

// Level indicates which check produced the result.
type Level string

const (
	LevelInput    Level = "input"
	LevelCode     Level = "code"
	LevelFallback Level = "fallback"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single finding about a calculation input or output.
type Result struct {
	Level       Level    `json:"level" yaml:"level"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Message     string   `json:"message" yaml:"message"`
	Field       string   `json:"field,omitempty" yaml:"field,omitempty"`
	ActualValue any      `json:"actual_value,omitempty" yaml:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty" yaml:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Report collects findings. Only errors make it invalid.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge combines another report into this one. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Prefix returns a copy of the report with every Field prefixed by path.
// Used when a per-item report is folded into a job-level one.
func (r *Report) Prefix(path string) *Report {
	out := NewReport()
	out.Valid = r.Valid
	out.Errors = prefixAll(r.Errors, path)
	out.Warnings = prefixAll(r.Warnings, path)
	out.Info = prefixAll(r.Info, path)
	out.updateSummary()
	return out
}

// HasWarnings reports whether any warning was recorded.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func prefixAll(results []Result, path string) []Result {
	out := make([]Result, 0, len(results))
	for _, res := range results {
		switch {
		case res.Field == "":
			res.Field = path
		case path != "":
			res.Field = path + "." + res.Field
		}
		out = append(out, res)
	}
	return out
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
