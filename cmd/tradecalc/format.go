package main

import (
	"fmt"
	"io"

	"github.com/ChicagoDave/tradecalc/pkg/bending"
	"github.com/ChicagoDave/tradecalc/pkg/conduit"
	"github.com/ChicagoDave/tradecalc/pkg/evaluate"
	"github.com/ChicagoDave/tradecalc/pkg/nec"
	"github.com/ChicagoDave/tradecalc/pkg/validation"
	"github.com/ChicagoDave/tradecalc/pkg/wiring"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	printFindings(w, "ERRORS", r.Errors)
	printFindings(w, "WARNINGS", r.Warnings)

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printFindings(w io.Writer, title string, results []validation.Result) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(results))
	for _, e := range results {
		fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
		if e.Field != "" {
			fmt.Fprintf(w, "    -> %s = %v\n", e.Field, e.ActualValue)
		}
		if e.Expected != "" {
			fmt.Fprintf(w, "    expected: %s\n", e.Expected)
		}
		for _, s := range e.Suggestions {
			fmt.Fprintf(w, "    * %s\n", s)
		}
	}
	fmt.Fprintln(w)
}

func printVoltageDrop(w io.Writer, run wiring.Run, d wiring.Drop) {
	fmt.Fprintf(w, "Voltage drop: %.3f V (%.2f%%)\n", d.Volts, d.Percent)
	fmt.Fprintf(w, "  %g V, %g A, %g ft one way, %d AWG %s (K=%.1f, %.0f cmil)\n",
		run.Voltage, run.Current, run.Length, run.Gauge, run.Material, d.K, d.CircularMils)
	if d.ExceedsRecommended() {
		fmt.Fprintf(w, "  exceeds the recommended %.0f%%\n", nec.RecommendedMaxDropPercent)
	}
}

func printFill(w io.Writer, a conduit.Assessment) {
	verdict := "OK"
	if !a.Within {
		verdict = "OVERFILLED"
	}
	fmt.Fprintf(w, "Fill: %.1f%% of %.0f%% allowed -> %s\n", a.Percent, a.MaxAllowed*100, verdict)
}

func printOffset(w io.Writer, l bending.OffsetLayout) {
	fmt.Fprintf(w, "Offset: %g in at %g°\n", l.Height, l.Angle)
	fmt.Fprintf(w, "  Distance between bends: %.2f in (multiplier %.1f)\n", l.DistanceBetweenBends, l.Multiplier)
	fmt.Fprintf(w, "  Shrink:                 %.2f in\n", l.Shrink)
}

func printResults(w io.Writer, res *evaluate.Results) {
	fmt.Fprintf(w, "Job: %s (run %s)\n", res.Job, res.RunID)
	fmt.Fprintln(w, "==================================")

	if len(res.VoltageDrop) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-20s %8s %8s %8s %5s %9s %8s\n", "Voltage drop", "Volts", "Amps", "Feet", "AWG", "Drop V", "Drop %")
		for _, r := range res.VoltageDrop {
			if r.Error != "" {
				fmt.Fprintf(w, "%-20s %s\n", r.Name, r.Error)
				continue
			}
			fmt.Fprintf(w, "%-20s %8g %8g %8g %5d %9.3f %8.2f\n",
				r.Name, r.Voltage, r.Current, r.Length, r.Gauge, r.Volts, r.Percent)
		}
	}

	if len(res.ConduitFill) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-20s %6s %8s %8s %8s\n", "Conduit fill", "Wires", "Fill %", "Max %", "Result")
		for _, r := range res.ConduitFill {
			if r.Error != "" {
				fmt.Fprintf(w, "%-20s %s\n", r.Name, r.Error)
				continue
			}
			verdict := "OK"
			if !r.Within {
				verdict = "OVER"
			}
			fmt.Fprintf(w, "%-20s %6d %8.2f %8.0f %8s\n", r.Name, r.Conductors, r.Percent, r.MaxAllowed*100, verdict)
		}
	}

	if len(res.Offsets) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-20s %8s %8s %10s %8s\n", "Offset", "Height", "Angle", "Between", "Shrink")
		for _, r := range res.Offsets {
			if r.Error != "" {
				fmt.Fprintf(w, "%-20s %s\n", r.Name, r.Error)
				continue
			}
			fmt.Fprintf(w, "%-20s %8g %8g %10.2f %8.2f\n", r.Name, r.Height, r.Angle, r.DistanceBetweenBends, r.Shrink)
		}
	}

	if len(res.ThreeWay) > 0 {
		fmt.Fprintln(w)
		for _, r := range res.ThreeWay {
			fmt.Fprintf(w, "3-way %-14s door=%-5v bed=%-5v -> %s\n", r.Name, r.DoorSwitch, r.BedSwitch, r.State)
		}
	}

	if len(res.Troubleshoot) > 0 {
		fmt.Fprintln(w)
		for _, r := range res.Troubleshoot {
			fmt.Fprintf(w, "%s: %s\n", r.Name, r.Diagnosis.Message)
		}
	}

	if len(res.Grounding) > 0 {
		fmt.Fprintln(w)
		for _, r := range res.Grounding {
			if r.Error != "" {
				fmt.Fprintf(w, "EGC %-16s %s\n", r.Name, r.Error)
				continue
			}
			fmt.Fprintf(w, "EGC %-16s %d A -> %d AWG copper\n", r.Name, r.RatingAmps, r.Gauge)
		}
	}
}

func printTables(w io.Writer, ref nec.Reference) {
	fmt.Fprintln(w, "Conductor area (Chapter 9, Table 8)")
	for _, g := range ref.GaugeAreas {
		fmt.Fprintf(w, "  %3d AWG %8.0f cmil\n", g.Gauge, g.CircularMils)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conduit fill (Chapter 9, Table 1)")
	for _, b := range ref.FillFactors {
		label := fmt.Sprintf("%d+", b.MinCount)
		if b.MaxCount != 0 {
			label = fmt.Sprintf("%d", b.MinCount)
		}
		fmt.Fprintf(w, "  %-3s conductors %5.0f%%\n", label, b.MaxFill*100)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Equipment grounding conductor (250.122, copper)")
	for _, g := range ref.GroundingConductors {
		fmt.Fprintf(w, "  %4d A  %3d AWG\n", g.RatingAmps, g.Gauge)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-8s %12s %10s\n", "Angle", "Multiplier", "Shrink/in")
	for _, m := range ref.BendingMultipliers {
		shrink, _ := nec.ShrinkPerInch(m.Angle)
		fmt.Fprintf(w, "%-8g %12.1f %10.2f\n", m.Angle, m.Factor, shrink)
	}
}
