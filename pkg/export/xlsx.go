package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ChicagoDave/tradecalc/pkg/evaluate"
	"github.com/ChicagoDave/tradecalc/pkg/nec"
)

// Sheet names used by WriteResults.
const (
	SheetVoltageDrop  = "VoltageDrop"
	SheetConduitFill  = "ConduitFill"
	SheetOffsets      = "Offsets"
	SheetSwitches     = "Switches"
	SheetTroubleshoot = "Troubleshooting"
	SheetGrounding    = "Grounding"
)

// sheet is a header row plus data rows destined for one worksheet.
type sheet struct {
	name   string
	header []string
	rows   [][]any
}

// ResultsWorkbook builds a workbook with one sheet per calculation type.
func ResultsWorkbook(res *evaluate.Results) (*excelize.File, error) {
	sheets := []sheet{
		voltageDropSheet(res.VoltageDrop),
		conduitFillSheet(res.ConduitFill),
		offsetSheet(res.Offsets),
		switchSheet(res.ThreeWay),
		troubleshootSheet(res.Troubleshoot),
		groundingSheet(res.Grounding),
	}
	return build(sheets)
}

// WriteResults saves ResultsWorkbook to path.
func WriteResults(path string, res *evaluate.Results) error {
	f, err := ResultsWorkbook(res)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// TablesWorkbook builds a workbook with one sheet per reference table.
func TablesWorkbook(ref nec.Reference) (*excelize.File, error) {
	gauges := sheet{name: "GaugeArea", header: []string{"AWG", "Circular mils"}}
	for _, g := range ref.GaugeAreas {
		gauges.rows = append(gauges.rows, []any{g.Gauge, g.CircularMils})
	}

	fill := sheet{name: "FillFactor", header: []string{"Min conductors", "Max conductors", "Max fill"}}
	for _, b := range ref.FillFactors {
		var maxCount any = b.MaxCount
		if b.MaxCount == 0 {
			maxCount = "-"
		}
		fill.rows = append(fill.rows, []any{b.MinCount, maxCount, b.MaxFill})
	}

	ground := sheet{name: "GroundingConductors", header: []string{"OCPD rating (A)", "Copper EGC (AWG)"}}
	for _, g := range ref.GroundingConductors {
		ground.rows = append(ground.rows, []any{g.RatingAmps, g.Gauge})
	}

	return build([]sheet{
		gauges,
		fill,
		ground,
		angleSheet("BendingMultipliers", "Multiplier", ref.BendingMultipliers),
		angleSheet("ShrinkPerInch", "Shrink (in/in)", ref.ShrinkPerInch),
		angleSheet("ReferenceShrink", "Shrink (in/in)", ref.ReferenceShrinkPerInch),
	})
}

// WriteTables saves TablesWorkbook to path.
func WriteTables(path string, ref nec.Reference) error {
	f, err := TablesWorkbook(ref)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func angleSheet(name, label string, factors []nec.AngleFactor) sheet {
	s := sheet{name: name, header: []string{"Angle (deg)", label}}
	for _, a := range factors {
		s.rows = append(s.rows, []any{a.Angle, a.Factor})
	}
	return s
}

func voltageDropSheet(list []evaluate.VoltageDropResult) sheet {
	s := sheet{
		name:   SheetVoltageDrop,
		header: []string{"Name", "Voltage", "Current (A)", "Length (ft)", "AWG", "Material", "Drop (V)", "Drop (%)", "Over 3%", "Suggested AWG", "Error"},
	}
	for _, r := range list {
		s.rows = append(s.rows, []any{r.Name, r.Voltage, r.Current, r.Length, r.Gauge, string(r.Material),
			r.Volts, r.Percent, r.ExceedsRecommended, blankZero(r.SuggestedGauge), r.Error})
	}
	return s
}

func conduitFillSheet(list []evaluate.ConduitFillResult) sheet {
	s := sheet{
		name:   SheetConduitFill,
		header: []string{"Name", "Wire type", "Conductors", "Ratio", "Fill (%)", "Max fill", "Within", "Error"},
	}
	for _, r := range list {
		s.rows = append(s.rows, []any{r.Name, r.WireType, r.Conductors, r.Ratio, r.Percent, r.MaxAllowed, r.Within, r.Error})
	}
	return s
}

func offsetSheet(list []evaluate.OffsetResult) sheet {
	s := sheet{
		name:   SheetOffsets,
		header: []string{"Name", "Requested angle", "Angle", "Height (in)", "Multiplier", "Between bends (in)", "Shrink (in)", "Defaulted", "Error"},
	}
	for _, r := range list {
		s.rows = append(s.rows, []any{r.Name, r.RequestedAngle, r.Angle, r.Height, r.Multiplier, r.DistanceBetweenBends, r.Shrink, r.Defaulted, r.Error})
	}
	return s
}

func switchSheet(list []evaluate.ThreeWayResult) sheet {
	s := sheet{name: SheetSwitches, header: []string{"Name", "Door switch", "Bed switch", "Lamp"}}
	for _, r := range list {
		s.rows = append(s.rows, []any{r.Name, r.DoorSwitch, r.BedSwitch, string(r.State)})
	}
	return s
}

func troubleshootSheet(list []evaluate.TroubleshootResult) sheet {
	s := sheet{name: SheetTroubleshoot, header: []string{"Name", "Code", "Diagnosis"}}
	for _, r := range list {
		s.rows = append(s.rows, []any{r.Name, string(r.Diagnosis.Code), r.Diagnosis.Message})
	}
	return s
}

func groundingSheet(list []evaluate.GroundingResult) sheet {
	s := sheet{name: SheetGrounding, header: []string{"Name", "OCPD rating (A)", "Copper EGC (AWG)", "Error"}}
	for _, r := range list {
		s.rows = append(s.rows, []any{r.Name, r.RatingAmps, blankZero(r.Gauge), r.Error})
	}
	return s
}

func blankZero(v int) any {
	if v == 0 {
		return ""
	}
	return v
}

func build(sheets []sheet) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := addSheets(f, sheets); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func addSheets(f *excelize.File, sheets []sheet) error {
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("renaming sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("adding sheet %s: %w", s.name, err)
		}
		if err := writeRows(f, s); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(f *excelize.File, s sheet) error {
	for col, h := range s.header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.name, cell, h); err != nil {
			return fmt.Errorf("writing %s!%s: %w", s.name, cell, err)
		}
	}
	for r, row := range s.rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.name, cell, v); err != nil {
				return fmt.Errorf("writing %s!%s: %w", s.name, cell, err)
			}
		}
	}
	return nil
}
