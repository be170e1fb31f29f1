package nec

// Reference is a snapshot of every lookup table, for reporting and UI layers.
// Callers receive copies; mutating a Reference never affects the calculators.
type Reference struct {
	GaugeAreas             []GaugeArea       `json:"gauge_areas" yaml:"gauge_areas"`
	FillFactors            []FillBucket      `json:"fill_factors" yaml:"fill_factors"`
	GroundingConductors    []GroundConductor `json:"grounding_conductors" yaml:"grounding_conductors"`
	BendingMultipliers     []AngleFactor     `json:"bending_multipliers" yaml:"bending_multipliers"`
	ShrinkPerInch          []AngleFactor     `json:"shrink_per_inch" yaml:"shrink_per_inch"`
	ReferenceShrinkPerInch []AngleFactor     `json:"reference_shrink_per_inch" yaml:"reference_shrink_per_inch"`
}

// Tables returns a copy of all reference tables.
func Tables() Reference {
	return Reference{
		GaugeAreas:             append([]GaugeArea(nil), gaugeAreas...),
		FillFactors:            append([]FillBucket(nil), fillBuckets...),
		GroundingConductors:    append([]GroundConductor(nil), groundConductors...),
		BendingMultipliers:     append([]AngleFactor(nil), bendingMultipliers...),
		ShrinkPerInch:          append([]AngleFactor(nil), shrinkPerInch...),
		ReferenceShrinkPerInch: append([]AngleFactor(nil), referenceShrinkPerInch...),
	}
}
