package nec

// Reference constants from the residential wiring textbook tables.
const (
	CopperK   = 12.9 // ohm·cmil/ft, uncoated copper at 75°C
	AluminumK = 21.2 // ohm·cmil/ft, aluminum at 75°C

	FillOneConductor  = 0.53 // Chapter 9, Table 1
	FillTwoConductors = 0.31
	FillOverTwo       = 0.40

	DefaultBendAngle = 30.0 // degrees; substituted for unrecognized angles

	RecommendedMaxDropPercent = 3.0 // 215.2(A) informational note, branch circuits
)
