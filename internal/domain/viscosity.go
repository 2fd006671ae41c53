package domain

// CelsiusToKelvin offset used by the viscosity-temperature correlations.
const CelsiusToKelvin = 273.15

// ViscosityPoint is a kinematic viscosity [mm²/s, cSt] at a temperature [°C].
type ViscosityPoint struct {
	TemperatureC float64 `json:"temperature_c"`
	Viscosity    float64 `json:"viscosity"`
}

// WaltherFit holds the coefficients of ln(ln(v+0.8)) = A1 + A2·ln(T).
type WaltherFit struct {
	A1 float64 `json:"a1"`
	A2 float64 `json:"a2"`
}

// ASTMFit holds the coefficients of log(log(Z)) = A - B·log(T) (ASTM D341).
type ASTMFit struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// ViscosityProfile is a viscosity-temperature curve computed with both
// correlations over the same temperatures.
type ViscosityProfile struct {
	Reference [2]ViscosityPoint `json:"reference"`
	Walther   WaltherFit        `json:"walther"`
	ASTM      ASTMFit           `json:"astm"`

	TemperaturesC []float64 `json:"temperatures_c"`
	WaltherCurve  []float64 `json:"walther_curve"`
	ASTMCurve     []float64 `json:"astm_curve"`
}

// ViscosityIndexProcedure is the ISO 2909 procedure used.
type ViscosityIndexProcedure string

const (
	ProcedureA ViscosityIndexProcedure = "A" // VI <= 100
	ProcedureB ViscosityIndexProcedure = "B" // VI > 100
)

// ViscosityIndex is an ISO 2909 result.
type ViscosityIndex struct {
	Value     float64                 `json:"value"`
	Procedure ViscosityIndexProcedure `json:"procedure"`
	L         float64                 `json:"l"`
	H         float64                 `json:"h"`
}
