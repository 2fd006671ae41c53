package domain

// StandardGravity is g [m/s²] as used by the bench calculations.
const StandardGravity = 9.81

// OilTempInput is a single thermocouple reading on the outer pipe wall.
type OilTempInput struct {
	AmbientC         float64 `json:"ambient_c"`         // ambient air temperature [°C]
	WallC            float64 `json:"wall_c"`            // outer wall temperature [°C]
	FlowRate         float64 `json:"flow_rate"`         // [L/h]
	Density          float64 `json:"density"`           // oil density [kg/m³]
	DynamicViscosity float64 `json:"dynamic_viscosity"` // oil viscosity [Pa·s]
}

// ThermalPipe is the steel line the thermocouple is attached to.
type ThermalPipe struct {
	OuterDiameter float64 `json:"outer_diameter"` // [m]
	InnerDiameter float64 `json:"inner_diameter"` // [m]
	Length        float64 `json:"length"`         // [m]
	Conductivity  float64 `json:"conductivity"`   // steel [W/m·K]
}

// OilProperties are the oil constants not measured per reading.
type OilProperties struct {
	Conductivity float64 `json:"conductivity"`  // [W/m·K]
	SpecificHeat float64 `json:"specific_heat"` // [J/kg·K]
}

// AirProperties describe the still air around the pipe.
type AirProperties struct {
	Conductivity       float64 `json:"conductivity"`        // [W/m·K]
	ThermalDiffusivity float64 `json:"thermal_diffusivity"` // [m²/s]
	KinematicViscosity float64 `json:"kinematic_viscosity"` // [m²/s]
}

func DefaultThermalPipe() ThermalPipe {
	return ThermalPipe{
		OuterDiameter: 0.0334,
		InnerDiameter: 0.0207,
		Length:        40,
		Conductivity:  16,
	}
}

func DefaultOilProperties() OilProperties {
	return OilProperties{
		Conductivity: 0.14,
		SpecificHeat: 2000,
	}
}

func DefaultAirProperties() AirProperties {
	return AirProperties{
		Conductivity:       0.026,
		ThermalDiffusivity: 2.2e-5,
		KinematicViscosity: 1.5e-5,
	}
}

// OilTempResult carries the estimate and the intermediate dimensionless
// groups so a reading can be audited.
type OilTempResult struct {
	OilC          float64 `json:"oil_c"`
	InnerSurfaceC float64 `json:"inner_surface_c"`
	HeatFlux      float64 `json:"heat_flux"` // heat loss per unit length [W/m]

	Velocity       float64 `json:"velocity"`
	Reynolds       float64 `json:"reynolds"`
	Regime         Regime  `json:"regime"`
	Prandtl        float64 `json:"prandtl"`
	Nusselt        float64 `json:"nusselt"`
	OilCoefficient float64 `json:"oil_coefficient"` // h_oil [W/m²·K]

	AirRayleigh    float64 `json:"air_rayleigh"`
	AirPrandtl     float64 `json:"air_prandtl"`
	AirNusselt     float64 `json:"air_nusselt"`
	AirCoefficient float64 `json:"air_coefficient"` // h_air [W/m²·K]
}
