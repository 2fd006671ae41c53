package domain

// Pipe describes the test section between the two pressure taps.
type Pipe struct {
	Length    float64 `json:"length"`    // distance between pressure taps [m]
	Diameter  float64 `json:"diameter"`  // internal (hydraulic) diameter [m]
	Roughness float64 `json:"roughness"` // absolute wall roughness [m]
}

// Measurement is one steady-state reading on the bench.
type Measurement struct {
	Density            float64 `json:"density"`             // [kg/m³]
	KinematicViscosity float64 `json:"kinematic_viscosity"` // [m²/s]
	FlowRate           float64 `json:"flow_rate"`           // [L/h]
	PressureDrop       float64 `json:"pressure_drop"`       // [bar]
}

// Experiment groups the readings taken on a single pipe.
type Experiment struct {
	Name         string
	Pipe         Pipe
	Measurements []Measurement

	// Grids override the project Moody grids for this experiment (optional).
	Laminar   *Grid
	Turbulent *Grid
}

// ExperimentRef is a lightweight reference to an experiment file on disk.
type ExperimentRef struct {
	Name string
	Path string
}

// ExperimentalPoint is the reduced form of a Measurement.
type ExperimentalPoint struct {
	Velocity       float64 `json:"velocity"` // mean velocity [m/s]
	Reynolds       float64 `json:"reynolds"`
	FrictionFactor float64 `json:"friction_factor"`
}
