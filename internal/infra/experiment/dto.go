package experiment

// fileExperiment is the on-disk shape shared by the YAML and TOML formats.
type fileExperiment struct {
	Name         string            `yaml:"name" toml:"name"`
	Pipe         filePipe          `yaml:"pipe" toml:"pipe"`
	Defaults     fileMeasurement   `yaml:"defaults" toml:"defaults"`
	Measurements []fileMeasurement `yaml:"measurements" toml:"measurements"`
	Grids        fileGrids         `yaml:"grids" toml:"grids"`
}

type filePipe struct {
	Length    *float64 `yaml:"length" toml:"length"`
	Diameter  *float64 `yaml:"diameter" toml:"diameter"`
	Roughness *float64 `yaml:"roughness" toml:"roughness"`
}

// fileMeasurement fields are optional so a reading can inherit the
// experiment defaults (fluid properties rarely change between readings).
type fileMeasurement struct {
	Density            *float64 `yaml:"density" toml:"density"`
	KinematicViscosity *float64 `yaml:"kinematic_viscosity" toml:"kinematic_viscosity"`
	FlowRate           *float64 `yaml:"flow_rate" toml:"flow_rate"`
	PressureDrop       *float64 `yaml:"pressure_drop" toml:"pressure_drop"`
}

type fileGrids struct {
	Laminar   *fileGrid `yaml:"laminar" toml:"laminar"`
	Turbulent *fileGrid `yaml:"turbulent" toml:"turbulent"`
}

type fileGrid struct {
	Start float64 `yaml:"start" toml:"start"`
	Stop  float64 `yaml:"stop" toml:"stop"`
	Step  float64 `yaml:"step" toml:"step"`
}
