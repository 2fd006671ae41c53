package domain

// Point is a single (x, y) sample of a series.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style carries plotting hints. An empty LineStyle means markers only.
type Style struct {
	Color     string `json:"color"`
	LineStyle string `json:"line_style,omitempty"`
	Marker    string `json:"marker,omitempty"`
}

// Series is what the plotting collaborator consumes: x/y pairs, a label
// and a style.
type Series struct {
	Label  string      `json:"label"`
	Law    FrictionLaw `json:"law,omitempty"`
	Style  Style       `json:"style"`
	Points []Point     `json:"points"`
}

// XY splits the series into parallel slices.
func (s Series) XY() ([]float64, []float64) {
	xs := make([]float64, len(s.Points))
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// SkippedSample records a Reynolds number dropped from a curve because the
// solver failed on it.
type SkippedSample struct {
	Reynolds float64 `json:"reynolds"`
	Reason   string  `json:"reason"`
}

// Tick is a labelled axis tick. An empty Label hides the text but keeps the
// grid line.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Axis describes one axis of a diagram.
type Axis struct {
	Label string `json:"label"`
	Log   bool   `json:"log"`
	Ticks []Tick `json:"ticks,omitempty"`
}

// MoodyDiagram is the full set of series plus axis metadata.
type MoodyDiagram struct {
	Title       string              `json:"title"`
	X           Axis                `json:"x"`
	Y           Axis                `json:"y"`
	Series      []Series            `json:"series"`
	Experiments []ExperimentalPoint `json:"experimental_points,omitempty"`
	Skipped     []SkippedSample     `json:"skipped,omitempty"`
}

// SeriesByLabel returns the series with the given label.
func (d MoodyDiagram) SeriesByLabel(label string) (Series, bool) {
	for _, s := range d.Series {
		if s.Label == label {
			return s, true
		}
	}
	return Series{}, false
}
