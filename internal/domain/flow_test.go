package domain

import (
	"math"
	"testing"
)

func TestClassifyRegime(t *testing.T) {
	cases := []struct {
		re   float64
		want Regime
	}{
		{100, RegimeLaminar},
		{2299.9, RegimeLaminar},
		{2300, RegimeTransitional},
		{3999, RegimeTransitional},
		{4000, RegimeTurbulent},
		{1e6, RegimeTurbulent},
	}
	for _, c := range cases {
		if got := ClassifyRegime(c.re); got != c.want {
			t.Errorf("ClassifyRegime(%g) = %s, want %s", c.re, got, c.want)
		}
	}
}

func TestRelativeRoughness(t *testing.T) {
	s := FlowSample{Reynolds: 1e4, Roughness: 0.000045, HydraulicDiameter: 0.0207}
	got := s.RelativeRoughness()
	want := 0.000045 / 0.0207
	if got != want {
		t.Fatalf("expected %g, got %g", want, got)
	}
}

func TestParseFrictionLaw(t *testing.T) {
	got, err := ParseFrictionLaw(" Colebrook ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != LawColebrook {
		t.Fatalf("expected colebrook, got %s", got)
	}

	if _, err := ParseFrictionLaw("haaland"); err == nil {
		t.Fatalf("expected error for unknown law")
	}
}

func TestParseResultMode(t *testing.T) {
	cases := map[string]ResultMode{
		"pre_update":  ResultModePreUpdate,
		"post-update": ResultModePostUpdate,
		"PRE_UPDATE":  ResultModePreUpdate,
	}
	for in, want := range cases {
		got, err := ParseResultMode(in)
		if err != nil {
			t.Fatalf("ParseResultMode(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseResultMode(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseResultMode("latest"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGridValues_HalfOpen(t *testing.T) {
	g := Grid{Start: 100, Stop: 140, Step: 10}
	got := g.Values()
	want := []float64{100, 110, 120, 130}

	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value[%d]: expected %g, got %g", i, want[i], got[i])
		}
	}
}

func TestGridValues_DefaultTurbulentLength(t *testing.T) {
	g := Grid{Start: 1000, Stop: 1000000, Step: 1000}
	if n := len(g.Values()); n != 999 {
		t.Fatalf("expected 999 values, got %d", n)
	}
}

func TestGridValidate(t *testing.T) {
	if err := (Grid{Start: 1, Stop: 2, Step: 0}).Validate(); err == nil {
		t.Fatalf("expected zero step to be rejected")
	}
	if err := (Grid{Start: 5, Stop: 5, Step: 1}).Validate(); err == nil {
		t.Fatalf("expected empty range to be rejected")
	}
	if n := (Grid{Start: 5, Stop: 1, Step: 1}).Len(); n != 0 {
		t.Fatalf("expected invalid grid to have length 0, got %d", n)
	}

	rejected := []Grid{
		{Start: 1000, Stop: math.Inf(1), Step: 1000},
		{Start: math.Inf(-1), Stop: 1000, Step: 1000},
		{Start: math.NaN(), Stop: 1000, Step: 1000},
		{Start: 0, Stop: math.NaN(), Step: 1},
		{Start: 1000, Stop: 1000000, Step: 1e-9},
		{Start: -math.MaxFloat64, Stop: math.MaxFloat64, Step: 1},
	}
	for _, g := range rejected {
		if err := g.Validate(); err == nil {
			t.Errorf("expected %+v to be rejected", g)
		}
		if n := g.Len(); n != 0 {
			t.Errorf("expected %+v to have length 0, got %d", g, n)
		}
		if v := g.Values(); len(v) != 0 {
			t.Errorf("expected %+v to have no values, got %d", g, len(v))
		}
	}

	if err := (Grid{Start: 0, Stop: MaxGridPoints, Step: 1}).Validate(); err != nil {
		t.Fatalf("expected grid at the point limit to be accepted: %v", err)
	}
	if n := (Grid{Start: 5, Stop: 1, Step: 1}).Len(); n != 0 {
		t.Fatalf("expected invalid grid to have length 0, got %d", n)
	}
}
