package friction

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

const (
	benchRoughness = 0.000045
	benchDiameter  = 0.0207
)

func TestLaminar_IsSixtyFourOverRe(t *testing.T) {
	for _, re := range []float64{1, 100, 640, 1999.5, 2299} {
		got, err := Laminar(re)
		require.NoError(t, err)
		assert.InDelta(t, 64/re, got, 1e-15, "re=%g", re)
	}
}

func TestBlasius_Formula(t *testing.T) {
	for _, re := range []float64{4000, 1e4, 5e4, 1e5, 1e6} {
		got, err := Blasius(re)
		require.NoError(t, err)
		assert.InDelta(t, 0.32*math.Pow(re, -0.25), got, 1e-15, "re=%g", re)
	}
}

func TestClosedForms_RejectNonPositiveReynolds(t *testing.T) {
	for _, re := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Laminar(re)
		assert.True(t, domain.IsKind(err, domain.KindInvalidInput), "laminar re=%g: %v", re, err)

		_, err = Blasius(re)
		assert.True(t, domain.IsKind(err, domain.KindInvalidInput), "blasius re=%g: %v", re, err)
	}
}

func TestColebrook_BenchPipeAtRe1000(t *testing.T) {
	got, err := Colebrook(1000, benchRoughness, benchDiameter, 0.01)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, got, 0.01)
	assert.LessOrEqual(t, got, 0.1)
	assert.InDelta(t, 0.063892021038, got, 1e-9)
}

func TestColebrook_ReferenceValues(t *testing.T) {
	cases := []struct {
		re    float64
		want  float64
		iters int
	}{
		{1000, 0.06389202103803691, 9},
		{10000, 0.03403227699368586, 6},
		{100000, 0.025550140439111392, 4},
		{1000000, 0.024123728031190297, 3},
	}

	s, err := NewSolver()
	require.NoError(t, err)

	for _, c := range cases {
		res, err := s.Solve(domain.FlowSample{
			Reynolds:          c.re,
			Roughness:         benchRoughness,
			HydraulicDiameter: benchDiameter,
		}, 0.01)
		require.NoError(t, err, "re=%g", c.re)
		assert.InDelta(t, c.want, res.Factor, 1e-12, "re=%g", c.re)
		assert.Equal(t, c.iters, res.Iterations, "re=%g", c.re)
		assert.Less(t, res.Delta, DefaultTolerance)
		assert.Equal(t, domain.LawColebrook, res.Law)
	}
}

func TestColebrook_NonIncreasingWithReynolds(t *testing.T) {
	prev := math.Inf(1)
	for _, re := range []float64{1000, 10000, 100000, 1000000} {
		f, err := Colebrook(re, benchRoughness, benchDiameter, 0.01)
		require.NoError(t, err)
		assert.LessOrEqual(t, f, prev, "re=%g", re)
		prev = f
	}
}

func TestColebrook_Deterministic(t *testing.T) {
	a, err := Colebrook(25000, benchRoughness, benchDiameter, 0.02)
	require.NoError(t, err)
	b, err := Colebrook(25000, benchRoughness, benchDiameter, 0.02)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestColebrook_SmoothPipe(t *testing.T) {
	f, err := Colebrook(1e5, 0, benchDiameter, 0.01)
	require.NoError(t, err)

	// Smooth-pipe Colebrook sits slightly below Blasius at Re=1e5.
	blasius, _ := Blasius(1e5)
	assert.InDelta(t, blasius, f, 0.002)
}

func TestColebrook_InvalidInputBeforeIterating(t *testing.T) {
	cases := map[string][4]float64{
		"zero guess":        {1000, benchRoughness, benchDiameter, 0},
		"negative guess":    {1000, benchRoughness, benchDiameter, -0.01},
		"zero reynolds":     {0, benchRoughness, benchDiameter, 0.01},
		"negative reynolds": {-500, benchRoughness, benchDiameter, 0.01},
		"zero diameter":     {1000, benchRoughness, 0, 0.01},
		"negative rough":    {1000, -1e-6, benchDiameter, 0.01},
		"nan guess":         {1000, benchRoughness, benchDiameter, math.NaN()},
	}

	// A solver that could never converge proves validation runs first.
	s, err := NewSolver(WithTolerance(0), WithMaxIterations(1))
	require.NoError(t, err)

	for name, in := range cases {
		_, err := s.Colebrook(in[0], in[1], in[2], in[3])
		require.Error(t, err, name)
		assert.True(t, domain.IsKind(err, domain.KindInvalidInput), "%s: %v", name, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), name)
		assert.False(t, errors.Is(err, domain.ErrConvergence), name)
	}
}

func TestColebrook_ConvergenceFailure(t *testing.T) {
	s, err := NewSolver(WithTolerance(0), WithMaxIterations(1))
	require.NoError(t, err)

	f, err := s.Colebrook(1000, benchRoughness, benchDiameter, 0.01)
	require.Error(t, err)
	assert.Zero(t, f)
	assert.True(t, domain.IsKind(err, domain.KindConvergence), "got %v", err)
	assert.True(t, errors.Is(err, domain.ErrConvergence))
}

func TestColebrook_TooFewIterations(t *testing.T) {
	// Re=1000 needs 9 iterations from 0.01.
	s, err := NewSolver(WithMaxIterations(8))
	require.NoError(t, err)

	_, err = s.Colebrook(1000, benchRoughness, benchDiameter, 0.01)
	assert.True(t, domain.IsKind(err, domain.KindConvergence), "got %v", err)

	s, err = NewSolver(WithMaxIterations(9))
	require.NoError(t, err)
	_, err = s.Colebrook(1000, benchRoughness, benchDiameter, 0.01)
	assert.NoError(t, err)
}

func TestColebrook_ResultModes(t *testing.T) {
	pre, err := NewSolver()
	require.NoError(t, err)
	post, err := NewSolver(WithResultMode(domain.ResultModePostUpdate))
	require.NoError(t, err)

	sample := domain.FlowSample{Reynolds: 1000, Roughness: benchRoughness, HydraulicDiameter: benchDiameter}

	a, err := pre.Solve(sample, 0.01)
	require.NoError(t, err)
	b, err := post.Solve(sample, 0.01)
	require.NoError(t, err)

	assert.InDelta(t, 0.06389202103803691, a.Factor, 1e-12)
	assert.InDelta(t, 0.06389256163038798, b.Factor, 1e-12)
	assert.NotEqual(t, a.Factor, b.Factor)
	assert.InDelta(t, a.Factor, b.Factor, DefaultTolerance)
	assert.Equal(t, a.Iterations, b.Iterations)
}

func TestNewSolver_RejectsBadSettings(t *testing.T) {
	_, err := NewSolver(WithTolerance(-1))
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)

	_, err = NewSolver(WithMaxIterations(0))
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)

	_, err = NewSolver(WithResultMode("latest"))
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
}

func TestNewSolverFromConfig(t *testing.T) {
	s, err := NewSolverFromConfig(domain.SolverConfig{
		Tolerance:     1e-8,
		MaxIterations: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 1e-8, s.Tolerance())
	assert.Equal(t, 50, s.MaxIterations())
	assert.Equal(t, domain.ResultModePreUpdate, s.ResultMode())
}

func TestSwameeJain_CloseToColebrook(t *testing.T) {
	sj, err := SwameeJain(1e5, benchRoughness/benchDiameter)
	require.NoError(t, err)
	assert.InDelta(t, 0.02578051026667324, sj, 1e-12)

	cw, err := Colebrook(1e5, benchRoughness, benchDiameter, sj)
	require.NoError(t, err)
	assert.InDelta(t, cw, sj, 0.001)

	_, err = SwameeJain(1e5, -1)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}

func TestFactor_Dispatch(t *testing.T) {
	s, err := NewSolver()
	require.NoError(t, err)
	sample := domain.FlowSample{Reynolds: 5e4, Roughness: benchRoughness, HydraulicDiameter: benchDiameter}

	lam, err := s.Factor(domain.LawLaminar, sample, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 64/5e4, lam.Factor, 1e-15)
	assert.Equal(t, domain.LawLaminar, lam.Law)

	bl, err := s.Factor(domain.LawBlasius, sample, 0.01)
	require.NoError(t, err)
	assert.Equal(t, domain.LawBlasius, bl.Law)

	cw, err := s.Factor(domain.LawColebrook, sample, 0.01)
	require.NoError(t, err)
	assert.Greater(t, cw.Iterations, 0)

	_, err = s.Factor("haaland", sample, 0.01)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}

func TestAuto_PicksLawByRegime(t *testing.T) {
	s, err := NewSolver()
	require.NoError(t, err)

	res, err := s.Auto(domain.FlowSample{Reynolds: 1500, Roughness: benchRoughness, HydraulicDiameter: benchDiameter}, 0.01)
	require.NoError(t, err)
	assert.Equal(t, domain.LawLaminar, res.Law)

	res, err = s.Auto(domain.FlowSample{Reynolds: 3000, Roughness: benchRoughness, HydraulicDiameter: benchDiameter}, 0.01)
	require.NoError(t, err)
	assert.Equal(t, domain.LawColebrook, res.Law)
}
