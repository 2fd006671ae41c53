package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

func TestHint(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{
			"experiment not found",
			&domain.OpError{Op: "experiment.load", Kind: domain.KindNotFound, Path: "x.yaml", Err: errors.New("no such file")},
			"Experiment not found (see `lab experiments list`)",
		},
		{
			"yaml line",
			&domain.OpError{Op: "experiment.load", Kind: domain.KindInvalidConfig, Path: "/p/experiments/bench.yaml", Err: errors.New("yaml: line 7: did not find expected key")},
			"Invalid file bench.yaml at line 7",
		},
		{
			"mapper field",
			&domain.OpError{Op: "experiment.map", Kind: domain.KindInvalidConfig, Path: "/p/b.toml", Err: fmt.Errorf("field measurements[2].density: value is required: %w", domain.ErrInvalidConfig)},
			"Invalid measurements[2].density in b.toml",
		},
		{
			"wrapped convergence",
			fmt.Errorf("colebrook at re=1000: %w", &domain.OpError{Op: "friction.colebrook", Kind: domain.KindConvergence, Err: domain.ErrConvergence}),
			"Colebrook did not converge: raise --max-iterations or --tolerance, or use --on-failure skip",
		},
		{"plain", errors.New("boom"), ""},
	}

	for _, c := range cases {
		if got := hint(c.err); got != c.want {
			t.Errorf("%s: hint() = %q, want %q", c.name, got, c.want)
		}
	}
}
