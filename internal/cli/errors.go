package cli

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// hint turns an error into a one-line suggestion for the terminal. The full
// error is still printed by cobra.
func hint(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.HasPrefix(oe.Op, "experiment."):
				return "Experiment not found (see `lab experiments list`)"
			case strings.HasPrefix(oe.Op, "projectfinder."):
				return "Project not found (run `lab init` or pass --project)"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid file " + base + " at line " + line
			}
			if field := extractField(err.Error()); field != "" {
				return "Invalid " + field + " in " + base
			}
			return "Invalid " + base

		case domain.KindInvalidInput:
			return "Invalid input"

		case domain.KindConvergence:
			return "Colebrook did not converge: raise --max-iterations or --tolerance, or use --on-failure skip"

		default:
			return "Unexpected error (see .lab/logs/lab.log)"
		}
	}

	if errors.Is(err, domain.ErrConvergence) {
		return "Colebrook did not converge"
	}
	return ""
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) string {
	const marker = "field "
	i := strings.LastIndex(s, marker)
	if i < 0 {
		return ""
	}
	rest := s[i+len(marker):]
	if j := strings.Index(rest, ":"); j > 0 {
		return rest[:j]
	}
	return ""
}
