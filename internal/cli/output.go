package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
	formatCSV    = "csv"
)

func parseFormat(s string, allowed ...string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "" {
		f = formatPretty
	}
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (expected %s)", s, strings.Join(allowed, "|"))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeProfileCSV(w io.Writer, p domain.ViscosityProfile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"temperature_c", "walther_cst", "astm_cst"}); err != nil {
		return err
	}
	for i, t := range p.TemperaturesC {
		rec := []string{
			strconv.FormatFloat(t, 'g', -1, 64),
			strconv.FormatFloat(p.WaltherCurve[i], 'g', -1, 64),
			strconv.FormatFloat(p.ASTMCurve[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
