package reportstore

import (
	"strings"
	"testing"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	d := domain.MoodyDiagram{
		Series: []domain.Series{
			{Label: "Colebrook", Law: domain.LawColebrook, Points: []domain.Point{{X: 1e4, Y: 0.034}}},
			{Label: "Experimental", Points: []domain.Point{{X: 1045.5, Y: 0.0817}}},
		},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, d); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}

	want := "series,law,reynolds,friction_factor\n" +
		"Colebrook,colebrook,10000,0.034\n" +
		"Experimental,,1045.5,0.0817\n"
	if sb.String() != want {
		t.Fatalf("unexpected csv:\n%s", sb.String())
	}
}
