package reportstore

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/enzopetersen/Laboratorio/internal/domain"
)

var csvHeader = []string{"series", "law", "reynolds", "friction_factor"}

// WriteCSV flattens every series of d into one row per point.
func WriteCSV(w io.Writer, d domain.MoodyDiagram) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range d.Series {
		for _, p := range s.Points {
			row := []string{
				s.Label,
				string(s.Law),
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
