package ports

import "github.com/enzopetersen/Laboratorio/internal/domain"

// ReportStore hands computed reports over to their consumers (files on disk
// for plotting tools).
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
}
