// Package buildinfo holds version metadata set at link time with
// -ldflags "-X github.com/enzopetersen/Laboratorio/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("lab %s (commit=%s, date=%s)", Version, Commit, Date)
}
