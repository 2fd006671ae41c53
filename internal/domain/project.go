package domain

// ProjectSpec describes a lab project to scaffold.
type ProjectSpec struct {
	Root string
}
