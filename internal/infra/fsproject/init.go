package fsproject

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/enzopetersen/Laboratorio/internal/domain"
	"github.com/enzopetersen/Laboratorio/internal/ports"
)

const templatesRoot = "templates"

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

// Init scaffolds a lab project under spec.Root. Existing files are kept
// unless force is set.
func (i *Initializer) Init(spec domain.ProjectSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, d := range layout(root) {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return initError(d, err)
		}
	}
	if err := ensureGitignore(root); err != nil {
		return initError(filepath.Join(root, ".gitignore"), err)
	}
	if err := copyTemplates(root, force); err != nil {
		return initError(root, err)
	}
	return nil
}

// layout lists the directories every project starts with, following the
// default paths of lab.yaml.
func layout(root string) []string {
	paths := domain.DefaultConfig().Paths
	return []string{
		filepath.Join(root, paths.ExperimentsDir),
		filepath.Join(root, paths.ReportsDir),
		filepath.Join(root, ".lab", "logs"),
	}
}

func copyTemplates(root string, force bool) error {
	sub, err := fs.Sub(templatesFS, templatesRoot)
	if err != nil {
		return err
	}
	return fs.WalkDir(sub, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		dst := filepath.Join(root, filepath.FromSlash(name))
		if !force && exists(dst) {
			return nil
		}
		b, err := fs.ReadFile(sub, name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(path.Dir(name))), 0o755); err != nil {
			return err
		}
		return os.WriteFile(dst, b, 0o644)
	})
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func initError(path string, err error) error {
	return domain.Execution("fsproject.init", path, err)
}

const gitignoreHeader = "# lab"

var gitignoreEntries = []string{"reports/", ".lab/"}

// ensureGitignore adds the lab block to <root>/.gitignore, appending only
// the lines that are not already there.
func ensureGitignore(root string) error {
	p := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(p)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	existing := string(b)

	block := missingGitignoreLines(existing)
	if len(block) == 0 {
		return nil
	}

	var out strings.Builder
	if existing != "" {
		out.WriteString(strings.TrimRight(existing, "\n"))
		out.WriteString("\n\n")
	}
	for _, line := range block {
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return os.WriteFile(p, []byte(out.String()), 0o644)
}

// missingGitignoreLines returns the header and entries absent from content.
// The header is only added alongside at least one entry.
func missingGitignoreLines(content string) []string {
	seen := map[string]bool{}
	for _, line := range strings.Split(content, "\n") {
		seen[strings.TrimSpace(line)] = true
	}

	var lines []string
	for _, e := range gitignoreEntries {
		if !seen[e] {
			lines = append(lines, e)
		}
	}
	if len(lines) > 0 && !seen[gitignoreHeader] {
		lines = append([]string{gitignoreHeader}, lines...)
	}
	return lines
}
