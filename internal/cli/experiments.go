package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func experimentsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "experiments",
		Short: "Manage experiments in a project",
	}

	c.AddCommand(experimentsListCmd())
	return c
}

func experimentsListCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List experiments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := loadProject(project)
			if err != nil {
				return err
			}

			refs, err := pc.experiments.ListExperiments(pc.root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no experiments found)")
				return nil
			}

			fmt.Fprintf(w, "Project: %s\n\n", pc.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(pc.root, r.Path)
				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	return cmd
}
