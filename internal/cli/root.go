package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enzopetersen/Laboratorio/internal/buildinfo"
	"github.com/enzopetersen/Laboratorio/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		logger.L().Error("command.failed", "err", err)
		if h := hint(err); h != "" {
			fmt.Fprintln(os.Stderr, defaultTheme().Warn.Render("hint: "+h))
		}
	}
	_ = logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "lab",
		Short:        "lab: pipe friction, Moody diagrams and oil properties for the hydraulic bench",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(debug)
			logger.L().Debug("command.start", "cmd", cmd.CommandPath())
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .lab/logs/lab.log")

	cmd.AddCommand(
		frictionCmd(),
		moodyCmd(),
		validateCmd(),
		oiltempCmd(),
		viscosityCmd(),
		experimentsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging writes logs under the enclosing project, if any. Outside a
// project logs are discarded.
func setupLogging(debug bool) {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	root, err := newLocator().FindRoot(wd)
	if err != nil || root == "" {
		return
	}
	_, _ = logger.Setup(logger.Config{
		Root:  root,
		Debug: debug,
		Attrs: []any{"version", buildinfo.Version},
	})
}
