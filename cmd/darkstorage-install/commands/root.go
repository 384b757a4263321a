// Package commands implements the command line interface of the Dark Storage CLI installer.
package commands

import (
	"context"
	"io"

	"github.com/darkstorage/install/internal/build"
	"github.com/darkstorage/install/internal/core/domain"
	"github.com/spf13/cobra"
)

// Installer runs one installation with the chosen options.
type Installer interface {
	Install(ctx context.Context, cfg domain.InstallConfig) error
}

// CLI represents the command line interface for darkstorage-install.
type CLI struct {
	installer Installer
	rootCmd   *cobra.Command
	cfg       domain.InstallConfig
}

// New creates a new CLI instance driving the given installer.
func New(installer Installer) *CLI {
	c := &CLI{installer: installer}

	rootCmd := &cobra.Command{
		Use:   domain.InstallerName,
		Short: "Build and install the Dark Storage CLI from this checkout",
		Long: "Builds the Dark Storage CLI from the current source checkout and installs it.\n\n" +
			"The install directory is taken from --install-dir, then the " + domain.EnvInstallDir +
			" environment variable, then " + domain.DefaultInstallDir + ".",
		Example: "  " + domain.InstallerName + "\n" +
			"  " + domain.InstallerName + " --fresh\n" +
			"  " + domain.InstallerName + " --update\n" +
			"  " + domain.InstallerName + " --install-dir ~/.local/bin\n" +
			"  " + domain.InstallerName + " --dev",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.String(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.installer.Install(cmd.Context(), c.cfg)
		},
	}

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the installer version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolVar(&c.cfg.FreshRebuild, "fresh", false, "Clean build (remove old binary and caches)")
	rootCmd.Flags().BoolVar(&c.cfg.UpdateFirst, "update", false, "Pull latest changes before building")
	rootCmd.Flags().BoolVar(&c.cfg.DebugBuild, "dev", false, "Build with debug symbols")
	rootCmd.Flags().StringVar(&c.cfg.InstallDir, "install-dir", "",
		"Installation directory (default: "+domain.DefaultInstallDir+")")

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects help, version and usage output.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}
