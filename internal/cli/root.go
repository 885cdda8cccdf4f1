package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stylewheel/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Every command logs through c.Logger, which is also attached to the command
// context and installed as the observability sink.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "stylewheel",
		Short: "Blend comedy styles by dragging a cursor around a wheel",
		Long: `Stylewheel maps a point on a disk to a weighted blend of styles.

Each style sits at an angle on the rim. The center is the neutral Default
style; moving outward trades Default for the styles whose anchors are
nearest the cursor's direction.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			installLogHooks(c.Logger)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stylewheel/config.toml)")
	flags.StringVar(&c.catalogURL, "catalog-url", "", "fetch styles from this endpoint")
	flags.StringVar(&c.catalogPath, "catalog-path", "", "read styles from a JSON or TOML file")
	flags.BoolVar(&c.refresh, "refresh", false, "bypass the catalog response cache")
	root.MarkFlagsMutuallyExclusive("catalog-url", "catalog-path")

	root.AddCommand(c.wheelCommand())
	root.AddCommand(c.weightsCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
