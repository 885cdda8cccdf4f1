package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stylewheel/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the style catalog and blend weights over HTTP",
		Long: `Serve the loaded catalog and the blend computation over HTTP.

  GET /api/styles          catalog document
  GET /api/weights?x=&y=   blend report for a point
  GET /health              liveness probe

The listen address comes from --addr, then $PORT, then [server] addr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			loaded, err := c.loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			srv, err := server.New(cfg.Disk, cfg.Blend, loaded, c.Logger)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context(), listenAddr(addr, cmd.Flags().Changed("addr"), cfg.Server.Addr))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, e.g. :5000")
	return cmd
}

// listenAddr picks the --addr flag when set, then $PORT, then the config.
func listenAddr(flag string, flagSet bool, configured string) string {
	if flagSet && flag != "" {
		return flag
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return configured
}
