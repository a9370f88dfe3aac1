package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/uithings/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demos and the placement engine over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Server
			if addr != "" {
				cfg.Addr = addr
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, server.WithLogger(c.Logger), server.WithDefaults(c.Config))
			printInfo("Serving on %s (cache: %s)", StyleHighlight.Render(cfg.Addr), c.cacheBackend(noCache))
			return srv.ListenAndServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) cacheBackend(noCache bool) string {
	if noCache {
		return "none"
	}
	return c.Config.Cache.Backend
}
