package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolamstudio/kolam/internal/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the pattern API until interrupted.

  GET  /healthz
  GET  /api/v1/archetypes
  POST /api/v1/patterns   synthesize, JSON response
  POST /api/v1/render     render a posted pattern document

The address defaults to [server] addr in config.toml, then KOLAM_ADDR.`,
		Example: `  kolam serve
  kolam serve --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			printKeyValue("Listening", StyleLink.Render("http://"+addr))
			printKeyValue("Cache", c.Config.Cache.Backend)
			err = server.New(runner, c.Logger).ListenAndServe(cmd.Context(), addr)
			if errors.Is(err, context.Canceled) {
				printSuccess("Server stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}
