package cli

import (
	"github.com/spf13/cobra"

	"github.com/kunhq/kundocs/internal/config"
	"github.com/kunhq/kundocs/internal/server"
	"github.com/kunhq/kundocs/pkg/cache"
)

// previewPrefix namespaces preview artifacts in a shared cache.
const previewPrefix = "preview:"

func (c *CLI) serveCommand() *cobra.Command {
	var noCache bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the diagram preview server",
		Long: `Serve the catalog and the definition files in --dir over HTTP.

  GET /healthz
  GET /api/diagrams
  GET /diagrams/<id>.<svg|html|txt|dot|json>?lang=ar

With --watch, definition files are reloaded when they change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.conf()
			logger := loggerFromContext(ctx)

			runner := c.newRunner(ctx, noCache)
			defer runner.Close()
			runner.Keyer = cache.NewScopedKeyer(runner.Keyer, previewPrefix)

			srv := server.New(server.Config{
				Addr:    cfg.Server.Addr,
				Dir:     cfg.Server.Dir,
				Watch:   cfg.Server.Watch,
				Runner:  runner,
				Logger:  logger,
				Large:   cfg.Render.Large,
				NoIcons: !cfg.Render.ShowIcons,
			})
			printInfo(cmd.ErrOrStderr(), "Preview at %s", StyleLink.Render("http://"+cfg.Server.Addr+"/api/diagrams"))
			if cfg.Server.Watch && cfg.Server.Dir != "" {
				printDetail(cmd.ErrOrStderr(), "Watching %s", cfg.Server.Dir)
			}
			return srv.Serve(ctx)
		},
	}
	cmd.Flags().String("addr", config.DefaultServerAddr, "listen address")
	cmd.Flags().String("dir", "", "directory of definition files to serve")
	cmd.Flags().Bool("watch", false, "reload definitions when files change")
	cmd.Flags().Bool("large", false, "use the large flow profile")
	cmd.Flags().Bool("no-icons", false, "hide flow icons")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}
