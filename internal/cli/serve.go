package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tshape/internal/server"
	"github.com/matzehuels/tshape/pkg/buildinfo"
	"github.com/matzehuels/tshape/pkg/pipeline"
)

// serveCommand creates the serve command that runs the dashboard.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		data    dataFlags
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive dashboard",
		Long: `Serve the interactive dashboard.

The dataset is loaded once at startup. If it cannot be loaded the dashboard
still starts and shows the error until the server is restarted with valid
data.

Rendered charts are cached in Redis when server.redis_url (or
TSHAPE_REDIS_URL) is set, and in the local cache otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			data.apply(&opts)
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Server.Addr
			}
			return c.runServe(cmd.Context(), opts, addr, noCache)
		},
	}

	data.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts pipeline.Options, addr string, noCache bool) error {
	if err := opts.ValidateForLoad(); err != nil {
		return err
	}

	runner, err := c.newServerRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	srv := server.New(ctx, server.Config{
		Addr:    addr,
		Options: opts,
		Version: buildinfo.Version,
	}, runner, logger)

	data := opts.SkillsPath + ", " + opts.ShapePath
	if opts.UsesSample() {
		data = "bundled sample"
	}
	if srv.Ready() {
		printSuccess("Dashboard ready")
	} else {
		printWarning("Data not available; serving the error page")
	}
	printKeyValue("Address", StyleLink.Render(dashboardURL(addr)))
	printKeyValue("Data", data)
	printNewline()

	return srv.Run(ctx)
}

// dashboardURL turns a listen address into a browsable URL.
func dashboardURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
