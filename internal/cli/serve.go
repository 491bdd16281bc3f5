package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rashika27/frameview/pkg/server"
	"github.com/rashika27/frameview/pkg/viewer"
)

// serveCommand creates the serve command, which runs the HTTP viewer.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr        string
		maxUploadMB int64
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Run the browser viewer",
		Long: `Run an HTTP server with an upload page and an interactive 3D view.

If a file is given it is loaded before the server starts accepting requests.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			if !cmd.Flags().Changed("max-upload-mb") {
				maxUploadMB = c.Config.Server.MaxUploadMB
			}
			var preload string
			if len(args) == 1 {
				preload = args[0]
			}
			return c.runServe(cmd.Context(), addr, maxUploadMB<<20, preload, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().Int64Var(&maxUploadMB, "max-upload-mb", 0, "maximum upload size in MiB (default from config, 32)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, maxUpload int64, preload string, noCache bool) error {
	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	store := viewer.NewStore(runner, viewer.Options{
		Scene:      c.Config.Scene.Options(),
		Projection: c.Config.Scene.Projection,
	}, c.Logger)

	if preload != "" {
		data, err := os.ReadFile(preload)
		if err != nil {
			printWarning("Could not read %s: %v", preload, err)
		} else if st, err := store.Upload(ctx, filepath.Base(preload), data); err != nil {
			printWarning("Could not load %s: %s", preload, st.Message)
		} else {
			printSuccess("%s", st.Message)
		}
	}

	srv := server.New(store, server.Options{MaxUploadBytes: maxUpload}, c.Logger)

	printSuccess("Serving on %s", StyleLink.Render(listenURL(addr)))
	printDetail("Press Ctrl+C to stop")
	return srv.ListenAndServe(ctx, addr)
}

// listenURL turns a listen address into a browsable URL.
func listenURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return fmt.Sprintf("http://%s/", addr)
}
