package cmd

import (
	"fmt"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/rollcall/config"
	"github.com/grovetools/rollcall/internal/display"
	"github.com/grovetools/rollcall/internal/server"
	"github.com/spf13/cobra"
)

var ulogServe = grovelogging.NewUnifiedLogger("rollcall.cmd.serve")

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web front-end for screenshot uploads",
		Long: "Run the web front-end adapter: POST /scan with a multipart 'image' upload merges\n" +
			"attendees into an in-memory ledger; GET /attendance returns the report, GET /export.csv\n" +
			"downloads a CSV snapshot, POST /clear drops all entries, and GET /live is a websocket\n" +
			"pushing the refreshed report after every merge.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if addr != "" {
				cfg.Serve.Addr = addr
			}

			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}

			ulogServe.Info("Starting server").
				Field("addr", cfg.Serve.Addr).
				Field("engine", engine.Name()).
				Pretty(fmt.Sprintf("Listening on %s (engine: %s, %s)\n",
					cfg.Serve.Addr, engine.Name(), display.Muted(maskedCredential(cfg)))).
				PrettyOnly().
				Emit()

			return server.New(engine, normalizeOptions(cfg)).Run(cfg.Serve.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
