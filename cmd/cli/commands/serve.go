package commands

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/api"
)

// ServeCmd creates the serve command: run the HTTP query API.
func ServeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the roster query API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = app.Cfg.HTTPAddr
			}

			server := api.New(app.Store, app.Logger)

			app.Logger.Info("Serving roster query API", zap.String("addr", addr))
			err := http.ListenAndServe(addr, server.Routes())
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to httpAddr from config)")

	return cmd
}
