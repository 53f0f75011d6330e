package cli

import (
	"github.com/spf13/cobra"

	"github.com/oldgaffers/fetch-doc/internal/adapters/driving/httpapi"
	"github.com/oldgaffers/fetch-doc/internal/logger"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve documents over HTTP",
	Long: `Starts an HTTP server exposing GET /doc?doc_name=<name>, returning
the rendered HTML. Domain failures map to status codes: bad input 400,
unknown name 404, denied access 403, anything else 500.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := buildApplication(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	addr := flagAddr
	if addr == "" {
		addr = app.cfg.Addr
	}

	logger.Info("listening on %s", addr)
	return httpapi.NewServer(app.document).ListenAndServe(cmd.Context(), addr)
}
