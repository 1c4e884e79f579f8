package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aaustin-1965/app-ip-address/internal/app"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Configuration is read from the environment:
PORT, READ_TIMEOUT, WRITE_TIMEOUT, LOG_LEVEL, AUTH_ENABLED, AUTH_ISSUER,
AUTH_JWKS_URL and AUTH_AUDIENCE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			return app.Run(ctx, cfg)
		},
	}
}
