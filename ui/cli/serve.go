// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/passwdgen/passwdgen/internal/server"
)

// newServeCmd builds the responder command. The dotted flag names bind
// straight into the viper keys, so `--server.port` overrides file and
// environment configuration.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the password generation responder",
		Long: `Serve binds a UDP socket and answers password requests one datagram at
a time until interrupted. Stop it with SIGINT or SIGTERM; the socket is
closed and the loop drained before exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(server.Config{
				Host:      appConfig.Server.Host,
				Port:      appConfig.Server.Port,
				RateLimit: appConfig.Server.RateLimit,
				RateBurst: appConfig.Server.RateBurst,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().String("server.host", "127.0.0.1", "Address the responder binds to")
	cmd.Flags().Int("server.port", 8080, "UDP port the responder listens on")
	cmd.Flags().Float64("server.rate_limit", 100, "Sustained datagrams per second allowed per peer (0 disables)")
	cmd.Flags().Int("server.rate_burst", 200, "Datagram burst allowed per peer")

	return cmd
}
