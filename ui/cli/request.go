// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/passwdgen/passwdgen/internal/client"
	"github.com/passwdgen/passwdgen/internal/password"
)

// newRequestCmd builds the one-shot scripting requester: one request, the
// password on stdout, exit code reflecting the outcome.
func newRequestCmd() *cobra.Command {
	var categoryFlag string
	var lengthFlag string

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request a single password and print it",
		Long: `Request sends one password request to the responder and prints the reply
to stdout. Category codes: n (numeric), a (alphabetic), m (mixed),
s (secure), u (unambiguous).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate locally before touching the network, same rules as
			// the interactive menu.
			if len(categoryFlag) != 1 || !password.TypeAllowed(password.Codes, categoryFlag[0]) {
				return fmt.Errorf("%w: %q (valid codes: n, a, m, s, u)", password.ErrInvalidCategory, categoryFlag)
			}
			if _, err := password.ParseLength(lengthFlag, password.MinLength, password.MaxLength); err != nil {
				return err
			}

			c := client.New(appConfig.Client.Host, appConfig.Client.Port, appConfig.Client.Timeout)
			pw, err := c.Request(cmd.Context(), categoryFlag[0], lengthFlag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "type", "t", "s", "Password category code (n, a, m, s, u)")
	cmd.Flags().StringVarP(&lengthFlag, "length", "l", strconv.Itoa(password.DefaultLength), "Password length (6-32)")

	return cmd
}
