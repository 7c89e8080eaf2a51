package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/server"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Start a session for a registered user",
		Long: `Start a session for a registered user.

Lookup is by exact email. An unknown email is a rejected login, not an
error: the command prints the failure message and exits non-zero.

Example:
  moodbite login alex@example.com`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runLogin(opts *RootOptions, cmd *cobra.Command, email string) error {
	return withServer(opts, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		result, err := srv.Login(ctx, server.LoginRequest{Identifier: email})
		if err != nil {
			return reportRequestError(out, err)
		}

		if !result.Success {
			if werr := out.Error(CodeLoginRejected, result.Message, nil); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return NewExitError(ExitFailure, result.Message)
		}

		if out.Format == "json" {
			if werr := out.Success(result); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		fmt.Fprintf(out.Writer, "Logged in as %s (streak: %d)\n", result.User.Name, result.User.Streak)
		return nil
	})
}
