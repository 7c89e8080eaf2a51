package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/server"
)

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "logout",
		Short:         "End the active session",
		Long:          "End the active session. Logging out with no active session succeeds quietly.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(rootOpts, cmd)
		},
	}

	return cmd
}

func runLogout(opts *RootOptions, cmd *cobra.Command) error {
	return withServer(opts, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		result, err := srv.Logout(ctx)
		if err != nil {
			return reportRequestError(out, err)
		}

		if out.Format == "json" {
			if werr := out.Success(result); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		fmt.Fprintln(out.Writer, "Logged out.")
		return nil
	})
}
