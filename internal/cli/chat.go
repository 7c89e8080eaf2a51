package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/server"
)

// NewChatCommand creates the chat command.
func NewChatCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Send a message to Chef AI",
		Long: `Send a message to Chef AI.

The reply comes from the configured chat backend (MOODBITE_CHAT_PROVIDER:
canned, anthropic, or openai). Backend outages surface as an unsuccessful
reply, not a command failure.

Example:
  moodbite chat "what should I eat when I'm stressed?"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runChat(opts *RootOptions, cmd *cobra.Command, message string) error {
	return withServer(opts, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		result, err := srv.Chat(ctx, server.ChatRequest{Message: message})
		if err != nil {
			return reportRequestError(out, err)
		}

		if !result.Success {
			if werr := out.Error(CodeChatUnavailable, "Chef AI is unavailable right now.", nil); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return NewExitError(ExitFailure, "chat backend unavailable")
		}

		if out.Format == "json" {
			if werr := out.Success(result); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		fmt.Fprintln(out.Writer, result.Reply)
		return nil
	})
}
