package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/server"
)

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "orders",
		Short:         "List the order history",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrders(rootOpts, cmd)
		},
	}

	return cmd
}

func runOrders(opts *RootOptions, cmd *cobra.Command) error {
	return withServer(opts, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		orders, err := srv.Orders(ctx)
		if err != nil {
			return reportRequestError(out, err)
		}

		if out.Format == "json" {
			if werr := out.Success(orders); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		if len(orders) == 0 {
			fmt.Fprintln(out.Writer, "No orders yet.")
			return nil
		}
		for _, o := range orders {
			fmt.Fprintf(out.Writer, "%s  %s  $%.2f  %s  %s\n",
				o.ID, o.Date.Format("2006-01-02 15:04"), o.Total, o.PaymentMethod, o.Item)
		}
		return nil
	})
}
