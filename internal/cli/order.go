package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/server"
)

// OrderOptions holds flags for the order command.
type OrderOptions struct {
	*RootOptions
	Total   float64
	GST     float64
	Payment string
}

// NewOrderCommand creates the order command.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "order <item>",
		Short: "Place an order",
		Long: `Place an order.

Orders are accepted with or without an active session; when a session is
active the user's streak grows by one.

Example:
  moodbite order "Dragon Fire wings" --total 18.88 --gst 2.88 --payment "Credit Card"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(opts, cmd, args[0])
		},
	}

	cmd.Flags().Float64Var(&opts.Total, "total", 0, "order total including tax")
	cmd.Flags().Float64Var(&opts.GST, "gst", 0, "tax portion of the total")
	cmd.Flags().StringVar(&opts.Payment, "payment", "Cash", "payment method")

	return cmd
}

func runOrder(opts *OrderOptions, cmd *cobra.Command, item string) error {
	return withServer(opts.RootOptions, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		result, err := srv.PlaceOrder(ctx, server.OrderRequest{
			Item:          item,
			Total:         opts.Total,
			GST:           opts.GST,
			PaymentMethod: opts.Payment,
		})
		if err != nil {
			return reportRequestError(out, err)
		}

		if out.Format == "json" {
			if werr := out.Success(result); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		fmt.Fprintf(out.Writer, "Order %s confirmed. Total: $%.2f\n", result.OrderID, opts.Total)
		return nil
	})
}
