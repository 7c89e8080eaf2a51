package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/model"
	"github.com/moodbite/moodbite/internal/server"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "menu",
		Short:         "List the catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(rootOpts, cmd)
		},
	}

	return cmd
}

func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	return withServer(opts, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		items, err := srv.Menu(ctx)
		if err != nil {
			return reportRequestError(out, err)
		}

		if out.Format == "json" {
			if werr := out.Success(items); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		for _, item := range items {
			fmt.Fprintln(out.Writer, formatMenuItem(item))
		}
		return nil
	})
}

func formatMenuItem(item model.MenuItem) string {
	return fmt.Sprintf("%d. %s [%s] $%.2f (%d cal, %d min) moods: %s",
		item.ID, item.Name, item.Category, item.Price,
		item.Calories, item.PrepTime, strings.Join(item.Moods, ", "))
}
