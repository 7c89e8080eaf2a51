// Package cli implements the moodbite command line interface on top of
// the virtual server. Every command opens the durable store, dispatches
// one request through the server engine, and prints the result.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/config"
	"github.com/moodbite/moodbite/internal/eventlog"
	"github.com/moodbite/moodbite/internal/server"
	"github.com/moodbite/moodbite/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	DBPath  string // overrides MOODBITE_DB when set
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the moodbite CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "moodbite",
		Short: "moodbite - mood-based restaurant virtual server",
		Long:  "A restaurant ordering simulation served entirely from a local database.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "stream server activity to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to the state database (default $MOODBITE_DB or moodbite.db)")

	// Add subcommands
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewInvokeCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewRecommendCommand(opts))
	cmd.AddCommand(NewSuggestCommand(opts))
	cmd.AddCommand(NewChatCommand(opts))
	cmd.AddCommand(NewLogsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds an OutputFormatter bound to the command's writers.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// withServer opens the store, starts the virtual server, and runs fn.
// The store is closed when fn returns. With --verbose, server activity
// is streamed to the formatter's diagnostic writer as it happens.
func withServer(opts *RootOptions, cmd *cobra.Command, fn func(ctx context.Context, srv *server.Server, out *OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := newFormatter(opts, cmd)

	cfg := config.Load()
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}

	responder, err := cfg.Responder()
	if err != nil {
		return WrapExitError(ExitCommandError, "configuring chat backend", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("opening database %s", cfg.DBPath), err)
	}
	defer st.Close()

	srv, err := server.New(ctx, st, server.WithChatResponder(responder))
	if err != nil {
		return WrapExitError(ExitCommandError, "starting virtual server", err)
	}

	if opts.Verbose {
		printEntry := func(e eventlog.Entry) {
			fmt.Fprintln(out.GetErrWriter(), formatLogEntry(e))
		}
		// Replay what the server logged during startup, then stream.
		entries := srv.Events().Entries()
		for i := len(entries) - 1; i >= 0; i-- {
			printEntry(entries[i])
		}
		cancel := srv.Events().Subscribe(printEntry)
		defer cancel()
	}

	return fn(ctx, srv, out)
}

// reportRequestError renders a request rejection through the formatter
// and converts it into an ExitError so the process exits non-zero.
func reportRequestError(out *OutputFormatter, err error) error {
	var reqErr *server.RequestError
	if errors.As(err, &reqErr) {
		if werr := out.Error(reqErr.Code, reqErr.Message, nil); werr != nil {
			return WrapExitError(ExitCommandError, "writing output", werr)
		}
		return NewExitError(ExitFailure, reqErr.Error())
	}
	return WrapExitError(ExitCommandError, "request failed", err)
}
