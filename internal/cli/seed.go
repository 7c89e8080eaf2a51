package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/config"
	"github.com/moodbite/moodbite/internal/model"
	"github.com/moodbite/moodbite/internal/store"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	UsersFile string
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the database to the default state with registered users",
		Long: `Reset the database to the default state with registered users.

The catalog and dashboard stats are restored to their defaults, the order
history is cleared, and the given users become the registered accounts.
Without --users, two built-in demo accounts are registered.

Example:
  moodbite seed --users users.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.UsersFile, "users", "", "YAML file of users to register")

	return cmd
}

func runSeed(opts *SeedOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := newFormatter(opts.RootOptions, cmd)

	users := DemoUsers()
	if opts.UsersFile != "" {
		loaded, err := LoadSeedUsers(opts.UsersFile)
		if err != nil {
			return WrapExitError(ExitCommandError, "loading seed users", err)
		}
		users = loaded
	}

	cfg := config.Load()
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("opening database %s", cfg.DBPath), err)
	}
	defer st.Close()

	state := model.DefaultState()
	state.Users = users
	if err := st.Save(ctx, state); err != nil {
		return WrapExitError(ExitCommandError, "seeding database", err)
	}

	out.VerboseLog("seeded %s with %d users", cfg.DBPath, len(users))
	if err := out.Success(fmt.Sprintf("Database seeded with %d users.", len(users))); err != nil {
		return WrapExitError(ExitCommandError, "writing output", err)
	}
	return nil
}
