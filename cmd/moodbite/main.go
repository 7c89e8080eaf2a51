package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/moodbite/moodbite/internal/cli"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}

func logLevel() slog.Level {
	if os.Getenv("MOODBITE_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
