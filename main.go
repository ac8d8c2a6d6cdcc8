package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/maskfield/cmd"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to initialize logging: %v\n", err)
	}

	if err := cmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(cli.ExitCode(err))
	}
}
