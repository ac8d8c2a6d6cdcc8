package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/cli/edit"
	"github.com/thenoetrevino/maskfield/internal/cli/entry"
	"github.com/thenoetrevino/maskfield/internal/cli/fill"
	"github.com/thenoetrevino/maskfield/internal/cli/format"
	"github.com/thenoetrevino/maskfield/internal/cli/preset"
)

var rootCmd = &cobra.Command{
	Use:   "maskfield",
	Short: "Maskfield - masked input for the terminal",
	Long: `Maskfield applies input masks such as "(###) ###-####" to text.
It formats values, replays edit scripts against a mask, and fills masked forms
interactively, storing the results in a local database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(format.FormatCmd())
	rootCmd.AddCommand(edit.EditCmd())
	rootCmd.AddCommand(preset.PresetCmd())
	rootCmd.AddCommand(entry.EntryCmd())
	rootCmd.AddCommand(fill.FillCmd())
}

// Execute runs the root command. Commands report their own failures; anything
// else comes from cobra's argument and flag parsing and is printed here.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var coded *cli.ExitCodeError
	if errors.As(err, &coded) {
		return err
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	return cli.WithExitCode(cli.ExitUsage, err)
}
