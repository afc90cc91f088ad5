package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/snacker/internal/cli"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "snacker",
		Short: "🍿 Personal income and expense tracker",
		Long: `Snacker: a local-first tracker for your income and expenses.

Log transactions, sort them into categories, check monthly summaries and
expense breakdowns, and export reports.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/snacker/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("backend", "file", "storage backend (file, sqlite, memory)")
	flags.String("data-dir", "", "directory holding Snacker data (default: $HOME/.local/share/snacker)")
	flags.String("currency", "", "currency symbol for amounts (default: ₱)")

	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("storage.backend", flags.Lookup("backend"))
	_ = a.v.BindPFlag("storage.path", flags.Lookup("data-dir"))
	_ = a.v.BindPFlag("display.currency", flags.Lookup("currency"))

	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(onboardCmd(a))
	rootCmd.AddCommand(transactionsCmd(a))
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(summaryCmd(a))
	rootCmd.AddCommand(distributionCmd(a))
	rootCmd.AddCommand(monthsCmd(a))
	rootCmd.AddCommand(filtersCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(exportCmd(a))
	rootCmd.AddCommand(importOFXCmd(a))
	rootCmd.AddCommand(authCmd(a))
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// execute runs one command line and releases storage afterwards.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return executeApp(ctx, newApp(), args, stdin, stdout, stderr)
}

func executeApp(ctx context.Context, a *app, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	defer a.close()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return rootCmd.ExecuteContext(ctx)
}

func main() {
	handler := cli.NewInterruptHandler(os.Stderr)
	ctx, cancel := context.WithCancel(context.Background())
	ctx = handler.HandleInterrupts(ctx)

	err := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()

	if err != nil {
		if !handler.WasInterrupted() || !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
			slog.Debug("command failed", "error", err)
		}
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{annotationStorage: storageNone},
		Run: func(cmd *cobra.Command, _ []string) {
			say(cmd, "snacker %s", version)
		},
	}
}
