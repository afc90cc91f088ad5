package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/cli"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/config"
	"github.com/Veraticus/snacker/internal/report"
	"github.com/Veraticus/snacker/internal/sheets"
	"github.com/spf13/cobra"
)

func defaultSheetsWriter(ctx context.Context, cfg sheets.Config) (report.Writer, error) {
	return sheets.NewWriter(ctx, cfg, slog.Default())
}

func exportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an expense report",
		Long: `Export the expenses matching the given filters, oldest first, with a
total. Income is never included.`,
	}

	cmd.AddCommand(exportCSVCmd(a))
	cmd.AddCommand(exportSheetsCmd(a))

	return cmd
}

func buildReport(cmd *cobra.Command, flags *filterFlags) (*report.Report, error) {
	state := appstate.FromContext(cmd.Context())

	filters, err := flags.build(cmd, state)
	if err != nil {
		return nil, err
	}

	r := report.Build(state, filters, state.Now())
	if r.Empty() {
		return nil, common.NewUserError("No expenses match the filters. Nothing to export.", report.ErrEmptyReport)
	}
	return r, nil
}

func exportCSVCmd(a *app) *cobra.Command {
	var (
		flags  filterFlags
		dir    string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write the report as a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := buildReport(cmd, &flags)
			if err != nil {
				return err
			}

			if stdout {
				return report.WriteCSV(cmd.OutOrStdout(), r)
			}

			writer := report.NewCSVWriter(dir)
			if err := writer.Write(cmd.Context(), r); err != nil {
				return fmt.Errorf("failed to export csv: %w", err)
			}
			say(cmd, "%s", cli.FormatSuccess(fmt.Sprintf("Exported %d expenses totaling %s to %s",
				len(r.Rows), a.currency.Format(r.Total), writer.Path)))
			return nil
		},
	}
	flags.register(cmd.Flags(), true)
	cmd.Flags().StringVarP(&dir, "dir", "o", ".", "directory to write the report to")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the CSV instead of writing a file")
	return cmd
}

func exportSheetsCmd(a *app) *cobra.Command {
	var (
		flags         filterFlags
		spreadsheetID string
	)

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Write the report to a Google spreadsheet",
		Long: `Write the report to a Google spreadsheet: an Expenses tab and a Monthly
Summary tab. Run 'snacker auth sheets' first, or configure a service account.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := buildReport(cmd, &flags)
			if err != nil {
				return err
			}

			if spreadsheetID != "" {
				a.v.Set("sheets.spreadsheet_id", spreadsheetID)
			}
			cfg, err := config.LoadSheetsConfig(a.v)
			if err != nil {
				if errors.Is(err, common.ErrMissingConfig) {
					return common.NewUserError("Google Sheets is not set up. Run 'snacker auth sheets' first.", err)
				}
				return err
			}

			writer, err := a.newSheetsWriter(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			if err := writer.Write(cmd.Context(), r); err != nil {
				return fmt.Errorf("failed to export to sheets: %w", err)
			}

			say(cmd, "%s", cli.FormatSuccess(fmt.Sprintf("Exported %d expenses to Google Sheets", len(r.Rows))))
			if sw, ok := writer.(*sheets.Writer); ok && sw.SpreadsheetURL != "" {
				say(cmd, "  %s", sw.SpreadsheetURL)
			}
			return nil
		},
	}
	flags.register(cmd.Flags(), true)
	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet-id", "", "write to this spreadsheet instead of the configured one")
	return cmd
}
