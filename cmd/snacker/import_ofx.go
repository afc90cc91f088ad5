package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/classification"
	"github.com/Veraticus/snacker/internal/cli"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/model"
	"github.com/Veraticus/snacker/internal/ofx"
	"github.com/spf13/cobra"
)

func importOFXCmd(a *app) *cobra.Command {
	var (
		dryRun     bool
		categorize bool
	)

	cmd := &cobra.Command{
		Use:   "import-ofx <file|directory>...",
		Short: "Import transactions from OFX/QFX bank statements",
		Long: `Import transactions from OFX/QFX bank statements.

Credits are recorded as income and debits as expenses. Payees that match a
known keyword (payroll, groceries, ride hailing, utilities...) are filed
under the matching default category; everything else goes under "Other".
Transactions already in Snacker with the same date, type, amount and notes
are skipped, so re-importing a statement is safe.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			state := appstate.FromContext(ctx)

			files, err := collectStatementFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return common.NewUserError("No .ofx or .qfx files found.", common.ErrNotFound)
			}

			parser := ofx.NewParser()
			var parsed []model.Transaction
			for _, path := range files {
				txns, err := parseStatement(cmd, parser, path)
				if err != nil {
					return err
				}
				parsed = append(parsed, txns...)
			}

			seen := make(map[string]bool)
			for _, t := range state.Transactions() {
				seen[importKey(t)] = true
			}
			var fresh []model.Transaction
			for _, t := range parsed {
				if seen[importKey(t)] {
					continue
				}
				seen[importKey(t)] = true
				fresh = append(fresh, t)
			}
			skipped := len(parsed) - len(fresh)

			if categorize && len(fresh) > 0 {
				categorizer, err := classification.NewCategorizer(classification.DefaultRules())
				if err != nil {
					return err
				}
				var filed int
				fresh, filed, err = categorizer.Apply(ctx, fresh, state.Categories())
				if err != nil {
					return err
				}
				slog.Debug("Categorized imported transactions", "categorized", filed, "total", len(fresh))
			}

			if dryRun {
				say(cmd, "Would import %d transactions (%d already present).", len(fresh), skipped)
				if len(fresh) > 0 {
					say(cmd, "%s", renderTransactions(a, state, fresh))
				}
				return nil
			}

			if len(fresh) > 0 {
				bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(fresh), "Importing transactions...")
				for _, t := range fresh {
					if err := ctx.Err(); err != nil {
						return err
					}
					state.AddTransaction(ctx, t)
					if err := bar.Add(1); err != nil {
						slog.Warn("Failed to update progress bar", "error", err)
					}
				}
			}

			say(cmd, "%s", cli.FormatSuccess(fmt.Sprintf("Imported %d transactions from %d files (%d already present).",
				len(fresh), len(files), skipped)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be imported without saving")
	cmd.Flags().BoolVar(&categorize, "categorize", true, "file payees under matching categories")
	return cmd
}

func parseStatement(cmd *cobra.Command, parser *ofx.Parser, path string) ([]model.Transaction, error) {
	f, err := os.Open(path) // #nosec G304 -- user supplied statement
	if err != nil {
		return nil, common.NewUserError("Could not open "+path, err)
	}
	defer func() { _ = f.Close() }()

	result, err := parser.Parse(cmd.Context(), f)
	if err != nil {
		return nil, common.NewUserError("Could not read "+filepath.Base(path)+" as an OFX statement", err)
	}
	slog.Info("Parsed statement",
		"file", path,
		"transactions", len(result.Transactions),
		"duplicates", result.Duplicates,
		"accounts", result.Accounts)
	return result.Transactions, nil
}

// collectStatementFiles expands directories to the statement files they hold.
func collectStatementFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, common.NewUserError("Could not open "+arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		for _, e := range entries {
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if !e.IsDir() && (ext == ".ofx" || ext == ".qfx") {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	return files, nil
}

// importKey identifies a transaction for re-import detection.
func importKey(t model.Transaction) string {
	return fmt.Sprintf("%s|%s|%.2f|%s", t.Date, t.Type, t.Amount, strings.ToLower(t.Notes))
}
