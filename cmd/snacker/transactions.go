package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/cli"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/model"
	"github.com/spf13/cobra"
)

func transactionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Record and review transactions",
		Long:    `Add, list, edit and delete income and expense transactions.`,
	}

	cmd.AddCommand(addTransactionCmd(a))
	cmd.AddCommand(listTransactionsCmd(a))
	cmd.AddCommand(editTransactionCmd(a))
	cmd.AddCommand(deleteTransactionCmd())
	cmd.AddCommand(dayTransactionsCmd(a))

	return cmd
}

// txFlags are the transaction form fields.
type txFlags struct {
	typ      string
	amount   string
	category string
	date     string
	notes    string
	favorite bool
}

func (f *txFlags) register(cmd *cobra.Command, typeDefault string) {
	cmd.Flags().StringVarP(&f.typ, "type", "t", typeDefault, "income or expense")
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "amount, e.g. 250 or ₱1,250.50")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category ID or name")
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "date, yyyy-MM-dd, today or yesterday (default today)")
	cmd.Flags().StringVarP(&f.notes, "notes", "n", "", "optional notes")
	cmd.Flags().BoolVar(&f.favorite, "favorite", false, "mark an expense as favorite")
}

// apply fills t from the flags that were set (all of them when adding) and
// validates the result the way the transaction form does.
func (f *txFlags) apply(cmd *cobra.Command, state *appstate.State, t model.Transaction, adding bool) (model.Transaction, error) {
	changed := func(name string) bool { return adding || cmd.Flags().Changed(name) }

	if changed("type") {
		typ, err := model.ParseTransactionType(f.typ)
		if err != nil {
			return t, common.NewUserError("Type must be income or expense.", err)
		}
		if !adding && typ != t.Type && !cmd.Flags().Changed("category") {
			return t, common.NewUserError("Changing the type needs a category of the new type (--category).", common.ErrInvalidInput)
		}
		t.Type = typ
	}
	if changed("amount") {
		if strings.TrimSpace(f.amount) == "" {
			return t, common.NewUserError("Amount must be a positive number.", model.ErrInvalidAmount)
		}
		amount, err := cli.ParseAmount(f.amount)
		if err != nil {
			return t, common.NewUserError("Amount must be a positive number.", err)
		}
		t.Amount = amount
	}
	if changed("category") {
		c, err := resolveCategory(state, f.category, t.Type)
		if err != nil {
			return t, err
		}
		if c.Type != t.Type {
			return t, common.NewUserError(
				fmt.Sprintf("%s is an %s category.", c.Name, c.Type), common.ErrInvalidInput)
		}
		t.CategoryID = c.ID
	}
	if changed("date") {
		d, err := parseDay(f.date, state.Now())
		if err != nil {
			return t, err
		}
		t.Date = d
	}
	if changed("notes") {
		t.Notes = strings.TrimSpace(f.notes)
	}
	if changed("favorite") {
		t.IsFavorite = f.favorite
	}
	if t.Type != model.TypeExpense {
		t.IsFavorite = false
	}

	if err := t.Validate(); err != nil {
		return t, common.NewUserError(formMessage(err), err)
	}
	return t, nil
}

// formMessage words a validation error for the user.
func formMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		return "Amount must be a positive number."
	case errors.Is(err, model.ErrMissingCategory):
		return "Please select a category."
	case errors.Is(err, model.ErrMissingDate):
		return "Please select a date."
	case errors.Is(err, model.ErrInvalidType):
		return "Type must be income or expense."
	case errors.Is(err, model.ErrInvalidName):
		return "Category name is required."
	default:
		return err.Error()
	}
}

func addTransactionCmd(a *app) *cobra.Command {
	var flags txFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Example: `  snacker tx add --amount 250 --category food --notes "Lunch"
  snacker tx add -t income -a 45000 -c Salary -d 2024-03-15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())

			t, err := flags.apply(cmd, state, model.Transaction{}, true)
			if err != nil {
				return err
			}

			created := state.AddTransaction(cmd.Context(), t)
			say(cmd, "%s", cli.FormatSuccess(fmt.Sprintf("Added %s of %s on %s (%s)",
				created.Type, a.currency.FormatFloat(created.Amount), created.Date, created.ID)))
			return nil
		},
	}
	flags.register(cmd, string(model.TypeExpense))
	return cmd
}

func listTransactionsCmd(a *app) *cobra.Command {
	var (
		flags filterFlags
		limit int
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())

			filters, err := flags.build(cmd, state)
			if err != nil {
				return err
			}
			if save {
				state.SaveFilterPreferences(cmd.Context(), filters)
			}

			txns := state.FilterTransactions(filters)
			if len(txns) == 0 {
				say(cmd, "%s", cli.InfoStyle.Render("No transactions found. Add one with 'snacker tx add'."))
				return nil
			}

			shown := txns
			if limit > 0 && len(shown) > limit {
				shown = shown[:limit]
			}
			say(cmd, "%s", renderTransactions(a, state, shown))
			if len(shown) < len(txns) {
				say(cmd, "%s", cli.SubtleStyle.Render(fmt.Sprintf("Showing %d of %d.", len(shown), len(txns))))
			}
			return nil
		},
	}
	flags.register(cmd.Flags(), true)
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many (0 for all)")
	cmd.Flags().BoolVar(&save, "save", false, "save these filters as your preferences")
	return cmd
}

func renderTransactions(a *app, state *appstate.State, txns []model.Transaction) string {
	rows := make([][]string, 0, len(txns))
	for _, t := range txns {
		fav := ""
		if t.IsFavorite {
			fav = cli.StarIcon
		}
		rows = append(rows, []string{
			t.Date.String(),
			cli.StyleAmount(t.Type, a.currency.FormatFloat(t.Amount)),
			categoryName(state, t.CategoryID),
			t.Notes,
			fav,
			t.ID,
		})
	}
	return cli.RenderTable([]string{"Date", "Amount", "Category", "Notes", "", "ID"}, rows)
}

func editTransactionCmd(a *app) *cobra.Command {
	var flags txFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a transaction",
		Long:  `Change the fields of a transaction. Only the flags you pass are updated.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := appstate.FromContext(cmd.Context())

			existing, ok := state.TransactionByID(args[0])
			if !ok {
				return common.NewUserError(fmt.Sprintf("No transaction with ID %q.", args[0]), common.ErrNotFound)
			}

			updated, err := flags.apply(cmd, state, existing, false)
			if err != nil {
				return err
			}

			state.UpdateTransaction(cmd.Context(), updated)
			say(cmd, "%s", cli.FormatSuccess(fmt.Sprintf("Updated %s: %s on %s",
				updated.ID, a.currency.FormatFloat(updated.Amount), updated.Date)))
			return nil
		},
	}
	flags.register(cmd, string(model.TypeExpense))
	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := appstate.FromContext(cmd.Context())

			t, ok := state.TransactionByID(args[0])
			if !ok {
				return common.NewUserError(fmt.Sprintf("No transaction with ID %q.", args[0]), common.ErrNotFound)
			}

			ok, err := confirm(cmd, force, fmt.Sprintf("Delete the %s on %s?", t.Type, t.Date))
			if err != nil {
				return err
			}
			if !ok {
				say(cmd, "Delete canceled.")
				return nil
			}

			state.DeleteTransaction(cmd.Context(), t.ID)
			say(cmd, "%s", cli.FormatSuccess("Transaction deleted."))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}

func dayTransactionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show the transactions of one day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := appstate.FromContext(cmd.Context())

			var raw string
			if len(args) == 1 {
				raw = args[0]
			}
			day, err := parseDay(raw, state.Now())
			if err != nil {
				return err
			}

			txns := state.TransactionsByDate(day.Time)
			say(cmd, "%s", cli.FormatTitle(cli.CalendarIcon+" "+day.Format("Monday, January 2, 2006")))
			if len(txns) == 0 {
				say(cmd, "No transactions on this day.")
				return nil
			}
			say(cmd, "%s", renderTransactions(a, state, txns))
			return nil
		},
	}
}
