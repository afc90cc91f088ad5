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

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage income and expense categories",
		Long:  `List, add, update and delete the categories transactions are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())

			categories := state.Categories()
			if typ != "" {
				t, err := model.ParseTransactionType(typ)
				if err != nil {
					return common.NewUserError("Type must be income or expense.", err)
				}
				categories = state.CategoriesOfType(t)
			}

			used := make(map[string]int)
			for _, t := range state.Transactions() {
				used[t.CategoryID]++
			}

			rows := make([][]string, 0, len(categories))
			for _, c := range categories {
				rows = append(rows, []string{
					c.Icon.Glyph(),
					c.ID,
					c.Name,
					string(c.Type),
					fmt.Sprintf("%d", used[c.ID]),
				})
			}
			say(cmd, "%s", cli.RenderTable([]string{"", "ID", "Name", "Type", "Transactions"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "", "only income or expense categories")
	return cmd
}

// categoryMessage words a category validation error for the user.
func categoryMessage(err error) string {
	if errors.Is(err, model.ErrNameTooLong) {
		return fmt.Sprintf("Name too long (max %d characters).", model.MaxCategoryNameLength)
	}
	return formMessage(err)
}

func parseIcon(s string) (model.Icon, error) {
	if s == "" {
		return "", nil
	}
	for _, icon := range model.Icons() {
		if strings.EqualFold(string(icon), s) {
			return icon, nil
		}
	}
	names := make([]string, 0, len(model.Icons()))
	for _, icon := range model.Icons() {
		names = append(names, string(icon))
	}
	return "", common.NewUserError("Unknown icon. Choose one of: "+strings.Join(names, ", "), common.ErrInvalidInput)
}

func addCategoryCmd() *cobra.Command {
	var typ, icon string

	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Add a category",
		Example: `  snacker categories add "Coffee" --type expense --icon Utensils`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := appstate.FromContext(cmd.Context())

			t, err := model.ParseTransactionType(typ)
			if err != nil {
				return common.NewUserError("Type must be income or expense.", err)
			}
			ic, err := parseIcon(icon)
			if err != nil {
				return err
			}

			c := model.Category{Name: strings.TrimSpace(args[0]), Type: t, Icon: ic}
			if err := c.Validate(); err != nil {
				return common.NewUserError(categoryMessage(err), err)
			}

			created := state.AddCategory(cmd.Context(), c)
			say(cmd, "%s", cli.FormatSuccess(fmt.Sprintf("Created %s category %s (ID: %s)",
				created.Type, cli.FormatCategory(created), created.ID)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", string(model.TypeExpense), "income or expense")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "icon name (default Tag)")
	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var name, icon string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a category or change its icon",
		Long:  `Rename a category or change its icon. A category's type never changes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := appstate.FromContext(cmd.Context())

			c, ok := state.CategoryByID(args[0])
			if !ok {
				return common.NewUserError(fmt.Sprintf("No category with ID %q.", args[0]), common.ErrNotFound)
			}

			if cmd.Flags().Changed("name") {
				c.Name = strings.TrimSpace(name)
			}
			if cmd.Flags().Changed("icon") {
				ic, err := parseIcon(icon)
				if err != nil {
					return err
				}
				c.Icon = ic.Resolve()
			}
			if err := c.Validate(); err != nil {
				return common.NewUserError(categoryMessage(err), err)
			}

			state.UpdateCategory(cmd.Context(), c)
			say(cmd, "%s", cli.FormatSuccess("Updated "+cli.FormatCategory(c)))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "new icon name")
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. Its transactions are kept and show up as
Uncategorized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := appstate.FromContext(cmd.Context())

			c, ok := state.CategoryByID(args[0])
			if !ok {
				return common.NewUserError(fmt.Sprintf("No category with ID %q.", args[0]), common.ErrNotFound)
			}

			question := fmt.Sprintf("Delete category %s?", c.Name)
			if n := len(state.FilterTransactions(model.TransactionFilters{CategoryID: c.ID})); n > 0 {
				question = fmt.Sprintf("Delete category %s? %d transactions will become Uncategorized.", c.Name, n)
			}
			ok, err := confirm(cmd, force, question)
			if err != nil {
				return err
			}
			if !ok {
				say(cmd, "Delete canceled.")
				return nil
			}

			state.DeleteCategory(cmd.Context(), c.ID)
			say(cmd, "%s", cli.FormatSuccess("Deleted category "+c.Name))
			if _, isDefault := model.FindCategory(model.DefaultCategories(), c.ID); isDefault {
				say(cmd, "%s", cli.FormatInfo("Default categories are restored the next time Snacker starts."))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}
