package main

import (
	"strings"
	"time"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// filterFlags are the transaction list filters as command line flags.
type filterFlags struct {
	typ      string
	category string
	from     string
	to       string
	search   string
	saved    bool
}

func (f *filterFlags) register(flags *pflag.FlagSet, withSaved bool) {
	flags.StringVar(&f.typ, "type", "", "only income or expense (default all)")
	flags.StringVar(&f.category, "category", "", "only this category (ID or name)")
	flags.StringVar(&f.from, "from", "", "earliest date, yyyy-MM-dd")
	flags.StringVar(&f.to, "to", "", "latest date, yyyy-MM-dd")
	flags.StringVar(&f.search, "search", "", "match notes, amount or category name")
	if withSaved {
		flags.BoolVar(&f.saved, "saved", false, "start from the saved filter preferences")
	}
}

// build turns the flags into filters, layered over the saved preferences
// when --saved is set.
func (f *filterFlags) build(cmd *cobra.Command, state *appstate.State) (model.TransactionFilters, error) {
	var filters model.TransactionFilters
	if f.saved {
		if saved, ok := state.FilterPreferences(); ok {
			filters = saved
		}
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		switch t := strings.ToLower(strings.TrimSpace(f.typ)); t {
		case "", model.FilterAll:
			filters.Type = model.FilterAll
		default:
			parsed, err := model.ParseTransactionType(t)
			if err != nil {
				return filters, common.NewUserError("Type must be income, expense or all.", err)
			}
			filters.Type = string(parsed)
		}
	}
	if flags.Changed("category") {
		if f.category == "" || strings.EqualFold(f.category, model.FilterAll) {
			filters.CategoryID = model.FilterAll
		} else {
			c, err := resolveCategory(state, f.category, "")
			if err != nil {
				return filters, err
			}
			filters.CategoryID = c.ID
		}
	}
	if flags.Changed("from") {
		t, err := optionalDay(f.from)
		if err != nil {
			return filters, err
		}
		filters.DateFrom = t
	}
	if flags.Changed("to") {
		t, err := optionalDay(f.to)
		if err != nil {
			return filters, err
		}
		filters.DateTo = t
	}
	if flags.Changed("search") {
		filters.SearchTerm = strings.TrimSpace(f.search)
	}
	return filters, nil
}

func optionalDay(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := model.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return nil, common.NewUserError("Dates look like 2024-03-15.", err)
	}
	t := d.LocalMidnight()
	return &t, nil
}

func describeFilters(state *appstate.State, f model.TransactionFilters) []string {
	typ := f.Type
	if typ == "" {
		typ = model.FilterAll
	}
	category := "all"
	if f.CategoryID != "" && f.CategoryID != model.FilterAll {
		category = categoryName(state, f.CategoryID)
	}
	lines := []string{
		"Type:     " + typ,
		"Category: " + category,
	}
	if f.DateFrom != nil {
		lines = append(lines, "From:     "+model.LocalDateOf(*f.DateFrom).String())
	}
	if f.DateTo != nil {
		lines = append(lines, "To:       "+model.LocalDateOf(*f.DateTo).String())
	}
	if f.SearchTerm != "" {
		lines = append(lines, "Search:   "+f.SearchTerm)
	}
	return lines
}

func filtersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Manage saved transaction filters",
		Long:  `Show, save or clear the filter preferences used by 'tx list --saved' and 'export --saved'.`,
	}

	cmd.AddCommand(showFiltersCmd())
	cmd.AddCommand(saveFiltersCmd())
	cmd.AddCommand(clearFiltersCmd())

	return cmd
}

func showFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show saved filter preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())
			f, ok := state.FilterPreferences()
			if !ok {
				say(cmd, "No saved filters.")
				return nil
			}
			for _, line := range describeFilters(state, f) {
				say(cmd, "%s", line)
			}
			return nil
		},
	}
}

func saveFiltersCmd() *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save filter preferences",
		Long: `Save filter preferences. Only the flags you pass change; the rest keep
their saved values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())
			flags.saved = true
			filters, err := flags.build(cmd, state)
			if err != nil {
				return err
			}
			state.SaveFilterPreferences(cmd.Context(), filters)
			say(cmd, "Saved filters.")
			for _, line := range describeFilters(state, filters) {
				say(cmd, "  %s", line)
			}
			return nil
		},
	}
	flags.register(cmd.Flags(), false)
	return cmd
}

func clearFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget saved filter preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			appstate.FromContext(cmd.Context()).ClearFilterPreferences(cmd.Context())
			say(cmd, "Cleared saved filters.")
			return nil
		},
	}
}
