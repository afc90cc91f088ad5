package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/cli"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/config"
	"github.com/Veraticus/snacker/internal/model"
	"github.com/Veraticus/snacker/internal/report"
	"github.com/Veraticus/snacker/internal/sheets"
	"github.com/Veraticus/snacker/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Command annotations read by app.setup.
const (
	annotationStorage = "snacker/storage"
	storageNone       = "none"

	annotationAnyPhase = "snacker/any-phase"
)

// app carries the resolved configuration and open resources for one run.
type app struct {
	v        *viper.Viper
	backend  storage.Backend
	state    *appstate.State
	now      func() time.Time
	newID    func() string
	currency cli.Currency
	cfgFile  string
	cfg      config.Config

	newSheetsWriter func(context.Context, sheets.Config) (report.Writer, error)
}

func newApp() *app {
	return &app{
		v:        viper.New(),
		now:      time.Now,
		currency: cli.NewCurrency(""),

		newSheetsWriter: defaultSheetsWriter,
	}
}

// setup loads configuration, opens storage and installs the state facade on
// the command context. Commands run in the ready phase unless annotated.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}
	if cmd.Annotations[annotationStorage] == storageNone {
		return nil
	}

	if err := a.openState(cmd.Context()); err != nil {
		return err
	}
	cmd.SetContext(appstate.WithState(cmd.Context(), a.state))

	if cmd.Annotations[annotationAnyPhase] == "" {
		return requireReady(a.state)
	}
	return nil
}

func (a *app) initConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(config.ExpandPath(config.DefaultConfigDir))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("SNACKER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := common.SetupLogger(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.currency = cli.NewCurrency(cfg.Display.Currency)
	return nil
}

func (a *app) openState(ctx context.Context) error {
	backend, err := storage.Open(ctx, a.cfg.Storage.Backend, a.cfg.Storage.Path)
	if err != nil {
		return common.NewUserError("Could not open your Snacker data", err)
	}
	a.backend = backend

	logger := slog.Default()
	store := storage.NewStore(backend, storage.DocumentKey, model.DefaultDocument, storage.WithLogger(logger))

	opts := []appstate.Option{appstate.WithLogger(logger), appstate.WithClock(a.now)}
	if a.newID != nil {
		opts = append(opts, appstate.WithIDGenerator(a.newID))
	}
	a.state = appstate.New(store, opts...)
	a.state.Load(ctx)

	slog.Debug("Loaded Snacker data",
		"backend", a.cfg.Storage.Backend,
		"phase", a.state.Phase(),
		"transactions", len(a.state.Transactions()))
	return nil
}

func (a *app) close() {
	if a.backend == nil {
		return
	}
	if err := a.backend.Close(); err != nil {
		slog.Warn("Failed to close storage", "error", err)
	}
	a.backend = nil
}

// requireReady fails with a hint unless onboarding and the username are done.
func requireReady(state *appstate.State) error {
	switch state.Phase() {
	case appstate.PhaseReady:
		return nil
	case appstate.PhaseNeedsOnboarding:
		return common.NewUserError("Welcome! Run 'snacker onboard' to get started.", common.ErrNotReady)
	case appstate.PhaseNeedsUsername:
		return common.NewUserError("Choose a username first: 'snacker onboard' or 'snacker profile set-name <name>'.", common.ErrNotReady)
	default:
		return common.NewUserError("Your data is still loading. Try again.", common.ErrNotReady)
	}
}

func anyPhase() map[string]string {
	return map[string]string{annotationAnyPhase: "true"}
}

// say writes one line to the command's output.
func say(cmd *cobra.Command, format string, args ...any) {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}

func prompter(cmd *cobra.Command) *cli.Prompter {
	return cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

// confirm asks question unless force is set.
func confirm(cmd *cobra.Command, force bool, question string) (bool, error) {
	if force {
		return true, nil
	}
	return prompter(cmd).Confirm(cmd.Context(), question)
}

// parseDay parses a yyyy-MM-dd date, or "today"/"yesterday" relative to now.
func parseDay(s string, now time.Time) (model.Date, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return model.DateOf(now), nil
	case "yesterday":
		return model.DateOf(now.AddDate(0, 0, -1)), nil
	}
	d, err := model.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return model.Date{}, common.NewUserError("Dates look like 2024-03-15.", err)
	}
	return d, nil
}

// parseMonth parses yyyy-MM; empty means the month of now.
func parseMonth(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return model.DateOf(now).MonthStart().Time, nil
	}
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, common.NewUserError("Months look like 2024-03.", err)
	}
	return t, nil
}

// resolveCategory finds a category by ID, or by case-insensitive name among
// categories of type t when t is set.
func resolveCategory(state *appstate.State, ref string, t model.TransactionType) (model.Category, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Category{}, common.NewUserError("Please select a category.", model.ErrMissingCategory)
	}
	if c, ok := state.CategoryByID(ref); ok {
		return c, nil
	}

	var matches []model.Category
	for _, c := range state.Categories() {
		if t != "" && c.Type != t {
			continue
		}
		if strings.EqualFold(c.Name, ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Category{}, common.NewUserError(
			fmt.Sprintf("No category %q. See 'snacker categories list'.", ref), common.ErrNotFound)
	default:
		return model.Category{}, common.NewUserError(
			fmt.Sprintf("%q matches several categories; use its ID.", ref), common.ErrInvalidInput)
	}
}

// categoryName labels a transaction's category, tolerating deleted ones.
func categoryName(state *appstate.State, id string) string {
	if c, ok := state.CategoryByID(id); ok {
		return cli.FormatCategory(c)
	}
	return "Uncategorized"
}
