package main

import (
	"fmt"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/cli"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/tui"
	"github.com/Veraticus/snacker/internal/tui/themes"
	"github.com/spf13/cobra"
)

func onboardCmd(a *app) *cobra.Command {
	var (
		username string
		theme    string
	)

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Walk through the welcome screens and pick a username",
		Long: `Walk through the welcome screens and pick a username.

With --username the screens are skipped and the name is saved directly.`,
		Annotations: anyPhase(),
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			state := appstate.FromContext(ctx)

			if cmd.Flags().Changed("username") {
				name, err := tui.ValidateUsername(username)
				if err != nil {
					return common.NewUserError(err.Error(), common.ErrInvalidInput)
				}
				if !state.HasOnboarded() {
					state.MarkOnboardingComplete(ctx)
				}
				state.SetUsername(ctx, name)
				say(cmd, "%s", cli.FormatSuccess(fmt.Sprintf("Welcome, %s! You're all set.", name)))
				return nil
			}

			if state.Phase() == appstate.PhaseReady {
				say(cmd, "You're all set, %s. Nothing to do.", state.Username())
				return nil
			}

			if theme == "" {
				theme = a.v.GetString("display.theme")
			}
			result, err := tui.Run(ctx,
				tui.WithTheme(themes.GetTheme(theme)),
				tui.WithSkipIntro(state.HasOnboarded()),
				tui.WithInitialUsername(state.Username()),
			)
			if err != nil {
				return err
			}

			if result.Completed && !state.HasOnboarded() {
				state.MarkOnboardingComplete(ctx)
			}
			if result.Username != "" {
				state.SetUsername(ctx, result.Username)
			}

			if state.Phase() == appstate.PhaseReady {
				say(cmd, "%s", cli.FormatSuccess(fmt.Sprintf("Welcome, %s! You're all set.", state.Username())))
			} else {
				say(cmd, "%s", cli.FormatInfo("Come back any time with 'snacker onboard'."))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "save this username without the interactive screens")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme (default, catppuccin-mocha)")
	return cmd
}
