package main

import (
	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/cli"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all Snacker data",
		Long: `Delete every transaction, category change, filter and profile setting.

This cannot be undone. The next command starts fresh with the default
categories and the welcome screens.`,
		Annotations: anyPhase(),
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())

			ok, err := confirm(cmd, force, "This will permanently delete all your data. Continue?")
			if err != nil {
				return err
			}
			if !ok {
				say(cmd, "Reset canceled.")
				return nil
			}

			if err := state.ResetApplicationData(cmd.Context()); err != nil {
				return common.NewUserError("Could not delete your data.", err)
			}
			say(cmd, "%s", cli.FormatSuccess("All data deleted. Run 'snacker onboard' to start again."))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}
