package main

import (
	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "status",
		Short:       "Show setup progress and what is stored",
		Annotations: anyPhase(),
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())
			doc := state.Document()

			say(cmd, "Phase:        %s", state.Phase())
			say(cmd, "Onboarded:    %t", doc.UserHasOnboarded)
			if doc.Username != "" {
				say(cmd, "Username:     %s", doc.Username)
			}
			say(cmd, "Transactions: %d", len(doc.Transactions))
			say(cmd, "Categories:   %d", len(doc.Categories))

			if err := requireReady(state); err != nil {
				say(cmd, "")
				say(cmd, "%s", common.UserMessage(err))
			}
			return nil
		},
	}
}
