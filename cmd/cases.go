package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/impactplan/internal/controller"
)

const casesLongDescription = `List every service setup found in the services directory. Setups whose
action references secrets are hidden unless secrets are available
(--has-secrets or GITHUB_HAS_SECRETS=true).`

func newCasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "List the service cases available to this run",
		Long:  casesLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args, controller.FormatTable)
			if err != nil {
				return err
			}

			entries, err := s.planner.Cases(cmd.Context(), s.args)
			if err != nil {
				return err
			}

			return s.ui.DisplayCases(entries)
		},
	}
}
