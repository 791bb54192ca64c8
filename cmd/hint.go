package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/impactplan/internal/controller"
)

const hintLongDescription = `Classify the changed paths and print the affected surface: whether core
and each binding are touched, and which services. The service catalog is
not read.`

func newHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint [changed paths...]",
		Short: "Show which components and services a change touches",
		Long:  hintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args, controller.FormatAuto)
			if err != nil {
				return err
			}

			return s.ui.DisplaySurface(s.planner.Hint(s.args))
		},
	}
}
