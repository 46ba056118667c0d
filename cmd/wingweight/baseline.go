package main

import (
	"fmt"

	"github.com/aero-sizing/wingweight/internal/logger"
	"github.com/aero-sizing/wingweight/pkg/config"
	"github.com/aero-sizing/wingweight/pkg/surrogate"
	"github.com/aero-sizing/wingweight/pkg/wingweight"
	"github.com/spf13/cobra"
)

func newBaselineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "baseline [model...]",
		Short: "Evaluate the baseline scenarios and compare them with the JMP predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = wingweight.Names()
			}
			out := cmd.OutOrStdout()
			for _, name := range args {
				m, err := wingweight.Lookup(name)
				if err != nil {
					return err
				}
				estimate, err := m.Evaluate(m.BaselineInputs())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %v %s\n", m.Name(), estimate, m.Surface().Units())
				fmt.Fprintf(out, "  relative error against JMP prediction %v: %v\n",
					m.Reference(), surrogate.RelativeError(estimate, m.Reference()))
				if !surrogate.WithinTolerance(estimate, m.Reference(), config.ReferenceTolerance) {
					logger.Log.Warnw("baseline deviates from JMP prediction", "model", m.Name(),
						"estimate", estimate, "reference", m.Reference(), "tolerance", config.ReferenceTolerance)
				}
			}
			return nil
		},
	}
}
