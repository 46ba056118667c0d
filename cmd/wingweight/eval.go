package main

import (
	"encoding/json"
	"fmt"

	"github.com/aero-sizing/wingweight/internal/logger"
	"github.com/aero-sizing/wingweight/pkg/utils"
	"github.com/aero-sizing/wingweight/pkg/wingweight"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var params string
	var gradient bool

	cmd := &cobra.Command{
		Use:   "eval <model>",
		Short: "Evaluate one design point, fields missing from --params keep their defaults",
		Example: `  wingweight eval pegasus --params '{"battery_weight_ratio": 0.3}'
  wingweight eval tbw --params '{"strut_eta": 0.65}' --gradient`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := wingweight.Lookup(args[0])
			if err != nil {
				return err
			}
			in := m.NewInputs()
			if params != "" {
				decoded, err := utils.FromDataToSpec([]byte(params), in)
				if err != nil {
					return fmt.Errorf("invalid --params: %w", err)
				}
				if *decoded == nil {
					return fmt.Errorf("invalid --params: no inputs")
				}
				in = *decoded
			}

			x := in.Vector()
			violations, err := m.Surface().CheckBounds(x)
			if err != nil {
				return err
			}
			for _, v := range violations {
				logger.Log.Warnw("parameter outside documented bounds", "model", m.Name(), "violation", v.String())
			}

			out := cmd.OutOrStdout()
			inputs, err := json.Marshal(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "inputs: %s\n", inputs)
			estimate, err := m.Evaluate(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %v %s\n", m.Name(), estimate, m.Surface().Units())

			if gradient {
				g, err := m.Surface().Gradient(x)
				if err != nil {
					return err
				}
				for i, name := range m.Surface().ParameterNames() {
					fmt.Fprintf(out, "  d/d%s = %v\n", name, g[i])
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&params, "params", "", "JSON object of parameter values")
	cmd.Flags().BoolVar(&gradient, "gradient", false, "also print the partial derivatives")
	return cmd
}
