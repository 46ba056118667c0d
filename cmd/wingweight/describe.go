package main

import (
	"encoding/json"
	"fmt"

	"github.com/aero-sizing/wingweight/pkg/wingweight"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDescribeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "describe <model>",
		Short: "Print the coefficient table, centers and bounds of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := wingweight.Lookup(args[0])
			if err != nil {
				return err
			}
			spec := m.Surface().Spec()

			var data []byte
			switch output {
			case "yaml":
				data, err = yaml.Marshal(spec)
			case "json":
				data, err = json.MarshalIndent(spec, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown output format %q (yaml|json)", output)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml|json")
	return cmd
}
