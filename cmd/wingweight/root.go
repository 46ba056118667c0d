package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wingweight",
		Short: "Wing structural weight surrogates for the PEGASUS and TBW configurations",
		Long: `wingweight evaluates the quadratic response surfaces that estimate the wing
structural weight of the PEGASUS and TBW vehicle configurations, for use with
vehicle sizing tools like FLOPS or LEAPS.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newBaselineCmd(),
		newEvalCmd(),
		newDescribeCmd(),
		newServeCmd(),
	)
	return root
}
