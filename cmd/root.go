// Package cmd implements the fincalc command line.
package cmd

import "github.com/spf13/cobra"

// NewRootCommand builds the fincalc command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fincalc",
		Short: "Time-value-of-money calculator",
		Long: `fincalc computes present value, present value of deposits, future value
and net present value, either one-off from the command line or through
the HTTP API started by "fincalc serve".

Rates are percentages: 10 means 10% per period.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "YAML config file (env FINCALC_* overrides it)")

	root.AddCommand(
		newServeCommand(),
		newPresentValueCommand(),
		newDepositsCommand(),
		newFutureValueCommand(),
		newNetPresentValueCommand(),
		newVersionCommand(),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
