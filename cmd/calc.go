package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"finance-calculator/calculator"
	"finance-calculator/domain"
)

// Calculation commands call the engine directly and print unrounded JSON.

func newPresentValueCommand() *cobra.Command {
	var fv, periods, rate float64
	cmd := &cobra.Command{
		Use:   "pv",
		Short: "Present value of a future lump sum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := calculator.PresentValue(fv, periods, rate)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().Float64Var(&fv, "fv", 0, "future value")
	cmd.Flags().Float64Var(&periods, "periods", 0, "number of periods")
	cmd.Flags().Float64Var(&rate, "rate", 0, "interest rate per period, in percent")
	return cmd
}

func newDepositsCommand() *cobra.Command {
	var periods, rate, deposit float64
	var beginning bool
	cmd := &cobra.Command{
		Use:   "pv-deposits",
		Short: "Present value of a stream of periodic deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := calculator.PresentValueOfDeposits(periods, rate, deposit, domain.TimingFromBool(beginning))
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().Float64Var(&periods, "periods", 0, "number of periods")
	cmd.Flags().Float64Var(&rate, "rate", 0, "interest rate per period, in percent")
	cmd.Flags().Float64Var(&deposit, "deposit", 0, "deposit made each period")
	cmd.Flags().BoolVar(&beginning, "beginning", false, "deposits are made at the beginning of each period")
	return cmd
}

func newFutureValueCommand() *cobra.Command {
	var pv, periods, rate, deposit float64
	var compounding int
	var beginning bool
	cmd := &cobra.Command{
		Use:   "fv",
		Short: "Future value of a lump sum plus periodic deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := calculator.FutureValue(pv, periods, rate, compounding, deposit, domain.TimingFromBool(beginning))
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().Float64Var(&pv, "pv", 0, "present value")
	cmd.Flags().Float64Var(&periods, "periods", 0, "number of periods")
	cmd.Flags().Float64Var(&rate, "rate", 0, "nominal interest rate per period, in percent")
	cmd.Flags().IntVar(&compounding, "compounding", 1, "times interest is compounded per period")
	cmd.Flags().Float64Var(&deposit, "deposit", 0, "deposit made each period")
	cmd.Flags().BoolVar(&beginning, "beginning", false, "deposits are made at the beginning of each period")
	return cmd
}

func newNetPresentValueCommand() *cobra.Command {
	var investment, rate float64
	var compounding int
	var beginning bool
	var flows []float64
	cmd := &cobra.Command{
		Use:   "npv",
		Short: "Net present value of a cash-flow series, e.g. --flows 300,400,500",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			npv, err := calculator.NetPresentValue(investment, rate, compounding, domain.TimingFromBool(beginning), flows)
			if err != nil {
				return err
			}
			return printJSON(cmd, domain.NetPresentValueResult{NetPresentValue: npv})
		},
	}
	cmd.Flags().Float64Var(&investment, "investment", 0, "initial investment")
	cmd.Flags().Float64Var(&rate, "rate", 0, "discount rate per period, in percent")
	cmd.Flags().IntVar(&compounding, "compounding", 1, "times the discount rate is compounded per period")
	cmd.Flags().BoolVar(&beginning, "beginning", false, "cash flows occur at the beginning of each period")
	cmd.Flags().Float64SliceVar(&flows, "flows", nil, "comma separated cash flows, one per period")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
