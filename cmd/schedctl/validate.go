package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the orders of a plan file",
		Long:  "Checks every order of the plan and lists each failed rule. Exits non-zero when any order is invalid.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, planPath)
		},
	}

	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "path to the YAML plan file")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runValidate(cmd *cobra.Command, planPath string) error {
	plan, err := loadPlan(planPath)
	if err != nil {
		return err
	}
	orders := plan.orders()
	valid, rejected := validateOrders(orders)

	out := cmd.OutOrStdout()
	for _, r := range rejected {
		fmt.Fprintf(out, "%s (%s):\n", r.OrderID, r.PartNumber)
		for _, e := range r.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
	}
	fmt.Fprintf(out, "%d valid, %d invalid\n", len(valid), len(rejected))

	if len(rejected) > 0 {
		return fmt.Errorf("%d of %d orders are invalid", len(rejected), len(orders))
	}
	return nil
}
