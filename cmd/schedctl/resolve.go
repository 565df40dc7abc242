package main

import (
	"fmt"

	"production-scheduler-backend/internal/calendar"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var planPath string
	var days int

	cmd := &cobra.Command{
		Use:   "resolve <subject> <date>",
		Short: "Resolve the shift of an employee or operator team",
		Long: `Resolves the shift of a subject on a date (YYYY-MM-DD) from the plan's calendar
and prints the resolution. With --days greater than one, the shift windows of
the following days are printed instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, planPath, args[0], args[1], days)
		},
	}

	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "path to the YAML plan file")
	cmd.Flags().IntVar(&days, "days", 1, "number of days to list windows for")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runResolve(cmd *cobra.Command, planPath, subject, dateArg string, days int) error {
	date, err := calendar.ParseDate(dateArg)
	if err != nil || date.IsZero() {
		return fmt.Errorf("date %q: expected YYYY-MM-DD", dateArg)
	}
	if days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}
	plan, err := loadPlan(planPath)
	if err != nil {
		return err
	}
	loc, err := plan.location()
	if err != nil {
		return err
	}

	last := date.AddDays(days - 1)
	cal, err := calendar.Load(cmd.Context(), &plan.Calendar, date.AddDays(-1), last, calendar.Options{Location: loc})
	if err != nil {
		return fmt.Errorf("load calendar: %w", err)
	}

	if days == 1 {
		return writeJSON(cmd.OutOrStdout(), cal.Resolve(subject, date))
	}
	windows := cal.Windows(subject, date, last)
	if windows == nil {
		windows = []calendar.Window{}
	}
	return writeJSON(cmd.OutOrStdout(), windows)
}
