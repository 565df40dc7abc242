package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/chart"
	apperrors "production-scheduler-backend/internal/errors"
	"production-scheduler-backend/internal/logger"
	"production-scheduler-backend/internal/scheduling"

	"github.com/spf13/cobra"
)

type runOptions struct {
	planPath    string
	profile     string
	permissions []string
	output      string
}

// runReport is what run prints in json mode
type runReport struct {
	RequestedProfile scheduling.Profile        `json:"requested_profile"`
	Profile          scheduling.Profile        `json:"profile"`
	Rejected         []rejectedOrder           `json:"rejected"`
	Chart            *chart.Data               `json:"chart"`
	Machines         *chart.MachineData        `json:"machines"`
	Outcome          scheduling.RunOutcome     `json:"outcome"`
	Unscheduled      []scheduling.OrderOutcome `json:"unscheduled"`
	Unprocessed      []scheduling.OrderOutcome `json:"unprocessed"`
}

type rejectedOrder struct {
	Index      int      `json:"index"`
	OrderID    string   `json:"order_id"`
	PartNumber string   `json:"part_number"`
	Errors     []string `json:"errors"`
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule the orders of a plan file",
		Long: `Validates the plan's orders, schedules the valid ones on the plan's machines
inside the calendar's shift windows and prints the chart payload.

When --permission is given the requested profile is resolved against those
permission codes the same way the API does, and a caller without run access
is refused.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.planPath, "plan", "p", "", "path to the YAML plan file")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "scheduling profile (basic, advanced); overrides the plan")
	cmd.Flags().StringSliceVar(&opts.permissions, "permission", nil, "permission codes of the caller (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "json", "output format (json, summary)")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runRun(cmd *cobra.Command, opts *runOptions) error {
	if opts.output != "json" && opts.output != "summary" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}
	plan, err := loadPlan(opts.planPath)
	if err != nil {
		return err
	}

	requested := plan.Profile
	if opts.profile != "" {
		requested = scheduling.Profile(opts.profile)
	}
	if requested == "" {
		requested = scheduling.ProfileAdvanced
	}
	if !requested.IsValid() {
		return fmt.Errorf("profile %q: must be one of basic, advanced", requested)
	}
	profile := requested
	if len(opts.permissions) > 0 {
		access := scheduling.RunAccessFromPermissions(opts.permissions)
		if !access.Any() {
			return apperrors.ErrRunAccessDenied
		}
		profile = scheduling.ResolveProfileForExecution(requested, access)
	}

	loc, err := plan.location()
	if err != nil {
		return err
	}
	start, err := plan.start(loc, time.Now())
	if err != nil {
		return err
	}
	cfg, err := plan.engineConfig()
	if err != nil {
		return err
	}
	cfg = profile.Apply(cfg).Normalized()

	orders := plan.orders()
	if len(orders) > cfg.BatchSizeLimit {
		return &exitError{code: exitBatchTooLarge, err: apperrors.NewBatchTooLargeError(len(orders), cfg.BatchSizeLimit)}
	}
	valid, rejected := validateOrders(orders)
	if len(valid) == 0 {
		return apperrors.ErrNoValidOrders
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.Component("schedctl")
	first := calendar.NewDate(start).AddDays(-1)
	last := calendar.NewDate(start).AddDays(cfg.HorizonDays + 1)
	cal, err := calendar.Load(ctx, &plan.Calendar, first, last, calendar.Options{Location: loc, Logger: log})
	if err != nil {
		return fmt.Errorf("load calendar: %w", err)
	}

	machines := plan.machines()
	engine := scheduling.NewEngine(cfg, cal, scheduling.WithLogger(log))
	result, err := engine.Schedule(ctx, scheduling.SortOrders(valid), machines, start)
	if err != nil {
		if apperrors.IsBatchTooLarge(err) {
			return &exitError{code: exitBatchTooLarge, err: err}
		}
		return fmt.Errorf("scheduling failed: %w", err)
	}
	if result.TimedOut {
		log.Warnf("%s: %d orders unprocessed", apperrors.ErrSchedulingTimeout, len(result.Unprocessed))
	}

	data, machineData := chart.Build(result, chart.Options{
		Machines:    machines,
		Config:      cfg,
		Profile:     profile,
		GeneratedAt: time.Now().UTC(),
	})
	report := runReport{
		RequestedProfile: requested,
		Profile:          profile,
		Rejected:         rejected,
		Chart:            data,
		Machines:         machineData,
		Outcome:          result.Outcome,
		Unscheduled:      result.Unscheduled,
		Unprocessed:      result.Unprocessed,
	}

	if opts.output == "summary" {
		return printSummary(cmd.OutOrStdout(), report, result)
	}
	return writeJSON(cmd.OutOrStdout(), report)
}

// validateOrders splits orders into the valid ones and rejection reports
func validateOrders(orders []scheduling.Order) ([]scheduling.Order, []rejectedOrder) {
	validator := scheduling.NewOrderValidator(nil)
	valid := make([]scheduling.Order, 0, len(orders))
	rejected := []rejectedOrder{}
	for i, o := range orders {
		if res := validator.Validate(o); !res.IsValid {
			rejected = append(rejected, rejectedOrder{Index: i, OrderID: o.ID, PartNumber: o.PartNumber, Errors: res.Errors})
			continue
		}
		valid = append(valid, o)
	}
	return valid, rejected
}

func printSummary(w io.Writer, report runReport, result *scheduling.Result) error {
	fmt.Fprintf(w, "Profile:     %s (requested %s)\n", report.Profile, report.RequestedProfile)
	fmt.Fprintf(w, "Outcome:     %s\n", report.Outcome)
	fmt.Fprintf(w, "Horizon:     %s - %s\n", result.HorizonFrom.Format(time.RFC3339), result.HorizonTo.Format(time.RFC3339))
	fmt.Fprintf(w, "Scheduled:   %d\n", len(result.Scheduled))
	fmt.Fprintf(w, "Unscheduled: %d\n", len(result.Unscheduled))
	fmt.Fprintf(w, "Unprocessed: %d\n", len(result.Unprocessed))
	fmt.Fprintf(w, "Rejected:    %d\n", len(report.Rejected))
	for _, m := range report.Machines.Machines {
		fmt.Fprintf(w, "  %-12s %6.1f%% utilized\n", m.Machine, m.UtilizationPercent)
	}
	for _, oc := range result.Unscheduled {
		fmt.Fprintf(w, "  unscheduled %s (%s): %s\n", oc.OrderID, oc.PartNumber, oc.Reason)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
