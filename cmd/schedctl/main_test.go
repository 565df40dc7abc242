package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlan = `
timezone: UTC
start_at: "2025-01-06T06:00:00Z"
profile: advanced
config:
  horizon_days: 3
  batch_size_limit: %LIMIT%
machines:
  - name: M1
    operator_team: T1
calendar:
  templates:
    - id: day
      name: Day
      team_label: T1
  rotation_steps:
    - template_id: day
      step_order: 0
      shift_name: Day
      start_time: "06:00"
      end_time: "14:00"
  assignments:
    - subject_code: T1
      template_id: day
      anchor_date: "2025-01-06"
  holidays:
    - date: "2025-01-08"
      name: Inventory
orders:
  - id: A
    part_number: P-100
    quantity: 10
    priority: High
    due_date: "2025-01-07"
    setup_minutes: 30
    cycle_minutes: 5
  - id: B
    part_number: "  "
    quantity: 0
    priority: Urgent
    due_date: "2025-01-07"
`

func writePlan(t *testing.T, limit string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	content := bytes.ReplaceAll([]byte(testPlan), []byte("%LIMIT%"), []byte(limit))
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func runCmd(args ...string) (string, string, int) {
	cmd := newRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	code := execute(cmd)
	return stdout.String(), stderr.String(), code
}

func TestVersionCmd(t *testing.T) {
	out, _, code := runCmd("version")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "schedctl dev")
	assert.Contains(t, out, "commit: none")
}

func TestRootCmdHelp(t *testing.T) {
	out, _, code := runCmd("--help")

	assert.Equal(t, exitOK, code)
	for _, sub := range []string{"run", "validate", "resolve", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestRunCmd_SchedulesValidOrders(t *testing.T) {
	plan := writePlan(t, "100")

	out, _, code := runCmd("run", "--plan", plan)
	require.Equal(t, exitOK, code)

	var report struct {
		Profile  string `json:"profile"`
		Outcome  string `json:"outcome"`
		Rejected []struct {
			OrderID string   `json:"order_id"`
			Errors  []string `json:"errors"`
		} `json:"rejected"`
		Chart struct {
			Tasks []struct {
				Machine string `json:"machine"`
			} `json:"tasks"`
			SchedulingResults struct {
				Scheduled int `json:"scheduled"`
			} `json:"schedulingResults"`
		} `json:"chart"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "advanced", report.Profile)
	assert.Equal(t, "completed", report.Outcome)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "B", report.Rejected[0].OrderID)
	assert.Len(t, report.Rejected[0].Errors, 3)
	assert.Equal(t, 1, report.Chart.SchedulingResults.Scheduled)
	require.NotEmpty(t, report.Chart.Tasks)
	assert.Equal(t, "M1", report.Chart.Tasks[0].Machine)
}

func TestRunCmd_DowngradesProfileForBasicAccess(t *testing.T) {
	plan := writePlan(t, "100")

	out, _, code := runCmd("run", "-p", plan, "--permission", "schedule.run.basic")
	require.Equal(t, exitOK, code)

	var report struct {
		RequestedProfile string `json:"requested_profile"`
		Profile          string `json:"profile"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "advanced", report.RequestedProfile)
	assert.Equal(t, "basic", report.Profile)
}

func TestRunCmd_DeniedWithoutRunAccess(t *testing.T) {
	plan := writePlan(t, "100")

	_, errOut, code := runCmd("run", "-p", plan, "--permission", "schedule.view")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "not permitted to run the scheduler")
}

func TestRunCmd_BatchTooLarge(t *testing.T) {
	plan := writePlan(t, "1")

	_, errOut, code := runCmd("run", "-p", plan)

	assert.Equal(t, exitBatchTooLarge, code)
	assert.Contains(t, errOut, "exceeds")
}

func TestRunCmd_Summary(t *testing.T) {
	plan := writePlan(t, "100")

	out, _, code := runCmd("run", "-p", plan, "-o", "summary")

	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Outcome:     completed")
	assert.Contains(t, out, "Rejected:    1")
	assert.Contains(t, out, "M1")
}

func TestRunCmd_UnknownOutput(t *testing.T) {
	plan := writePlan(t, "100")

	_, errOut, code := runCmd("run", "-p", plan, "-o", "xml")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, `unknown output format "xml"`)
}

func TestRunCmd_MissingPlanFlag(t *testing.T) {
	_, errOut, code := runCmd("run")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "plan")
}

func TestValidateCmd(t *testing.T) {
	plan := writePlan(t, "100")

	out, _, code := runCmd("validate", "-p", plan)

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, out, "B (")
	assert.Contains(t, out, "Order quantity must be greater than 0")
	assert.Contains(t, out, "Priority must be one of High, Normal, Low")
	assert.Contains(t, out, "1 valid, 1 invalid")
}

func TestResolveCmd(t *testing.T) {
	plan := writePlan(t, "100")

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "rotation shift",
			args:     []string{"resolve", "T1", "2025-01-07", "-p", plan},
			contains: []string{`"kind": "shift"`, `"origin": "rotation"`, `"start": "2025-01-07T06:00:00Z"`},
		},
		{
			name:     "holiday",
			args:     []string{"resolve", "T1", "2025-01-08", "-p", plan},
			contains: []string{`"kind": "holiday"`, `"holiday": "Inventory"`},
		},
		{
			name:     "unassigned subject",
			args:     []string{"resolve", "T9", "2025-01-07", "-p", plan},
			contains: []string{`"kind": "none"`},
		},
		{
			name:     "window list",
			args:     []string{"resolve", "T1", "2025-01-06", "-p", plan, "--days", "3"},
			contains: []string{`"date": "2025-01-06"`, `"date": "2025-01-07"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, code := runCmd(tt.args...)
			require.Equal(t, exitOK, code)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestResolveCmd_Errors(t *testing.T) {
	plan := writePlan(t, "100")

	_, errOut, code := runCmd("resolve", "T1", "07.01.2025", "-p", plan)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "expected YYYY-MM-DD")

	_, errOut, code = runCmd("resolve", "T1", "-p", plan)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "accepts 2 arg(s)")
}
