package routes_test

import (
	"context"
	"net/http"
	"testing"

	"production-scheduler-backend/internal/api/routes"
	"production-scheduler-backend/internal/auth"
	"production-scheduler-backend/internal/config"
	"production-scheduler-backend/internal/repository"
	"production-scheduler-backend/internal/scheduling"
	"production-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Environment:         "test",
		Timezone:            "UTC",
		JWTSecret:           testSecret,
		AllowedOrigins:      []string{"http://localhost:3000"},
		MachinePrefix:       "VMC",
		MachinePoolSize:     2,
		MachineOperatorTeam: "production",
		SetupWindowStart:    "06:00",
		SetupWindowEnd:      "22:00",
		PlanningHorizonDays: 3,
	}
}

func bearer(t *testing.T, email string, permissions ...string) map[string]string {
	t.Helper()
	svc, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: testSecret})
	require.NoError(t, err)
	token, err := svc.GenerateJWT("u-1", email, permissions)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func newServer(t *testing.T) *testutils.APIClient {
	t.Setenv("JWT_SECRET", testSecret)
	db := testutils.NewSQLiteDB(t)

	factories := testutils.NewFactorySet()
	require.NoError(t, repository.NewDailyScheduleRepository(db).Upsert(context.Background(), factories.DailySchedule.Create("E100", "2025-01-06")))

	router, err := routes.SetupRoutes(db, testConfig())
	require.NoError(t, err)
	return testutils.NewAPIClient(router)
}

func TestHealthRoutes(t *testing.T) {
	srv := newServer(t)

	var health struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	recorder := srv.Get("/health", nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &health)
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "healthy", health.Services["database"])
	assert.Equal(t, "empty", health.Services["calendar"])

	recorder = srv.Get("/health/live", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "nosniff", recorder.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestHealthWithCalendarLoaded(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	factories := testutils.NewFactorySet()
	require.NoError(t, repository.NewCalendarRepository(db).UpsertTemplate(context.Background(), factories.ShiftTemplate.WithCode("day")))
	srv := testutils.NewAPIClient(routes.SetupHealthRoutes(db))

	var health struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	recorder := srv.Get("/health", nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "1 shift templates", health.Services["calendar"])
}

func TestSetupHealthRoutes(t *testing.T) {
	srv := testutils.NewAPIClient(routes.SetupHealthRoutes(testutils.NewSQLiteDB(t)))

	recorder := srv.Get("/health/ready", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"ready":true`)

	recorder = srv.Get("/api/v1/schedule", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAPIRequiresAuthentication(t *testing.T) {
	srv := newServer(t)

	recorder := srv.Get("/api/v1/schedule?employee_code=E100&from=2025-01-06&to=2025-01-07", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Authorization header is required")

	recorder = srv.Get("/api/v1/chart-data", map[string]string{"Authorization": "Bearer not-a-token"})
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Invalid token")
}

func TestScheduleRoute(t *testing.T) {
	srv := newServer(t)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			EmployeeCode string `json:"employee_code"`
			Schedule     []struct {
				Date      string `json:"date"`
				ShiftName string `json:"shift_name"`
			} `json:"schedule"`
		} `json:"data"`
	}
	recorder := srv.Get("/api/v1/schedule?employee_code=E100&from=2025-01-06&to=2025-01-07",
		bearer(t, "viewer@example.com", scheduling.PermissionView))
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Schedule, 1)
	assert.Equal(t, "2025-01-06", resp.Data.Schedule[0].Date)
	assert.Equal(t, "Morning", resp.Data.Schedule[0].ShiftName)
}

func TestChartDataRoutes(t *testing.T) {
	srv := newServer(t)
	editor := bearer(t, "editor@example.com", scheduling.PermissionEdit)

	recorder := srv.Get("/api/v1/chart-data", editor)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "chart session")

	body := map[string]interface{}{
		"session_id":   "s-1",
		"chart_data":   map[string]interface{}{"tasks": []interface{}{}},
		"machine_data": map[string]interface{}{"machines": []interface{}{}},
	}
	recorder = srv.Post("/api/v1/chart-data", body,
		bearer(t, "viewer@example.com", scheduling.PermissionView))
	testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Insufficient permissions")

	recorder = srv.Post("/api/v1/chart-data", body, editor)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	body["session_id"] = "s-2"
	recorder = srv.Post("/api/v1/chart-data", body, editor)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var active struct {
		Data struct {
			SessionID   string `json:"session_id"`
			SessionName string `json:"session_name"`
			IsActive    bool   `json:"is_active"`
		} `json:"data"`
	}
	recorder = srv.Get("/api/v1/chart-data", editor)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &active)
	assert.Equal(t, "s-2", active.Data.SessionID)
	assert.Equal(t, "chart_editor@example.com", active.Data.SessionName)
	assert.True(t, active.Data.IsActive)

	var history struct {
		Data []struct {
			SessionID string `json:"session_id"`
			IsActive  bool   `json:"is_active"`
		} `json:"data"`
	}
	recorder = srv.Get("/api/v1/chart-data/history", editor)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &history)
	require.Len(t, history.Data, 2)
	activeCount := 0
	for _, s := range history.Data {
		if s.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestSchedulerRoutes(t *testing.T) {
	srv := newServer(t)

	var access struct {
		Data struct {
			Disabled bool `json:"disabled"`
		} `json:"data"`
	}
	recorder := srv.Get("/api/v1/scheduler/access",
		bearer(t, "viewer@example.com", scheduling.PermissionView))
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &access)
	assert.True(t, access.Data.Disabled)

	orders := map[string]interface{}{
		"orders": []map[string]interface{}{
			{"partNumber": "P-100", "orderQuantity": 5, "priority": "High", "dueDate": "2030-01-10"},
		},
	}
	recorder = srv.Post("/api/v1/scheduler/run", orders,
		bearer(t, "viewer@example.com", scheduling.PermissionView))
	testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "")

	var run struct {
		Success bool `json:"success"`
		Data    struct {
			Profile string `json:"profile"`
			Session struct {
				SessionName string `json:"session_name"`
			} `json:"session"`
		} `json:"data"`
	}
	recorder = srv.Post("/api/v1/scheduler/run", orders,
		bearer(t, "creator@example.com", scheduling.PermissionCreate))
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &run)
	assert.True(t, run.Success)
	assert.Equal(t, string(scheduling.ProfileBasic), run.Data.Profile)
	assert.Equal(t, "chart_creator@example.com", run.Data.Session.SessionName)
}

func TestUnknownRoute(t *testing.T) {
	srv := newServer(t)

	recorder := srv.Get("/api/v2/nothing", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Endpoint not found")
}
