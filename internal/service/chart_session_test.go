package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"production-scheduler-backend/internal/chart"
	"production-scheduler-backend/internal/database/models"
	apperrors "production-scheduler-backend/internal/errors"
	"production-scheduler-backend/internal/mocks"
	"production-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ChartSessionServiceTestSuite defines the test suite for ChartSessionService
type ChartSessionServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockChartSessionRepositoryInterface
	service  *service.ChartSessionService
	identity service.Identity
}

// SetupTest sets up the test suite
func (suite *ChartSessionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockChartSessionRepositoryInterface(suite.ctrl)
	suite.service = service.NewChartSessionService(suite.repo, validator.New())
	suite.identity = service.Identity{UserID: "u-1", Email: "Planner@Example.com"}
}

// TearDownTest cleans up after each test
func (suite *ChartSessionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ChartSessionServiceTestSuite) validRequest() *service.StoreSessionRequest {
	return &service.StoreSessionRequest{
		SessionID:   "session-1",
		ChartData:   json.RawMessage(`{"tasks":[]}`),
		MachineData: json.RawMessage(`{"machines":[]}`),
	}
}

func (suite *ChartSessionServiceTestSuite) TestStoreSession_Success() {
	suite.repo.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.ChartSession) error {
			suite.Equal("chart_planner@example.com", session.SessionName)
			suite.Equal("u-1", session.UserID)
			suite.Equal("session-1", session.SessionID)
			suite.Equal("week", session.TimelineView)
			suite.JSONEq(`{"tasks":[]}`, string(session.ChartData))
			session.ID = uuid.New()
			session.IsActive = true
			session.CreatedAt = time.Now()
			return nil
		})

	resp, err := suite.service.StoreSession(context.Background(), suite.identity, suite.validRequest())

	suite.Require().NoError(err)
	suite.True(resp.IsActive)
	suite.Equal("chart_planner@example.com", resp.SessionName)
	suite.NotEqual(uuid.Nil, resp.ID)
	suite.JSONEq(`{"machines":[]}`, string(resp.MachineData))
}

func (suite *ChartSessionServiceTestSuite) TestStoreSession_GeneratesSessionID() {
	req := suite.validRequest()
	req.SessionID = "  "
	req.TimelineView = "day"

	suite.repo.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.ChartSession) error {
			_, err := uuid.Parse(session.SessionID)
			suite.NoError(err)
			suite.Equal("day", session.TimelineView)
			return nil
		})

	_, err := suite.service.StoreSession(context.Background(), suite.identity, req)
	suite.NoError(err)
}

func (suite *ChartSessionServiceTestSuite) TestStoreSession_RejectsInput() {
	testCases := []struct {
		name     string
		identity service.Identity
		mutate   func(req *service.StoreSessionRequest)
		check    func(err error)
	}{
		{
			name:     "Missing chart data",
			identity: suite.identity,
			mutate:   func(req *service.StoreSessionRequest) { req.ChartData = nil },
			check: func(err error) {
				suite.Contains(err.Error(), "validation failed")
			},
		},
		{
			name:     "Malformed machine data",
			identity: suite.identity,
			mutate:   func(req *service.StoreSessionRequest) { req.MachineData = json.RawMessage(`{"machines":`) },
			check: func(err error) {
				suite.True(apperrors.IsValidation(err))
			},
		},
		{
			name:     "Unknown timeline view",
			identity: suite.identity,
			mutate:   func(req *service.StoreSessionRequest) { req.TimelineView = "year" },
			check: func(err error) {
				suite.ErrorIs(err, apperrors.ErrInvalidTimelineView)
			},
		},
		{
			name:     "Missing email",
			identity: service.Identity{UserID: "u-1"},
			mutate:   func(req *service.StoreSessionRequest) {},
			check: func(err error) {
				suite.ErrorIs(err, apperrors.ErrUserEmailNotFound)
			},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := suite.validRequest()
			tc.mutate(req)

			resp, err := suite.service.StoreSession(context.Background(), tc.identity, req)

			suite.Nil(resp)
			suite.Require().Error(err)
			tc.check(err)
		})
	}
}

func (suite *ChartSessionServiceTestSuite) TestStoreSession_RepositoryFailure() {
	dbErr := errors.New("connection reset")
	suite.repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(dbErr)

	resp, err := suite.service.StoreSession(context.Background(), suite.identity, suite.validRequest())

	suite.Nil(resp)
	suite.True(apperrors.IsPersistence(err))
	suite.ErrorIs(err, dbErr)
}

func (suite *ChartSessionServiceTestSuite) TestStoreChart_EncodesPayloads() {
	data := &chart.Data{Tasks: []chart.Task{{ID: "VMC 1-0-0", Machine: "VMC 1", Pieces: 10}}}
	machines := &chart.MachineData{Machines: []chart.MachineLoad{{Machine: "VMC 1"}}, PersonsPerShift: 2}

	suite.repo.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.ChartSession) error {
			var decoded chart.Data
			suite.Require().NoError(json.Unmarshal(session.ChartData, &decoded))
			suite.Len(decoded.Tasks, 1)
			suite.Equal("VMC 1", decoded.Tasks[0].Machine)
			suite.Contains(string(session.MachineData), `"personsPerShift":2`)
			suite.Equal("month", session.TimelineView)
			return nil
		})

	_, err := suite.service.StoreChart(context.Background(), suite.identity, "s-1", chart.ViewMonth, data, machines)
	suite.NoError(err)
}

func (suite *ChartSessionServiceTestSuite) TestGetActiveSession() {
	suite.Run("Found", func() {
		suite.repo.EXPECT().
			GetActive(gomock.Any(), "chart_planner@example.com").
			Return(&models.ChartSession{SessionName: "chart_planner@example.com", SessionID: "s-9", IsActive: true}, nil)

		resp, err := suite.service.GetActiveSession(context.Background(), " planner@example.com ")

		suite.Require().NoError(err)
		suite.Equal("s-9", resp.SessionID)
		suite.True(resp.IsActive)
	})

	suite.Run("Not found", func() {
		suite.repo.EXPECT().GetActive(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.GetActiveSession(context.Background(), "planner@example.com")

		suite.ErrorIs(err, apperrors.ErrChartSessionNotFound)
	})

	suite.Run("Database failure", func() {
		suite.repo.EXPECT().GetActive(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := suite.service.GetActiveSession(context.Background(), "planner@example.com")

		suite.True(apperrors.IsPersistence(err))
	})
}

func (suite *ChartSessionServiceTestSuite) TestListSessions_ClampsLimit() {
	synced := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	suite.repo.EXPECT().
		ListBySessionName(gomock.Any(), "chart_planner@example.com", 20).
		Return([]models.ChartSession{
			{SessionID: "s-2", TimelineView: "week", SyncTimestamp: synced, IsActive: true},
			{SessionID: "s-1", TimelineView: "day", SyncTimestamp: synced.Add(-time.Hour)},
		}, nil)

	summaries, err := suite.service.ListSessions(context.Background(), "planner@example.com", 500)

	suite.Require().NoError(err)
	suite.Len(summaries, 2)
	suite.True(summaries[0].IsActive)
	suite.False(summaries[1].IsActive)
	suite.Equal("2025-01-06T08:00:00Z", summaries[0].SyncTimestamp)
}

func TestChartSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChartSessionServiceTestSuite))
}
