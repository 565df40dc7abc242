package repository

import (
	"context"
	"testing"
	"time"

	"production-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ChartSessionRepositoryTestSuite tests the ChartSessionRepository
type ChartSessionRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *ChartSessionRepository
	factories *testutils.FactorySet
	ctx       context.Context
}

// SetupTest runs before each test
func (suite *ChartSessionRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewChartSessionRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *ChartSessionRepositoryTestSuite) TestStore_FirstSessionIsActive() {
	session := suite.factories.ChartSession.Create("a@example.com")

	err := suite.repo.Store(suite.ctx, session)

	suite.Require().NoError(err)
	suite.True(session.IsActive)

	active, err := suite.repo.GetActive(suite.ctx, "chart_a@example.com")
	suite.Require().NoError(err)
	suite.Equal(session.ID, active.ID)
	suite.JSONEq(`{"tasks":[]}`, string(active.ChartData))
}

func (suite *ChartSessionRepositoryTestSuite) TestStore_DeactivatesPreviousSession() {
	first := suite.factories.ChartSession.Create("a@example.com")
	suite.Require().NoError(suite.repo.Store(suite.ctx, first))

	second := suite.factories.ChartSession.Create("a@example.com")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	suite.Require().NoError(suite.repo.Store(suite.ctx, second))

	active, err := suite.repo.GetActive(suite.ctx, "chart_a@example.com")
	suite.Require().NoError(err)
	suite.Equal(second.ID, active.ID)

	var activeCount int64
	suite.Require().NoError(suite.db.Table("chart_sessions").
		Where("session_name = ? AND is_active = ?", "chart_a@example.com", true).
		Count(&activeCount).Error)
	suite.Equal(int64(1), activeCount)

	sessions, err := suite.repo.ListBySessionName(suite.ctx, "chart_a@example.com", 10)
	suite.Require().NoError(err)
	suite.Require().Len(sessions, 2)
	suite.Equal(second.ID, sessions[0].ID)
	suite.False(sessions[1].IsActive)
}

func (suite *ChartSessionRepositoryTestSuite) TestStore_UsersDoNotInterfere() {
	suite.Require().NoError(suite.repo.Store(suite.ctx, suite.factories.ChartSession.Create("a@example.com")))
	suite.Require().NoError(suite.repo.Store(suite.ctx, suite.factories.ChartSession.Create("b@example.com")))

	_, err := suite.repo.GetActive(suite.ctx, "chart_a@example.com")
	suite.NoError(err)
	_, err = suite.repo.GetActive(suite.ctx, "chart_b@example.com")
	suite.NoError(err)
}

func (suite *ChartSessionRepositoryTestSuite) TestGetActive_NotFound() {
	_, err := suite.repo.GetActive(suite.ctx, "chart_nobody@example.com")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ChartSessionRepositoryTestSuite) TestListBySessionName_Limit() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Store(suite.ctx, suite.factories.ChartSession.Create("a@example.com")))
	}

	sessions, err := suite.repo.ListBySessionName(suite.ctx, "chart_a@example.com", 2)

	suite.Require().NoError(err)
	suite.Len(sessions, 2)
}

// Run the test suite
func TestChartSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ChartSessionRepositoryTestSuite))
}
