//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"hackathon-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SettingsRepositoryTestSuite tests the SettingsRepository
type SettingsRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SettingsRepository
	ctx           context.Context
}

func (suite *SettingsRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSettingsRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

func (suite *SettingsRepositoryTestSuite) TearDownSuite() { suite.baseTestSuite.TeardownTestSuite() }
func (suite *SettingsRepositoryTestSuite) SetupTest()     { suite.baseTestSuite.SetupTest() }
func (suite *SettingsRepositoryTestSuite) TearDownTest()  { suite.baseTestSuite.TearDownTest() }

func (suite *SettingsRepositoryTestSuite) TestDefaults() {
	s, err := suite.repo.Get(suite.ctx)
	suite.Require().NoError(err)
	suite.False(s.Enabled)
	suite.False(s.IsScheduled)
}

func (suite *SettingsRepositoryTestSuite) TestEnableClearsSchedule() {
	_, err := suite.repo.ScheduleRegistration(suite.ctx, time.Now().Add(time.Hour), true, "admin@example.com")
	suite.Require().NoError(err)

	s, err := suite.repo.SetRegistrationEnabled(suite.ctx, true, "admin@example.com")
	suite.Require().NoError(err)
	suite.True(s.Enabled)
	suite.False(s.IsScheduled)
	suite.Nil(s.ScheduledChange)
	suite.Nil(s.ScheduledState)
	suite.Equal("admin@example.com", s.UpdatedBy)
}

func (suite *SettingsRepositoryTestSuite) TestProblemsReleasedKeepsRegistration() {
	_, err := suite.repo.SetRegistrationEnabled(suite.ctx, true, "a")
	suite.Require().NoError(err)

	s, err := suite.repo.SetProblemsReleased(suite.ctx, true, "a")
	suite.Require().NoError(err)
	suite.True(s.ProblemsReleased)
	suite.True(s.Enabled)
}

func (suite *SettingsRepositoryTestSuite) TestApplyDueScheduleOnlyWhenDue() {
	at := time.Now().Add(time.Hour)
	_, err := suite.repo.ScheduleRegistration(suite.ctx, at, true, "a")
	suite.Require().NoError(err)

	_, applied, err := suite.repo.ApplyDueSchedule(suite.ctx, time.Now())
	suite.NoError(err)
	suite.False(applied)

	s, applied, err := suite.repo.ApplyDueSchedule(suite.ctx, at.Add(time.Second))
	suite.Require().NoError(err)
	suite.True(applied)
	suite.True(s.Enabled)
	suite.False(s.IsScheduled)
	suite.Nil(s.ScheduledChange)
	suite.Equal(SchedulerActor, s.UpdatedBy)
}

func (suite *SettingsRepositoryTestSuite) TestApplyDueScheduleExactlyOnce() {
	_, err := suite.repo.SetRegistrationEnabled(suite.ctx, true, "a")
	suite.Require().NoError(err)
	_, err = suite.repo.ScheduleRegistration(suite.ctx, time.Now().Add(-time.Minute), false, "a")
	suite.Require().NoError(err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := suite.repo.ApplyDueSchedule(suite.ctx, time.Now())
			suite.NoError(err)
			if ok {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, applied)
	s, err := suite.repo.Get(suite.ctx)
	suite.Require().NoError(err)
	suite.False(s.Enabled)
}

func (suite *SettingsRepositoryTestSuite) TestWatch() {
	ctx, cancel := context.WithTimeout(suite.ctx, 20*time.Second)
	defer cancel()

	ch, err := suite.repo.Watch(ctx)
	suite.Require().NoError(err)

	_, err = suite.repo.SetProblemsReleased(suite.ctx, true, "a")
	suite.Require().NoError(err)

	select {
	case s := <-ch:
		suite.True(s.ProblemsReleased)
	case <-ctx.Done():
		suite.Fail("no change event received")
	}
}

func TestSettingsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositoryTestSuite))
}
