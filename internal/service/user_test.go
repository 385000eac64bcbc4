package service_test

import (
	"context"
	"errors"
	"testing"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/validation"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockIdP      *mocks.MockProvider
	mockAudit    *mocks.MockRecorder
	userService  *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockIdP = mocks.NewMockProvider(suite.ctrl)
	suite.mockAudit = mocks.NewMockRecorder(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockIdP, validation.New(), suite.mockAudit)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestUpsertCreatesAccount() {
	ctx := context.Background()
	acc := &identity.Account{UID: "uid-1", Email: "new@example.com"}

	gomock.InOrder(
		suite.mockIdP.EXPECT().GetUserByEmail(ctx, "new@example.com").Return(nil, apperrors.ErrAccountNotFound),
		suite.mockIdP.EXPECT().CreateUser(ctx, "new@example.com", "s3cret-pass").Return(acc, nil),
		suite.mockIdP.EXPECT().SetRole(ctx, "uid-1", models.RoleCoordinator).Return(nil),
		suite.mockUserRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil),
	)
	suite.mockAudit.EXPECT().Log(ctx, models.ActionUserCreated, models.LogLevelInfo, gomock.Any())

	user, created, err := suite.userService.UpsertUser(ctx, &service.UpsertUserRequest{
		Email:    " new@example.com ",
		Password: "s3cret-pass",
		Role:     "Coordinator",
	})

	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal("uid-1", user.UID)
	suite.Equal(models.RoleCoordinator, user.Role)
}

func (suite *UserServiceTestSuite) TestUpsertChangesRoleOfExistingAccount() {
	ctx := context.Background()
	acc := &identity.Account{UID: "uid-2", Email: "judge@example.com"}

	suite.mockIdP.EXPECT().GetUserByEmail(ctx, "judge@example.com").Return(acc, nil)
	suite.mockIdP.EXPECT().GetRole(ctx, "uid-2").Return(models.RoleVolunteer, nil)
	suite.mockIdP.EXPECT().SetRole(ctx, "uid-2", models.RoleJudge).Return(nil)
	suite.mockUserRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		suite.Equal("+919876543210", u.Phone)
		return nil
	})
	suite.mockAudit.EXPECT().Log(ctx, models.ActionUserRoleUpdated, models.LogLevelInfo, gomock.Any()).
		Do(func(_ context.Context, _ string, _ models.LogLevel, details map[string]any) {
			suite.Equal(models.RoleVolunteer, details["previousRole"])
		})

	_, created, err := suite.userService.UpsertUser(ctx, &service.UpsertUserRequest{
		Email: "judge@example.com",
		Role:  models.RoleJudge,
		Phone: "+919876543210",
	})

	suite.Require().NoError(err)
	suite.False(created)
}

func (suite *UserServiceTestSuite) TestUpsertRejectsUnknownRole() {
	_, _, err := suite.userService.UpsertUser(context.Background(), &service.UpsertUserRequest{
		Email: "x@example.com",
		Role:  "overlord",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidRole)
}

func (suite *UserServiceTestSuite) TestUpsertValidatesRequest() {
	_, _, err := suite.userService.UpsertUser(context.Background(), &service.UpsertUserRequest{
		Email: "not-an-email",
		Role:  models.RoleAdmin,
		Phone: "123",
	})

	verrs, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Contains(verrs.Fields(), "email")
	suite.Contains(verrs.Fields(), "phone")
}

func (suite *UserServiceTestSuite) TestUpsertRevertsClaimWhenStoreFails() {
	ctx := context.Background()
	acc := &identity.Account{UID: "uid-3", Email: "vol@example.com"}
	storeErr := errors.New("store down")

	gomock.InOrder(
		suite.mockIdP.EXPECT().GetUserByEmail(ctx, "vol@example.com").Return(acc, nil),
		suite.mockIdP.EXPECT().GetRole(ctx, "uid-3").Return(models.RoleVolunteer, nil),
		suite.mockIdP.EXPECT().SetRole(ctx, "uid-3", models.RoleAdmin).Return(nil),
		suite.mockUserRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(storeErr),
		suite.mockIdP.EXPECT().SetRole(ctx, "uid-3", models.RoleVolunteer).Return(nil),
	)

	user, _, err := suite.userService.UpsertUser(ctx, &service.UpsertUserRequest{
		Email: "vol@example.com",
		Role:  models.RoleAdmin,
	})

	suite.Nil(user)
	suite.ErrorIs(err, storeErr)
}

func (suite *UserServiceTestSuite) TestUpsertDeletesNewAccountWhenStoreFails() {
	ctx := context.Background()
	acc := &identity.Account{UID: "uid-6", Email: "fresh@example.com"}
	storeErr := errors.New("store down")

	gomock.InOrder(
		suite.mockIdP.EXPECT().GetUserByEmail(ctx, "fresh@example.com").Return(nil, apperrors.ErrAccountNotFound),
		suite.mockIdP.EXPECT().CreateUser(ctx, "fresh@example.com", "s3cret-pass").Return(acc, nil),
		suite.mockIdP.EXPECT().SetRole(ctx, "uid-6", models.RoleJudge).Return(nil),
		suite.mockUserRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(storeErr),
		suite.mockIdP.EXPECT().DeleteUser(ctx, "uid-6").Return(nil),
	)

	user, created, err := suite.userService.UpsertUser(ctx, &service.UpsertUserRequest{
		Email:    "fresh@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleJudge,
	})

	suite.Nil(user)
	suite.False(created)
	suite.ErrorIs(err, storeErr)
}

func (suite *UserServiceTestSuite) TestUpsertDeletesNewAccountWhenClaimWriteFails() {
	ctx := context.Background()
	acc := &identity.Account{UID: "uid-7", Email: "fresh@example.com"}
	idpErr := errors.New("claims rejected")

	suite.mockIdP.EXPECT().GetUserByEmail(ctx, gomock.Any()).Return(nil, apperrors.ErrAccountNotFound)
	suite.mockIdP.EXPECT().CreateUser(ctx, "fresh@example.com", "s3cret-pass").Return(acc, nil)
	suite.mockIdP.EXPECT().SetRole(ctx, "uid-7", models.RoleJudge).Return(idpErr)
	suite.mockIdP.EXPECT().DeleteUser(ctx, "uid-7").Return(nil)

	_, _, err := suite.userService.UpsertUser(ctx, &service.UpsertUserRequest{
		Email:    "fresh@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleJudge,
	})

	suite.ErrorIs(err, idpErr)
}

func (suite *UserServiceTestSuite) TestUpsertLogsDivergenceWhenNewAccountDeleteFails() {
	ctx := context.Background()
	acc := &identity.Account{UID: "uid-8", Email: "fresh@example.com"}

	suite.mockIdP.EXPECT().GetUserByEmail(ctx, gomock.Any()).Return(nil, apperrors.ErrAccountNotFound)
	suite.mockIdP.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).Return(acc, nil)
	suite.mockIdP.EXPECT().SetRole(ctx, "uid-8", models.RoleJudge).Return(nil)
	suite.mockUserRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("store down"))
	suite.mockIdP.EXPECT().DeleteUser(ctx, "uid-8").Return(errors.New("idp down"))
	suite.mockAudit.EXPECT().Log(ctx, models.ActionRoleDivergence, models.LogLevelError, gomock.Any()).
		Do(func(_ context.Context, _ string, _ models.LogLevel, details map[string]any) {
			suite.Equal("uid-8", details["uid"])
			suite.Equal("store down", details["storeError"])
			suite.Equal("idp down", details["deleteError"])
		})

	_, _, err := suite.userService.UpsertUser(ctx, &service.UpsertUserRequest{
		Email:    "fresh@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleJudge,
	})

	suite.Error(err)
}

func (suite *UserServiceTestSuite) TestUpsertLogsDivergenceWhenRevertFails() {
	ctx := context.Background()
	acc := &identity.Account{UID: "uid-4", Email: "vol@example.com"}

	suite.mockIdP.EXPECT().GetUserByEmail(ctx, gomock.Any()).Return(acc, nil)
	suite.mockIdP.EXPECT().GetRole(ctx, "uid-4").Return(models.Role(""), nil)
	suite.mockIdP.EXPECT().SetRole(ctx, "uid-4", models.RoleAdmin).Return(nil)
	suite.mockUserRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("store down"))
	suite.mockIdP.EXPECT().SetRole(ctx, "uid-4", models.Role("")).Return(errors.New("idp down"))
	suite.mockAudit.EXPECT().Log(ctx, models.ActionRoleDivergence, models.LogLevelError, gomock.Any()).
		Do(func(_ context.Context, _ string, _ models.LogLevel, details map[string]any) {
			suite.Equal(models.RoleAdmin, details["claimRole"])
			suite.Equal("store down", details["storeError"])
			suite.Equal("idp down", details["revertError"])
		})

	_, _, err := suite.userService.UpsertUser(ctx, &service.UpsertUserRequest{
		Email: "vol@example.com",
		Role:  models.RoleAdmin,
	})

	suite.Error(err)
}

func (suite *UserServiceTestSuite) TestUpsertStopsWhenClaimWriteFails() {
	ctx := context.Background()
	acc := &identity.Account{UID: "uid-5", Email: "vol@example.com"}
	idpErr := apperrors.NewUpstreamError("identity provider", errors.New("timeout"))

	suite.mockIdP.EXPECT().GetUserByEmail(ctx, gomock.Any()).Return(acc, nil)
	suite.mockIdP.EXPECT().GetRole(ctx, "uid-5").Return(models.RoleVolunteer, nil)
	suite.mockIdP.EXPECT().SetRole(ctx, "uid-5", models.RoleJudge).Return(idpErr)
	suite.mockUserRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	_, _, err := suite.userService.UpsertUser(ctx, &service.UpsertUserRequest{
		Email: "vol@example.com",
		Role:  models.RoleJudge,
	})

	suite.True(apperrors.IsUpstream(err))
}

func (suite *UserServiceTestSuite) TestDeleteUser() {
	ctx := context.Background()

	gomock.InOrder(
		suite.mockIdP.EXPECT().DeleteUser(ctx, "uid-6").Return(nil),
		suite.mockUserRepo.EXPECT().Delete(ctx, "uid-6").Return(nil),
	)
	suite.mockAudit.EXPECT().Log(ctx, models.ActionUserDeleted, models.LogLevelWarn, gomock.Any())

	suite.NoError(suite.userService.DeleteUser(ctx, "uid-6"))
}

func (suite *UserServiceTestSuite) TestDeleteUserKeepsDocumentWhenAccountDeleteFails() {
	ctx := context.Background()
	idpErr := apperrors.NewUpstreamError("identity provider", errors.New("timeout"))

	suite.mockIdP.EXPECT().DeleteUser(ctx, "uid-7").Return(idpErr)
	suite.mockUserRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := suite.userService.DeleteUser(ctx, "uid-7")

	suite.ErrorIs(err, idpErr)
}

func (suite *UserServiceTestSuite) TestDeleteUserWithoutAccountRemovesDocument() {
	ctx := context.Background()

	suite.mockIdP.EXPECT().DeleteUser(ctx, "uid-8").Return(apperrors.ErrAccountNotFound)
	suite.mockUserRepo.EXPECT().Delete(ctx, "uid-8").Return(nil)
	suite.mockAudit.EXPECT().Log(ctx, models.ActionUserDeleted, models.LogLevelWarn, gomock.Any())

	suite.NoError(suite.userService.DeleteUser(ctx, "uid-8"))
}

func (suite *UserServiceTestSuite) TestDeleteUserUnknownEverywhere() {
	ctx := context.Background()

	suite.mockIdP.EXPECT().DeleteUser(ctx, "ghost").Return(apperrors.ErrAccountNotFound)
	suite.mockUserRepo.EXPECT().Delete(ctx, "ghost").Return(apperrors.ErrUserNotFound)

	err := suite.userService.DeleteUser(ctx, "ghost")

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestDeleteUserLogsDivergenceWhenStoreFails() {
	ctx := context.Background()
	storeErr := errors.New("store down")

	suite.mockIdP.EXPECT().DeleteUser(ctx, "uid-9").Return(nil)
	suite.mockUserRepo.EXPECT().Delete(ctx, "uid-9").Return(storeErr)
	suite.mockAudit.EXPECT().Log(ctx, models.ActionUserDeleteDivergence, models.LogLevelError, gomock.Any())

	err := suite.userService.DeleteUser(ctx, "uid-9")

	suite.ErrorIs(err, storeErr)
	suite.Equal(500, apperrors.HTTPStatus(err))
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
