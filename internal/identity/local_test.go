package identity

import (
	"context"
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testSecret = "0123456789abcdef0123"

type LocalProviderTestSuite struct {
	suite.Suite
	ctx      context.Context
	provider *LocalProvider
}

func (suite *LocalProviderTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.provider = NewLocalProvider(testSecret, time.Hour)
}

func (suite *LocalProviderTestSuite) TestLoginIssuesVerifiableToken() {
	acc, err := suite.provider.Seed(suite.ctx, "Admin@Example.com", "s3cret-pass", models.RoleSuperAdmin)
	suite.Require().NoError(err)

	token, err := suite.provider.Login(suite.ctx, "admin@example.com", "s3cret-pass")
	suite.Require().NoError(err)

	id, err := suite.provider.VerifyToken(suite.ctx, token)
	suite.Require().NoError(err)
	suite.Equal(acc.UID, id.UID)
	suite.Equal("admin@example.com", id.Email)
	suite.Equal(models.RoleSuperAdmin, id.Role)
}

func (suite *LocalProviderTestSuite) TestLoginRejectsWrongPassword() {
	_, err := suite.provider.Seed(suite.ctx, "a@example.com", "right-password", models.RoleAdmin)
	suite.Require().NoError(err)

	_, err = suite.provider.Login(suite.ctx, "a@example.com", "wrong-password")
	suite.True(apperrors.IsAuthentication(err))

	_, err = suite.provider.Login(suite.ctx, "nobody@example.com", "x")
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *LocalProviderTestSuite) TestAccountsWithoutPasswordCannotLogin() {
	_, err := suite.provider.CreateUser(suite.ctx, "judge@example.com", "")
	suite.Require().NoError(err)

	_, err = suite.provider.Login(suite.ctx, "judge@example.com", "")
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *LocalProviderTestSuite) TestRoleLifecycle() {
	acc, err := suite.provider.CreateUser(suite.ctx, "vol@example.com", "pw-123456")
	suite.Require().NoError(err)

	role, err := suite.provider.GetRole(suite.ctx, acc.UID)
	suite.Require().NoError(err)
	suite.Empty(role)

	suite.Require().NoError(suite.provider.SetRole(suite.ctx, acc.UID, models.RoleVolunteer))
	role, err = suite.provider.GetRole(suite.ctx, acc.UID)
	suite.Require().NoError(err)
	suite.Equal(models.RoleVolunteer, role)

	found, err := suite.provider.GetUserByEmail(suite.ctx, " VOL@example.com ")
	suite.Require().NoError(err)
	suite.Equal(acc.UID, found.UID)
	suite.Equal(models.RoleVolunteer, found.Role)
}

func (suite *LocalProviderTestSuite) TestCreateDuplicateEmail() {
	_, err := suite.provider.CreateUser(suite.ctx, "dup@example.com", "")
	suite.Require().NoError(err)

	_, err = suite.provider.CreateUser(suite.ctx, "DUP@example.com", "")
	suite.True(apperrors.IsConflict(err))
}

func (suite *LocalProviderTestSuite) TestDeleteUser() {
	acc, err := suite.provider.CreateUser(suite.ctx, "gone@example.com", "")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.provider.DeleteUser(suite.ctx, acc.UID))
	suite.ErrorIs(suite.provider.DeleteUser(suite.ctx, acc.UID), apperrors.ErrAccountNotFound)

	_, err = suite.provider.GetUserByEmail(suite.ctx, "gone@example.com")
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.ErrorIs(suite.provider.SetRole(suite.ctx, acc.UID, models.RoleAdmin), apperrors.ErrAccountNotFound)
}

func (suite *LocalProviderTestSuite) TestSeedIsIdempotent() {
	first, err := suite.provider.Seed(suite.ctx, "root@example.com", "pw-123456", models.RoleAdmin)
	suite.Require().NoError(err)
	second, err := suite.provider.Seed(suite.ctx, "root@example.com", "pw-123456", models.RoleSuperAdmin)
	suite.Require().NoError(err)

	suite.Equal(first.UID, second.UID)
	suite.Equal(models.RoleSuperAdmin, second.Role)
}

func TestLocalProviderTestSuite(t *testing.T) {
	suite.Run(t, new(LocalProviderTestSuite))
}

func TestVerifyTokenRejections(t *testing.T) {
	ctx := context.Background()
	p := NewLocalProvider(testSecret, time.Minute)
	acc := Account{UID: "u1", Email: "x@example.com", Role: models.RoleAdmin}

	other := NewLocalProvider("another-secret-0000", time.Minute)
	foreign, err := other.IssueToken(acc)
	require.NoError(t, err)
	_, err = p.VerifyToken(ctx, foreign)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	p.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := p.IssueToken(acc)
	require.NoError(t, err)
	p.now = time.Now
	_, err = p.VerifyToken(ctx, expired)
	require.Error(t, err)
	assert.Equal(t, "token expired", err.Error())

	none := jwt.NewWithClaims(jwt.SigningMethodNone, LocalClaims{Email: "x@example.com"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = p.VerifyToken(ctx, unsigned)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = p.VerifyToken(ctx, "garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRoleFromClaims(t *testing.T) {
	assert.Equal(t, models.RoleJudge, roleFromClaims(map[string]interface{}{"role": "judge"}))
	assert.Empty(t, roleFromClaims(map[string]interface{}{"role": "owner"}))
	assert.Empty(t, roleFromClaims(map[string]interface{}{"role": 3}))
	assert.Empty(t, roleFromClaims(nil))
}
