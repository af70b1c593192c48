package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/core/services"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/SscSPs/salary_ledger/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupSuite() {
	utils.PasswordCost = bcrypt.MinCost
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, services.WithUserClock(clock.Fixed{At: testNow}))
}

func (suite *UserServiceTestSuite) userWithPassword(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{UserID: uuid.NewString(), Username: "admin", PasswordHash: hash}
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	user := suite.userWithPassword("secret123")
	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "admin", "secret123")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(suite.userWithPassword("secret123"), nil).Once()

	_, err := suite.service.AuthenticateUser(ctx, "admin", "nope")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost", "x")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestChangePassword_Rules() {
	ctx := context.Background()
	user := suite.userWithPassword("secret123")
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil)

	err := suite.service.ChangePassword(ctx, user.UserID, "wrong", "newpass1", "newpass1")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	err = suite.service.ChangePassword(ctx, user.UserID, "secret123", "newpass1", "newpass2")
	suite.ErrorIs(err, apperrors.ErrValidation)

	err = suite.service.ChangePassword(ctx, user.UserID, "secret123", "abc", "abc")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	user := suite.userWithPassword("secret123")
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdatePasswordHash", ctx, user.UserID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("newpass1", hash)
	}), mock.Anything).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, user.UserID, "secret123", "newpass1", "newpass1")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_CreatesWhenMissing() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" && utils.CheckPasswordHash("changeme", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.EnsureDefaultAdmin(ctx, "admin", "changeme")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_ExistingIsKept() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u-1", Username: "admin"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(existing, nil).Once()

	user, err := suite.service.EnsureDefaultAdmin(ctx, "admin", "changeme")

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_RandomPasswordWhenEmpty() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.PasswordHash != "" && !utils.CheckPasswordHash("", u.PasswordHash)
	})).Return(nil).Once()

	_, err := suite.service.EnsureDefaultAdmin(ctx, "admin", "")

	suite.Require().NoError(err)
}

func (suite *UserServiceTestSuite) TestGetUserByID_RepoError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, "u-1").Return(nil, assert.AnError).Once()

	user, err := suite.service.GetUserByID(ctx, "u-1")

	suite.Nil(user)
	suite.ErrorIs(err, assert.AnError)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
