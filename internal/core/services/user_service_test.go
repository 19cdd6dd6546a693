package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	portsrepo "github.com/parkingflow/parking_flow_app/internal/core/ports/repositories"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/core/services"
	"github.com/parkingflow/parking_flow_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "admin",
		Name:         "Administrator",
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "admin", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{UserID: uuid.NewString(), Username: "admin", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "admin", "battery-staple")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserIsUnauthorized() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	// Unknown user must look exactly like a wrong password.
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	hash, err := utils.HashPassword("changeme")
	suite.Require().NoError(err)

	user := &domain.User{UserID: userID, Username: "admin", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(saved domain.User) bool {
		return saved.UserID == userID && utils.CheckPasswordHash("correct-horse", saved.PasswordHash)
	})).Return(nil).Once()

	err = suite.service.ChangePassword(ctx, userID, "changeme", "correct-horse")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	ctx := context.Background()
	userID := uuid.NewString()
	hash, err := utils.HashPassword("changeme")
	suite.Require().NoError(err)

	user := &domain.User{UserID: userID, Username: "admin", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	err = suite.service.ChangePassword(ctx, userID, "wrong", "correct-horse")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePassword_ShortNewPassword() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := suite.service.ChangePassword(ctx, userID, "changeme", "short")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
