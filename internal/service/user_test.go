package service_test

import (
	"context"
	"testing"

	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockSubscriptions *mocks.MockMembershipRepositoryInterface
	userService       *service.UserService
	ctx               context.Context
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockSubscriptions = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockSubscriptions)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetUserSubscribed tests the subscription flag for another viewer
func (suite *UserServiceTestSuite) TestGetUserSubscribed() {
	cook := author(3, "cook")
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), uint(3)).Return(&cook, nil)
	suite.mockSubscriptions.EXPECT().Exists(gomock.Any(), uint(9), uint(3)).Return(true, nil)

	user, err := suite.userService.GetUser(suite.ctx, 3, 9)

	suite.Require().NoError(err)
	suite.Equal("cook", user.Username)
	suite.Equal("cook@example.com", user.Email)
	suite.True(user.IsSubscribed)
}

// TestGetUserAnonymousAndSelf tests that no lookup happens without a distinct viewer
func (suite *UserServiceTestSuite) TestGetUserAnonymousAndSelf() {
	cook := author(3, "cook")
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), uint(3)).Return(&cook, nil).Times(2)

	anonymous, err := suite.userService.GetUser(suite.ctx, 3, 0)
	suite.Require().NoError(err)
	suite.False(anonymous.IsSubscribed)

	self, err := suite.userService.GetCurrentUser(suite.ctx, 3)
	suite.Require().NoError(err)
	suite.False(self.IsSubscribed)
}

// TestGetUserNotFound tests a missing user
func (suite *UserServiceTestSuite) TestGetUserNotFound() {
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.GetUser(suite.ctx, 3, 0)

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestGetCurrentUserAnonymous tests that the current user requires authentication
func (suite *UserServiceTestSuite) TestGetCurrentUserAnonymous() {
	_, err := suite.userService.GetCurrentUser(suite.ctx, 0)

	suite.True(apperrors.IsAuthentication(err))
}

// TestDeleteUser tests deletion
func (suite *UserServiceTestSuite) TestDeleteUser() {
	suite.mockUserRepo.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil)
	suite.mockUserRepo.EXPECT().Delete(gomock.Any(), uint(4)).Return(gorm.ErrRecordNotFound)

	suite.NoError(suite.userService.DeleteUser(suite.ctx, 3))
	suite.ErrorIs(suite.userService.DeleteUser(suite.ctx, 4), apperrors.ErrUserNotFound)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
