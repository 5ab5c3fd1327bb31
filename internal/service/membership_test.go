package service_test

import (
	"context"
	"testing"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MembershipServiceTestSuite defines the test suite for MembershipService
type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	recipes       *mocks.MockRecipeRepositoryInterface
	users         *mocks.MockUserRepositoryInterface
	favorites     *mocks.MockMembershipRepositoryInterface
	cart          *mocks.MockMembershipRepositoryInterface
	subscriptions *mocks.MockMembershipRepositoryInterface
	images        *mocks.MockImageStore
	service       *service.MembershipService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.recipes = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.favorites = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.cart = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.subscriptions = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.images = mocks.NewMockImageStore(suite.ctrl)
	suite.service = service.NewMembershipService(service.MembershipServiceDeps{
		Recipes:       suite.recipes,
		Users:         suite.users,
		Favorites:     suite.favorites,
		Cart:          suite.cart,
		Subscriptions: suite.subscriptions,
		Images:        suite.images,
	})
	suite.ctx = context.Background()

	suite.images.EXPECT().URL(gomock.Any()).DoAndReturn(func(ref string) string {
		return "/media/" + ref
	}).AnyTimes()
}

// TearDownTest cleans up after each test
func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func author(id uint, username string) models.User {
	return models.User{BaseModel: models.BaseModel{ID: id}, Username: username, Email: username + "@example.com"}
}

// TestAddFavorite tests adding a recipe to favorites
func (suite *MembershipServiceTestSuite) TestAddFavorite() {
	recipe := &models.Recipe{BaseModel: models.BaseModel{ID: 11}, Name: "Pancakes", Image: "recipes/p.png", CookingTime: 20}
	suite.recipes.EXPECT().GetByID(gomock.Any(), uint(11)).Return(recipe, nil)
	suite.favorites.EXPECT().Add(gomock.Any(), uint(9), uint(11)).Return(&models.Membership{ID: 1, UserID: 9, TargetID: 11}, nil)

	summary, err := suite.service.AddFavorite(suite.ctx, 9, 11)

	suite.Require().NoError(err)
	suite.Equal(service.RecipeSummary{ID: 11, Name: "Pancakes", ImageURL: "/media/recipes/p.png", CookingTime: 20}, *summary)
}

// TestAddToCartRecipeNotFound tests that a missing recipe is reported
// without touching the cart
func (suite *MembershipServiceTestSuite) TestAddToCartRecipeNotFound() {
	suite.recipes.EXPECT().GetByID(gomock.Any(), uint(11)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.AddToCart(suite.ctx, 9, 11)

	suite.ErrorIs(err, apperrors.ErrRecipeNotFound)
}

// TestAddFavoriteRecipeDeletedConcurrently tests the foreign key path
func (suite *MembershipServiceTestSuite) TestAddFavoriteRecipeDeletedConcurrently() {
	suite.recipes.EXPECT().GetByID(gomock.Any(), uint(11)).Return(&models.Recipe{BaseModel: models.BaseModel{ID: 11}}, nil)
	suite.favorites.EXPECT().Add(gomock.Any(), uint(9), uint(11)).Return(nil, gorm.ErrForeignKeyViolated)

	_, err := suite.service.AddFavorite(suite.ctx, 9, 11)

	suite.ErrorIs(err, apperrors.ErrRecipeNotFound)
}

// TestRemoveFromCart tests removal goes to the cart relation only
func (suite *MembershipServiceTestSuite) TestRemoveFromCart() {
	suite.recipes.EXPECT().GetByID(gomock.Any(), uint(11)).Return(&models.Recipe{BaseModel: models.BaseModel{ID: 11}}, nil)
	suite.cart.EXPECT().Remove(gomock.Any(), uint(9), uint(11)).Return(nil)

	suite.NoError(suite.service.RemoveFromCart(suite.ctx, 9, 11))
}

// TestRemoveFavoriteRecipeNotFound tests removal of a missing recipe
func (suite *MembershipServiceTestSuite) TestRemoveFavoriteRecipeNotFound() {
	suite.recipes.EXPECT().GetByID(gomock.Any(), uint(11)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.RemoveFavorite(suite.ctx, 9, 11)

	suite.ErrorIs(err, apperrors.ErrRecipeNotFound)
}

// TestSubscribeSelf tests that self-subscription is rejected
func (suite *MembershipServiceTestSuite) TestSubscribeSelf() {
	_, err := suite.service.Subscribe(suite.ctx, 9, 9, 3)
	suite.ErrorIs(err, apperrors.ErrSelfSubscription)

	err = suite.service.Unsubscribe(suite.ctx, 9, 9)
	suite.ErrorIs(err, apperrors.ErrSelfSubscription)
}

// TestSubscribeAuthorNotFound tests subscribing to a missing user
func (suite *MembershipServiceTestSuite) TestSubscribeAuthorNotFound() {
	suite.users.EXPECT().GetByID(gomock.Any(), uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Subscribe(suite.ctx, 9, 3, 3)

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestSubscribe tests the author view returned after subscribing
func (suite *MembershipServiceTestSuite) TestSubscribe() {
	cook := author(3, "cook")
	suite.users.EXPECT().GetByID(gomock.Any(), uint(3)).Return(&cook, nil)
	suite.subscriptions.EXPECT().Add(gomock.Any(), uint(9), uint(3)).Return(&models.Membership{ID: 1}, nil)
	suite.recipes.EXPECT().ListByAuthor(gomock.Any(), uint(3), 1).Return([]models.Recipe{
		{BaseModel: models.BaseModel{ID: 12}, Name: "Bread", Image: "recipes/b.png", CookingTime: 90},
	}, int64(2), nil)

	resp, err := suite.service.Subscribe(suite.ctx, 9, 3, 1)

	suite.Require().NoError(err)
	suite.Equal("cook", resp.Username)
	suite.True(resp.IsSubscribed)
	suite.Equal(int64(2), resp.RecipesCount)
	suite.Require().Len(resp.Recipes, 1)
	suite.Equal("Bread", resp.Recipes[0].Name)
}

// TestListSubscriptionsOrder tests that authors keep subscription order
// even though they are loaded concurrently
func (suite *MembershipServiceTestSuite) TestListSubscriptionsOrder() {
	suite.subscriptions.EXPECT().ListTargets(gomock.Any(), uint(9)).Return([]uint{5, 3, 4}, nil)
	suite.users.EXPECT().GetByIDs(gomock.Any(), []uint{5, 3, 4}).Return([]models.User{
		author(3, "ann"), author(4, "bob"), author(5, "cid"),
	}, nil)
	for _, id := range []uint{3, 4, 5} {
		suite.recipes.EXPECT().ListByAuthor(gomock.Any(), id, 2).Return([]models.Recipe{}, int64(0), nil)
	}

	resp, err := suite.service.ListSubscriptions(suite.ctx, 9, 2)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 3)
	suite.Equal("cid", resp[0].Username)
	suite.Equal("ann", resp[1].Username)
	suite.Equal("bob", resp[2].Username)
	for _, item := range resp {
		suite.True(item.IsSubscribed)
		suite.NotNil(item.Recipes)
	}
}

// TestListSubscriptionsEmpty tests the empty result is not nil
func (suite *MembershipServiceTestSuite) TestListSubscriptionsEmpty() {
	suite.subscriptions.EXPECT().ListTargets(gomock.Any(), uint(9)).Return([]uint{}, nil)

	resp, err := suite.service.ListSubscriptions(suite.ctx, 9, 0)

	suite.Require().NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

// TestMembershipServiceTestSuite runs the test suite
func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
