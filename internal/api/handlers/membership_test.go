package handlers_test

import (
	"net/http"
	"testing"

	"foodgram-backend/internal/api/handlers"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"
	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MembershipHandlerTestSuite defines the test suite for MembershipHandler
type MembershipHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockMembershipSv *mocks.MockMembershipServiceInterface
	http             *testutils.HTTPTestSuite
}

func (suite *MembershipHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMembershipSv = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	handler := handlers.NewMembershipHandler(suite.mockMembershipSv)

	suite.http = testutils.SetupHTTPTest()
	api := suite.http.Router.Group("/api", testutils.AuthenticateAs(viewerID))
	api.POST("/recipes/:id/favorite", handler.AddFavorite)
	api.DELETE("/recipes/:id/favorite", handler.RemoveFavorite)
	api.POST("/recipes/:id/shopping_cart", handler.AddToCart)
	api.DELETE("/recipes/:id/shopping_cart", handler.RemoveFromCart)
	api.GET("/users/subscriptions", handler.ListSubscriptions)
	api.POST("/users/:id/subscribe", handler.Subscribe)
	api.DELETE("/users/:id/subscribe", handler.Unsubscribe)
}

func (suite *MembershipHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipHandlerTestSuite) TestFavorite() {
	summary := &service.RecipeSummary{ID: 3, Name: "Soup", ImageURL: "/media/recipes/a.png", CookingTime: 30}
	suite.mockMembershipSv.EXPECT().AddFavorite(gomock.Any(), viewerID, uint(3)).Return(summary, nil)
	suite.mockMembershipSv.EXPECT().RemoveFavorite(gomock.Any(), viewerID, uint(3)).Return(nil)

	w := suite.http.MakeRequest(http.MethodPost, "/api/recipes/3/favorite", nil)
	var got service.RecipeSummary
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal(*summary, got)

	w = suite.http.MakeRequest(http.MethodDelete, "/api/recipes/3/favorite", nil)
	testutils.AssertStatus(suite.T(), w, http.StatusNoContent)
}

func (suite *MembershipHandlerTestSuite) TestShoppingCart() {
	suite.mockMembershipSv.EXPECT().AddToCart(gomock.Any(), viewerID, uint(9)).Return(nil, apperrors.ErrRecipeNotFound)
	suite.mockMembershipSv.EXPECT().RemoveFromCart(gomock.Any(), viewerID, uint(4)).Return(apperrors.ErrRecipeNotFound)

	w := suite.http.MakeRequest(http.MethodPost, "/api/recipes/9/shopping_cart", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "recipe not found")

	w = suite.http.MakeRequest(http.MethodDelete, "/api/recipes/4/shopping_cart", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "recipe not found")

	w = suite.http.MakeRequest(http.MethodPost, "/api/recipes/x/shopping_cart", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid id")
}

func (suite *MembershipHandlerTestSuite) TestSubscribe() {
	suite.mockMembershipSv.EXPECT().Subscribe(gomock.Any(), viewerID, uint(3), 2).Return(&service.AuthorResponse{
		UserSummary:  service.UserSummary{ID: 3, Username: "cook", IsSubscribed: true},
		Recipes:      []service.RecipeSummary{{ID: 1}, {ID: 2}},
		RecipesCount: 5,
	}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/api/users/3/subscribe?recipes_limit=2", nil)

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal("cook", got["username"])
	suite.Equal(true, got["is_subscribed"])
	suite.Equal(float64(5), got["recipes_count"])
	suite.Len(got["recipes"], 2)
}

func (suite *MembershipHandlerTestSuite) TestSubscribeToSelf() {
	suite.mockMembershipSv.EXPECT().Subscribe(gomock.Any(), viewerID, viewerID, 0).Return(nil, apperrors.ErrSelfSubscription)

	w := suite.http.MakeRequest(http.MethodPost, "/api/users/7/subscribe", nil)

	body := testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Validation failed")
	suite.Equal("self_subscription", body["code"])
}

func (suite *MembershipHandlerTestSuite) TestUnsubscribe() {
	suite.mockMembershipSv.EXPECT().Unsubscribe(gomock.Any(), viewerID, uint(3)).Return(nil)
	suite.mockMembershipSv.EXPECT().Unsubscribe(gomock.Any(), viewerID, uint(4)).Return(apperrors.ErrUserNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/api/users/3/subscribe", nil)
	testutils.AssertStatus(suite.T(), w, http.StatusNoContent)

	w = suite.http.MakeRequest(http.MethodDelete, "/api/users/4/subscribe", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "user not found")
}

func (suite *MembershipHandlerTestSuite) TestListSubscriptions() {
	suite.mockMembershipSv.EXPECT().ListSubscriptions(gomock.Any(), viewerID, 0).Return([]service.AuthorResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/users/subscriptions", nil)

	testutils.AssertStatus(suite.T(), w, http.StatusOK)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *MembershipHandlerTestSuite) TestInvalidRecipesLimit() {
	for _, query := range []string{"recipes_limit=-1", "recipes_limit=many"} {
		w := suite.http.MakeRequest(http.MethodGet, "/api/users/subscriptions?"+query, nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid recipes_limit")

		w = suite.http.MakeRequest(http.MethodPost, "/api/users/3/subscribe?"+query, nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid recipes_limit")
	}
}

func TestMembershipHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipHandlerTestSuite))
}
