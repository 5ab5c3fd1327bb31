package handlers_test

import (
	"context"
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

const viewerID uint = 7

// RecipeHandlerTestSuite defines the test suite for RecipeHandler
type RecipeHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRecipeSv *mocks.MockRecipeServiceInterface
	http         *testutils.HTTPTestSuite
}

// SetupTest mounts the handler twice: /anon for anonymous callers and
// /api for requests authenticated as viewerID
func (suite *RecipeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRecipeSv = mocks.NewMockRecipeServiceInterface(suite.ctrl)
	handler := handlers.NewRecipeHandler(suite.mockRecipeSv)

	suite.http = testutils.SetupHTTPTest()
	anon := suite.http.Router.Group("/anon", testutils.AuthenticateAs(0))
	anon.GET("/recipes", handler.ListRecipes)
	anon.GET("/recipes/:id", handler.GetRecipe)

	api := suite.http.Router.Group("/api", testutils.AuthenticateAs(viewerID))
	api.GET("/recipes", handler.ListRecipes)
	api.GET("/recipes/:id", handler.GetRecipe)
	api.POST("/recipes", handler.CreateRecipe)
	api.PATCH("/recipes/:id", handler.UpdateRecipe)
	api.DELETE("/recipes/:id", handler.DeleteRecipe)
}

func (suite *RecipeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecipeHandlerTestSuite) TestListRecipes_QueryParsing() {
	suite.mockRecipeSv.EXPECT().
		ListRecipes(gomock.Any(), gomock.Any(), viewerID).
		DoAndReturn(func(_ context.Context, filter *service.RecipeListFilter, _ uint) ([]service.RecipeResponse, error) {
			suite.Require().NotNil(filter.AuthorID)
			suite.Equal(uint(3), *filter.AuthorID)
			suite.Equal([]string{"breakfast", "lunch"}, filter.TagSlugs)
			suite.True(filter.IsFavorited)
			suite.False(filter.IsInShoppingCart)
			return []service.RecipeResponse{{ID: 1, Name: "Pancakes"}}, nil
		})

	w := suite.http.MakeRequest(http.MethodGet, "/api/recipes?author=3&tags=breakfast&tags=lunch&tags=&is_favorited=1&is_in_shopping_cart=0", nil)

	var got []service.RecipeResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Len(got, 1)
}

func (suite *RecipeHandlerTestSuite) TestListRecipes_Anonymous() {
	suite.mockRecipeSv.EXPECT().
		ListRecipes(gomock.Any(), gomock.Any(), uint(0)).
		Return([]service.RecipeResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/anon/recipes?is_in_shopping_cart=true", nil)

	testutils.AssertStatus(suite.T(), w, http.StatusOK)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *RecipeHandlerTestSuite) TestListRecipes_InvalidAuthor() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/recipes?author=abc", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid author")
}

func (suite *RecipeHandlerTestSuite) TestGetRecipe() {
	suite.mockRecipeSv.EXPECT().GetRecipe(gomock.Any(), uint(5), uint(0)).
		Return(&service.RecipeResponse{ID: 5, Name: "Soup"}, nil)
	suite.mockRecipeSv.EXPECT().GetRecipe(gomock.Any(), uint(6), viewerID).
		Return(nil, apperrors.ErrRecipeNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/anon/recipes/5", nil)
	var got service.RecipeResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("Soup", got.Name)

	w = suite.http.MakeRequest(http.MethodGet, "/api/recipes/6", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "recipe not found")

	w = suite.http.MakeRequest(http.MethodGet, "/api/recipes/0", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid id")
}

func (suite *RecipeHandlerTestSuite) TestCreateRecipe_Created() {
	body := `{"name":"Pancakes","text":"Whisk, rest, fry.","cooking_time":20,
		"image":"data:image/png;base64,iVBORw0KGgo=",
		"ingredients":[{"id":1,"amount":200}],"tags":[2]}`

	suite.mockRecipeSv.EXPECT().
		CreateRecipe(gomock.Any(), viewerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint, draft *service.RecipeDraft) (*service.RecipeResponse, error) {
			suite.Equal("Pancakes", *draft.Name)
			suite.Equal(20, *draft.CookingTime)
			suite.Equal([]service.IngredientAmount{{ID: 1, Amount: 200}}, draft.Ingredients)
			suite.Equal([]uint{2}, draft.Tags)
			return &service.RecipeResponse{ID: 11, Name: "Pancakes"}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/api/recipes", body)

	var got service.RecipeResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal(uint(11), got.ID)
}

func (suite *RecipeHandlerTestSuite) TestCreateRecipe_ValidationBody() {
	suite.mockRecipeSv.EXPECT().
		CreateRecipe(gomock.Any(), viewerID, gomock.Any()).
		Return(nil, apperrors.ErrEmptyIngredients)

	w := suite.http.MakeRequest(http.MethodPost, "/api/recipes", `{"name":"Pancakes","ingredients":[]}`)

	body := testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Validation failed")
	suite.Equal("ingredients", body["field"])
	suite.Equal("empty_ingredients", body["code"])
	suite.Equal("recipe must contain at least one ingredient", body["details"])
}

func (suite *RecipeHandlerTestSuite) TestCreateRecipe_DuplicateName() {
	suite.mockRecipeSv.EXPECT().
		CreateRecipe(gomock.Any(), viewerID, gomock.Any()).
		Return(nil, apperrors.ErrDuplicateRecipeName)

	w := suite.http.MakeRequest(http.MethodPost, "/api/recipes", `{"name":"Pancakes"}`)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "recipe already exists")
}

func (suite *RecipeHandlerTestSuite) TestCreateRecipe_MalformedBody() {
	w := suite.http.MakeRequest(http.MethodPost, "/api/recipes", `{"name":`)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

func (suite *RecipeHandlerTestSuite) TestUpdateRecipe() {
	suite.mockRecipeSv.EXPECT().
		UpdateRecipe(gomock.Any(), uint(4), viewerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uint, draft *service.RecipeDraft) (*service.RecipeResponse, error) {
			suite.Nil(draft.Name)
			suite.Equal(15, *draft.CookingTime)
			return &service.RecipeResponse{ID: 4, CookingTime: 15}, nil
		})
	suite.mockRecipeSv.EXPECT().
		UpdateRecipe(gomock.Any(), uint(5), viewerID, gomock.Any()).
		Return(nil, apperrors.ErrNotRecipeAuthor)

	w := suite.http.MakeRequest(http.MethodPatch, "/api/recipes/4", `{"cooking_time":15}`)
	var got service.RecipeResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(15, got.CookingTime)

	w = suite.http.MakeRequest(http.MethodPatch, "/api/recipes/5", `{"cooking_time":15}`)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "only the author")
}

func (suite *RecipeHandlerTestSuite) TestDeleteRecipe() {
	suite.mockRecipeSv.EXPECT().DeleteRecipe(gomock.Any(), uint(4), viewerID).Return(nil)
	suite.mockRecipeSv.EXPECT().DeleteRecipe(gomock.Any(), uint(8), viewerID).Return(apperrors.ErrRecipeNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/api/recipes/4", nil)
	testutils.AssertStatus(suite.T(), w, http.StatusNoContent)
	suite.Empty(w.Body.String())

	w = suite.http.MakeRequest(http.MethodDelete, "/api/recipes/8", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "recipe not found")
}

func TestRecipeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeHandlerTestSuite))
}
