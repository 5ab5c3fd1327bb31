package handlers_test

import (
	"errors"
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

// CatalogHandlerTestSuite defines the test suite for CatalogHandler
type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCatalogSv *mocks.MockCatalogServiceInterface
	http          *testutils.HTTPTestSuite
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCatalogSv = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	handler := handlers.NewCatalogHandler(suite.mockCatalogSv)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/ingredients", handler.ListIngredients)
	suite.http.Router.GET("/ingredients/:id", handler.GetIngredient)
	suite.http.Router.GET("/tags", handler.ListTags)
	suite.http.Router.GET("/tags/:id", handler.GetTag)
}

func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestListIngredients_PrefixPassedThrough() {
	suite.mockCatalogSv.EXPECT().ListIngredients(gomock.Any(), "su").Return([]service.IngredientResponse{
		{ID: 1, Name: "sugar", MeasurementUnit: "g"},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/ingredients?name=su", nil)

	var got []service.IngredientResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal([]service.IngredientResponse{{ID: 1, Name: "sugar", MeasurementUnit: "g"}}, got)
}

func (suite *CatalogHandlerTestSuite) TestListIngredients_ServiceError() {
	suite.mockCatalogSv.EXPECT().ListIngredients(gomock.Any(), "").Return(nil, errors.New("db down"))

	w := suite.http.MakeRequest(http.MethodGet, "/ingredients", nil)

	body := testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Internal server error")
	suite.NotContains(body["error"], "db down")
}

func (suite *CatalogHandlerTestSuite) TestGetIngredient() {
	suite.mockCatalogSv.EXPECT().GetIngredient(gomock.Any(), uint(1)).Return(&service.IngredientResponse{ID: 1, Name: "flour", MeasurementUnit: "g"}, nil)
	suite.mockCatalogSv.EXPECT().GetIngredient(gomock.Any(), uint(2)).Return(nil, apperrors.ErrIngredientNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/ingredients/1", nil)
	var got service.IngredientResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("flour", got.Name)

	w = suite.http.MakeRequest(http.MethodGet, "/ingredients/2", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "ingredient not found")

	w = suite.http.MakeRequest(http.MethodGet, "/ingredients/abc", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid id")
}

func (suite *CatalogHandlerTestSuite) TestTags() {
	suite.mockCatalogSv.EXPECT().ListTags(gomock.Any()).Return([]service.TagResponse{
		{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	}, nil)
	suite.mockCatalogSv.EXPECT().GetTag(gomock.Any(), uint(9)).Return(nil, apperrors.ErrTagNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/tags", nil)
	var got []service.TagResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Len(got, 1)

	w = suite.http.MakeRequest(http.MethodGet, "/tags/9", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "tag not found")
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
