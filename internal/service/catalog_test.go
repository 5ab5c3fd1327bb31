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

// CatalogServiceTestSuite defines the test suite for CatalogService
type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ingredients *mocks.MockIngredientRepositoryInterface
	tags        *mocks.MockTagRepositoryInterface
	service     *service.CatalogService
	ctx         context.Context
}

// SetupTest sets up the test suite
func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ingredients = mocks.NewMockIngredientRepositoryInterface(suite.ctrl)
	suite.tags = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.service = service.NewCatalogService(suite.ingredients, suite.tags)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *CatalogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListIngredients tests the prefix is trimmed and units are flattened
func (suite *CatalogServiceTestSuite) TestListIngredients() {
	suite.ingredients.EXPECT().List(gomock.Any(), "su").Return([]models.Ingredient{
		{ID: 1, Name: "sugar", MeasurementUnit: models.MeasurementUnit{Name: "g"}},
		{ID: 2, Name: "sunflower oil", MeasurementUnit: models.MeasurementUnit{Name: "ml"}},
	}, nil)

	resp, err := suite.service.ListIngredients(suite.ctx, "  su ")

	suite.Require().NoError(err)
	suite.Equal([]service.IngredientResponse{
		{ID: 1, Name: "sugar", MeasurementUnit: "g"},
		{ID: 2, Name: "sunflower oil", MeasurementUnit: "ml"},
	}, resp)
}

// TestGetIngredientNotFound tests a missing ingredient
func (suite *CatalogServiceTestSuite) TestGetIngredientNotFound() {
	suite.ingredients.EXPECT().GetByID(gomock.Any(), uint(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetIngredient(suite.ctx, 42)

	suite.ErrorIs(err, apperrors.ErrIngredientNotFound)
}

// TestListTags tests tag listing
func (suite *CatalogServiceTestSuite) TestListTags() {
	suite.tags.EXPECT().GetAll(gomock.Any()).Return([]models.Tag{
		{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	}, nil)

	resp, err := suite.service.ListTags(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal([]service.TagResponse{{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}}, resp)
}

// TestGetTag tests lookups by id
func (suite *CatalogServiceTestSuite) TestGetTag() {
	suite.tags.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&models.Tag{ID: 1, Name: "Lunch", Color: "#49B64E", Slug: "lunch"}, nil)
	suite.tags.EXPECT().GetByID(gomock.Any(), uint(2)).Return(nil, gorm.ErrRecordNotFound)

	tag, err := suite.service.GetTag(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("lunch", tag.Slug)

	_, err = suite.service.GetTag(suite.ctx, 2)
	suite.ErrorIs(err, apperrors.ErrTagNotFound)
}

// TestCatalogServiceTestSuite runs the test suite
func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
