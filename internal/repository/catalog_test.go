package repository

import (
	"context"
	"testing"

	"foodgram-backend/internal/database/models"
	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CatalogRepositoryTestSuite tests the ingredient, unit and tag repositories
type CatalogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ingredients   *IngredientRepository
	units         *MeasurementUnitRepository
	tags          *TagRepository
	seed          *testutils.Seeder
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *CatalogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.ingredients = NewIngredientRepository(db)
	suite.units = NewMeasurementUnitRepository(db)
	suite.tags = NewTagRepository(db)
	suite.seed = testutils.NewSeeder(db)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *CatalogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CatalogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestIngredientGetByID tests lookup with unit preloaded
func (suite *CatalogRepositoryTestSuite) TestIngredientGetByID() {
	flour := suite.seed.Ingredient("flour", "g")

	found, err := suite.ingredients.GetByID(suite.ctx, flour.ID)
	suite.Require().NoError(err)
	suite.Equal("flour", found.Name)
	suite.Equal("g", found.MeasurementUnit.Name)

	_, err = suite.ingredients.GetByID(suite.ctx, flour.ID+1000)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestIngredientGetByIDs tests that missing ids are skipped
func (suite *CatalogRepositoryTestSuite) TestIngredientGetByIDs() {
	flour := suite.seed.Ingredient("flour", "g")
	eggs := suite.seed.Ingredient("eggs", "pcs")

	found, err := suite.ingredients.GetByIDs(suite.ctx, []uint{flour.ID, eggs.ID, 999999})
	suite.Require().NoError(err)
	suite.Len(found, 2)

	found, err = suite.ingredients.GetByIDs(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(found)
}

// TestIngredientListPrefix tests case-insensitive prefix filtering
func (suite *CatalogRepositoryTestSuite) TestIngredientListPrefix() {
	suite.seed.Ingredient("Sugar", "g")
	suite.seed.Ingredient("sunflower oil", "ml")
	suite.seed.Ingredient("salt", "g")
	suite.seed.Ingredient("brown sugar", "g")
	suite.seed.Ingredient("100% juice", "ml")

	all, err := suite.ingredients.List(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 5)

	su, err := suite.ingredients.List(suite.ctx, "SU")
	suite.Require().NoError(err)
	suite.Require().Len(su, 2)
	suite.Equal("Sugar", su[0].Name)
	suite.Equal("sunflower oil", su[1].Name)

	wildcard, err := suite.ingredients.List(suite.ctx, "%")
	suite.Require().NoError(err)
	suite.Empty(wildcard, "wildcards are matched literally")

	literal, err := suite.ingredients.List(suite.ctx, "100%")
	suite.Require().NoError(err)
	suite.Len(literal, 1)
}

// TestIngredientUniquePerUnit tests the (name, unit) unique index
func (suite *CatalogRepositoryTestSuite) TestIngredientUniquePerUnit() {
	grams := suite.seed.Unit("g")
	first, created, err := suite.ingredients.GetOrCreate(suite.ctx, "rice", grams.ID)
	suite.Require().NoError(err)
	suite.True(created)

	again, created, err := suite.ingredients.GetOrCreate(suite.ctx, "rice", grams.ID)
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(first.ID, again.ID)

	err = suite.baseTestSuite.DB.Omit("MeasurementUnit").Create(&models.Ingredient{Name: "rice", MeasurementUnitID: grams.ID}).Error
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)

	cups := suite.seed.Unit("cup")
	_, created, err = suite.ingredients.GetOrCreate(suite.ctx, "rice", cups.ID)
	suite.Require().NoError(err)
	suite.True(created)
}

// TestUnitGetOrCreate tests unit de-duplication
func (suite *CatalogRepositoryTestSuite) TestUnitGetOrCreate() {
	g, created, err := suite.units.GetOrCreate(suite.ctx, "g")
	suite.Require().NoError(err)
	suite.True(created)

	again, created, err := suite.units.GetOrCreate(suite.ctx, "g")
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(g.ID, again.ID)

	all, err := suite.units.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

// TestTags tests tag lookups
func (suite *CatalogRepositoryTestSuite) TestTags() {
	lunch := suite.seed.Tag("lunch")
	breakfast := suite.seed.Tag("breakfast")

	found, err := suite.tags.GetByID(suite.ctx, lunch.ID)
	suite.Require().NoError(err)
	suite.Equal("lunch", found.Slug)

	all, err := suite.tags.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(breakfast.ID, all[0].ID, "ordered by name")

	some, err := suite.tags.GetByIDs(suite.ctx, []uint{lunch.ID, 999999})
	suite.Require().NoError(err)
	suite.Len(some, 1)

	_, err = suite.tags.GetByID(suite.ctx, 999999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTagGetOrCreate tests idempotent tag seeding by slug
func (suite *CatalogRepositoryTestSuite) TestTagGetOrCreate() {
	tag := &models.Tag{Name: "Dinner", Color: "#E26C2D", Slug: "dinner"}
	created, err := suite.tags.GetOrCreate(suite.ctx, tag)
	suite.Require().NoError(err)
	suite.True(created)
	suite.NotZero(tag.ID)

	dup := &models.Tag{Name: "Dinner again", Color: "#000000", Slug: "dinner"}
	created, err = suite.tags.GetOrCreate(suite.ctx, dup)
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(tag.ID, dup.ID)
	suite.Equal("Dinner", dup.Name)
}

// TestCatalogRepositoryTestSuite runs the test suite
func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
