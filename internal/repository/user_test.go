package repository

import (
	"context"
	"testing"

	"foodgram-backend/internal/database/models"
	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	seed          *testutils.Seeder
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.seed = testutils.NewSeeder(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestCreate tests creating a user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := testutils.NewUserFactory().WithUsername("chef")

	err := suite.repo.Create(suite.ctx, user)
	suite.Require().NoError(err)
	suite.NotZero(user.ID)
	suite.NotZero(user.CreatedAt)

	dup := testutils.NewUserFactory().WithUsername("chef")
	err = suite.repo.Create(suite.ctx, dup)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByIDAndEmail tests user lookups
func (suite *UserRepositoryTestSuite) TestGetByIDAndEmail() {
	user := suite.seed.User()

	found, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal(user.Username, found.Username)

	found, err = suite.repo.GetByEmail(suite.ctx, user.Email)
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByID(suite.ctx, user.ID+1000)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByEmail(suite.ctx, "nobody@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDs tests batch lookup
func (suite *UserRepositoryTestSuite) TestGetByIDs() {
	a := suite.seed.User()
	b := suite.seed.User()

	users, err := suite.repo.GetByIDs(suite.ctx, []uint{b.ID, a.ID, 999999})
	suite.Require().NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal(a.ID, users[0].ID)
	suite.Equal(b.ID, users[1].ID)
}

// TestDeleteCascades tests that deleting a user removes everything referencing it
func (suite *UserRepositoryTestSuite) TestDeleteCascades() {
	db := suite.baseTestSuite.DB
	author := suite.seed.User()
	fan := suite.seed.User()
	flour := suite.seed.Ingredient("flour", "g")
	tag := suite.seed.Tag("dinner")
	authored := suite.seed.Recipe(author.ID, "Bread", map[uint]int{flour.ID: 500}, tag.ID)
	other := suite.seed.Recipe(fan.ID, "Cake", map[uint]int{flour.ID: 300})

	suite.Require().NoError(db.Create(&models.Favorite{UserID: fan.ID, RecipeID: authored.ID}).Error)
	suite.Require().NoError(db.Create(&models.ShoppingCartEntry{UserID: fan.ID, RecipeID: authored.ID}).Error)
	suite.Require().NoError(db.Create(&models.Favorite{UserID: author.ID, RecipeID: other.ID}).Error)
	suite.Require().NoError(db.Create(&models.Subscription{UserID: fan.ID, AuthorID: author.ID}).Error)
	suite.Require().NoError(db.Create(&models.Subscription{UserID: author.ID, AuthorID: fan.ID}).Error)

	suite.Require().NoError(suite.repo.Delete(suite.ctx, author.ID))

	count := func(model interface{}) int64 {
		var n int64
		suite.Require().NoError(db.Model(model).Count(&n).Error)
		return n
	}
	suite.Equal(int64(1), count(&models.User{}))
	suite.Equal(int64(1), count(&models.Recipe{}), "only the fan's recipe remains")
	suite.Equal(int64(1), count(&models.RecipeIngredient{}))
	suite.Equal(int64(0), count(&models.RecipeTag{}))
	suite.Equal(int64(0), count(&models.Favorite{}))
	suite.Equal(int64(0), count(&models.ShoppingCartEntry{}))
	suite.Equal(int64(0), count(&models.Subscription{}))
	suite.Equal(int64(1), count(&models.Tag{}), "tags are catalog data")
	suite.Equal(int64(1), count(&models.Ingredient{}), "ingredients are catalog data")
}

// TestDeleteNotFound tests deleting a missing user
func (suite *UserRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(suite.ctx, 999999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
