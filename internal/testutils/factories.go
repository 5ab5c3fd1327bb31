package testutils

import (
	"fmt"
	"sync/atomic"

	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
)

var sequence atomic.Uint64

func next() uint64 {
	return sequence.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with unique email and username
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		Email:     fmt.Sprintf("cook%d@example.com", n),
		Username:  fmt.Sprintf("cook%d", n),
		FirstName: "Test",
		LastName:  fmt.Sprintf("Cook %d", n),
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@example.com"
	return user
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// Create creates a test Tag with unique name, color and slug
func (f *TagFactory) Create() *models.Tag {
	n := next()
	return &models.Tag{
		Name:  fmt.Sprintf("Tag %d", n),
		Color: fmt.Sprintf("#%06X", n%0xFFFFFF),
		Slug:  fmt.Sprintf("tag-%d", n),
	}
}

// WithSlug sets a custom slug for the tag
func (f *TagFactory) WithSlug(slug string) *models.Tag {
	tag := f.Create()
	tag.Slug = slug
	tag.Name = slug
	return tag
}

// RecipeFactory provides methods to create test Recipe data
type RecipeFactory struct{}

// NewRecipeFactory creates a new RecipeFactory
func NewRecipeFactory() *RecipeFactory {
	return &RecipeFactory{}
}

// Create creates a test Recipe for the given author
func (f *RecipeFactory) Create(authorID uint) *models.Recipe {
	n := next()
	return &models.Recipe{
		AuthorID:    authorID,
		Name:        fmt.Sprintf("Recipe %d", n),
		Image:       fmt.Sprintf("/media/recipes/%d.png", n),
		Text:        "Mix everything and bake.",
		CookingTime: 30,
	}
}

// WithName sets a custom name for the recipe
func (f *RecipeFactory) WithName(authorID uint, name string) *models.Recipe {
	recipe := f.Create(authorID)
	recipe.Name = name
	return recipe
}

// Seeder persists fixtures directly through gorm
type Seeder struct {
	DB *gorm.DB
}

// NewSeeder creates a new Seeder
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{DB: db}
}

// User inserts a user
func (s *Seeder) User() *models.User {
	user := NewUserFactory().Create()
	must(s.DB.Create(user).Error)
	return user
}

// Unit inserts (or finds) a measurement unit
func (s *Seeder) Unit(name string) *models.MeasurementUnit {
	unit := models.MeasurementUnit{}
	must(s.DB.Where(models.MeasurementUnit{Name: name}).FirstOrCreate(&unit).Error)
	return &unit
}

// Ingredient inserts an ingredient measured in unit
func (s *Seeder) Ingredient(name, unit string) *models.Ingredient {
	u := s.Unit(unit)
	ingredient := &models.Ingredient{Name: name, MeasurementUnitID: u.ID}
	must(s.DB.Omit("MeasurementUnit").Create(ingredient).Error)
	ingredient.MeasurementUnit = *u
	return ingredient
}

// Tag inserts a tag with the given slug
func (s *Seeder) Tag(slug string) *models.Tag {
	tag := NewTagFactory().WithSlug(slug)
	must(s.DB.Create(tag).Error)
	return tag
}

// Recipe inserts a recipe with ingredient amounts keyed by ingredient ID
func (s *Seeder) Recipe(authorID uint, name string, amounts map[uint]int, tagIDs ...uint) *models.Recipe {
	recipe := NewRecipeFactory().WithName(authorID, name)
	must(s.DB.Omit("Author", "Ingredients", "TagLinks").Create(recipe).Error)
	for ingredientID, amount := range amounts {
		must(s.DB.Omit("Ingredient").Create(&models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: ingredientID,
			Amount:       amount,
		}).Error)
	}
	for _, tagID := range tagIDs {
		must(s.DB.Omit("Tag").Create(&models.RecipeTag{RecipeID: recipe.ID, TagID: tagID}).Error)
	}
	return recipe
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
