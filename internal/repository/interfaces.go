package repository

import (
	"context"

	"foodgram-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

// MeasurementUnitRepositoryInterface defines the interface for measurement unit operations
type MeasurementUnitRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.MeasurementUnit, error)
	GetOrCreate(ctx context.Context, name string) (*models.MeasurementUnit, bool, error)
}

// IngredientRepositoryInterface defines the interface for ingredient catalog operations
type IngredientRepositoryInterface interface {
	GetByID(ctx context.Context, id uint) (*models.Ingredient, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error)
	List(ctx context.Context, namePrefix string) ([]models.Ingredient, error)
	GetOrCreate(ctx context.Context, name string, unitID uint) (*models.Ingredient, bool, error)
}

// TagRepositoryInterface defines the interface for tag catalog operations
type TagRepositoryInterface interface {
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
	GetOrCreate(ctx context.Context, tag *models.Tag) (bool, error)
}

// RecipeRepositoryInterface defines the interface for recipe persistence.
// Create, Replace and Delete are each a single transaction covering the
// recipe row and every row it owns.
type RecipeRepositoryInterface interface {
	Create(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient, tagIDs []uint) error
	Replace(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient, tagIDs []uint) error
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, error)
	ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, int64, error)
	ExistsByAuthorAndName(ctx context.Context, authorID uint, name string, excludeID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// MembershipRepositoryInterface defines the operations shared by favorites,
// shopping cart entries and subscriptions
type MembershipRepositoryInterface interface {
	Add(ctx context.Context, userID, targetID uint) (*models.Membership, error)
	Remove(ctx context.Context, userID, targetID uint) error
	Exists(ctx context.Context, userID, targetID uint) (bool, error)
	ListTargets(ctx context.Context, userID uint) ([]uint, error)
	FilterTargets(ctx context.Context, userID uint, targetIDs []uint) ([]uint, error)
}

// ShoppingListRepositoryInterface defines the read model behind shopping lists
type ShoppingListRepositoryInterface interface {
	GetIngredientRows(ctx context.Context, recipeIDs []uint) ([]ShoppingListRow, error)
}
