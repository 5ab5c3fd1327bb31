package repository

import (
	"context"
	"time"

	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeFilter narrows List results. Zero values mean "no constraint".
type RecipeFilter struct {
	AuthorID *uint
	TagSlugs []string
	// IDs restricts results to the given recipes when non-nil. An empty,
	// non-nil slice matches nothing.
	IDs []uint
}

// RecipeRepository handles database operations for recipes and the rows they own
type RecipeRepository struct {
	db *gorm.DB
}

// Ensure RecipeRepository implements RecipeRepositoryInterface
var _ RecipeRepositoryInterface = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts the recipe, its ingredient rows and its tag rows in one
// transaction. On success recipe.ID is set.
func (r *RecipeRepository) Create(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		return insertRecipeRows(tx, recipe.ID, ingredients, tagIDs)
	})
}

// Replace writes the recipe's scalar fields and swaps its ingredient and tag
// rows for the given sets in one transaction. Returns gorm.ErrRecordNotFound
// if the recipe no longer exists.
func (r *RecipeRepository) Replace(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe.UpdatedAt = time.Now()
		result := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(map[string]interface{}{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
			"image":        recipe.Image,
			"updated_at":   recipe.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		return insertRecipeRows(tx, recipe.ID, ingredients, tagIDs)
	})
}

func insertRecipeRows(tx *gorm.DB, recipeID uint, ingredients []models.RecipeIngredient, tagIDs []uint) error {
	if len(ingredients) > 0 {
		rows := make([]models.RecipeIngredient, 0, len(ingredients))
		for _, ing := range ingredients {
			rows = append(rows, models.RecipeIngredient{
				RecipeID:     recipeID,
				IngredientID: ing.IngredientID,
				Amount:       ing.Amount,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(tagIDs) > 0 {
		rows := make([]models.RecipeTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			rows = append(rows, models.RecipeTag{RecipeID: recipeID, TagID: tagID})
		}
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

// withDetails preloads everything a full recipe view needs
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.id ASC")
		}).
		Preload("Ingredients.Ingredient.MeasurementUnit").
		Preload("TagLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_tags.tag_id ASC")
		}).
		Preload("TagLinks.Tag")
}

// GetByID retrieves a recipe with author, ingredients and tags
func (r *RecipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := withDetails(r.db.WithContext(ctx)).First(&recipe, "recipes.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List retrieves recipes matching filter, newest first, with full details
func (r *RecipeRepository) List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return recipes, nil
	}

	query := r.db.WithContext(ctx).Model(&models.Recipe{})
	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}
	if filter.IDs != nil {
		query = query.Where("recipes.id IN ?", filter.IDs)
	}
	if len(filter.TagSlugs) > 0 {
		tagged := r.db.Model(&models.RecipeTag{}).
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}

	if err := withDetails(query).Order("recipes.created_at DESC, recipes.id DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListByAuthor retrieves up to limit of an author's recipes, newest first,
// together with the author's total recipe count. limit <= 0 means no limit.
func (r *RecipeRepository) ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	// Count total
	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// ExistsByAuthorAndName reports whether the author has another recipe with
// this name. excludeID skips the recipe being updated; pass 0 on create.
func (r *RecipeRepository) ExistsByAuthorAndName(ctx context.Context, authorID uint, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("author_id = ? AND name = ?", authorID, name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a recipe and every row that references it in one
// transaction. Returns gorm.ErrRecordNotFound if the recipe does not exist.
func (r *RecipeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Favorite{},
			&models.ShoppingCartEntry{},
			&models.RecipeIngredient{},
			&models.RecipeTag{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
