package repository

import (
	"context"

	"gorm.io/gorm"
)

// ShoppingListRow is one recipe ingredient row resolved to display names
type ShoppingListRow struct {
	RecipeID       uint
	IngredientName string
	UnitName       string
	Amount         int
}

// ShoppingListRepository reads the ingredient rows behind a shopping list
type ShoppingListRepository struct {
	db *gorm.DB
}

var _ ShoppingListRepositoryInterface = (*ShoppingListRepository)(nil)

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// GetIngredientRows returns every ingredient row of the given recipes joined
// to ingredient and unit names
func (r *ShoppingListRepository) GetIngredientRows(ctx context.Context, recipeIDs []uint) ([]ShoppingListRow, error) {
	rows := []ShoppingListRow{}
	if len(recipeIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("recipe_ingredients.recipe_id AS recipe_id, ingredients.name AS ingredient_name, measurement_units.name AS unit_name, recipe_ingredients.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN measurement_units ON measurement_units.id = ingredients.measurement_unit_id").
		Where("recipe_ingredients.recipe_id IN ?", recipeIDs).
		Order("recipe_ingredients.recipe_id ASC, recipe_ingredients.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
