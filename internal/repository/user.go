package repository

import (
	"context"

	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves the users with the given IDs, ordered by ID
func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user together with everything that references it: the
// user's recipes (and their ingredient, tag, favorite and cart rows), the
// user's own favorites and cart entries, and subscriptions on either side.
// Returns gorm.ErrRecordNotFound when no such user exists.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authored := tx.Model(&models.Recipe{}).Select("id").Where("author_id = ?", id)

		steps := []struct {
			model interface{}
			query string
			args  []interface{}
		}{
			{&models.Favorite{}, "user_id = ? OR recipe_id IN (?)", []interface{}{id, authored}},
			{&models.ShoppingCartEntry{}, "user_id = ? OR recipe_id IN (?)", []interface{}{id, authored}},
			{&models.Subscription{}, "user_id = ? OR author_id = ?", []interface{}{id, id}},
			{&models.RecipeIngredient{}, "recipe_id IN (?)", []interface{}{authored}},
			{&models.RecipeTag{}, "recipe_id IN (?)", []interface{}{authored}},
			{&models.Recipe{}, "author_id = ?", []interface{}{id}},
		}
		for _, step := range steps {
			if err := tx.Where(step.query, step.args...).Delete(step.model).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
