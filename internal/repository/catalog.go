package repository

import (
	"context"
	"errors"
	"strings"

	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
)

// MeasurementUnitRepository handles database operations for measurement units
type MeasurementUnitRepository struct {
	db *gorm.DB
}

var _ MeasurementUnitRepositoryInterface = (*MeasurementUnitRepository)(nil)

// NewMeasurementUnitRepository creates a new measurement unit repository
func NewMeasurementUnitRepository(db *gorm.DB) *MeasurementUnitRepository {
	return &MeasurementUnitRepository{db: db}
}

// GetAll retrieves all units ordered by name
func (r *MeasurementUnitRepository) GetAll(ctx context.Context) ([]models.MeasurementUnit, error) {
	var units []models.MeasurementUnit
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// GetOrCreate returns the unit with the given name, creating it if needed.
// The bool reports whether a row was created.
func (r *MeasurementUnitRepository) GetOrCreate(ctx context.Context, name string) (*models.MeasurementUnit, bool, error) {
	var unit models.MeasurementUnit
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&unit).Error
	if err == nil {
		return &unit, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	unit = models.MeasurementUnit{Name: name}
	if err := r.db.WithContext(ctx).Create(&unit).Error; err != nil {
		return nil, false, err
	}
	return &unit, true, nil
}

// IngredientRepository handles read access to the ingredient catalog
type IngredientRepository struct {
	db *gorm.DB
}

var _ IngredientRepositoryInterface = (*IngredientRepository)(nil)

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// GetByID retrieves an ingredient with its unit
func (r *IngredientRepository) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.WithContext(ctx).Preload("MeasurementUnit").First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDs retrieves the ingredients that exist among ids. Missing ids are
// simply absent from the result.
func (r *IngredientRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.WithContext(ctx).Preload("MeasurementUnit").Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// List retrieves ingredients ordered by name. A non-empty namePrefix keeps only
// ingredients whose name starts with it, case-insensitively.
func (r *IngredientRepository) List(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := r.db.WithContext(ctx).Preload("MeasurementUnit")
	if namePrefix != "" {
		query = query.Where(`LOWER(ingredients.name) LIKE ? ESCAPE '\'`, escapeLike(strings.ToLower(namePrefix))+"%")
	}
	if err := query.Order("ingredients.name ASC, ingredients.id ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetOrCreate returns the ingredient with the given name and unit, creating it
// if needed. The bool reports whether a row was created.
func (r *IngredientRepository) GetOrCreate(ctx context.Context, name string, unitID uint) (*models.Ingredient, bool, error) {
	var ingredient models.Ingredient
	err := r.db.WithContext(ctx).Where("name = ? AND measurement_unit_id = ?", name, unitID).First(&ingredient).Error
	if err == nil {
		return &ingredient, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	ingredient = models.Ingredient{Name: name, MeasurementUnitID: unitID}
	if err := r.db.WithContext(ctx).Omit("MeasurementUnit").Create(&ingredient).Error; err != nil {
		return nil, false, err
	}
	return &ingredient, true, nil
}

// TagRepository handles read access to tags
type TagRepository struct {
	db *gorm.DB
}

var _ TagRepositoryInterface = (*TagRepository)(nil)

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// GetByID retrieves a tag by ID
func (r *TagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDs retrieves the tags that exist among ids
func (r *TagRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetAll retrieves all tags ordered by name
func (r *TagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetOrCreate looks a tag up by slug and creates it when absent. On return
// tag holds the stored row. The bool reports whether a row was created.
func (r *TagRepository) GetOrCreate(ctx context.Context, tag *models.Tag) (bool, error) {
	var existing models.Tag
	err := r.db.WithContext(ctx).Where("slug = ?", tag.Slug).First(&existing).Error
	if err == nil {
		*tag = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return false, err
	}
	return true, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
