package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/repository"

	"gorm.io/gorm"
)

// CatalogService provides read access to ingredients and tags
type CatalogService struct {
	ingredients repository.IngredientRepositoryInterface
	tags        repository.TagRepositoryInterface
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService
func NewCatalogService(ingredients repository.IngredientRepositoryInterface, tags repository.TagRepositoryInterface) *CatalogService {
	return &CatalogService{
		ingredients: ingredients,
		tags:        tags,
	}
}

// IngredientResponse represents an ingredient in API responses
type IngredientResponse struct {
	ID              uint   `json:"id" example:"1"`
	Name            string `json:"name" example:"flour"`
	MeasurementUnit string `json:"measurement_unit" example:"g"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Breakfast"`
	Color string `json:"color" example:"#E26C2D"`
	Slug  string `json:"slug" example:"breakfast"`
}

// ListIngredients returns ingredients ordered by name, optionally only those
// whose name starts with namePrefix
func (s *CatalogService) ListIngredients(ctx context.Context, namePrefix string) ([]IngredientResponse, error) {
	ingredients, err := s.ingredients.List(ctx, strings.TrimSpace(namePrefix))
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	responses := make([]IngredientResponse, len(ingredients))
	for i := range ingredients {
		responses[i] = toIngredientResponse(&ingredients[i])
	}
	return responses, nil
}

// GetIngredient looks up one ingredient
func (s *CatalogService) GetIngredient(ctx context.Context, id uint) (*IngredientResponse, error) {
	ingredient, err := s.ingredients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	response := toIngredientResponse(ingredient)
	return &response, nil
}

// ListTags returns all tags ordered by name
func (s *CatalogService) ListTags(ctx context.Context) ([]TagResponse, error) {
	tags, err := s.tags.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	responses := make([]TagResponse, len(tags))
	for i := range tags {
		responses[i] = toTagResponse(&tags[i])
	}
	return responses, nil
}

// GetTag looks up one tag
func (s *CatalogService) GetTag(ctx context.Context, id uint) (*TagResponse, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	response := toTagResponse(tag)
	return &response, nil
}

func toIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit.Name,
	}
}

func toTagResponse(tag *models.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}
