package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/repository"
	"foodgram-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("foodgram-backend/internal/service")

// RecipeService validates and persists recipes together with their
// ingredient and tag sets, and serves recipe reads
type RecipeService struct {
	recipes        repository.RecipeRepositoryInterface
	ingredients    repository.IngredientRepositoryInterface
	tags           repository.TagRepositoryInterface
	images         storage.ImageStore
	views          *recipeViewBuilder
	validator      *validator.Validate
	maxCookingTime int
}

// Ensure RecipeService implements RecipeServiceInterface
var _ RecipeServiceInterface = (*RecipeService)(nil)

// RecipeServiceDeps groups the collaborators of RecipeService
type RecipeServiceDeps struct {
	Recipes       repository.RecipeRepositoryInterface
	Ingredients   repository.IngredientRepositoryInterface
	Tags          repository.TagRepositoryInterface
	Favorites     repository.MembershipRepositoryInterface
	Cart          repository.MembershipRepositoryInterface
	Subscriptions repository.MembershipRepositoryInterface
	Images        storage.ImageStore
}

// NewRecipeService creates a new RecipeService. maxCookingTime of 0 leaves
// cooking time unbounded above.
func NewRecipeService(deps RecipeServiceDeps, validator *validator.Validate, maxCookingTime int) *RecipeService {
	return &RecipeService{
		recipes:     deps.Recipes,
		ingredients: deps.Ingredients,
		tags:        deps.Tags,
		images:      deps.Images,
		views: &recipeViewBuilder{
			favorites:     deps.Favorites,
			cart:          deps.Cart,
			subscriptions: deps.Subscriptions,
			images:        deps.Images,
		},
		validator:      validator,
		maxCookingTime: maxCookingTime,
	}
}

// IngredientAmount is one (ingredient, amount) pair of a draft
type IngredientAmount struct {
	ID     uint `json:"id" example:"1"`
	Amount int  `json:"amount" example:"200"`
}

// RecipeDraft is the caller-supplied desired state of a recipe. Scalar fields
// are pointers so that an update can leave them unchanged; ingredients and
// tags are always replaced as whole sets.
type RecipeDraft struct {
	Name        *string            `json:"name" validate:"omitempty,min=1,max=200" example:"Pancakes"`
	Text        *string            `json:"text" validate:"omitempty,min=1" example:"Whisk, rest, fry."`
	CookingTime *int               `json:"cooking_time" example:"20"`
	Image       *string            `json:"image" example:"data:image/png;base64,iVBORw0KGgo..."`
	Ingredients []IngredientAmount `json:"ingredients"`
	Tags        []uint             `json:"tags"`
}

// RecipeListFilter narrows ListRecipes. The membership flags only apply to
// authenticated viewers.
type RecipeListFilter struct {
	AuthorID         *uint
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
}

// CreateRecipe validates the draft and stores a new recipe for authorID
func (s *RecipeService) CreateRecipe(ctx context.Context, authorID uint, draft *RecipeDraft) (*RecipeResponse, error) {
	ctx, span := tracer.Start(ctx, "RecipeService.CreateRecipe", trace.WithAttributes(attribute.Int("author.id", int(authorID))))
	defer span.End()

	if err := requireFields(draft); err != nil {
		return nil, err
	}
	tagIDs, err := s.validateDraft(ctx, authorID, 0, strings.TrimSpace(*draft.Name), draft)
	if err != nil {
		return nil, err
	}

	image, err := storage.DecodeDataURI(*draft.Image)
	if err != nil {
		return nil, err
	}
	ref, err := s.images.Save(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("failed to store recipe image: %w", err)
	}

	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        strings.TrimSpace(*draft.Name),
		Image:       ref,
		Text:        *draft.Text,
		CookingTime: *draft.CookingTime,
	}
	if err := s.recipes.Create(ctx, recipe, toRecipeIngredients(draft.Ingredients), tagIDs); err != nil {
		s.discardImage(ctx, ref)
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, translateWriteError(err, "failed to create recipe")
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recipe_id": recipe.ID,
		"author_id": authorID,
	}).Info("Recipe created")

	return s.getView(ctx, recipe.ID, authorID)
}

// UpdateRecipe applies the draft to an existing recipe. Only its author may
// update it. Absent scalar fields keep their value; the ingredient and tag
// sets are replaced by the draft's.
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipeID, requesterID uint, draft *RecipeDraft) (*RecipeResponse, error) {
	ctx, span := tracer.Start(ctx, "RecipeService.UpdateRecipe", trace.WithAttributes(attribute.Int("recipe.id", int(recipeID))))
	defer span.End()

	existing, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if existing.AuthorID != requesterID {
		return nil, apperrors.ErrNotRecipeAuthor
	}
	if err := rejectBlankFields(draft); err != nil {
		return nil, err
	}

	name := existing.Name
	if draft.Name != nil {
		name = strings.TrimSpace(*draft.Name)
	}
	tagIDs, err := s.validateDraft(ctx, existing.AuthorID, existing.ID, name, draft)
	if err != nil {
		return nil, err
	}

	updated := &models.Recipe{
		BaseModel:   models.BaseModel{ID: existing.ID},
		AuthorID:    existing.AuthorID,
		Name:        name,
		Image:       existing.Image,
		Text:        existing.Text,
		CookingTime: existing.CookingTime,
	}
	if draft.Text != nil {
		updated.Text = *draft.Text
	}
	if draft.CookingTime != nil {
		updated.CookingTime = *draft.CookingTime
	}

	var newRef string
	if draft.Image != nil {
		image, err := storage.DecodeDataURI(*draft.Image)
		if err != nil {
			return nil, err
		}
		newRef, err = s.images.Save(ctx, image)
		if err != nil {
			return nil, fmt.Errorf("failed to store recipe image: %w", err)
		}
		updated.Image = newRef
	}

	if err := s.recipes.Replace(ctx, updated, toRecipeIngredients(draft.Ingredients), tagIDs); err != nil {
		if newRef != "" {
			s.discardImage(ctx, newRef)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, translateWriteError(err, "failed to update recipe")
	}
	if newRef != "" && existing.Image != "" {
		s.discardImage(ctx, existing.Image)
	}

	logger.WithContext(ctx).WithField("recipe_id", recipeID).Info("Recipe updated")

	return s.getView(ctx, recipeID, requesterID)
}

// GetRecipe returns one recipe as seen by viewerID
func (s *RecipeService) GetRecipe(ctx context.Context, id, viewerID uint) (*RecipeResponse, error) {
	return s.getView(ctx, id, viewerID)
}

// ListRecipes returns recipes matching filter, newest first
func (s *RecipeService) ListRecipes(ctx context.Context, filter *RecipeListFilter, viewerID uint) ([]RecipeResponse, error) {
	repoFilter := repository.RecipeFilter{}
	if filter != nil {
		repoFilter.AuthorID = filter.AuthorID
		repoFilter.TagSlugs = filter.TagSlugs

		if viewerID != 0 && (filter.IsFavorited || filter.IsInShoppingCart) {
			ids, err := s.membershipFilterIDs(ctx, viewerID, filter)
			if err != nil {
				return nil, err
			}
			repoFilter.IDs = ids
		}
	}

	recipes, err := s.recipes.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return s.views.build(ctx, viewerID, recipes)
}

// DeleteRecipe removes a recipe and everything referencing it. Only its
// author may delete it.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, requesterID uint) error {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe.AuthorID != requesterID {
		return apperrors.ErrNotRecipeAuthor
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	s.discardImage(ctx, recipe.Image)

	logger.WithContext(ctx).WithField("recipe_id", id).Info("Recipe deleted")
	return nil
}

// validateDraft runs the composition rules in order and returns the
// de-duplicated tag ids. recipeID is 0 on create.
func (s *RecipeService) validateDraft(ctx context.Context, authorID, recipeID uint, name string, draft *RecipeDraft) ([]uint, error) {
	if err := s.validator.Struct(draft); err != nil {
		return nil, toValidationError(err)
	}

	// 1. at least one ingredient
	if len(draft.Ingredients) == 0 {
		return nil, apperrors.ErrEmptyIngredients
	}

	// 2. pairwise distinct ingredient ids
	ids := make([]uint, 0, len(draft.Ingredients))
	seen := make(map[uint]bool, len(draft.Ingredients))
	for _, item := range draft.Ingredients {
		if seen[item.ID] {
			return nil, apperrors.ErrDuplicateIngredient.Detailf("ingredient %d is listed more than once", item.ID)
		}
		seen[item.ID] = true
		ids = append(ids, item.ID)
	}

	// 3. every ingredient exists
	found, err := s.ingredients.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to look up ingredients: %w", err)
	}
	if len(found) != len(ids) {
		present := make(map[uint]bool, len(found))
		for _, ingredient := range found {
			present[ingredient.ID] = true
		}
		for _, id := range ids {
			if !present[id] {
				return nil, apperrors.ErrUnknownIngredient.Detailf("ingredient %d does not exist", id)
			}
		}
	}

	// tags exist; duplicates collapse
	tagIDs := uniqueIDs(draft.Tags)
	if len(tagIDs) > 0 {
		tags, err := s.tags.GetByIDs(ctx, tagIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to look up tags: %w", err)
		}
		if len(tags) != len(tagIDs) {
			present := make(map[uint]bool, len(tags))
			for _, tag := range tags {
				present[tag.ID] = true
			}
			for _, id := range tagIDs {
				if !present[id] {
					return nil, apperrors.ErrUnknownTag.Detailf("tag %d does not exist", id)
				}
			}
		}
	}

	// 4. positive amounts
	for _, item := range draft.Ingredients {
		if item.Amount < 1 {
			return nil, apperrors.ErrInvalidAmount.Detailf("amount for ingredient %d must be at least 1", item.ID)
		}
	}

	// 5. cooking time bound
	if draft.CookingTime != nil {
		if err := s.checkCookingTime(*draft.CookingTime); err != nil {
			return nil, err
		}
	}

	// 6. (name, author) is free
	exists, err := s.recipes.ExistsByAuthorAndName(ctx, authorID, name, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateRecipeName
	}

	return tagIDs, nil
}

func (s *RecipeService) checkCookingTime(minutes int) error {
	if minutes < 1 {
		return apperrors.ErrInvalidCookingTime.Detailf("cooking time must be at least 1 minute")
	}
	if s.maxCookingTime > 0 && minutes > s.maxCookingTime {
		return apperrors.ErrInvalidCookingTime.Detailf("cooking time must be at most %d minutes", s.maxCookingTime)
	}
	return nil
}

func (s *RecipeService) membershipFilterIDs(ctx context.Context, viewerID uint, filter *RecipeListFilter) ([]uint, error) {
	var ids []uint
	if filter.IsFavorited {
		favorited, err := s.views.favorites.ListTargets(ctx, viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load favorites: %w", err)
		}
		ids = favorited
	}
	if filter.IsInShoppingCart {
		inCart, err := s.views.cart.ListTargets(ctx, viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load shopping cart: %w", err)
		}
		if ids == nil {
			ids = inCart
		} else {
			ids = intersectIDs(ids, inCart)
		}
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}

func (s *RecipeService) getView(ctx context.Context, id, viewerID uint) (*RecipeResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return s.views.buildOne(ctx, viewerID, recipe)
}

// discardImage deletes a stored image. Failures only leave an orphaned file.
func (s *RecipeService) discardImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.images.Delete(ctx, ref); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("image", ref).Warn("Failed to delete recipe image")
	}
}

// requireFields checks the fields a new recipe cannot do without
func requireFields(draft *RecipeDraft) error {
	switch {
	case draft.Name == nil || strings.TrimSpace(*draft.Name) == "":
		return apperrors.NewMissingFieldError("name")
	case draft.Text == nil || strings.TrimSpace(*draft.Text) == "":
		return apperrors.NewMissingFieldError("text")
	case draft.CookingTime == nil:
		return apperrors.NewMissingFieldError("cooking_time")
	case draft.Image == nil || strings.TrimSpace(*draft.Image) == "":
		return apperrors.NewMissingFieldError("image")
	}
	return nil
}

// rejectBlankFields checks that supplied fields are not blank
func rejectBlankFields(draft *RecipeDraft) error {
	switch {
	case draft.Name != nil && strings.TrimSpace(*draft.Name) == "":
		return apperrors.NewMissingFieldError("name")
	case draft.Text != nil && strings.TrimSpace(*draft.Text) == "":
		return apperrors.NewMissingFieldError("text")
	case draft.Image != nil && strings.TrimSpace(*draft.Image) == "":
		return apperrors.NewMissingFieldError("image")
	}
	return nil
}

// translateWriteError maps constraint violations that slipped past
// validation (concurrent writers) onto the composer's error taxonomy
func translateWriteError(err error, action string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrDuplicateRecipeName
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.ErrUnknownIngredient.Detailf("an ingredient or tag was removed from the catalog")
	default:
		return fmt.Errorf("%s: %w", action, err)
	}
}

func toRecipeIngredients(items []IngredientAmount) []models.RecipeIngredient {
	rows := make([]models.RecipeIngredient, len(items))
	for i, item := range items {
		rows[i] = models.RecipeIngredient{IngredientID: item.ID, Amount: item.Amount}
	}
	return rows
}

func uniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func intersectIDs(a, b []uint) []uint {
	inB := make(map[uint]bool, len(b))
	for _, id := range b {
		inB[id] = true
	}
	out := []uint{}
	for _, id := range a {
		if inB[id] {
			out = append(out, id)
		}
	}
	return out
}
