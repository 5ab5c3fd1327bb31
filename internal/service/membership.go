package service

import (
	"context"
	"errors"
	"fmt"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/repository"
	"foodgram-backend/internal/storage"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// maxConcurrentAuthorLoads bounds the per-author recipe queries of a
// subscription listing
const maxConcurrentAuthorLoads = 4

// MembershipService manages favorites, shopping cart entries and author
// subscriptions
type MembershipService struct {
	recipes       repository.RecipeRepositoryInterface
	users         repository.UserRepositoryInterface
	favorites     repository.MembershipRepositoryInterface
	cart          repository.MembershipRepositoryInterface
	subscriptions repository.MembershipRepositoryInterface
	views         *recipeViewBuilder
}

// Ensure MembershipService implements MembershipServiceInterface
var _ MembershipServiceInterface = (*MembershipService)(nil)

// MembershipServiceDeps groups the collaborators of MembershipService
type MembershipServiceDeps struct {
	Recipes       repository.RecipeRepositoryInterface
	Users         repository.UserRepositoryInterface
	Favorites     repository.MembershipRepositoryInterface
	Cart          repository.MembershipRepositoryInterface
	Subscriptions repository.MembershipRepositoryInterface
	Images        storage.ImageStore
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(deps MembershipServiceDeps) *MembershipService {
	return &MembershipService{
		recipes:       deps.Recipes,
		users:         deps.Users,
		favorites:     deps.Favorites,
		cart:          deps.Cart,
		subscriptions: deps.Subscriptions,
		views: &recipeViewBuilder{
			favorites:     deps.Favorites,
			cart:          deps.Cart,
			subscriptions: deps.Subscriptions,
			images:        deps.Images,
		},
	}
}

// AuthorResponse is a subscribed author together with their recent recipes
type AuthorResponse struct {
	UserSummary
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int64           `json:"recipes_count" example:"12"`
}

// AddFavorite marks the recipe as a favorite of the user
func (s *MembershipService) AddFavorite(ctx context.Context, userID, recipeID uint) (*RecipeSummary, error) {
	return s.addRecipe(ctx, s.favorites, "favorite", userID, recipeID)
}

// RemoveFavorite unmarks the recipe; it is not an error if it was not marked
func (s *MembershipService) RemoveFavorite(ctx context.Context, userID, recipeID uint) error {
	return s.removeRecipe(ctx, s.favorites, "favorite", userID, recipeID)
}

// AddToCart puts the recipe into the user's shopping cart
func (s *MembershipService) AddToCart(ctx context.Context, userID, recipeID uint) (*RecipeSummary, error) {
	return s.addRecipe(ctx, s.cart, "shopping cart", userID, recipeID)
}

// RemoveFromCart takes the recipe out of the user's shopping cart
func (s *MembershipService) RemoveFromCart(ctx context.Context, userID, recipeID uint) error {
	return s.removeRecipe(ctx, s.cart, "shopping cart", userID, recipeID)
}

func (s *MembershipService) addRecipe(ctx context.Context, repo repository.MembershipRepositoryInterface, relation string, userID, recipeID uint) (*RecipeSummary, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if _, err := repo.Add(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to add recipe to %s: %w", relation, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recipe_id": recipeID,
		"relation":  relation,
	}).Info("Recipe added")

	summary := s.views.summary(recipe)
	return &summary, nil
}

func (s *MembershipService) removeRecipe(ctx context.Context, repo repository.MembershipRepositoryInterface, relation string, userID, recipeID uint) error {
	if _, err := s.getRecipe(ctx, recipeID); err != nil {
		return err
	}
	if err := repo.Remove(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("failed to remove recipe from %s: %w", relation, err)
	}
	return nil
}

// Subscribe subscribes the user to an author. Subscribing twice is a no-op.
func (s *MembershipService) Subscribe(ctx context.Context, userID, authorID uint, recipesLimit int) (*AuthorResponse, error) {
	if userID == authorID {
		return nil, apperrors.ErrSelfSubscription
	}
	author, err := s.getUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.subscriptions.Add(ctx, userID, authorID); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	logger.WithContext(ctx).WithField("author_id", authorID).Info("Subscribed to author")

	return s.authorView(ctx, author, recipesLimit)
}

// Unsubscribe removes the subscription if present
func (s *MembershipService) Unsubscribe(ctx context.Context, userID, authorID uint) error {
	if userID == authorID {
		return apperrors.ErrSelfSubscription
	}
	if _, err := s.getUser(ctx, authorID); err != nil {
		return err
	}
	if err := s.subscriptions.Remove(ctx, userID, authorID); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}

// ListSubscriptions returns the authors the user follows, most recent
// subscription first, each with up to recipesLimit recipes (all when <= 0)
func (s *MembershipService) ListSubscriptions(ctx context.Context, userID uint, recipesLimit int) ([]AuthorResponse, error) {
	authorIDs, err := s.subscriptions.ListTargets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if len(authorIDs) == 0 {
		return []AuthorResponse{}, nil
	}

	users, err := s.users.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}
	byID := make(map[uint]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	ordered := make([]*models.User, 0, len(authorIDs))
	for _, id := range authorIDs {
		if user, ok := byID[id]; ok {
			ordered = append(ordered, user)
		}
	}

	responses := make([]AuthorResponse, len(ordered))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAuthorLoads)
	for i, author := range ordered {
		g.Go(func() error {
			view, err := s.authorView(gctx, author, recipesLimit)
			if err != nil {
				return err
			}
			responses[i] = *view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}

func (s *MembershipService) authorView(ctx context.Context, author *models.User, recipesLimit int) (*AuthorResponse, error) {
	recipes, total, err := s.recipes.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list author recipes: %w", err)
	}
	summaries := make([]RecipeSummary, len(recipes))
	for i := range recipes {
		summaries[i] = s.views.summary(&recipes[i])
	}
	return &AuthorResponse{
		UserSummary:  toUserSummary(author, true),
		Recipes:      summaries,
		RecipesCount: total,
	}, nil
}

func (s *MembershipService) getRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

func (s *MembershipService) getUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
