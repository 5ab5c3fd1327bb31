package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CatalogServiceInterface defines the interface for ingredient and tag lookups
type CatalogServiceInterface interface {
	ListIngredients(ctx context.Context, namePrefix string) ([]IngredientResponse, error)
	GetIngredient(ctx context.Context, id uint) (*IngredientResponse, error)
	ListTags(ctx context.Context) ([]TagResponse, error)
	GetTag(ctx context.Context, id uint) (*TagResponse, error)
}

// RecipeServiceInterface defines the interface for the recipe composer and
// recipe reads. A viewerID of 0 means an anonymous caller.
type RecipeServiceInterface interface {
	CreateRecipe(ctx context.Context, authorID uint, draft *RecipeDraft) (*RecipeResponse, error)
	UpdateRecipe(ctx context.Context, recipeID, requesterID uint, draft *RecipeDraft) (*RecipeResponse, error)
	GetRecipe(ctx context.Context, id, viewerID uint) (*RecipeResponse, error)
	ListRecipes(ctx context.Context, filter *RecipeListFilter, viewerID uint) ([]RecipeResponse, error)
	DeleteRecipe(ctx context.Context, id, requesterID uint) error
}

// MembershipServiceInterface defines the interface for favorites, the
// shopping cart and author subscriptions
type MembershipServiceInterface interface {
	AddFavorite(ctx context.Context, userID, recipeID uint) (*RecipeSummary, error)
	RemoveFavorite(ctx context.Context, userID, recipeID uint) error
	AddToCart(ctx context.Context, userID, recipeID uint) (*RecipeSummary, error)
	RemoveFromCart(ctx context.Context, userID, recipeID uint) error
	Subscribe(ctx context.Context, userID, authorID uint, recipesLimit int) (*AuthorResponse, error)
	Unsubscribe(ctx context.Context, userID, authorID uint) error
	ListSubscriptions(ctx context.Context, userID uint, recipesLimit int) ([]AuthorResponse, error)
}

// ShoppingListServiceInterface defines the interface for shopping list aggregation
type ShoppingListServiceInterface interface {
	BuildShoppingList(ctx context.Context, userID uint) ([]LineItem, error)
	ExportShoppingList(ctx context.Context, userID uint) (string, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetUser(ctx context.Context, id, viewerID uint) (*UserSummary, error)
	GetCurrentUser(ctx context.Context, viewerID uint) (*UserSummary, error)
	DeleteUser(ctx context.Context, id uint) error
}
