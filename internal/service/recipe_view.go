package service

import (
	"context"
	"fmt"

	"foodgram-backend/internal/database/models"
	"foodgram-backend/internal/repository"
	"foodgram-backend/internal/storage"

	"golang.org/x/sync/errgroup"
)

// UserSummary is the public view of a user
type UserSummary struct {
	ID           uint   `json:"id" example:"1"`
	Email        string `json:"email" example:"cook@example.com"`
	Username     string `json:"username" example:"cook"`
	FirstName    string `json:"first_name" example:"Ada"`
	LastName     string `json:"last_name" example:"Lovelace"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// RecipeIngredientResponse is one ingredient line of a recipe
type RecipeIngredientResponse struct {
	ID       uint   `json:"id" example:"1"`
	Name     string `json:"name" example:"flour"`
	UnitName string `json:"unit_name" example:"g"`
	Amount   int    `json:"amount" example:"200"`
}

// RecipeResponse is the full view of a recipe returned by every read and
// write path
type RecipeResponse struct {
	ID          uint                       `json:"id" example:"1"`
	Author      UserSummary                `json:"author"`
	Tags        []TagResponse              `json:"tags"`
	Ingredients []RecipeIngredientResponse `json:"ingredients"`
	Name        string                     `json:"name" example:"Pancakes"`
	ImageURL    string                     `json:"image_url" example:"/media/recipes/0b9c.png"`
	Text        string                     `json:"text" example:"Whisk, rest, fry."`
	CookingTime int                        `json:"cooking_time" example:"20"`
	IsFavorited bool                       `json:"is_favorited"`
	IsInCart    bool                       `json:"is_in_cart"`
}

// RecipeSummary is the short form of a recipe used in membership responses
type RecipeSummary struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"Pancakes"`
	ImageURL    string `json:"image_url" example:"/media/recipes/0b9c.png"`
	CookingTime int    `json:"cooking_time" example:"20"`
}

// recipeViewBuilder turns stored recipes into RecipeResponse values. It is
// the only place views are assembled, whichever path loaded the recipe.
type recipeViewBuilder struct {
	favorites     repository.MembershipRepositoryInterface
	cart          repository.MembershipRepositoryInterface
	subscriptions repository.MembershipRepositoryInterface
	images        storage.ImageStore
}

// viewerFlags holds the viewer's membership state for a batch of recipes
type viewerFlags struct {
	favorited  map[uint]bool
	inCart     map[uint]bool
	subscribed map[uint]bool
}

// build renders recipes for viewerID, who may be 0 for anonymous callers
func (b *recipeViewBuilder) build(ctx context.Context, viewerID uint, recipes []models.Recipe) ([]RecipeResponse, error) {
	flags, err := b.loadFlags(ctx, viewerID, recipes)
	if err != nil {
		return nil, err
	}

	responses := make([]RecipeResponse, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		responses[i] = RecipeResponse{
			ID:          r.ID,
			Author:      toUserSummary(&r.Author, flags.subscribed[r.AuthorID]),
			Tags:        make([]TagResponse, 0, len(r.TagLinks)),
			Ingredients: make([]RecipeIngredientResponse, 0, len(r.Ingredients)),
			Name:        r.Name,
			ImageURL:    b.images.URL(r.Image),
			Text:        r.Text,
			CookingTime: r.CookingTime,
			IsFavorited: flags.favorited[r.ID],
			IsInCart:    flags.inCart[r.ID],
		}
		for _, tag := range r.Tags() {
			responses[i].Tags = append(responses[i].Tags, toTagResponse(&tag))
		}
		for _, ri := range r.Ingredients {
			responses[i].Ingredients = append(responses[i].Ingredients, RecipeIngredientResponse{
				ID:       ri.IngredientID,
				Name:     ri.Ingredient.Name,
				UnitName: ri.Ingredient.MeasurementUnit.Name,
				Amount:   ri.Amount,
			})
		}
	}
	return responses, nil
}

// buildOne renders a single recipe
func (b *recipeViewBuilder) buildOne(ctx context.Context, viewerID uint, recipe *models.Recipe) (*RecipeResponse, error) {
	views, err := b.build(ctx, viewerID, []models.Recipe{*recipe})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// summary renders the short form of a recipe
func (b *recipeViewBuilder) summary(recipe *models.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:          recipe.ID,
		Name:        recipe.Name,
		ImageURL:    b.images.URL(recipe.Image),
		CookingTime: recipe.CookingTime,
	}
}

// loadFlags fetches the three membership lookups concurrently
func (b *recipeViewBuilder) loadFlags(ctx context.Context, viewerID uint, recipes []models.Recipe) (*viewerFlags, error) {
	flags := &viewerFlags{
		favorited:  map[uint]bool{},
		inCart:     map[uint]bool{},
		subscribed: map[uint]bool{},
	}
	if viewerID == 0 || len(recipes) == 0 {
		return flags, nil
	}

	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	seenAuthor := map[uint]bool{}
	for i := range recipes {
		recipeIDs = append(recipeIDs, recipes[i].ID)
		if !seenAuthor[recipes[i].AuthorID] {
			seenAuthor[recipes[i].AuthorID] = true
			authorIDs = append(authorIDs, recipes[i].AuthorID)
		}
	}

	var favorited, inCart, subscribed []uint
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		favorited, err = b.favorites.FilterTargets(gctx, viewerID, recipeIDs)
		if err != nil {
			return fmt.Errorf("failed to load favorites: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		inCart, err = b.cart.FilterTargets(gctx, viewerID, recipeIDs)
		if err != nil {
			return fmt.Errorf("failed to load shopping cart: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		subscribed, err = b.subscriptions.FilterTargets(gctx, viewerID, authorIDs)
		if err != nil {
			return fmt.Errorf("failed to load subscriptions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, id := range favorited {
		flags.favorited[id] = true
	}
	for _, id := range inCart {
		flags.inCart[id] = true
	}
	for _, id := range subscribed {
		flags.subscribed[id] = true
	}
	return flags, nil
}

func toUserSummary(user *models.User, subscribed bool) UserSummary {
	return UserSummary{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: subscribed,
	}
}
