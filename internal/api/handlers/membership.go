package handlers

import (
	"context"
	"net/http"
	"strconv"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles favorites, shopping cart entries and subscriptions
type MembershipHandler struct {
	membershipService service.MembershipServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService service.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

type addRecipeFunc func(ctx context.Context, userID, recipeID uint) (*service.RecipeSummary, error)

type removeRecipeFunc func(ctx context.Context, userID, recipeID uint) error

func (h *MembershipHandler) addRecipe(c *gin.Context, add addRecipeFunc) {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := add(c.Request.Context(), auth.GetViewerID(c), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (h *MembershipHandler) removeRecipe(c *gin.Context, remove removeRecipeFunc) {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := remove(c.Request.Context(), auth.GetViewerID(c), recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddFavorite handles POST /recipes/:id/favorite
// @Summary Add a recipe to favorites
// @Tags favorites
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} service.RecipeSummary
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id}/favorite [post]
func (h *MembershipHandler) AddFavorite(c *gin.Context) {
	h.addRecipe(c, h.membershipService.AddFavorite)
}

// RemoveFavorite handles DELETE /recipes/:id/favorite
// @Summary Remove a recipe from favorites
// @Tags favorites
// @Param id path int true "Recipe ID"
// @Success 204 "Removed"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id}/favorite [delete]
func (h *MembershipHandler) RemoveFavorite(c *gin.Context) {
	h.removeRecipe(c, h.membershipService.RemoveFavorite)
}

// AddToCart handles POST /recipes/:id/shopping_cart
// @Summary Add a recipe to the shopping cart
// @Tags shopping-cart
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} service.RecipeSummary
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id}/shopping_cart [post]
func (h *MembershipHandler) AddToCart(c *gin.Context) {
	h.addRecipe(c, h.membershipService.AddToCart)
}

// RemoveFromCart handles DELETE /recipes/:id/shopping_cart
// @Summary Remove a recipe from the shopping cart
// @Tags shopping-cart
// @Param id path int true "Recipe ID"
// @Success 204 "Removed"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id}/shopping_cart [delete]
func (h *MembershipHandler) RemoveFromCart(c *gin.Context) {
	h.removeRecipe(c, h.membershipService.RemoveFromCart)
}

// Subscribe handles POST /users/:id/subscribe
// @Summary Subscribe to an author
// @Tags subscriptions
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Maximum number of recipes to include"
// @Success 201 {object} service.AuthorResponse
// @Failure 400 {object} ErrorResponse "Cannot subscribe to yourself"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/subscribe [post]
func (h *MembershipHandler) Subscribe(c *gin.Context) {
	authorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit, ok := parseRecipesLimit(c)
	if !ok {
		return
	}

	author, err := h.membershipService.Subscribe(c.Request.Context(), auth.GetViewerID(c), authorID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, author)
}

// Unsubscribe handles DELETE /users/:id/subscribe
// @Summary Unsubscribe from an author
// @Tags subscriptions
// @Param id path int true "Author ID"
// @Success 204 "Unsubscribed"
// @Failure 400 {object} ErrorResponse "Cannot unsubscribe from yourself"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/subscribe [delete]
func (h *MembershipHandler) Unsubscribe(c *gin.Context) {
	authorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.membershipService.Unsubscribe(c.Request.Context(), auth.GetViewerID(c), authorID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSubscriptions handles GET /users/subscriptions
// @Summary List subscribed authors
// @Description List the authors the caller follows, most recent subscription first
// @Tags subscriptions
// @Produce json
// @Param recipes_limit query int false "Maximum number of recipes per author"
// @Success 200 {array} service.AuthorResponse
// @Failure 400 {object} ErrorResponse "Invalid recipes_limit"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /users/subscriptions [get]
func (h *MembershipHandler) ListSubscriptions(c *gin.Context) {
	limit, ok := parseRecipesLimit(c)
	if !ok {
		return
	}

	authors, err := h.membershipService.ListSubscriptions(c.Request.Context(), auth.GetViewerID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authors)
}

// parseRecipesLimit reads recipes_limit; absent means no limit
func parseRecipesLimit(c *gin.Context) (int, bool) {
	raw := c.Query("recipes_limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid recipes_limit", Details: "must be a non-negative integer"})
		return 0, false
	}
	return limit, true
}
