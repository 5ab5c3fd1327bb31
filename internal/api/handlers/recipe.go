package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler handles HTTP requests for recipe operations
type RecipeHandler struct {
	recipeService service.RecipeServiceInterface
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeService service.RecipeServiceInterface) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// ListRecipes handles GET /recipes
// @Summary List recipes
// @Description List recipes newest first. The favorite and shopping cart filters only apply to authenticated callers.
// @Tags recipes
// @Produce json
// @Param author query int false "Author ID"
// @Param tags query []string false "Tag slugs (any of)" collectionFormat(multi)
// @Param is_favorited query bool false "Only the caller's favorites"
// @Param is_in_shopping_cart query bool false "Only recipes in the caller's shopping cart"
// @Success 200 {array} service.RecipeResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := &service.RecipeListFilter{
		IsFavorited:      parseBoolQuery(c, "is_favorited"),
		IsInShoppingCart: parseBoolQuery(c, "is_in_shopping_cart"),
	}

	if raw := strings.TrimSpace(c.Query("author")); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid author", Details: "must be a positive integer"})
			return
		}
		id := uint(authorID)
		filter.AuthorID = &id
	}

	for _, slug := range c.QueryArray("tags") {
		if slug = strings.TrimSpace(slug); slug != "" {
			filter.TagSlugs = append(filter.TagSlugs, slug)
		}
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), filter, auth.GetViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /recipes/:id
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} service.RecipeResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id, auth.GetViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe handles POST /recipes
// @Summary Create a recipe
// @Description Create a recipe owned by the caller. The image is a base64 data URI.
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body service.RecipeDraft true "Recipe"
// @Success 201 {object} service.RecipeResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var draft service.RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), auth.GetViewerID(c), &draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe handles PATCH /recipes/:id
// @Summary Update a recipe
// @Description Update a recipe owned by the caller. Omitted scalar fields are kept; ingredients and tags are replaced.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body service.RecipeDraft true "Recipe changes"
// @Success 200 {object} service.RecipeResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var draft service.RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, auth.GetViewerID(c), &draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /recipes/:id
// @Summary Delete a recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204 "Recipe deleted"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id, auth.GetViewerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
