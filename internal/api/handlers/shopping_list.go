package handlers

import (
	"net/http"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const shoppingListFilename = "shopping_list.txt"

// ShoppingListHandler serves the aggregated shopping list
type ShoppingListHandler struct {
	shoppingListService service.ShoppingListServiceInterface
}

// NewShoppingListHandler creates a new shopping list handler
func NewShoppingListHandler(shoppingListService service.ShoppingListServiceInterface) *ShoppingListHandler {
	return &ShoppingListHandler{
		shoppingListService: shoppingListService,
	}
}

// DownloadShoppingCart handles GET /recipes/download_shopping_cart
// @Summary Download the shopping list
// @Description Sum the ingredients of every recipe in the caller's shopping cart, one "name - amount unit" line per ingredient
// @Tags shopping-cart
// @Produce plain
// @Success 200 {string} string "Shopping list"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /recipes/download_shopping_cart [get]
func (h *ShoppingListHandler) DownloadShoppingCart(c *gin.Context) {
	text, err := h.shoppingListService.ExportShoppingList(c.Request.Context(), auth.GetViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+shoppingListFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
