package handlers

import (
	"net/http"
	"strconv"

	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Validation failed"`
	Details string `json:"details,omitempty" example:"recipe must contain at least one ingredient"`
	Field   string `json:"field,omitempty" example:"ingredients"`
	Code    string `json:"code,omitempty" example:"empty_ingredients"`
}

// respondError maps service errors onto HTTP statuses. Unknown errors are
// logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	if v, ok := apperrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: v.Message,
			Field:   v.Field,
			Code:    v.Code,
		})
		return
	}

	switch {
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required", Details: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name, Details: "must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// parseBoolQuery accepts 1/0 and true/false; anything else is false
func parseBoolQuery(c *gin.Context, name string) bool {
	value, err := strconv.ParseBool(c.Query(name))
	return err == nil && value
}
