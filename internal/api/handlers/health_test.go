package handlers_test

import (
	"net/http"
	"testing"

	"foodgram-backend/internal/api/handlers"
	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	base := testutils.SetupSQLiteTestSuite(t)
	handler := handlers.NewHealthHandler(base.DB, "1.2.3")

	ht := testutils.SetupHTTPTest()
	ht.Router.GET("/health", handler.Health)
	ht.Router.GET("/health/ready", handler.Ready)
	ht.Router.GET("/health/live", handler.Live)

	t.Run("healthy", func(t *testing.T) {
		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, ht.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &got)
		assert.Equal(t, "healthy", got.Status)
		assert.Equal(t, "1.2.3", got.Version)
		assert.Equal(t, "healthy", got.Services["database"])
	})

	t.Run("ready and live", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, ht.MakeRequest(http.MethodGet, "/health/ready", nil).Code)
		assert.Equal(t, http.StatusOK, ht.MakeRequest(http.MethodGet, "/health/live", nil).Code)
	})

	t.Run("database closed", func(t *testing.T) {
		sqlDB, err := base.DB.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, ht.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &got)
		assert.Equal(t, "unhealthy", got.Status)
		assert.Equal(t, http.StatusServiceUnavailable, ht.MakeRequest(http.MethodGet, "/health/ready", nil).Code)
		assert.Equal(t, http.StatusOK, ht.MakeRequest(http.MethodGet, "/health/live", nil).Code)
	})
}
