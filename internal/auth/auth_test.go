package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodgram-backend/internal/config"
	"foodgram-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUsers map[string]*models.User

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := f[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func testUser() *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: 42}, Username: "cook", Email: "cook@example.com"}
}

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(&AuthConfig{
		JWTSecret: "test-signing-key",
		Issuer:    "foodgram-backend",
		TokenTTL:  time.Hour,
	}, fakeUsers{"cook@example.com": testUser()})
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("derived from application config", func(t *testing.T) {
		authConfig := NewAuthConfig(&config.Config{JWTSecret: "secret", JWTIssuer: "foodgram-backend"})
		assert.NoError(t, authConfig.ValidateConfig())
		assert.Equal(t, defaultTokenTTL, authConfig.TokenTTL)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := (&AuthConfig{TokenTTL: time.Hour}).ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("service rejects invalid config", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{}, nil)
		assert.Error(t, err)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateJWT(testUser())
	require.NoError(t, err)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "cook", claims.Username)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "foodgram-backend", claims.Issuer)
}

func TestJWTRejected(t *testing.T) {
	service := newTestService(t)
	token, err := service.GenerateJWT(testUser())
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "another-key", TokenTTL: time.Hour}, nil)
		require.NoError(t, err)
		_, err = other.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { service.now = time.Now }()
		_, err := service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})
}

func TestIssueToken(t *testing.T) {
	service := newTestService(t)

	t.Run("known user", func(t *testing.T) {
		response, err := service.IssueToken(context.Background(), "cook@example.com")
		require.NoError(t, err)
		assert.Equal(t, "bearer", response.TokenType)
		assert.Equal(t, int64(3600), response.ExpiresInSeconds)

		claims, err := service.ValidateJWT(response.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.IssueToken(context.Background(), "nobody@example.com")
		assert.Error(t, err)
	})
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)
	token, err := service.GenerateJWT(testUser())
	require.NoError(t, err)

	newRouter := func(handler gin.HandlerFunc) *gin.Engine {
		router := gin.New()
		router.GET("/", handler, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"viewer": GetViewerID(c)})
		})
		return router
	}

	testCases := []struct {
		name       string
		handler    gin.HandlerFunc
		header     string
		wantStatus int
		wantViewer float64
	}{
		{"required with token", middleware.RequireAuth(), "Bearer " + token, http.StatusOK, 42},
		{"required without header", middleware.RequireAuth(), "", http.StatusUnauthorized, 0},
		{"required with bad scheme", middleware.RequireAuth(), "Token " + token, http.StatusUnauthorized, 0},
		{"required with bad token", middleware.RequireAuth(), "Bearer nope", http.StatusUnauthorized, 0},
		{"optional with token", middleware.OptionalAuth(), "Bearer " + token, http.StatusOK, 42},
		{"optional anonymous", middleware.OptionalAuth(), "", http.StatusOK, 0},
		{"optional with bad token", middleware.OptionalAuth(), "Bearer nope", http.StatusOK, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			newRouter(tc.handler).ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				var body map[string]float64
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tc.wantViewer, body["viewer"])
			}
		})
	}
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(newTestService(t))

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewBufferString(body))
		c.Request.Header.Set("Content-Type", "application/json")
		handler.IssueToken(c)
		return w
	}

	t.Run("issue token", func(t *testing.T) {
		w := post(`{"email":"cook@example.com"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var response TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.AccessToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := post(`{"email":"nobody@example.com"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := post(`{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
