package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// UserLookup is the part of the user repository token issuing needs
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService issues and validates bearer tokens. Credentials are checked by
// the external identity system; this service only trusts a known email.
type AuthService struct {
	config *AuthConfig
	users  UserLookup
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uint   `json:"user_id" example:"12345"`
	Username             string `json:"username" example:"cook"`
	Email                string `json:"email" example:"cook@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenRequest is the body of the development token endpoint
type TokenRequest struct {
	Email string `json:"email" binding:"required,email" example:"cook@example.com"`
}

// TokenResponse represents an issued bearer token
type TokenResponse struct {
	AccessToken      string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType        string `json:"tokenType" example:"bearer"`
	ExpiresInSeconds int64  `json:"expiresInSeconds" example:"86400"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users UserLookup) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{
		config: config,
		users:  users,
		now:    time.Now,
	}, nil
}

// IssueToken signs a token for the user registered under email
func (s *AuthService) IssueToken(ctx context.Context, email string) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &TokenResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInSeconds: int64(s.config.TokenTTL / time.Second),
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
