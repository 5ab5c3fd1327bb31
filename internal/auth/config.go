package auth

import (
	"fmt"
	"time"

	"foodgram-backend/internal/config"
)

const defaultTokenTTL = 24 * time.Hour

// AuthConfig holds the token settings shared by issuing and validation
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	authConfig := &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TokenTTL:  cfg.JWTTokenTTL,
	}
	if authConfig.TokenTTL == 0 {
		authConfig.TokenTTL = defaultTokenTTL
	}
	return authConfig
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("token TTL must not be negative")
	}
	return nil
}
