package config

import (
	"fmt"
	"os"
	"time"

	"github.com/yongjunp/miniter/internal/common/constants"
	commonerrors "github.com/yongjunp/miniter/internal/common/errors"
)

type APIConfig struct {
	HTTPPort       string
	DatabaseURL    string
	JWTSecret      string
	AccessTokenTTL time.Duration
	RequestTimeout time.Duration
}

func LoadAPIConfig() (APIConfig, error) {
	jwtSecret, err := mustEnv("JWT_SECRET")
	if err != nil {
		return APIConfig{}, err
	}

	if err := validateJWTSecret(jwtSecret); err != nil {
		return APIConfig{}, err
	}

	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return APIConfig{}, err
	}

	return APIConfig{
		HTTPPort:       getEnv("API_HTTP_PORT", constants.DefaultAPIHTTPPort),
		DatabaseURL:    databaseURL,
		JWTSecret:      jwtSecret,
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", constants.DefaultAccessTokenTTL),
		RequestTimeout: getDurationEnv("API_REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
	}, nil
}

func validateJWTSecret(secret string) error {
	if len(secret) < constants.JWTSecretMinLength {
		return fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidJWTSecret, len(secret))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
