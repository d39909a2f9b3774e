package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/gestor-tareas-api/internal/config"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/logger"
)

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// CreateToken returns a signed token whose subject is subject.
	CreateToken(ctx context.Context, subject string) (string, error)

	// ParseToken verifies tokenString and returns its subject.
	// Every failure wraps ErrInvalidToken; expired tokens also wrap ErrExpiredToken.
	ParseToken(ctx context.Context, tokenString string) (string, error)
}

// hmacTokenService is an implementation of TokenService using HMAC-SHA signing.
type hmacTokenService struct {
	signingKey    []byte
	method        *jwt.SigningMethodHMAC
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	return newHMACTokenService(cfg, time.Now)
}

func newHMACTokenService(cfg config.AuthConfig, timeFunc func() time.Time) (*hmacTokenService, error) {
	if len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("secret key must be at least 32 characters")
	}
	if cfg.TokenLifetimeMinutes <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive")
	}

	method, err := signingMethod(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	return &hmacTokenService{
		signingKey:    []byte(cfg.SecretKey),
		method:        method,
		tokenLifetime: cfg.TokenLifetime(),
		timeFunc:      timeFunc,
	}, nil
}

func signingMethod(name string) (*jwt.SigningMethodHMAC, error) {
	switch name {
	case "", jwt.SigningMethodHS256.Name:
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Name:
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Name:
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", name)
	}
}

// CreateToken implements TokenService.CreateToken
func (s *hmacTokenService) CreateToken(ctx context.Context, subject string) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
		ID:        uuid.New().String(),
	}

	signedToken, err := jwt.NewWithClaims(s.method, claims).SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign access token",
			"error", err,
			"signing_method", s.method.Alg())
		return "", fmt.Errorf("failed to sign access token with %s: %w", s.method.Alg(), err)
	}

	return signedToken, nil
}

// ParseToken implements TokenService.ParseToken
func (s *hmacTokenService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, ErrMissingToken)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeFunc),
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired", "error", err)
			return "", fmt.Errorf("%w: %w", ErrInvalidToken, ErrExpiredToken)
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("token validation failed: malformed token", "error", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("token validation failed: invalid signature", "error", err)
		default:
			log.Debug("token validation failed",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
		}
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		log.Debug("token validation failed: missing subject")
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
