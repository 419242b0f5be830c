package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/config"
)

const (
	tokenIssuer    = "conclave"
	claimTokenKind = "kind"
	userContextKey = "user_id"
)

// TokenIssuer issues and validates HS256 access and refresh tokens.
type TokenIssuer struct {
	secret        []byte
	accessExpire  time.Duration
	refreshExpire time.Duration
}

// NewTokenIssuer creates a token issuer from the auth configuration.
func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret:        []byte(cfg.JWTSecret),
		accessExpire:  cfg.AccessTokenExpire,
		refreshExpire: cfg.RefreshTokenExpire,
	}
}

// IssuePair issues an access/refresh token pair for a user.
func (t *TokenIssuer) IssuePair(userID string) (TokenResponse, error) {
	access, err := t.issue(userID, "access", t.accessExpire)
	if err != nil {
		return TokenResponse{}, err
	}
	refresh, err := t.issue(userID, "refresh", t.refreshExpire)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

func (t *TokenIssuer) issue(userID, kind string, expire time.Duration) (string, error) {
	now := time.Now()
	token, err := jwt.NewBuilder().
		Issuer(tokenIssuer).
		Subject(userID).
		IssuedAt(now).
		Expiration(now.Add(expire)).
		Claim(claimTokenKind, kind).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, t.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return string(signed), nil
}

// Validate parses and verifies a token of the expected kind and returns
// the user id.
func (t *TokenIssuer) Validate(tokenString, kind string) (string, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256, t.secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	got, ok := token.Get(claimTokenKind)
	if !ok || got != kind {
		return "", fmt.Errorf("invalid token: not a %s token", kind)
	}
	return token.Subject(), nil
}

// requireAuth rejects requests without a valid bearer access token and
// stores the user id on the request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}
		userID, err := s.tokens.Validate(tokenString, "access")
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}
		c.Set(userContextKey, userID)
		return next(c)
	}
}

// currentUserID returns the authenticated user id, or empty when auth
// is disabled.
func currentUserID(c *echo.Context) string {
	if v, ok := c.Get(userContextKey).(string); ok {
		return v
	}
	return ""
}
