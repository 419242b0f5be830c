package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// registerHandler handles POST /auth/register.
func (s *Server) registerHandler(c *echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := s.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(err)
	}
	tokens, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, tokens)
}

// loginHandler handles POST /auth/login.
func (s *Server) loginHandler(c *echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := s.users.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(err)
	}
	tokens, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// refreshHandler handles POST /auth/refresh: a valid refresh token
// yields a fresh pair.
func (s *Server) refreshHandler(c *echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "refresh_token is required")
	}
	userID, err := s.tokens.Validate(req.RefreshToken, "refresh")
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired refresh token")
	}
	if _, err := s.users.GetUser(c.Request().Context(), userID); err != nil {
		return mapServiceError(err)
	}
	tokens, err := s.tokens.IssuePair(userID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tokens)
}
