package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// setProviderKeyHandler handles PUT /providers/:provider/key. The key
// is encrypted before it is stored.
func (s *Server) setProviderKeyHandler(c *echo.Context) error {
	provider := c.Param("provider")
	if provider == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "provider is required")
	}
	var req providerKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.providerKeys.SetKey(c.Request().Context(), provider, req.APIKey); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// deleteProviderKeyHandler handles DELETE /providers/:provider/key.
func (s *Server) deleteProviderKeyHandler(c *echo.Context) error {
	provider := c.Param("provider")
	if provider == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "provider is required")
	}
	if err := s.providerKeys.DeleteKey(c.Request().Context(), provider); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listProvidersHandler handles GET /providers: the providers with a
// stored key. Environment fallback keys are not reported.
func (s *Server) listProvidersHandler(c *echo.Context) error {
	providers, err := s.providerKeys.ListProviders(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ProvidersResponse{Providers: providers})
}
