package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

// The happy paths need a live runner and store and are covered by the
// database-backed integration tests; these cover request validation.
func TestRunHandlers_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.POST("/meetings/:id/run", s.runMeetingHandler)
	e.POST("/meetings/:id/run-background", s.runBackgroundHandler)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
	}{
		{
			name:     "negative rounds sync",
			path:     "/meetings/m1/run",
			body:     `{"rounds": -1}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "negative rounds background",
			path:     "/meetings/m1/run-background",
			body:     `{"rounds": -2}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			path:     "/meetings/m1/run",
			body:     `{"rounds": "three"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestUserMessageHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.POST("/meetings/:id/messages", s.addUserMessageHandler)

	req := httptest.NewRequest(http.MethodPost, "/meetings/m1/messages", strings.NewReader(`{"content": ""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
