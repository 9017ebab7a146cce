package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/api/middleware"
)

// CreateSessionRequest builds a request carrying a session header and a
// discard logger, matching what the middleware chain provides in production.
func CreateSessionRequest(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}
