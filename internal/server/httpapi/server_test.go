package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/blustick/blustick-api/internal/logging"
	"github.com/blustick/blustick-api/internal/server/auth"
	"github.com/blustick/blustick-api/internal/server/config"
	"github.com/blustick/blustick-api/internal/server/repositories/repomanager"
	"github.com/blustick/blustick-api/internal/server/services"
)

const testSecret = "unit-test-secret"

// newTestServer wires a full HTTPServer against a sqlmock-backed store so
// tests exercise the real router, middleware and handler chain.
func newTestServer(t *testing.T) (*HTTPServer, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		EndpointAddr:          ":0",
		SecretKey:             testSecret,
		TokenValidityDuration: time.Hour,
		DBQueryTimeout:        5 * time.Second,
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := repomanager.NewPostgresRepositoryManager()

	srv := NewHTTPServer(cfg, logger,
		services.NewUserService(db, m, cfg, logger),
		services.NewDetectionService(db, m, logger),
		services.NewCatalogService(db, m),
		services.NewObservationService(db, m),
		services.NewQuestionnaireService(db, m),
	)
	return srv, mock
}

func testToken(t *testing.T, userID, username string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, username, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return token
}

// do routes a request through the server's full handler chain.
func do(t *testing.T, srv *HTTPServer, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	srv.newRouter().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true,"service":"blustick-api"}`, rec.Body.String())
}
