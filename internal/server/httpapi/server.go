// Package httpapi exposes the service over JSON-over-HTTP: a chi router, a
// bearer-token middleware, and one handler per endpoint. Response shapes and
// error strings are part of the contract with the deployed devices and the
// mobile app, so handlers never leak storage detail to the client.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/blustick/blustick-api/internal/logging"
	"github.com/blustick/blustick-api/internal/server/config"
	"github.com/blustick/blustick-api/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address        string
	logger         logging.Logger
	users          *services.UserService
	detections     *services.DetectionService
	catalog        *services.CatalogService
	observations   *services.ObservationService
	questionnaires *services.QuestionnaireService
	jwtSecret      []byte
	queryTimeout   time.Duration
	validate       *validator.Validate
}

func NewHTTPServer(cfg *config.Config, l logging.Logger,
	us *services.UserService, ds *services.DetectionService,
	cs *services.CatalogService, obs *services.ObservationService,
	qs *services.QuestionnaireService) *HTTPServer {
	return &HTTPServer{
		address:        cfg.EndpointAddr,
		logger:         l.With("module", "http_server"),
		users:          us,
		detections:     ds,
		catalog:        cs,
		observations:   obs,
		questionnaires: qs,
		jwtSecret:      []byte(cfg.SecretKey),
		queryTimeout:   cfg.DBQueryTimeout,
		validate:       validator.New(),
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.newRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// queryContext bounds one store interaction. Client disconnects propagate
// through the request context and cancel the in-flight query.
func (s *HTTPServer) queryContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.queryTimeout)
}
