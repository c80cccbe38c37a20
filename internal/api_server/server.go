package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"go.uber.org/zap"

	api "github.com/renovplan/renovation-planner/api/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/api/server"
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/config"
	handlers "github.com/renovplan/renovation-planner/internal/handlers/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/service"
	"github.com/renovplan/renovation-planner/internal/store"
	"github.com/renovplan/renovation-planner/pkg/metrics"
	"github.com/renovplan/renovation-planner/pkg/middleware"
	"github.com/renovplan/renovation-planner/pkg/objectstore"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	listener net.Listener
	catalog  *catalog.Catalog
	uploader objectstore.Uploader
}

// New returns a new instance of a renovation-planner server.
// The uploader may be nil, reports are then only downloaded.
func New(
	cfg *config.Config,
	store store.Store,
	listener net.Listener,
	cat *catalog.Catalog,
	uploader objectstore.Uploader,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		listener: listener,
		catalog:  cat,
		uploader: uploader,
	}
}

func oapiErrorHandler(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = fmt.Fprintf(w, "{\"message\":%q}", "API Error: "+message)
}

// Router builds the API routes. Request metrics are recorded by metricMiddleware when it is not nil.
func (s *Server) Router(metricMiddleware *metrics.Middleware) (http.Handler, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load swagger spec: %w", err)
	}
	// Skip server name validation
	swagger.Servers = nil

	oapiOpts := oapimiddleware.Options{
		ErrorHandler: oapiErrorHandler,
	}

	router := chi.NewRouter()
	if metricMiddleware != nil {
		router.Use(metricMiddleware.Handler)
	}

	router.Use(
		cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.Service.CorsOrigins,
			AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"X-Request-Id", "Content-Disposition", "Content-Location"},
			MaxAge:         300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
		render.SetContentType(render.ContentTypeJSON),
		oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapiOpts),
	)

	estimationSrv := service.NewEstimationService(s.store, service.NewDefaultEngine(s.catalog))
	h := handlers.NewServiceHandler(
		estimationSrv,
		service.NewProjectService(s.store, estimationSrv.Catalog()),
		service.NewReportService(s.uploader),
	)

	return server.HandlerWithOptions(h, server.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: handlers.ErrorHandler,
	}), nil
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router, err := s.Router(metricMiddleware)
	if err != nil {
		return err
	}

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
