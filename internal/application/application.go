package application

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"profile_validator/internal/config"
	"profile_validator/internal/domain/service/profile"
	"profile_validator/internal/infrastructure/oracle"
	"profile_validator/internal/metrics"
	"profile_validator/internal/server"
	"profile_validator/pkg/application/modules"
	"profile_validator/pkg/contextx"
	"profile_validator/pkg/logx"
	"profile_validator/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run starts the API, metrics and probe servers and blocks until ctx is
// cancelled or one of them fails.
func Run(ctx context.Context, cfg config.Config) error {
	g, ctx := errgroup.WithContext(ctx)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	m := metrics.New(registry)

	analyzer := oracle.New(cfg.Oracle).WithMetrics(m)
	profileService := profile.NewService(analyzer).WithMetrics(m)

	logger(ctx).Info("text quality oracle configured",
		slog.String(logx.FieldProvider, analyzer.Status().CurrentProvider),
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           NewRouter(cfg.HTTP, profileService),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		Oracle:        cfg.Oracle.ProviderName(),
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	return g.Wait() //nolint:wrapcheck
}

// NewRouter builds the API router with the full middleware chain.
func NewRouter(cfg config.HTTP, profileService *profile.Service) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, cfg.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.LogFieldMaxLen),
		middlewarex.Recovery,
		middlewarex.CORS(http.MethodGet, http.MethodPost),
	)

	server.NewServer(
		server.NewProfileServer(profileService),
	).RegisterRoutes(router)

	return router
}
