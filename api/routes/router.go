package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pawmarket/pawmarket-backend/api/controllers"
	"github.com/pawmarket/pawmarket-backend/api/middleware"
	"github.com/pawmarket/pawmarket-backend/internal/catalog"
	"github.com/pawmarket/pawmarket-backend/pkg/config"
	"github.com/pawmarket/pawmarket-backend/pkg/db"
	"github.com/pawmarket/pawmarket-backend/pkg/logger"
	"github.com/pawmarket/pawmarket-backend/pkg/metrics"
	"github.com/pawmarket/pawmarket-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	cache redis.Pinger,
	registry *prometheus.Registry,
	catalogMetrics *metrics.CatalogMetrics,
	catalogService catalog.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cache, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Use(middleware.Shopper(*cfg, logg))
		r.Get("/", controllers.CatalogBrowse(catalogService, catalogMetrics, logg))
		r.Get("/{productID}", controllers.CatalogDetail(catalogService, catalogMetrics, logg))
		r.Post("/{productID}/quote", controllers.CatalogQuote(catalogService, catalogMetrics, logg))
	})

	return r
}
