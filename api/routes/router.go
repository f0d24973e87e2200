package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jerseyfront/jerseyfront/api/controllers"
	cartcontrollers "github.com/jerseyfront/jerseyfront/api/controllers/cart"
	"github.com/jerseyfront/jerseyfront/api/middleware"
	adminsvc "github.com/jerseyfront/jerseyfront/internal/admin"
	"github.com/jerseyfront/jerseyfront/internal/cart"
	"github.com/jerseyfront/jerseyfront/internal/catalog"
	"github.com/jerseyfront/jerseyfront/pkg/config"
	"github.com/jerseyfront/jerseyfront/pkg/logger"
	"github.com/jerseyfront/jerseyfront/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	snapshot *catalog.Snapshot,
	cartService cart.Service,
	adminService adminsvc.Service,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.Origins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, snapshot))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.StorefrontProducts(snapshot, logg))
			r.Get("/filters", controllers.StorefrontFilterOptions(snapshot, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(cartService, logg))
			r.Post("/items", cartcontrollers.CartAddItem(cartService, logg))
			r.Post("/items/{productId}/increase", cartcontrollers.CartIncreaseItem(cartService, logg))
			r.Post("/items/{productId}/decrease", cartcontrollers.CartDecreaseItem(cartService, logg))
			r.Delete("/items/{productId}", cartcontrollers.CartRemoveItem(cartService, logg))
			r.Post("/checkout", cartcontrollers.CartCheckout(cartService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(adminService, logg))
			r.Put("/{productId}", controllers.AdminUpdateProduct(adminService, logg))
			r.Delete("/{productId}", controllers.AdminDeleteProduct(adminService, logg))
		})
	})

	return r
}
