// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	bookingsfeature "github.com/kajbondu/kajbondu-server/internal/app/features/bookings"
	healthfeature "github.com/kajbondu/kajbondu-server/internal/app/features/health"
	homefeature "github.com/kajbondu/kajbondu-server/internal/app/features/home"
	servicesfeature "github.com/kajbondu/kajbondu-server/internal/app/features/services"
	workersfeature "github.com/kajbondu/kajbondu-server/internal/app/features/workers"
	bookingstore "github.com/kajbondu/kajbondu-server/internal/app/store/bookings"
	servicestore "github.com/kajbondu/kajbondu-server/internal/app/store/services"
	workerstore "github.com/kajbondu/kajbondu-server/internal/app/store/workers"
	"github.com/kajbondu/kajbondu-server/internal/app/system/metrics"
	"github.com/kajbondu/kajbondu-server/internal/app/system/reqlog"
	"github.com/kajbondu/kajbondu-server/internal/app/system/respond"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// kajBondu applies panic recovery, request logging, metrics and CORS to every
// route, then mounts the JSON features over the shared MongoDB database.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	respond.UseLogger(logger)
	httpMetrics := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(reqlog.Middleware(logger))
	r.Use(httpMetrics.Middleware)
	r.Use(cors.Handler(corsOptions(appCfg)))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.KajBonduMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())

	homefeature.MountRoutes(r, homefeature.NewHandler())

	db := deps.KajBonduMongoDatabase

	servicesHandler := servicesfeature.NewHandler(servicestore.New(db, appCfg.ServicesCollection), logger)
	r.Mount("/services", servicesfeature.Routes(servicesHandler))

	bookingsHandler := bookingsfeature.NewHandler(bookingstore.New(db, appCfg.BookingsCollection), appCfg.MaxBodyBytes, logger)
	bookingsfeature.MountRoutes(r, bookingsHandler)

	workersHandler := workersfeature.NewHandler(workerstore.New(db, appCfg.WorkersCollection), appCfg.MaxBodyBytes, logger)
	r.Mount("/worker", workersfeature.Routes(workersHandler))

	return r, nil
}

// corsOptions allows the configured front-ends, with credentials, for the
// methods the API serves.
func corsOptions(appCfg AppConfig) cors.Options {
	return cors.Options{
		AllowedOrigins:   appCfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", reqlog.Header},
		ExposedHeaders:   []string{reqlog.Header},
		AllowCredentials: true,
		MaxAge:           300,
	}
}
