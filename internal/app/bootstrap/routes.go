// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/bloodbank/internal/app/features/errors"
	healthfeature "github.com/dalemusser/bloodbank/internal/app/features/health"
	homefeature "github.com/dalemusser/bloodbank/internal/app/features/home"
	placesfeature "github.com/dalemusser/bloodbank/internal/app/features/places"
	usersfeature "github.com/dalemusser/bloodbank/internal/app/features/users"
	userstore "github.com/dalemusser/bloodbank/internal/app/store/users"
	"github.com/dalemusser/bloodbank/internal/app/system/metrics"
	"github.com/dalemusser/bloodbank/internal/app/system/ratelimit"
	"github.com/dalemusser/bloodbank/internal/app/system/requestlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler.
//
// It runs after configuration, the DB connection, schema setup and Startup
// have completed. The router is wrapped by otelhttp so every request gets a
// server span (a no-op when tracing is disabled).
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	m := metrics.New()
	var limiter *ratelimit.Limiter
	if appCfg.RegisterRateLimit > 0 {
		limiter = ratelimit.New(appCfg.RegisterRateLimit, appCfg.RegisterRateWindow)
		if deps.Owned != nil {
			deps.Owned.RegisterLimiter = limiter
		}
	}
	router := newRouter(routerDeps{
		cfg:     appCfg,
		users:   userstore.New(deps.MongoDatabase, m),
		pinger:  deps.MongoClient,
		m:       m,
		limiter: limiter,
	}, logger)
	return otelhttp.NewHandler(router, serviceName), nil
}

// routerDeps are the collaborators newRouter needs. Tests substitute
// in-memory fakes for users and pinger.
type routerDeps struct {
	cfg    AppConfig
	users  usersfeature.Store
	pinger healthfeature.Pinger
	m      *metrics.Metrics

	// nil leaves registration unthrottled
	limiter *ratelimit.Limiter
}

func newRouter(d routerDeps, logger *zap.Logger) chi.Router {
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestlog.RequestID)
	r.Use(requestlog.AccessLog(logger))
	r.Use(d.m.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestlog.HeaderRequestID},
		ExposedHeaders: []string{requestlog.HeaderRequestID},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestSize(d.cfg.MaxBodyBytes))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(d.pinger, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Method(http.MethodGet, "/metrics", d.m.Handler())

	homeHandler := homefeature.NewHandler(logger)
	homefeature.MountRoutes(r, homeHandler)

	// Reference data
	placesHandler := placesfeature.NewHandler(d.cfg.DistrictsPath, d.cfg.UpazilasPath, d.m, errLog, logger)
	placesfeature.MountRoutes(r, placesHandler)

	// Donor registry
	usersHandler := usersfeature.NewHandler(d.users, errLog, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, ratelimit.Middleware(d.limiter, logger)))

	return r
}
