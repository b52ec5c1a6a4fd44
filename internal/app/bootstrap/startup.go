// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/bloodbank/internal/app/system/refdata"
	"github.com/dalemusser/bloodbank/internal/app/system/timeouts"
	"github.com/dalemusser/bloodbank/internal/app/system/tracing"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

const serviceName = "bloodbank"

// Startup runs one-time initialization after the store is ready and before
// the handler is built: the tracer provider, then reference-file checks.
// Missing reference files are only a warning: they are read per request,
// so they may be dropped in later.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	shutdownTracing, err := tracing.Init(ctx, serviceName, appCfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	if deps.Owned != nil {
		deps.Owned.TracingShutdown = shutdownTracing
	}
	if appCfg.OTLPEndpoint != "" {
		logger.Info("tracing enabled", zap.String("otlp_endpoint", appCfg.OTLPEndpoint))
	}

	t := timeouts.Current()
	logger.Info("store timeouts",
		zap.Duration("ping", t.Ping),
		zap.Duration("short", t.Short),
		zap.Duration("medium", t.Medium))

	for _, ds := range []refdata.Dataset{
		{Name: "districts", Path: appCfg.DistrictsPath},
		{Name: "upazilas", Path: appCfg.UpazilasPath},
	} {
		if err := ds.Exists(); err != nil {
			logger.Warn("reference data file not available",
				zap.String("dataset", ds.Name),
				zap.String("path", ds.Path),
				zap.Error(err))
		}
	}
	return nil
}
