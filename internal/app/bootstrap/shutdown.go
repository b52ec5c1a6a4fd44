// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the registration limiter, flushes traces and disconnects
// MongoDB. Every step runs even if an earlier one fails.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	var errs []error

	if o := deps.Owned; o != nil {
		if o.RegisterLimiter != nil {
			o.RegisterLimiter.Stop()
		}
		if o.TracingShutdown != nil {
			if err := o.TracingShutdown(ctx); err != nil {
				logger.Warn("tracer shutdown failed", zap.Error(err))
				errs = append(errs, err)
			}
		}
	}

	if deps.MongoClient != nil {
		logger.Info("disconnecting MongoDB client")
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
