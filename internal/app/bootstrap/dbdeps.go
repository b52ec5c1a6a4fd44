// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/bloodbank/internal/app/system/ratelimit"
	"github.com/dalemusser/bloodbank/internal/app/system/tracing"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Owned is filled in by later hooks; DBDeps itself is passed by value.
	Owned *Owned
}

// Owned tracks resources created after ConnectDB that Shutdown must release.
type Owned struct {
	TracingShutdown tracing.ShutdownFunc
	RegisterLimiter *ratelimit.Limiter
}
