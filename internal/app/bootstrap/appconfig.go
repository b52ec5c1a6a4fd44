// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for bloodbank.
//
// Values come from environment variables (BLOODBANK_*), config files or
// command-line flags, loaded in LoadConfig. WAFFLE's CoreConfig carries
// the framework-level settings (env, log level); everything the donor
// service itself needs lives here.
type AppConfig struct {
	// HTTP listener
	Port int // TCP port to listen on (default 5000)

	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Reference data files, re-read on every request
	DistrictsPath string
	UpazilasPath  string

	// Request plumbing
	CORSAllowedOrigins []string
	MaxBodyBytes       int64

	// Per-IP throttle on POST /users; 0 disables
	RegisterRateLimit  int
	RegisterRateWindow time.Duration

	// OTLP/gRPC collector endpoint; empty disables tracing
	OTLPEndpoint string

	// Store operation timeouts
	TimeoutPing   time.Duration
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
