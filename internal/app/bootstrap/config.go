// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/bloodbank/internal/app/system/limits"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

const (
	defaultPort     = 5000
	defaultMongoURI = "mongodb://localhost:27017"
)

// appConfigKeys defines the configuration keys for bloodbank.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, districts_path, etc.
//   - Environment variables: BLOODBANK_MONGO_URI, BLOODBANK_PORT, etc.
//   - Command-line flags: --mongo_uri, --port, etc.
//
// Names must not repeat a WAFFLE core key (http_port, cors_allowed_origins,
// ...); LoadWithAppConfig rejects duplicates.
var appConfigKeys = []config.AppKey{
	{Name: "port", Default: defaultPort, Desc: "HTTP listen port (default: 5000)"},
	{Name: "mongo_uri", Default: defaultMongoURI, Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "blood-donation", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size (default: 0)"},

	// Reference data
	{Name: "districts_path", Default: "./districts.json", Desc: "Path to the districts JSON array"},
	{Name: "upazilas_path", Default: "./upazilas.json", Desc: "Path to the upazilas JSON array"},

	// Request plumbing
	{Name: "max_body_bytes", Default: int(limits.MaxJSONBodySize), Desc: "Maximum request body size in bytes"},

	// Registration throttle
	{Name: "register_rate_limit", Default: 0, Desc: "Max POST /users per client IP per window (0 disables)"},
	{Name: "register_rate_window", Default: "1m", Desc: "Window for register_rate_limit"},

	// Tracing
	{Name: "otlp_endpoint", Default: "", Desc: "OTLP/gRPC collector endpoint (blank disables tracing)"},

	// Store timeouts
	{Name: "timeout_ping", Default: "2s", Desc: "Timeout for database pings"},
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single-document operations"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for collection scans"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// environment variables and flags with precedence flags > env > files >
// defaults. PORT and MONGODB_URI are honored afterwards for platforms that
// set only those.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BLOODBANK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg, err := appConfigFrom(coreCfg, appValues)
	if err != nil {
		return nil, AppConfig{}, err
	}

	if err := applyPlatformAliases(&appCfg, os.Getenv); err != nil {
		return nil, AppConfig{}, err
	}
	applyToCore(coreCfg, appCfg)
	return coreCfg, appCfg, nil
}

// appConfigFrom maps loaded values onto AppConfig. Integer keys set through
// the environment arrive as strings, so they are parsed here.
func appConfigFrom(coreCfg *config.CoreConfig, appValues config.AppConfigValues) (AppConfig, error) {
	ints := intReader{values: appValues}
	appCfg := AppConfig{
		Port:             ints.get("port"),
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(ints.get("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(ints.get("mongo_min_pool_size")),

		DistrictsPath: appValues.String("districts_path"),
		UpazilasPath:  appValues.String("upazilas_path"),

		CORSAllowedOrigins: corsOrigins(coreCfg),
		MaxBodyBytes:       int64(ints.get("max_body_bytes")),

		RegisterRateLimit:  ints.get("register_rate_limit"),
		RegisterRateWindow: appValues.Duration("register_rate_window", time.Minute),

		OTLPEndpoint: appValues.String("otlp_endpoint"),

		TimeoutPing:   appValues.Duration("timeout_ping", 2*time.Second),
		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
	}

	if ints.err != nil {
		return AppConfig{}, ints.err
	}
	return appCfg, nil
}

// intReader reads integer keys and keeps the first parse error.
type intReader struct {
	values config.AppConfigValues
	err    error
}

func (r *intReader) get(key string) int {
	switch v := r.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil && r.err == nil {
			r.err = fmt.Errorf("config key %s: %q is not an integer", key, v)
		}
		return n
	}
	return r.values.Int(key)
}

// applyPlatformAliases fills Port and MongoURI from PORT and MONGODB_URI
// when the prefixed keys were left at their defaults.
func applyPlatformAliases(cfg *AppConfig, getenv func(string) string) error {
	if v := getenv("PORT"); v != "" && cfg.Port == defaultPort {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := getenv("MONGODB_URI"); v != "" && cfg.MongoURI == defaultMongoURI {
		cfg.MongoURI = v
	}
	return nil
}

// applyToCore makes WAFFLE's server listen on the app's port. The core
// http_port key is not used: the service keeps its own port key and PORT.
func applyToCore(coreCfg *config.CoreConfig, appCfg AppConfig) {
	coreCfg.HTTP.HTTPPort = appCfg.Port
	coreCfg.MaxRequestBodyBytes = appCfg.MaxBodyBytes
}

// corsOrigins takes the origins from WAFFLE's core cors_allowed_origins
// setting and allows any origin when it is empty.
func corsOrigins(coreCfg *config.CoreConfig) []string {
	var out []string
	for _, o := range coreCfg.CORS.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return errors.New("mongo_database must not be empty")
	}
	if appCfg.Port < 1 || appCfg.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", appCfg.Port)
	}
	if appCfg.DistrictsPath == "" || appCfg.UpazilasPath == "" {
		return errors.New("districts_path and upazilas_path must be set")
	}
	if appCfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", appCfg.MaxBodyBytes)
	}
	if appCfg.RegisterRateLimit < 0 {
		return fmt.Errorf("register_rate_limit must not be negative, got %d", appCfg.RegisterRateLimit)
	}
	if appCfg.RegisterRateLimit > 0 && appCfg.RegisterRateWindow <= 0 {
		return errors.New("register_rate_window must be positive when register_rate_limit is set")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size %d exceeds mongo_max_pool_size %d",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	return nil
}
