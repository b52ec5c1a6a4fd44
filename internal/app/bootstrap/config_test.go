package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func validConfig() AppConfig {
	return AppConfig{
		Port:             5000,
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "blood-donation",
		MongoMaxPoolSize: 100,
		DistrictsPath:    "./districts.json",
		UpazilasPath:     "./upazilas.json",
		MaxBodyBytes:     1 << 20,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*AppConfig) {}},
		{name: "bad uri", mutate: func(c *AppConfig) { c.MongoURI = "postgres://nope" }, wantErr: "MongoDB URI"},
		{name: "port zero", mutate: func(c *AppConfig) { c.Port = 0 }, wantErr: "port"},
		{name: "port too high", mutate: func(c *AppConfig) { c.Port = 70000 }, wantErr: "port"},
		{name: "no districts path", mutate: func(c *AppConfig) { c.DistrictsPath = "" }, wantErr: "districts_path"},
		{name: "no database", mutate: func(c *AppConfig) { c.MongoDatabase = "" }, wantErr: "mongo_database"},
		{name: "zero body cap", mutate: func(c *AppConfig) { c.MaxBodyBytes = 0 }, wantErr: "max_body_bytes"},
		{name: "pool inverted", mutate: func(c *AppConfig) { c.MongoMinPoolSize = 200 }, wantErr: "pool"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, zap.NewNop())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyPlatformAliases(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	t.Run("defaults overridden", func(t *testing.T) {
		cfg := AppConfig{Port: defaultPort, MongoURI: defaultMongoURI}
		err := applyPlatformAliases(&cfg, env(map[string]string{
			"PORT":        "8080",
			"MONGODB_URI": "mongodb://db:27017",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Port != 8080 || cfg.MongoURI != "mongodb://db:27017" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("explicit keys win", func(t *testing.T) {
		cfg := AppConfig{Port: 6000, MongoURI: "mongodb://explicit:27017"}
		err := applyPlatformAliases(&cfg, env(map[string]string{
			"PORT":        "8080",
			"MONGODB_URI": "mongodb://db:27017",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Port != 6000 || cfg.MongoURI != "mongodb://explicit:27017" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := AppConfig{Port: defaultPort}
		if err := applyPlatformAliases(&cfg, env(map[string]string{"PORT": "abc"})); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestCORSOrigins(t *testing.T) {
	core := &config.CoreConfig{}
	if got := corsOrigins(core); len(got) != 1 || got[0] != "*" {
		t.Errorf("empty core origins = %q, want [*]", got)
	}

	core.CORS.CORSAllowedOrigins = []string{" https://a.example ", "", "https://b.example"}
	got := corsOrigins(core)
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("corsOrigins = %q", got)
	}
}

// WAFFLE registers these as core flags; an app key with the same name makes
// LoadWithAppConfig fail at startup.
var coreFlagNames = []string{
	"env", "log_level", "http_port", "https_port", "use_https",
	"use_lets_encrypt", "lets_encrypt_email", "lets_encrypt_cache_dir",
	"cert_file", "key_file", "domain", "domains", "lets_encrypt_challenge",
	"acme_directory_url", "index_boot_timeout", "db_connect_timeout",
	"read_timeout", "read_header_timeout", "write_timeout", "idle_timeout",
	"shutdown_timeout", "enable_compression", "compression_level",
	"enable_cors", "cors_allowed_origins", "cors_allowed_methods",
	"cors_allowed_headers", "cors_exposed_headers", "cors_allow_credentials",
	"cors_max_age", "max_request_body_bytes",
}

func TestAppConfigKeys_NoCoreCollision(t *testing.T) {
	core := make(map[string]bool, len(coreFlagNames))
	for _, n := range coreFlagNames {
		core[n] = true
	}
	seen := map[string]bool{}
	for _, k := range appConfigKeys {
		if core[k.Name] {
			t.Errorf("app key %q collides with a WAFFLE core key", k.Name)
		}
		if seen[k.Name] {
			t.Errorf("app key %q declared twice", k.Name)
		}
		seen[k.Name] = true
	}
}

func TestApplyToCore(t *testing.T) {
	core := &config.CoreConfig{}
	core.HTTP.HTTPPort = 8080
	cfg := validConfig()
	cfg.Port = 5000

	applyToCore(core, cfg)

	if core.HTTP.HTTPPort != 5000 {
		t.Errorf("HTTPPort = %d, want 5000", core.HTTP.HTTPPort)
	}
	if core.MaxRequestBodyBytes != cfg.MaxBodyBytes {
		t.Errorf("MaxRequestBodyBytes = %d, want %d", core.MaxRequestBodyBytes, cfg.MaxBodyBytes)
	}
}

func TestAppConfigFrom_EnvStrings(t *testing.T) {
	values := config.AppConfigValues{
		"port":                "8081",
		"mongo_uri":           "mongodb://db:27017",
		"mongo_database":      "blood-donation",
		"mongo_max_pool_size": int64(50),
		"mongo_min_pool_size": 0,
		"districts_path":      "./districts.json",
		"upazilas_path":       "./upazilas.json",
		"max_body_bytes":      " 2048 ",
		"register_rate_limit": "0",
		"timeout_short":       "3s",
	}
	cfg, err := appConfigFrom(&config.CoreConfig{}, values)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8081 || cfg.MongoMaxPoolSize != 50 || cfg.MaxBodyBytes != 2048 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.TimeoutShort != 3*time.Second || cfg.TimeoutPing != 2*time.Second {
		t.Errorf("timeouts = %v/%v", cfg.TimeoutShort, cfg.TimeoutPing)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("origins = %q", cfg.CORSAllowedOrigins)
	}

	values["port"] = "five"
	if _, err := appConfigFrom(&config.CoreConfig{}, values); err == nil || !strings.Contains(err.Error(), "port") {
		t.Errorf("err = %v, want port parse error", err)
	}
}
