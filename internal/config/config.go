package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Gateway GatewayConfig
	Auth    AuthConfig
	Tracing TracingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port          string        `mapstructure:"port"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
	Environment   string        `mapstructure:"environment"`
	MaxUploadMB   int64         `mapstructure:"max_upload_mb"`
	ShutdownGrace time.Duration `mapstructure:"shutdown_grace"`
}

// MaxUploadBytes returns the upload limit in bytes.
func (s *ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB * 1024 * 1024
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GatewayProviderConfig holds settings for a single model provider.
type GatewayProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// GatewayConfig holds model gateway settings. Only the primary provider is
// required; secondary and tertiary enable provider fallback.
type GatewayConfig struct {
	Primary   GatewayProviderConfig `mapstructure:"primary"`
	Secondary GatewayProviderConfig `mapstructure:"secondary"`
	Tertiary  GatewayProviderConfig `mapstructure:"tertiary"`
}

// Providers returns the configured providers in fallback order.
func (g *GatewayConfig) Providers() []*GatewayProviderConfig {
	out := []*GatewayProviderConfig{&g.Primary}
	if g.Secondary.Provider != "" {
		out = append(out, &g.Secondary)
	}
	if g.Tertiary.Provider != "" {
		out = append(out, &g.Tertiary)
	}
	return out
}

// AuthConfig holds bearer-token verification settings. Verification is off
// when JWTSecret is empty.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

// Enabled reports whether requests must carry a valid bearer token.
func (a *AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// envFiles are tried in order; the first one found is loaded.
var envFiles = []string{".env", "../.env", "../../.env"}

// Load reads configuration from environment variables with the BLOOM_ prefix.
// A .env file, when present, is loaded first and never overrides variables
// already set in the process environment.
func Load() (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			break
		}
	}

	v := viper.New()
	v.SetEnvPrefix("BLOOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.max_upload_mb", 10)
	v.SetDefault("server.shutdown_grace", "10s")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "*")

	// Gateway defaults
	v.SetDefault("gateway.primary.provider", "gemini")
	v.SetDefault("gateway.primary.api_key", "")
	v.SetDefault("gateway.primary.default_model", "gemini-2.5-flash")
	v.SetDefault("gateway.primary.timeout_secs", 120)
	v.SetDefault("gateway.secondary.provider", "")
	v.SetDefault("gateway.secondary.api_key", "")
	v.SetDefault("gateway.secondary.default_model", "")
	v.SetDefault("gateway.secondary.timeout_secs", 120)
	v.SetDefault("gateway.tertiary.provider", "")
	v.SetDefault("gateway.tertiary.api_key", "")
	v.SetDefault("gateway.tertiary.default_model", "")
	v.SetDefault("gateway.tertiary.timeout_secs", 120)

	// Auth defaults
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")

	// Tracing defaults
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "bloom-backend")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.insecure", false)
	v.SetDefault("tracing.sample_ratio", 0.1)

	envBindings := map[string]string{
		"server.port":                     "BLOOM_SERVER_PORT",
		"server.read_timeout":             "BLOOM_SERVER_READ_TIMEOUT",
		"server.write_timeout":            "BLOOM_SERVER_WRITE_TIMEOUT",
		"server.environment":              "BLOOM_SERVER_ENVIRONMENT",
		"server.max_upload_mb":            "BLOOM_SERVER_MAX_UPLOAD_MB",
		"server.shutdown_grace":           "BLOOM_SERVER_SHUTDOWN_GRACE",
		"log.level":                       "BLOOM_LOG_LEVEL",
		"log.format":                      "BLOOM_LOG_FORMAT",
		"cors.allowed_origins":            "BLOOM_CORS_ALLOWED_ORIGINS",
		"gateway.primary.provider":        "BLOOM_GATEWAY_PRIMARY_PROVIDER",
		"gateway.primary.api_key":         "BLOOM_GATEWAY_PRIMARY_API_KEY",
		"gateway.primary.default_model":   "BLOOM_GATEWAY_PRIMARY_DEFAULT_MODEL",
		"gateway.primary.timeout_secs":    "BLOOM_GATEWAY_PRIMARY_TIMEOUT_SECS",
		"gateway.secondary.provider":      "BLOOM_GATEWAY_SECONDARY_PROVIDER",
		"gateway.secondary.api_key":       "BLOOM_GATEWAY_SECONDARY_API_KEY",
		"gateway.secondary.default_model": "BLOOM_GATEWAY_SECONDARY_DEFAULT_MODEL",
		"gateway.secondary.timeout_secs":  "BLOOM_GATEWAY_SECONDARY_TIMEOUT_SECS",
		"gateway.tertiary.provider":       "BLOOM_GATEWAY_TERTIARY_PROVIDER",
		"gateway.tertiary.api_key":        "BLOOM_GATEWAY_TERTIARY_API_KEY",
		"gateway.tertiary.default_model":  "BLOOM_GATEWAY_TERTIARY_DEFAULT_MODEL",
		"gateway.tertiary.timeout_secs":   "BLOOM_GATEWAY_TERTIARY_TIMEOUT_SECS",
		"auth.jwt_secret":                 "BLOOM_AUTH_JWT_SECRET",
		"auth.issuer":                     "BLOOM_AUTH_ISSUER",
		"auth.audience":                   "BLOOM_AUTH_AUDIENCE",
		"tracing.enabled":                 "BLOOM_TRACING_ENABLED",
		"tracing.service_name":            "BLOOM_TRACING_SERVICE_NAME",
		"tracing.endpoint":                "BLOOM_TRACING_ENDPOINT",
		"tracing.insecure":                "BLOOM_TRACING_INSECURE",
		"tracing.sample_ratio":            "BLOOM_TRACING_SAMPLE_RATIO",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT; honor it unless BLOOM_SERVER_PORT is explicit.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BLOOM_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:          serverPort,
		ReadTimeout:   v.GetDuration("server.read_timeout"),
		WriteTimeout:  v.GetDuration("server.write_timeout"),
		Environment:   v.GetString("server.environment"),
		MaxUploadMB:   v.GetInt64("server.max_upload_mb"),
		ShutdownGrace: v.GetDuration("server.shutdown_grace"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Gateway = GatewayConfig{
		Primary:   providerConfig(v, "gateway.primary"),
		Secondary: providerConfig(v, "gateway.secondary"),
		Tertiary:  providerConfig(v, "gateway.tertiary"),
	}
	cfg.Auth = AuthConfig{
		JWTSecret: v.GetString("auth.jwt_secret"),
		Issuer:    v.GetString("auth.issuer"),
		Audience:  v.GetString("auth.audience"),
	}
	cfg.Tracing = TracingConfig{
		Enabled:     v.GetBool("tracing.enabled"),
		ServiceName: v.GetString("tracing.service_name"),
		Endpoint:    v.GetString("tracing.endpoint"),
		Insecure:    v.GetBool("tracing.insecure"),
		SampleRatio: v.GetFloat64("tracing.sample_ratio"),
	}

	return cfg, nil
}

func providerConfig(v *viper.Viper, prefix string) GatewayProviderConfig {
	return GatewayProviderConfig{
		Provider:     strings.ToLower(strings.TrimSpace(v.GetString(prefix + ".provider"))),
		APIKey:       v.GetString(prefix + ".api_key"),
		DefaultModel: v.GetString(prefix + ".default_model"),
		TimeoutSecs:  v.GetInt(prefix + ".timeout_secs"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
