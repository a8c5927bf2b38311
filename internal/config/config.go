package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/xuri/excelize/v2"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Export ExportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
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

// ExportConfig holds search export settings.
type ExportConfig struct {
	SheetName string `mapstructure:"sheet_name"`
	MaxRows   int    `mapstructure:"max_rows"`

	// Per-client export budget. A zero rate disables limiting.
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute"`
	RateLimitBurst     int `mapstructure:"rate_limit_burst"`
}

// Validate checks values that have no usable fallback.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Export.MaxRows <= 0 {
		return fmt.Errorf("export.max_rows must be positive, got %d", c.Export.MaxRows)
	}
	if strings.TrimSpace(c.Export.SheetName) == "" {
		return fmt.Errorf("export.sheet_name must not be empty")
	}
	if err := validateSheetName(c.Export.SheetName); err != nil {
		return fmt.Errorf("export.sheet_name %q: %w", c.Export.SheetName, err)
	}
	if c.Export.RateLimitPerMinute < 0 || c.Export.RateLimitBurst < 0 {
		return fmt.Errorf("export rate limit must not be negative")
	}
	if c.Export.RateLimitPerMinute > 0 && c.Export.RateLimitBurst == 0 {
		return fmt.Errorf("export.rate_limit_burst must be positive when rate limiting is enabled")
	}
	return nil
}

// validateSheetName applies the workbook's sheet naming rules: at most 31
// characters, none of : \ / ? * [ ], no leading or trailing apostrophe.
func validateSheetName(name string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	return f.SetSheetName(f.GetSheetName(0), name)
}

// Load reads configuration from environment variables with the APICATALOG_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("APICATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Export defaults
	v.SetDefault("export.sheet_name", "APIs")
	v.SetDefault("export.max_rows", 10000)
	v.SetDefault("export.rate_limit_per_minute", 30)
	v.SetDefault("export.rate_limit_burst", 10)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "APICATALOG_SERVER_PORT",
		"server.read_timeout":          "APICATALOG_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "APICATALOG_SERVER_WRITE_TIMEOUT",
		"server.environment":           "APICATALOG_SERVER_ENVIRONMENT",
		"log.level":                    "APICATALOG_LOG_LEVEL",
		"log.format":                   "APICATALOG_LOG_FORMAT",
		"cors.allowed_origins":         "APICATALOG_CORS_ALLOWED_ORIGINS",
		"export.sheet_name":            "APICATALOG_EXPORT_SHEET_NAME",
		"export.max_rows":              "APICATALOG_EXPORT_MAX_ROWS",
		"export.rate_limit_per_minute": "APICATALOG_EXPORT_RATE_LIMIT_PER_MINUTE",
		"export.rate_limit_burst":      "APICATALOG_EXPORT_RATE_LIMIT_BURST",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if APICATALOG_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("APICATALOG_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Export = ExportConfig{
		SheetName: v.GetString("export.sheet_name"),
		MaxRows:   v.GetInt("export.max_rows"),

		RateLimitPerMinute: v.GetInt("export.rate_limit_per_minute"),
		RateLimitBurst:     v.GetInt("export.rate_limit_burst"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
