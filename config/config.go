package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultStorageRoot    = "./data"
	defaultBatchSubfolder = "jugadores"
	defaultMaxUpload      = 10 << 20
	defaultJWTTTL         = 24 * time.Hour
	defaultJWTIssuer      = "fantasy-league"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	HTTP          HTTPConfig          `yaml:"http"`
	JWT           JWTConfig           `yaml:"jwt"`
	Storage       StorageConfig       `yaml:"storage"`
	Batch         BatchConfig         `yaml:"batch"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// HTTPConfig holds the API listener configuration.
type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
	Issuer     string        `yaml:"issuer"`
}

// StorageConfig controls where uploaded batch files are archived.
type StorageConfig struct {
	RootDir        string `yaml:"root_dir"`
	BatchSubfolder string `yaml:"batch_subfolder"`
}

// BatchConfig controls player batch imports.
type BatchConfig struct {
	MaxUploadBytes     int64 `yaml:"max_upload_bytes"`
	ExposeErrorDetails bool  `yaml:"expose_error_details"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	ServiceName    string `yaml:"service_name"`
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
	MetricsAddress string `yaml:"metrics_address"`
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Observability.Environment, "development")
}

// LoadConfig loads the configuration from a YAML file. When the file does not
// exist the configuration comes from environment variables only.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return loadConfigFromEnv()
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_DEFAULT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_DEFAULT_TTL value: %w", err)
		}
		cfg.JWT.DefaultTTL = d
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		cfg.JWT.Issuer = v
	}
	if v := os.Getenv("STORAGE_ROOT"); v != "" {
		cfg.Storage.RootDir = v
	}
	if v := os.Getenv("BATCH_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid BATCH_MAX_UPLOAD_BYTES value: %w", err)
		}
		cfg.Batch.MaxUploadBytes = n
	}
	if v := os.Getenv("BATCH_EXPOSE_ERROR_DETAILS"); v != "" {
		cfg.Batch.ExposeErrorDetails = v == "true"
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = defaultHTTPAddr
	}
	if cfg.JWT.DefaultTTL == 0 {
		cfg.JWT.DefaultTTL = defaultJWTTTL
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = defaultJWTIssuer
	}
	if cfg.Storage.RootDir == "" {
		cfg.Storage.RootDir = defaultStorageRoot
	}
	if cfg.Storage.BatchSubfolder == "" {
		cfg.Storage.BatchSubfolder = defaultBatchSubfolder
	}
	if cfg.Batch.MaxUploadBytes <= 0 {
		cfg.Batch.MaxUploadBytes = defaultMaxUpload
	}
	if cfg.Observability.ServiceName == "" {
		cfg.Observability.ServiceName = "fantasy-league"
	}
	if cfg.IsDevelopment() && os.Getenv("BATCH_EXPOSE_ERROR_DETAILS") == "" {
		cfg.Batch.ExposeErrorDetails = true
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
