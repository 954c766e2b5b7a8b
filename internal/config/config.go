package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config aggregates application settings sourced from environment variables.
type Config struct {
	Export  ExportConfig  `mapstructure:"export"`
	MinIO   MinIOConfig   `mapstructure:"minio"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// MetricsConfig controls the Prometheus scrape endpoint. It is served only
// while an export runs and only when an address is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Enabled reports whether the metrics endpoint is configured.
func (m MetricsConfig) Enabled() bool {
	return m.Addr != ""
}

// ExportConfig contains batch export settings.
type ExportConfig struct {
	Format        string `mapstructure:"format"`
	Quality       int    `mapstructure:"quality"`
	NamingPattern string `mapstructure:"naming_pattern"`
	Devices       string `mapstructure:"devices"`
	Locales       string `mapstructure:"locales"`
	OutputDir     string `mapstructure:"output_dir"`
}

// DeviceList splits the comma-separated device selection.
func (e ExportConfig) DeviceList() []string {
	return splitCSV(e.Devices)
}

// LocaleList splits the comma-separated locale selection.
func (e ExportConfig) LocaleList() []string {
	return splitCSV(e.Locales)
}

// MinIOConfig contains connection options for MinIO/S3-compatible storage.
// Archive upload is optional; it is enabled only when an endpoint is set.
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
}

// Enabled reports whether archive upload is configured.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("export.format", "png")
	v.SetDefault("export.quality", 95)
	v.SetDefault("export.naming_pattern", "{locale}/{device}/{index}")
	v.SetDefault("export.output_dir", "./output")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "exports")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"export.format":           "EXPORT_FORMAT",
		"export.quality":          "EXPORT_QUALITY",
		"export.naming_pattern":   "EXPORT_NAMING_PATTERN",
		"export.devices":          "EXPORT_DEVICES",
		"export.locales":          "EXPORT_LOCALES",
		"export.output_dir":       "EXPORT_OUTPUT_DIR",
		"minio.endpoint":          "MINIO_ENDPOINT",
		"minio.access_key_id":     "MINIO_ACCESS_KEY_ID",
		"minio.secret_access_key": "MINIO_SECRET_ACCESS_KEY",
		"minio.use_ssl":           "MINIO_USE_SSL",
		"minio.bucket":            "MINIO_BUCKET",
		"metrics.addr":            "METRICS_ADDR",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	switch cfg.Export.Format {
	case "png", "jpeg":
	default:
		return fmt.Errorf("export format must be png or jpeg, got %q", cfg.Export.Format)
	}
	if cfg.Export.Quality < 1 || cfg.Export.Quality > 100 {
		return errors.New("export quality must be between 1 and 100")
	}
	if cfg.Export.NamingPattern == "" {
		return errors.New("export naming pattern is required")
	}
	if cfg.Export.OutputDir == "" {
		return errors.New("export output dir is required")
	}
	if cfg.MinIO.Enabled() {
		if cfg.MinIO.AccessKeyID == "" {
			return errors.New("minio access key id is required")
		}
		if cfg.MinIO.SecretAccessKey == "" {
			return errors.New("minio secret access key is required")
		}
		if cfg.MinIO.Bucket == "" {
			return errors.New("minio bucket is required")
		}
	}
	return nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
