package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/wb-go/wbf/zlog"
)

// EnvPrefix prefixes environment overrides, e.g. GRAYFLIP_LOG_LEVEL.
const EnvPrefix = "GRAYFLIP"

// Config holds the main configuration for the application.
type Config struct {
	Log       Log       `mapstructure:"log"`
	Output    Output    `mapstructure:"output"`
	Animation Animation `mapstructure:"animation"`
	Storage   Storage   `mapstructure:"storage"`
}

// Log holds logging configuration.
type Log struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error disabled"`
}

// Output holds encoder settings.
type Output struct {
	JPEGQuality int `mapstructure:"jpeg_quality" validate:"min=1,max=100"` // JPEG quality 1-100
}

// Animation holds settings for multi-frame sources.
type Animation struct {
	DefaultDelay int `mapstructure:"default_delay" validate:"min=1"` // Frame delay in 1/100 s when the source has none
}

// Storage holds configuration for remote object storage.
type Storage struct {
	MinIO MinIO `mapstructure:"minio"`
}

// MinIO holds connection parameters for an S3-compatible object store.
// Remote "s3://" paths are only available when Endpoint is set.
type MinIO struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key" validate:"required_with=Endpoint"`
	SecretKey string `mapstructure:"secret_key" validate:"required_with=Endpoint"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether an object store is configured.
func (m MinIO) Enabled() bool {
	return m.Endpoint != ""
}

// ZerologLevel returns the configured level, defaulting to warn.
func (l Log) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		return zerolog.WarnLevel
	}

	return lvl
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("output.jpeg_quality", 95)
	v.SetDefault("animation.default_delay", 10)
	v.SetDefault("storage.minio.endpoint", "")
	v.SetDefault("storage.minio.access_key", "")
	v.SetDefault("storage.minio.secret_key", "")
	v.SetDefault("storage.minio.use_ssl", false)
}

// Load builds the configuration from defaults, the optional YAML file at
// path and GRAYFLIP_* environment variables, then validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid config: %s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}

		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads the configuration from the specified file path.
// It panics if the configuration cannot be loaded or is invalid.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to load config")
	}

	return cfg
}
