package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"

	// ConfigPathVar points to an optional YAML file, applied before the env vars.
	ConfigPathVar = "PROCESSOS_CONFIG_PATH"
)

const (
	SourceFile   = "file"
	SourceS3     = "s3"
	SourceSQLite = "sqlite"
)

// Config does not carry GO_ENV: it selects where the env vars come from,
// so it is read before Load runs.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port         int      `yaml:"port" env:"PORT" validate:"min=1,max=65535"`
	AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" validate:"nodupes,dive,required"`
}

// SnapshotConfig tells where the processos snapshot is read from at startup.
type SnapshotConfig struct {
	Source     string `yaml:"source" env:"SNAPSHOT_SOURCE" validate:"oneof=file s3 sqlite"`
	Path       string `yaml:"path" env:"SNAPSHOT_PATH" validate:"required_if=Source file"`
	S3Bucket   string `yaml:"s3_bucket" env:"SNAPSHOT_S3_BUCKET" validate:"required_if=Source s3"`
	S3Key      string `yaml:"s3_key" env:"SNAPSHOT_S3_KEY" validate:"required_if=Source s3"`
	S3Region   string `yaml:"s3_region" env:"AWS_S3_REGION"`
	SQLitePath string `yaml:"sqlite_path" env:"SNAPSHOT_SQLITE_PATH" validate:"required_if=Source sqlite"`
	Name       string `yaml:"name" env:"SNAPSHOT_NAME" validate:"required_if=Source sqlite"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error off"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment variables, in this order of precedence (last wins).
func Load(validate *validator.Validate) (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Port:         3000,
			AllowOrigins: []string{"http://localhost:5173"},
		},
		Snapshot: SnapshotConfig{
			Source: SourceFile,
			Path:   "data/processos.json",
			Name:   "processos",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv(ConfigPathVar); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (l LogConfig) GommonLevel() log.Lvl {
	switch l.Level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
