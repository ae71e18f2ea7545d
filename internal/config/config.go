package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bstardust/djicoords/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the tool reads
const EnvPrefix = "DJICOORDS"

// Config represents the application configuration
type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Input    InputConfig   `mapstructure:"input"`
	Output   OutputConfig  `mapstructure:"output"`
	Publish  PublishConfig `mapstructure:"publish"`
}

// InputConfig represents where photos are read from
type InputConfig struct {
	Root      string `mapstructure:"root"`
	Recursive bool   `mapstructure:"recursive"`
}

// OutputConfig represents where the report is written
type OutputConfig struct {
	Path string `mapstructure:"path"`
}

// PublishConfig represents the optional S3 upload of the finished report
type PublishConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Endpoint   string `mapstructure:"endpoint"`
	Region     string `mapstructure:"region"`
	Bucket     string `mapstructure:"bucket"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	UseSSL     bool   `mapstructure:"use_ssl"`
	Prefix     string `mapstructure:"prefix"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		LogLevel: "info",
		Input: InputConfig{
			Root:      ".",
			Recursive: true,
		},
		Output: OutputConfig{
			Path: "output.csv",
		},
		Publish: PublishConfig{
			Region:     "us-east-1",
			UseSSL:     true,
			MaxRetries: 3,
		},
	}
}

// SetDefaults registers the defaults from New on v
func SetDefaults(v *viper.Viper) {
	d := New()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("input.root", d.Input.Root)
	v.SetDefault("input.recursive", d.Input.Recursive)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("publish.enabled", d.Publish.Enabled)
	v.SetDefault("publish.endpoint", d.Publish.Endpoint)
	v.SetDefault("publish.region", d.Publish.Region)
	v.SetDefault("publish.bucket", d.Publish.Bucket)
	v.SetDefault("publish.access_key", d.Publish.AccessKey)
	v.SetDefault("publish.secret_key", d.Publish.SecretKey)
	v.SetDefault("publish.use_ssl", d.Publish.UseSSL)
	v.SetDefault("publish.prefix", d.Publish.Prefix)
	v.SetDefault("publish.max_retries", d.Publish.MaxRetries)
}

// Load reads configuration into a Config. Precedence, highest first: flags
// bound on v, DJICOORDS_* environment variables (a .env file in the working
// directory is loaded first when present), the config file, defaults.
func Load(v *viper.Viper, file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for missing values
func (c *Config) Validate() error {
	if c.Input.Root == "" {
		return errors.New("input folder is required")
	}
	if c.Output.Path == "" {
		return errors.New("output file is required")
	}
	if c.Publish.Enabled {
		if c.Publish.Endpoint == "" {
			return errors.New("publish endpoint is required")
		}
		if c.Publish.Bucket == "" {
			return errors.New("publish bucket is required")
		}
		if err := utils.ValidateS3BucketName(c.Publish.Bucket); err != nil {
			return fmt.Errorf("invalid publish bucket: %w", err)
		}
		if c.Publish.AccessKey == "" || c.Publish.SecretKey == "" {
			return errors.New("publish access key and secret key are required")
		}
		if c.Publish.MaxRetries < 0 {
			return errors.New("publish max retries cannot be negative")
		}
	}
	return nil
}
