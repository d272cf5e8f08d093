package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"gopkg.in/yaml.v3"

	apperrors "hello-api-go/internal/errors"
)

type Config struct {
	ServerPort      int           `yaml:"server_port" env:"SERVER_PORT"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL"`
	CORSProfile     string        `yaml:"cors_profile" env:"CORS_PROFILE"`
	StaticDir       string        `yaml:"static_dir" env:"STATIC_DIR"`
	MetricsEnabled  bool          `yaml:"metrics_enabled" env:"METRICS_ENABLED"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins replaces the selected profile's origin list when set (comma separated)
	AllowedOrigins string `yaml:"-" env:"CORS_ALLOWED_ORIGINS"`

	CORSOverrides CORSOverrides `yaml:"cors"`

	// Resolved by Load
	Profile Profile    `yaml:"-"`
	CORS    CORSPolicy `yaml:"-"`
}

func defaultConfig() *Config {
	return &Config{
		ServerPort:      7080,
		LogLevel:        "info",
		CORSProfile:     string(ProfileScoped),
		MetricsEnabled:  true,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load builds the configuration from defaults, then the YAML file at
// configPath (if not empty), then the process environment. Environment
// variables take precedence. Failures are returned as config AppErrors.
func Load(configPath string) (*Config, error) {
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read environment", err)
	}
	return LoadFrom(es, configPath)
}

// LoadFrom is Load with an explicit environment
func LoadFrom(es env.EnvSet, configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, apperrors.NewConfigError("failed to read config file", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, apperrors.NewConfigError("failed to parse config file", err)
		}
	}

	if err := env.Unmarshal(es, config); err != nil {
		return nil, apperrors.NewConfigError("failed to parse environment", err)
	}

	if config.ServerPort <= 0 || config.ServerPort > 65535 {
		return nil, apperrors.NewConfigError(fmt.Sprintf("invalid SERVER_PORT: %d", config.ServerPort), nil)
	}
	if config.ShutdownTimeout <= 0 {
		return nil, apperrors.NewConfigError(fmt.Sprintf("invalid SHUTDOWN_TIMEOUT: %s", config.ShutdownTimeout), nil)
	}

	profile, err := ParseProfile(config.CORSProfile)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid CORS_PROFILE", err)
	}
	policy, err := PolicyFor(profile)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid CORS_PROFILE", err)
	}
	config.CORSOverrides.applyTo(&policy)
	if config.AllowedOrigins != "" {
		policy.AllowedOrigins = splitList(config.AllowedOrigins)
	}
	if err := policy.Validate(); err != nil {
		return nil, apperrors.NewConfigError(fmt.Sprintf("invalid CORS policy for profile %s", profile), err)
	}

	config.Profile = profile
	config.CORS = policy
	return config, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
