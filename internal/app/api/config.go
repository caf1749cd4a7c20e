package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the settings of the API process. Values come from defaults,
// then an optional YAML file, then environment variables, then CLI flags.
type Config struct {
	Port            string        `yaml:"port"`
	Environment     string        `yaml:"environment"`
	LogLevel        string        `yaml:"log_level"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Seed            SeedConfig    `yaml:"seed"`
	Metrics         MetricsConfig `yaml:"metrics"`
	Telemetry       Telemetry     `yaml:"telemetry"`
}

type SeedConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Telemetry selects the trace exporter: otlp, stdout or none.
type Telemetry struct {
	Exporter     string `yaml:"exporter"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	OTLPInsecure bool   `yaml:"otlp_insecure"`
}

// DefaultConfig is what the process runs with when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Port:            "8080",
		Environment:     "local",
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
		Seed:            SeedConfig{Enabled: true},
		Metrics:         MetricsConfig{Enabled: true},
		Telemetry:       Telemetry{Exporter: "otlp", OTLPInsecure: true},
	}
}

// LoadConfig layers the YAML file at path (or CONFIG_PATH) and the environment over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the constraints a running server depends on.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("port %q must be an integer between 1 and 65535", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.Environment, "ENVIRONMENT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.Seed.File, "SEED_FILE")
	setString(&cfg.Telemetry.Exporter, "OTEL_TRACES_EXPORTER")
	setString(&cfg.Telemetry.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
	if raw, ok := lookup("SEED_DATA"); ok {
		cfg.Seed.Enabled = isTruthy(raw)
	}
	if raw, ok := lookup("METRICS_ENABLED"); ok {
		cfg.Metrics.Enabled = isTruthy(raw)
	}
	if raw, ok := lookup("OTEL_EXPORTER_OTLP_INSECURE"); ok {
		cfg.Telemetry.OTLPInsecure = isTruthy(raw)
	}
	if raw, ok := lookup("SHUTDOWN_TIMEOUT_SECONDS"); ok {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be a positive integer")
		}
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}
	return nil
}

func lookup(key string) (string, bool) {
	val := strings.TrimSpace(os.Getenv(key))
	return val, val != ""
}

func setString(dst *string, key string) {
	if val, ok := lookup(key); ok {
		*dst = val
	}
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
