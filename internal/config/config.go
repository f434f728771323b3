// Package config provides configuration loading for the grocery skill
// service: hardcoded defaults overridden by GROCERYSKILL_* environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "GROCERYSKILL_"

// Config holds every runtime setting of the service.
type Config struct {
	// HTTPAddr is the listen address of the skill endpoint.
	HTTPAddr string `koanf:"http_addr"`
	// ProjectID is the GCP project hosting Firestore and Pub/Sub.
	ProjectID string `koanf:"project_id"`
	// AnalyticsTopic is the Pub/Sub topic for usage events. Empty disables
	// analytics entirely.
	AnalyticsTopic string `koanf:"analytics_topic"`
	// TrackingID is the fixed property identifier stamped onto every
	// analytics event.
	TrackingID string `koanf:"tracking_id"`
	// AnalyticsQueueSize bounds the undelivered analytics event queue.
	AnalyticsQueueSize int `koanf:"analytics_queue_size"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
}

// Load builds the configuration from defaults and environment overrides.
//
// Environment variables are the uppercased field names with the service
// prefix, e.g. GROCERYSKILL_HTTP_ADDR and GROCERYSKILL_PROJECT_ID.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:           ":8080",
		AnalyticsQueueSize: 128,
		LogLevel:           "info",
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements.
func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("project_id must be set (GROCERYSKILL_PROJECT_ID)")
	}
	if c.AnalyticsTopic != "" && c.TrackingID == "" {
		return fmt.Errorf("tracking_id must be set when analytics_topic is configured")
	}
	if c.AnalyticsQueueSize <= 0 {
		return fmt.Errorf("analytics_queue_size must be positive")
	}
	return nil
}
