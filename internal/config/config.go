// Package config loads the operator's environment-driven configuration via
// viper, per spec §6 ("Configuration via environment").
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/benkeil/github-operator/internal/domain/usecase"
)

// Config holds every environment-sourced setting the operator needs at
// startup.
type Config struct {
	// GitHubToken authenticates the Remote Provider Port adapter. Required.
	GitHubToken string

	// LoggingFormat is "plain" or "json".
	LoggingFormat string

	// OTLPEndpoint is the optional OTLP/gRPC collector address for tracing.
	// Empty disables exporting.
	OTLPEndpoint string

	// MetricsBindAddress serves /metrics.
	MetricsBindAddress string

	// RepositoryCleanupPolicy resolves the archive-on-delete open question
	// as a deployment-time knob rather than a CR field.
	RepositoryCleanupPolicy usecase.RepositoryCleanupPolicy
}

// Load reads Config from the environment. GITHUB_TOKEN is bound unprefixed,
// matching spec §6 literally; every other setting uses the APP_ prefix.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("logging_format", "plain")
	v.SetDefault("metrics_bind_address", "127.0.0.1:9100")
	v.SetDefault("repository_cleanup_policy", "noop")

	if err := v.BindEnv("github_token", "GITHUB_TOKEN"); err != nil {
		return Config{}, fmt.Errorf("binding GITHUB_TOKEN: %w", err)
	}

	token := v.GetString("github_token")
	if token == "" {
		return Config{}, fmt.Errorf("GITHUB_TOKEN is required")
	}

	policy, err := parseCleanupPolicy(v.GetString("repository_cleanup_policy"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		GitHubToken:             token,
		LoggingFormat:           v.GetString("logging_format"),
		OTLPEndpoint:            v.GetString("otlp_endpoint"),
		MetricsBindAddress:      v.GetString("metrics_bind_address"),
		RepositoryCleanupPolicy: policy,
	}, nil
}

func parseCleanupPolicy(value string) (usecase.RepositoryCleanupPolicy, error) {
	switch strings.ToLower(value) {
	case "", "noop":
		return usecase.PolicyNoop, nil
	case "archive":
		return usecase.PolicyArchive, nil
	default:
		return usecase.PolicyNoop, fmt.Errorf("APP_REPOSITORY_CLEANUP_POLICY: unknown value %q", value)
	}
}
