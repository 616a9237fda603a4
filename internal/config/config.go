package config

import (
	"log/slog"
	"os"
	"strings"
)

// Built-in fallbacks used when the environment is not set. Absence
// degrades to these with a logged warning rather than a crash.
const (
	DefaultAPIURL = "http://localhost:5000/api"
	DefaultCDNURL = "https://res.cloudinary.com"

	EnvAPIURL = "PORTFOLIO_API_URL"
	EnvCDNURL = "PORTFOLIO_CDN_URL"
)

// Config holds the two external origins the client talks to: the
// REST API and the CDN that serves uploaded assets.
type Config struct {
	APIURL string
	CDNURL string
}

// Load reads configuration from the environment, warning on every
// fallback so a misconfigured deployment is visible in logs.
func Load(logger *slog.Logger) *Config {
	return &Config{
		APIURL: envOrDefault(logger, EnvAPIURL, DefaultAPIURL),
		CDNURL: envOrDefault(logger, EnvCDNURL, DefaultCDNURL),
	}
}

func envOrDefault(logger *slog.Logger, key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return strings.TrimRight(value, "/")
	}
	logger.Warn("environment variable not set, using default",
		slog.String("var", key),
		slog.String("default", fallback))
	return fallback
}

// ResolveAssetURL absolutizes a CDN-relative asset path. Already
// absolute URLs pass through untouched; the client never validates
// reachability.
func (c *Config) ResolveAssetURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.CDNURL + "/" + strings.TrimLeft(path, "/")
}
