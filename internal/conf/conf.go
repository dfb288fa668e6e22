package conf

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
)

// Config represents application configuration
type Config struct {
	// Intel server configuration
	Intel IntelConfig

	// Chat configuration
	Chat ChatConfig

	// Viewport configuration
	Viewport ViewportConfig

	// Preferences configuration
	Prefs PrefsConfig

	// Debug mode
	Debug bool
}

// IntelConfig contains game server configuration
type IntelConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// ChatConfig contains chat sync configuration
type ChatConfig struct {
	PollInterval time.Duration
}

// ViewportConfig contains viewport configuration
type ViewportConfig struct {
	// Padding is the hysteresis tolerance as a fraction of the box size.
	Padding float64

	// Bounds is the fixed map viewport the daemon follows.
	Bounds domain.Bounds
}

// PrefsConfig contains preferences persistence configuration
type PrefsConfig struct {
	DBPath string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// Prefs DB path
	prefsDBPath := os.Getenv("PREFS_DB_PATH")
	if prefsDBPath == "" {
		homeDir, _ := os.UserHomeDir()
		prefsDBPath = filepath.Join(homeDir, ".intel-chat", "prefs.db")
	}

	// Poll interval
	pollSeconds := 30
	if val := os.Getenv("POLL_INTERVAL_SECONDS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			pollSeconds = parsed
		}
	}

	// Request timeout
	timeoutSeconds := 30
	if val := os.Getenv("REQUEST_TIMEOUT_SECONDS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			timeoutSeconds = parsed
		}
	}

	// Viewport hysteresis padding
	padding := 0.1
	if val := os.Getenv("VIEWPORT_PADDING"); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			padding = parsed
		}
	}

	return &Config{
		Intel: IntelConfig{
			BaseURL:        os.Getenv("INTEL_BASE_URL"),
			RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Chat: ChatConfig{
			PollInterval: time.Duration(pollSeconds) * time.Second,
		},
		Viewport: ViewportConfig{
			Padding: padding,
			Bounds: domain.Bounds{
				MinLat: envFloat("VIEWPORT_MIN_LAT"),
				MinLng: envFloat("VIEWPORT_MIN_LNG"),
				MaxLat: envFloat("VIEWPORT_MAX_LAT"),
				MaxLng: envFloat("VIEWPORT_MAX_LNG"),
			},
		},
		Prefs: PrefsConfig{
			DBPath: prefsDBPath,
		},
		Debug: os.Getenv("DEBUG") == "true",
	}
}

func envFloat(key string) float64 {
	val, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return 0
	}
	return val
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Intel.BaseURL == "" {
		return &ConfigError{Field: "INTEL_BASE_URL", Message: "required"}
	}
	// A zero-size box means the four VIEWPORT_* vars are missing or
	// degenerate; polling a point at 0,0 is never intended.
	if c.Viewport.Bounds.MinLat >= c.Viewport.Bounds.MaxLat ||
		c.Viewport.Bounds.MinLng >= c.Viewport.Bounds.MaxLng {
		return &ConfigError{Field: "VIEWPORT_MIN/MAX", Message: "inverted or zero-size bounds"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
