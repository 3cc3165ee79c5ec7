// Package config loads server and CLI configuration from an optional YAML
// file, with SFMC_* environment variables taking precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

// Config holds all sfmc configuration. Durations are YAML strings ("30s",
// "5m") parsed on demand.
type Config struct {
	// Listen is the HTTP server address.
	Listen string `yaml:"listen"`

	// ContentDir holds static puzzle content ({dataset}/{bareId}.json).
	ContentDir string `yaml:"content_dir"`

	// ProgressDir holds player progress saves.
	ProgressDir string `yaml:"progress_dir"`

	Analytics AnalyticsConfig `yaml:"analytics"`
	TitleData TitleDataConfig `yaml:"title_data"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AnalyticsConfig configures the model-performance API client.
type AnalyticsConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// TitleDataConfig configures batch storage access.
type TitleDataConfig struct {
	BaseURL   string `yaml:"base_url"`
	SecretKey string `yaml:"secret_key"`
	Namespace string `yaml:"namespace"`
	Timeout   string `yaml:"timeout"`

	// LocalDB, when set, serves batches from a sqlite mirror instead of the
	// remote store.
	LocalDB string `yaml:"local_db"`

	// Batches is the number of storage batches per dataset.
	Batches map[string]int `yaml:"batches"`
}

// CacheConfig configures the batch lookup cache.
type CacheConfig struct {
	TTL string `yaml:"ttl"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Listen:      ":8080",
		ContentDir:  "./data/tasks",
		ProgressDir: "./data/progress",
		Analytics: AnalyticsConfig{
			BaseURL: "https://arc-explainer.example.com/api",
			Timeout: "30s",
		},
		TitleData: TitleDataConfig{
			BaseURL:   "https://titledata.example.com",
			Namespace: "sfmc-tasks",
			Timeout:   "30s",
			Batches: map[string]int{
				string(domain.DatasetTraining):    4,
				string(domain.DatasetTraining2):   10,
				string(domain.DatasetEvaluation):  4,
				string(domain.DatasetEvaluation2): 12,
			},
		},
		Cache:   CacheConfig{TTL: "5m"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path (when non-empty) over the defaults and applies environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setStr := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setStr("SFMC_LISTEN", &c.Listen)
	setStr("SFMC_CONTENT_DIR", &c.ContentDir)
	setStr("SFMC_PROGRESS_DIR", &c.ProgressDir)
	setStr("SFMC_ANALYTICS_URL", &c.Analytics.BaseURL)
	setStr("SFMC_TITLEDATA_URL", &c.TitleData.BaseURL)
	setStr("SFMC_TITLEDATA_SECRET", &c.TitleData.SecretKey)
	setStr("SFMC_TITLEDATA_NAMESPACE", &c.TitleData.Namespace)
	setStr("SFMC_TITLEDATA_LOCAL_DB", &c.TitleData.LocalDB)
	setStr("SFMC_CACHE_TTL", &c.Cache.TTL)
	setStr("SFMC_LOG_LEVEL", &c.Logging.Level)
	if v := os.Getenv("SFMC_BATCHES"); v != "" {
		// Uniform override: same batch count for every dataset.
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			for k := range c.TitleData.Batches {
				c.TitleData.Batches[k] = n
			}
		}
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// AnalyticsTimeout returns the parsed analytics client timeout.
func (c *Config) AnalyticsTimeout() time.Duration {
	return parseDuration(c.Analytics.Timeout, 30*time.Second)
}

// TitleDataTimeout returns the parsed title-data client timeout.
func (c *Config) TitleDataTimeout() time.Duration {
	return parseDuration(c.TitleData.Timeout, 30*time.Second)
}

// CacheTTL returns the parsed batch cache TTL.
func (c *Config) CacheTTL() time.Duration {
	return parseDuration(c.Cache.TTL, 5*time.Minute)
}

// BatchCounts converts the string-keyed YAML batch map to dataset tags.
// Unknown dataset names are ignored.
func (c *Config) BatchCounts() map[domain.Dataset]int {
	out := make(map[domain.Dataset]int, len(c.TitleData.Batches))
	for name, n := range c.TitleData.Batches {
		if ds, err := domain.ParseDataset(name); err == nil {
			out[ds] = n
		}
	}
	return out
}
