package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetBool parses a boolean environment value, or returns fallback.
func GetBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// GetDuration parses a time.Duration environment value, or returns fallback.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// ModeDefaults holds speed and range used for vehicles missing them.
type ModeDefaults struct {
	SpeedKmh   float64 `yaml:"speed_kmh"`
	MaxRangeKm float64 `yaml:"max_range_km"`
}

// FleetConfig maps a transport mode (GROUND, AIR, WATER) to its defaults.
type FleetConfig struct {
	Modes map[string]ModeDefaults `yaml:"modes"`
}

// DefaultFleet returns the built-in mode defaults.
func DefaultFleet() FleetConfig {
	return FleetConfig{
		Modes: map[string]ModeDefaults{
			"GROUND": {SpeedKmh: 80, MaxRangeKm: 500},
			"AIR":    {SpeedKmh: 300, MaxRangeKm: 800},
			"WATER":  {SpeedKmh: 40, MaxRangeKm: 400},
		},
	}
}

type OptimizerConfig struct {
	PriorityTieBreak bool `yaml:"priority_tiebreak"`
}

type GeometryConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Profile  string        `yaml:"profile"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// Config is the process configuration for the server and dbtool.
type Config struct {
	Port        string
	DataSource  string // "csv" or "postgres"
	DataDir     string
	DatabaseURL string
	RedisURL    string

	Fleet     FleetConfig
	Optimizer OptimizerConfig
	Geometry  GeometryConfig
}

// Load builds the configuration from environment variables, then applies
// the optional YAML file named by CONFIG_PATH on top.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        Get("PORT", "8080"),
		DataSource:  strings.ToLower(Get("DATA_SOURCE", "csv")),
		DataDir:     Get("DATA_DIR", "data"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisURL:    Get("REDIS_URL", ""),
		Fleet:       DefaultFleet(),
		Optimizer: OptimizerConfig{
			PriorityTieBreak: GetBool("PRIORITY_TIEBREAK", false),
		},
		Geometry: GeometryConfig{
			BaseURL:  Get("OSRM_URL", "http://router.project-osrm.org"),
			Profile:  Get("OSRM_PROFILE", "driving"),
			Timeout:  GetDuration("OSRM_TIMEOUT", 5*time.Second),
			CacheTTL: GetDuration("GEOMETRY_CACHE_TTL", 24*time.Hour),
		},
	}

	if path := Get("CONFIG_PATH", ""); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// fileConfig is the YAML shape. Unset fields leave the current value alone.
type fileConfig struct {
	Fleet     FleetConfig `yaml:"fleet"`
	Optimizer struct {
		PriorityTieBreak *bool `yaml:"priority_tiebreak"`
	} `yaml:"optimizer"`
	Geometry GeometryConfig `yaml:"geometry"`
}

func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(b, &file); err != nil {
		return fmt.Errorf("parse %q: %w", path, err)
	}

	for mode, d := range file.Fleet.Modes {
		mode = strings.ToUpper(mode)
		cur := c.Fleet.Modes[mode]
		if d.SpeedKmh > 0 {
			cur.SpeedKmh = d.SpeedKmh
		}
		if d.MaxRangeKm > 0 {
			cur.MaxRangeKm = d.MaxRangeKm
		}
		c.Fleet.Modes[mode] = cur
	}
	if file.Optimizer.PriorityTieBreak != nil {
		c.Optimizer.PriorityTieBreak = *file.Optimizer.PriorityTieBreak
	}
	if file.Geometry.BaseURL != "" {
		c.Geometry.BaseURL = file.Geometry.BaseURL
	}
	if file.Geometry.Profile != "" {
		c.Geometry.Profile = file.Geometry.Profile
	}
	if file.Geometry.Timeout > 0 {
		c.Geometry.Timeout = file.Geometry.Timeout
	}
	if file.Geometry.CacheTTL > 0 {
		c.Geometry.CacheTTL = file.Geometry.CacheTTL
	}

	return nil
}

func (c *Config) validate() error {
	switch c.DataSource {
	case "csv":
		if c.DataDir == "" {
			return errors.New("DATA_DIR is required for csv data source")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for postgres data source")
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}
	return nil
}
