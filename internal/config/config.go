package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Geocoder GeocoderConfig `mapstructure:"geocoder"`
	Routing  RoutingConfig  `mapstructure:"routing"`
	ORS      ORSConfig      `mapstructure:"ors"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Log      LogConfig      `mapstructure:"log"`
	Map      MapConfig      `mapstructure:"map"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type GeocoderConfig struct {
	Provider       string `mapstructure:"provider"`
	BaseURL        string `mapstructure:"base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (g GeocoderConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

type RoutingConfig struct {
	Provider       string `mapstructure:"provider"`
	BaseURL        string `mapstructure:"base_url"`
	Profile        string `mapstructure:"profile"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (r RoutingConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// ORSConfig is used when geocoder.provider or routing.provider is "ors".
type ORSConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Profile string `mapstructure:"profile"`
}

// CacheConfig selects the LookupStore backend for geocode/route outcomes.
type CacheConfig struct {
	Backend     string `mapstructure:"backend"`
	RedisAddr   string `mapstructure:"redis_addr"`
	ValkeyAddr  string `mapstructure:"valkey_addr"`
	DatabaseURL string `mapstructure:"database_url"`
	Prefix      string `mapstructure:"prefix"`
	MaxEntries  int    `mapstructure:"max_entries"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MapConfig is the initial view used when nothing is geocoded.
type MapConfig struct {
	DefaultLat  float64 `mapstructure:"default_lat"`
	DefaultLon  float64 `mapstructure:"default_lon"`
	DefaultZoom int     `mapstructure:"default_zoom"`
}

const (
	ProviderNominatim = "nominatim"
	ProviderOSRM      = "osrm"
	ProviderORS       = "ors"

	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendValkey   = "valkey"
	BackendPostgres = "postgres"
)

// Load reads configuration from defaults, an optional config file, .env and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load() // OK if missing

	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("geocoder.provider", ProviderNominatim)
	v.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.user_agent", "barycentre-service")
	v.SetDefault("geocoder.timeout_seconds", 10)
	v.SetDefault("routing.provider", ProviderOSRM)
	v.SetDefault("routing.base_url", "https://router.project-osrm.org")
	v.SetDefault("routing.profile", "driving")
	v.SetDefault("routing.timeout_seconds", 10)
	v.SetDefault("ors.api_key", "")
	v.SetDefault("ors.base_url", "https://api.openrouteservice.org")
	v.SetDefault("ors.profile", "driving-car")
	v.SetDefault("cache.backend", BackendMemory)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.valkey_addr", "localhost:6379")
	v.SetDefault("cache.database_url", "")
	v.SetDefault("cache.prefix", "barycentre")
	v.SetDefault("cache.max_entries", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("map.default_lat", 48.8566)
	v.SetDefault("map.default_lon", 2.3522)
	v.SetDefault("map.default_zoom", 11)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: BARYCENTRE_CACHE_BACKEND → cache.backend
	v.SetEnvPrefix("BARYCENTRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}

	switch c.Geocoder.Provider {
	case ProviderNominatim:
		if c.Geocoder.BaseURL == "" {
			errs = append(errs, "geocoder.base_url is required")
		}
		// Nominatim's usage policy rejects anonymous clients.
		if strings.TrimSpace(c.Geocoder.UserAgent) == "" {
			errs = append(errs, "geocoder.user_agent is required")
		}
	case ProviderORS:
	default:
		errs = append(errs, fmt.Sprintf("geocoder.provider must be nominatim or ors, got %q", c.Geocoder.Provider))
	}
	if c.Geocoder.TimeoutSeconds <= 0 {
		errs = append(errs, "geocoder.timeout_seconds must be positive")
	}

	switch c.Routing.Provider {
	case ProviderOSRM:
		if c.Routing.BaseURL == "" {
			errs = append(errs, "routing.base_url is required")
		}
		if c.Routing.Profile == "" {
			errs = append(errs, "routing.profile is required")
		}
	case ProviderORS:
	default:
		errs = append(errs, fmt.Sprintf("routing.provider must be osrm or ors, got %q", c.Routing.Provider))
	}
	if c.Routing.TimeoutSeconds <= 0 {
		errs = append(errs, "routing.timeout_seconds must be positive")
	}

	if c.UsesORS() && strings.TrimSpace(c.ORS.APIKey) == "" {
		errs = append(errs, "ors.api_key is required when a provider is ors")
	}

	switch c.Cache.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			errs = append(errs, "cache.redis_addr is required for the redis backend")
		}
	case BackendValkey:
		if c.Cache.ValkeyAddr == "" {
			errs = append(errs, "cache.valkey_addr is required for the valkey backend")
		}
	case BackendPostgres:
		if c.Cache.DatabaseURL == "" {
			errs = append(errs, "cache.database_url is required for the postgres backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("cache.backend must be one of memory, redis, valkey, postgres, got %q", c.Cache.Backend))
	}
	if c.Cache.MaxEntries < 0 {
		errs = append(errs, "cache.max_entries must not be negative")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}

	if c.Map.DefaultLat < -90 || c.Map.DefaultLat > 90 || c.Map.DefaultLon < -180 || c.Map.DefaultLon > 180 {
		errs = append(errs, "map.default_lat/default_lon out of range")
	}
	if c.Map.DefaultZoom < 0 || c.Map.DefaultZoom > 19 {
		errs = append(errs, "map.default_zoom must be 0-19")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// UsesORS reports whether either provider is OpenRouteService.
func (c *Config) UsesORS() bool {
	return c.Geocoder.Provider == ProviderORS || c.Routing.Provider == ProviderORS
}
