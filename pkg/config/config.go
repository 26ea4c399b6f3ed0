package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/c9s/stockboard/pkg/service"
	"github.com/c9s/stockboard/pkg/types"
)

type ServerConfig struct {
	Bind           string   `yaml:"bind" json:"bind"`
	AllowedOrigins []string `yaml:"allowedOrigins" json:"allowedOrigins"`
}

type ChartConfig struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

type CacheConfig struct {
	// Type selects the cache backend: "memory" or "redis".
	Type  string                         `yaml:"type" json:"type"`
	TTL   time.Duration                  `yaml:"ttl" json:"ttl"`
	Redis service.RedisPersistenceConfig `yaml:"redis" json:"redis"`
}

type WatchlistConfig struct {
	Symbols  []string `yaml:"symbols" json:"symbols"`
	Period   string   `yaml:"period" json:"period"`
	Schedule string   `yaml:"schedule" json:"schedule"`
}

type DataSourceConfig struct {
	BaseURL string `yaml:"baseURL" json:"baseURL"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server"`
	Chart      ChartConfig      `yaml:"chart" json:"chart"`
	Cache      CacheConfig      `yaml:"cache" json:"cache"`
	Watchlist  WatchlistConfig  `yaml:"watchlist" json:"watchlist"`
	DataSource DataSourceConfig `yaml:"dataSource" json:"dataSource"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Bind:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Chart: ChartConfig{
			Width:  960,
			Height: 400,
		},
		Cache: CacheConfig{
			Type: "memory",
			TTL:  10 * time.Minute,
			Redis: service.RedisPersistenceConfig{
				Host: "127.0.0.1",
				Port: "6379",
			},
		},
		Watchlist: WatchlistConfig{
			Period:   types.DefaultPeriod.String(),
			Schedule: "@every 15m",
		},
	}
}

// Load reads the config file at path into the defaults. An empty path keeps
// the defaults, which is enough to run the dashboard out of the box.
func Load(path string) (*Config, error) {
	c := defaults()
	if path == "" {
		return c, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.Cache.Type {
	case "", "memory", "redis":
	default:
		return errors.Errorf("unsupported cache type %q", c.Cache.Type)
	}

	if c.Watchlist.Period != "" {
		if _, err := types.ParsePeriod(c.Watchlist.Period); err != nil {
			return err
		}
	}
	return nil
}

// BuildCache constructs the persistence backend selected by the config.
func (c *Config) BuildCache() service.PersistenceService {
	if c.Cache.Type == "redis" {
		return service.NewRedisPersistenceService(&c.Cache.Redis)
	}
	return service.NewMemoryService()
}
