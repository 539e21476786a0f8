package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Shipping ShippingConfig `mapstructure:"shipping"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Name string `mapstructure:"name"`
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// StorageConfig selects the backend for the cart slot and names the keys
// the cart store owns. LegacyCartKey is the deprecated slot that gets
// migrated forward on first access.
type StorageConfig struct {
	Backend       string `mapstructure:"backend"` // memory or redis
	CartKey       string `mapstructure:"cart_key"`
	LegacyCartKey string `mapstructure:"legacy_cart_key"`
	Channel       string `mapstructure:"channel"`
}

type ShippingConfig struct {
	FreeThreshold float64 `mapstructure:"free_threshold"`
	FlatRate      float64 `mapstructure:"flat_rate"`
}

type CheckoutConfig struct {
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level       string   `mapstructure:"level"`
	Encoding    string   `mapstructure:"encoding"`
	OutputPaths []string `mapstructure:"output_paths"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	// A missing config file is fine, the defaults describe a runnable
	// single-process storefront with in-memory storage.
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "storefront")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.cart_key", "moldz3d_cart")
	v.SetDefault("storage.legacy_cart_key", "polyforge_cart")
	v.SetDefault("storage.channel", "moldz3d_cart_updated")

	v.SetDefault("shipping.free_threshold", 150.0)
	v.SetDefault("shipping.flat_rate", 15.0)

	v.SetDefault("checkout.processing_delay", 1500*time.Millisecond)
	v.SetDefault("checkout.timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")
}
