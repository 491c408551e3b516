package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Server   ServerConfig    `mapstructure:"server"`
		JWT      JWTConfig       `mapstructure:"jwt"`
		Mongo    MongoConfig     `mapstructure:"mongo"`
		Redis    RedisConfig     `mapstructure:"redis"`
		Google   GoogleConfig    `mapstructure:"google"`
		Storage  StorageConfig   `mapstructure:"storage"`
		Families []FamilyAccount `mapstructure:"families"`
		LogLevel string          `mapstructure:"log_level"`
	}

	ServerConfig struct {
		Port         int      `mapstructure:"port"`
		AllowOrigins []string `mapstructure:"allow_origins"`
	}

	JWTConfig struct {
		Secret        string `mapstructure:"secret"`
		ExpiryMinutes int    `mapstructure:"expiry_minutes"`
	}

	MongoConfig struct {
		URI      string `mapstructure:"uri"`
		Database string `mapstructure:"database"`
	}

	RedisConfig struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}

	GoogleConfig struct {
		CredentialsFile string `mapstructure:"credentials_file"`
		SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	}

	StorageConfig struct {
		// Driver selects the object-store backend: "gcs" or "s3".
		Driver string `mapstructure:"driver"`
		Bucket string `mapstructure:"bucket"`
		// S3-compatible settings (R2, MinIO, AWS). PublicBaseURL is the
		// public domain objects are served from when the driver is "s3".
		Endpoint      string `mapstructure:"endpoint"`
		Region        string `mapstructure:"region"`
		AccessKey     string `mapstructure:"access_key"`
		SecretKey     string `mapstructure:"secret_key"`
		PublicBaseURL string `mapstructure:"public_base_url"`
	}

	// FamilyAccount maps one shared passcode to a family identity. The table
	// is loaded once at startup and handed to the auth service; it is never
	// persisted to the document store.
	FamilyAccount struct {
		Name     string `mapstructure:"name"`
		Passcode string `mapstructure:"passcode"`
	}
)

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads config.yaml (path overridable via CONFIG_FILE) with environment
// overrides, e.g. SERVER_PORT or JWT_SECRET. A missing config file is fine as
// long as the environment provides the required values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 7070)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry_minutes", 60)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "wedding")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("storage.driver", "gcs")
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}
	if len(cfg.Families) == 0 {
		return nil, fmt.Errorf("at least one family account is required")
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()
	return cfg, nil
}

func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// Set replaces the package instance. Intended for tests.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}
