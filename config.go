package main

import "os"

// Config holds all environment variables for the storefront API.
type Config struct {
	Port     string // listening port (default 8080)
	MongoURI string // store connection string; empty means fallback-data mode
	MongoDB  string // database name (default "storefront")
	Env      string // runtime-environment tag; "production" hides error detail
	RedisURL string // optional catalog cache; empty disables caching
}

// LoadConfig loads environment variables into a Config struct with defaults.
func LoadConfig() *Config {
	cfg := &Config{
		Port:     os.Getenv("PORT"),
		MongoURI: os.Getenv("MONGODB_URI"),
		MongoDB:  os.Getenv("MONGODB_DB"),
		Env:      os.Getenv("APP_ENV"),
		RedisURL: os.Getenv("REDIS_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "storefront"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	return cfg
}
