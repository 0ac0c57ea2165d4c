package config

import (
	"log"
	"os"
	"strings"
	"sync"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		port := envOr("APP_PORT", ":8000")
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		appConfig = &AppConfig{
			Name:    envOr("APP_NAME", "Resume Match Scorer"),
			Env:     env,
			Port:    port,
			BaseURL: os.Getenv("APP_URL"),
		}
	})
	return appConfig
}

// IsProduction reports whether dev-only output (traces, pprof) is disabled.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
