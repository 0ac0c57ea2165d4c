package config

import "sync"

type CORSConfig struct {
	// AllowOrigins is a comma separated origin list.
	AllowOrigins     string
	AllowCredentials bool
}

var (
	corsConfig *CORSConfig
	corsOnce   sync.Once
)

func LoadCORSConfig() *CORSConfig {
	corsOnce.Do(func() {
		origins := envOr("CORS_ALLOW_ORIGINS", "http://localhost:5173")
		// credentials cannot be combined with a wildcard origin
		corsConfig = &CORSConfig{
			AllowOrigins:     origins,
			AllowCredentials: origins != "*",
		}
	})
	return corsConfig
}
