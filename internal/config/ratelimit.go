package config

import (
	"sync"
	"time"
)

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

var (
	rateLimitConfig *RateLimitConfig
	rateLimitOnce   sync.Once
)

func LoadRateLimitConfig() *RateLimitConfig {
	rateLimitOnce.Do(func() {
		rateLimitConfig = &RateLimitConfig{
			Max:    envInt("RATE_LIMIT_MAX", 50),
			Window: envDuration("RATE_LIMIT_WINDOW", time.Minute),
		}
	})
	return rateLimitConfig
}
