package config

import (
	"sync"
	"time"
)

// ClientConfig configures matchctl.
type ClientConfig struct {
	ServerURL string
	Timeout   time.Duration
}

var (
	clientConfig *ClientConfig
	clientOnce   sync.Once
)

func LoadClientConfig() *ClientConfig {
	clientOnce.Do(func() {
		clientConfig = &ClientConfig{
			ServerURL: envOr("MATCH_SERVER_URL", "http://127.0.0.1:8000"),
			Timeout:   envDuration("MATCH_TIMEOUT", 30*time.Second),
		}
	})
	return clientConfig
}
