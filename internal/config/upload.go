package config

import "sync"

const defaultUploadMaxBytes = 10 * 1024 * 1024

type UploadConfig struct {
	MaxBytes int
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		maxBytes := envInt("UPLOAD_MAX_BYTES", defaultUploadMaxBytes)
		if maxBytes <= 0 {
			maxBytes = defaultUploadMaxBytes
		}
		uploadConfig = &UploadConfig{MaxBytes: maxBytes}
	})
	return uploadConfig
}
