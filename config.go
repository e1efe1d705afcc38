package iokit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// SFTP driver configuration
	SFTPUsername   string `env:"IOKIT_SFTP_USERNAME"`
	SFTPPassword   string `env:"IOKIT_SFTP_PASSWORD"`
	SFTPPrivateKey string `env:"IOKIT_SFTP_PRIVATE_KEY"` // Path to private key file

	// Transfer tuning: upper bound on bytes per transfer primitive call
	MaxChunk int `env:"IOKIT_MAX_CHUNK,default:32768"`

	// Default suffix appended to multi-part segments
	DefaultSuffix string `env:"IOKIT_DEFAULT_SUFFIX"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
