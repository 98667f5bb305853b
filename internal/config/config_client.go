package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ClientConfig is the configuration of the CLI client.
type ClientConfig struct {
	// ServerAddress is the base URL or host:port of the feed server.
	// Env: FEED_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the timeout for every outbound request.
	// Env: FEED_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenFile is where the client keeps the bearer token between runs.
	// Env: FEED_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`

	// LogLevel is the minimum level of client diagnostics on stderr.
	// Env: FEED_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetClientConfig builds and validates the client configuration from
// environment variables overridden by flags in args. It returns the
// positional arguments left after flag parsing (the subcommand and its
// arguments).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		ServerAddress:  "http://localhost:8080",
		RequestTimeout: 10 * time.Second,
		TokenFile:      defaultTokenFile(),
		LogLevel:       "warn",
	}

	if err := parseEnv(cfg, clientEnvPrefix); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("go-feed-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerAddress, "s", cfg.ServerAddress, "Server address")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".go-feed-token"
	}
	return filepath.Join(home, ".go-feed-token")
}
