package web

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "COLORWHEEL_LISTEN"
	EnvDevMode    = "COLORWHEEL_DEV"
)

// ServerConfig contains settings for running the HTTP server.
// An empty ListenAddr means the server is disabled.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

// DefaultServerConfigFromEnv reads COLORWHEEL_LISTEN and COLORWHEEL_DEV,
// falling back to defaultListenAddr.
func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	cfg := ServerConfig{ListenAddr: defaultListenAddr}
	if raw := os.Getenv(EnvListenAddr); raw != "" {
		if _, _, err := net.SplitHostPort(raw); err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be host:port (got %q): %w", EnvListenAddr, raw, err)
		}
		cfg.ListenAddr = raw
	}

	devMode, err := envBool(EnvDevMode)
	if err != nil {
		return ServerConfig{}, err
	}
	cfg.DevMode = devMode
	return cfg, nil
}

func envBool(name string) (bool, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean (got %q): %w", name, raw, err)
	}
	return v, nil
}
