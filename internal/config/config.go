// Package config holds the server's runtime settings.
package config

import (
	"fmt"
	"net"
	"strconv"
)

type Config struct {
	Bind          string
	Port          int
	DatabaseURL   string
	AdminPassword string
	StaticDir     string
	Verbose       bool
}

// Default returns the settings used when no flag or environment variable
// overrides them. DatabaseURL defaults to empty: the server runs with
// in-memory state only until one is provided.
func Default() Config {
	return Config{
		Bind:          "0.0.0.0",
		Port:          3000,
		AdminPassword: "admin123",
		StaticDir:     "public",
	}
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("admin password must not be empty")
	}
	return nil
}

// Addr is the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}
