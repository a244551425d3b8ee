// Package config handles configuration for the CLI client.
package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userauth/internal/flagx"
)

// Config holds runtime settings for the userauth CLI.
//
// Fields:
//   - ServerAddr: base URL of the backend HTTP endpoint.
type Config struct {
	ServerAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8000"
}

func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("USERAUTH_SERVER"); ok {
		config.ServerAddr = v
	}
}

func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&config.ServerAddr, "a", config.ServerAddr, "server base URL")
	_ = fs.Parse(args)
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
