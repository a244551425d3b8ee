package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Equal(t, "http://127.0.0.1:8000", c.ServerAddr)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("USERAUTH_SERVER", "http://example.com:9000")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "http://example.com:9000", c.ServerAddr)
}
