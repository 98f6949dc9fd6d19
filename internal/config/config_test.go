package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("BACKEND_API_KEY", "")

	c := FromViper(viper.New())
	assert.Equal(t, 2*time.Second, c.ProbeTimeout)
	assert.Equal(t, 5*time.Minute, c.ProbeCacheTTL)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.True(t, c.MockLatency)
	assert.False(t, c.RemoteEnabled())
}

func TestFromViper_Environment(t *testing.T) {
	t.Setenv("BACKEND_URL", "postgres://shop@db/shop")
	t.Setenv("BACKEND_API_KEY", "public-key")
	t.Setenv("PROBE_TIMEOUT", "500ms")
	t.Setenv("MOCK_LATENCY", "false")

	c := FromViper(viper.New())
	assert.True(t, c.RemoteEnabled())
	assert.Equal(t, 500*time.Millisecond, c.ProbeTimeout)
	assert.False(t, c.MockLatency)
}

func TestRemoteEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"configured", Config{BackendURL: "u", BackendAPIKey: "k"}, true},
		{"missing key", Config{BackendURL: "u"}, false},
		{"missing url", Config{BackendAPIKey: "k"}, false},
		{"forced mock", Config{BackendURL: "u", BackendAPIKey: "k", UseMock: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.RemoteEnabled())
		})
	}
}
