package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		start       *Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:8081", "-g", "127.0.0.1:9090", "-d", "db", "-s", "secret",
			"-t", "60", "-k", "12", "-o", "http://a,http://b",
			"-u", "user", "-p", "password", "-b", "bucket", "-r", "us-west-1", "-e", "http://endpoint",
		},
			start: &Config{},
			expected: &Config{
				EndpointAddrHTTP:      "127.0.0.1:8081",
				EndpointAddrGRPC:      "127.0.0.1:9090",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenValidityDuration: time.Hour,
				BcryptCost:            12,
				AllowedOrigins:        []string{"http://a", "http://b"},
				S3RootUser:            "user",
				S3RootPassword:        "password",
				S3Bucket:              "bucket",
				S3Region:              "us-west-1",
				S3BaseEndpoint:        "http://endpoint",
			}},
		{name: "absent flags keep values", args: []string{"cmd", "-c", "cfg.json", "-x", "1"},
			start: &Config{
				SecretKey:             "keep",
				TokenValidityDuration: 90 * time.Second,
				AllowedOrigins:        []string{"*"},
			},
			expected: &Config{
				SecretKey:             "keep",
				TokenValidityDuration: 90 * time.Second,
				AllowedOrigins:        []string{"*"},
			}},
		{name: "bad int panics", args: []string{"cmd", "-k", "ten"}, start: &Config{}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := tt.start

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
