// Package config provides configuration validation tests for the ingestion
// daemon: bind address parsing, scheduler bounds and environment overrides.
package config

import (
	"strings"
	"testing"
	"time"
)

// defaultConfig returns a Config populated the way the flag defaults would
func defaultConfig() Config {
	return Config{
		APIAddr:        DefaultAPI,
		BatchSize:      DefaultBatchSize,
		RateLimitMs:    DefaultRateLimitMs,
		ProcessDelayMs: DefaultProcessDelayMs,
		LogLevel:       DefaultLogLevel,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(c *Config)
		expectError   bool
		errorContains string
	}{
		{
			name:   "defaults_ok",
			modify: func(c *Config) {},
		},
		{
			name: "loopback_custom_port_ok",
			modify: func(c *Config) {
				c.APIAddr = "127.0.0.1:9000"
			},
		},
		{
			name: "zero_rate_limit_ok",
			modify: func(c *Config) {
				c.RateLimitMs = 0
			},
		},
		{
			name: "missing_port",
			modify: func(c *Config) {
				c.APIAddr = "127.0.0.1"
			},
			expectError:   true,
			errorContains: "invalid API address",
		},
		{
			name: "hostname_rejected",
			modify: func(c *Config) {
				c.APIAddr = "localhost:8000"
			},
			expectError:   true,
			errorContains: "invalid API address",
		},
		{
			name: "port_zero_rejected",
			modify: func(c *Config) {
				c.APIAddr = "0.0.0.0:0"
			},
			expectError:   true,
			errorContains: "requires specific port",
		},
		{
			name: "invalid_log_level",
			modify: func(c *Config) {
				c.LogLevel = "TRACE"
			},
			expectError:   true,
			errorContains: "invalid log level",
		},
		{
			name: "zero_batch_size",
			modify: func(c *Config) {
				c.BatchSize = 0
			},
			expectError:   true,
			errorContains: "batch size",
		},
		{
			name: "negative_rate_limit",
			modify: func(c *Config) {
				c.RateLimitMs = -1
			},
			expectError:   true,
			errorContains: "must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global = defaultConfig()
			tt.modify(&Global)

			err := ValidateConfig()

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errorContains)
				}
				if !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("expected error containing %q, got %q", tt.errorContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateConfig_SplitsAPIAddress(t *testing.T) {
	Global = defaultConfig()
	Global.APIAddr = "127.0.0.1:9000"

	if err := ValidateConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Global.APIAddr != "127.0.0.1" {
		t.Errorf("APIAddr = %q, want %q", Global.APIAddr, "127.0.0.1")
	}
	if Global.APIPort != 9000 {
		t.Errorf("APIPort = %d, want 9000", Global.APIPort)
	}
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	Global = defaultConfig()
	t.Setenv("BATCH_SIZE", "10")
	t.Setenv("RATE_LIMIT_MS", "250")
	t.Setenv("PROCESS_DELAY_MS", "5")
	t.Setenv("DEBUG", "true")

	InitializeConfig()

	if Global.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want 10", Global.BatchSize)
	}
	if Global.RateLimitMs != 250 {
		t.Errorf("RateLimitMs = %d, want 250", Global.RateLimitMs)
	}
	if Global.ProcessDelayMs != 5 {
		t.Errorf("ProcessDelayMs = %d, want 5", Global.ProcessDelayMs)
	}
	if Global.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q, want DEBUG", Global.LogLevel)
	}
}

func TestInitializeConfig_FlagWinsOverEnv(t *testing.T) {
	Global = defaultConfig()
	Global.BatchSize = 7
	Global.SetExplicitlySet(BatchSizeField, true)
	t.Setenv("BATCH_SIZE", "10")

	InitializeConfig()

	if Global.BatchSize != 7 {
		t.Errorf("BatchSize = %d, want explicit flag value 7", Global.BatchSize)
	}
}

func TestInitializeConfig_InvalidEnvKeepsDefault(t *testing.T) {
	Global = defaultConfig()
	t.Setenv("RATE_LIMIT_MS", "fast")

	InitializeConfig()

	if Global.RateLimitMs != DefaultRateLimitMs {
		t.Errorf("RateLimitMs = %d, want default %d", Global.RateLimitMs, DefaultRateLimitMs)
	}
}

func TestSchedulerConfig(t *testing.T) {
	c := defaultConfig()
	c.RateLimitMs = 1500
	c.ProcessDelayMs = 20

	sc := c.SchedulerConfig()

	if sc.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", sc.BatchSize, DefaultBatchSize)
	}
	if sc.RateLimit != 1500*time.Millisecond {
		t.Errorf("RateLimit = %v, want 1.5s", sc.RateLimit)
	}
	if sc.ProcessDelay != 20*time.Millisecond {
		t.Errorf("ProcessDelay = %v, want 20ms", sc.ProcessDelay)
	}
}
