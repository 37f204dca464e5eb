package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir runs Load away from the repository configs directory so only
// defaults and the environment apply.
func inEmptyDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, AppConfig{Name: "quote-service", Version: "dev", Environment: "local"}, cfg.App)
	assert.Equal(t, ServerConfig{
		Port:            DefaultServerPort,
		Host:            "0.0.0.0",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxRequestSize:  DefaultMaxRequestSize,
	}, cfg.Server)

	assert.Equal(t, VariantMemory, cfg.Repository.Variant)
	assert.False(t, cfg.Repository.LoadSampleData)
	assert.False(t, cfg.Repository.UsesDatabase())

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, DefaultDatabaseMaxOpenConns, cfg.Database.MaxOpenConns)

	assert.Equal(t, LogFileConfig{
		Path:       "./logs/app.log",
		MaxSizeMB:  DefaultLogFileMaxSizeMB,
		MaxBackups: DefaultLogFileMaxBackups,
		MaxAgeDays: DefaultLogFileMaxAgeDays,
		Compress:   true,
	}, cfg.Log.File)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.InDelta(t, 1.0, cfg.Telemetry.SamplingRate, 0)

	assert.Equal(t, RetryConfig{
		MaxAttempts:     DefaultClientRetryMaxAttempts,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      DefaultClientRetryMultiplier,
		JitterFactor:    DefaultClientRetryJitterFactor,
	}, cfg.Client.Retry)
	assert.Equal(t, 30*time.Second, cfg.Client.CircuitBreaker.Timeout)
	assert.Equal(t, "http://localhost:8080", cfg.Services.Quote.BaseURL)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		env   string
		value string
		check func(t *testing.T, cfg *Config)
	}{
		{
			env: "APP_SERVER_PORT", value: "9090",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 9090, cfg.Server.Port) },
		},
		{
			env: "APP_LOG_LEVEL", value: "trace",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, "trace", cfg.Log.Level) },
		},
		{
			env: "APP_TELEMETRY_ENABLED", value: "true",
			check: func(t *testing.T, cfg *Config) { assert.True(t, cfg.Telemetry.Enabled) },
		},
		{
			env: "APP_REPOSITORY_VARIANT", value: VariantSQLJSONObject,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, VariantSQLJSONObject, cfg.Repository.Variant)
				assert.True(t, cfg.Repository.UsesDatabase())
			},
		},
		{
			env: "APP_REPOSITORY_LOAD_SAMPLE_DATA", value: "true",
			check: func(t *testing.T, cfg *Config) { assert.True(t, cfg.Repository.LoadSampleData) },
		},
		{
			env: "APP_DATABASE_MAX_OPEN_CONNS", value: "4",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 4, cfg.Database.MaxOpenConns) },
		},
		{
			env: "APP_CLIENT_CIRCUIT_BREAKER_HALF_OPEN_LIMIT", value: "7",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 7, cfg.Client.CircuitBreaker.HalfOpenLimit) },
		},
		{
			env: "APP_SERVICES_QUOTE_BASE_URL", value: "http://quotes.internal:8080",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://quotes.internal:8080", cfg.Services.Quote.BaseURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			inEmptyDir(t)
			t.Setenv(tt.env, tt.value)

			cfg, err := Load("")
			require.NoError(t, err)

			tt.check(t, cfg)
		})
	}
}

func TestLoad_ProfileLayering(t *testing.T) {
	inEmptyDir(t)
	require.NoError(t, os.Mkdir("configs", 0o755))

	writeYAML := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join("configs", name), []byte(body), 0o600))
	}

	writeYAML("base.yaml", "log:\n  level: info\nrepository:\n  variant: sql-rows\n")
	writeYAML("qa.yaml", "log:\n  level: debug\n")

	cfg, err := Load("qa")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level, "profile overrides base")
	assert.Equal(t, VariantSQLRows, cfg.Repository.Variant, "base survives where the profile is silent")

	t.Setenv("APP_LOG_LEVEL", "error")

	cfg, err = Load("qa")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level, "environment overrides both files")
}

func TestLoad_MissingProfileIsIgnored(t *testing.T) {
	inEmptyDir(t)

	cfg, err := Load("nonexistent")
	require.NoError(t, err)
	assert.Equal(t, "quote-service", cfg.App.Name)
}

func TestLoad_MalformedFile(t *testing.T) {
	inEmptyDir(t)
	require.NoError(t, os.Mkdir("configs", 0o755))
	require.NoError(t, os.WriteFile("configs/base.yaml", []byte("server: [port"), 0o600))

	_, err := Load("")
	require.ErrorContains(t, err, "loading base config")
}

func TestEnvKeyMapper(t *testing.T) {
	mapper := envKeyMapper([]string{"log.file.max_size", "server.port", "repository.load_sample_data"})

	tests := map[string]string{
		"APP_LOG_FILE_MAX_SIZE":           "log.file.max_size",
		"APP_SERVER_PORT":                 "server.port",
		"APP_REPOSITORY_LOAD_SAMPLE_DATA": "repository.load_sample_data",
		"APP_EXTRA_KEY":                   "extra.key",
	}

	for in, want := range tests {
		assert.Equal(t, want, mapper(in), in)
	}
}
