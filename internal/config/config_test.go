package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := Default()

	assert.Equal(t, "AeroDB", config.Database)
	assert.Equal(t, "aerodb_data.sql", config.OutputPath)
	assert.Equal(t, int64(3309), config.Seed)
	assert.Len(t, config.Airports, 10)
	assert.Equal(t, 5, config.CrewPerFlight)
	assert.Equal(t, 40, config.Counts.Routes)
	assert.Equal(t, 2500, config.Counts.Passengers)
	assert.Equal(t, 200, config.Counts.Flights)
	assert.Equal(t, 1000, config.Counts.Bookings)
	assert.Equal(t, 2500, config.Counts.Baggage)
	assert.NoError(t, config.Validate())
}

func TestLoadFrom_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("seed", 7)
	v.Set("counts.routes", 3)
	v.Set("airports", []string{"A", "B", "C"})

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.Counts.Routes)
	assert.Equal(t, []string{"A", "B", "C"}, cfg.Airports)
	assert.Equal(t, 40, cfg.Counts.Aircraft)
}

func TestLoadFrom_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "database: TestDB\ncounts:\n  flights: 12\nflight_window:\n  start: \"2030-01-01\"\n  end: \"2030-02-01\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "TestDB", cfg.Database)
	assert.Equal(t, 12, cfg.Counts.Flights)
	assert.Equal(t, "2030-01-01", cfg.FlightWindow.Start)
	assert.Equal(t, 2500, cfg.Counts.Passengers)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"missing database", func(c *Config) { c.Database = "" }, "database is required"},
		{"no airports", func(c *Config) { c.Airports = nil }, "airports must be at least 1"},
		{"duplicate airports", func(c *Config) { c.Airports = []string{"YYZ", "YYZ"} }, "airports must not contain duplicates"},
		{"negative count", func(c *Config) { c.Counts.Bookings = -1 }, "counts.bookings must be at least 0"},
		{"zero crew per flight", func(c *Config) { c.CrewPerFlight = 0 }, "crew_per_flight must be at least 1"},
		{"bad date", func(c *Config) { c.FlightWindow.Start = "01/01/2024" }, "flight_window.start must be a date"},
		{"reversed window", func(c *Config) { c.FlightWindow.End = "2023-12-31" }, "before flight_window.start"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestWindowBounds(t *testing.T) {
	start, end, err := Default().FlightWindow.Bounds()
	require.NoError(t, err)
	assert.Equal(t, 2024, start.Year())
	assert.Equal(t, 2025, end.Year())
	assert.Equal(t, 31, end.Day())
}

func TestInitializeProject(t *testing.T) {
	tempDir := t.TempDir()

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalDir)
	require.NoError(t, os.Chdir(tempDir))

	assert.False(t, IsInitialized())
	require.NoError(t, InitializeProject())
	assert.True(t, IsInitialized())

	// The written file must load back to the defaults
	v := viper.New()
	v.SetConfigFile(filepath.Join(tempDir, ConfigFileName))
	require.NoError(t, v.ReadInConfig())
	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	assert.Error(t, InitializeProject(), "second initialization should fail")
}
