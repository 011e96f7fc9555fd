package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/aerogen/internal/seeder"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetCommands restores flags and viper once the test ends. The commands
// are package globals, and slice flags append to values from earlier runs.
func resetCommands(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		for _, flags := range []*pflag.FlagSet{rootCmd.PersistentFlags(), rootCmd.Flags(), generateCmd.Flags()} {
			flags.VisitAll(func(f *pflag.Flag) {
				if slice, ok := f.Value.(pflag.SliceValue); ok {
					var values []string
					if def := strings.Trim(f.DefValue, "[]"); def != "" {
						values = strings.Split(def, ",")
					}
					require.NoError(t, slice.Replace(values))
				} else {
					require.NoError(t, f.Value.Set(f.DefValue))
				}
				f.Changed = false
			})
		}

		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		cfgFile = ""

		viper.Reset()
		require.NoError(t, bindRootFlags())
		require.NoError(t, bindGenerateFlags())
	})
}

func countInserts(lines []string, table string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "INSERT INTO "+table+" (") {
			n++
		}
	}
	return n
}

func TestConfigCommand(t *testing.T) {
	resetCommands(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config"})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "database: AeroDB")
	assert.Contains(t, out.String(), "crew_per_flight: 5")
}

func TestGenerateCommand(t *testing.T) {
	resetCommands(t)

	path := filepath.Join(t.TempDir(), "aerodb.sql")
	rootCmd.SetArgs([]string{
		"generate", "--quiet", "--out", path,
		"--airports", "A,B,C", "--routes", "6", "--aircraft", "2",
		"--passengers", "5", "--flights", "3", "--bookings", "10",
		"--crew", "6", "--baggage", "4",
	})

	require.NoError(t, Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Equal(t, "USE AeroDB;", lines[0])

	assert.Equal(t, 6, countInserts(lines, "Route"))
	assert.Equal(t, 3, countInserts(lines, "Flight"))
	assert.Equal(t, 15, countInserts(lines, "FlightCrewAssignment"))
	assert.Equal(t, 7, countInserts(lines, "BaggageFee"))
	assert.Equal(t, 4, countInserts(lines, "Baggage"))
}

func TestGenerateCommand_RejectsImpossibleRoutes(t *testing.T) {
	resetCommands(t)

	rootCmd.SetArgs([]string{
		"generate", "--quiet", "--out", filepath.Join(t.TempDir(), "x.sql"),
		"--airports", "A,B,C", "--routes", "7",
	})

	err := Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, seeder.ErrInvalidConfig), "unexpected error: %v", err)
	assert.Contains(t, err.Error(), "routes")
}

func TestGenerateCommand_RepeatedRunsDoNotAccumulateAirports(t *testing.T) {
	dir := t.TempDir()
	args := []string{
		"generate", "--quiet", "--airports", "A,B,C", "--routes", "6", "--aircraft", "1",
		"--passengers", "0", "--flights", "0", "--bookings", "0", "--crew", "0", "--baggage", "0",
	}

	for _, name := range []string{"first.sql", "second.sql"} {
		t.Run(name, func(t *testing.T) {
			resetCommands(t)

			path := filepath.Join(dir, name)
			rootCmd.SetArgs(append(append([]string{}, args...), "--out", path))
			require.NoError(t, Execute())

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
			assert.Equal(t, 6, countInserts(lines, "Route"))
		})
	}
}

func TestGenerateFlags_ShowDefaults(t *testing.T) {
	flags := generateCmd.Flags()

	assert.Equal(t, "aerodb_data.sql", flags.Lookup("out").DefValue)
	assert.Equal(t, "AeroDB", flags.Lookup("database").DefValue)
	assert.Equal(t, "3309", flags.Lookup("seed").DefValue)
	assert.Equal(t, "40", flags.Lookup("routes").DefValue)
	assert.Equal(t, "2500", flags.Lookup("passengers").DefValue)
	assert.Equal(t, "5", flags.Lookup("crew-per-flight").DefValue)
	assert.Contains(t, flags.Lookup("airports").DefValue, "YYZ")
}

func TestBindFlag_UnknownFlag(t *testing.T) {
	err := bindFlag("counts.routes", generateCmd.Flags(), "route")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"route"`)
}
