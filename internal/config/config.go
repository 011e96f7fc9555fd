package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "aerogen.config.yaml"
	EnvPrefix      = "AEROGEN"
	DateLayout     = "2006-01-02"
)

type Config struct {
	Database      string   `json:"database" mapstructure:"database" yaml:"database" validate:"required"`
	OutputPath    string   `json:"output_path" mapstructure:"output_path" yaml:"output_path" validate:"required"`
	Seed          int64    `json:"seed" mapstructure:"seed" yaml:"seed"`
	Airports      []string `json:"airports" mapstructure:"airports" yaml:"airports" validate:"min=1,unique,dive,required"`
	CrewPerFlight int      `json:"crew_per_flight" mapstructure:"crew_per_flight" yaml:"crew_per_flight" validate:"min=1"`
	Counts        Counts   `json:"counts" mapstructure:"counts" yaml:"counts"`
	FlightWindow  Window   `json:"flight_window" mapstructure:"flight_window" yaml:"flight_window"`
	Quiet         bool     `json:"quiet" mapstructure:"quiet" yaml:"quiet"`
}

// Counts is the number of rows generated per table. Fee bands and seats are
// not listed: bands are a fixed table and seats follow aircraft capacity.
type Counts struct {
	Routes     int `json:"routes" mapstructure:"routes" yaml:"routes" validate:"min=0"`
	Aircraft   int `json:"aircraft" mapstructure:"aircraft" yaml:"aircraft" validate:"min=0"`
	Passengers int `json:"passengers" mapstructure:"passengers" yaml:"passengers" validate:"min=0"`
	Flights    int `json:"flights" mapstructure:"flights" yaml:"flights" validate:"min=0"`
	Bookings   int `json:"bookings" mapstructure:"bookings" yaml:"bookings" validate:"min=0"`
	Crew       int `json:"crew" mapstructure:"crew" yaml:"crew" validate:"min=0"`
	Baggage    int `json:"baggage" mapstructure:"baggage" yaml:"baggage" validate:"min=0"`
}

// Window bounds flight departures. Both ends are dates at midnight, inclusive.
type Window struct {
	Start string `json:"start" mapstructure:"start" yaml:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end" mapstructure:"end" yaml:"end" validate:"required,datetime=2006-01-02"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report config keys, not Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Default returns the canonical AeroDB generation settings.
func Default() *Config {
	return &Config{
		Database:      "AeroDB",
		OutputPath:    "aerodb_data.sql",
		Seed:          3309,
		Airports:      []string{"YYZ", "YVR", "YYC", "YUL", "YOW", "YHZ", "JFK", "LAX", "SFO", "ORD"},
		CrewPerFlight: 5,
		Counts: Counts{
			Routes:     40,
			Aircraft:   40,
			Passengers: 2500,
			Flights:    200,
			Bookings:   1000,
			Crew:       200,
			Baggage:    2500,
		},
		FlightWindow: Window{
			Start: "2024-01-01",
			End:   "2025-12-31",
		},
	}
}

// SetDefaults registers every key with viper so that environment variables
// and bound flags are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("database", d.Database)
	v.SetDefault("output_path", d.OutputPath)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("airports", d.Airports)
	v.SetDefault("crew_per_flight", d.CrewPerFlight)
	v.SetDefault("counts.routes", d.Counts.Routes)
	v.SetDefault("counts.aircraft", d.Counts.Aircraft)
	v.SetDefault("counts.passengers", d.Counts.Passengers)
	v.SetDefault("counts.flights", d.Counts.Flights)
	v.SetDefault("counts.bookings", d.Counts.Bookings)
	v.SetDefault("counts.crew", d.Counts.Crew)
	v.SetDefault("counts.baggage", d.Counts.Baggage)
	v.SetDefault("flight_window.start", d.FlightWindow.Start)
	v.SetDefault("flight_window.end", d.FlightWindow.End)
	v.SetDefault("quiet", d.Quiet)
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := Default()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("invalid config: %w", err)
		}
		var msgs []string
		for _, fe := range validationErrors {
			msgs = append(msgs, fieldErrorMessage(fe))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}

	start, end, err := c.FlightWindow.Bounds()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("invalid config: flight_window.end %s is before flight_window.start %s",
			c.FlightWindow.End, c.FlightWindow.Start)
	}

	return nil
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// Bounds parses the window into UTC midnights.
func (w Window) Bounds() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, w.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid flight_window.start %q: %w", w.Start, err)
	}
	end, err := time.Parse(DateLayout, w.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid flight_window.end %q: %w", w.End, err)
	}
	return start, end, nil
}

func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return out, nil
}

func IsInitialized() bool {
	_, err := os.Stat(ConfigFileName)
	return err == nil
}

// InitializeProject writes the default config file into the working directory.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("%s already exists", ConfigFileName)
	}

	out, err := Default().YAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(ConfigFileName, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFileName, err)
	}
	return nil
}
