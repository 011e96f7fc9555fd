package cmd

import (
	"fmt"
	"sort"

	"github.com/Lumos-Labs-HQ/aerogen/internal/config"
	"github.com/Lumos-Labs-HQ/aerogen/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "seed"},
	Short:   "Generate the AeroDB dataset as SQL",
	Long: `Generate routes, aircraft, passengers, baggage fees, flights, seats,
crew, bookings, crew assignments and baggage in dependency order and write
them as INSERT statements. Use --out - to print to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		s, err := seeder.NewSeeder(cfg)
		if err != nil {
			return err
		}

		result, err := s.Seed()
		if err != nil {
			return err
		}

		if !cfg.Quiet {
			printSummary(result)
		}
		return nil
	},
}

func printSummary(result *seeder.Result) {
	fmt.Fprintln(color.Error)
	color.New(color.FgCyan, color.Bold).Fprintln(color.Error, "📊 Rows per table")

	tables := make([]string, 0, len(result.Counts))
	for table := range result.Counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		fmt.Fprintf(color.Error, "   %-22s %d\n", table, result.Counts[table])
	}

	fmt.Fprintln(color.Error)
	color.New(color.FgGreen).Fprintf(color.Error, "✅ Generated %s with %d INSERT statements.\n", result.Path, len(result.Statements)-1)
}

// generateBindings maps generate flags to config keys. Unset flags fall
// through to config file, env and defaults.
var generateBindings = map[string]string{
	"out":             "output_path",
	"database":        "database",
	"seed":            "seed",
	"airports":        "airports",
	"routes":          "counts.routes",
	"aircraft":        "counts.aircraft",
	"passengers":      "counts.passengers",
	"flights":         "counts.flights",
	"bookings":        "counts.bookings",
	"crew":            "counts.crew",
	"baggage":         "counts.baggage",
	"crew-per-flight": "crew_per_flight",
}

func bindGenerateFlags() error {
	for flag, key := range generateBindings {
		if err := bindFlag(key, generateCmd.Flags(), flag); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	def := config.Default()
	flags := generateCmd.Flags()
	flags.StringP("out", "o", def.OutputPath, "Output file (- for stdout)")
	flags.String("database", def.Database, "Database selected by the leading USE statement")
	flags.Int64("seed", def.Seed, "Random seed")
	flags.StringSlice("airports", def.Airports, "Airport codes routes are drawn from")
	flags.Int("routes", def.Counts.Routes, "Number of routes")
	flags.Int("aircraft", def.Counts.Aircraft, "Number of aircraft")
	flags.Int("passengers", def.Counts.Passengers, "Number of passengers")
	flags.Int("flights", def.Counts.Flights, "Number of flights")
	flags.Int("bookings", def.Counts.Bookings, "Number of bookings")
	flags.Int("crew", def.Counts.Crew, "Number of crew members")
	flags.Int("baggage", def.Counts.Baggage, "Number of baggage items")
	flags.Int("crew-per-flight", def.CrewPerFlight, "Crew members assigned to each flight")

	if err := bindGenerateFlags(); err != nil {
		panic(err)
	}
}
