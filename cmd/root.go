package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/aerogen/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║     ✈  AEROGEN  ✈                            ║",
		"║     AeroDB sample dataset generator          ║",
		"╚══════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("        ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "aerogen",
	Short: "Generate referentially valid sample data for the AeroDB schema",
	Long: `
aerogen synthesizes a self-consistent airline-operations dataset (routes,
aircraft, seats, passengers, flights, bookings, crew assignments, baggage
and baggage fees) and writes it as MySQL INSERT statements.

Output is deterministic: the same seed and counts always produce the
same file, byte for byte.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("aerogen version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	if err := bindRootFlags(); err != nil {
		panic(err)
	}
}

func bindRootFlags() error {
	return bindFlag("quiet", rootCmd.PersistentFlags(), "quiet")
}

// bindFlag ties a config key to a named flag, failing on unknown flag names.
func bindFlag(key string, flags *pflag.FlagSet, name string) error {
	flag := flags.Lookup(name)
	if flag == nil {
		return fmt.Errorf("cannot bind %s: no flag named %q", key, name)
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("cannot bind %s to --%s: %w", key, name, err)
	}
	return nil
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(strings.TrimSuffix(config.ConfigFileName, ".yaml"))
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			color.Yellow("⚠️  Could not read config file: %v", err)
		}
	}
}
