package cmd

import (
	"github.com/Lumos-Labs-HQ/aerogen/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.ConfigFileName,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return err
		}

		color.Green("✅ Created %s", config.ConfigFileName)
		color.Cyan("💡 Edit counts, seed or airports there, then run: aerogen generate")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
