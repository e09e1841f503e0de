package main

import (
	"github.com/spf13/cobra"

	"weather-dashboard/config"
)

// RootCommand creates the CLI with its sub-commands.
func RootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "weather-dashboard",
		Short:         "Weather dashboard backed by a weather data service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "path to the yaml config file")

	rootCmd.AddCommand(
		serveCommand(&configPath),
		searchCommand(&configPath),
	)

	return rootCmd
}
