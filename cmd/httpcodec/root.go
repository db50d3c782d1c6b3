package main

import (
	"github.com/spf13/cobra"

	"github.com/coreframe/httpcodec/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "httpcodec",
	Short: "Decode and encode HTTP/1.1 messages over a raw stream",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file path (optional)")
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
