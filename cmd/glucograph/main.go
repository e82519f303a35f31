package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"glucograph/defs"
	"glucograph/graph"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:          "glucograph <export.csv>",
	Short:        "Render a daily glucose pattern chart from a Dexcom CSV export",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()

		config := defs.DefaultConfig()
		if configFile != "" {
			file, err := os.ReadFile(configFile)
			if err != nil {
				return err
			}
			if err = yaml.Unmarshal(file, &config); err != nil {
				return err
			}
			logger.Debug("loaded config file", zap.String("file", configFile))
		}
		config.Logger = logger

		return graph.New(config).Run(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "f", "", "optional config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
