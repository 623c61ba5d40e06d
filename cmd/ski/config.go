package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ski/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default ski configuration",
	Long: `Prints the built-in configuration as YAML.

Save it to ~/.ski/configs/ski.yaml or ./configs/ski.yaml and edit the
values you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
