package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-life/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Prints the built-in default configuration as YAML. Save it to
~/.life/config.yaml or ./configs/life.yaml and edit to taste.

With --effective, prints the configuration after loading files instead.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagEffective {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	data, err := yaml.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
