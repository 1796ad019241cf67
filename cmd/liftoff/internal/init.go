package internal

import (
	"fmt"
	"os"

	"github.com/goplus/liftoff/internal/config"
	"github.com/spf13/cobra"
)

var initConfig string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration",
	Long:  `Init creates a liftoff.yaml file with default project answers.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := writeDefaultConfig(initConfig); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", initConfig)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initConfig, "config", "c", config.DefaultFile, "Configuration file to create")
	rootCmd.AddCommand(initCmd)
}

func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	data, err := config.Default().Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
