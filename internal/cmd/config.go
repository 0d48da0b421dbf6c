package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fieldkit/fieldkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate before printing so mistakes are reported, not echoed.
		if _, err := config.Load(); err != nil {
			return err
		}

		keys := viper.AllKeys()
		sort.Strings(keys)
		for _, key := range keys {
			if key == "config" {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, viper.Get(key))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
