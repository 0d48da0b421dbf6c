package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fieldkit/fieldkit/internal/config"
	"github.com/fieldkit/fieldkit/internal/logging"
	"github.com/fieldkit/fieldkit/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the composed text field in the terminal",
	Long: `Demo runs the full composition: the base renderer decorated with the
configured prefix/postfix, bound to the shared state container, with an
optional fetch-on-mount load from remote.url.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg.Logging.Dir, cfg.Logging.Level)
		if err != nil {
			return err
		}
		defer logger.Close()

		return tui.Run(cfg, logger)
	},
}

func init() {
	demoCmd.Flags().String("url", "", "remote endpoint for the initial value")
	_ = viper.BindPFlag("remote.url", demoCmd.Flags().Lookup("url"))

	demoCmd.Flags().String("label", "", "field label")
	_ = viper.BindPFlag("field.label", demoCmd.Flags().Lookup("label"))

	rootCmd.AddCommand(demoCmd)
}
