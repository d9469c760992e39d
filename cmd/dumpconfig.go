package cmd

import (
	"github.com/rs/zerolog/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wsdltrim/wsdltrim/internal/config"
)

// dumpconfigCmd represents the dumpconfig command
var dumpconfigCmd = &cobra.Command{
	Use:   "dumpconfig",
	Short: "Dumps the effective configuration file",
	Long:  `Dumps the effective configuration file`,
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		err := viper.SafeWriteConfigAs("wsdltrim.yaml")
		if err != nil {
			log.Fatal().Err(err).Msg("Could not write config file")
		}
		log.Info().Msg("Config file written")
	},
}

func init() {
	rootCmd.AddCommand(dumpconfigCmd)
}
