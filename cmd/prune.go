package cmd

import (
	"os"

	"aqwari.net/xml/xmltree"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wsdltrim/wsdltrim/internal/config"
	"github.com/wsdltrim/wsdltrim/pkg/reduce"
	"github.com/wsdltrim/wsdltrim/pkg/wsdl"
)

var (
	pruneWSDLPath string
	pruneService  string
	pruneOutput   string
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Prune a WSDL to the operations configured for a service",
	Long: `Prune a WSDL document to the minimal subset required by the
operations configured for the named service.

The service's first port decides the target binding; services exposing
several ports with different bindings are unsupported, and their remaining
ports are removed. When the configuration names a policy file and the target
binding is SOAP 1.2, the binding's policy attachment is replaced with the
file's wsp:UsingPolicy/wsp:Policy pair.

Examples:
  # Prune using the reduction configured for Human_Resources
  wsdltrim prune --wsdl hr.wsdl --service Human_Resources --output hr-min.wsdl`,
	Run: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
	pruneCmd.Flags().StringVarP(&pruneWSDLPath, "wsdl", "w", "", "Path to the input WSDL file")
	pruneCmd.Flags().StringVarP(&pruneService, "service", "s", "", "Name of the wsdl:service to reduce")
	pruneCmd.Flags().StringVarP(&pruneOutput, "output", "o", "", "Path to the pruned output WSDL file")
	pruneCmd.MarkFlagRequired("wsdl")
	pruneCmd.MarkFlagRequired("service")
	pruneCmd.MarkFlagRequired("output")
}

func runPrune(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	svc, err := cfg.ServiceByName(pruneService)
	if err != nil {
		log.Fatal().Err(err).Str("service", pruneService).Msg("Service not configured")
	}

	opts := reduce.Options{KeepOperations: svc.KeepOperations}
	if svc.PolicyFile != "" {
		data, err := os.ReadFile(svc.PolicyFile)
		if err != nil {
			log.Fatal().Err(err).Str("policy_file", svc.PolicyFile).Msg("Could not read policy file")
		}
		opts.Policy, err = reduce.ParsePolicyFragment(data)
		if err != nil {
			log.Fatal().Err(err).Str("policy_file", svc.PolicyFile).Msg("Invalid policy fragment")
		}
	}

	data, err := os.ReadFile(pruneWSDLPath)
	if err != nil {
		log.Fatal().Err(err).Str("wsdl", pruneWSDLPath).Msg("Could not read WSDL file")
	}
	doc, err := wsdl.Parse(data)
	if err != nil {
		log.Fatal().Err(err).Str("wsdl", pruneWSDLPath).Msg("Could not parse WSDL file")
	}

	if err := reduce.Reduce(doc, pruneService, opts); err != nil {
		log.Fatal().Err(err).Str("service", pruneService).Msg("Reduction failed")
	}

	out := xmltree.MarshalIndent(doc.Root, "", viper.GetString("output.indent"))
	if err := os.WriteFile(pruneOutput, out, 0644); err != nil {
		log.Fatal().Err(err).Str("output", pruneOutput).Msg("Could not write output file")
	}
	log.Info().
		Str("service", pruneService).
		Int("operations", len(svc.KeepOperations)).
		Str("output", pruneOutput).
		Msg("WSDL pruned")
}
