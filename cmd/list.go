package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wsdltrim/wsdltrim/pkg/wsdl"
)

var (
	listWSDLPath   string
	listOperations bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the services, ports and operations of a WSDL",
	Long: `List every service, port and binding declared by a WSDL document,
with the SOAP version and operation count of each port's binding.

Useful for deciding a keep_operations set before configuring a prune.

Examples:
  # Summarize a WSDL
  wsdltrim list --wsdl hr.wsdl

  # Include one row per operation
  wsdltrim list --wsdl hr.wsdl --operations`,
	Run: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listWSDLPath, "wsdl", "w", "", "Path to the WSDL file")
	listCmd.Flags().BoolVar(&listOperations, "operations", false, "Add one row per operation")
	listCmd.MarkFlagRequired("wsdl")
}

func runList(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(listWSDLPath)
	if err != nil {
		log.Fatal().Err(err).Str("wsdl", listWSDLPath).Msg("Could not read WSDL file")
	}
	doc, err := wsdl.Parse(data)
	if err != nil {
		log.Fatal().Err(err).Str("wsdl", listWSDLPath).Msg("Could not parse WSDL file")
	}

	table := tablewriter.NewWriter(os.Stdout)
	if listOperations {
		table.SetHeader([]string{"Service", "Port", "SOAP", "Operation"})
	} else {
		table.SetHeader([]string{"Service", "Port", "Binding", "SOAP", "Operations"})
	}
	table.SetBorder(true)

	for _, svc := range doc.Services() {
		svcName := svc.Attr("", "name")
		for _, port := range wsdl.ChildElements(svc, wsdl.NamespaceWSDL, "port") {
			portName := port.Attr("", "name")
			binding := doc.BindingForPort(port)
			if binding == nil {
				log.Warn().Str("service", svcName).Str("port", portName).Msg("Port references an unknown binding")
				continue
			}
			soap := wsdl.SOAPVersion(binding)
			var ops []string
			if pt := doc.PortTypeForBinding(binding); pt != nil {
				for _, op := range wsdl.ChildElements(pt, wsdl.NamespaceWSDL, "operation") {
					ops = append(ops, op.Attr("", "name"))
				}
			}
			if listOperations {
				for _, op := range ops {
					table.Append([]string{svcName, portName, soap, op})
				}
			} else {
				table.Append([]string{svcName, portName, binding.Attr("", "name"), soap, strconv.Itoa(len(ops))})
			}
		}
	}
	table.Render()
	fmt.Println()
}
