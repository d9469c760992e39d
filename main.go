package main

import (
	"github.com/wsdltrim/wsdltrim/cmd"
	"github.com/wsdltrim/wsdltrim/internal/config"
)

func main() {
	config.LoadConfig()
	cmd.Execute()
}
