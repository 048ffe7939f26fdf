package main

import (
	"os"

	"receiptchain/cmd/gatewayctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
