package main

import (
	"os"

	"github.com/aaustin-1965/app-ip-address/cmd/ipaddr/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
