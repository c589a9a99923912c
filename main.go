package main

import (
	"os"

	"github.com/evnav/chargescout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
