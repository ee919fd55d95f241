package main

import (
	"os"

	"github.com/pearl24680/NUVORA-RESUME-SCANNER/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
