package main

import (
	"os"

	"github.com/vuuvv/vbits/log"
)

func main() {
	err := rootCmd.Execute()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
