package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vuuvv/vbits/core"
	"github.com/vuuvv/vbits/framing"
	"github.com/vuuvv/vbits/log"
)

var (
	// verbose switches the logger to debug level
	verbose bool
	// cfgFile is an optional YAML config
	cfgFile string
	// strict rejects trailing bits that are not padding
	strict bool

	rootCmd = &cobra.Command{
		Use:   "vbits",
		Short: "Decode and evaluate packet transmissions",
		Long: `vbits decodes hex encoded packet transmissions into packet trees,
evaluates them and reports the version sum of every tree.

Examples:
  vbits decode --hex 9C0141080250320F1802104A08
  vbits decode input.txt --tree
  vbits encode 8A004A801A8002F478`,
		SilenceUsage: true,
	}
)

func init() {
	cobra.OnInitialize(initRuntime)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject trailing bits that are not zero padding")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
}

func initRuntime() {
	logger, err := log.NewLogger(verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	log.SetDefaultLogger(logger)
	framing.Register()
}

func loadConfig() (*core.Config, error) {
	config := core.DefaultConfig()
	if cfgFile != "" {
		var err error
		config, err = core.NewConfigFromFile(cfgFile)
		if err != nil {
			return nil, err
		}
	}
	if strict {
		config.Decoder.StrictPadding = true
	}
	if err := config.Setup(); err != nil {
		return nil, err
	}
	return config, nil
}
