package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vuuvv/vbits/core"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <transmission>",
	Short: "Decode a transmission and write it back in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}
		bits, err := core.ParseInput(args[0])
		if err != nil {
			return err
		}
		packet, err := core.NewDecoder(config.Decoder).Decode(bits)
		if err != nil {
			return err
		}
		encoded, err := core.Encode(packet)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), core.BitsToHex(encoded))
		return err
	},
}
