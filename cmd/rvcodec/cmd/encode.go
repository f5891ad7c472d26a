package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/arm-emulator/encoder"
)

var encodeCmd = &cobra.Command{
	Use:     "encode <assembly...>",
	GroupID: "codec",
	Short:   "Encode an assembly line to a hex instruction word",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		res, err := encoder.Encode(strings.Join(args, " "), cfg)
		if err != nil {
			return err
		}
		cmd.Println(res.Hex)
		return nil
	},
}
