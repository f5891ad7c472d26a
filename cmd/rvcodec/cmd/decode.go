package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lookbusy1344/arm-emulator/decoder"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
)

var decodeCmd = &cobra.Command{
	Use:     "decode <word>",
	GroupID: "codec",
	Short:   "Decode a hex or binary instruction word to assembly",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		word, _, _, err := bits.ParseWord(args[0])
		if err != nil {
			return err
		}
		res, err := decoder.Decode(word, cfg)
		if err != nil {
			return err
		}
		cmd.Println(res.Asm)
		return nil
	},
}
