package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/arm-emulator/inspector"
	"github.com/lookbusy1344/arm-emulator/riscv"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect <word-or-assembly...>",
	GroupID: "codec",
	Short:   "Launch the terminal fragment viewer for one instruction",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		res, err := riscv.Instruction(strings.Join(args, " "), cfg)
		if err != nil {
			return err
		}
		return inspector.New(res).Run()
	},
}
