package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	isaFlag string
	abiFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "rvcodec",
	Short: "RISC-V instruction codec",
	Long:  `rvcodec decodes RISC-V instruction words and encodes assembly lines.`,
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "codec",
		Title: "Codec",
	})

	rootCmd.PersistentFlags().StringVar(&isaFlag, "isa", "RV32I", "ISA profile: RV32I or RV64I")
	rootCmd.PersistentFlags().BoolVar(&abiFlag, "abi", false, "render registers using ABI names")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(inspectCmd)
}
