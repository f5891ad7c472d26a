// Command rvcodec is the Cobra-based multi-verb CLI for the codec,
// grounded in the pack's keurnel-assembler cmd/cli structure.
package main

import "github.com/lookbusy1344/arm-emulator/cmd/rvcodec/cmd"

func main() {
	cmd.Execute()
}
