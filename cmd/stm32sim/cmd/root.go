package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stm32sim",
	Short: "STM32 MCU composition inspector",
	Long: `Composes the peripheral set of an emulated STM32 chip variant and
lets you inspect the result: device namespace, memory map, clock tree
inputs.

Examples:
  stm32sim list                      # known chip variants
  stm32sim info STM32F407VG         # compose and dump one variant
  stm32sim info STM32F103RB --hse 8000000`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
