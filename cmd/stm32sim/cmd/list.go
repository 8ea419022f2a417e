package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	sim "github.com/db47h/stm32sim"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known chip variants",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range sim.MCUNames() {
			caps := sim.CapabilitiesFor(name)
			fmt.Printf("%-12s family %-8s flash %4d KB, sram %3d KB\n",
				name, caps.Family.Label(), caps.FlashSizeKB, caps.SRAMSizeKB)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
