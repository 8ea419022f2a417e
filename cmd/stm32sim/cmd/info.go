package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	sim "github.com/db47h/stm32sim"
	"github.com/db47h/stm32sim/devtree"
)

var (
	hseFreqHz uint32
	lseFreqHz uint32
)

var infoCmd = &cobra.Command{
	Use:   "info <mcu>",
	Short: "Compose a chip variant and dump the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caps := sim.CapabilitiesFor(args[0])
		if caps == nil {
			return errors.Errorf("unknown MCU %q (try \"stm32sim list\")", args[0])
		}
		cfg := sim.DefaultConfig(caps)
		cfg.HSEFreqHz = hseFreqHz
		cfg.LSEFreqHz = lseFreqHz
		m, err := sim.Compose(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("%s: family %s, flash %d KB, sram %d KB\n",
			args[0], caps.Family.Label(), caps.FlashSizeKB, caps.SRAMSizeKB)
		rcc := m.RCC()
		fmt.Printf("clocks: hsi %d Hz, lsi %d Hz, hse %d Hz, lse %d Hz\n",
			rcc.HSIFreqHz(), rcc.LSIFreqHz(), rcc.HSEFreqHz(), rcc.LSEFreqHz())

		fmt.Println("\ndevice namespace:")
		m.Core().Root().Walk(func(n *devtree.Node) {
			depth := strings.Count(n.Path(), "/") - 1
			fmt.Printf("%s%s\n", strings.Repeat("  ", depth), n.Name())
		})

		fmt.Println("\nmemory map:")
		for _, mp := range m.Core().SystemMemory().Mappings() {
			ro := ""
			if r, ok := mp.Region.(interface{ Readonly() bool }); ok && r.Readonly() {
				ro = " (read-only)"
			}
			fmt.Printf("  %#010x - %#010x  %s%s\n",
				mp.Base, uint64(mp.Base)+uint64(mp.Region.Size()), mp.Region.Name(), ro)
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().Uint32Var(&hseFreqHz, "hse", 0, "HSE oscillator frequency in Hz")
	infoCmd.Flags().Uint32Var(&lseFreqHz, "lse", 0, "LSE oscillator frequency in Hz")
	rootCmd.AddCommand(infoCmd)
}
