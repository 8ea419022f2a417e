package stm32sim

import (
	"github.com/pkg/errors"

	"github.com/db47h/stm32sim/devtree"
	"github.com/db47h/stm32sim/memmap"
)

// RCC register offsets.
const (
	rccCR = 0x00 // clock control; resets to HSI on and ready, default trim
)

const rccRegsSize = 0x400

// RCC is the reset and clock control peripheral. It holds the four clock
// input frequencies every other peripheral derives its timing from: the
// internal oscillators come from the capability descriptor, the external
// ones from the enclosing machine configuration.
//
type RCC struct {
	node *devtree.Node
	caps *Capabilities
	regs *registers

	hsiFreqHz uint32
	lsiFreqHz uint32
	hseFreqHz uint32
	lseFreqHz uint32
}

func newRCC(node *devtree.Node, caps *Capabilities, hseFreqHz, lseFreqHz uint32) *RCC {
	return &RCC{
		node:      node,
		caps:      caps,
		regs:      newRegisters("rcc-regs", rccRegsSize, map[uint32]uint32{rccCR: 0x00000083}),
		hsiFreqHz: caps.HSIFreqHz,
		lsiFreqHz: caps.LSIFreqHz,
		hseFreqHz: hseFreqHz,
		lseFreqHz: lseFreqHz,
	}
}

func (p *RCC) realize(mem *memmap.AddressSpace, base uint32) error {
	if err := mem.Map(base, p.regs.ram); err != nil {
		return errors.Wrap(err, p.Name())
	}
	p.node.SetValue(p)
	return nil
}

// Name returns the child name, "rcc".
func (p *RCC) Name() string { return p.node.Name() }

// Reset restores the register file to its reset state.
func (p *RCC) Reset() { p.regs.reset() }

// HSIFreqHz returns the internal high-speed oscillator frequency.
func (p *RCC) HSIFreqHz() uint32 { return p.hsiFreqHz }

// LSIFreqHz returns the internal low-speed oscillator frequency.
func (p *RCC) LSIFreqHz() uint32 { return p.lsiFreqHz }

// HSEFreqHz returns the external high-speed oscillator frequency.
func (p *RCC) HSEFreqHz() uint32 { return p.hseFreqHz }

// LSEFreqHz returns the external low-speed oscillator frequency.
func (p *RCC) LSEFreqHz() uint32 { return p.lseFreqHz }
