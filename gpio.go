package stm32sim

import (
	"github.com/pkg/errors"

	"github.com/db47h/stm32sim/devtree"
	"github.com/db47h/stm32sim/memmap"
)

const gpioRegsSize = 0x400

// GPIO is one general purpose I/O port. Ports are indexed by letter,
// port A being index 0.
//
type GPIO struct {
	node  *devtree.Node
	index int
	caps  *Capabilities
	clock *RCC
	regs  *registers
}

func newGPIO(node *devtree.Node, index int, caps *Capabilities, clock *RCC) *GPIO {
	return &GPIO{
		node:  node,
		index: index,
		caps:  caps,
		clock: clock,
		regs:  newRegisters(node.Name()+"-regs", gpioRegsSize, gpioResetValues(caps.Family, index)),
	}
}

// gpioResetValues returns the non-zero register reset values for one port.
// On F1 the configuration registers reset to floating inputs; on the other
// families ports A and B reset with their debug pins mapped.
func gpioResetValues(f Family, index int) map[uint32]uint32 {
	if f == FamilyF1 {
		// CRL, CRH
		return map[uint32]uint32{0x00: 0x44444444, 0x04: 0x44444444}
	}
	switch index {
	case 0:
		// MODER, PUPDR
		return map[uint32]uint32{0x00: 0xa8000000, 0x0c: 0x64000000}
	case 1:
		return map[uint32]uint32{0x00: 0x00000280, 0x0c: 0x00000100}
	}
	return nil
}

func (p *GPIO) realize(mem *memmap.AddressSpace, base uint32) error {
	if err := mem.Map(base, p.regs.ram); err != nil {
		return errors.Wrap(err, p.Name())
	}
	p.node.SetValue(p)
	return nil
}

// Name returns the child name, e.g. "gpio[a]".
func (p *GPIO) Name() string { return p.node.Name() }

// PortIndex returns the port index (A=0).
func (p *GPIO) PortIndex() int { return p.index }

// Clock returns the clock controller reference injected at construction.
// The port does not own it.
func (p *GPIO) Clock() *RCC { return p.clock }

// Reset restores the register file to its reset state.
func (p *GPIO) Reset() { p.regs.reset() }
