package stm32sim

import (
	"github.com/pkg/errors"

	"github.com/db47h/stm32sim/devtree"
	"github.com/db47h/stm32sim/memmap"
)

const pwrRegsSize = 0x400

// PWR is the power controller peripheral. Present on variants that declare
// it; note that a system reset does not touch it, its state is preserved
// across resets like the hardware's backup domain controls.
//
type PWR struct {
	node *devtree.Node
	caps *Capabilities
	regs *registers
}

func newPWR(node *devtree.Node, caps *Capabilities) *PWR {
	return &PWR{
		node: node,
		caps: caps,
		regs: newRegisters("pwr-regs", pwrRegsSize, nil),
	}
}

func (p *PWR) realize(mem *memmap.AddressSpace, base uint32) error {
	if err := mem.Map(base, p.regs.ram); err != nil {
		return errors.Wrap(err, p.Name())
	}
	p.node.SetValue(p)
	return nil
}

// Name returns the child name, "pwr".
func (p *PWR) Name() string { return p.node.Name() }

// Reset restores the register file to its reset state.
func (p *PWR) Reset() { p.regs.reset() }
