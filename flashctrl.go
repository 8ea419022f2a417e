package stm32sim

import (
	"github.com/pkg/errors"

	"github.com/db47h/stm32sim/devtree"
	"github.com/db47h/stm32sim/memmap"
)

// Flash interface register offsets.
const (
	flashACR = 0x00 // access control (latency, prefetch)
)

const flashRegsSize = 0x400

// FlashCtrl is the flash memory interface peripheral (the programming and
// wait-state registers, not the flash array itself).
//
type FlashCtrl struct {
	node *devtree.Node
	caps *Capabilities
	regs *registers
}

func newFlashCtrl(node *devtree.Node, caps *Capabilities) *FlashCtrl {
	var rv map[uint32]uint32
	if caps.Family == FamilyF1 {
		rv = map[uint32]uint32{flashACR: 0x00000030}
	}
	return &FlashCtrl{
		node: node,
		caps: caps,
		regs: newRegisters("flash-regs", flashRegsSize, rv),
	}
}

func (p *FlashCtrl) realize(mem *memmap.AddressSpace, base uint32) error {
	if err := mem.Map(base, p.regs.ram); err != nil {
		return errors.Wrap(err, p.Name())
	}
	p.node.SetValue(p)
	return nil
}

// Name returns the child name, "flash".
func (p *FlashCtrl) Name() string { return p.node.Name() }

// Reset restores the register file to its reset state.
func (p *FlashCtrl) Reset() { p.regs.reset() }
