// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cortexm implements the generic Cortex-M core substrate that
// vendor-specific MCUs extend: the canonical flash store mapped at address
// 0, the SRAM block, the interrupt controller reference and the base
// realize/reset lifecycle. Vendor packages compose a Core, realize it
// first, then install their own regions and children on top of it.
//
package cortexm

import (
	"github.com/pkg/errors"

	"github.com/db47h/stm32sim/devtree"
	"github.com/db47h/stm32sim/memmap"
)

// Fixed Cortex-M memory map addresses.
const (
	SRAMBase   = 0x20000000 // SRAM region
	PeriphBase = 0x40000000 // peripheral region

	// BitbandAliasOffset is the distance from a bit-banded window to its
	// bit-band alias region (0x40000000 -> 0x42000000).
	BitbandAliasOffset = 0x02000000
)

// Config holds the core parameters set by the enclosing machine.
//
type Config struct {
	FlashSizeKB int
	SRAMSizeKB  int
}

// Core is the base core-processor substrate of one emulated MCU.
//
type Core struct {
	cfg  Config
	root *devtree.Node // machine root
	node *devtree.Node // this MCU's device node
	mem  *memmap.AddressSpace
	nvic *NVIC

	flash *memmap.RAM
	sram  *memmap.RAM

	realized bool
}

// New returns an unrealized core. The machine namespace root and the system
// address space are created here so that children built before Realize can
// already reference them; nothing is mapped until Realize runs.
//
func New(cfg Config) *Core {
	root := devtree.NewRoot("machine")
	return &Core{
		cfg:  cfg,
		root: root,
		node: root.Container("mcu"),
		mem:  memmap.New("system-memory"),
		nvic: NewNVIC(),
	}
}

// Realize performs the base construction step: it validates the
// configuration and creates the core memory regions. It runs once; an MCU
// that failed to realize must be discarded.
//
func (c *Core) Realize() error {
	if c.realized {
		return errors.New("cortexm: already realized")
	}
	if c.cfg.FlashSizeKB <= 0 {
		return errors.New("cortexm: flash size not configured")
	}
	if c.cfg.SRAMSizeKB <= 0 {
		return errors.New("cortexm: sram size not configured")
	}
	if err := c.CreateMemoryRegions(); err != nil {
		return err
	}
	c.realized = true
	return nil
}

// CreateMemoryRegions maps the canonical flash store at address 0 and the
// SRAM block at SRAMBase. Extending MCUs call their own region setup after
// this one returns; the split keeps the extension explicit instead of
// hiding it behind a virtual hook.
//
func (c *Core) CreateMemoryRegions() error {
	c.flash = memmap.NewRAM("mem-flash", uint32(c.cfg.FlashSizeKB)*1024)
	if err := c.mem.Map(0, c.flash); err != nil {
		return errors.Wrap(err, "cortexm: flash")
	}
	c.sram = memmap.NewRAM("mem-sram", uint32(c.cfg.SRAMSizeKB)*1024)
	if err := c.mem.Map(SRAMBase, c.sram); err != nil {
		return errors.Wrap(err, "cortexm: sram")
	}
	return nil
}

// Reset performs the base reset step: SRAM and the interrupt controller are
// cleared, flash contents survive.
//
func (c *Core) Reset() {
	if c.sram != nil {
		c.sram.Clear()
	}
	c.nvic.Reset()
}

// Root returns the machine namespace root.
func (c *Core) Root() *devtree.Node { return c.root }

// Node returns this MCU's device node ("/machine/mcu").
func (c *Core) Node() *devtree.Node { return c.node }

// SystemMemory returns the system address space.
func (c *Core) SystemMemory() *memmap.AddressSpace { return c.mem }

// FlashMemory returns the canonical flash store mapped at address 0, or nil
// before Realize.
func (c *Core) FlashMemory() *memmap.RAM { return c.flash }

// SRAM returns the SRAM region, or nil before Realize.
func (c *Core) SRAM() *memmap.RAM { return c.sram }

// FlashSize returns the configured flash size in bytes.
func (c *Core) FlashSize() uint32 { return uint32(c.cfg.FlashSizeKB) * 1024 }

// NVIC returns the interrupt controller.
func (c *Core) NVIC() *NVIC { return c.nvic }
