// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package stm32sim

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"github.com/db47h/stm32sim/chardev"
	"github.com/db47h/stm32sim/cortexm"
	"github.com/db47h/stm32sim/devtree"
	"github.com/db47h/stm32sim/memmap"
)

// A Peripheral is a child device composed into an MCU. The MCU owns its
// peripherals: they are created during composition, reset any number of
// times afterwards, and never replaced.
//
type Peripheral interface {
	Name() string
	Reset()
}

type resetter interface {
	Reset()
}

// Config is the machine-side configuration of one MCU instance.
//
type Config struct {
	// Capabilities describes the chip variant. Required.
	Capabilities *Capabilities

	// Core configures the base core substrate. Its flash size must match
	// the descriptor's.
	Core cortexm.Config

	// Externally supplied oscillator frequencies, forwarded to the clock
	// controller. Zero means not fitted.
	HSEFreqHz uint32
	LSEFreqHz uint32

	// Serial holds the host-supplied serial back-ends, indexed by port.
	// Ports with a nil (or missing) entry get a discard back-end.
	Serial []chardev.Backend

	// MaxSerial is the number of serial ports the host environment can
	// back. Composing a serial port at an index at or past this limit is a
	// configuration error.
	MaxSerial int
}

// DefaultConfig returns a Config for caps with the core sized from the
// descriptor and the serial limit at its maximum.
//
func DefaultConfig(caps *Capabilities) Config {
	cfg := Config{Capabilities: caps, MaxSerial: MaxUSART}
	if caps != nil {
		cfg.Core = cortexm.Config{FlashSizeKB: caps.FlashSizeKB, SRAMSizeKB: caps.SRAMSizeKB}
	}
	return cfg
}

// MCU is one composed chip instance: the base core substrate plus the
// peripheral set selected by its capability descriptor.
//
type MCU struct {
	core *cortexm.Core
	caps *Capabilities

	hseFreqHz uint32
	lseFreqHz uint32

	container  *devtree.Node
	flashAlias *memmap.Alias
	bitband    *cortexm.BitBand

	// base reset entry point; always the core, held as an interface so the
	// reset walk is uniform with the children below
	parent resetter

	clock     Peripheral
	flashCtrl Peripheral
	pwr       Peripheral
	gpio      [MaxGPIO]Peripheral
	usart     [MaxUSART]Peripheral
}

// Compose builds an MCU from cfg. The steps run in a fixed order: base
// core realize, descriptor validation, flash alias, optional peripheral
// bit-band, clock controller, flash controller, optional power controller,
// GPIO ports A to G, then serial ports 1 to 6. The first failure aborts the
// whole composition; a partially composed MCU is never returned.
//
func Compose(cfg Config) (*MCU, error) {
	core := cortexm.New(cfg.Core)
	if err := core.Realize(); err != nil {
		return nil, err
	}

	caps := cfg.Capabilities
	if caps == nil {
		return nil, errors.New("stm32: missing capability descriptor")
	}
	if cfg.Core.FlashSizeKB != caps.FlashSizeKB {
		return nil, errors.Errorf("stm32: core flash size %dKB does not match descriptor %dKB",
			cfg.Core.FlashSizeKB, caps.FlashSizeKB)
	}

	log.Printf("stm32: family %s", caps.Family.Label())

	m := &MCU{
		core:      core,
		caps:      caps,
		hseFreqHz: cfg.HSEFreqHz,
		lseFreqHz: cfg.LSEFreqHz,
		parent:    core,
		container: core.Node().Container("stm32"),
	}
	mem := core.SystemMemory()
	bases := basesFor(caps.Family)

	// The chip addresses its flash at flashAliasBase but boots and runs it
	// from address 0. The canonical store lives at 0 (the core put it
	// there) and a read-only alias covers the nominal address; that is the
	// inverse of the hardware's boot remap and equivalent for all
	// read-only access. Aliasing System Memory to 0 is not modelled.
	if err := m.createFlashAlias(); err != nil {
		return nil, err
	}

	if caps.HasPeriphBitband {
		bb := cortexm.NewBitBand("periph-bitband", mem, periphBase)
		if err := mem.Map(periphBase+cortexm.BitbandAliasOffset, bb); err != nil {
			return nil, errors.Wrap(err, "stm32: periph-bitband")
		}
		m.bitband = bb
	}

	node, err := m.container.New("rcc")
	if err != nil {
		return nil, errors.Wrap(err, "stm32")
	}
	rcc := newRCC(node, caps, cfg.HSEFreqHz, cfg.LSEFreqHz)
	if err := rcc.realize(mem, bases.rcc); err != nil {
		return nil, errors.Wrap(err, "stm32")
	}
	m.clock = rcc

	node, err = m.container.New("flash")
	if err != nil {
		return nil, errors.Wrap(err, "stm32")
	}
	fc := newFlashCtrl(node, caps)
	if err := fc.realize(mem, bases.flash); err != nil {
		return nil, errors.Wrap(err, "stm32")
	}
	m.flashCtrl = fc

	if caps.HasPWR {
		node, err = m.container.New("pwr")
		if err != nil {
			return nil, errors.Wrap(err, "stm32")
		}
		pwr := newPWR(node, caps)
		if err := pwr.realize(mem, bases.pwr); err != nil {
			return nil, errors.Wrap(err, "stm32")
		}
		m.pwr = pwr
	}

	for i, present := range caps.gpioFlags() {
		if !present {
			continue
		}
		g, err := m.createGPIO(i, rcc, bases)
		if err != nil {
			return nil, err
		}
		m.gpio[i] = g
	}

	for i, present := range caps.serialFlags() {
		if !present {
			continue
		}
		u, err := m.createUSART(i, rcc, bases, &cfg)
		if err != nil {
			return nil, err
		}
		m.usart[i] = u
	}

	return m, nil
}

// createFlashAlias installs the read-only flash alias at the nominal load
// address, sized exactly to the descriptor's flash size.
func (m *MCU) createFlashAlias() error {
	al, err := memmap.NewAlias("mem-flash-alias", m.core.FlashMemory(), 0, m.core.FlashSize())
	if err != nil {
		return errors.Wrap(err, "stm32")
	}
	al.SetReadonly(true)
	if err := m.core.SystemMemory().Map(flashAliasBase, al); err != nil {
		return errors.Wrap(err, "stm32: flash alias")
	}
	node, err := m.core.Node().Container("memory").New(al.Name())
	if err != nil {
		return errors.Wrap(err, "stm32")
	}
	node.SetValue(al)
	m.flashAlias = al
	return nil
}

// createGPIO builds one GPIO port child: node named from the port letter,
// descriptor and clock controller injected, register window mapped.
func (m *MCU) createGPIO(index int, clock *RCC, bases periphBases) (*GPIO, error) {
	name := fmt.Sprintf("gpio[%c]", 'a'+index)
	node, err := m.container.New(name)
	if err != nil {
		return nil, errors.Wrap(err, "stm32")
	}
	g := newGPIO(node, index, m.caps, clock)
	if err := g.realize(m.core.SystemMemory(), bases.gpio+uint32(index)*bases.gpioStride); err != nil {
		return nil, errors.Wrap(err, "stm32")
	}
	return g, nil
}

// serialName returns the child name for a 0-based serial port index; ports
// 4 and 5 are plain UARTs on this series.
func serialName(index int) string {
	if n := index + 1; n == 4 || n == 5 {
		return fmt.Sprintf("uart[%d]", n)
	}
	return fmt.Sprintf("usart[%d]", index+1)
}

// createUSART builds one serial port child. The host backing limit is
// checked before anything is allocated: a descriptor claiming more serial
// ports than the host can back is a broken configuration, not a condition
// to degrade around.
func (m *MCU) createUSART(index int, clock *RCC, bases periphBases, cfg *Config) (*USART, error) {
	if index >= cfg.MaxSerial {
		return nil, errors.Errorf("stm32: cannot assign %s: host supports only %d serial ports",
			serialName(index), cfg.MaxSerial)
	}
	if bases.usart[index] == 0 {
		return nil, errors.Errorf("stm32: %s: no register window for family %s",
			serialName(index), m.caps.Family.Label())
	}
	node, err := m.container.New(serialName(index))
	if err != nil {
		return nil, errors.Wrap(err, "stm32")
	}
	var backend chardev.Backend
	if index < len(cfg.Serial) && cfg.Serial[index] != nil {
		backend = cfg.Serial[index]
	} else {
		backend = chardev.NewNull(fmt.Sprintf("serial%d", index))
	}
	u := newUSART(node, index, m.caps, clock, m.core.NVIC(), backend, bases.usartIRQ[index])
	if err := u.realize(m.core.SystemMemory(), bases.usart[index]); err != nil {
		return nil, errors.Wrap(err, "stm32")
	}
	return u, nil
}

// Reset propagates a system reset to the composed peripheral set: base
// core first, then the clock controller, the flash controller, every
// populated GPIO port in letter order and every populated serial port in
// numeric order. It is idempotent and may run any number of times; it
// never reconstructs or reassigns a child.
//
func (m *MCU) Reset() {
	m.parent.Reset()
	if m.clock != nil {
		m.clock.Reset()
	}
	if m.flashCtrl != nil {
		m.flashCtrl.Reset()
	}
	for _, g := range m.gpio {
		if g != nil {
			g.Reset()
		}
	}
	for _, u := range m.usart {
		if u != nil {
			u.Reset()
		}
	}
}

// Core returns the base core substrate.
func (m *MCU) Core() *cortexm.Core { return m.core }

// Capabilities returns the bound capability descriptor.
func (m *MCU) Capabilities() *Capabilities { return m.caps }

// Container returns the MCU's device namespace container
// ("/machine/mcu/stm32").
func (m *MCU) Container() *devtree.Node { return m.container }

// FlashAlias returns the read-only flash alias region.
func (m *MCU) FlashAlias() *memmap.Alias { return m.flashAlias }

// BitBand returns the peripheral bit-band region, or nil if the descriptor
// does not declare one.
func (m *MCU) BitBand() *cortexm.BitBand { return m.bitband }

// RCC returns the clock controller.
func (m *MCU) RCC() *RCC {
	p, _ := m.clock.(*RCC)
	return p
}

// FlashCtrl returns the flash controller.
func (m *MCU) FlashCtrl() *FlashCtrl {
	p, _ := m.flashCtrl.(*FlashCtrl)
	return p
}

// PWR returns the power controller, or nil.
func (m *MCU) PWR() *PWR {
	p, _ := m.pwr.(*PWR)
	return p
}

// GPIO returns the port at index (A=0), or nil if not populated.
func (m *MCU) GPIO(index int) *GPIO {
	if index < 0 || index >= MaxGPIO {
		return nil
	}
	p, _ := m.gpio[index].(*GPIO)
	return p
}

// USART returns the serial port at the 0-based index, or nil if not
// populated.
func (m *MCU) USART(index int) *USART {
	if index < 0 || index >= MaxUSART {
		return nil
	}
	p, _ := m.usart[index].(*USART)
	return p
}
