package stm32sim

import (
	"github.com/pkg/errors"

	"github.com/db47h/stm32sim/chardev"
	"github.com/db47h/stm32sim/cortexm"
	"github.com/db47h/stm32sim/devtree"
	"github.com/db47h/stm32sim/memmap"
)

// USART register offsets and bits.
const (
	usartSR = 0x00 // status; resets to TXE|TC
	usartDR = 0x04 // data

	usartSRRXNE = 1 << 5
)

const usartRegsSize = 0x400

// USART is one serial port. Ports are indexed from 0 (USART1); hardware
// numbering is 1-based and ports 4 and 5 are plain UARTs.
//
type USART struct {
	node    *devtree.Node
	index   int
	caps    *Capabilities
	clock   *RCC
	nvic    *cortexm.NVIC
	backend chardev.Backend
	irq     int
	regs    *registers
}

func newUSART(node *devtree.Node, index int, caps *Capabilities, clock *RCC,
	nvic *cortexm.NVIC, backend chardev.Backend, irq int) *USART {

	u := &USART{
		node:    node,
		index:   index,
		caps:    caps,
		clock:   clock,
		nvic:    nvic,
		backend: backend,
		irq:     irq,
		regs:    newRegisters(node.Name()+"-regs", usartRegsSize, map[uint32]uint32{usartSR: 0x000000c0}),
	}
	backend.SetReceiver(u.Receive)
	return u
}

func (p *USART) realize(mem *memmap.AddressSpace, base uint32) error {
	if err := mem.Map(base, p.regs.ram); err != nil {
		return errors.Wrap(err, p.Name())
	}
	p.node.SetValue(p)
	return nil
}

// Name returns the child name, e.g. "usart[1]" or "uart[4]".
func (p *USART) Name() string { return p.node.Name() }

// PortIndex returns the 0-based port index.
func (p *USART) PortIndex() int { return p.index }

// Backend returns the backing character stream.
func (p *USART) Backend() chardev.Backend { return p.backend }

// Receive accepts one byte of input from the backing stream: it lands in
// the data register, raises RXNE and pends the port's interrupt line.
//
func (p *USART) Receive(b byte) {
	p.regs.set32(usartDR, uint32(b))
	p.regs.set32(usartSR, p.regs.get32(usartSR)|usartSRRXNE)
	p.nvic.SetPending(p.irq)
}

// Transmit sends one byte of guest output to the backing stream.
//
func (p *USART) Transmit(b byte) error {
	_, err := p.backend.Write([]byte{b})
	return errors.Wrap(err, p.Name())
}

// Reset restores the register file to its reset state, dropping any
// pending received byte.
func (p *USART) Reset() { p.regs.reset() }
