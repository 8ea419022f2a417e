package stm32sim

import (
	"encoding/binary"

	"github.com/db47h/stm32sim/memmap"
)

// registers is a peripheral's register file: a RAM-backed region holding
// word-sized registers, plus the non-zero reset values to restore on a
// reset event.
type registers struct {
	ram         *memmap.RAM
	resetValues map[uint32]uint32
}

func newRegisters(name string, size uint32, resetValues map[uint32]uint32) *registers {
	r := &registers{
		ram:         memmap.NewRAM(name, size),
		resetValues: resetValues,
	}
	r.reset()
	return r
}

func (r *registers) reset() {
	r.ram.Clear()
	for off, v := range r.resetValues {
		r.set32(off, v)
	}
}

func (r *registers) get32(off uint32) uint32 {
	return binary.LittleEndian.Uint32(r.ram.Bytes()[off:])
}

func (r *registers) set32(off, v uint32) {
	binary.LittleEndian.PutUint32(r.ram.Bytes()[off:], v)
}
