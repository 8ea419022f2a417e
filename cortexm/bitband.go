package cortexm

import (
	"github.com/db47h/stm32sim/memmap"
)

// BitbandWindowSize is the size of a bit-banded window. Each byte of the
// window expands to 32 bytes of alias space (one word per bit), so the
// alias region covers 32 times as much.
const BitbandWindowSize = 0x00100000

// BitBand is the bit-band alias region over a 1 MiB window: the aligned
// word at offset (byte*32 + bit*4) reads as bit `bit` of the window byte
// `byte`, and writing a word sets or clears that single bit. Accesses go
// through the system address space, so the window may span any number of
// underlying regions.
//
type BitBand struct {
	name string
	mem  *memmap.AddressSpace
	base uint32 // start of the bit-banded window
}

// NewBitBand returns a bit-band region over the window starting at base.
// Map it at base+BitbandAliasOffset.
//
func NewBitBand(name string, mem *memmap.AddressSpace, base uint32) *BitBand {
	return &BitBand{name: name, mem: mem, base: base}
}

// Name returns the region name.
func (b *BitBand) Name() string { return b.name }

// Size returns the alias region size (32 x the window size).
func (b *BitBand) Size() uint32 { return BitbandWindowSize * 32 }

// Base returns the start of the bit-banded window.
func (b *BitBand) Base() uint32 { return b.base }

// Read8 returns the addressed bit for the low byte of each aligned word,
// zero for the upper bytes.
func (b *BitBand) Read8(off uint32) uint8 {
	if off&3 != 0 {
		return 0
	}
	w := off >> 2
	v := b.mem.Read8(b.base + w>>3)
	return (v >> (w & 7)) & 1
}

// Write8 sets or clears the addressed bit from the low byte of an aligned
// word write; upper bytes are ignored.
func (b *BitBand) Write8(off uint32, v uint8) {
	if off&3 != 0 {
		return
	}
	w := off >> 2
	addr := b.base + w>>3
	old := b.mem.Read8(addr)
	mask := uint8(1) << (w & 7)
	if v&1 != 0 {
		b.mem.Write8(addr, old|mask)
	} else {
		b.mem.Write8(addr, old&^mask)
	}
}
