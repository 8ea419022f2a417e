// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package memmap implements the flat physical address space of an emulated
// machine: fixed-size regions mapped at absolute base addresses, with
// byte, half-word and word access in little-endian order.
//
// Two region kinds are provided: RAM, a plain backing store, and Alias, a
// window that forwards accesses to another region at a fixed offset. Either
// can be marked read-only, in which case writes are silently dropped, as on
// real hardware writing to a ROM area.
//
package memmap

import (
	"encoding/binary"
	"log"
	"sort"

	"github.com/pkg/errors"
)

// A Region is an addressable window of the machine's memory map. Offsets
// passed to Read8 and Write8 are region-relative and always less than Size.
//
type Region interface {
	Name() string
	Size() uint32
	Read8(off uint32) uint8
	Write8(off uint32, v uint8)
}

// RAM is a Region backed by a byte slice.
//
type RAM struct {
	name     string
	mem      []byte
	readonly bool
}

// NewRAM returns a zero-filled RAM region of the given size in bytes.
//
func NewRAM(name string, size uint32) *RAM {
	return &RAM{name: name, mem: make([]byte, size)}
}

// Name returns the region name.
func (r *RAM) Name() string { return r.name }

// Size returns the region size in bytes.
func (r *RAM) Size() uint32 { return uint32(len(r.mem)) }

// Read8 returns the byte at offset off.
func (r *RAM) Read8(off uint32) uint8 { return r.mem[off] }

// Write8 sets the byte at offset off. Writes to a read-only region are
// dropped.
func (r *RAM) Write8(off uint32, v uint8) {
	if r.readonly {
		return
	}
	r.mem[off] = v
}

// SetReadonly marks the region read-only (or read-write again).
func (r *RAM) SetReadonly(ro bool) { r.readonly = ro }

// Readonly reports whether the region is read-only.
func (r *RAM) Readonly() bool { return r.readonly }

// Bytes returns the backing store. It is shared, not a copy: callers use it
// to preload images or inspect memory without going through the bus.
func (r *RAM) Bytes() []byte { return r.mem }

// Clear zero-fills the region, bypassing the read-only flag.
func (r *RAM) Clear() {
	for i := range r.mem {
		r.mem[i] = 0
	}
}

// Alias is a Region that forwards all accesses to a backing region at a
// fixed offset. It holds no state of its own: a read through an alias
// observes exactly what a read of the backing region at the translated
// offset would.
//
type Alias struct {
	name     string
	backing  Region
	off      uint32
	size     uint32
	readonly bool
}

// NewAlias returns an alias named name covering size bytes of backing,
// starting at offset off. The aliased window must lie entirely within the
// backing region.
//
func NewAlias(name string, backing Region, off, size uint32) (*Alias, error) {
	if size == 0 {
		return nil, errors.Errorf("alias %s: zero size", name)
	}
	if off > backing.Size() || backing.Size()-off < size {
		return nil, errors.Errorf("alias %s: window [%#x, %#x) exceeds %s size %#x",
			name, off, uint64(off)+uint64(size), backing.Name(), backing.Size())
	}
	return &Alias{name: name, backing: backing, off: off, size: size}, nil
}

// Name returns the region name.
func (a *Alias) Name() string { return a.name }

// Size returns the region size in bytes.
func (a *Alias) Size() uint32 { return a.size }

// Read8 returns the byte at offset off of the backing region.
func (a *Alias) Read8(off uint32) uint8 { return a.backing.Read8(a.off + off) }

// Write8 forwards the write to the backing region unless the alias is
// read-only.
func (a *Alias) Write8(off uint32, v uint8) {
	if a.readonly {
		return
	}
	a.backing.Write8(a.off+off, v)
}

// SetReadonly marks the alias read-only.
func (a *Alias) SetReadonly(ro bool) { a.readonly = ro }

// Readonly reports whether the alias is read-only.
func (a *Alias) Readonly() bool { return a.readonly }

// A Mapping binds a region to its absolute base address.
//
type Mapping struct {
	Base   uint32
	Region Region
}

func (m Mapping) contains(addr uint32) bool {
	return addr >= m.Base && addr-m.Base < m.Region.Size()
}

// AddressSpace dispatches absolute addresses to non-overlapping mapped
// regions. Accesses to unmapped addresses read as zero and are logged, they
// never fault.
//
type AddressSpace struct {
	name string
	maps []Mapping // sorted by Base
}

// New returns an empty address space.
//
func New(name string) *AddressSpace {
	return &AddressSpace{name: name}
}

// Name returns the address space name.
func (as *AddressSpace) Name() string { return as.name }

// Map inserts r as a subregion at the given base address. It fails if the
// mapping would wrap past the top of the address space or overlap an
// existing mapping.
//
func (as *AddressSpace) Map(base uint32, r Region) error {
	if r.Size() == 0 {
		return errors.Errorf("%s: mapping %s at %#x: zero size", as.name, r.Name(), base)
	}
	if base+r.Size()-1 < base {
		return errors.Errorf("%s: mapping %s at %#x: wraps past top of address space", as.name, r.Name(), base)
	}
	i := sort.Search(len(as.maps), func(i int) bool { return as.maps[i].Base > base })
	if i > 0 {
		if p := as.maps[i-1]; base-p.Base < p.Region.Size() {
			return errors.Errorf("%s: mapping %s at %#x overlaps %s at %#x",
				as.name, r.Name(), base, p.Region.Name(), p.Base)
		}
	}
	if i < len(as.maps) {
		if n := as.maps[i]; n.Base-base < r.Size() {
			return errors.Errorf("%s: mapping %s at %#x overlaps %s at %#x",
				as.name, r.Name(), base, n.Region.Name(), n.Base)
		}
	}
	as.maps = append(as.maps, Mapping{})
	copy(as.maps[i+1:], as.maps[i:])
	as.maps[i] = Mapping{Base: base, Region: r}
	return nil
}

// Lookup returns the mapping covering addr.
//
func (as *AddressSpace) Lookup(addr uint32) (Mapping, bool) {
	i := sort.Search(len(as.maps), func(i int) bool { return as.maps[i].Base > addr })
	if i > 0 && as.maps[i-1].contains(addr) {
		return as.maps[i-1], true
	}
	return Mapping{}, false
}

// Mappings returns a copy of the mapping table in ascending base order.
//
func (as *AddressSpace) Mappings() []Mapping {
	m := make([]Mapping, len(as.maps))
	copy(m, as.maps)
	return m
}

// Read8 returns the byte at addr. Unmapped addresses read as zero.
func (as *AddressSpace) Read8(addr uint32) uint8 {
	m, ok := as.Lookup(addr)
	if !ok {
		log.Printf("%s: read at unmapped address %#x", as.name, addr)
		return 0
	}
	return m.Region.Read8(addr - m.Base)
}

// Write8 sets the byte at addr. Writes to unmapped addresses are dropped.
func (as *AddressSpace) Write8(addr uint32, v uint8) {
	m, ok := as.Lookup(addr)
	if !ok {
		log.Printf("%s: write at unmapped address %#x", as.name, addr)
		return
	}
	m.Region.Write8(addr-m.Base, v)
}

// Read16 returns the little-endian half-word at addr.
func (as *AddressSpace) Read16(addr uint32) uint16 {
	var b [2]byte
	for i := range b {
		b[i] = as.Read8(addr + uint32(i))
	}
	return binary.LittleEndian.Uint16(b[:])
}

// Write16 stores a little-endian half-word at addr.
func (as *AddressSpace) Write16(addr uint32, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	for i := range b {
		as.Write8(addr+uint32(i), b[i])
	}
}

// Read32 returns the little-endian word at addr.
func (as *AddressSpace) Read32(addr uint32) uint32 {
	var b [4]byte
	for i := range b {
		b[i] = as.Read8(addr + uint32(i))
	}
	return binary.LittleEndian.Uint32(b[:])
}

// Write32 stores a little-endian word at addr.
func (as *AddressSpace) Write32(addr uint32, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	for i := range b {
		as.Write8(addr+uint32(i), b[i])
	}
}
