package memmap_test

import (
	"testing"

	"github.com/db47h/stm32sim/memmap"
)

func TestAddressSpace_map_errors(t *testing.T) {
	ram := memmap.NewRAM("ram", 0x1000)
	data := []struct {
		name string
		base uint32
		r    memmap.Region
		err  string
	}{
		{"zero_size", 0x2000, memmap.NewRAM("empty", 0), "sys: mapping empty at 0x2000: zero size"},
		{"wrap", 0xfffff000, memmap.NewRAM("high", 0x2000), "sys: mapping high at 0xfffff000: wraps past top of address space"},
		{"overlap_low", 0x800, memmap.NewRAM("low", 0x1000), "sys: mapping low at 0x800 overlaps ram at 0x0"},
		{"overlap_high", 0x0, memmap.NewRAM("big", 0x20000), "sys: mapping big at 0x0 overlaps ram at 0x0"},
		{"ok", 0x1000, memmap.NewRAM("next", 0x1000), ""},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			as := memmap.New("sys")
			if err := as.Map(0, ram); err != nil {
				t.Fatal(err)
			}
			err := as.Map(d.base, d.r)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Errorf("Got error %q, expected %q", err, d.err)
			}
		})
	}
}

func TestAddressSpace_little_endian(t *testing.T) {
	as := memmap.New("sys")
	if err := as.Map(0x100, memmap.NewRAM("ram", 0x100)); err != nil {
		t.Fatal(err)
	}
	as.Write32(0x100, 0x04030201)
	for i, want := range []uint8{1, 2, 3, 4} {
		if v := as.Read8(0x100 + uint32(i)); v != want {
			t.Errorf("byte %d = %#x, expected %#x", i, v, want)
		}
	}
	if v := as.Read16(0x102); v != 0x0403 {
		t.Errorf("Read16 = %#x, expected 0x0403", v)
	}
	as.Write16(0x110, 0xbeef)
	if v := as.Read32(0x110); v != 0x0000beef {
		t.Errorf("Read32 = %#x, expected 0x0000beef", v)
	}
}

func TestAddressSpace_unmapped(t *testing.T) {
	as := memmap.New("sys")
	if v := as.Read32(0xdeadbeef); v != 0 {
		t.Errorf("unmapped read = %#x, expected 0", v)
	}
	// must not panic
	as.Write8(0xdeadbeef, 1)
}

func TestAlias_forwarding(t *testing.T) {
	ram := memmap.NewRAM("ram", 0x400)
	al, err := memmap.NewAlias("alias", ram, 0x100, 0x200)
	if err != nil {
		t.Fatal(err)
	}
	ram.Write8(0x100, 0xaa)
	if v := al.Read8(0); v != 0xaa {
		t.Errorf("alias read = %#x, expected 0xaa", v)
	}
	al.Write8(1, 0x55)
	if v := ram.Read8(0x101); v != 0x55 {
		t.Errorf("backing byte = %#x, expected 0x55", v)
	}

	al.SetReadonly(true)
	al.Write8(1, 0xff)
	if v := ram.Read8(0x101); v != 0x55 {
		t.Errorf("write through read-only alias reached backing: %#x", v)
	}
}

func TestAlias_window_bounds(t *testing.T) {
	ram := memmap.NewRAM("ram", 0x400)
	data := []struct {
		name      string
		off, size uint32
		err       string
	}{
		{"exact", 0, 0x400, ""},
		{"tail", 0x200, 0x200, ""},
		{"zero", 0, 0, "alias a: zero size"},
		{"too_big", 0, 0x401, "alias a: window [0x0, 0x401) exceeds ram size 0x400"},
		{"off_out", 0x401, 1, "alias a: window [0x401, 0x402) exceeds ram size 0x400"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := memmap.NewAlias("a", ram, d.off, d.size)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Errorf("Got error %q, expected %q", err, d.err)
			}
		})
	}
}

func TestRAM_readonly_and_clear(t *testing.T) {
	ram := memmap.NewRAM("ram", 16)
	ram.Write8(3, 42)
	ram.SetReadonly(true)
	ram.Write8(3, 7)
	if v := ram.Read8(3); v != 42 {
		t.Errorf("read-only RAM modified: %d", v)
	}
	ram.Clear()
	if v := ram.Read8(3); v != 0 {
		t.Errorf("Clear left byte %d", v)
	}
}

func TestAddressSpace_lookup(t *testing.T) {
	as := memmap.New("sys")
	ram := memmap.NewRAM("ram", 0x100)
	if err := as.Map(0x1000, ram); err != nil {
		t.Fatal(err)
	}
	if m, ok := as.Lookup(0x10ff); !ok || m.Region != memmap.Region(ram) {
		t.Error("Lookup missed last byte of mapping")
	}
	if _, ok := as.Lookup(0x1100); ok {
		t.Error("Lookup matched first byte past mapping")
	}
	if _, ok := as.Lookup(0xfff); ok {
		t.Error("Lookup matched byte before mapping")
	}
}
