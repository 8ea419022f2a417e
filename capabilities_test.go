package stm32sim_test

import (
	"testing"

	sim "github.com/db47h/stm32sim"
)

func TestFamily_label(t *testing.T) {
	data := []struct {
		f    sim.Family
		want string
	}{
		{sim.FamilyF1, "F1"},
		{sim.FamilyF2, "F2"},
		{sim.FamilyF3, "F3"},
		{sim.FamilyF4, "F4"},
		{sim.FamilyL1, "L1"},
		{sim.FamilyUnknown, "unknown"},
		{sim.Family(42), "unknown"},
	}
	for _, d := range data {
		if got := d.f.Label(); got != d.want {
			t.Errorf("Label(%d) = %q, expected %q", int(d.f), got, d.want)
		}
	}
}

// An unrecognized family must not prevent composition: the explicit
// peripheral flags still drive it.
func TestCompose_unknown_family(t *testing.T) {
	caps := &sim.Capabilities{
		Family:      sim.Family(42),
		FlashSizeKB: 64,
		SRAMSizeKB:  8,
		HasGPIOA:    true,
		HasUSART1:   true,
	}
	m, err := sim.Compose(sim.DefaultConfig(caps))
	if err != nil {
		t.Fatal(err)
	}
	if m.GPIO(0) == nil || m.USART(0) == nil {
		t.Error("children missing for unknown family")
	}
}
