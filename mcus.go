package stm32sim

import "sort"

// Named capability descriptors for the chip variants the project supports.
// Feature sets and oscillator frequencies follow the datasheets; every
// entry is immutable and shared by all instances composed from it.
var mcus = map[string]*Capabilities{
	"STM32F103RB": {
		Family:      FamilyF1,
		HSIFreqHz:   8000000,
		LSIFreqHz:   40000,
		FlashSizeKB: 128,
		SRAMSizeKB:  20,
		HasGPIOA:    true, HasGPIOB: true, HasGPIOC: true, HasGPIOD: true, HasGPIOE: true,
		HasUSART1: true, HasUSART2: true, HasUSART3: true,
		HasPWR:           true,
		HasPeriphBitband: true,
	},
	"STM32F107VC": {
		Family:      FamilyF1,
		HSIFreqHz:   8000000,
		LSIFreqHz:   40000,
		FlashSizeKB: 256,
		SRAMSizeKB:  64,
		HasGPIOA:    true, HasGPIOB: true, HasGPIOC: true, HasGPIOD: true, HasGPIOE: true,
		HasUSART1: true, HasUSART2: true, HasUSART3: true, HasUART4: true, HasUART5: true,
		HasPWR:           true,
		HasPeriphBitband: true,
	},
	"STM32F405RG": {
		Family:      FamilyF4,
		HSIFreqHz:   16000000,
		LSIFreqHz:   32000,
		FlashSizeKB: 1024,
		SRAMSizeKB:  128,
		HasGPIOA:    true, HasGPIOB: true, HasGPIOC: true, HasGPIOD: true, HasGPIOE: true,
		HasGPIOF: true, HasGPIOG: true,
		HasUSART1: true, HasUSART2: true, HasUSART3: true, HasUART4: true, HasUART5: true,
		HasUSART6:        true,
		HasPWR:           true,
		HasPeriphBitband: true,
	},
	"STM32F407VG": {
		Family:      FamilyF4,
		HSIFreqHz:   16000000,
		LSIFreqHz:   32000,
		FlashSizeKB: 1024,
		SRAMSizeKB:  192,
		HasGPIOA:    true, HasGPIOB: true, HasGPIOC: true, HasGPIOD: true, HasGPIOE: true,
		HasGPIOF: true, HasGPIOG: true,
		HasUSART1: true, HasUSART2: true, HasUSART3: true, HasUART4: true, HasUART5: true,
		HasUSART6:        true,
		HasPWR:           true,
		HasPeriphBitband: true,
	},
	"STM32F411RE": {
		Family:      FamilyF4,
		HSIFreqHz:   16000000,
		LSIFreqHz:   32000,
		FlashSizeKB: 512,
		SRAMSizeKB:  128,
		HasGPIOA:    true, HasGPIOB: true, HasGPIOC: true, HasGPIOD: true, HasGPIOE: true,
		HasUSART1: true, HasUSART2: true, HasUSART6: true,
		HasPWR:           true,
		HasPeriphBitband: true,
	},
	"STM32L152RE": {
		Family:      FamilyL1,
		HSIFreqHz:   16000000,
		LSIFreqHz:   37000,
		FlashSizeKB: 512,
		SRAMSizeKB:  80,
		HasGPIOA:    true, HasGPIOB: true, HasGPIOC: true, HasGPIOD: true, HasGPIOE: true,
		HasUSART1: true, HasUSART2: true, HasUSART3: true,
		HasPWR: true,
	},
}

// MCUNames returns the names of all known chip variants in sorted order.
//
func MCUNames() []string {
	names := make([]string, 0, len(mcus))
	for n := range mcus {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CapabilitiesFor returns the capability descriptor of a known chip
// variant, or nil if the name is not known.
//
func CapabilitiesFor(name string) *Capabilities {
	return mcus[name]
}
