package stm32sim

// Fixed chip-map addresses common to the whole series.
const (
	flashAliasBase = 0x08000000 // nominal flash load address
	periphBase     = 0x40000000 // bit-banded peripheral window
)

// periphBases holds one family's peripheral register base addresses and
// interrupt lines. An address of zero (or IRQ of -1) marks a peripheral the
// family does not provide.
type periphBases struct {
	rcc        uint32
	flash      uint32 // flash interface registers, not the flash array
	pwr        uint32
	gpio       uint32 // port A; successive ports at gpioStride intervals
	gpioStride uint32
	usart      [MaxUSART]uint32
	usartIRQ   [MaxUSART]int
}

// basesFor returns the register layout for a family. Unknown families get
// the F2/F4 layout so that partially specified variants remain usable.
func basesFor(f Family) periphBases {
	switch f {
	case FamilyF1:
		return periphBases{
			rcc:        0x40021000,
			flash:      0x40022000,
			pwr:        0x40007000,
			gpio:       0x40010800,
			gpioStride: 0x400,
			usart:      [MaxUSART]uint32{0x40013800, 0x40004400, 0x40004800, 0x40004c00, 0x40005000, 0},
			usartIRQ:   [MaxUSART]int{37, 38, 39, 52, 53, -1},
		}
	case FamilyF3:
		return periphBases{
			rcc:        0x40021000,
			flash:      0x40022000,
			pwr:        0x40007000,
			gpio:       0x48000000,
			gpioStride: 0x400,
			usart:      [MaxUSART]uint32{0x40013800, 0x40004400, 0x40004800, 0x40004c00, 0x40005000, 0},
			usartIRQ:   [MaxUSART]int{37, 38, 39, 52, 53, -1},
		}
	case FamilyL1:
		return periphBases{
			rcc:        0x40023800,
			flash:      0x40023c00,
			pwr:        0x40007000,
			gpio:       0x40020000,
			gpioStride: 0x400,
			usart:      [MaxUSART]uint32{0x40013800, 0x40004400, 0x40004800, 0x40004c00, 0x40005000, 0},
			usartIRQ:   [MaxUSART]int{37, 38, 39, 48, 49, -1},
		}
	default: // F2, F4 and unknown
		return periphBases{
			rcc:        0x40023800,
			flash:      0x40023c00,
			pwr:        0x40007000,
			gpio:       0x40020000,
			gpioStride: 0x400,
			usart:      [MaxUSART]uint32{0x40011000, 0x40004400, 0x40004800, 0x40004c00, 0x40005000, 0x40011400},
			usartIRQ:   [MaxUSART]int{37, 38, 39, 52, 53, 71},
		}
	}
}
