// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package stm32sim

// Family identifies a chip variant group. Families share the peripheral
// register layout and reset behavior of their group.
//
type Family int

// Supported chip families.
const (
	FamilyUnknown Family = iota
	FamilyF1
	FamilyF2
	FamilyF3
	FamilyF4
	FamilyL1
)

// Label returns the family's diagnostic label. Unrecognized values map to
// "unknown" rather than failing: a partially specified variant still
// composes from its explicit peripheral flags.
//
func (f Family) Label() string {
	switch f {
	case FamilyF1:
		return "F1"
	case FamilyF2:
		return "F2"
	case FamilyF3:
		return "F3"
	case FamilyF4:
		return "F4"
	case FamilyL1:
		return "L1"
	}
	return "unknown"
}

// Number of indexed child slots per MCU.
const (
	MaxGPIO  = 7 // ports A..G
	MaxUSART = 6 // USART1..3, UART4..5, USART6
)

// Capabilities describes one chip variant: its family, fixed parameters and
// per-peripheral presence flags. A Capabilities value is bound to an MCU at
// composition time and never mutated afterwards; any number of MCUs may
// share one descriptor.
//
type Capabilities struct {
	Family Family

	// Internal oscillator frequencies.
	HSIFreqHz uint32
	LSIFreqHz uint32

	FlashSizeKB int
	SRAMSizeKB  int

	HasGPIOA bool
	HasGPIOB bool
	HasGPIOC bool
	HasGPIOD bool
	HasGPIOE bool
	HasGPIOF bool
	HasGPIOG bool

	HasUSART1 bool
	HasUSART2 bool
	HasUSART3 bool
	HasUART4  bool
	HasUART5  bool
	HasUSART6 bool

	HasPWR           bool
	HasPeriphBitband bool
}

// gpioFlags returns the port presence flags indexed by port (A=0).
func (c *Capabilities) gpioFlags() [MaxGPIO]bool {
	return [MaxGPIO]bool{
		c.HasGPIOA, c.HasGPIOB, c.HasGPIOC, c.HasGPIOD,
		c.HasGPIOE, c.HasGPIOF, c.HasGPIOG,
	}
}

// serialFlags returns the serial presence flags indexed by port (USART1=0).
func (c *Capabilities) serialFlags() [MaxUSART]bool {
	return [MaxUSART]bool{
		c.HasUSART1, c.HasUSART2, c.HasUSART3,
		c.HasUART4, c.HasUART5, c.HasUSART6,
	}
}
