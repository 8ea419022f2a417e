/*
Package stm32sim composes the on-chip peripheral set of an emulated STM32
microcontroller. Given the capability descriptor of a chip variant, Compose
deterministically instantiates the declared peripherals (clock controller,
flash controller, power controller, GPIO ports, serial ports), wires them
into the machine's device namespace, and installs the flash alias that lets
code run regardless of the boot-time memory remap. The composed MCU then
forwards system resets to every child in a fixed order.

The base Cortex-M substrate lives in package cortexm, the address-space
primitives in package memmap, the device namespace in package devtree and
the serial back-ends in package chardev.

*/
package stm32sim
