// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chardev provides the character-stream back-ends that serial
// peripherals transmit into. The guest-to-host direction is an io.Writer;
// the host-to-guest direction goes through a Receiver callback installed by
// the peripheral.
//
package chardev

import (
	"bytes"
	"sync"
)

// A Receiver accepts one byte of host-to-guest input.
//
type Receiver func(b byte)

// A Backend is one end of a character stream. Write never blocks on guest
// time: back-ends that cannot forward data must buffer or drop it.
//
type Backend interface {
	// Label returns the back-end's name, e.g. "serial0".
	Label() string
	// Write consumes guest output.
	Write(p []byte) (int, error)
	// SetReceiver installs the callback for host input. Back-ends that
	// never produce input may ignore it.
	SetReceiver(r Receiver)
}

// Null discards all output and produces no input. It backs serial ports
// that the host configuration left unconnected.
//
type Null struct {
	label string
}

// NewNull returns a discard back-end with the given label.
//
func NewNull(label string) *Null { return &Null{label: label} }

// Label returns the back-end's name.
func (n *Null) Label() string { return n.label }

// Write discards p.
func (n *Null) Write(p []byte) (int, error) { return len(p), nil }

// SetReceiver is a no-op: a null stream never produces input.
func (n *Null) SetReceiver(Receiver) {}

// Buffer captures guest output and lets the host inject input. It is the
// back-end of choice for tests and for the CLI's captured runs.
//
type Buffer struct {
	label string

	mu   sync.Mutex
	out  bytes.Buffer
	recv Receiver
}

// NewBuffer returns a capturing back-end with the given label.
//
func NewBuffer(label string) *Buffer { return &Buffer{label: label} }

// Label returns the back-end's name.
func (b *Buffer) Label() string { return b.label }

// Write appends p to the captured output.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.Write(p)
}

// SetReceiver installs the input callback.
func (b *Buffer) SetReceiver(r Receiver) {
	b.mu.Lock()
	b.recv = r
	b.mu.Unlock()
}

// Inject feeds p, byte by byte, to the installed receiver. Bytes injected
// before a receiver is installed are dropped.
//
func (b *Buffer) Inject(p []byte) {
	b.mu.Lock()
	r := b.recv
	b.mu.Unlock()
	if r == nil {
		return
	}
	for _, c := range p {
		r(c)
	}
}

// String returns the captured guest output.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

// Mux fans guest output out to several back-ends.
//
type Mux struct {
	label    string
	backends []Backend
}

// NewMux returns a back-end that duplicates output to all of bs.
//
func NewMux(label string, bs ...Backend) *Mux {
	return &Mux{label: label, backends: bs}
}

// Label returns the back-end's name.
func (m *Mux) Label() string { return m.label }

// Write forwards p to every back-end and returns the first error.
func (m *Mux) Write(p []byte) (int, error) {
	var first error
	for _, b := range m.backends {
		if _, err := b.Write(p); err != nil && first == nil {
			first = err
		}
	}
	return len(p), first
}

// SetReceiver installs r on every back-end, so input from any of them
// reaches the peripheral.
func (m *Mux) SetReceiver(r Receiver) {
	for _, b := range m.backends {
		b.SetReceiver(r)
	}
}
