// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package mcutest provides instrumented stub collaborators for testing MCU
// composition and lifecycle propagation, in particular the relative order
// in which reset reaches the composed children.
//
package mcutest

// A Recorder collects named events in the order they happen.
//
type Recorder struct {
	names []string
}

// Record appends one event.
func (r *Recorder) Record(name string) {
	r.names = append(r.names, name)
}

// Names returns the recorded events in order.
func (r *Recorder) Names() []string {
	n := make([]string, len(r.names))
	copy(n, r.names)
	return n
}

// Clear drops all recorded events.
func (r *Recorder) Clear() {
	r.names = r.names[:0]
}

// A Stub stands in for a composed peripheral and records every reset it
// receives.
//
type Stub struct {
	name string
	rec  *Recorder
}

// NewStub returns a stub peripheral recording into rec.
//
func NewStub(name string, rec *Recorder) *Stub {
	return &Stub{name: name, rec: rec}
}

// Name returns the stub's name.
func (s *Stub) Name() string { return s.name }

// Reset records the reset event.
func (s *Stub) Reset() { s.rec.Record(s.name) }
