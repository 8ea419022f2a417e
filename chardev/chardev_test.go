package chardev_test

import (
	"testing"

	"github.com/db47h/stm32sim/chardev"
)

func TestNull_discards(t *testing.T) {
	n := chardev.NewNull("serial0")
	if n.Label() != "serial0" {
		t.Errorf("Label() = %q", n.Label())
	}
	cnt, err := n.Write([]byte("hello"))
	if err != nil || cnt != 5 {
		t.Errorf("Write = (%d, %v), expected (5, nil)", cnt, err)
	}
	// installing a receiver on a null stream must be accepted and inert
	n.SetReceiver(func(byte) { t.Error("null backend produced input") })
}

func TestBuffer_capture_and_inject(t *testing.T) {
	b := chardev.NewBuffer("serial1")
	if _, err := b.Write([]byte("at+rst\r\n")); err != nil {
		t.Fatal(err)
	}
	if s := b.String(); s != "at+rst\r\n" {
		t.Errorf("captured %q", s)
	}

	var got []byte
	// injection before a receiver is installed is dropped
	b.Inject([]byte("xx"))
	b.SetReceiver(func(c byte) { got = append(got, c) })
	b.Inject([]byte("ok"))
	if string(got) != "ok" {
		t.Errorf("received %q, expected %q", got, "ok")
	}
}

func TestMux_fanout(t *testing.T) {
	b1 := chardev.NewBuffer("a")
	b2 := chardev.NewBuffer("b")
	m := chardev.NewMux("mux", b1, b2)
	if _, err := m.Write([]byte("x")); err != nil {
		t.Fatal(err)
	}
	if b1.String() != "x" || b2.String() != "x" {
		t.Errorf("fanout got %q / %q", b1.String(), b2.String())
	}
	var got []byte
	m.SetReceiver(func(c byte) { got = append(got, c) })
	b2.Inject([]byte("y"))
	if string(got) != "y" {
		t.Errorf("mux receiver got %q", got)
	}
}
