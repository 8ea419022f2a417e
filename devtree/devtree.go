// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package devtree implements the hierarchical device namespace of an
// emulated machine. Every composed device lives at a well-known path like
// /machine/mcu/stm32/gpio[a], which external tooling uses to inspect the
// machine.
//
package devtree

import (
	"strings"

	"github.com/pkg/errors"
)

// A Node is one entry in the device namespace. Nodes keep their children in
// insertion order, which makes traversal deterministic.
//
type Node struct {
	name     string
	parent   *Node
	children map[string]*Node
	order    []*Node
	value    interface{}
}

// NewRoot returns a new namespace root.
//
func NewRoot(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's name within its parent.
func (n *Node) Name() string { return n.name }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Path returns the absolute path of the node, e.g. "/machine/mcu/stm32".
//
func (n *Node) Path() string {
	if n.parent == nil {
		return "/" + n.name
	}
	return n.parent.Path() + "/" + n.name
}

// SetValue attaches a device to the node.
func (n *Node) SetValue(v interface{}) { n.value = v }

// Value returns the device attached to the node, or nil.
func (n *Node) Value() interface{} { return n.value }

// New creates a child node. Duplicate names within one parent are rejected:
// a name collision means two devices were composed into the same slot.
//
func (n *Node) New(name string) (*Node, error) {
	if name == "" || strings.ContainsRune(name, '/') {
		return nil, errors.Errorf("%s: invalid child name %q", n.Path(), name)
	}
	if _, ok := n.children[name]; ok {
		return nil, errors.Errorf("%s: duplicate child %q", n.Path(), name)
	}
	c := &Node{name: name, parent: n}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	n.children[name] = c
	n.order = append(n.order, c)
	return c, nil
}

// Container returns the named child, creating it if necessary. This is the
// get-or-create used for pure grouping nodes, where a pre-existing node is
// not an error.
//
func (n *Node) Container(name string) *Node {
	if c := n.children[name]; c != nil {
		return c
	}
	c, err := n.New(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Child returns the named child or nil.
func (n *Node) Child(name string) *Node { return n.children[name] }

// Get resolves a slash-separated path relative to n and returns the node at
// that path, or nil if any element is missing.
//
func (n *Node) Get(path string) *Node {
	for _, el := range strings.Split(path, "/") {
		if el == "" {
			continue
		}
		if n = n.children[el]; n == nil {
			return nil
		}
	}
	return n
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	c := make([]*Node, len(n.order))
	copy(c, n.order)
	return c
}

// Walk visits n and every descendant in depth-first insertion order.
//
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.order {
		c.Walk(fn)
	}
}
