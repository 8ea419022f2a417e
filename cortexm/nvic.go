package cortexm

// NVIC models the interrupt controller interface peripherals depend on:
// pending-line state only. Prioritization and vectoring belong to the core
// execution model, which is out of scope here.
//
type NVIC struct {
	pending map[int]bool
}

// NewNVIC returns an interrupt controller with no pending lines.
//
func NewNVIC() *NVIC {
	return &NVIC{pending: make(map[int]bool)}
}

// SetPending marks interrupt line irq pending. Negative lines are ignored,
// so peripherals without an assigned line can raise unconditionally.
func (n *NVIC) SetPending(irq int) {
	if irq < 0 {
		return
	}
	n.pending[irq] = true
}

// ClearPending clears interrupt line irq.
func (n *NVIC) ClearPending(irq int) {
	delete(n.pending, irq)
}

// Pending reports whether interrupt line irq is pending.
func (n *NVIC) Pending(irq int) bool {
	return n.pending[irq]
}

// Reset clears all pending lines.
func (n *NVIC) Reset() {
	for irq := range n.pending {
		delete(n.pending, irq)
	}
}
