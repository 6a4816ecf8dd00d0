// MIT License · 09/2023

// Package device collects concrete m6502.Device implementations: simple
// fakes for tests plus a byte-queued console peripheral for interactive
// use. None of them are part of the m6502 core — they are the kind of
// thing a caller wires onto a Bus, the same way IntuitionEngine wires a
// TerminalMMIO device onto its machine bus.
package device

import "sync"

// Const always returns the same byte on Read and discards every Write. It
// exists for exercising the bus's device-dispatch path without writing a
// bespoke fake per test.
type Const struct {
	Value byte
}

// Read returns Value, ignoring addr.
func (c *Const) Read(addr uint16) byte { return c.Value }

// Write discards b.
func (c *Const) Write(addr uint16, b byte) {}

// Counter returns the number of reads it has served so far on every Read,
// starting at 0, and discards writes. It is useful for asserting that an
// instruction touches a device exactly once, or in the order the
// addressing mode's spec implies.
type Counter struct {
	mu    sync.Mutex
	reads uint32
}

// Read returns the number of prior reads (0 on the first call), then
// increments the counter.
func (c *Counter) Read(addr uint16) byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.reads
	c.reads++
	return byte(n)
}

// Write discards b.
func (c *Counter) Write(addr uint16, b byte) {}

// Reads reports the total number of reads served so far.
func (c *Counter) Reads() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}
