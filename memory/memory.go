// Package memory defines the bus contract the cpu package depends on and
// a flat 64KiB reference implementation used by tests and cmd/step6502.
package memory

// Bus is the address space a Chip is wired to. The engine never assumes
// anything about what backs it (RAM, ROM, memory-mapped I/O); two reads
// of the same address may return different values.
type Bus interface {
	// Read returns the byte at addr. Every call the engine makes counts
	// as one bus cycle.
	Read(addr uint16) uint8
	// Write stores val at addr. Every call the engine makes counts as
	// one bus cycle.
	Write(addr uint16, val uint8)
	// Reset gives the bus an opportunity to re-initialize itself.
	Reset()
}

// Peeker is an optional interface a Bus may implement to support
// side-effect-free reads for trace output. If a Bus doesn't implement
// it, trace.Line falls back to Read (which may have side effects on
// memory-mapped I/O backed buses).
type Peeker interface {
	Peek(addr uint16) uint8
}

// FlatBus is a 64KiB byte-addressable RAM bus with no memory-mapped
// side effects. It's the reference Bus used by the cpu package's own
// tests and by cmd/step6502.
type FlatBus struct {
	mem [65536]uint8
}

// NewFlatBus returns a zeroed FlatBus.
func NewFlatBus() *FlatBus {
	return &FlatBus{}
}

// Read implements Bus.
func (f *FlatBus) Read(addr uint16) uint8 {
	return f.mem[addr]
}

// Write implements Bus.
func (f *FlatBus) Write(addr uint16, val uint8) {
	f.mem[addr] = val
}

// Reset implements Bus. FlatBus keeps its contents across resets; real
// hardware RAM doesn't clear on reset either.
func (f *FlatBus) Reset() {}

// Peek implements Peeker without side effects (FlatBus reads never have
// side effects to begin with, so this is just Read).
func (f *FlatBus) Peek(addr uint16) uint8 {
	return f.mem[addr]
}

// Load copies data into the bus starting at addr, for setting up test
// programs and ROM images.
func (f *FlatBus) Load(addr uint16, data []uint8) {
	for i, b := range data {
		f.mem[addr+uint16(i)] = b
	}
}
