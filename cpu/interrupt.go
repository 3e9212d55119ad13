package cpu

import "github.com/sixfiveohtwo/engine/memory"

// Interrupt injects an interrupt at an instruction boundary, per §4.5.
// The host is responsible for only calling this when remainCycles == 0
// (the engine does not poll); calling it mid-drain would interleave an
// interrupt sequence with an in-flight instruction's cycle accounting.
//
// IRQ with the interrupt-disable flag set returns immediately with no
// side effects. Reset re-initializes registers and loads PC from the
// reset vector. IRQ, NMI and BRKSignal (a host-injected BRK; the BRK
// opcode itself is executed by execBRK, which performs its own push and
// vector load) push PC then P and load PC from their vector; the B bit
// pushed is 1 only for BRKSignal.
func (c *Chip) Interrupt(bus memory.Bus, kind InterruptKind) {
	if kind == Reset {
		c.Reset(bus)
		return
	}
	if kind == IRQ && c.flag(FlagI) {
		return
	}

	c.push(bus, uint8(c.PC>>8))
	c.push(bus, uint8(c.PC))
	push := c.P | FlagR
	if kind == BRKSignal {
		push |= FlagB
	} else {
		push &^= FlagB
	}
	c.push(bus, push)
	c.P |= FlagI

	vector := IRQVector
	if kind == NMI {
		vector = NMIVector
	}
	lo := bus.Read(vector)
	hi := bus.Read(vector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)

	c.remainCycles = 0
	c.totalCycles += 7
}
