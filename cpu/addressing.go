package cpu

import "github.com/sixfiveohtwo/engine/memory"

// addrMode enumerates the thirteen 6502 addressing modes.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndexedIndirect // (d,X)
	modeIndirectIndexed // (d),Y
)

// operandBytes is the number of bytes following the opcode that each
// mode consumes, used by trace formatting and by modes that only need
// the byte count (not a full resolve).
func operandBytes(m addrMode) int {
	switch m {
	case modeImplied, modeAccumulator:
		return 0
	case modeAbsolute, modeAbsoluteX, modeAbsoluteY, modeIndirect:
		return 2
	default:
		return 1
	}
}

// operandAddr evaluates mode's effective address, advancing PC past any
// operand bytes and performing every bus read the addressing mode
// itself requires (pointer fetches, zero-page wraps) but NOT the final
// read of the value at the effective address — callers that need the
// value call bus.Read(addr) themselves, which lets store/RMW semantics
// decide whether and how many times to touch that address.
//
// pageCrossed reports whether indexing moved the effective address into
// a different page than the unindexed base, per §4.2; it's meaningless
// for modes that don't index memory.
func operandAddr(c *Chip, bus memory.Bus, m addrMode) (addr uint16, pageCrossed bool) {
	switch m {
	case modeZeroPage:
		lo := bus.Read(c.PC)
		c.PC++
		return uint16(lo), false

	case modeZeroPageX:
		lo := bus.Read(c.PC)
		c.PC++
		_ = bus.Read(uint16(lo)) // dummy read before the index is applied, matches hardware
		return uint16(lo + c.X), false

	case modeZeroPageY:
		lo := bus.Read(c.PC)
		c.PC++
		_ = bus.Read(uint16(lo))
		return uint16(lo + c.Y), false

	case modeAbsolute:
		lo := bus.Read(c.PC)
		c.PC++
		hi := bus.Read(c.PC)
		c.PC++
		return uint16(hi)<<8 | uint16(lo), false

	case modeAbsoluteX:
		return absoluteIndexed(c, bus, c.X)

	case modeAbsoluteY:
		return absoluteIndexed(c, bus, c.Y)

	case modeIndexedIndirect:
		lo := bus.Read(c.PC)
		c.PC++
		_ = bus.Read(uint16(lo))
		ptr := lo + c.X
		pl := bus.Read(uint16(ptr))
		ph := bus.Read(uint16(ptr + 1)) // zero-page wrap: ptr+1 wraps mod 256
		return uint16(ph)<<8 | uint16(pl), false

	case modeIndirectIndexed:
		zp := bus.Read(c.PC)
		c.PC++
		pl := bus.Read(uint16(zp))
		ph := bus.Read(uint16(zp + 1)) // zero-page wrap on the high byte fetch
		base := uint16(ph)<<8 | uint16(pl)
		eff := base + uint16(c.Y)
		return eff, (eff & 0xFF00) != (base & 0xFF00)

	default:
		return 0, false
	}
}

// absoluteIndexed implements AbsoluteX/AbsoluteY, which differ only by
// which register indexes the address.
func absoluteIndexed(c *Chip, bus memory.Bus, reg uint8) (addr uint16, pageCrossed bool) {
	lo := bus.Read(c.PC)
	c.PC++
	hi := bus.Read(c.PC)
	c.PC++
	base := uint16(hi)<<8 | uint16(lo)
	eff := base + uint16(reg)
	return eff, (eff & 0xFF00) != (base & 0xFF00)
}

// operandByte resolves mode down to the byte an instruction consumes,
// for load-style and RMW-style instructions. For Accumulator it returns
// A with addr unused; for Immediate it reads straight from PC; every
// other mode goes through operandAddr and then reads the effective
// address once.
func operandByte(c *Chip, bus memory.Bus, m addrMode) (val uint8, addr uint16, pageCrossed bool) {
	switch m {
	case modeAccumulator:
		return c.A, 0, false
	case modeImmediate:
		v := bus.Read(c.PC)
		c.PC++
		return v, 0, false
	default:
		a, crossed := operandAddr(c, bus, m)
		return bus.Read(a), a, crossed
	}
}
