package cpu

import "github.com/sixfiveohtwo/engine/memory"

// execFunc is the signature every decode table entry's handler
// implements: given the chip (with PC already past the opcode byte)
// and the bus, consume whatever operand bytes the mode requires,
// perform the instruction's effect, and return the total cycle count
// including the opcode fetch.
type execFunc func(c *Chip, bus memory.Bus, m addrMode) int

// execBranch builds the exec func for a conditional branch. Offset is
// always read and PC always advances past it; if the condition holds,
// PC is further adjusted by the signed offset, charging one cycle for
// the branch taken and a second if that lands on a different page,
// per §4.2.
func execBranch(cond func(c *Chip) bool) execFunc {
	return func(c *Chip, bus memory.Bus, m addrMode) int {
		offset := bus.Read(c.PC)
		c.PC++
		if !cond(c) {
			return 2
		}
		base := c.PC
		target := base + uint16(int8(offset))
		c.PC = target
		if target&0xFF00 != base&0xFF00 {
			return 4
		}
		return 3
	}
}

// execJMPAbsolute implements JMP a.
func execJMPAbsolute(c *Chip, bus memory.Bus, m addrMode) int {
	addr, _ := operandAddr(c, bus, modeAbsolute)
	c.PC = addr
	return 3
}

// execJMPIndirect implements JMP (a), including the documented
// page-boundary bug: when the pointer's low byte is 0xFF, the high
// byte is fetched from the start of the same page rather than the
// start of the next one.
func execJMPIndirect(c *Chip, bus memory.Bus, m addrMode) int {
	ptr, _ := operandAddr(c, bus, modeAbsolute)
	lo := bus.Read(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := bus.Read(hiAddr)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 5
}

// execJSR implements JSR a: pushes PC-1 (the address of the last byte
// of the JSR instruction), high byte first, then low, and jumps.
func execJSR(c *Chip, bus memory.Bus, m addrMode) int {
	lo := bus.Read(c.PC)
	c.PC++
	hi := bus.Read(c.PC)
	target := uint16(hi)<<8 | uint16(lo)
	// PC still points at the high operand byte (JSR_PC+2); that's the
	// value RTS expects to pull and add one to.
	ret := c.PC
	c.push(bus, uint8(ret>>8))
	c.push(bus, uint8(ret))
	c.PC = target
	return 6
}

// execRTS implements RTS: pulls low then high PC and adds one, landing
// on the instruction after the JSR operand.
func execRTS(c *Chip, bus memory.Bus, m addrMode) int {
	lo := c.pop(bus)
	hi := c.pop(bus)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.PC++
	return 6
}

// execPHA/execPHP/execPLA/execPLP implement the stack instructions.

func execPHA(c *Chip, bus memory.Bus, m addrMode) int {
	c.push(bus, c.A)
	return 3
}

func execPHP(c *Chip, bus memory.Bus, m addrMode) int {
	c.push(bus, c.P|FlagR|FlagB)
	return 3
}

func execPLA(c *Chip, bus memory.Bus, m addrMode) int {
	c.A = c.pop(bus)
	c.setZN(c.A)
	return 4
}

func execPLP(c *Chip, bus memory.Bus, m addrMode) int {
	c.P = (c.pop(bus) | FlagR) &^ FlagB
	return 4
}

// execBRK implements the BRK opcode, which pushes PC+2 (the byte after
// BRK's padding byte), then P with B forced to 1, sets I, and loads PC
// from the IRQ/BRK vector.
func execBRK(c *Chip, bus memory.Bus, m addrMode) int {
	_ = bus.Read(c.PC) // BRK's padding byte, read and discarded
	c.PC++
	c.push(bus, uint8(c.PC>>8))
	c.push(bus, uint8(c.PC))
	c.push(bus, c.P|FlagR|FlagB)
	c.P |= FlagI
	lo := bus.Read(IRQVector)
	hi := bus.Read(IRQVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 7
}

// execRTI implements RTI: pulls P (B cleared, R set), then PC low then
// high, and does NOT add one (unlike RTS).
func execRTI(c *Chip, bus memory.Bus, m addrMode) int {
	c.P = (c.pop(bus) | FlagR) &^ FlagB
	lo := c.pop(bus)
	hi := c.pop(bus)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 6
}
