package cpu

import "github.com/sixfiveohtwo/engine/memory"

// This file implements the undocumented opcodes conformance ROMs rely
// on. Behavior is grounded on the widely cited NMOS decay tables (e.g.
// http://nesdev.com/6502_cpu.txt and http://www.oxyron.de/html/opcodes02.html)
// as the teacher's own cpu.go documents inline.

// lax loads the same byte into both A and X.
func lax(c *Chip, val uint8) {
	c.A = val
	c.X = val
	c.setZN(val)
}

// sax stores A&X with no flag effect.
func sax(c *Chip) uint8 {
	return c.A & c.X
}

// dcp performs DEC then CMP against A.
func dcp(c *Chip, val uint8) uint8 {
	res := val - 1
	c.compare(c.A, res)
	return res
}

// isc (ISB) performs INC then SBC against A.
func isc(c *Chip, val uint8) uint8 {
	res := val + 1
	c.sbc(res)
	return res
}

// slo performs ASL then ORs the shifted value into A.
func slo(c *Chip, val uint8) uint8 {
	c.setCarry(val&0x80 != 0)
	res := val << 1
	c.A |= res
	c.setZN(c.A)
	return res
}

// rla performs ROL then ANDs the rotated value into A.
func rla(c *Chip, val uint8) uint8 {
	carryIn := uint8(0)
	if c.flag(FlagC) {
		carryIn = 1
	}
	c.setCarry(val&0x80 != 0)
	res := val<<1 | carryIn
	c.A &= res
	c.setZN(c.A)
	return res
}

// sre performs LSR then EORs the shifted value into A.
func sre(c *Chip, val uint8) uint8 {
	c.setCarry(val&0x01 != 0)
	res := val >> 1
	c.A ^= res
	c.setZN(c.A)
	return res
}

// rra performs ROR then ADCs the rotated value into A, using the carry
// the rotate produced (matching real silicon's shared ALU path).
func rra(c *Chip, val uint8) uint8 {
	carryIn := uint8(0)
	if c.flag(FlagC) {
		carryIn = 0x80
	}
	newCarry := val&0x01 != 0
	res := val>>1 | carryIn
	c.setCarry(newCarry)
	c.adc(res)
	return res
}

// anc ANDs into A then copies bit 7 of the result into carry, as if the
// result had been shifted into it.
func anc(c *Chip, val uint8) {
	c.A &= val
	c.setZN(c.A)
	c.setCarry(c.A&0x80 != 0)
}

// alr (ASR) ANDs into A then logical-shifts right.
func alr(c *Chip, val uint8) {
	c.A &= val
	c.A = c.lsr(c.A)
}

// arr ANDs into A then rotates right, but derives C/V from the result
// bits rather than from the rotate's own carry-out (the documented
// quirk that distinguishes it from AND+ROR).
func arr(c *Chip, val uint8) {
	c.A &= val
	carryIn := uint8(0)
	if c.flag(FlagC) {
		carryIn = 0x80
	}
	c.A = c.A>>1 | carryIn
	c.setCarry(c.A&0x40 != 0)
	c.setOverflow((c.A&0x40)>>6^(c.A&0x20)>>5 != 0)
	c.setZN(c.A)
}

// axs (SBX) computes (A&X) - val with no borrow in, storing the result
// in X.
func axs(c *Chip, val uint8) {
	t := c.A & c.X
	c.setCarry(t >= val)
	c.X = t - val
	c.setZN(c.X)
}

// xaa (ANE) is unstable on real silicon; this models the commonly
// documented constant-0xEE behavior used by most emulators and
// conformance suites that don't specifically target chip decay.
func xaa(c *Chip, val uint8) {
	c.A = (c.A | 0xEE) & c.X & val
	c.setZN(c.A)
}

// lxa (OAL/ATX) is unstable on real silicon; this engine picks the
// deterministic A=X=A&val interpretation (see DESIGN.md) rather than
// the teacher's randomized tie-break, since a conformance engine must
// be reproducible.
func lxa(c *Chip, val uint8) {
	c.A &= val
	c.X = c.A
	c.setZN(c.A)
}

// las (LAR) ANDs the operand into SP and copies the result into A, X,
// and SP.
func las(c *Chip, val uint8) {
	c.SP &= val
	c.A = c.SP
	c.X = c.SP
	c.setZN(c.SP)
}

// storeAddrHigh builds the exec func shared by the unstable
// high-byte-masking stores (AHX/SHX/SHY/TAS), whose written value
// depends on the resolved effective address, not just a register.
func storeAddrHigh(value func(c *Chip, addr uint16) uint8) execFunc {
	return func(c *Chip, bus memory.Bus, m addrMode) int {
		addr, _ := operandAddr(c, bus, m)
		bus.Write(addr, value(c, addr))
		return storeCycles(m)
	}
}

func ahx(c *Chip, addr uint16) uint8 {
	return c.A & c.X & uint8(addr>>8+1)
}

func shx(c *Chip, addr uint16) uint8 {
	return c.X & uint8(addr>>8+1)
}

func shy(c *Chip, addr uint16) uint8 {
	return c.Y & uint8(addr>>8+1)
}

func tas(c *Chip, addr uint16) uint8 {
	c.SP = c.A & c.X
	return c.SP & uint8(addr>>8+1)
}

// jam halts the processor. Real silicon locks up reading the same
// address forever; this engine surfaces it as HaltOpcode from Step so a
// host (and conformance tests that deliberately execute a JAM to detect
// test completion) can tell the difference from a true decode error.
func jam(c *Chip, bus memory.Bus, m addrMode) int {
	c.halted = true
	return 2
}
