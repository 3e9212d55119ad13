// Package trace formats per-instruction trace records in the style of
// the widely-circulated nestest.log reference, for conformance tests
// that diff engine execution against a golden trace.
package trace

import (
	"fmt"

	"github.com/sixfiveohtwo/engine/cpu"
	"github.com/sixfiveohtwo/engine/memory"
)

// peek reads addr without side effects when the bus supports it,
// falling back to a normal Read otherwise.
func peek(bus memory.Bus, addr uint16) uint8 {
	if p, ok := bus.(memory.Peeker); ok {
		return p.Peek(addr)
	}
	return bus.Read(addr)
}

// Line formats the instruction at reg.PC against bus, using reg for the
// register block. It does not execute anything; bus is only peeked.
// Call it before Step so PC still points at the not-yet-executed
// instruction.
func Line(reg cpu.Registers, bus memory.Bus) string {
	pc := reg.PC
	op := peek(bus, pc)
	info := cpu.Lookup(op)

	if info.Mnemonic == "" {
		return fmt.Sprintf("%04X  %02X        ??? (no dispatch entry)                A:%02X X:%02X Y:%02X P:%02X SP:%02X",
			pc, op, reg.A, reg.X, reg.Y, reg.P, reg.SP)
	}

	b1, b2 := uint8(0), uint8(0)
	if info.Bytes >= 2 {
		b1 = peek(bus, pc+1)
	}
	if info.Bytes >= 3 {
		b2 = peek(bus, pc+2)
	}

	bytesCol := fmt.Sprintf("%02X", op)
	switch info.Bytes {
	case 2:
		bytesCol += fmt.Sprintf(" %02X", b1)
	case 3:
		bytesCol += fmt.Sprintf(" %02X %02X", b1, b2)
	}

	star := " "
	if !info.Official {
		star = "*"
	}

	var operand string
	var eff uint16
	memOperand := false

	switch info.Mode {
	case "impl":
		operand = ""
	case "acc":
		operand = "A"
	case "imm":
		operand = fmt.Sprintf("#$%02X", b1)
	case "zp":
		operand = fmt.Sprintf("$%02X", b1)
		eff = uint16(b1)
		memOperand = true
	case "zpx":
		operand = fmt.Sprintf("$%02X,X", b1)
		eff = uint16(b1 + reg.X)
		memOperand = true
	case "zpy":
		operand = fmt.Sprintf("$%02X,Y", b1)
		eff = uint16(b1 + reg.Y)
		memOperand = true
	case "rel":
		target := pc + 2 + uint16(int8(b1))
		operand = fmt.Sprintf("$%04X", target)
	case "abs":
		base := uint16(b2)<<8 | uint16(b1)
		operand = fmt.Sprintf("$%04X", base)
		eff = base
		memOperand = info.Mnemonic != "JMP" && info.Mnemonic != "JSR"
	case "absx":
		base := uint16(b2)<<8 | uint16(b1)
		operand = fmt.Sprintf("$%04X,X", base)
		eff = base + uint16(reg.X)
		memOperand = true
	case "absy":
		base := uint16(b2)<<8 | uint16(b1)
		operand = fmt.Sprintf("$%04X,Y", base)
		eff = base + uint16(reg.Y)
		memOperand = true
	case "ind":
		base := uint16(b2)<<8 | uint16(b1)
		operand = fmt.Sprintf("($%04X)", base)
	case "indx":
		ptr := b1 + reg.X
		lo := peek(bus, uint16(ptr))
		hi := peek(bus, uint16(ptr+1))
		eff = uint16(hi)<<8 | uint16(lo)
		operand = fmt.Sprintf("($%02X,X)", b1)
		memOperand = true
	case "indy":
		lo := peek(bus, uint16(b1))
		hi := peek(bus, uint16(b1+1))
		base := uint16(hi)<<8 | uint16(lo)
		eff = base + uint16(reg.Y)
		operand = fmt.Sprintf("($%02X),Y", b1)
		memOperand = true
	}

	if memOperand {
		operand = fmt.Sprintf("%-10s @ %04X = %02X", operand, eff, peek(bus, eff))
	}

	return fmt.Sprintf("%04X  %-8s %s%s %-28s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		pc, bytesCol, star, info.Mnemonic, operand, reg.A, reg.X, reg.Y, reg.P, reg.SP)
}
