package cpu

// decodeEntry is one row of the opcode dispatch table: the mnemonic and
// addressing mode (used by trace output and tests), whether the opcode
// is part of the documented instruction set, and the exec func that
// performs it.
type decodeEntry struct {
	mnemonic string
	mode     addrMode
	official bool
	exec     execFunc
}

// Register-touching implied-mode operations, grouped here rather than
// inline in the table below so the table itself reads as a flat opcode
// map.

func dey(c *Chip) { c.Y--; c.setZN(c.Y) }
func dex(c *Chip) { c.X--; c.setZN(c.X) }
func inx(c *Chip) { c.X++; c.setZN(c.X) }
func iny(c *Chip) { c.Y++; c.setZN(c.Y) }
func tax(c *Chip) { c.X = c.A; c.setZN(c.X) }
func tay(c *Chip) { c.Y = c.A; c.setZN(c.Y) }
func txa(c *Chip) { c.A = c.X; c.setZN(c.A) }
func tya(c *Chip) { c.A = c.Y; c.setZN(c.A) }
func txs(c *Chip) { c.SP = c.X } // TXS sets no flags
func tsx(c *Chip) { c.X = c.SP; c.setZN(c.X) }
func clc(c *Chip) { c.setCarry(false) }
func sec(c *Chip) { c.setCarry(true) }
func cli(c *Chip) { c.P &^= FlagI }
func sei(c *Chip) { c.P |= FlagI }
func cld(c *Chip) { c.P &^= FlagD }
func sed(c *Chip) { c.P |= FlagD }
func clv(c *Chip) { c.setOverflow(false) }
func noopImplied(c *Chip) {}

// Read-combining operations used by execLoad.

func ora(c *Chip, val uint8)    { c.A |= val; c.setZN(c.A) }
func andAcc(c *Chip, val uint8) { c.A &= val; c.setZN(c.A) }
func eor(c *Chip, val uint8)    { c.A ^= val; c.setZN(c.A) }
func adcApply(c *Chip, val uint8) { c.adc(val) }
func sbcApply(c *Chip, val uint8) { c.sbc(val) }
func cmpApply(c *Chip, val uint8) { c.compare(c.A, val) }
func cpxApply(c *Chip, val uint8) { c.compare(c.X, val) }
func cpyApply(c *Chip, val uint8) { c.compare(c.Y, val) }
func bitApply(c *Chip, val uint8) { c.bit(val) }
func ldaApply(c *Chip, val uint8) { c.A = val; c.setZN(val) }
func ldxApply(c *Chip, val uint8) { c.X = val; c.setZN(val) }
func ldyApply(c *Chip, val uint8) { c.Y = val; c.setZN(val) }
func noopRead(c *Chip, val uint8) {}

// Read-modify-write operations used by execRMW. asl/lsr/rol/ror are
// Chip methods already; these free functions adapt them to apply's
// signature.

func aslOp(c *Chip, val uint8) uint8 { return c.asl(val) }
func lsrOp(c *Chip, val uint8) uint8 { return c.lsr(val) }
func rolOp(c *Chip, val uint8) uint8 { return c.rol(val) }
func rorOp(c *Chip, val uint8) uint8 { return c.ror(val) }
func dec(c *Chip, val uint8) uint8   { res := val - 1; c.setZN(res); return res }
func inc(c *Chip, val uint8) uint8   { res := val + 1; c.setZN(res); return res }

// Branch conditions used by execBranch.

func condN0(c *Chip) bool { return !c.flag(FlagN) }
func condN1(c *Chip) bool { return c.flag(FlagN) }
func condV0(c *Chip) bool { return !c.flag(FlagV) }
func condV1(c *Chip) bool { return c.flag(FlagV) }
func condC0(c *Chip) bool { return !c.flag(FlagC) }
func condC1(c *Chip) bool { return c.flag(FlagC) }
func condZ0(c *Chip) bool { return !c.flag(FlagZ) }
func condZ1(c *Chip) bool { return c.flag(FlagZ) }

// decodeTable is indexed by opcode byte. Entries left zero-valued (exec
// == nil) have no 6502 silicon behind them at all and surface as
// DecodeError; every opcode byte this implementation's teacher cpu.go
// assigned a meaning to — official or the widely cited illegal set —
// has a row here.
var decodeTable = [256]decodeEntry{
	0x00: {"BRK", modeImplied, true, execBRK},
	0x01: {"ORA", modeIndexedIndirect, true, execLoad(ora)},
	0x02: {"JAM", modeImplied, false, jam},
	0x03: {"SLO", modeIndexedIndirect, false, execRMW(slo)},
	0x04: {"NOP", modeZeroPage, false, execLoad(noopRead)},
	0x05: {"ORA", modeZeroPage, true, execLoad(ora)},
	0x06: {"ASL", modeZeroPage, true, execRMW(aslOp)},
	0x07: {"SLO", modeZeroPage, false, execRMW(slo)},
	0x08: {"PHP", modeImplied, true, execPHP},
	0x09: {"ORA", modeImmediate, true, execLoad(ora)},
	0x0A: {"ASL", modeAccumulator, true, execRMW(aslOp)},
	0x0B: {"ANC", modeImmediate, false, execLoad(anc)},
	0x0C: {"NOP", modeAbsolute, false, execLoad(noopRead)},
	0x0D: {"ORA", modeAbsolute, true, execLoad(ora)},
	0x0E: {"ASL", modeAbsolute, true, execRMW(aslOp)},
	0x0F: {"SLO", modeAbsolute, false, execRMW(slo)},

	0x10: {"BPL", modeRelative, true, execBranch(condN0)},
	0x11: {"ORA", modeIndirectIndexed, true, execLoad(ora)},
	0x12: {"JAM", modeImplied, false, jam},
	0x13: {"SLO", modeIndirectIndexed, false, execRMW(slo)},
	0x14: {"NOP", modeZeroPageX, false, execLoad(noopRead)},
	0x15: {"ORA", modeZeroPageX, true, execLoad(ora)},
	0x16: {"ASL", modeZeroPageX, true, execRMW(aslOp)},
	0x17: {"SLO", modeZeroPageX, false, execRMW(slo)},
	0x18: {"CLC", modeImplied, true, execImplied(clc)},
	0x19: {"ORA", modeAbsoluteY, true, execLoad(ora)},
	0x1A: {"NOP", modeImplied, false, execImplied(noopImplied)},
	0x1B: {"SLO", modeAbsoluteY, false, execRMW(slo)},
	0x1C: {"NOP", modeAbsoluteX, false, execLoad(noopRead)},
	0x1D: {"ORA", modeAbsoluteX, true, execLoad(ora)},
	0x1E: {"ASL", modeAbsoluteX, true, execRMW(aslOp)},
	0x1F: {"SLO", modeAbsoluteX, false, execRMW(slo)},

	0x20: {"JSR", modeAbsolute, true, execJSR},
	0x21: {"AND", modeIndexedIndirect, true, execLoad(andAcc)},
	0x22: {"JAM", modeImplied, false, jam},
	0x23: {"RLA", modeIndexedIndirect, false, execRMW(rla)},
	0x24: {"BIT", modeZeroPage, true, execLoad(bitApply)},
	0x25: {"AND", modeZeroPage, true, execLoad(andAcc)},
	0x26: {"ROL", modeZeroPage, true, execRMW(rolOp)},
	0x27: {"RLA", modeZeroPage, false, execRMW(rla)},
	0x28: {"PLP", modeImplied, true, execPLP},
	0x29: {"AND", modeImmediate, true, execLoad(andAcc)},
	0x2A: {"ROL", modeAccumulator, true, execRMW(rolOp)},
	0x2B: {"ANC", modeImmediate, false, execLoad(anc)},
	0x2C: {"BIT", modeAbsolute, true, execLoad(bitApply)},
	0x2D: {"AND", modeAbsolute, true, execLoad(andAcc)},
	0x2E: {"ROL", modeAbsolute, true, execRMW(rolOp)},
	0x2F: {"RLA", modeAbsolute, false, execRMW(rla)},

	0x30: {"BMI", modeRelative, true, execBranch(condN1)},
	0x31: {"AND", modeIndirectIndexed, true, execLoad(andAcc)},
	0x32: {"JAM", modeImplied, false, jam},
	0x33: {"RLA", modeIndirectIndexed, false, execRMW(rla)},
	0x34: {"NOP", modeZeroPageX, false, execLoad(noopRead)},
	0x35: {"AND", modeZeroPageX, true, execLoad(andAcc)},
	0x36: {"ROL", modeZeroPageX, true, execRMW(rolOp)},
	0x37: {"RLA", modeZeroPageX, false, execRMW(rla)},
	0x38: {"SEC", modeImplied, true, execImplied(sec)},
	0x39: {"AND", modeAbsoluteY, true, execLoad(andAcc)},
	0x3A: {"NOP", modeImplied, false, execImplied(noopImplied)},
	0x3B: {"RLA", modeAbsoluteY, false, execRMW(rla)},
	0x3C: {"NOP", modeAbsoluteX, false, execLoad(noopRead)},
	0x3D: {"AND", modeAbsoluteX, true, execLoad(andAcc)},
	0x3E: {"ROL", modeAbsoluteX, true, execRMW(rolOp)},
	0x3F: {"RLA", modeAbsoluteX, false, execRMW(rla)},

	0x40: {"RTI", modeImplied, true, execRTI},
	0x41: {"EOR", modeIndexedIndirect, true, execLoad(eor)},
	0x42: {"JAM", modeImplied, false, jam},
	0x43: {"SRE", modeIndexedIndirect, false, execRMW(sre)},
	0x44: {"NOP", modeZeroPage, false, execLoad(noopRead)},
	0x45: {"EOR", modeZeroPage, true, execLoad(eor)},
	0x46: {"LSR", modeZeroPage, true, execRMW(lsrOp)},
	0x47: {"SRE", modeZeroPage, false, execRMW(sre)},
	0x48: {"PHA", modeImplied, true, execPHA},
	0x49: {"EOR", modeImmediate, true, execLoad(eor)},
	0x4A: {"LSR", modeAccumulator, true, execRMW(lsrOp)},
	0x4B: {"ALR", modeImmediate, false, execLoad(alr)},
	0x4C: {"JMP", modeAbsolute, true, execJMPAbsolute},
	0x4D: {"EOR", modeAbsolute, true, execLoad(eor)},
	0x4E: {"LSR", modeAbsolute, true, execRMW(lsrOp)},
	0x4F: {"SRE", modeAbsolute, false, execRMW(sre)},

	0x50: {"BVC", modeRelative, true, execBranch(condV0)},
	0x51: {"EOR", modeIndirectIndexed, true, execLoad(eor)},
	0x52: {"JAM", modeImplied, false, jam},
	0x53: {"SRE", modeIndirectIndexed, false, execRMW(sre)},
	0x54: {"NOP", modeZeroPageX, false, execLoad(noopRead)},
	0x55: {"EOR", modeZeroPageX, true, execLoad(eor)},
	0x56: {"LSR", modeZeroPageX, true, execRMW(lsrOp)},
	0x57: {"SRE", modeZeroPageX, false, execRMW(sre)},
	0x58: {"CLI", modeImplied, true, execImplied(cli)},
	0x59: {"EOR", modeAbsoluteY, true, execLoad(eor)},
	0x5A: {"NOP", modeImplied, false, execImplied(noopImplied)},
	0x5B: {"SRE", modeAbsoluteY, false, execRMW(sre)},
	0x5C: {"NOP", modeAbsoluteX, false, execLoad(noopRead)},
	0x5D: {"EOR", modeAbsoluteX, true, execLoad(eor)},
	0x5E: {"LSR", modeAbsoluteX, true, execRMW(lsrOp)},
	0x5F: {"SRE", modeAbsoluteX, false, execRMW(sre)},

	0x60: {"RTS", modeImplied, true, execRTS},
	0x61: {"ADC", modeIndexedIndirect, true, execLoad(adcApply)},
	0x62: {"JAM", modeImplied, false, jam},
	0x63: {"RRA", modeIndexedIndirect, false, execRMW(rra)},
	0x64: {"NOP", modeZeroPage, false, execLoad(noopRead)},
	0x65: {"ADC", modeZeroPage, true, execLoad(adcApply)},
	0x66: {"ROR", modeZeroPage, true, execRMW(rorOp)},
	0x67: {"RRA", modeZeroPage, false, execRMW(rra)},
	0x68: {"PLA", modeImplied, true, execPLA},
	0x69: {"ADC", modeImmediate, true, execLoad(adcApply)},
	0x6A: {"ROR", modeAccumulator, true, execRMW(rorOp)},
	0x6B: {"ARR", modeImmediate, false, execLoad(arr)},
	0x6C: {"JMP", modeIndirect, true, execJMPIndirect},
	0x6D: {"ADC", modeAbsolute, true, execLoad(adcApply)},
	0x6E: {"ROR", modeAbsolute, true, execRMW(rorOp)},
	0x6F: {"RRA", modeAbsolute, false, execRMW(rra)},

	0x70: {"BVS", modeRelative, true, execBranch(condV1)},
	0x71: {"ADC", modeIndirectIndexed, true, execLoad(adcApply)},
	0x72: {"JAM", modeImplied, false, jam},
	0x73: {"RRA", modeIndirectIndexed, false, execRMW(rra)},
	0x74: {"NOP", modeZeroPageX, false, execLoad(noopRead)},
	0x75: {"ADC", modeZeroPageX, true, execLoad(adcApply)},
	0x76: {"ROR", modeZeroPageX, true, execRMW(rorOp)},
	0x77: {"RRA", modeZeroPageX, false, execRMW(rra)},
	0x78: {"SEI", modeImplied, true, execImplied(sei)},
	0x79: {"ADC", modeAbsoluteY, true, execLoad(adcApply)},
	0x7A: {"NOP", modeImplied, false, execImplied(noopImplied)},
	0x7B: {"RRA", modeAbsoluteY, false, execRMW(rra)},
	0x7C: {"NOP", modeAbsoluteX, false, execLoad(noopRead)},
	0x7D: {"ADC", modeAbsoluteX, true, execLoad(adcApply)},
	0x7E: {"ROR", modeAbsoluteX, true, execRMW(rorOp)},
	0x7F: {"RRA", modeAbsoluteX, false, execRMW(rra)},

	0x80: {"NOP", modeImmediate, false, execLoad(noopRead)},
	0x81: {"STA", modeIndexedIndirect, true, execStore(func(c *Chip) uint8 { return c.A })},
	0x82: {"NOP", modeImmediate, false, execLoad(noopRead)},
	0x83: {"SAX", modeIndexedIndirect, false, execStore(sax)},
	0x84: {"STY", modeZeroPage, true, execStore(func(c *Chip) uint8 { return c.Y })},
	0x85: {"STA", modeZeroPage, true, execStore(func(c *Chip) uint8 { return c.A })},
	0x86: {"STX", modeZeroPage, true, execStore(func(c *Chip) uint8 { return c.X })},
	0x87: {"SAX", modeZeroPage, false, execStore(sax)},
	0x88: {"DEY", modeImplied, true, execImplied(dey)},
	0x89: {"NOP", modeImmediate, false, execLoad(noopRead)},
	0x8A: {"TXA", modeImplied, true, execImplied(txa)},
	0x8B: {"XAA", modeImmediate, false, execLoad(xaa)},
	0x8C: {"STY", modeAbsolute, true, execStore(func(c *Chip) uint8 { return c.Y })},
	0x8D: {"STA", modeAbsolute, true, execStore(func(c *Chip) uint8 { return c.A })},
	0x8E: {"STX", modeAbsolute, true, execStore(func(c *Chip) uint8 { return c.X })},
	0x8F: {"SAX", modeAbsolute, false, execStore(sax)},

	0x90: {"BCC", modeRelative, true, execBranch(condC0)},
	0x91: {"STA", modeIndirectIndexed, true, execStore(func(c *Chip) uint8 { return c.A })},
	0x92: {"JAM", modeImplied, false, jam},
	0x93: {"AHX", modeIndirectIndexed, false, storeAddrHigh(ahx)},
	0x94: {"STY", modeZeroPageX, true, execStore(func(c *Chip) uint8 { return c.Y })},
	0x95: {"STA", modeZeroPageX, true, execStore(func(c *Chip) uint8 { return c.A })},
	0x96: {"STX", modeZeroPageY, true, execStore(func(c *Chip) uint8 { return c.X })},
	0x97: {"SAX", modeZeroPageY, false, execStore(sax)},
	0x98: {"TYA", modeImplied, true, execImplied(tya)},
	0x99: {"STA", modeAbsoluteY, true, execStore(func(c *Chip) uint8 { return c.A })},
	0x9A: {"TXS", modeImplied, true, execImplied(txs)},
	0x9B: {"TAS", modeAbsoluteY, false, storeAddrHigh(tas)},
	0x9C: {"SHY", modeAbsoluteX, false, storeAddrHigh(shy)},
	0x9D: {"STA", modeAbsoluteX, true, execStore(func(c *Chip) uint8 { return c.A })},
	0x9E: {"SHX", modeAbsoluteY, false, storeAddrHigh(shx)},
	0x9F: {"AHX", modeAbsoluteY, false, storeAddrHigh(ahx)},

	0xA0: {"LDY", modeImmediate, true, execLoad(ldyApply)},
	0xA1: {"LDA", modeIndexedIndirect, true, execLoad(ldaApply)},
	0xA2: {"LDX", modeImmediate, true, execLoad(ldxApply)},
	0xA3: {"LAX", modeIndexedIndirect, false, execLoad(lax)},
	0xA4: {"LDY", modeZeroPage, true, execLoad(ldyApply)},
	0xA5: {"LDA", modeZeroPage, true, execLoad(ldaApply)},
	0xA6: {"LDX", modeZeroPage, true, execLoad(ldxApply)},
	0xA7: {"LAX", modeZeroPage, false, execLoad(lax)},
	0xA8: {"TAY", modeImplied, true, execImplied(tay)},
	0xA9: {"LDA", modeImmediate, true, execLoad(ldaApply)},
	0xAA: {"TAX", modeImplied, true, execImplied(tax)},
	0xAB: {"LXA", modeImmediate, false, execLoad(lxa)},
	0xAC: {"LDY", modeAbsolute, true, execLoad(ldyApply)},
	0xAD: {"LDA", modeAbsolute, true, execLoad(ldaApply)},
	0xAE: {"LDX", modeAbsolute, true, execLoad(ldxApply)},
	0xAF: {"LAX", modeAbsolute, false, execLoad(lax)},

	0xB0: {"BCS", modeRelative, true, execBranch(condC1)},
	0xB1: {"LDA", modeIndirectIndexed, true, execLoad(ldaApply)},
	0xB2: {"JAM", modeImplied, false, jam},
	0xB3: {"LAX", modeIndirectIndexed, false, execLoad(lax)},
	0xB4: {"LDY", modeZeroPageX, true, execLoad(ldyApply)},
	0xB5: {"LDA", modeZeroPageX, true, execLoad(ldaApply)},
	0xB6: {"LDX", modeZeroPageY, true, execLoad(ldxApply)},
	0xB7: {"LAX", modeZeroPageY, false, execLoad(lax)},
	0xB8: {"CLV", modeImplied, true, execImplied(clv)},
	0xB9: {"LDA", modeAbsoluteY, true, execLoad(ldaApply)},
	0xBA: {"TSX", modeImplied, true, execImplied(tsx)},
	0xBB: {"LAS", modeAbsoluteY, false, execLoad(las)},
	0xBC: {"LDY", modeAbsoluteX, true, execLoad(ldyApply)},
	0xBD: {"LDA", modeAbsoluteX, true, execLoad(ldaApply)},
	0xBE: {"LDX", modeAbsoluteY, true, execLoad(ldxApply)},
	0xBF: {"LAX", modeAbsoluteY, false, execLoad(lax)},

	0xC0: {"CPY", modeImmediate, true, execLoad(cpyApply)},
	0xC1: {"CMP", modeIndexedIndirect, true, execLoad(cmpApply)},
	0xC2: {"NOP", modeImmediate, false, execLoad(noopRead)},
	0xC3: {"DCP", modeIndexedIndirect, false, execRMW(dcp)},
	0xC4: {"CPY", modeZeroPage, true, execLoad(cpyApply)},
	0xC5: {"CMP", modeZeroPage, true, execLoad(cmpApply)},
	0xC6: {"DEC", modeZeroPage, true, execRMW(dec)},
	0xC7: {"DCP", modeZeroPage, false, execRMW(dcp)},
	0xC8: {"INY", modeImplied, true, execImplied(iny)},
	0xC9: {"CMP", modeImmediate, true, execLoad(cmpApply)},
	0xCA: {"DEX", modeImplied, true, execImplied(dex)},
	0xCB: {"AXS", modeImmediate, false, execLoad(axs)},
	0xCC: {"CPY", modeAbsolute, true, execLoad(cpyApply)},
	0xCD: {"CMP", modeAbsolute, true, execLoad(cmpApply)},
	0xCE: {"DEC", modeAbsolute, true, execRMW(dec)},
	0xCF: {"DCP", modeAbsolute, false, execRMW(dcp)},

	0xD0: {"BNE", modeRelative, true, execBranch(condZ0)},
	0xD1: {"CMP", modeIndirectIndexed, true, execLoad(cmpApply)},
	0xD2: {"JAM", modeImplied, false, jam},
	0xD3: {"DCP", modeIndirectIndexed, false, execRMW(dcp)},
	0xD4: {"NOP", modeZeroPageX, false, execLoad(noopRead)},
	0xD5: {"CMP", modeZeroPageX, true, execLoad(cmpApply)},
	0xD6: {"DEC", modeZeroPageX, true, execRMW(dec)},
	0xD7: {"DCP", modeZeroPageX, false, execRMW(dcp)},
	0xD8: {"CLD", modeImplied, true, execImplied(cld)},
	0xD9: {"CMP", modeAbsoluteY, true, execLoad(cmpApply)},
	0xDA: {"NOP", modeImplied, false, execImplied(noopImplied)},
	0xDB: {"DCP", modeAbsoluteY, false, execRMW(dcp)},
	0xDC: {"NOP", modeAbsoluteX, false, execLoad(noopRead)},
	0xDD: {"CMP", modeAbsoluteX, true, execLoad(cmpApply)},
	0xDE: {"DEC", modeAbsoluteX, true, execRMW(dec)},
	0xDF: {"DCP", modeAbsoluteX, false, execRMW(dcp)},

	0xE0: {"CPX", modeImmediate, true, execLoad(cpxApply)},
	0xE1: {"SBC", modeIndexedIndirect, true, execLoad(sbcApply)},
	0xE2: {"NOP", modeImmediate, false, execLoad(noopRead)},
	0xE3: {"ISC", modeIndexedIndirect, false, execRMW(isc)},
	0xE4: {"CPX", modeZeroPage, true, execLoad(cpxApply)},
	0xE5: {"SBC", modeZeroPage, true, execLoad(sbcApply)},
	0xE6: {"INC", modeZeroPage, true, execRMW(inc)},
	0xE7: {"ISC", modeZeroPage, false, execRMW(isc)},
	0xE8: {"INX", modeImplied, true, execImplied(inx)},
	0xE9: {"SBC", modeImmediate, true, execLoad(sbcApply)},
	0xEA: {"NOP", modeImplied, true, execImplied(noopImplied)},
	0xEB: {"SBC", modeImmediate, false, execLoad(sbcApply)},
	0xEC: {"CPX", modeAbsolute, true, execLoad(cpxApply)},
	0xED: {"SBC", modeAbsolute, true, execLoad(sbcApply)},
	0xEE: {"INC", modeAbsolute, true, execRMW(inc)},
	0xEF: {"ISC", modeAbsolute, false, execRMW(isc)},

	0xF0: {"BEQ", modeRelative, true, execBranch(condZ1)},
	0xF1: {"SBC", modeIndirectIndexed, true, execLoad(sbcApply)},
	0xF2: {"JAM", modeImplied, false, jam},
	0xF3: {"ISC", modeIndirectIndexed, false, execRMW(isc)},
	0xF4: {"NOP", modeZeroPageX, false, execLoad(noopRead)},
	0xF5: {"SBC", modeZeroPageX, true, execLoad(sbcApply)},
	0xF6: {"INC", modeZeroPageX, true, execRMW(inc)},
	0xF7: {"ISC", modeZeroPageX, false, execRMW(isc)},
	0xF8: {"SED", modeImplied, true, execImplied(sed)},
	0xF9: {"SBC", modeAbsoluteY, true, execLoad(sbcApply)},
	0xFA: {"NOP", modeImplied, false, execImplied(noopImplied)},
	0xFB: {"ISC", modeAbsoluteY, false, execRMW(isc)},
	0xFC: {"NOP", modeAbsoluteX, false, execLoad(noopRead)},
	0xFD: {"SBC", modeAbsoluteX, true, execLoad(sbcApply)},
	0xFE: {"INC", modeAbsoluteX, true, execRMW(inc)},
	0xFF: {"ISC", modeAbsoluteX, false, execRMW(isc)},
}
