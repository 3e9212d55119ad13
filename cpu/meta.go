package cpu

// OpInfo describes one opcode's static shape, for callers that need to
// format or inspect an instruction without executing it (trace output,
// disassembly-style tooling, tests asserting on the table itself).
type OpInfo struct {
	Mnemonic string
	Mode     string // "impl", "acc", "imm", "zp", "zpx", "zpy", "rel", "abs", "absx", "absy", "ind", "indx", "indy"
	Official bool
	Bytes    int // opcode byte + operand bytes
}

var modeNames = map[addrMode]string{
	modeImplied:         "impl",
	modeAccumulator:      "acc",
	modeImmediate:        "imm",
	modeZeroPage:         "zp",
	modeZeroPageX:        "zpx",
	modeZeroPageY:        "zpy",
	modeRelative:         "rel",
	modeAbsolute:         "abs",
	modeAbsoluteX:        "absx",
	modeAbsoluteY:        "absy",
	modeIndirect:         "ind",
	modeIndexedIndirect:  "indx",
	modeIndirectIndexed:  "indy",
}

// Lookup returns the static shape of opcode. A DecodeError-bound opcode
// (no dispatch entry) comes back with an empty Mnemonic.
func Lookup(opcode uint8) OpInfo {
	e := decodeTable[opcode]
	if e.exec == nil {
		return OpInfo{}
	}
	return OpInfo{
		Mnemonic: e.mnemonic,
		Mode:     modeNames[e.mode],
		Official: e.official,
		Bytes:    1 + operandBytes(e.mode),
	}
}
