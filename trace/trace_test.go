package trace_test

import (
	"strings"
	"testing"

	"github.com/sixfiveohtwo/engine/cpu"
	"github.com/sixfiveohtwo/engine/memory"
	"github.com/sixfiveohtwo/engine/trace"
)

func TestLineFormatsOfficialAbsolute(t *testing.T) {
	bus := memory.NewFlatBus()
	bus.Load(0x8000, []byte{0xAD, 0x00, 0x10}) // LDA $1000
	bus.Write(0x1000, 0x42)
	bus.Write(cpu.ResetVector, 0x00)
	bus.Write(cpu.ResetVector+1, 0x80)
	c := cpu.New()
	c.Reset(bus)

	line := trace.Line(c.Registers(), bus)
	if !strings.Contains(line, "8000") || !strings.Contains(line, "LDA") {
		t.Errorf("trace line missing PC/mnemonic: %q", line)
	}
	if !strings.Contains(line, "@ 1000 = 42") {
		t.Errorf("trace line missing resolved address/value: %q", line)
	}
	if strings.Contains(line, "*LDA") {
		t.Errorf("official opcode marked unofficial: %q", line)
	}
}

func TestLineMarksUnofficialOpcode(t *testing.T) {
	bus := memory.NewFlatBus()
	bus.Load(0x8000, []byte{0xA7, 0x10}) // LAX $10 (illegal)
	bus.Write(0x0010, 0x07)
	bus.Write(cpu.ResetVector, 0x00)
	bus.Write(cpu.ResetVector+1, 0x80)
	c := cpu.New()
	c.Reset(bus)

	line := trace.Line(c.Registers(), bus)
	if !strings.Contains(line, "*LAX") {
		t.Errorf("unofficial opcode not marked with *: %q", line)
	}
}

func TestLineOmitsMemorySuffixForJMP(t *testing.T) {
	bus := memory.NewFlatBus()
	bus.Load(0x8000, []byte{0x4C, 0x00, 0x90}) // JMP $9000
	bus.Write(cpu.ResetVector, 0x00)
	bus.Write(cpu.ResetVector+1, 0x80)
	c := cpu.New()
	c.Reset(bus)

	line := trace.Line(c.Registers(), bus)
	if strings.Contains(line, "@") {
		t.Errorf("JMP absolute should not show a resolved-address suffix: %q", line)
	}
}
