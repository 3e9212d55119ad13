package asm6502_test

import (
	"bytes"
	"testing"

	"github.com/sixfiveohtwo/engine/internal/asm6502"
)

func TestAssembleBasicForms(t *testing.T) {
	got, err := asm6502.Assemble(0x8000, []string{
		"LDA #$05",
		"STA $10",
		"LDX $20,Y",
		"JMP $9000",
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []byte{
		0xA9, 0x05,
		0x85, 0x10,
		0xB6, 0x20,
		0x4C, 0x00, 0x90,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Assemble = % X, want % X", got, want)
	}
}

func TestAssembleRelativeBranch(t *testing.T) {
	got, err := asm6502.Assemble(0x8000, []string{
		"BNE $8000", // branch to self: offset = 0x8000 - 0x8002 = -2
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []byte{0xD0, 0xFE}
	if !bytes.Equal(got, want) {
		t.Errorf("Assemble = % X, want % X", got, want)
	}
}

func TestAssembleByteDirectiveAndComments(t *testing.T) {
	got, err := asm6502.Assemble(0x8000, []string{
		"; a comment line",
		".byte $02, $EA", // JAM (no mnemonic form here); NOP as a raw byte
		"NOP ; trailing comment",
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []byte{0x02, 0xEA, 0xEA}
	if !bytes.Equal(got, want) {
		t.Errorf("Assemble = % X, want % X", got, want)
	}
}

func TestAssembleUnknownMnemonic(t *testing.T) {
	if _, err := asm6502.Assemble(0x8000, []string{"FOO"}); err == nil {
		t.Errorf("Assemble with unknown mnemonic returned nil error")
	}
}

func TestAssembleOutOfRangeBranch(t *testing.T) {
	if _, err := asm6502.Assemble(0x8000, []string{"BEQ $9000"}); err == nil {
		t.Errorf("Assemble with out-of-range branch target returned nil error")
	}
}
